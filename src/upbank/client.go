package upbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Mammoth1930/FinanceTracker/src/models"
)

const defaultBaseURL = "https://api.up.com.au/api/v1"

const pageSize = "100"

// Client talks to the Up banking API. It only implements the two reads the
// sync layer needs: the full accounts snapshot and transactions since a
// point in time.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

func NewClient(token string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultBaseURL,
		token:   token,
	}
}

// ListAccounts fetches the complete set of currently-open accounts. Closed
// accounts are never returned by the API; their absence is what drives the
// reconciler's soft-delete.
func (c *Client) ListAccounts(ctx context.Context) ([]models.Account, error) {
	params := url.Values{"page[size]": {pageSize}}
	next := c.baseURL + "/accounts?" + params.Encode()

	var accounts []models.Account
	for next != "" {
		var page accountsPage
		if err := c.get(ctx, next, &page); err != nil {
			return nil, err
		}
		for _, res := range page.Data {
			accounts = append(accounts, models.Account{
				ID:            res.ID,
				DisplayName:   res.Attributes.DisplayName,
				AccountType:   res.Attributes.AccountType,
				OwnershipType: res.Attributes.OwnershipType,
				Balance:       res.Attributes.Balance.ValueInBaseUnits,
				Created:       res.Attributes.CreatedAt,
			})
		}
		next = nextLink(page.Links)
	}
	return accounts, nil
}

// ListTransactions fetches every transaction created at or after since,
// newest first, across all accounts.
func (c *Client) ListTransactions(ctx context.Context, since time.Time) ([]models.Transaction, error) {
	params := url.Values{
		"page[size]":    {pageSize},
		"filter[since]": {since.Format(time.RFC3339)},
	}
	next := c.baseURL + "/transactions?" + params.Encode()

	var txns []models.Transaction
	for next != "" {
		var page transactionsPage
		if err := c.get(ctx, next, &page); err != nil {
			return nil, err
		}
		for _, res := range page.Data {
			txns = append(txns, convertTransaction(res))
		}
		next = nextLink(page.Links)
	}
	return txns, nil
}

func convertTransaction(res transactionResource) models.Transaction {
	attrs := res.Attributes
	txn := models.Transaction{
		ID:              res.ID,
		Status:          attrs.Status,
		RawText:         attrs.RawText,
		Description:     attrs.Description,
		Message:         attrs.Message,
		IsCategorizable: attrs.IsCategorizable,
		Held:            attrs.HoldInfo != nil,
		Amount:          attrs.Amount.ValueInBaseUnits,
		SettledAt:       attrs.SettledAt,
		CreatedAt:       attrs.CreatedAt,
		Account:         res.Relationships.Account.id(),
		TransferAccount: res.Relationships.TransferAccount.id(),
		Category:        res.Relationships.Category.id(),
		ParentCategory:  res.Relationships.ParentCategory.id(),
	}

	if attrs.HoldInfo != nil {
		amount := attrs.HoldInfo.Amount.ValueInBaseUnits
		txn.HeldAmount = &amount
	}
	if attrs.RoundUp != nil {
		amount := attrs.RoundUp.Amount.ValueInBaseUnits
		txn.RoundUpAmount = &amount
		if attrs.RoundUp.BoostPortion != nil {
			boost := attrs.RoundUp.BoostPortion.ValueInBaseUnits
			txn.BoostProportion = &boost
		}
	}
	if attrs.Cashback != nil {
		desc := attrs.Cashback.Description
		amount := attrs.Cashback.Amount.ValueInBaseUnits
		txn.CashbackDesc = &desc
		txn.CashbackAmount = &amount
	}
	if attrs.ForeignAmount != nil {
		currency := attrs.ForeignAmount.CurrencyCode
		amount := attrs.ForeignAmount.ValueInBaseUnits
		txn.ForeignCurrency = &currency
		txn.ForeignAmount = &amount
	}
	if attrs.CardPurchaseMethod != nil {
		method := attrs.CardPurchaseMethod.Method
		txn.CardPurchaseMethod = &method
		txn.CardNumberSuffix = attrs.CardPurchaseMethod.CardNumberSuffix
	}
	return txn
}

func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("upbank: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("upbank: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("upbank: %s returned %d: %s", req.URL.Path, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("upbank: decoding %s: %w", req.URL.Path, err)
	}
	return nil
}

func nextLink(links pageLinks) string {
	if links.Next == nil {
		return ""
	}
	return *links.Next
}
