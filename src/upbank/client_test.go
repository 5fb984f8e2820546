package upbank

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := NewClient("test-token")
	client.baseURL = srv.URL
	return client, srv
}

func TestListAccountsPaginates(t *testing.T) {
	var gotAuth string
	var client *Client
	var srv *httptest.Server
	client, srv = testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `{
				"data": [{"id": "acc-2", "attributes": {
					"displayName": "Savings", "accountType": "SAVER",
					"ownershipType": "INDIVIDUAL",
					"balance": {"currencyCode": "AUD", "value": "5.00", "valueInBaseUnits": 500},
					"createdAt": "2024-01-02T00:00:00+10:00"}}],
				"links": {"prev": null, "next": null}
			}`)
			return
		}
		fmt.Fprintf(w, `{
			"data": [{"id": "acc-1", "attributes": {
				"displayName": "Spending", "accountType": "TRANSACTIONAL",
				"ownershipType": "INDIVIDUAL",
				"balance": {"currencyCode": "AUD", "value": "1.00", "valueInBaseUnits": 100},
				"createdAt": "2024-01-01T00:00:00+10:00"}}],
			"links": {"prev": null, "next": %q}
		}`, srv.URL+"/accounts?page=2")
	}))
	defer srv.Close()

	accounts, err := client.ListAccounts(context.Background())
	if err != nil {
		t.Fatalf("ListAccounts: %v", err)
	}

	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if len(accounts) != 2 {
		t.Fatalf("got %d accounts, want 2", len(accounts))
	}
	if accounts[0].ID != "acc-1" || accounts[0].Balance != 100 {
		t.Errorf("first account = %+v", accounts[0])
	}
	if accounts[1].ID != "acc-2" || accounts[1].DisplayName != "Savings" {
		t.Errorf("second account = %+v", accounts[1])
	}
}

func TestListTransactionsConversion(t *testing.T) {
	var gotSince string
	client, srv := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSince = r.URL.Query().Get("filter[since]")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"data": [
				{
					"id": "txn-1",
					"attributes": {
						"status": "HELD",
						"rawText": "COFFEE SHOP",
						"description": "Coffee Shop",
						"message": null,
						"isCategorizable": true,
						"holdInfo": {"amount": {"currencyCode": "AUD", "value": "-4.50", "valueInBaseUnits": -450}},
						"roundUp": {
							"amount": {"currencyCode": "AUD", "value": "-0.50", "valueInBaseUnits": -50},
							"boostPortion": {"currencyCode": "AUD", "value": "-0.50", "valueInBaseUnits": -50}
						},
						"cashback": {"description": "Bonus", "amount": {"currencyCode": "AUD", "value": "0.10", "valueInBaseUnits": 10}},
						"amount": {"currencyCode": "AUD", "value": "-4.50", "valueInBaseUnits": -450},
						"foreignAmount": {"currencyCode": "USD", "value": "-3.00", "valueInBaseUnits": -300},
						"cardPurchaseMethod": {"method": "CONTACTLESS", "cardNumberSuffix": "1234"},
						"settledAt": null,
						"createdAt": "2024-03-01T09:00:00+10:00"
					},
					"relationships": {
						"account": {"data": {"type": "accounts", "id": "acc-1"}},
						"transferAccount": {"data": null},
						"category": {"data": {"type": "categories", "id": "takeaway"}},
						"parentCategory": {"data": {"type": "categories", "id": "good-life"}}
					}
				},
				{
					"id": "txn-2",
					"attributes": {
						"status": "SETTLED",
						"rawText": null,
						"description": "Transfer",
						"message": "rent",
						"isCategorizable": false,
						"holdInfo": null,
						"roundUp": null,
						"cashback": null,
						"amount": {"currencyCode": "AUD", "value": "-1800.00", "valueInBaseUnits": -180000},
						"foreignAmount": null,
						"cardPurchaseMethod": null,
						"settledAt": "2024-03-02T09:00:00+10:00",
						"createdAt": "2024-03-01T09:00:00+10:00"
					},
					"relationships": {
						"account": {"data": {"type": "accounts", "id": "acc-1"}},
						"transferAccount": {"data": {"type": "accounts", "id": "acc-2"}},
						"category": {"data": null},
						"parentCategory": {"data": null}
					}
				}
			],
			"links": {"prev": null, "next": null}
		}`)
	}))
	defer srv.Close()

	since := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	txns, err := client.ListTransactions(context.Background(), since)
	if err != nil {
		t.Fatalf("ListTransactions: %v", err)
	}
	if gotSince != since.Format(time.RFC3339) {
		t.Errorf("filter[since] = %q, want %q", gotSince, since.Format(time.RFC3339))
	}
	if len(txns) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txns))
	}

	full := txns[0]
	if full.ID != "txn-1" || full.Status != "HELD" || full.Amount != -450 {
		t.Errorf("txn-1 basics = %+v", full)
	}
	if !full.Held || full.HeldAmount == nil || *full.HeldAmount != -450 {
		t.Errorf("txn-1 hold = held=%v amount=%v", full.Held, full.HeldAmount)
	}
	if full.RoundUpAmount == nil || *full.RoundUpAmount != -50 {
		t.Errorf("txn-1 round up = %v", full.RoundUpAmount)
	}
	if full.BoostProportion == nil || *full.BoostProportion != -50 {
		t.Errorf("txn-1 boost = %v", full.BoostProportion)
	}
	if full.CashbackDesc == nil || *full.CashbackDesc != "Bonus" || full.CashbackAmount == nil || *full.CashbackAmount != 10 {
		t.Errorf("txn-1 cashback = %v %v", full.CashbackDesc, full.CashbackAmount)
	}
	if full.ForeignCurrency == nil || *full.ForeignCurrency != "USD" || full.ForeignAmount == nil || *full.ForeignAmount != -300 {
		t.Errorf("txn-1 foreign = %v %v", full.ForeignCurrency, full.ForeignAmount)
	}
	if full.CardPurchaseMethod == nil || *full.CardPurchaseMethod != "CONTACTLESS" || full.CardNumberSuffix == nil || *full.CardNumberSuffix != "1234" {
		t.Errorf("txn-1 card = %v %v", full.CardPurchaseMethod, full.CardNumberSuffix)
	}
	if full.SettledAt != nil {
		t.Errorf("txn-1 settledAt = %v, want nil while held", *full.SettledAt)
	}
	if full.Account == nil || *full.Account != "acc-1" || full.TransferAccount != nil {
		t.Errorf("txn-1 accounts = %v %v", full.Account, full.TransferAccount)
	}
	if full.Category == nil || *full.Category != "takeaway" || full.ParentCategory == nil || *full.ParentCategory != "good-life" {
		t.Errorf("txn-1 categories = %v %v", full.Category, full.ParentCategory)
	}

	bare := txns[1]
	if bare.Held || bare.HeldAmount != nil || bare.RoundUpAmount != nil || bare.CashbackDesc != nil {
		t.Errorf("txn-2 picked up optional fields: %+v", bare)
	}
	if bare.SettledAt == nil || *bare.SettledAt != "2024-03-02T09:00:00+10:00" {
		t.Errorf("txn-2 settledAt = %v", bare.SettledAt)
	}
	if bare.TransferAccount == nil || *bare.TransferAccount != "acc-2" {
		t.Errorf("txn-2 transferAccount = %v", bare.TransferAccount)
	}
	if bare.Category != nil || bare.ParentCategory != nil {
		t.Errorf("txn-2 categories = %v %v", bare.Category, bare.ParentCategory)
	}
}

func TestGetNonOKStatus(t *testing.T) {
	client, srv := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors": [{"status": "401"}]}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := client.ListAccounts(context.Background()); err == nil {
		t.Error("unauthorized response returned no error")
	}
}
