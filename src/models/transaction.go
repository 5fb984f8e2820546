package models

import "github.com/Mammoth1930/FinanceTracker/src/table"

// Transaction mirrors a row of the Transactions table. All amounts are in
// minor currency units. Pointer fields map to nullable columns.
//
// Only Status, CashbackDesc, CashbackAmount, SettledAt, Category and
// ParentCategory may change after insert; everything else is fixed when the
// transaction is first observed.
type Transaction struct {
	ID                 string  `json:"id"`
	Status             string  `json:"status"`
	RawText            *string `json:"raw_text"`
	Description        string  `json:"description"`
	Message            *string `json:"message"`
	IsCategorizable    bool    `json:"is_categorizable"`
	Held               bool    `json:"held"`
	HeldAmount         *int64  `json:"held_amount"`
	RoundUpAmount      *int64  `json:"round_up_amount"`
	BoostProportion    *int64  `json:"boost_proportion"`
	CashbackDesc       *string `json:"cashback_desc"`
	CashbackAmount     *int64  `json:"cashback_amount"`
	Amount             int64   `json:"amount"`
	ForeignCurrency    *string `json:"foreign_currency"`
	ForeignAmount      *int64  `json:"foreign_amount"`
	CardPurchaseMethod *string `json:"card_purchase_method"`
	CardNumberSuffix   *string `json:"card_number_suffix"`
	SettledAt          *string `json:"settled_at"`
	CreatedAt          string  `json:"created_at"`
	Account            *string `json:"account"`
	TransferAccount    *string `json:"transfer_account"`
	Category           *string `json:"category"`
	ParentCategory     *string `json:"parent_category"`
}

// TransactionColumns is the Transactions column order used for bulk appends.
// It must stay in sync with the schema in store.InitSchema.
var TransactionColumns = []string{
	"id", "status", "rawText", "description", "message",
	"isCategorizable", "held", "heldAmount", "roundUpAmount",
	"boostProportion", "cashbackDesc", "cashbackAmount", "amount",
	"foreignCurrency", "foreignAmount", "cardPurchaseMethod",
	"cardNumberSuffix", "settledAt", "createdAt", "account",
	"transferAccount", "category", "parentCategory",
}

// Row renders the transaction in TransactionColumns order.
func (t Transaction) Row() []any {
	return []any{
		t.ID, t.Status, t.RawText, t.Description, t.Message,
		t.IsCategorizable, t.Held, t.HeldAmount, t.RoundUpAmount,
		t.BoostProportion, t.CashbackDesc, t.CashbackAmount, t.Amount,
		t.ForeignCurrency, t.ForeignAmount, t.CardPurchaseMethod,
		t.CardNumberSuffix, t.SettledAt, t.CreatedAt, t.Account,
		t.TransferAccount, t.Category, t.ParentCategory,
	}
}

// TransactionsTable builds the tabular batch handed to Store.AppendRows for
// the all-new insert path.
func TransactionsTable(txns []Transaction) *table.Table {
	tbl := table.New(TransactionColumns...)
	for _, t := range txns {
		// Row always matches TransactionColumns, so Append cannot fail.
		_ = tbl.Append(t.Row()...)
	}
	return tbl
}
