package models

import "github.com/Mammoth1930/FinanceTracker/src/table"

// Conversions from query results back into domain types. Column lookups are
// by name so the SELECT column order does not matter.

func AccountsFromTable(tbl *table.Table) []Account {
	accounts := make([]Account, 0, tbl.Len())
	for i := range tbl.Rows {
		accounts = append(accounts, Account{
			ID:            asString(tbl.Value(i, "id")),
			DisplayName:   asString(tbl.Value(i, "displayName")),
			AccountType:   asString(tbl.Value(i, "accountType")),
			OwnershipType: asString(tbl.Value(i, "ownershipType")),
			Balance:       asInt64(tbl.Value(i, "balance")),
			Created:       asString(tbl.Value(i, "created")),
			Deleted:       asBool(tbl.Value(i, "deleted")),
		})
	}
	return accounts
}

func TransactionsFromTable(tbl *table.Table) []Transaction {
	txns := make([]Transaction, 0, tbl.Len())
	for i := range tbl.Rows {
		txns = append(txns, Transaction{
			ID:                 asString(tbl.Value(i, "id")),
			Status:             asString(tbl.Value(i, "status")),
			RawText:            asStringPtr(tbl.Value(i, "rawText")),
			Description:        asString(tbl.Value(i, "description")),
			Message:            asStringPtr(tbl.Value(i, "message")),
			IsCategorizable:    asBool(tbl.Value(i, "isCategorizable")),
			Held:               asBool(tbl.Value(i, "held")),
			HeldAmount:         asInt64Ptr(tbl.Value(i, "heldAmount")),
			RoundUpAmount:      asInt64Ptr(tbl.Value(i, "roundUpAmount")),
			BoostProportion:    asInt64Ptr(tbl.Value(i, "boostProportion")),
			CashbackDesc:       asStringPtr(tbl.Value(i, "cashbackDesc")),
			CashbackAmount:     asInt64Ptr(tbl.Value(i, "cashbackAmount")),
			Amount:             asInt64(tbl.Value(i, "amount")),
			ForeignCurrency:    asStringPtr(tbl.Value(i, "foreignCurrency")),
			ForeignAmount:      asInt64Ptr(tbl.Value(i, "foreignAmount")),
			CardPurchaseMethod: asStringPtr(tbl.Value(i, "cardPurchaseMethod")),
			CardNumberSuffix:   asStringPtr(tbl.Value(i, "cardNumberSuffix")),
			SettledAt:          asStringPtr(tbl.Value(i, "settledAt")),
			CreatedAt:          asString(tbl.Value(i, "createdAt")),
			Account:            asStringPtr(tbl.Value(i, "account")),
			TransferAccount:    asStringPtr(tbl.Value(i, "transferAccount")),
			Category:           asStringPtr(tbl.Value(i, "category")),
			ParentCategory:     asStringPtr(tbl.Value(i, "parentCategory")),
		})
	}
	return txns
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return ""
	}
}

func asStringPtr(v any) *string {
	if v == nil {
		return nil
	}
	s := asString(v)
	return &s
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int:
		return int64(n)
	default:
		return 0
	}
}

func asInt64Ptr(v any) *int64 {
	if v == nil {
		return nil
	}
	n := asInt64(v)
	return &n
}

func asBool(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
