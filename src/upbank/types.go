package upbank

// Wire types for the slices of the Up API envelope this client reads.
// Up wraps everything in a JSON:API document: data plus pagination links.

type money struct {
	CurrencyCode     string `json:"currencyCode"`
	Value            string `json:"value"`
	ValueInBaseUnits int64  `json:"valueInBaseUnits"`
}

type pageLinks struct {
	Prev *string `json:"prev"`
	Next *string `json:"next"`
}

type relationship struct {
	Data *struct {
		Type string `json:"type"`
		ID   string `json:"id"`
	} `json:"data"`
}

func (r relationship) id() *string {
	if r.Data == nil {
		return nil
	}
	id := r.Data.ID
	return &id
}

type accountResource struct {
	ID         string `json:"id"`
	Attributes struct {
		DisplayName   string `json:"displayName"`
		AccountType   string `json:"accountType"`
		OwnershipType string `json:"ownershipType"`
		Balance       money  `json:"balance"`
		CreatedAt     string `json:"createdAt"`
	} `json:"attributes"`
}

type accountsPage struct {
	Data  []accountResource `json:"data"`
	Links pageLinks         `json:"links"`
}

type transactionResource struct {
	ID         string `json:"id"`
	Attributes struct {
		Status          string  `json:"status"`
		RawText         *string `json:"rawText"`
		Description     string  `json:"description"`
		Message         *string `json:"message"`
		IsCategorizable bool    `json:"isCategorizable"`
		HoldInfo        *struct {
			Amount money `json:"amount"`
		} `json:"holdInfo"`
		RoundUp *struct {
			Amount       money  `json:"amount"`
			BoostPortion *money `json:"boostPortion"`
		} `json:"roundUp"`
		Cashback *struct {
			Description string `json:"description"`
			Amount      money  `json:"amount"`
		} `json:"cashback"`
		Amount             money   `json:"amount"`
		ForeignAmount      *money  `json:"foreignAmount"`
		CardPurchaseMethod *struct {
			Method           string  `json:"method"`
			CardNumberSuffix *string `json:"cardNumberSuffix"`
		} `json:"cardPurchaseMethod"`
		SettledAt *string `json:"settledAt"`
		CreatedAt string  `json:"createdAt"`
	} `json:"attributes"`
	Relationships struct {
		Account         relationship `json:"account"`
		TransferAccount relationship `json:"transferAccount"`
		Category        relationship `json:"category"`
		ParentCategory  relationship `json:"parentCategory"`
	} `json:"relationships"`
}

type transactionsPage struct {
	Data  []transactionResource `json:"data"`
	Links pageLinks             `json:"links"`
}
