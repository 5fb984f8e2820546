package store

import "context"

// Column names are camelCase to match what the bank API returns, so every
// non-lowercase identifier is quoted.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS "Accounts" (
		id TEXT,
		"displayName" TEXT,
		"accountType" TEXT,
		"ownershipType" TEXT,
		balance BIGINT,
		created TEXT,
		deleted BOOLEAN DEFAULT FALSE,
		PRIMARY KEY (id)
	)`,
	`CREATE TABLE IF NOT EXISTS "Transactions" (
		id TEXT,
		status TEXT,
		"rawText" TEXT,
		description TEXT,
		message TEXT,
		"isCategorizable" BOOLEAN,
		held BOOLEAN,
		"heldAmount" BIGINT,
		"roundUpAmount" BIGINT,
		"boostProportion" BIGINT,
		"cashbackDesc" TEXT,
		"cashbackAmount" BIGINT,
		amount BIGINT,
		"foreignCurrency" TEXT,
		"foreignAmount" BIGINT,
		"cardPurchaseMethod" TEXT,
		"cardNumberSuffix" TEXT,
		"settledAt" TEXT,
		"createdAt" TEXT,
		account TEXT,
		"transferAccount" TEXT,
		category TEXT,
		"parentCategory" TEXT,
		PRIMARY KEY (id),
		FOREIGN KEY (account) REFERENCES "Accounts" (id),
		FOREIGN KEY ("transferAccount") REFERENCES "Accounts" (id)
	)`,
}

// InitSchema creates the Accounts and Transactions tables if they do not
// exist. Safe to call on every startup; an existing table is left untouched,
// with no detection of drift from the expected shape.
func (s *Store) InitSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if err := s.Execute(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
