package sync

import (
	"context"

	"github.com/Mammoth1930/FinanceTracker/src/models"
)

const (
	selectAccountIDs = `SELECT id FROM "Accounts"`

	// The update path deliberately leaves the deleted flag alone: an account
	// that reappears after being marked deleted stays flagged. See DESIGN.md.
	updateAccount = `UPDATE "Accounts" SET "displayName" = $1, balance = $2 WHERE id = $3`

	insertAccount = `INSERT INTO "Accounts" (id, "displayName", "accountType", "ownershipType", balance, created)
		VALUES ($1, $2, $3, $4, $5, $6)`

	markAccountDeleted = `UPDATE "Accounts" SET deleted = TRUE, balance = 0 WHERE id = $1`
)

// accountPlan is the set of statements a reconciliation will apply, split by
// kind. Slices keep snapshot order; deletes keep stored order.
type accountPlan struct {
	inserts []models.Account
	updates []models.Account
	deletes []string
}

// planAccounts diffs a full snapshot against the set of stored account ids.
// Snapshot accounts already stored become updates, unknown ones become
// inserts, and stored ids absent from the snapshot become soft-deletes: the
// bank only ever reports currently-open accounts, so a stored account
// missing from a complete snapshot has been closed.
func planAccounts(storedIDs []string, snapshot []models.Account) accountPlan {
	var plan accountPlan

	remaining := make(map[string]struct{}, len(storedIDs))
	for _, id := range storedIDs {
		remaining[id] = struct{}{}
	}

	for _, acct := range snapshot {
		if _, ok := remaining[acct.ID]; ok {
			plan.updates = append(plan.updates, acct)
			delete(remaining, acct.ID)
			continue
		}
		plan.inserts = append(plan.inserts, acct)
	}

	for _, id := range storedIDs {
		if _, ok := remaining[id]; ok {
			plan.deletes = append(plan.deletes, id)
		}
	}

	return plan
}

// ReconcileAccounts brings the Accounts table in line with a complete
// snapshot of currently-open accounts. Each statement commits on its own:
// a failure partway through leaves the earlier statements applied.
// Statements apply grouped by kind (all updates, then all inserts, then all
// soft-deletes), not interleaved in snapshot order, so the intermediate
// states a crash can leave behind follow that grouping.
func ReconcileAccounts(ctx context.Context, st Store, snapshot []models.Account) error {
	stored, err := st.Query(ctx, selectAccountIDs)
	if err != nil {
		return err
	}

	plan := planAccounts(stored.Strings("id"), snapshot)

	for _, acct := range plan.updates {
		if err := st.Execute(ctx, updateAccount, acct.DisplayName, acct.Balance, acct.ID); err != nil {
			return err
		}
	}
	for _, acct := range plan.inserts {
		err := st.Execute(ctx, insertAccount,
			acct.ID, acct.DisplayName, acct.AccountType, acct.OwnershipType, acct.Balance, acct.Created)
		if err != nil {
			return err
		}
	}
	for _, id := range plan.deletes {
		if err := st.Execute(ctx, markAccountDeleted, id); err != nil {
			return err
		}
	}
	return nil
}
