package domain

import "time"

// TransactionType classifies how a credit batch entered the ledger.
type TransactionType string

const (
	TransactionPurchase   TransactionType = "purchase"
	TransactionBonus      TransactionType = "bonus"
	TransactionAdminGrant TransactionType = "admin_grant"
	TransactionInvite     TransactionType = "invite_redemption"

	// TransactionCarryover re-issues the unspent remainder of a partially
	// consumed batch. The ledger never edits amounts in place; a partial
	// spend consumes the whole row and carries the rest forward.
	TransactionCarryover TransactionType = "carryover"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionPurchase, TransactionBonus, TransactionAdminGrant,
		TransactionInvite, TransactionCarryover:
		return true
	}
	return false
}

// CreditTransaction is one append-only ledger row. Amount is a whole number
// of credits and is never edited after creation; ConsumedAt is set at most
// once and never cleared.
type CreditTransaction struct {
	ID          string
	UserID      string
	Amount      int64
	Type        TransactionType
	Description string
	ExpiresAt   *time.Time // nil = never expires
	ConsumedAt  *time.Time // nil = still spendable
	CreatedAt   time.Time
}

// Spendable reports whether the batch can still be consumed at the given time.
func (tx CreditTransaction) Spendable(now time.Time) bool {
	if tx.ConsumedAt != nil {
		return false
	}
	if tx.ExpiresAt != nil && !tx.ExpiresAt.After(now) {
		return false
	}
	return true
}
