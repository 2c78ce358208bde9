package store

import (
	"context"
	"errors"
	"time"

	"github.com/lumenart/credits/internal/credits/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrBusy means a lock wait timed out. The operation mutated nothing and
	// is safe to retry.
	ErrBusy = errors.New("store: database busy")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and makes transactions explicit so multi-step ledger operations
// can't accidentally straddle two of them.
type Store interface {
	Users() Users
	Transactions() Transactions
	DailyUsage() DailyUsage
	InviteCodes() InviteCodes
	Redemptions() Redemptions
	Audit() Audit

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Every ledger
	// mutation goes through this.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new engine user row (id comes from the auth service).
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// CountUsers returns the total number of registered users.
	CountUsers(ctx context.Context) (int64, error)
}

type Transactions interface {
	// CreateTransaction appends a ledger row (id is provided by app via ULID).
	CreateTransaction(ctx context.Context, t domain.CreditTransaction) error

	// GetTransactionByID returns a single ledger row.
	GetTransactionByID(ctx context.Context, id string) (domain.CreditTransaction, error)

	// ListSpendable returns the user's unconsumed, unexpired rows in spend
	// order: soonest-expiring first, never-expiring last, ties broken by
	// created_at then id ascending.
	ListSpendable(ctx context.Context, userID string, now time.Time) ([]domain.CreditTransaction, error)

	// MarkConsumed sets consumed_at on a row. It must only be called on rows
	// with consumed_at still NULL; the driver enforces this in the UPDATE
	// predicate and reports ErrNotFound if the row was already consumed.
	MarkConsumed(ctx context.Context, id string, consumedAt time.Time) error

	// SumSpendable returns the user's valid balance: total unconsumed,
	// unexpired credits at the given time.
	SumSpendable(ctx context.Context, userID string, now time.Time) (int64, error)

	// ListByUser returns all of a user's ledger rows, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.CreditTransaction, error)
}

type DailyUsage interface {
	// GetUsage returns the usage row for (userID, usageDate), or ErrNotFound
	// if the user has not consumed anything that day.
	GetUsage(ctx context.Context, userID, usageDate string) (domain.DailyUsage, error)

	// AddUsage upserts (userID, usageDate) adding amount to credits_consumed.
	AddUsage(ctx context.Context, id string, userID, usageDate string, amount int64) error
}

type InviteCodes interface {
	// CreateCode inserts a new invite code.
	CreateCode(ctx context.Context, c domain.InviteCode) error

	// GetCode returns a code row by its code string.
	GetCode(ctx context.Context, code string) (domain.InviteCode, error)

	// IncrementUses atomically bumps current_uses iff current_uses < max_uses.
	// Returns false when the guard failed, meaning concurrent redeemers
	// exhausted the code first. This is the authoritative exhaustion check.
	IncrementUses(ctx context.Context, code string, now time.Time) (bool, error)

	// MarkExhausted stamps the single-use convenience columns once
	// current_uses has reached max_uses.
	MarkExhausted(ctx context.Context, code, userID string, now time.Time) error

	// Deactivate clears is_active. Idempotent.
	Deactivate(ctx context.Context, code string, now time.Time) error

	// ListCodes returns all codes, newest first.
	ListCodes(ctx context.Context) ([]domain.InviteCode, error)

	// DeleteDeadCodes prunes expired codes that were never redeemed.
	// Codes with redemption history are kept so the audit chain stays
	// reconstructible.
	DeleteDeadCodes(ctx context.Context, now time.Time) error
}

type Redemptions interface {
	// CreateRedemption inserts a redemption row. The unique (code_id, user_id)
	// index maps a duplicate insert to ErrAlreadyExists.
	CreateRedemption(ctx context.Context, r domain.InviteRedemption) error

	// ListByCode returns a code's redemptions, oldest first.
	ListByCode(ctx context.Context, codeID string) ([]domain.InviteRedemption, error)

	// CountByCode returns how many users redeemed the code.
	CountByCode(ctx context.Context, codeID string) (int64, error)
}

type Audit interface {
	// CreateEntry appends an audit row. Callers treat failures as
	// best-effort; the store just reports them.
	CreateEntry(ctx context.Context, e domain.AuditEntry) error

	// ListByEntity returns audit rows for one entity, newest first. Used by
	// operators, never by business logic.
	ListByEntity(ctx context.Context, entityType, entityID string) ([]domain.AuditEntry, error)
}
