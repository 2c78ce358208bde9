package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/lumenart/credits/internal/credits/store"
	"github.com/lumenart/credits/internal/credits/store/drivers/sqlite/gen"
	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	q   *gen.Queries
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs and bound lock waits so contended writers surface
	// store.ErrBusy instead of failing immediately.
	for _, pragma := range []string{
		`PRAGMA foreign_keys = ON;`,
		`PRAGMA busy_timeout = 5000;`,
	} {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Store{
		db:  db,
		q:   gen.New(db),
		dsn: dsn,
	}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, mapBusy(err)
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	// Execute the function
	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	// Commit on success
	return mapBusy(tx.Commit())
}

func (s *Store) Users() store.Users             { return &usersRepo{q: s.q} }
func (s *Store) Transactions() store.Transactions {
	return &transactionsRepo{q: s.q}
}
func (s *Store) DailyUsage() store.DailyUsage   { return &dailyUsageRepo{q: s.q} }
func (s *Store) InviteCodes() store.InviteCodes { return &inviteCodesRepo{q: s.q} }
func (s *Store) Redemptions() store.Redemptions { return &redemptionsRepo{q: s.q} }
func (s *Store) Audit() store.Audit             { return &auditRepo{q: s.q} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return mapBusy(err)
}

// mapBusy converts SQLITE_BUSY lock timeouts into the retryable sentinel.
func mapBusy(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked") {
		return store.ErrBusy
	}
	return err
}

// mapConstraint converts unique/primary key violations into ErrAlreadyExists.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "constraint failed: UNIQUE") {
		return store.ErrAlreadyExists
	}
	return mapBusy(err)
}

func mapNullStringPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func mapOptionalString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: *s, Valid: true}
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		val := nt.Time
		return &val
	}
	return nil
}

func mapOptionalTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func mapUser(row gen.User) domain.User {
	return domain.User{
		ID:          row.ID,
		DisplayName: row.DisplayName,
		DailyLimit:  row.DailyLimit,
		IsAdmin:     row.IsAdmin,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func mapTransaction(row gen.CreditTransaction) domain.CreditTransaction {
	return domain.CreditTransaction{
		ID:          row.ID,
		UserID:      row.UserID,
		Amount:      row.Amount,
		Type:        domain.TransactionType(row.Type),
		Description: row.Description,
		ExpiresAt:   mapNullTimePtr(row.ExpiresAt),
		ConsumedAt:  mapNullTimePtr(row.ConsumedAt),
		CreatedAt:   row.CreatedAt,
	}
}

func mapDailyUsage(row gen.DailyUsage) domain.DailyUsage {
	return domain.DailyUsage{
		ID:              row.ID,
		UserID:          row.UserID,
		UsageDate:       row.UsageDate,
		CreditsConsumed: row.CreditsConsumed,
	}
}

func mapInviteCode(row gen.InviteCode) domain.InviteCode {
	return domain.InviteCode{
		Code:             row.Code,
		CreatedByAdminID: row.CreatedByAdminID,
		CreditsValue:     row.CreditsValue,
		CreditsExpiresAt: mapNullTimePtr(row.CreditsExpiresAt),
		MaxUses:          row.MaxUses,
		CurrentUses:      row.CurrentUses,
		IsActive:         row.IsActive,
		Metadata:         row.Metadata,
		UsedByUserID:     mapNullStringPtr(row.UsedByUserID),
		UsedAt:           mapNullTimePtr(row.UsedAt),
		ExpiresAt:        mapNullTimePtr(row.ExpiresAt),
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func mapRedemption(row gen.InviteCodeRedemption) domain.InviteRedemption {
	return domain.InviteRedemption{
		ID:         row.ID,
		CodeID:     row.CodeID,
		UserID:     row.UserID,
		RedeemedAt: row.RedeemedAt,
		IPAddress:  row.IpAddress,
		UserAgent:  row.UserAgent,
		Metadata:   row.Metadata,
	}
}

func mapAuditEntry(row gen.AuditTrail) domain.AuditEntry {
	return domain.AuditEntry{
		ID:         row.ID,
		UserID:     mapNullStringPtr(row.UserID),
		Action:     row.Action,
		EntityType: row.EntityType,
		EntityID:   row.EntityID,
		OldValue:   row.OldValue,
		NewValue:   row.NewValue,
		CreatedAt:  row.CreatedAt,
	}
}
