package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/lumenart/credits/internal/credits/store"
	"github.com/lumenart/credits/pkg/idx"
	"github.com/lumenart/credits/pkg/slogx"
)

// AuditService exposes the audit trail to operators. Mutating services write
// entries through recordAudit so the write lands inside their own transaction.
type AuditService struct {
	Store store.Store
}

// Record appends a standalone audit entry, best-effort.
func (s *AuditService) Record(ctx context.Context, action, entityType, entityID, oldValue, newValue string, userID *string) {
	recordAudit(ctx, s.Store, domain.AuditEntry{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OldValue:   oldValue,
		NewValue:   newValue,
	})
}

// ListByEntity returns the audit history for one entity, newest first.
func (s *AuditService) ListByEntity(ctx context.Context, entityType, entityID string) ([]domain.AuditEntry, error) {
	return s.Store.Audit().ListByEntity(ctx, entityType, entityID)
}

// recordAudit appends an audit entry through st, which may be a live
// transaction. Failures are logged and swallowed; an audit miss must never
// abort the ledger or redemption work it accompanies.
func recordAudit(ctx context.Context, st store.Store, e domain.AuditEntry) {
	if e.ID == "" {
		e.ID = idx.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	if err := st.Audit().CreateEntry(ctx, e); err != nil {
		slogx.FromContext(ctx).Warn("failed to write audit entry",
			slog.String("action", e.Action),
			slog.String("entity_type", e.EntityType),
			slog.String("entity_id", e.EntityID),
			slog.Any("error", err),
		)
	}
}
