package sqlite

import (
	"context"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/lumenart/credits/internal/credits/store/drivers/sqlite/gen"
)

type auditRepo struct {
	q *gen.Queries
}

func (r *auditRepo) CreateEntry(ctx context.Context, e domain.AuditEntry) error {
	return mapConstraint(r.q.CreateAuditEntry(ctx, gen.CreateAuditEntryParams{
		ID:         e.ID,
		UserID:     mapOptionalString(e.UserID),
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		OldValue:   e.OldValue,
		NewValue:   e.NewValue,
		CreatedAt:  e.CreatedAt,
	}))
}

func (r *auditRepo) ListByEntity(ctx context.Context, entityType, entityID string) ([]domain.AuditEntry, error) {
	rows, err := r.q.ListAuditByEntity(ctx, gen.ListAuditByEntityParams{
		EntityType: entityType,
		EntityID:   entityID,
	})
	if err != nil {
		return nil, mapBusy(err)
	}
	out := make([]domain.AuditEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapAuditEntry(row))
	}
	return out, nil
}
