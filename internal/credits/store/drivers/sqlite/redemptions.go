package sqlite

import (
	"context"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/lumenart/credits/internal/credits/store/drivers/sqlite/gen"
)

type redemptionsRepo struct {
	q *gen.Queries
}

func (r *redemptionsRepo) CreateRedemption(ctx context.Context, red domain.InviteRedemption) error {
	return mapConstraint(r.q.CreateRedemption(ctx, gen.CreateRedemptionParams{
		ID:         red.ID,
		CodeID:     red.CodeID,
		UserID:     red.UserID,
		RedeemedAt: red.RedeemedAt,
		IpAddress:  red.IPAddress,
		UserAgent:  red.UserAgent,
		Metadata:   red.Metadata,
	}))
}

func (r *redemptionsRepo) ListByCode(ctx context.Context, codeID string) ([]domain.InviteRedemption, error) {
	rows, err := r.q.ListRedemptionsByCode(ctx, codeID)
	if err != nil {
		return nil, mapBusy(err)
	}
	out := make([]domain.InviteRedemption, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapRedemption(row))
	}
	return out, nil
}

func (r *redemptionsRepo) CountByCode(ctx context.Context, codeID string) (int64, error) {
	n, err := r.q.CountRedemptionsByCode(ctx, codeID)
	if err != nil {
		return 0, mapBusy(err)
	}
	return n, nil
}
