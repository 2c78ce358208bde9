package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/lumenart/credits/internal/credits/store/drivers/sqlite/gen"
)

type inviteCodesRepo struct {
	q *gen.Queries
}

func (r *inviteCodesRepo) CreateCode(ctx context.Context, c domain.InviteCode) error {
	return mapConstraint(r.q.CreateInviteCode(ctx, gen.CreateInviteCodeParams{
		Code:             c.Code,
		CreatedByAdminID: c.CreatedByAdminID,
		CreditsValue:     c.CreditsValue,
		CreditsExpiresAt: mapOptionalTime(c.CreditsExpiresAt),
		MaxUses:          c.MaxUses,
		Metadata:         c.Metadata,
		ExpiresAt:        mapOptionalTime(c.ExpiresAt),
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}))
}

func (r *inviteCodesRepo) GetCode(ctx context.Context, code string) (domain.InviteCode, error) {
	row, err := r.q.GetInviteCode(ctx, code)
	if err != nil {
		return domain.InviteCode{}, mapNotFound(err)
	}
	return mapInviteCode(row), nil
}

func (r *inviteCodesRepo) IncrementUses(ctx context.Context, code string, now time.Time) (bool, error) {
	affected, err := r.q.IncrementInviteCodeUses(ctx, gen.IncrementInviteCodeUsesParams{
		UpdatedAt: now,
		Code:      code,
	})
	if err != nil {
		return false, mapBusy(err)
	}
	return affected > 0, nil
}

func (r *inviteCodesRepo) MarkExhausted(ctx context.Context, code, userID string, now time.Time) error {
	return mapBusy(r.q.MarkInviteCodeExhausted(ctx, gen.MarkInviteCodeExhaustedParams{
		UsedByUserID: sql.NullString{String: userID, Valid: true},
		UsedAt:       sql.NullTime{Time: now, Valid: true},
		UpdatedAt:    now,
		Code:         code,
	}))
}

func (r *inviteCodesRepo) Deactivate(ctx context.Context, code string, now time.Time) error {
	return mapBusy(r.q.DeactivateInviteCode(ctx, gen.DeactivateInviteCodeParams{
		UpdatedAt: now,
		Code:      code,
	}))
}

func (r *inviteCodesRepo) ListCodes(ctx context.Context) ([]domain.InviteCode, error) {
	rows, err := r.q.ListInviteCodes(ctx)
	if err != nil {
		return nil, mapBusy(err)
	}
	out := make([]domain.InviteCode, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapInviteCode(row))
	}
	return out, nil
}

func (r *inviteCodesRepo) DeleteDeadCodes(ctx context.Context, now time.Time) error {
	return mapBusy(r.q.DeleteDeadInviteCodes(ctx, sql.NullTime{Time: now, Valid: true}))
}
