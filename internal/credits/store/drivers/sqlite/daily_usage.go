package sqlite

import (
	"context"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/lumenart/credits/internal/credits/store/drivers/sqlite/gen"
)

type dailyUsageRepo struct {
	q *gen.Queries
}

func (r *dailyUsageRepo) GetUsage(ctx context.Context, userID, usageDate string) (domain.DailyUsage, error) {
	row, err := r.q.GetDailyUsage(ctx, gen.GetDailyUsageParams{
		UserID:    userID,
		UsageDate: usageDate,
	})
	if err != nil {
		return domain.DailyUsage{}, mapNotFound(err)
	}
	return mapDailyUsage(row), nil
}

func (r *dailyUsageRepo) AddUsage(ctx context.Context, id string, userID, usageDate string, amount int64) error {
	return mapBusy(r.q.AddDailyUsage(ctx, gen.AddDailyUsageParams{
		ID:              id,
		UserID:          userID,
		UsageDate:       usageDate,
		CreditsConsumed: amount,
	}))
}
