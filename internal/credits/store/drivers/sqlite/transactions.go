package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/lumenart/credits/internal/credits/store"
	"github.com/lumenart/credits/internal/credits/store/drivers/sqlite/gen"
)

type transactionsRepo struct {
	q *gen.Queries
}

func (r *transactionsRepo) CreateTransaction(ctx context.Context, t domain.CreditTransaction) error {
	return mapConstraint(r.q.CreateTransaction(ctx, gen.CreateTransactionParams{
		ID:          t.ID,
		UserID:      t.UserID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Description: t.Description,
		ExpiresAt:   mapOptionalTime(t.ExpiresAt),
		CreatedAt:   t.CreatedAt,
	}))
}

func (r *transactionsRepo) GetTransactionByID(ctx context.Context, id string) (domain.CreditTransaction, error) {
	row, err := r.q.GetTransactionByID(ctx, id)
	if err != nil {
		return domain.CreditTransaction{}, mapNotFound(err)
	}
	return mapTransaction(row), nil
}

func (r *transactionsRepo) ListSpendable(ctx context.Context, userID string, now time.Time) ([]domain.CreditTransaction, error) {
	rows, err := r.q.ListSpendableTransactions(ctx, gen.ListSpendableTransactionsParams{
		UserID: userID,
		Now:    sql.NullTime{Time: now, Valid: true},
	})
	if err != nil {
		return nil, mapBusy(err)
	}
	out := make([]domain.CreditTransaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapTransaction(row))
	}
	return out, nil
}

func (r *transactionsRepo) MarkConsumed(ctx context.Context, id string, consumedAt time.Time) error {
	affected, err := r.q.MarkTransactionConsumed(ctx, gen.MarkTransactionConsumedParams{
		ConsumedAt: sql.NullTime{Time: consumedAt, Valid: true},
		ID:         id,
	})
	if err != nil {
		return mapBusy(err)
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *transactionsRepo) SumSpendable(ctx context.Context, userID string, now time.Time) (int64, error) {
	balance, err := r.q.SumSpendableCredits(ctx, gen.SumSpendableCreditsParams{
		UserID: userID,
		Now:    sql.NullTime{Time: now, Valid: true},
	})
	if err != nil {
		return 0, mapBusy(err)
	}
	return balance, nil
}

func (r *transactionsRepo) ListByUser(ctx context.Context, userID string) ([]domain.CreditTransaction, error) {
	rows, err := r.q.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, mapBusy(err)
	}
	out := make([]domain.CreditTransaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapTransaction(row))
	}
	return out, nil
}
