package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/lumenart/credits/internal/credits/store"
	"github.com/lumenart/credits/pkg/idx"
	"github.com/lumenart/credits/pkg/slogx"
)

var (
	ErrInvalidAmount          = errors.New("amount must be a positive integer")
	ErrInvalidTransactionType = errors.New("unknown transaction type")
	ErrInsufficientCredits    = errors.New("insufficient credits")
	ErrDailyLimitExceeded     = errors.New("daily credit limit exceeded")
)

// LedgerService owns issuance and consumption. Every mutation is one
// transaction; business failures roll back with zero ledger change.
type LedgerService struct {
	Store store.Store
}

// ConsumedBatch records how much of one ledger row a consume call took.
type ConsumedBatch struct {
	TransactionID string
	AmountTaken   int64
}

// ConsumeResult is the outcome of a successful consume call.
type ConsumeResult struct {
	Breakdown        []ConsumedBatch
	TotalConsumed    int64
	RemainingBalance int64
}

// DailyLimitStatus reports a user's standing against their daily cap.
type DailyLimitStatus struct {
	DailyLimit    int64 // 0 = uncapped
	ConsumedToday int64
	Remaining     int64 // 0 when uncapped; callers check DailyLimit first
}

// AddCredits issues a new credit batch to a user.
func (s *LedgerService) AddCredits(
	ctx context.Context,
	userID string,
	amount int64,
	txType domain.TransactionType,
	description string,
	expiresAt *time.Time,
) (string, error) {
	log := slogx.FromContext(ctx)

	if amount <= 0 {
		log.Warn("credit issuance with non-positive amount",
			slog.String("user_id", userID),
			slog.Int64("amount", amount),
		)
		return "", ErrInvalidAmount
	}
	if !txType.Valid() || txType == domain.TransactionCarryover {
		// Carryover rows only ever come out of a consume call.
		return "", ErrInvalidTransactionType
	}

	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return "", err
	}

	txn := domain.CreditTransaction{
		ID:          idx.New().String(),
		UserID:      userID,
		Amount:      amount,
		Type:        txType,
		Description: description,
		ExpiresAt:   expiresAt,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return s.addCreditsInTx(ctx, tx, txn)
	})
	if err != nil {
		return "", err
	}

	log.Info("credits issued",
		slog.String("transaction_id", txn.ID),
		slog.String("user_id", userID),
		slog.Int64("amount", amount),
		slog.String("type", string(txType)),
	)

	return txn.ID, nil
}

// addCreditsInTx appends one ledger row plus its audit entry inside an
// already-open transaction. The redemption coordinator calls this so the
// grant commits or rolls back together with the code increment.
func (s *LedgerService) addCreditsInTx(ctx context.Context, tx store.Tx, txn domain.CreditTransaction) error {
	if err := tx.Transactions().CreateTransaction(ctx, txn); err != nil {
		return err
	}

	snapshot, _ := json.Marshal(map[string]any{
		"amount": txn.Amount,
		"type":   txn.Type,
	})
	recordAudit(ctx, tx, domain.AuditEntry{
		UserID:     &txn.UserID,
		Action:     domain.AuditCreditsAdded,
		EntityType: "credit_transaction",
		EntityID:   txn.ID,
		NewValue:   string(snapshot),
	})
	return nil
}

// Consume spends amount credits from the user's ledger, soonest-expiring
// batches first. The daily cap is checked before any ledger scan, so a
// rate-limited user is rejected the same way whether or not they could
// afford the spend. A partially needed batch is consumed whole and its
// remainder re-issued as a carryover row; the ledger never edits amounts.
func (s *LedgerService) Consume(
	ctx context.Context,
	userID string,
	amount int64,
	description string,
) (ConsumeResult, error) {
	log := slogx.FromContext(ctx)

	if amount <= 0 {
		return ConsumeResult{}, ErrInvalidAmount
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ConsumeResult{}, ErrUserNotFound
		}
		log.Error("failed to fetch user", slog.Any("error", err))
		return ConsumeResult{}, err
	}

	now := time.Now().UTC()
	usageDate := domain.UsageDate(now)

	var result ConsumeResult
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// Daily gate first, before any ledger work.
		var consumedToday int64
		usage, err := tx.DailyUsage().GetUsage(ctx, userID, usageDate)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}
		if err == nil {
			consumedToday = usage.CreditsConsumed
		}
		if user.DailyLimit > 0 && consumedToday+amount > user.DailyLimit {
			return ErrDailyLimitExceeded
		}

		rows, err := tx.Transactions().ListSpendable(ctx, userID, now)
		if err != nil {
			return err
		}

		need := amount
		breakdown := make([]ConsumedBatch, 0, 2)
		for _, row := range rows {
			if need == 0 {
				break
			}
			if err := tx.Transactions().MarkConsumed(ctx, row.ID, now); err != nil {
				return err
			}
			if row.Amount <= need {
				breakdown = append(breakdown, ConsumedBatch{TransactionID: row.ID, AmountTaken: row.Amount})
				need -= row.Amount
				continue
			}

			// Consume the whole row and carry the remainder forward with
			// the same expiry.
			breakdown = append(breakdown, ConsumedBatch{TransactionID: row.ID, AmountTaken: need})
			carryover := domain.CreditTransaction{
				ID:          idx.New().String(),
				UserID:      userID,
				Amount:      row.Amount - need,
				Type:        domain.TransactionCarryover,
				Description: "remainder of " + row.ID,
				ExpiresAt:   row.ExpiresAt,
				CreatedAt:   now,
			}
			if err := tx.Transactions().CreateTransaction(ctx, carryover); err != nil {
				return err
			}
			need = 0
		}
		if need > 0 {
			// Rolling back also reverts every MarkConsumed above.
			return ErrInsufficientCredits
		}

		if err := tx.DailyUsage().AddUsage(ctx, idx.New().String(), userID, usageDate, amount); err != nil {
			return err
		}

		balance, err := tx.Transactions().SumSpendable(ctx, userID, now)
		if err != nil {
			return err
		}

		result = ConsumeResult{
			Breakdown:        breakdown,
			TotalConsumed:    amount,
			RemainingBalance: balance,
		}

		snapshot, _ := json.Marshal(map[string]any{
			"amount":      amount,
			"description": description,
			"batches":     len(breakdown),
		})
		recordAudit(ctx, tx, domain.AuditEntry{
			UserID:     &userID,
			Action:     domain.AuditCreditsConsumed,
			EntityType: "user",
			EntityID:   userID,
			NewValue:   string(snapshot),
		})
		return nil
	})
	if err != nil {
		return ConsumeResult{}, err
	}

	log.Info("credits consumed",
		slog.String("user_id", userID),
		slog.Int64("amount", amount),
		slog.Int("batches", len(result.Breakdown)),
		slog.Int64("remaining_balance", result.RemainingBalance),
	)

	return result, nil
}

// GetValidCredits returns the user's spendable balance right now.
func (s *LedgerService) GetValidCredits(ctx context.Context, userID string) (int64, error) {
	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return s.Store.Transactions().SumSpendable(ctx, userID, time.Now().UTC())
}

// CheckDailyLimit reports today's usage against the user's cap.
func (s *LedgerService) CheckDailyLimit(ctx context.Context, userID string) (DailyLimitStatus, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return DailyLimitStatus{}, ErrUserNotFound
		}
		return DailyLimitStatus{}, err
	}

	status := DailyLimitStatus{DailyLimit: user.DailyLimit}

	usage, err := s.Store.DailyUsage().GetUsage(ctx, userID, domain.UsageDate(time.Now()))
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return DailyLimitStatus{}, err
	}
	if err == nil {
		status.ConsumedToday = usage.CreditsConsumed
	}

	if status.DailyLimit > 0 {
		status.Remaining = status.DailyLimit - status.ConsumedToday
		if status.Remaining < 0 {
			status.Remaining = 0
		}
	}
	return status, nil
}

// ListTransactions returns a user's full ledger history, newest first.
func (s *LedgerService) ListTransactions(ctx context.Context, userID string) ([]domain.CreditTransaction, error) {
	if _, err := s.Store.Users().GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.Store.Transactions().ListByUser(ctx, userID)
}
