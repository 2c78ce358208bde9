package service

import (
	"context"
	"testing"
	"time"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/stretchr/testify/require"
)

func TestAddCreditsValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	seedUser(t, st, "user-1", 0)

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		_, err := ledger.AddCredits(ctx, "user-1", 0, domain.TransactionPurchase, "", nil)
		require.ErrorIs(t, err, ErrInvalidAmount)

		_, err = ledger.AddCredits(ctx, "user-1", -5, domain.TransactionPurchase, "", nil)
		require.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("rejects unknown and carryover types", func(t *testing.T) {
		_, err := ledger.AddCredits(ctx, "user-1", 10, "refund", "", nil)
		require.ErrorIs(t, err, ErrInvalidTransactionType)

		_, err = ledger.AddCredits(ctx, "user-1", 10, domain.TransactionCarryover, "", nil)
		require.ErrorIs(t, err, ErrInvalidTransactionType)
	})

	t.Run("rejects unknown users", func(t *testing.T) {
		_, err := ledger.AddCredits(ctx, "nobody", 10, domain.TransactionPurchase, "", nil)
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("issues and never touches daily usage", func(t *testing.T) {
		id, err := ledger.AddCredits(ctx, "user-1", 100, domain.TransactionPurchase, "starter pack", nil)
		require.NoError(t, err)
		require.NotEmpty(t, id)

		balance, err := ledger.GetValidCredits(ctx, "user-1")
		require.NoError(t, err)
		require.EqualValues(t, 100, balance)

		status, err := ledger.CheckDailyLimit(ctx, "user-1")
		require.NoError(t, err)
		require.Zero(t, status.ConsumedToday)
	})
}

func TestConsumeSpendsSoonestExpiringFirst(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	seedUser(t, st, "user-1", 0)

	// A(30) expires in a day, B(50) in five days.
	aID, err := ledger.AddCredits(ctx, "user-1", 30, domain.TransactionPurchase, "A",
		ptrTime(time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	bID, err := ledger.AddCredits(ctx, "user-1", 50, domain.TransactionPurchase, "B",
		ptrTime(time.Now().Add(5*24*time.Hour)))
	require.NoError(t, err)

	res, err := ledger.Consume(ctx, "user-1", 40, "render job")
	require.NoError(t, err)

	require.EqualValues(t, 40, res.TotalConsumed)
	require.EqualValues(t, 40, res.RemainingBalance)
	require.Len(t, res.Breakdown, 2)
	require.Equal(t, aID, res.Breakdown[0].TransactionID)
	require.EqualValues(t, 30, res.Breakdown[0].AmountTaken)
	require.Equal(t, bID, res.Breakdown[1].TransactionID)
	require.EqualValues(t, 10, res.Breakdown[1].AmountTaken)

	// B is consumed whole; a 40-credit carryover row inherits its expiry.
	spendable, err := st.Transactions().ListSpendable(ctx, "user-1", time.Now())
	require.NoError(t, err)
	require.Len(t, spendable, 1)
	require.Equal(t, domain.TransactionCarryover, spendable[0].Type)
	require.EqualValues(t, 40, spendable[0].Amount)
	require.NotNil(t, spendable[0].ExpiresAt)

	b, err := st.Transactions().GetTransactionByID(ctx, bID)
	require.NoError(t, err)
	require.NotNil(t, b.ConsumedAt)
	require.EqualValues(t, 50, b.Amount) // never edited in place
	require.WithinDuration(t, *spendable[0].ExpiresAt, *b.ExpiresAt, time.Second)
}

func TestConsumeExactDrainLeavesLaterBatchUntouched(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	seedUser(t, st, "user-1", 0)

	aID, err := ledger.AddCredits(ctx, "user-1", 30, domain.TransactionPurchase, "A",
		ptrTime(time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	bID, err := ledger.AddCredits(ctx, "user-1", 50, domain.TransactionPurchase, "B",
		ptrTime(time.Now().Add(5*24*time.Hour)))
	require.NoError(t, err)

	res, err := ledger.Consume(ctx, "user-1", 30, "render job")
	require.NoError(t, err)
	require.Len(t, res.Breakdown, 1)
	require.Equal(t, aID, res.Breakdown[0].TransactionID)

	b, err := st.Transactions().GetTransactionByID(ctx, bID)
	require.NoError(t, err)
	require.Nil(t, b.ConsumedAt)

	balance, err := ledger.GetValidCredits(ctx, "user-1")
	require.NoError(t, err)
	require.EqualValues(t, 50, balance)
}

func TestConsumeExactBalanceBoundary(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	seedUser(t, st, "user-1", 0)

	_, err := ledger.AddCredits(ctx, "user-1", 25, domain.TransactionBonus, "", nil)
	require.NoError(t, err)

	t.Run("over-spend fails with zero mutation", func(t *testing.T) {
		before, err := st.Transactions().ListSpendable(ctx, "user-1", time.Now())
		require.NoError(t, err)

		_, err = ledger.Consume(ctx, "user-1", 26, "too much")
		require.ErrorIs(t, err, ErrInsufficientCredits)

		after, err := st.Transactions().ListSpendable(ctx, "user-1", time.Now())
		require.NoError(t, err)
		require.Equal(t, before, after)

		status, err := ledger.CheckDailyLimit(ctx, "user-1")
		require.NoError(t, err)
		require.Zero(t, status.ConsumedToday)
	})

	t.Run("exact balance drains to zero", func(t *testing.T) {
		res, err := ledger.Consume(ctx, "user-1", 25, "exact")
		require.NoError(t, err)
		require.EqualValues(t, 0, res.RemainingBalance)

		_, err = ledger.Consume(ctx, "user-1", 1, "empty")
		require.ErrorIs(t, err, ErrInsufficientCredits)
	})
}

func TestConsumeDailyLimitWinsOverBalance(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	seedUser(t, st, "user-1", 15)

	_, err := ledger.AddCredits(ctx, "user-1", 20, domain.TransactionPurchase, "",
		ptrTime(time.Now().Add(24*time.Hour)))
	require.NoError(t, err)

	_, err = ledger.Consume(ctx, "user-1", 10, "first")
	require.NoError(t, err)

	// Balance (10) would cover it, but 10+10 > 15.
	_, err = ledger.Consume(ctx, "user-1", 10, "second")
	require.ErrorIs(t, err, ErrDailyLimitExceeded)

	status, err := ledger.CheckDailyLimit(ctx, "user-1")
	require.NoError(t, err)
	require.EqualValues(t, 10, status.ConsumedToday)
	require.EqualValues(t, 5, status.Remaining)

	balance, err := ledger.GetValidCredits(ctx, "user-1")
	require.NoError(t, err)
	require.EqualValues(t, 10, balance)
}

func TestConsumeUncappedUserHasNoDailyGate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	seedUser(t, st, "user-1", 0)

	_, err := ledger.AddCredits(ctx, "user-1", 1000, domain.TransactionPurchase, "", nil)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		_, err := ledger.Consume(ctx, "user-1", 200, "batch")
		require.NoError(t, err)
	}

	balance, err := ledger.GetValidCredits(ctx, "user-1")
	require.NoError(t, err)
	require.EqualValues(t, 200, balance)
}

func TestConsumeIgnoresExpiredBatches(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	seedUser(t, st, "user-1", 0)

	// Insert an already-expired batch directly; AddCredits would reject it
	// only at the HTTP boundary, the ledger itself just filters it out.
	expired := domain.CreditTransaction{
		ID:        "00EXPIRED0000000000000000X",
		UserID:    "user-1",
		Amount:    500,
		Type:      domain.TransactionPurchase,
		ExpiresAt: ptrTime(time.Now().Add(-time.Hour)),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	require.NoError(t, st.Transactions().CreateTransaction(ctx, expired))

	_, err := ledger.AddCredits(ctx, "user-1", 10, domain.TransactionBonus, "", nil)
	require.NoError(t, err)

	balance, err := ledger.GetValidCredits(ctx, "user-1")
	require.NoError(t, err)
	require.EqualValues(t, 10, balance)

	_, err = ledger.Consume(ctx, "user-1", 11, "needs the expired batch")
	require.ErrorIs(t, err, ErrInsufficientCredits)
}

func TestLedgerConservation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	seedUser(t, st, "user-1", 0)

	_, err := ledger.AddCredits(ctx, "user-1", 100, domain.TransactionPurchase, "", nil)
	require.NoError(t, err)
	_, err = ledger.AddCredits(ctx, "user-1", 50, domain.TransactionBonus, "",
		ptrTime(time.Now().Add(48*time.Hour)))
	require.NoError(t, err)

	_, err = ledger.Consume(ctx, "user-1", 30, "job 1")
	require.NoError(t, err)
	_, err = ledger.Consume(ctx, "user-1", 45, "job 2")
	require.NoError(t, err)

	balance, err := ledger.GetValidCredits(ctx, "user-1")
	require.NoError(t, err)
	require.EqualValues(t, 150-30-45, balance)

	// The sum of still-spendable rows equals the reported balance, and
	// every row is either fully spendable or fully consumed.
	all, err := ledger.ListTransactions(ctx, "user-1")
	require.NoError(t, err)

	var spendableSum int64
	now := time.Now()
	for _, txn := range all {
		require.GreaterOrEqual(t, txn.Amount, int64(0))
		if txn.Spendable(now) {
			spendableSum += txn.Amount
		}
	}
	require.Equal(t, balance, spendableSum)

	status, err := ledger.CheckDailyLimit(ctx, "user-1")
	require.NoError(t, err)
	require.EqualValues(t, 75, status.ConsumedToday)
}

func TestConsumeUnknownUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}

	_, err := ledger.Consume(ctx, "ghost", 10, "")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = ledger.GetValidCredits(ctx, "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = ledger.CheckDailyLimit(ctx, "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}
