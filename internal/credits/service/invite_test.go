package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateCodeValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	invites := &InviteService{Store: st, Ledger: &LedgerService{Store: st}}
	seedAdmin(t, st, "admin-1")

	t.Run("rejects non-positive credit value", func(t *testing.T) {
		_, err := invites.CreateCode(ctx, "admin-1", 0, nil, 1, nil, "")
		require.ErrorIs(t, err, ErrInvalidInviteRequest)
	})

	t.Run("rejects max uses below one", func(t *testing.T) {
		_, err := invites.CreateCode(ctx, "admin-1", 100, nil, 0, nil, "")
		require.ErrorIs(t, err, ErrInvalidInviteRequest)
	})

	t.Run("rejects past expiry", func(t *testing.T) {
		_, err := invites.CreateCode(ctx, "admin-1", 100, nil, 1,
			ptrTime(time.Now().Add(-time.Minute)), "")
		require.ErrorIs(t, err, ErrInvalidInviteRequest)
	})

	t.Run("rejects unknown creator", func(t *testing.T) {
		_, err := invites.CreateCode(ctx, "ghost", 100, nil, 1, nil, "")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("creates an active code", func(t *testing.T) {
		code, err := invites.CreateCode(ctx, "admin-1", 100, nil, 3, nil, `{"campaign":"launch"}`)
		require.NoError(t, err)
		require.NotEmpty(t, code.Code)
		require.True(t, code.IsActive)
		require.EqualValues(t, 3, code.RemainingUses())
	})
}

func TestValidatePrecedence(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	invites := &InviteService{Store: st, Ledger: ledger}
	seedAdmin(t, st, "admin-1")
	seedUser(t, st, "user-1", 0)

	t.Run("missing code", func(t *testing.T) {
		_, err := invites.Validate(ctx, "ZZZZ-ZZZZ-ZZZZ-ZZZZ", "")
		require.ErrorIs(t, err, ErrCodeNotFound)
	})

	t.Run("deactivated beats expired", func(t *testing.T) {
		code, err := invites.CreateCode(ctx, "admin-1", 50, nil, 1,
			ptrTime(time.Now().Add(50*time.Millisecond)), "")
		require.NoError(t, err)
		require.NoError(t, invites.Deactivate(ctx, code.Code, "admin-1"))

		time.Sleep(100 * time.Millisecond) // now both deactivated and expired

		_, err = invites.Validate(ctx, code.Code, "")
		require.ErrorIs(t, err, ErrCodeDeactivated)
	})

	t.Run("expired code", func(t *testing.T) {
		code, err := invites.CreateCode(ctx, "admin-1", 50, nil, 1,
			ptrTime(time.Now().Add(50*time.Millisecond)), "")
		require.NoError(t, err)

		time.Sleep(100 * time.Millisecond)

		_, err = invites.Validate(ctx, code.Code, "")
		require.ErrorIs(t, err, ErrCodeExpired)
	})

	t.Run("already redeemed only reported for the redeeming user", func(t *testing.T) {
		seedUser(t, st, "user-2", 0)
		code, err := invites.CreateCode(ctx, "admin-1", 50, nil, 5, nil, "")
		require.NoError(t, err)

		_, err = invites.Redeem(ctx, code.Code, "user-1", "198.51.100.9", "ua")
		require.NoError(t, err)

		_, err = invites.Validate(ctx, code.Code, "user-1")
		require.ErrorIs(t, err, ErrAlreadyRedeemed)

		inv, err := invites.Validate(ctx, code.Code, "user-2")
		require.NoError(t, err)
		require.EqualValues(t, 4, inv.RemainingUses())

		// Anonymous validation skips the per-user check.
		_, err = invites.Validate(ctx, code.Code, "")
		require.NoError(t, err)
	})

	t.Run("lenient code entry normalizes before lookup", func(t *testing.T) {
		code, err := invites.CreateCode(ctx, "admin-1", 50, nil, 1, nil, "")
		require.NoError(t, err)

		sloppy := "  " + code.Code + " "
		inv, err := invites.Validate(ctx, sloppy, "")
		require.NoError(t, err)
		require.Equal(t, code.Code, inv.Code)
	})
}

func TestRedeemIssuesCreditsAtomically(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	invites := &InviteService{Store: st, Ledger: ledger}
	seedAdmin(t, st, "admin-1")
	seedUser(t, st, "user-1", 0)

	expiry := time.Now().Add(30 * 24 * time.Hour).UTC()
	code, err := invites.CreateCode(ctx, "admin-1", 250, &expiry, 1, nil, "")
	require.NoError(t, err)

	res, err := invites.Redeem(ctx, code.Code, "user-1", "198.51.100.9", "ua")
	require.NoError(t, err)
	require.Equal(t, code.Code, res.Redemption.CodeID)
	require.Equal(t, "user-1", res.Redemption.UserID)
	require.EqualValues(t, 250, res.CreditsGranted)

	balance, err := ledger.GetValidCredits(ctx, "user-1")
	require.NoError(t, err)
	require.EqualValues(t, 250, balance)

	// The grant carries the code's credit expiry and type.
	rows, err := st.Transactions().ListSpendable(ctx, "user-1", time.Now())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, domain.TransactionInvite, rows[0].Type)
	require.NotNil(t, rows[0].ExpiresAt)
	require.WithinDuration(t, expiry, *rows[0].ExpiresAt, time.Second)

	// Exhausting redemption stamps the convenience columns.
	after, err := st.InviteCodes().GetCode(ctx, code.Code)
	require.NoError(t, err)
	require.EqualValues(t, 1, after.CurrentUses)
	require.NotNil(t, after.UsedByUserID)
	require.Equal(t, "user-1", *after.UsedByUserID)
	require.NotNil(t, after.UsedAt)
}

func TestRedeemTwiceSameUser(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	invites := &InviteService{Store: st, Ledger: ledger}
	seedAdmin(t, st, "admin-1")
	seedUser(t, st, "user-1", 0)

	code, err := invites.CreateCode(ctx, "admin-1", 100, nil, 5, nil, "")
	require.NoError(t, err)

	_, err = invites.Redeem(ctx, code.Code, "user-1", "", "")
	require.NoError(t, err)

	_, err = invites.Redeem(ctx, code.Code, "user-1", "", "")
	require.ErrorIs(t, err, ErrAlreadyRedeemed)

	// The failed attempt's increment rolled back with it; credits were
	// issued exactly once.
	after, err := st.InviteCodes().GetCode(ctx, code.Code)
	require.NoError(t, err)
	require.EqualValues(t, 1, after.CurrentUses)

	balance, err := ledger.GetValidCredits(ctx, "user-1")
	require.NoError(t, err)
	require.EqualValues(t, 100, balance)
}

func TestRedeemSequentialExhaustion(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	invites := &InviteService{Store: st, Ledger: ledger}
	seedAdmin(t, st, "admin-1")
	for _, id := range []string{"user-a", "user-b", "user-c", "user-d"} {
		seedUser(t, st, id, 0)
	}

	code, err := invites.CreateCode(ctx, "admin-1", 40, nil, 3, nil, "")
	require.NoError(t, err)

	for _, id := range []string{"user-a", "user-b", "user-c"} {
		_, err := invites.Redeem(ctx, code.Code, id, "", "")
		require.NoError(t, err, "redemption by %s", id)
	}

	_, err = invites.Redeem(ctx, code.Code, "user-d", "", "")
	require.ErrorIs(t, err, ErrCodeExhausted)

	after, err := st.InviteCodes().GetCode(ctx, code.Code)
	require.NoError(t, err)
	require.EqualValues(t, 3, after.CurrentUses)

	count, err := st.Redemptions().CountByCode(ctx, code.Code)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}

func TestRedeemConcurrentSingleUse(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	invites := &InviteService{Store: st, Ledger: ledger}
	seedAdmin(t, st, "admin-1")

	const redeemers = 50
	userIDs := make([]string, redeemers)
	for i := range userIDs {
		userIDs[i] = fmt.Sprintf("user-%02d", i)
		seedUser(t, st, userIDs[i], 0)
	}

	code, err := invites.CreateCode(ctx, "admin-1", 75, nil, 1, nil, "")
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []string
		losers  int
	)
	for _, userID := range userIDs {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			_, err := redeemRetrying(ctx, invites, code.Code, userID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winners = append(winners, userID)
			default:
				require.ErrorIs(t, err, ErrCodeExhausted)
				losers++
			}
		}(userID)
	}
	wg.Wait()

	require.Len(t, winners, 1, "exactly one redeemer may win")
	require.Equal(t, redeemers-1, losers)

	after, err := st.InviteCodes().GetCode(ctx, code.Code)
	require.NoError(t, err)
	require.EqualValues(t, 1, after.CurrentUses)

	count, err := st.Redemptions().CountByCode(ctx, code.Code)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// Only the winner got credits.
	for _, userID := range userIDs {
		balance, err := ledger.GetValidCredits(ctx, userID)
		require.NoError(t, err)
		if userID == winners[0] {
			require.EqualValues(t, 75, balance)
		} else {
			require.Zero(t, balance, "loser %s must not be issued credits", userID)
		}
	}
}

func TestDeactivateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	invites := &InviteService{Store: st, Ledger: &LedgerService{Store: st}}
	seedAdmin(t, st, "admin-1")
	seedUser(t, st, "user-1", 0)

	code, err := invites.CreateCode(ctx, "admin-1", 10, nil, 1, nil, "")
	require.NoError(t, err)

	require.NoError(t, invites.Deactivate(ctx, code.Code, "admin-1"))
	require.NoError(t, invites.Deactivate(ctx, code.Code, "admin-1"))

	_, err = invites.Redeem(ctx, code.Code, "user-1", "", "")
	require.ErrorIs(t, err, ErrCodeDeactivated)

	require.ErrorIs(t, invites.Deactivate(ctx, "ZZZZ-ZZZZ-ZZZZ-ZZZZ", "admin-1"), ErrCodeNotFound)
}

func TestCodeAnalytics(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	ledger := &LedgerService{Store: st}
	invites := &InviteService{Store: st, Ledger: ledger}
	seedAdmin(t, st, "admin-1")
	seedUser(t, st, "user-1", 0)
	seedUser(t, st, "user-2", 0)

	code, err := invites.CreateCode(ctx, "admin-1", 60, nil, 5, nil, "")
	require.NoError(t, err)

	_, err = invites.Redeem(ctx, code.Code, "user-1", "", "")
	require.NoError(t, err)
	_, err = invites.Redeem(ctx, code.Code, "user-2", "", "")
	require.NoError(t, err)

	analytics, err := invites.Analytics(ctx, code.Code)
	require.NoError(t, err)
	require.EqualValues(t, 2, analytics.TotalRedemptions)
	require.EqualValues(t, 120, analytics.CreditsIssued)
	require.EqualValues(t, 3, analytics.RemainingUses)
	require.Len(t, analytics.Redemptions, 2)
	require.Equal(t, "user-1", analytics.Redemptions[0].UserID)

	_, err = invites.Analytics(ctx, "ZZZZ-ZZZZ-ZZZZ-ZZZZ")
	require.ErrorIs(t, err, ErrCodeNotFound)
}

func TestListCodes(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	invites := &InviteService{Store: st, Ledger: &LedgerService{Store: st}}
	seedAdmin(t, st, "admin-1")

	for i := 0; i < 3; i++ {
		_, err := invites.CreateCode(ctx, "admin-1", 10, nil, 1, nil, "")
		require.NoError(t, err)
	}

	codes, err := invites.ListCodes(ctx)
	require.NoError(t, err)
	require.Len(t, codes, 3)
}
