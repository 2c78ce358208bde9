package credits_test

import (
	"testing"

	"github.com/lumenart/credits/pkg/creditsdk"
	"github.com/stretchr/testify/require"
)

// TestLedgerAddAndConsume walks the primary flow: the billing pipeline grants
// credits with a service key, the user spends them with a Bearer token.
func TestLedgerAddAndConsume(t *testing.T) {
	baseURL, signer, cleanup := setupCreditsContainer(t)
	defer cleanup()

	admin := creditsdk.NewClient(baseURL)
	admin.ServiceKey = serviceKey

	registerUser(t, admin, "e2e-spender", 0)
	grantCredits(t, admin, "e2e-spender", 100, nil)

	user := creditsdk.NewClient(baseURL).WithToken(mintUserToken(t, signer, "e2e-spender"))

	balance, err := user.Balance(t.Context())
	require.NoError(t, err)
	require.Equal(t, int64(100), balance.Balance)

	consumed, err := user.Consume(t.Context(), creditsdk.ConsumeRequest{
		Amount:      40,
		Description: "image render 1024x1024",
	})
	require.NoError(t, err)
	require.Equal(t, int64(40), consumed.TotalConsumed)
	require.Equal(t, int64(60), consumed.RemainingBalance)
	require.NotEmpty(t, consumed.Breakdown)

	// Overdraw fails whole and leaves the balance untouched
	_, err = user.Consume(t.Context(), creditsdk.ConsumeRequest{Amount: 100})
	assertAPICode(t, err, creditsdk.CodeInsufficientCredits, "overdraw")

	balance, err = user.Balance(t.Context())
	require.NoError(t, err)
	require.Equal(t, int64(60), balance.Balance)
}

// TestDailyLimitEnforced verifies the per-day cap gates spending even when
// the balance could cover it.
func TestDailyLimitEnforced(t *testing.T) {
	baseURL, signer, cleanup := setupCreditsContainer(t)
	defer cleanup()

	admin := creditsdk.NewClient(baseURL)
	admin.ServiceKey = serviceKey

	registerUser(t, admin, "e2e-capped", 50)
	grantCredits(t, admin, "e2e-capped", 200, nil)

	user := creditsdk.NewClient(baseURL).WithToken(mintUserToken(t, signer, "e2e-capped"))

	_, err := user.Consume(t.Context(), creditsdk.ConsumeRequest{Amount: 30})
	require.NoError(t, err)

	limit, err := user.DailyLimit(t.Context())
	require.NoError(t, err)
	require.Equal(t, int64(50), limit.DailyLimit)
	require.Equal(t, int64(30), limit.ConsumedToday)
	require.Equal(t, int64(20), limit.Remaining)
	require.False(t, limit.Unlimited)

	_, err = user.Consume(t.Context(), creditsdk.ConsumeRequest{Amount: 30})
	assertAPICode(t, err, creditsdk.CodeDailyLimitExceeded, "over the daily cap")

	// The rejected spend must not touch the ledger
	balance, err := user.Balance(t.Context())
	require.NoError(t, err)
	require.Equal(t, int64(170), balance.Balance)
}

// TestLedgerAuthBoundaries verifies the token and scope requirements on the
// spend surface.
func TestLedgerAuthBoundaries(t *testing.T) {
	baseURL, signer, cleanup := setupCreditsContainer(t)
	defer cleanup()

	anonymous := creditsdk.NewClient(baseURL)
	_, err := anonymous.Consume(t.Context(), creditsdk.ConsumeRequest{Amount: 1})
	assertAPICode(t, err, creditsdk.CodeUnauthorized, "no token")

	// A valid token for an account the engine has never seen
	ghost := creditsdk.NewClient(baseURL).WithToken(mintUserToken(t, signer, "e2e-ghost"))
	_, err = ghost.Consume(t.Context(), creditsdk.ConsumeRequest{Amount: 1})
	assertAPICode(t, err, creditsdk.CodeUserNotFound, "unregistered user")

	// A user token must not reach the admin surface
	userToken := creditsdk.NewClient(baseURL).WithToken(mintUserToken(t, signer, "e2e-ghost"))
	_, err = userToken.AddCredits(t.Context(), creditsdk.AddCreditsRequest{
		UserID: "e2e-ghost",
		Amount: 10,
		Type:   "admin_grant",
	})
	assertAPICode(t, err, creditsdk.CodeAdminRequired, "user token on admin endpoint")
}
