package credits_test

import (
	"strings"
	"testing"

	"github.com/lumenart/credits/pkg/creditsdk"
	"github.com/stretchr/testify/require"
)

// TestInviteLifecycle walks a code from creation through redemption to
// deactivation, checking the analytics surface along the way.
func TestInviteLifecycle(t *testing.T) {
	baseURL, signer, cleanup := setupCreditsContainer(t)
	defer cleanup()

	admin := creditsdk.NewClient(baseURL).WithToken(mintAdminToken(t, signer, "e2e-admin"))
	serviceAdmin := creditsdk.NewClient(baseURL)
	serviceAdmin.ServiceKey = serviceKey

	registerUser(t, serviceAdmin, "e2e-admin", 0)
	registerUser(t, serviceAdmin, "e2e-invitee", 0)

	invite, err := admin.CreateInvite(t.Context(), creditsdk.CreateInviteRequest{
		CreditsValue: 250,
		MaxUses:      2,
		Metadata:     "launch-week",
	})
	require.NoError(t, err)
	require.Len(t, strings.ReplaceAll(invite.Code, "-", ""), 16)
	require.Equal(t, int64(2), invite.RemainingUses)

	user := creditsdk.NewClient(baseURL).WithToken(mintUserToken(t, signer, "e2e-invitee"))

	validation, err := user.ValidateInvite(t.Context(), invite.Code)
	require.NoError(t, err)
	require.True(t, validation.IsValid)
	require.Equal(t, int64(250), validation.CreditsValue)

	redeemed, err := user.RedeemInvite(t.Context(), invite.Code)
	require.NoError(t, err)
	require.Equal(t, int64(250), redeemed.CreditsGranted)
	require.NotEmpty(t, redeemed.RedemptionID)

	balance, err := user.Balance(t.Context())
	require.NoError(t, err)
	require.Equal(t, int64(250), balance.Balance)

	// Same user again: rejected, and the grant is not duplicated
	_, err = user.RedeemInvite(t.Context(), invite.Code)
	assertAPICode(t, err, creditsdk.CodeAlreadyRedeemed, "second redemption")

	balance, err = user.Balance(t.Context())
	require.NoError(t, err)
	require.Equal(t, int64(250), balance.Balance)

	analytics, err := admin.InviteAnalytics(t.Context(), invite.Code)
	require.NoError(t, err)
	require.Equal(t, int64(1), analytics.TotalRedemptions)
	require.Equal(t, int64(250), analytics.CreditsIssued)
	require.Equal(t, int64(1), analytics.RemainingUses)
	require.Len(t, analytics.Redemptions, 1)
	require.Equal(t, "e2e-invitee", analytics.Redemptions[0].UserID)

	require.NoError(t, admin.DeactivateInvite(t.Context(), invite.Code))

	validation, err = user.ValidateInvite(t.Context(), invite.Code)
	require.NoError(t, err)
	require.False(t, validation.IsValid)
	require.Equal(t, creditsdk.CodeInviteDeactivated, validation.Error)
}

// TestInviteCodeNormalization verifies redemption is lenient about the
// formatting a user types in.
func TestInviteCodeNormalization(t *testing.T) {
	baseURL, signer, cleanup := setupCreditsContainer(t)
	defer cleanup()

	admin := creditsdk.NewClient(baseURL).WithToken(mintAdminToken(t, signer, "e2e-admin"))
	serviceAdmin := creditsdk.NewClient(baseURL)
	serviceAdmin.ServiceKey = serviceKey

	registerUser(t, serviceAdmin, "e2e-admin", 0)
	registerUser(t, serviceAdmin, "e2e-sloppy", 0)

	invite, err := admin.CreateInvite(t.Context(), creditsdk.CreateInviteRequest{
		CreditsValue: 50,
		MaxUses:      1,
	})
	require.NoError(t, err)

	// Lowercase with stray whitespace, the way codes arrive from chat apps
	mangled := "  " + strings.ToLower(invite.Code) + "  "

	user := creditsdk.NewClient(baseURL).WithToken(mintUserToken(t, signer, "e2e-sloppy"))
	redeemed, err := user.RedeemInvite(t.Context(), mangled)
	require.NoError(t, err)
	require.Equal(t, int64(50), redeemed.CreditsGranted)
}

// TestInviteValidateUnknownCode verifies validation soft-fails with a stable
// code instead of erroring.
func TestInviteValidateUnknownCode(t *testing.T) {
	baseURL, signer, cleanup := setupCreditsContainer(t)
	defer cleanup()

	serviceAdmin := creditsdk.NewClient(baseURL)
	serviceAdmin.ServiceKey = serviceKey
	registerUser(t, serviceAdmin, "e2e-curious", 0)

	user := creditsdk.NewClient(baseURL).WithToken(mintUserToken(t, signer, "e2e-curious"))

	validation, err := user.ValidateInvite(t.Context(), "AAAA-BBBB-CCCC-DDDD")
	require.NoError(t, err)
	require.False(t, validation.IsValid)
	require.Equal(t, creditsdk.CodeInviteNotFound, validation.Error)
}
