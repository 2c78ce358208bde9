package http

import (
	"encoding/json"
	"net/http"

	"github.com/lumenart/credits/internal/credits/service"
	"github.com/lumenart/credits/pkg/creditsdk"
	"github.com/lumenart/credits/pkg/httpx"
)

type InviteRedeemHandler struct {
	Invites *service.InviteService
}

// HandleValidate godoc
//
//	@Summary		Validate Invite Code Endpoint
//	@Description	Checks a code's state for the authenticated user without redeeming it. An unredeemable
//	@Description	code still returns 200; is_valid is false and error carries the stable code.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		creditsdk.ValidateInviteRequest		true	"code"
//	@Success		200		{object}	creditsdk.ValidateInviteResponse	"is_valid, remaining_uses, error"
//	@Security		BearerAuth
//	@Router			/v1/invites/validate [post].
func (h *InviteRedeemHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req creditsdk.ValidateInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	inv, err := h.Invites.Validate(r.Context(), req.Code, userID)
	if err != nil {
		code := validationErrorCode(err)
		if code == "" {
			// Not a code-state outcome; infra errors keep the hard path.
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, creditsdk.ValidateInviteResponse{
			IsValid: false,
			Error:   code,
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, creditsdk.ValidateInviteResponse{
		IsValid:       true,
		RemainingUses: inv.RemainingUses(),
		CreditsValue:  inv.CreditsValue,
	})
}

// HandleRedeem godoc
//
//	@Summary		Redeem Invite Code Endpoint
//	@Description	Exchanges an invite code for its credit grant. A code issues credits at most max_uses
//	@Description	times total and at most once per user, no matter how many requests race.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		creditsdk.RedeemInviteRequest	true	"code"
//	@Success		200		{object}	creditsdk.RedeemInviteResponse	"redemption_id, credits_granted"
//	@Failure		404		{object}	creditsdk.ErrorResponse			"CODE_NOT_FOUND"
//	@Failure		409		{object}	creditsdk.ErrorResponse			"CODE_EXHAUSTED or ALREADY_REDEEMED"
//	@Failure		410		{object}	creditsdk.ErrorResponse			"CODE_EXPIRED or CODE_DEACTIVATED"
//	@Security		BearerAuth
//	@Router			/v1/invites/redeem [post].
func (h *InviteRedeemHandler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req creditsdk.RedeemInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	res, err := h.Invites.Redeem(r.Context(), req.Code, userID, httpx.ClientIP(r), r.UserAgent())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, creditsdk.RedeemInviteResponse{
		RedemptionID:   res.Redemption.ID,
		Code:           res.Redemption.CodeID,
		CreditsGranted: res.CreditsGranted,
		RedeemedAt:     res.Redemption.RedeemedAt,
	})
}
