package http

import (
	"encoding/json"
	"net/http"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/lumenart/credits/internal/credits/service"
	"github.com/lumenart/credits/pkg/creditsdk"
	"github.com/lumenart/credits/pkg/httpx"
)

type InviteAdminHandler struct {
	Invites *service.InviteService
}

func inviteCodeResponse(c domain.InviteCode) creditsdk.InviteCodeResponse {
	return creditsdk.InviteCodeResponse{
		Code:             c.Code,
		CreatedBy:        c.CreatedByAdminID,
		CreditsValue:     c.CreditsValue,
		CreditsExpiresAt: c.CreditsExpiresAt,
		MaxUses:          c.MaxUses,
		CurrentUses:      c.CurrentUses,
		RemainingUses:    c.RemainingUses(),
		IsActive:         c.IsActive,
		Metadata:         c.Metadata,
		ExpiresAt:        c.ExpiresAt,
		CreatedAt:        c.CreatedAt,
	}
}

// HandleCreate godoc
//
//	@Summary		Create Invite Code Endpoint
//	@Description	Mints a new invite code worth credits_value credits per redemption, up to max_uses redemptions.
//	@Tags			Invites
//	@Accept			json
//	@Produce		json
//	@Param			request	body		creditsdk.CreateInviteRequest	true	"credits_value, max_uses, expires_at, metadata"
//	@Success		201		{object}	creditsdk.InviteCodeResponse	"code, credits_value, max_uses"
//	@Failure		400		{object}	creditsdk.ErrorResponse			"INVALID_INPUT"
//	@Security		BearerAuth
//	@Router			/v1/invites [post].
func (h *InviteAdminHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req creditsdk.CreateInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	code, err := h.Invites.CreateCode(
		r.Context(),
		adminID,
		req.CreditsValue,
		req.CreditsExpiresAt,
		req.MaxUses,
		req.ExpiresAt,
		req.Metadata,
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, inviteCodeResponse(code))
}

// HandleList godoc
//
//	@Summary		List Invite Codes Endpoint
//	@Description	Returns every invite code, newest first.
//	@Tags			Invites
//	@Produce		json
//	@Success		200	{object}	creditsdk.ListInvitesResponse	"codes"
//	@Security		BearerAuth
//	@Router			/v1/invites [get].
func (h *InviteAdminHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	codes, err := h.Invites.ListCodes(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]creditsdk.InviteCodeResponse, 0, len(codes))
	for _, c := range codes {
		out = append(out, inviteCodeResponse(c))
	}

	httpx.WriteJSON(w, http.StatusOK, creditsdk.ListInvitesResponse{Codes: out})
}

// HandleAnalytics godoc
//
//	@Summary		Invite Code Analytics Endpoint
//	@Description	Returns one code's redemption history, total credits issued, and remaining uses.
//	@Tags			Invites
//	@Produce		json
//	@Param			code	path		string								true	"Invite code"
//	@Success		200		{object}	creditsdk.InviteAnalyticsResponse	"code, redemptions, credits_issued"
//	@Failure		404		{object}	creditsdk.ErrorResponse				"CODE_NOT_FOUND"
//	@Security		BearerAuth
//	@Router			/v1/invites/{code}/analytics [get].
func (h *InviteAdminHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.Invites.Analytics(r.Context(), r.PathValue("code"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	redemptions := make([]creditsdk.RedemptionRecord, 0, len(analytics.Redemptions))
	for _, red := range analytics.Redemptions {
		redemptions = append(redemptions, creditsdk.RedemptionRecord{
			ID:         red.ID,
			UserID:     red.UserID,
			RedeemedAt: red.RedeemedAt,
			IPAddress:  red.IPAddress,
			UserAgent:  red.UserAgent,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, creditsdk.InviteAnalyticsResponse{
		Code:             inviteCodeResponse(analytics.Code),
		TotalRedemptions: analytics.TotalRedemptions,
		CreditsIssued:    analytics.CreditsIssued,
		RemainingUses:    analytics.RemainingUses,
		Redemptions:      redemptions,
	})
}

// HandleDeactivate godoc
//
//	@Summary		Deactivate Invite Code Endpoint
//	@Description	Turns a code off so it can no longer be redeemed. Idempotent.
//	@Tags			Invites
//	@Produce		json
//	@Param			code	path	string	true	"Invite code"
//	@Success		204		"deactivated"
//	@Failure		404		{object}	creditsdk.ErrorResponse	"CODE_NOT_FOUND"
//	@Security		BearerAuth
//	@Router			/v1/invites/{code}/deactivate [post].
func (h *InviteAdminHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	adminID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.Invites.Deactivate(r.Context(), r.PathValue("code"), adminID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
