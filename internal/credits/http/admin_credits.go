package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lumenart/credits/internal/credits/domain"
	"github.com/lumenart/credits/internal/credits/service"
	"github.com/lumenart/credits/pkg/creditsdk"
	"github.com/lumenart/credits/pkg/httpx"
)

type AdminCreditsHandler struct {
	Ledger *service.LedgerService
}

// ServeHTTP godoc
//
//	@Summary		Issue Credits Endpoint
//	@Description	Issues a new credit batch to a user. Requires the admin:write scope or a valid service key;
//	@Description	trusted backends use the latter to credit purchases from the billing pipeline.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		creditsdk.AddCreditsRequest		true	"user_id, amount, type, description, expires_at"
//	@Success		201		{object}	creditsdk.AddCreditsResponse	"transaction_id"
//	@Failure		400		{object}	creditsdk.ErrorResponse			"INVALID_INPUT"
//	@Failure		404		{object}	creditsdk.ErrorResponse			"USER_NOT_FOUND"
//	@Security		BearerAuth
//	@Router			/v1/admin/credits [post].
func (h *AdminCreditsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req creditsdk.AddCreditsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	if req.ExpiresAt != nil && !req.ExpiresAt.After(time.Now()) {
		httpx.WriteJSON(w, http.StatusBadRequest, creditsdk.ErrorResponse{
			Error:            creditsdk.CodeInvalidInput,
			ErrorDescription: "expires_at must be in the future",
		})
		return
	}

	txID, err := h.Ledger.AddCredits(
		r.Context(),
		req.UserID,
		req.Amount,
		domain.TransactionType(req.Type),
		req.Description,
		req.ExpiresAt,
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, creditsdk.AddCreditsResponse{
		TransactionID: txID,
	})
}
