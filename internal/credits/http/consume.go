package http

import (
	"encoding/json"
	"net/http"

	"github.com/lumenart/credits/internal/credits/service"
	"github.com/lumenart/credits/pkg/creditsdk"
	"github.com/lumenart/credits/pkg/httpx"
)

type ConsumeHandler struct {
	Ledger *service.LedgerService
}

// ServeHTTP godoc
//
//	@Summary		Consume Credits Endpoint
//	@Description	Spends credits for the authenticated user, soonest-expiring batches first.
//	@Description	Fails atomically: on INSUFFICIENT_CREDITS or DAILY_LIMIT_EXCEEDED nothing is consumed.
//	@Tags			Credits
//	@Accept			json
//	@Produce		json
//	@Param			request	body		creditsdk.ConsumeRequest	true	"amount, description"
//	@Success		200		{object}	creditsdk.ConsumeResponse	"breakdown, total_consumed, remaining_balance"
//	@Failure		400		{object}	creditsdk.ErrorResponse		"INVALID_INPUT"
//	@Failure		402		{object}	creditsdk.ErrorResponse		"INSUFFICIENT_CREDITS"
//	@Failure		429		{object}	creditsdk.ErrorResponse		"DAILY_LIMIT_EXCEEDED"
//	@Security		BearerAuth
//	@Router			/v1/credits/consume [post].
func (h *ConsumeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req creditsdk.ConsumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	result, err := h.Ledger.Consume(r.Context(), userID, req.Amount, req.Description)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	breakdown := make([]creditsdk.ConsumedBatch, 0, len(result.Breakdown))
	for _, b := range result.Breakdown {
		breakdown = append(breakdown, creditsdk.ConsumedBatch{
			TransactionID: b.TransactionID,
			AmountTaken:   b.AmountTaken,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, creditsdk.ConsumeResponse{
		Breakdown:        breakdown,
		TotalConsumed:    result.TotalConsumed,
		RemainingBalance: result.RemainingBalance,
	})
}
