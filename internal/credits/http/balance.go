package http

import (
	"net/http"

	"github.com/lumenart/credits/internal/credits/service"
	"github.com/lumenart/credits/pkg/creditsdk"
	"github.com/lumenart/credits/pkg/httpx"
)

type BalanceHandler struct {
	Ledger *service.LedgerService
}

// HandleBalance godoc
//
//	@Summary		Credit Balance Endpoint
//	@Description	Returns the authenticated user's spendable credit total (unconsumed, unexpired).
//	@Tags			Credits
//	@Produce		json
//	@Success		200	{object}	creditsdk.BalanceResponse	"user_id, balance"
//	@Failure		404	{object}	creditsdk.ErrorResponse		"USER_NOT_FOUND"
//	@Security		BearerAuth
//	@Router			/v1/credits/balance [get].
func (h *BalanceHandler) HandleBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	balance, err := h.Ledger.GetValidCredits(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, creditsdk.BalanceResponse{
		UserID:  userID,
		Balance: balance,
	})
}

// HandleLimit godoc
//
//	@Summary		Daily Limit Endpoint
//	@Description	Returns the authenticated user's daily cap and how much of it today's consumption has used.
//	@Tags			Credits
//	@Produce		json
//	@Success		200	{object}	creditsdk.DailyLimitResponse	"daily_limit, consumed_today, remaining, unlimited"
//	@Failure		404	{object}	creditsdk.ErrorResponse			"USER_NOT_FOUND"
//	@Security		BearerAuth
//	@Router			/v1/credits/limit [get].
func (h *BalanceHandler) HandleLimit(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	status, err := h.Ledger.CheckDailyLimit(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, creditsdk.DailyLimitResponse{
		DailyLimit:    status.DailyLimit,
		ConsumedToday: status.ConsumedToday,
		Remaining:     status.Remaining,
		Unlimited:     status.DailyLimit == 0,
	})
}
