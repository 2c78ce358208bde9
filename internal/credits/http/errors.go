package http

import (
	"errors"
	"net/http"

	"github.com/lumenart/credits/internal/credits/service"
	"github.com/lumenart/credits/internal/credits/store"
	"github.com/lumenart/credits/pkg/creditsdk"
	"github.com/lumenart/credits/pkg/httpx"
	"github.com/lumenart/credits/pkg/slogx"
)

// writeServiceError maps service sentinels onto the stable error taxonomy.
// Unknown errors become DATABASE_ERROR and get logged; business failures are
// the caller's problem and stay at warn level or below.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	type mapping struct {
		status int
		code   string
		desc   string
	}

	var m mapping
	switch {
	case errors.Is(err, service.ErrInvalidAmount):
		m = mapping{http.StatusBadRequest, creditsdk.CodeInvalidInput, "amount must be a positive integer"}
	case errors.Is(err, service.ErrInvalidTransactionType):
		m = mapping{http.StatusBadRequest, creditsdk.CodeInvalidInput, "unknown transaction type"}
	case errors.Is(err, service.ErrInvalidUserRequest):
		m = mapping{http.StatusBadRequest, creditsdk.CodeInvalidInput, "invalid user parameters"}
	case errors.Is(err, service.ErrInvalidInviteRequest):
		m = mapping{http.StatusBadRequest, creditsdk.CodeInvalidInput, "invalid invite parameters"}
	case errors.Is(err, service.ErrUserNotFound):
		m = mapping{http.StatusNotFound, creditsdk.CodeUserNotFound, "user is not registered with the credits service"}
	case errors.Is(err, service.ErrUserAlreadyExists):
		m = mapping{http.StatusConflict, creditsdk.CodeUserAlreadyExists, "user is already registered"}
	case errors.Is(err, service.ErrInsufficientCredits):
		m = mapping{http.StatusPaymentRequired, creditsdk.CodeInsufficientCredits, "not enough valid credits"}
	case errors.Is(err, service.ErrDailyLimitExceeded):
		m = mapping{http.StatusTooManyRequests, creditsdk.CodeDailyLimitExceeded, "daily credit limit reached"}
	case errors.Is(err, service.ErrCodeNotFound):
		m = mapping{http.StatusNotFound, creditsdk.CodeInviteNotFound, "invite code does not exist"}
	case errors.Is(err, service.ErrCodeDeactivated):
		m = mapping{http.StatusGone, creditsdk.CodeInviteDeactivated, "invite code has been deactivated"}
	case errors.Is(err, service.ErrCodeExpired):
		m = mapping{http.StatusGone, creditsdk.CodeInviteExpired, "invite code has expired"}
	case errors.Is(err, service.ErrCodeExhausted):
		m = mapping{http.StatusConflict, creditsdk.CodeInviteExhausted, "invite code has no uses remaining"}
	case errors.Is(err, service.ErrAlreadyRedeemed):
		m = mapping{http.StatusConflict, creditsdk.CodeAlreadyRedeemed, "invite code already redeemed by this user"}
	case errors.Is(err, store.ErrBusy):
		w.Header().Set("Retry-After", "1")
		m = mapping{http.StatusServiceUnavailable, creditsdk.CodeDatabaseBusy, "storage is busy, retry the request"}
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		m = mapping{http.StatusInternalServerError, creditsdk.CodeDatabaseError, "internal storage error"}
	}

	httpx.WriteJSON(w, m.status, creditsdk.ErrorResponse{
		Error:            m.code,
		ErrorDescription: m.desc,
	})
}

// validationErrorCode translates a validation failure into the stable code
// used by the invite validate endpoint's soft-failure body.
func validationErrorCode(err error) string {
	switch {
	case errors.Is(err, service.ErrCodeNotFound):
		return creditsdk.CodeInviteNotFound
	case errors.Is(err, service.ErrCodeDeactivated):
		return creditsdk.CodeInviteDeactivated
	case errors.Is(err, service.ErrCodeExpired):
		return creditsdk.CodeInviteExpired
	case errors.Is(err, service.ErrCodeExhausted):
		return creditsdk.CodeInviteExhausted
	case errors.Is(err, service.ErrAlreadyRedeemed):
		return creditsdk.CodeAlreadyRedeemed
	}
	return ""
}

// writeInvalidJSON rejects an unparsable request body.
func writeInvalidJSON(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusBadRequest, creditsdk.ErrorResponse{
		Error:            creditsdk.CodeInvalidInput,
		ErrorDescription: "request body must be valid JSON",
	})
}

// requireUser pulls the authenticated subject out of the request context.
// Service-key callers have no subject and cannot use user-scoped endpoints.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := httpx.UserIDFromContext(r.Context())
	if userID == "" {
		httpx.WriteJSON(w, http.StatusUnauthorized, creditsdk.ErrorResponse{
			Error:            creditsdk.CodeUnauthorized,
			ErrorDescription: "endpoint requires a user token",
		})
		return "", false
	}
	return userID, true
}
