package http

import (
	"encoding/json"
	"net/http"

	"github.com/lumenart/credits/internal/credits/service"
	"github.com/lumenart/credits/pkg/creditsdk"
	"github.com/lumenart/credits/pkg/httpx"
)

type AdminUsersHandler struct {
	Users *service.UserService
}

// HandleRegister godoc
//
//	@Summary		Register User Endpoint
//	@Description	Records a platform account with the credits engine, with its daily consumption cap.
//	@Description	A daily_limit of 0 means uncapped.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		creditsdk.RegisterUserRequest	true	"user_id, display_name, daily_limit, is_admin"
//	@Success		201		{object}	creditsdk.UserResponse			"user_id, display_name, daily_limit"
//	@Failure		400		{object}	creditsdk.ErrorResponse			"INVALID_INPUT"
//	@Failure		409		{object}	creditsdk.ErrorResponse			"USER_ALREADY_EXISTS"
//	@Security		BearerAuth
//	@Router			/v1/admin/users [post].
func (h *AdminUsersHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req creditsdk.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidJSON(w)
		return
	}

	user, err := h.Users.RegisterUser(r.Context(), req.UserID, req.DisplayName, req.DailyLimit, req.IsAdmin)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, creditsdk.UserResponse{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		DailyLimit:  user.DailyLimit,
		IsAdmin:     user.IsAdmin,
		CreatedAt:   user.CreatedAt,
	})
}

// HandleGet godoc
//
//	@Summary		Get User Endpoint
//	@Description	Returns the engine's view of one account.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string					true	"User ID"
//	@Success		200	{object}	creditsdk.UserResponse	"user_id, display_name, daily_limit"
//	@Failure		404	{object}	creditsdk.ErrorResponse	"USER_NOT_FOUND"
//	@Security		BearerAuth
//	@Router			/v1/admin/users/{id} [get].
func (h *AdminUsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.Users.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, creditsdk.UserResponse{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		DailyLimit:  user.DailyLimit,
		IsAdmin:     user.IsAdmin,
		CreatedAt:   user.CreatedAt,
	})
}
