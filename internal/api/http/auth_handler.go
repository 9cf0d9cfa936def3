package http

import (
	"net/http"
	"time"

	"docshare-backend/internal/security"
	"docshare-backend/internal/service"
)

// AuthHandler issues access tokens for existing accounts.
type AuthHandler struct {
	userSvc      service.UserService
	tokenManager security.TokenManager
}

func NewAuthHandler(userSvc service.UserService, tm security.TokenManager) *AuthHandler {
	return &AuthHandler{userSvc: userSvc, tokenManager: tm}
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := h.userSvc.Authenticate(r.Context(), username, password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.tokenManager.GenerateAccessToken(user.ID, user.Username, user.RoleID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token":      token,
		"username":   user.Username,
		"role_id":    user.RoleID,
		"onboarding": user.Onboarding,
		"issued_at":  time.Now().Unix(),
	})
}
