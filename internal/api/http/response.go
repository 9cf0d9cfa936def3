package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"docshare-backend/internal/logger"
	"docshare-backend/internal/service"
	"docshare-backend/internal/utils"
)

// errorBody is the JSON error envelope. The type field is the stable error
// kind clients switch on.
type errorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeServiceError maps the service error taxonomy onto HTTP responses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *utils.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, errorBody{Type: "ValidationError", Message: vErr.Error()})
	case errors.Is(err, service.ErrUsernameTaken):
		writeJSON(w, http.StatusBadRequest, errorBody{Type: "AlreadyExistingUsername", Message: "Username already used"})
	case errors.Is(err, service.ErrEmailAlreadyRequested):
		writeJSON(w, http.StatusBadRequest, errorBody{Type: "AlreadyExistingEmail", Message: "Email already requested"})
	case errors.Is(err, service.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorBody{Type: "ForbiddenError", Message: "Access denied"})
	case errors.Is(err, service.ErrRequestNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Type: "RequestNotFound", Message: "Request not found or already processed"})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusForbidden, errorBody{Type: "ForbiddenError", Message: "Invalid credentials"})
	default:
		logger.ErrorContext(r.Context(), "Unhandled service error", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Type: "UnknownError", Message: "Unknown server error"})
	}
}
