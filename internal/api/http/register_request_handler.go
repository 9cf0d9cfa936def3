package http

import (
	"net/http"

	"docshare-backend/internal/service"
	"docshare-backend/internal/utils"

	"github.com/gorilla/mux"
)

// RegisterRequestHandler exposes the registration request lifecycle over
// REST.
type RegisterRequestHandler struct {
	registrationSvc service.RegistrationService
}

func NewRegisterRequestHandler(registrationSvc service.RegistrationService) *RegisterRequestHandler {
	return &RegisterRequestHandler{registrationSvc: registrationSvc}
}

type pendingRequestResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	CreateDate int64  `json:"create_date"`
}

// HandleSubmit accepts a new registration request from an anonymous visitor.
func (h *RegisterRequestHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	username, err := utils.ValidateLength(r.FormValue("username"), "username", 3, 50)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if err := utils.ValidateUsername(username, "username"); err != nil {
		writeServiceError(w, r, err)
		return
	}
	email, err := utils.ValidateLength(r.FormValue("email"), "email", 1, 100)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if err := utils.ValidateEmail(email, "email"); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if _, err := h.registrationSvc.SubmitRequest(r.Context(), username, email); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}

// HandleList returns the pending review queue, oldest first. Admin only.
func (h *RegisterRequestHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	caller := CallerFromContext(r.Context())
	reqs, err := h.registrationSvc.ListPendingRequests(r.Context(), caller)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	requests := make([]pendingRequestResponse, 0, len(reqs))
	for _, req := range reqs {
		requests = append(requests, pendingRequestResponse{
			ID:         req.ID,
			Username:   req.Username,
			Email:      req.Email,
			CreateDate: req.CreateDate.UnixMilli(),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"requests": requests})
}

// HandleApprove creates the account and marks the request APPROVED. Admin
// only.
func (h *RegisterRequestHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	caller := CallerFromContext(r.Context())
	id := mux.Vars(r)["id"]

	_, err := h.registrationSvc.ApproveRequest(r.Context(), caller, id, r.FormValue("password"), r.FormValue("storage_quota"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}

// HandleReject marks the request REJECTED. Admin only.
func (h *RegisterRequestHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	caller := CallerFromContext(r.Context())
	id := mux.Vars(r)["id"]

	if err := h.registrationSvc.RejectRequest(r.Context(), caller, id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeOK(w)
}
