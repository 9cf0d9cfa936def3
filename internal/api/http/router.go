package http

import (
	"docshare-backend/internal/security"
	"docshare-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires the REST surface. Submit is public; the review queue and
// decisions require an admin token.
func NewRouter(registrationSvc service.RegistrationService, userSvc service.UserService, tm security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(NewAuthMiddleware(tm).Handler)

	authHandler := NewAuthHandler(userSvc, tm)
	router.HandleFunc("/api/auth/login", authHandler.HandleLogin).Methods("POST")

	reqHandler := NewRegisterRequestHandler(registrationSvc)
	router.HandleFunc("/api/user/register_request", reqHandler.HandleSubmit).Methods("POST")
	router.HandleFunc("/api/user/register_request/list", reqHandler.HandleList).Methods("GET")
	router.HandleFunc("/api/user/register_request/{id}/approve", reqHandler.HandleApprove).Methods("POST")
	router.HandleFunc("/api/user/register_request/{id}/reject", reqHandler.HandleReject).Methods("POST")

	return router
}
