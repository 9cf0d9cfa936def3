package service

import (
	"context"

	"docshare-backend/internal/domain"
)

type RegistrationService interface {
	SubmitRequest(ctx context.Context, username, email string) (*domain.RegisterRequest, error)
	ListPendingRequests(ctx context.Context, caller *domain.User) ([]domain.RegisterRequest, error)
	ApproveRequest(ctx context.Context, caller *domain.User, id, password, storageQuota string) (*domain.User, error)
	RejectRequest(ctx context.Context, caller *domain.User, id string) error
}

// UserService is the system of record for actual accounts. The registration
// workflow only consumes it; account rules (unique username, password
// hashing) live here.
type UserService interface {
	Create(ctx context.Context, user *domain.User, password, creatorID string) (*domain.User, error)
	GetActiveByUsername(ctx context.Context, username string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

type EmailService interface {
	SendRegistrationDecision(ctx context.Context, email, username string, approved bool) error
	SendPendingRequestDigest(ctx context.Context, adminEmail string, pending []domain.RegisterRequest) error
}
