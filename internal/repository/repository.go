package repository

import (
	"context"
	"errors"

	"docshare-backend/internal/domain"
)

// ErrNotPending is returned by RegisterRequestRepository.Update when the
// stored request is no longer PENDING, i.e. another transition already won.
var ErrNotPending = errors.New("registration request is not pending")

type RegisterRequestRepository interface {
	// Create assigns a new ID and creation date, persists the request and
	// fills both back into req.
	Create(ctx context.Context, req *domain.RegisterRequest) error
	// GetByID returns nil without error when no request exists.
	GetByID(ctx context.Context, id string) (*domain.RegisterRequest, error)
	// GetByEmail matches requests of any status; used for duplicate
	// detection. Returns nil without error when no request exists.
	GetByEmail(ctx context.Context, email string) (*domain.RegisterRequest, error)
	// ListPending returns all PENDING requests ordered by creation date
	// ascending.
	ListPending(ctx context.Context) ([]domain.RegisterRequest, error)
	// Update persists a status transition. The write is guarded by
	// status = PENDING; ErrNotPending is returned when no row matched.
	Update(ctx context.Context, req *domain.RegisterRequest) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetActiveByUsername returns nil without error when no enabled
	// account carries the username.
	GetActiveByUsername(ctx context.Context, username string) (*domain.User, error)
	GetActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	ListAdmins(ctx context.Context) ([]domain.User, error)
}
