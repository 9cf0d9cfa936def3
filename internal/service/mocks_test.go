package service_test

import (
	"context"

	"docshare-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRegisterRequestRepo
type MockRegisterRequestRepo struct {
	mock.Mock
}

func (m *MockRegisterRequestRepo) Create(ctx context.Context, req *domain.RegisterRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRegisterRequestRepo) GetByID(ctx context.Context, id string) (*domain.RegisterRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegisterRequest), args.Error(1)
}
func (m *MockRegisterRequestRepo) GetByEmail(ctx context.Context, email string) (*domain.RegisterRequest, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RegisterRequest), args.Error(1)
}
func (m *MockRegisterRequestRepo) ListPending(ctx context.Context) ([]domain.RegisterRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegisterRequest), args.Error(1)
}
func (m *MockRegisterRequestRepo) Update(ctx context.Context, req *domain.RegisterRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetActiveByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListAdmins(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, user *domain.User, password, creatorID string) (*domain.User, error) {
	args := m.Called(ctx, user, password, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetActiveByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRegistrationDecision(ctx context.Context, email, username string, approved bool) error {
	args := m.Called(ctx, email, username, approved)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingRequestDigest(ctx context.Context, adminEmail string, pending []domain.RegisterRequest) error {
	args := m.Called(ctx, adminEmail, pending)
	return args.Error(0)
}
