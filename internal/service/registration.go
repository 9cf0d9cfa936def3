package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"docshare-backend/internal/domain"
	"docshare-backend/internal/logger"
	"docshare-backend/internal/repository"
	"docshare-backend/internal/utils"
)

const (
	passwordMinLength = 8
	passwordMaxLength = 50
)

type registrationService struct {
	reqRepo  repository.RegisterRequestRepository
	userSvc  UserService
	emailSvc EmailService
}

func NewRegistrationService(reqRepo repository.RegisterRequestRepository, userSvc UserService, emailSvc EmailService) RegistrationService {
	return &registrationService{
		reqRepo:  reqRepo,
		userSvc:  userSvc,
		emailSvc: emailSvc,
	}
}

// SubmitRequest records a new pending registration. The username and email
// are assumed already validated at the transport boundary.
func (s *registrationService) SubmitRequest(ctx context.Context, username, email string) (*domain.RegisterRequest, error) {
	user, err := s.userSvc.GetActiveByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if user != nil {
		return nil, ErrUsernameTaken
	}

	// Any prior request for this email blocks a new one, whatever its
	// eventual status.
	existing, err := s.reqRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing request: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRequested
	}

	req := domain.NewRegisterRequest(username, email)
	if err := s.reqRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create registration request: %w", err)
	}

	logger.InfoContext(ctx, "Registration request submitted", "request_id", req.ID, "username", username)
	return req, nil
}

func (s *registrationService) ListPendingRequests(ctx context.Context, caller *domain.User) ([]domain.RegisterRequest, error) {
	if caller == nil || !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	reqs, err := s.reqRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending requests: %w", err)
	}
	return reqs, nil
}

// ApproveRequest creates the account and only then flips the request to
// APPROVED. If account creation fails the request stays PENDING and the
// admin can retry.
func (s *registrationService) ApproveRequest(ctx context.Context, caller *domain.User, id, password, storageQuota string) (*domain.User, error) {
	if caller == nil || !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	password, err := utils.ValidateLength(password, "password", passwordMinLength, passwordMaxLength)
	if err != nil {
		return nil, err
	}
	quota, err := utils.ValidateLong(storageQuota, "storage_quota")
	if err != nil {
		return nil, err
	}
	if quota < 0 {
		return nil, utils.NewValidationError("storage_quota", "must not be negative")
	}

	req, err := s.loadPending(ctx, id)
	if err != nil {
		return nil, err
	}

	account := &domain.User{
		RoleID:       domain.DefaultUserRoleID,
		Username:     req.Username,
		Email:        req.Email,
		StorageQuota: quota,
		Onboarding:   true,
	}
	created, err := s.userSvc.Create(ctx, account, password, caller.ID)
	if err != nil {
		// The username may have been taken since the request was
		// submitted.
		if errors.Is(err, ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	processed, err := req.Approve(time.Now().UTC())
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if err := s.reqRepo.Update(ctx, &processed); err != nil {
		if errors.Is(err, repository.ErrNotPending) {
			return nil, ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to update registration request: %w", err)
	}

	logger.InfoContext(ctx, "Registration request approved", "request_id", req.ID, "user_id", created.ID, "admin_id", caller.ID)
	_ = s.emailSvc.SendRegistrationDecision(ctx, req.Email, req.Username, true)

	return created, nil
}

func (s *registrationService) RejectRequest(ctx context.Context, caller *domain.User, id string) error {
	if caller == nil || !caller.IsAdmin() {
		return ErrForbidden
	}

	req, err := s.loadPending(ctx, id)
	if err != nil {
		return err
	}

	processed, err := req.Reject(time.Now().UTC())
	if err != nil {
		return ErrRequestNotFound
	}
	if err := s.reqRepo.Update(ctx, &processed); err != nil {
		if errors.Is(err, repository.ErrNotPending) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("failed to update registration request: %w", err)
	}

	logger.InfoContext(ctx, "Registration request rejected", "request_id", req.ID, "admin_id", caller.ID)
	_ = s.emailSvc.SendRegistrationDecision(ctx, req.Email, req.Username, false)

	return nil
}

// loadPending fetches the request and applies the idempotency guard: a
// missing request and an already-processed one are the same error to the
// caller.
func (s *registrationService) loadPending(ctx context.Context, id string) (*domain.RegisterRequest, error) {
	req, err := s.reqRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get registration request: %w", err)
	}
	if req == nil {
		logger.DebugContext(ctx, "Registration request missing", "request_id", id)
		return nil, ErrRequestNotFound
	}
	if !req.IsPending() {
		logger.DebugContext(ctx, "Registration request already processed", "request_id", id, "status", req.Status)
		return nil, ErrRequestNotFound
	}
	return req, nil
}
