package service

import (
	"context"
	"errors"
	"fmt"

	"docshare-backend/internal/domain"
	"docshare-backend/internal/logger"
	"docshare-backend/internal/repository"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Create hashes the password and persists the account. creatorID identifies
// the acting admin for attribution in the log.
func (s *userService) Create(ctx context.Context, user *domain.User, password, creatorID string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = string(hash)

	if err := s.userRepo.Create(ctx, user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.InfoContext(ctx, "User account created", "user_id", user.ID, "username", user.Username, "created_by", creatorID)
	return user, nil
}

func (s *userService) GetActiveByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.GetActiveByUsername(ctx, username)
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.GetActiveByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// isUniqueViolation reports a postgres unique constraint error (class 23505).
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
