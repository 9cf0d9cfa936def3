package postgres

import (
	"context"
	"database/sql"
	"time"

	"docshare-backend/internal/domain"
	"docshare-backend/internal/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	u.ID = uuid.NewString()
	u.CreateDate = time.Now().UTC()
	query := `INSERT INTO users (id, role_id, username, email, password_hash, storage_quota, onboarding, disabled, create_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.RoleID, u.Username, u.Email, u.PasswordHash, u.StorageQuota, u.Onboarding, u.Disabled, u.CreateDate)
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, role_id, username, email, password_hash, storage_quota, onboarding, disabled, create_date
	          FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetActiveByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT id, role_id, username, email, password_hash, storage_quota, onboarding, disabled, create_date
	          FROM users WHERE username = $1 AND NOT disabled`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

func (r *userRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, role_id, username, email, password_hash, storage_quota, onboarding, disabled, create_date
	          FROM users WHERE LOWER(email) = LOWER($1) AND NOT disabled`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) ListAdmins(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, role_id, username, email, password_hash, storage_quota, onboarding, disabled, create_date
	          FROM users WHERE role_id = $1 AND NOT disabled`
	rows, err := r.db.QueryContext(ctx, query, domain.AdminRoleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.RoleID, &u.Username, &u.Email, &u.PasswordHash, &u.StorageQuota, &u.Onboarding, &u.Disabled, &u.CreateDate); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.RoleID, &u.Username, &u.Email, &u.PasswordHash, &u.StorageQuota, &u.Onboarding, &u.Disabled, &u.CreateDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
