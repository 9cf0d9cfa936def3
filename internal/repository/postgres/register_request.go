package postgres

import (
	"context"
	"database/sql"
	"time"

	"docshare-backend/internal/domain"
	"docshare-backend/internal/repository"

	"github.com/google/uuid"
)

type registerRequestRepository struct {
	db *sql.DB
}

func NewRegisterRequestRepository(db *sql.DB) repository.RegisterRequestRepository {
	return &registerRequestRepository{db: db}
}

func (r *registerRequestRepository) Create(ctx context.Context, req *domain.RegisterRequest) error {
	req.ID = uuid.NewString()
	req.CreateDate = time.Now().UTC()
	query := `INSERT INTO register_requests (id, username, email, status, create_date)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, req.ID, req.Username, req.Email, req.Status, req.CreateDate)
	return err
}

func (r *registerRequestRepository) GetByID(ctx context.Context, id string) (*domain.RegisterRequest, error) {
	req := &domain.RegisterRequest{}
	query := `SELECT id, username, email, status, create_date, process_date
	          FROM register_requests WHERE id = $1`
	var processDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.Username, &req.Email, &req.Status, &req.CreateDate, &processDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if processDate.Valid {
		req.ProcessDate = &processDate.Time
	}
	return req, nil
}

func (r *registerRequestRepository) GetByEmail(ctx context.Context, email string) (*domain.RegisterRequest, error) {
	req := &domain.RegisterRequest{}
	query := `SELECT id, username, email, status, create_date, process_date
	          FROM register_requests WHERE LOWER(email) = LOWER($1)`
	var processDate sql.NullTime
	err := r.db.QueryRowContext(ctx, query, email).Scan(&req.ID, &req.Username, &req.Email, &req.Status, &req.CreateDate, &processDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if processDate.Valid {
		req.ProcessDate = &processDate.Time
	}
	return req, nil
}

func (r *registerRequestRepository) ListPending(ctx context.Context) ([]domain.RegisterRequest, error) {
	query := `SELECT id, username, email, status, create_date, process_date
	          FROM register_requests WHERE status = $1 ORDER BY create_date ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.RegisterRequestStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.RegisterRequest
	for rows.Next() {
		var req domain.RegisterRequest
		var processDate sql.NullTime
		if err := rows.Scan(&req.ID, &req.Username, &req.Email, &req.Status, &req.CreateDate, &processDate); err != nil {
			return nil, err
		}
		if processDate.Valid {
			req.ProcessDate = &processDate.Time
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

// Update writes the status transition with a guard on the current status so
// that concurrent approve/reject calls on the same request cannot both win.
func (r *registerRequestRepository) Update(ctx context.Context, req *domain.RegisterRequest) error {
	query := `UPDATE register_requests SET status = $1, process_date = $2
	          WHERE id = $3 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, req.Status, req.ProcessDate, req.ID, domain.RegisterRequestStatusPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotPending
	}
	return nil
}
