package postgres

import (
	"database/sql"

	"docshare-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.RegisterRequestRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                        db,
		RegisterRequestRepository: NewRegisterRequestRepository(db),
		UserRepository:            NewUserRepository(db),
	}
}
