package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/cutiepets/admin/internal/pkg/database"
)

// AccountRepo persists admin accounts in PostgreSQL
type AccountRepo struct {
	db *sqlx.DB
}

// NewAccountRepo creates a new account repository
func NewAccountRepo(db *sqlx.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// ChallengeRepo stores OTP challenges and reset grants in Redis
type ChallengeRepo struct {
	redis *database.RedisClient
}

// NewChallengeRepo creates a new challenge repository
func NewChallengeRepo(redis *database.RedisClient) *ChallengeRepo {
	return &ChallengeRepo{redis: redis}
}
