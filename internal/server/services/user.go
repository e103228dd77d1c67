// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mayankt25/backend/internal/common"
	"github.com/mayankt25/backend/internal/dbx"
	"github.com/mayankt25/backend/internal/server/auth"
	"github.com/mayankt25/backend/internal/server/config"
	"github.com/mayankt25/backend/internal/server/models"
	"github.com/mayankt25/backend/internal/server/repositories/repomanager"
	"github.com/mayankt25/backend/internal/server/validation"
)

// UserService provides authentication-related operations:
// - Register: validate, reject duplicates, hash, persist, mint a token
// - Login: verify credentials and mint a token
// - GetByID: resolve the authenticated principal's record
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
	tokenTTL    time.Duration
	bcryptCost  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
		tokenTTL:    cfg.TokenTTL,
		bcryptCost:  cfg.BcryptCost,
	}
}

// Register creates a new account and returns a signed token for it.
//
// All field violations are collected into a validation.Errors before any
// store access. The duplicate check and the insert run in one transaction,
// and a found duplicate short-circuits the flow: nothing is hashed or
// persisted, and no token is issued.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, *models.User, error) {
	var errs validation.Errors
	if !validation.MinLength(name, 3) {
		errs.Add("name", "Please enter a valid name with at least 3 characters")
	}
	if !validation.ValidEmail(email) {
		errs.Add("email", "Please enter a valid email")
	}
	if !validation.MinLength(password, 6) {
		errs.Add("password", "Password must be at least 6 characters")
	}
	if err := errs.Err(); err != nil {
		return "", nil, err
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	err := s.withTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByEmail(ctx, email)
		if err == nil {
			return common.ErrDuplicateUser
		}
		if !errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("checking for duplicate email: %w", err)
		}

		hash, err := auth.HashPassword(password, s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}
		user.PasswordHash = hash

		if err := repo.Create(ctx, user); err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", nil, err
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", nil, common.ErrInternal
	}
	return token, user, nil
}

// Login verifies the credentials and, on success, returns a signed token.
// An unknown email and a wrong password both map to ErrInvalidCredentials so
// the caller cannot enumerate accounts.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	var errs validation.Errors
	if !validation.ValidEmail(email) {
		errs.Add("email", "Please enter a valid email")
	}
	if password == "" {
		errs.Add("password", "Password must not be blank")
	}
	if err := errs.Err(); err != nil {
		return "", err
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrInternal
	}

	if err := auth.CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", common.ErrInvalidCredentials
		}
		// Hasher failure is an internal error, not a wrong password.
		return "", common.ErrInternal
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return "", common.ErrInternal
	}
	return token, nil
}

// GetByID returns the user record for an authenticated principal.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.ErrInternal
	}
	return user, nil
}

// withTx runs fn transactionally when a database handle is present. The
// in-memory manager has no handle; its repositories apply each call atomically
// on their own.
func (s *UserService) withTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return dbx.WithTx(ctx, s.db, nil, fn)
}
