package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrsetia1/flowmint/internal/application/dto"
	"github.com/mrsetia1/flowmint/internal/domain"
	"github.com/mrsetia1/flowmint/internal/domain/entity"
	"github.com/mrsetia1/flowmint/internal/domain/repository"
	"github.com/mrsetia1/flowmint/pkg/password"
	"github.com/mrsetia1/flowmint/pkg/token"
)

// JWTConfig token issuance settings, handed in from main.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// AuthUseCase registration and login orchestration.
type AuthUseCase struct {
	users  repository.UserRepository
	jwtCfg JWTConfig
}

// NewAuthUseCase builds the auth use case.
func NewAuthUseCase(users repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, jwtCfg: jwtCfg}
}

// Register hashes the password and persists a new user. The role defaults
// to editor and must come from the closed role set. Email uniqueness is
// enforced by the store's constraint, not pre-checked here; the losing
// writer of a racing duplicate gets domain.ErrEmailAlreadyExists.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleEditor
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// Login verifies email and password and issues a token. A missing user and
// a wrong password are indistinguishable to the caller: both return
// domain.ErrInvalidCredentials so nothing leaks about which part failed.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	tok, err := token.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.TTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &dto.LoginResponse{Token: tok}, nil
}
