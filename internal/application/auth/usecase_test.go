package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrsetia1/flowmint/internal/application/auth"
	"github.com/mrsetia1/flowmint/internal/application/dto"
	"github.com/mrsetia1/flowmint/internal/domain"
	"github.com/mrsetia1/flowmint/internal/domain/entity"
	"github.com/mrsetia1/flowmint/pkg/token"
)

// fakeUserRepo in-memory UserRepository keyed by email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

var testJWT = auth.JWTConfig{Secret: "unit-test-secret", TTL: time.Hour, Issuer: "flowmint-test"}

func TestRegister_DefaultsToEditor(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "a@x.com",
		Password: "pw1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "a@x.com", out.Email)
	assert.Equal(t, entity.RoleEditor, out.Role)
}

func TestRegister_KeepsExplicitRole(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "a@x.com",
		Password: "pw1",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.Role)
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "a@x.com",
		Password: "pw1",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestRegister_NeverStoresPlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "a@x.com",
		Password: "pw1",
	})
	require.NoError(t, err)

	stored, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw1", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{Email: "a@x.com", Password: "pw2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_IssuesTokenWithIdentity(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	reg, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "a@x.com",
		Password: "pw1",
		Role:     entity.RoleEditor,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	id, err := token.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, id.UserID)
	assert.Equal(t, entity.RoleEditor, id.Role)
}

// Unknown email and wrong password must be indistinguishable.
func TestLogin_InvalidCredentialsUnified(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWT)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, errWrongPw := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "nope"})
	_, errNoUser := uc.Login(context.Background(), dto.LoginRequest{Email: "ghost@x.com", Password: "pw1"})

	assert.ErrorIs(t, errWrongPw, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, domain.ErrInvalidCredentials)
	assert.Equal(t, errWrongPw, errNoUser)
}
