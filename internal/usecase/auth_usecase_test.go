package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"medical-appointment-api/config"
	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/repository/memory"
	"medical-appointment-api/internal/service"
	"medical-appointment-api/pkg/apperror"
	"medical-appointment-api/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(issueToken bool) (AuthUsecase, *memory.UserRepository, *auditSpy) {
	users := memory.NewUserRepository()
	audit := &auditSpy{}
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})
	uc := NewAuthUsecase(quietLogger(), users, jwtService, service.NewMemoryTokenRevoker(), audit, issueToken)
	return uc, users, audit
}

func TestAuthUsecase_Signup(t *testing.T) {
	uc, users, audit := newAuthFixture(false)
	ctx := context.Background()

	user, err := uc.Signup(ctx, &dto.SignupRequest{Name: " Ana ", Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "ana@example.com", user.Email)

	stored, err := users.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.Contains(t, audit.actions, entity.AuditActionUserSignup)
}

func TestAuthUsecase_SignupDuplicateEmail(t *testing.T) {
	uc, users, _ := newAuthFixture(false)
	ctx := context.Background()

	req := &dto.SignupRequest{Name: "Ana", Email: "ana@example.com", Password: "s3cret"}
	_, err := uc.Signup(ctx, req)
	require.NoError(t, err)

	_, err = uc.Signup(ctx, req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	assert.Equal(t, 1, users.Count())
}

func TestAuthUsecase_SignupMissingFields(t *testing.T) {
	uc, users, _ := newAuthFixture(false)

	cases := []dto.SignupRequest{
		{Email: "ana@example.com", Password: "x"},
		{Name: "Ana", Password: "x"},
		{Name: "Ana", Email: "ana@example.com", Password: "   "},
	}
	for _, req := range cases {
		_, err := uc.Signup(context.Background(), &req)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
	assert.Equal(t, 0, users.Count())
}

func TestAuthUsecase_SignupPasswordTooLong(t *testing.T) {
	uc, users, _ := newAuthFixture(false)

	_, err := uc.Signup(context.Background(), &dto.SignupRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: strings.Repeat("a", 73),
	})
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Equal(t, 0, users.Count())
}

func TestAuthUsecase_LoginSameErrorForUnknownAndWrongPassword(t *testing.T) {
	uc, _, _ := newAuthFixture(false)
	ctx := context.Background()

	_, err := uc.Signup(ctx, &dto.SignupRequest{Name: "Ana", Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)

	_, unknownErr := uc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "s3cret"})
	_, wrongErr := uc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "nope"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(unknownErr))
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(wrongErr))
}

func TestAuthUsecase_LoginWithoutToken(t *testing.T) {
	uc, _, _ := newAuthFixture(false)
	ctx := context.Background()

	_, err := uc.Signup(ctx, &dto.SignupRequest{Name: "Ana", Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)

	result, err := uc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)
	assert.Nil(t, result.Token)
	assert.Equal(t, "ana@example.com", result.User.Email)
}

func TestAuthUsecase_TokenLifecycle(t *testing.T) {
	uc, _, audit := newAuthFixture(true)
	ctx := context.Background()

	_, err := uc.Signup(ctx, &dto.SignupRequest{Name: "Ana", Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)

	result, err := uc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "s3cret"})
	require.NoError(t, err)
	require.NotNil(t, result.Token)
	assert.Equal(t, int64(3600), result.Token.ExpiresIn)

	claims, err := uc.Authenticate(ctx, result.Token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)

	require.NoError(t, uc.Logout(ctx, claims))
	_, err = uc.Authenticate(ctx, result.Token.AccessToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
	assert.Contains(t, audit.actions, entity.AuditActionUserLogout)
}

func TestAuthUsecase_AuthenticateRejectsGarbage(t *testing.T) {
	uc, _, _ := newAuthFixture(true)

	_, err := uc.Authenticate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = uc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthUsecase_StoreFailureIsInternal(t *testing.T) {
	users := &stubUserRepository{
		findByEmailFn: func(context.Context, string) (*entity.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	uc := NewAuthUsecase(quietLogger(), users, nil, service.NewMemoryTokenRevoker(), &auditSpy{}, false)

	_, err := uc.Login(context.Background(), &dto.LoginRequest{Email: "ana@example.com", Password: "x"})
	require.Error(t, err)
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(err))
	assert.Equal(t, "Internal server error", apperror.PublicMessage(err))
}
