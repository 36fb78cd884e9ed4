package usecase

import (
	"context"
	"testing"

	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newProfileFixture(t *testing.T) (ProfileUsecase, *memory.UserRepository, *auditSpy) {
	t.Helper()
	users := memory.NewUserRepository()
	require.NoError(t, users.Create(context.Background(), &entity.User{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "hash",
		Phone:    strPtr("0812"),
	}))
	audit := &auditSpy{}
	return NewProfileUsecase(quietLogger(), users, audit), users, audit
}

func TestProfileUsecase_GetProfile(t *testing.T) {
	uc, _, _ := newProfileFixture(t)

	user, err := uc.GetProfile(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)

	_, err = uc.GetProfile(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = uc.GetProfile(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestProfileUsecase_UpdateNameKeepsPhone(t *testing.T) {
	uc, users, audit := newProfileFixture(t)
	ctx := context.Background()

	user, err := uc.UpdateProfile(ctx, &dto.UpdateProfileRequest{Email: "ana@example.com", Name: strPtr("Ana Maria")})
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", user.Name)
	require.NotNil(t, user.Phone)
	assert.Equal(t, "0812", *user.Phone)
	assert.Contains(t, audit.actions, entity.AuditActionProfileUpdate)

	stored, err := users.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", stored.Password)
	assert.Equal(t, "ana@example.com", stored.Email)
}

func TestProfileUsecase_BlankNameIgnoredEmptyPhoneClears(t *testing.T) {
	uc, _, _ := newProfileFixture(t)

	user, err := uc.UpdateProfile(context.Background(), &dto.UpdateProfileRequest{
		Email: "ana@example.com",
		Name:  strPtr("  "),
		Phone: strPtr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.Nil(t, user.Phone)
}

func TestProfileUsecase_UpdateUnknownUser(t *testing.T) {
	uc, _, _ := newProfileFixture(t)

	_, err := uc.UpdateProfile(context.Background(), &dto.UpdateProfileRequest{Email: "nobody@example.com", Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = uc.UpdateProfile(context.Background(), &dto.UpdateProfileRequest{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrEmailRequired)
}
