package memory

import (
	"context"
	"testing"

	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	user := &entity.User{Name: "Ana", Email: "ana@example.com", Password: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)

	byEmail, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "Ana", byEmail.Name)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, user.Email, byID.Email)

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{Name: "A", Email: "dup@example.com", Password: "h1"}))
	err := repo.Create(ctx, &entity.User{Name: "B", Email: "dup@example.com", Password: "h2"})

	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.Equal(t, 1, repo.Count())

	kept, err := repo.FindByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, "A", kept.Name)
}

func TestUserRepository_UpdateProfileOnlyTouchesNameAndPhone(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.User{Name: "Old", Email: "p@example.com", Password: "hash"}))

	updated, err := repo.UpdateProfile(ctx, "p@example.com", entity.ProfileUpdate{
		Name:  strPtr("New"),
		Phone: strPtr("555-0100"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "New", updated.Name)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "555-0100", *updated.Phone)
	assert.Equal(t, "p@example.com", updated.Email)
	assert.Equal(t, "hash", updated.Password)

	cleared, err := repo.UpdateProfile(ctx, "p@example.com", entity.ProfileUpdate{Phone: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Phone)
	assert.Equal(t, "New", cleared.Name)
}

func TestUserRepository_UpdateProfileMissingUser(t *testing.T) {
	repo := NewUserRepository()

	user, err := repo.UpdateProfile(context.Background(), "ghost@example.com", entity.ProfileUpdate{Name: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, user)
}
