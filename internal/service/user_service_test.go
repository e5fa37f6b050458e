package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/techzu/social_go_server/config"
	"github.com/techzu/social_go_server/internal/model/dto"
	"github.com/techzu/social_go_server/internal/repository"
	"github.com/techzu/social_go_server/internal/testutil"
)

func setupUserService(t *testing.T) (*UserService, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	service := NewUserService(userRepo, &config.Config{})

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return service, db, cleanup
}

func TestUserService_GetProfile(t *testing.T) {
	service, db, cleanup := setupUserService(t)
	defer cleanup()

	user := testutil.TestUser(t, db,
		testutil.WithUsername("profileuser"),
		testutil.WithEmail("profile@example.com"),
	)

	info, err := service.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "profileuser", info.Username)
	assert.Equal(t, "profile@example.com", info.Email)
	assert.NotEmpty(t, info.CreatedAt)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	service, _, cleanup := setupUserService(t)
	defer cleanup()

	_, err := service.GetProfile(99999)
	assert.Equal(t, ErrUserNotFound, err)
}

func TestUserService_UpdateProfile(t *testing.T) {
	service, db, cleanup := setupUserService(t)
	defer cleanup()

	user := testutil.TestUser(t, db)

	newName := "renamed"
	newBio := "Hello there"
	info, err := service.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		Username: &newName,
		Bio:      &newBio,
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", info.Username)
	assert.Equal(t, "Hello there", info.Bio)
}

func TestUserService_UpdateProfile_PartialFields(t *testing.T) {
	service, db, cleanup := setupUserService(t)
	defer cleanup()

	user := testutil.TestUser(t, db, testutil.WithUsername("keepme"))

	avatar := "https://example.com/a.png"
	info, err := service.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		AvatarURL: &avatar,
	})
	require.NoError(t, err)
	assert.Equal(t, "keepme", info.Username)
	assert.Equal(t, avatar, info.AvatarURL)
}

func TestUserService_UpdateProfile_UsernameTaken(t *testing.T) {
	service, db, cleanup := setupUserService(t)
	defer cleanup()

	testutil.TestUser(t, db, testutil.WithUsername("existing"))
	user := testutil.TestUser(t, db)

	taken := "existing"
	_, err := service.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		Username: &taken,
	})
	assert.Equal(t, ErrUsernameExists, err)
}

func TestUserService_UpdateProfile_SameUsername(t *testing.T) {
	service, db, cleanup := setupUserService(t)
	defer cleanup()

	user := testutil.TestUser(t, db, testutil.WithUsername("same"))

	// Submitting the current username is not a conflict
	same := "same"
	info, err := service.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		Username: &same,
	})
	require.NoError(t, err)
	assert.Equal(t, "same", info.Username)
}
