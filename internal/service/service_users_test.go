package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/staff-keeper/internal/logger"
	"github.com/MKhiriev/staff-keeper/internal/mock"
	"github.com/MKhiriev/staff-keeper/internal/store"
	"github.com/MKhiriev/staff-keeper/internal/utils"
	"github.com/MKhiriev/staff-keeper/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestUserSvc builds a userService backed by a mocked repository.
func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)
	svc := NewUserService(mockRepo, logger.Nop())
	return svc, mockRepo
}

// ── IsInitialized ────────────────────────────────────────────────────────────

func TestUserService_IsInitialized_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CountUsers(ctx).Return(int64(0), nil)

	initialized, err := svc.IsInitialized(ctx)
	require.NoError(t, err)
	assert.False(t, initialized)
}

func TestUserService_IsInitialized_NonEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CountUsers(ctx).Return(int64(3), nil)

	initialized, err := svc.IsInitialized(ctx)
	require.NoError(t, err)
	assert.True(t, initialized)
}

func TestUserService_IsInitialized_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CountUsers(ctx).Return(int64(0), errors.New("connection reset"))

	_, err := svc.IsInitialized(ctx)
	require.Error(t, err)
}

// ── InitializeSystem ─────────────────────────────────────────────────────────

func TestUserService_InitializeSystem_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	req := models.InitializeSystemRequest{
		Email:     "  Admin@Example.COM ",
		Password:  "first-admin-password",
		FirstName: "Amina",
		LastName:  "Ben Salah",
		Position:  "Head of HR",
		Country:   models.CountryTunisia,
	}

	gomock.InOrder(
		mockRepo.EXPECT().CountUsers(ctx).Return(int64(0), nil),
		mockRepo.EXPECT().FindUserByEmail(ctx, "admin@example.com").Return(models.User{}, store.ErrUserNotFound),
		mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "admin@example.com", u.Email, "email must be normalized before storage")
				assert.True(t, u.IsAdmin)
				assert.True(t, u.IsActive)
				assert.True(t, u.FirstLogin)
				assert.NoError(t, utils.CheckPassword(u.PasswordHash, req.Password))
				u.ID = uuid.New()
				return u, nil
			},
		),
	)

	created, err := svc.InitializeSystem(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.IsAdmin)
}

func TestUserService_InitializeSystem_AlreadyInitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().CountUsers(ctx).Return(int64(1), nil)

	_, err := svc.InitializeSystem(ctx, models.InitializeSystemRequest{
		Email:    "admin@example.com",
		Password: "irrelevant",
	})
	require.ErrorIs(t, err, ErrSystemAlreadyInitialized)
}

// ── CreateAdmin ──────────────────────────────────────────────────────────────

func TestUserService_CreateAdmin_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, "taken@example.com").
		Return(models.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	_, err := svc.CreateAdmin(ctx, models.CreateAdminRequest{
		Email:    "Taken@Example.com",
		Password: "whatever-password",
	})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_CreateAdmin_RaceLostOnInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	// Pre-check passes but a concurrent insert wins; the unique index
	// surfaces the conflict from CreateUser.
	gomock.InOrder(
		mockRepo.EXPECT().FindUserByEmail(ctx, "raced@example.com").Return(models.User{}, store.ErrUserNotFound),
		mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists),
	)

	_, err := svc.CreateAdmin(ctx, models.CreateAdminRequest{
		Email:    "raced@example.com",
		Password: "whatever-password",
	})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestUserService_CreateUser_GeneratesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	var storedHash string
	gomock.InOrder(
		mockRepo.EXPECT().FindUserByEmail(ctx, "employee@example.com").Return(models.User{}, store.ErrUserNotFound),
		mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.False(t, u.IsAdmin)
				assert.True(t, u.IsActive)
				assert.True(t, u.FirstLogin)
				assert.WithinDuration(t, time.Now(), u.HireDate, time.Minute)
				storedHash = u.PasswordHash
				u.ID = uuid.New()
				return u, nil
			},
		),
	)

	created, generated, err := svc.CreateUser(ctx, models.CreateUserRequest{
		Email:     "Employee@example.com",
		FirstName: "Karim",
		LastName:  "Haddad",
		Position:  "Accountant",
		Country:   models.CountryFrance,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Len(t, generated, 12)
	assert.NoError(t, utils.CheckPassword(storedHash, generated),
		"stored hash must match the returned plaintext password")
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().FindUserByEmail(ctx, "taken@example.com").
		Return(models.User{ID: uuid.New()}, nil)

	_, _, err := svc.CreateUser(ctx, models.CreateUserRequest{Email: "taken@example.com"})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Lookups ──────────────────────────────────────────────────────────────────

func TestUserService_FindByEmail_Normalizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	want := models.User{ID: uuid.New(), Email: "someone@example.com"}
	mockRepo.EXPECT().FindUserByEmail(ctx, "someone@example.com").Return(want, nil)

	got, err := svc.FindByEmail(ctx, "  SomeOne@Example.COM  ")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUserService_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	want := []models.User{
		{ID: uuid.New(), Email: "b@example.com"},
		{ID: uuid.New(), Email: "a@example.com"},
	}
	mockRepo.EXPECT().ListUsers(ctx).Return(want, nil)

	got, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── Password generator ───────────────────────────────────────────────────────

func TestGenerateRandomPassword_AlphabetAndLength(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 20; i++ {
		password, err := generateRandomPassword()
		require.NoError(t, err)
		require.Len(t, password, generatedPasswordLength)
		for _, r := range password {
			assert.Contains(t, passwordAlphabet, string(r))
		}
		seen[password] = struct{}{}
	}
	assert.Greater(t, len(seen), 1, "generator must not repeat the same password every time")
}
