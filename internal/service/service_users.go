package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/staff-keeper/internal/logger"
	"github.com/MKhiriev/staff-keeper/internal/store"
	"github.com/MKhiriev/staff-keeper/internal/utils"
	"github.com/MKhiriev/staff-keeper/models"
	"github.com/google/uuid"
)

// userService is the concrete implementation of UserService.
// It creates and looks up user records via a UserRepository, normalizing
// emails on every path and hashing passwords with bcrypt before anything
// touches storage.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// IsInitialized reports whether the directory holds at least one record.
func (u *userService) IsInitialized(ctx context.Context) (bool, error) {
	count, err := u.userRepository.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("user count failed: %w", err)
	}

	return count > 0, nil
}

// InitializeSystem creates the very first HR admin account.
//
// The bootstrap path is usable only while the directory is completely
// empty; afterwards it always fails with ErrSystemAlreadyInitialized.
// Creation is delegated to CreateAdmin, so the unique-email constraint
// additionally backstops two concurrent initialize calls.
func (u *userService) InitializeSystem(ctx context.Context, req models.InitializeSystemRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	initialized, err := u.IsInitialized(ctx)
	if err != nil {
		log.Err(err).Msg("initialization check failed")
		return models.User{}, err
	}
	if initialized {
		log.Warn().Msg("initialize called on a non-empty directory")
		return models.User{}, ErrSystemAlreadyInitialized
	}

	return u.CreateAdmin(ctx, models.CreateAdminRequest(req))
}

// CreateAdmin creates an admin record directly.
//
// The email is normalized (trimmed, lower-cased) and checked for existence
// before the insert; the storage-level unique index turns any lost race
// into store.ErrEmailAlreadyExists as well, so exactly one of two
// concurrent creations succeeds.
func (u *userService) CreateAdmin(ctx context.Context, req models.CreateAdminRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := models.NormalizeEmail(req.Email)

	if _, err := u.userRepository.FindUserByEmail(ctx, email); err == nil {
		log.Warn().Str("email", email).Msg("admin creation rejected: email already exists")
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Msg("duplicate email pre-check failed")
		return models.User{}, fmt.Errorf("duplicate email pre-check failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	created, err := u.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Position:     req.Position,
		Country:      req.Country,
		HireDate:     time.Now(),
		PasswordHash: passwordHash,
		IsAdmin:      true,
		IsActive:     true,
		FirstLogin:   true,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("admin creation ended with error")
		return models.User{}, fmt.Errorf("admin creation ended with error: %w", err)
	}

	log.Info().Str("id", created.ID.String()).Str("email", created.Email).Msg("admin user created")

	return created, nil
}

// CreateUser creates a regular employee record.
//
// No password is accepted from the caller: a random 12-character password
// is generated, hashed, and stored, and the plaintext is returned alongside
// the record so the boundary layer can relay it out-of-band. This service
// does not send email.
func (u *userService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, string, error) {
	log := logger.FromContext(ctx)

	email := models.NormalizeEmail(req.Email)

	if _, err := u.userRepository.FindUserByEmail(ctx, email); err == nil {
		log.Warn().Str("email", email).Msg("user creation rejected: email already exists")
		return models.User{}, "", store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Msg("duplicate email pre-check failed")
		return models.User{}, "", fmt.Errorf("duplicate email pre-check failed: %w", err)
	}

	generatedPassword, err := generateRandomPassword()
	if err != nil {
		log.Err(err).Msg("password generation failed")
		return models.User{}, "", err
	}

	passwordHash, err := utils.HashPassword(generatedPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, "", err
	}

	created, err := u.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Position:     req.Position,
		Country:      req.Country,
		HireDate:     time.Now(),
		PasswordHash: passwordHash,
		IsAdmin:      false,
		IsActive:     true,
		FirstLogin:   true,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, "", fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("id", created.ID.String()).Str("email", created.Email).Msg("user created")

	return created, generatedPassword, nil
}

// FindByEmail looks a user up by email, normalizing it consistently with
// how records are stored.
func (u *userService) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return u.userRepository.FindUserByEmail(ctx, models.NormalizeEmail(email))
}

// FindByID looks a user up by primary key.
func (u *userService) FindByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	return u.userRepository.FindUserByID(ctx, id)
}

// ListAll returns every user record ordered by creation time descending.
func (u *userService) ListAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}
