package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/staff-keeper/internal/logger"
	"github.com/MKhiriev/staff-keeper/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user record creation, lookup, and credential updates against
// the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// userRow mirrors models.User at the scan level; the nullable reset-token
// columns come back as sql null types before conversion.
type userRow struct {
	resetTokenHash      sql.NullString
	resetTokenExpiresAt sql.NullTime
}

// scanUser scans a full users row into a models.User.
func scanUser(row interface{ Scan(dest ...any) error }) (models.User, error) {
	var user models.User
	var nullable userRow

	err := row.Scan(
		&user.ID, &user.Email, &user.FirstName, &user.LastName, &user.Position,
		&user.Country, &user.HireDate, &user.PasswordHash, &user.IsAdmin,
		&user.IsActive, &user.FirstLogin, &nullable.resetTokenHash,
		&nullable.resetTokenExpiresAt, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if nullable.resetTokenHash.Valid {
		user.ResetTokenHash = nullable.resetTokenHash.String
	}
	if nullable.resetTokenExpiresAt.Valid {
		user.ResetTokenExpiresAt = nullable.resetTokenExpiresAt.Time
	}

	return user, nil
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Email, user.FirstName, user.LastName, user.Position, user.Country,
		user.HireDate, user.PasswordHash, user.IsAdmin, user.IsActive, user.FirstLogin,
	)

	created, err := scanUser(row)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: duplicate email")
			return models.User{}, ErrEmailAlreadyExists
		case "":
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
			return models.User{}, err
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: unexpected DB error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves a user record whose email matches exactly.
// Callers are expected to normalize the email before lookup, consistently
// with how records are stored.
//
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: unexpected DB error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// FindUserByID retrieves a user record by primary key.
//
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, id)

	foundUser, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: unexpected DB error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// CountUsers reports the total number of user records. Used by the
// directory service to decide whether the system is initialized.
func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	if err := r.db.QueryRowContext(ctx, countUsers).Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.CountUsers").Msg("error: unexpected DB error")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

// ListUsers returns every user record ordered by creation time descending.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: unexpected DB error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: scanning error")
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error: rows iteration error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return users, nil
}

// UpdatePassword replaces the stored password hash, clears the first-login
// flag, drops any pending reset token, and returns the updated record.
//
// Returns [ErrUserNotFound] when the user no longer exists.
func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordQuery(id, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error: building update query")
		return models.User{}, fmt.Errorf("error building update query: %w", err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdatePassword").Msg("error: unexpected DB error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// SetResetToken stores the digest and expiry of a freshly issued reset
// token on the user record. Any previously pending token is superseded.
//
// Returns [ErrUserNotFound] when the user no longer exists.
func (r *userRepository) SetResetToken(ctx context.Context, id uuid.UUID, tokenHash string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetResetTokenQuery(id, tokenHash, expiresAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetResetToken").Msg("error: building update query")
		return fmt.Errorf("error building update query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetResetToken").Msg("error: unexpected DB error")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
