package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// userColumns is the canonical column list scanned into models.User.
const userColumns = `id, email, first_name, last_name, position, country, hire_date, password,
    is_admin, is_active, first_login, reset_token_hash, reset_token_expires_at, created_at, updated_at`

const (
	createUser = `INSERT INTO users (email, first_name, last_name, position, country, hire_date, password, is_admin, is_active, first_login)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	countUsers = `SELECT count(*) FROM users;`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY created_at DESC;`
)

// psql builds statements with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdatePasswordQuery builds the UPDATE statement that replaces the
// password hash, flips the first-login flag, and clears any pending reset
// token, returning the updated row.
func buildUpdatePasswordQuery(id uuid.UUID, passwordHash string) (string, []any, error) {
	return psql.Update("users").
		Set("password", passwordHash).
		Set("first_login", false).
		Set("reset_token_hash", nil).
		Set("reset_token_expires_at", nil).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

// buildSetResetTokenQuery builds the UPDATE statement that stores the
// digest and expiry of a freshly issued reset token.
func buildSetResetTokenQuery(id uuid.UUID, tokenHash string, expiresAt time.Time) (string, []any, error) {
	return psql.Update("users").
		Set("reset_token_hash", tokenHash).
		Set("reset_token_expires_at", expiresAt).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
}
