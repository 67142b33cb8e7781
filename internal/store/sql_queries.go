package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/communication-ltd/portal/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// dollar placeholders. Every repository query is built through it so that
// user input can only ever reach the database as a bound parameter.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the canonical column list scanned into models.User.
var userColumns = []string{"id", "username", "email", "password_hash", "salt", "created_at"}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("username", "email", "password_hash", "salt").
		Values(user.Username, user.Email, user.PasswordHash, user.Salt).
		Suffix("RETURNING id, username, email, password_hash, salt, created_at").
		ToSql()
}

func buildFindUserQuery(column string, value any) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(sq.Eq{column: value}).
		ToSql()
}

func buildUpdatePasswordQuery(userID int64, passwordHash string, salt string) (string, []any, error) {
	return psql.Update("users").
		Set("password_hash", passwordHash).
		Set("salt", salt).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildCreateSessionQuery(session models.Session) (string, []any, error) {
	return psql.Insert("sessions").
		Columns("id", "user_id", "expires_at").
		Values(session.ID, session.UserID, session.ExpiresAt).
		ToSql()
}

func buildFindActiveSessionQuery(token string) (string, []any, error) {
	return psql.Select("u.id", "u.username", "u.email", "u.password_hash", "u.salt", "u.created_at").
		From("sessions s").
		Join("users u ON u.id = s.user_id").
		Where(sq.Eq{"s.id": token}).
		Where(sq.Expr("s.expires_at > now()")).
		ToSql()
}

func buildDeleteSessionQuery(token string) (string, []any, error) {
	return psql.Delete("sessions").
		Where(sq.Eq{"id": token}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery() (string, []any, error) {
	return psql.Delete("sessions").
		Where(sq.Expr("expires_at <= now()")).
		ToSql()
}

func buildUpsertResetQuery(reset models.PasswordReset) (string, []any, error) {
	return psql.Insert("password_resets").
		Columns("user_id", "token", "expires_at").
		Values(reset.UserID, reset.Token, reset.ExpiresAt).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET token = EXCLUDED.token, expires_at = EXCLUDED.expires_at, created_at = now()").
		ToSql()
}

func buildFindActiveResetQuery(userID int64, token string) (string, []any, error) {
	return psql.Select("user_id", "token", "expires_at", "created_at").
		From("password_resets").
		Where(sq.Eq{"user_id": userID, "token": token}).
		Where(sq.Expr("expires_at > now()")).
		ToSql()
}

func buildDeleteResetQuery(userID int64) (string, []any, error) {
	return psql.Delete("password_resets").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteExpiredResetsQuery() (string, []any, error) {
	return psql.Delete("password_resets").
		Where(sq.Expr("expires_at <= now()")).
		ToSql()
}

func buildAppendHistoryQuery(entry models.PasswordHistoryEntry) (string, []any, error) {
	return psql.Insert("password_history").
		Columns("user_id", "password_hash", "salt").
		Values(entry.UserID, entry.PasswordHash, entry.Salt).
		ToSql()
}

func buildRecentHistoryQuery(userID int64, limit int) (string, []any, error) {
	return psql.Select("id", "user_id", "password_hash", "salt", "created_at").
		From("password_history").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
}

func buildFindAttemptQuery(username string) (string, []any, error) {
	return psql.Select("username", "attempts", "last_attempt").
		From("login_attempts").
		Where(sq.Eq{"username": username}).
		ToSql()
}

// buildRecordFailureQuery is a single-statement upsert so that two
// concurrent failures for the same username cannot both observe the same
// counter value: the increment happens inside the database.
func buildRecordFailureQuery(username string) (string, []any, error) {
	return psql.Insert("login_attempts").
		Columns("username", "attempts", "last_attempt").
		Values(username, 1, sq.Expr("now()")).
		Suffix("ON CONFLICT (username) DO UPDATE SET attempts = login_attempts.attempts + 1, last_attempt = now()").
		ToSql()
}

func buildResetWindowQuery(username string) (string, []any, error) {
	return psql.Update("login_attempts").
		Set("attempts", 1).
		Set("last_attempt", sq.Expr("now()")).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildDeleteAttemptQuery(username string) (string, []any, error) {
	return psql.Delete("login_attempts").
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildCreateCustomerQuery(customer models.Customer) (string, []any, error) {
	return psql.Insert("customers").
		Columns("name", "email", "phone").
		Values(customer.Name, customer.Email, customer.Phone).
		Suffix("RETURNING id, name, email, phone, created_at").
		ToSql()
}

func buildListRecentCustomersQuery(limit int) (string, []any, error) {
	return psql.Select("id", "name", "email", "phone", "created_at").
		From("customers").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
}
