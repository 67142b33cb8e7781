package store

import (
	"strings"
	"testing"
	"time"

	"github.com/communication-ltd/portal/models"
	"github.com/stretchr/testify/require"
)

func Test_buildFindActiveSessionQuery_SQLContainsParts(t *testing.T) {
	query, args, err := buildFindActiveSessionQuery("deadbeef")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "deadbeef", args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from sessions")
	require.Contains(t, q, "join users")
	require.Contains(t, q, "expires_at > now()")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
}

func Test_buildRecordFailureQuery_AtomicIncrement(t *testing.T) {
	query, args, err := buildRecordFailureQuery("alice")
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Equal(t, "alice", args[0])
	require.Equal(t, 1, args[1])

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into login_attempts")
	require.Contains(t, q, "on conflict (username)")
	// the increment must happen inside the database, not in Go
	require.Contains(t, q, "attempts = login_attempts.attempts + 1")
	require.Contains(t, q, "last_attempt = now()")
}

func Test_buildRecentHistoryQuery_OrderAndLimit(t *testing.T) {
	query, args, err := buildRecentHistoryQuery(42, 3)
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, int64(42), args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "from password_history")
	require.Contains(t, q, "order by created_at desc")
	require.Contains(t, q, "limit 3")
}

func Test_buildUpsertResetQuery_OverwritesExistingRow(t *testing.T) {
	reset := models.PasswordReset{
		UserID:    1,
		Token:     "cafebabe",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	query, args, err := buildUpsertResetQuery(reset)
	require.NoError(t, err)

	require.Len(t, args, 3)

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into password_resets")
	require.Contains(t, q, "on conflict (user_id)")
	require.Contains(t, q, "token = excluded.token")
	require.Contains(t, q, "expires_at = excluded.expires_at")
}

func Test_buildCreateUserQuery_ReturnsAllColumns(t *testing.T) {
	user := models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "digest",
		Salt:         "salt",
	}

	query, args, err := buildCreateUserQuery(user)
	require.NoError(t, err)

	require.Len(t, args, 4)

	q := strings.ToLower(query)

	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "returning id, username, email, password_hash, salt, created_at")
}
