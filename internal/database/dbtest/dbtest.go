// Package dbtest provides throwaway databases for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/studentflow-backend/internal/database"
)

// New returns a fresh in-memory SQLite database with all tables created.
func New(t *testing.T) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"

	db, err := database.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.InitTables(ctx, db))
	return db
}
