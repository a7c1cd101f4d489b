package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/sapdash/internal/adapter/driven/sqlite"
)

// newTestDB creates a migrated database in a per-test temp directory.
func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db, err := sqlite.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	require.NoError(t, sqlite.RunMigrations(db.Writer))

	return db
}
