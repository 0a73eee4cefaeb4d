package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/KirkDiggler/creature-forge/internal/database"
)

// CreateTestDB opens a private in-memory SQLite database with the given
// migrations applied. It is closed when the test ends.
func CreateTestDB(t *testing.T, migrations ...database.Migrator) *gorm.DB {
	db, err := database.Open(&database.Config{DSN: ":memory:"}, migrations...)
	require.NoError(t, err, "failed to open test database")

	t.Cleanup(func() {
		_ = database.Close(db)
	})

	return db
}
