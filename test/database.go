package test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cashrunway/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path to a unique SQLite database file. The
// directory is removed when the test ends.
func TmpFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), fmt.Sprintf("forecast-%s.db", uuid.New()))
}

// Seed saves all resources to the connected database and fails the test
// on the first error.
func Seed(t *testing.T, resources ...any) {
	t.Helper()

	for _, r := range resources {
		require.Nil(t, models.DB.Create(r).Error, "seeding %T", r)
	}
}
