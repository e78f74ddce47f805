package migration

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	t.Run("creates an up and down file pair", func(t *testing.T) {
		dir := t.TempDir()

		mf, err := CreateMigration(dir, "Add pets table")
		require.NoError(t, err)

		assert.FileExists(t, mf.UpPath)
		assert.FileExists(t, mf.DownPath)
		assert.Contains(t, mf.UpPath, "_add_pets_table.up.sql")

		content, err := os.ReadFile(mf.UpPath)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Add pets table")
	})
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "add_pets_table", sanitizeName("Add Pets Table"))
	assert.Equal(t, "orders_v2", sanitizeName("Orders  --  V2!"))
	assert.Equal(t, "favorites", sanitizeName("favorites___"))
}

func TestListMigrations(t *testing.T) {
	t.Run("returns empty list for missing directory", func(t *testing.T) {
		migrations, err := ListMigrations("does-not-exist")
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})

	t.Run("lists only up migrations once", func(t *testing.T) {
		dir := t.TempDir()
		_, err := CreateMigration(dir, "first")
		require.NoError(t, err)

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		require.Len(t, migrations, 1)
		assert.Contains(t, migrations[0], "_first")
	})
}
