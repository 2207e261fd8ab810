package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFilesSortedUpOnly(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"000002_add_indexes.up.sql",
		"000001_create_core_tables.up.sql",
		"000001_create_core_tables.down.sql",
		"000002_add_indexes.down.sql",
		"README.md",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- sql"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0o755))

	files, err := migrationFiles(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"000001_create_core_tables.up.sql",
		"000002_add_indexes.up.sql",
	}, files)
}

func TestMigrationFilesMissingDir(t *testing.T) {
	files, err := migrationFiles(filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
	assert.Nil(t, files)
}
