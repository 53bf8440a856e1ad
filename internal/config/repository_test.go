package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRepository(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Dir = filepath.Join(t.TempDir(), "nested", "storage")

	repo, err := CreateRepository(cfg)

	require.NoError(t, err, "a missing storage directory is created")
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, cfg.Storage.SlotKey, "[]"))

	value, found, err := repo.Get(ctx, cfg.Storage.SlotKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", value)
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()

	require.NoError(t, err)
	defer repo.Close()

	_, found, err := repo.Get(context.Background(), "anything")
	require.NoError(t, err)
	assert.False(t, found)
}
