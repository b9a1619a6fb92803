package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, *c)
}

func TestLoad(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "kdtree.yaml")
	data := "seed: 7\nqueries: 10\nbulk_load: true\ndraw:\n  size: 256\n"
	require.NoError(t, os.WriteFile(filename, []byte(data), 0o644))

	c, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.Seed)
	assert.Equal(t, 10, c.Queries)
	assert.True(t, c.BulkLoad)
	assert.Equal(t, 256, c.Draw.Size)
	assert.Equal(t, DefaultConfig.Points, c.Points)
	assert.Equal(t, DefaultConfig.Draw.PointRadius, c.Draw.PointRadius)
}

func TestLoadInvalid(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "kdtree.yaml")
	require.NoError(t, os.WriteFile(filename, []byte("points: [1, 2"), 0o644))
	_, err := Load(filename)
	assert.Error(t, err)
}
