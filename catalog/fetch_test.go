package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_LocalPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("components:\n  - name: Video\n"), 0o644))

	src, err := Resolve(context.Background(), path)
	require.NoError(t, err)
	defer src.Cleanup()

	assert.False(t, src.Fetched)
	assert.Equal(t, path, src.LocalPath)
	assert.Equal(t, path, src.Input)
}

func TestResolve_RelativePathIsMadeAbsolute(t *testing.T) {
	src, err := Resolve(context.Background(), "organisms.yaml")
	require.NoError(t, err)
	defer src.Cleanup()

	assert.True(t, filepath.IsAbs(src.LocalPath))
	assert.Equal(t, "organisms.yaml", filepath.Base(src.LocalPath))
}

func TestOpen(t *testing.T) {
	cat, name, err := Open(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, BuiltinName, name)
	assert.Equal(t, 16, cat.Len())

	path := filepath.Join(t.TempDir(), "one.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"components":[{"name":"Video"}]}`), 0o644))
	cat, name, err = Open(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, name)
	assert.Equal(t, []string{"Video"}, cat.Names())
}

func TestRemoteBaseName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://example.com/catalogs/shop.toml", "shop.toml"},
		{"https://example.com/catalogs/shop.json?ref=main", "shop.json"},
		{"git::https://github.com/org/repo.git//catalogs/shop.yaml", "shop.yaml"},
		{"git::https://github.com/org/repo.git//catalogs/shop.toml", "shop.toml"},
		{"git::https://github.com/org/repo.git//catalogs/shop.json?ref=v1.2.0", "shop.json"},
		{"s3::https://s3.amazonaws.com/bucket/shop.cue", "shop.cue"},
		{"https://example.com/", "catalog.yaml"},
		{"https://example.com/raw/catalog", "catalog.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, remoteBaseName(tt.raw))
		})
	}
}

func TestRemoteBaseName_ForgeShorthand(t *testing.T) {
	pwd, err := os.Getwd()
	require.NoError(t, err)

	detected, remote, err := detect("github.com/org/repo//catalogs/shop.toml", pwd)
	require.NoError(t, err)
	assert.True(t, remote)
	assert.Equal(t, "shop.toml", remoteBaseName(detected))
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{filepath.Join(t.TempDir(), "shop.yaml"), false},
		{"organisms.yaml", false},
		{"https://example.com/catalogs/shop.toml", true},
		{"git::https://github.com/org/repo.git//shop.yaml", true},
		{"github.com/org/repo//catalogs/shop.toml", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			remote, err := IsRemote(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, remote)
		})
	}
}
