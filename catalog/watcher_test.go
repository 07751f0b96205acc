package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	other := filepath.Join(dir, "unrelated.txt")
	require.NoError(t, os.WriteFile(path, []byte("components: []\n"), 0o644))

	var calls atomic.Int32
	w, err := NewWatcher([]string{path}, func(ctx context.Context, changed string) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	w.SetDebounce(100 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("components: []\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(other, []byte("noise"), 0o644))

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "burst should collapse into one callback")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestNewWatcher_Errors(t *testing.T) {
	_, err := NewWatcher(nil, nil)
	assert.Error(t, err)

	_, err = NewWatcher([]string{filepath.Join(t.TempDir(), "missing", "catalog.yaml")}, nil)
	assert.Error(t, err)
}
