package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/scaffold/errors"
)

func componentFiles(dir string) []File {
	return []File{
		{Component: "Video", Kind: KindTypes, Path: filepath.Join(dir, "Video", "Video.types.ts"), Content: "types v2\n"},
		{Component: "Video", Kind: KindComponent, Path: filepath.Join(dir, "Video", "Video.tsx"), Content: "component v2\n"},
		{Component: "Video", Kind: KindIndex, Path: filepath.Join(dir, "Video", "index.ts"), Content: "index\n"},
	}
}

// seed creates Video/ with one identical, one edited and one missing file
func seed(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Video"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Video", "Video.types.ts"), []byte("types v2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Video", "Video.tsx"), []byte("hand edited\n"), 0o644))
	return dir
}

func statuses(results []FileResult) []Status {
	out := make([]Status, len(results))
	for i, r := range results {
		out[i] = r.Status
	}
	return out
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []string{"overwrite", "skip", "prompt"} {
		got, err := ParsePolicy(p)
		require.NoError(t, err)
		assert.Equal(t, Policy(p), got)
	}
	_, err := ParsePolicy("merge")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
}

func TestWriter_Policies(t *testing.T) {
	tests := []struct {
		name       string
		policy     Policy
		confirm    ConfirmFunc
		want       []Status
		wantEdited string
	}{
		{
			name:       "overwrite replaces edited file",
			policy:     PolicyOverwrite,
			want:       []Status{StatusUnchanged, StatusOverwritten, StatusCreated},
			wantEdited: "component v2\n",
		},
		{
			name:       "skip keeps edited file",
			policy:     PolicySkip,
			want:       []Status{StatusUnchanged, StatusSkipped, StatusCreated},
			wantEdited: "hand edited\n",
		},
		{
			name:       "prompt accepted",
			policy:     PolicyPrompt,
			confirm:    func(string) (bool, error) { return true, nil },
			want:       []Status{StatusUnchanged, StatusOverwritten, StatusCreated},
			wantEdited: "component v2\n",
		},
		{
			name:       "prompt declined",
			policy:     PolicyPrompt,
			confirm:    func(string) (bool, error) { return false, nil },
			want:       []Status{StatusUnchanged, StatusSkipped, StatusCreated},
			wantEdited: "hand edited\n",
		},
		{
			name:       "prompt without confirmer declines",
			policy:     PolicyPrompt,
			want:       []Status{StatusUnchanged, StatusSkipped, StatusCreated},
			wantEdited: "hand edited\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := seed(t)
			w := NewWriter(tt.policy, false, false)
			w.Confirm = tt.confirm

			results, err := w.WriteComponent(context.Background(), componentFiles(dir))
			require.NoError(t, err)
			assert.Equal(t, tt.want, statuses(results))
			assert.False(t, results[0].Modified)
			assert.True(t, results[1].Modified)
			assert.Equal(t, tt.wantEdited, readFile(t, filepath.Join(dir, "Video", "Video.tsx")))
			assert.Equal(t, "index\n", readFile(t, filepath.Join(dir, "Video", "index.ts")))
		})
	}
}

func TestWriter_PromptAsksOncePerComponent(t *testing.T) {
	dir := seed(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Video", "Video.types.ts"), []byte("edited too\n"), 0o644))

	var prompts []string
	w := NewWriter(PolicyPrompt, false, false)
	w.Confirm = func(p string) (bool, error) {
		prompts = append(prompts, p)
		return true, nil
	}

	_, err := w.WriteComponent(context.Background(), componentFiles(dir))
	require.NoError(t, err)
	require.Len(t, prompts, 1)
	assert.Equal(t, "Video: overwrite 2 modified files?", prompts[0])
}

func TestWriter_PromptNotAskedWithoutEdits(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(PolicyPrompt, true, false)
	w.Confirm = func(string) (bool, error) {
		t.Fatal("confirm must not be called")
		return false, nil
	}
	results, err := w.WriteComponent(context.Background(), componentFiles(dir))
	require.NoError(t, err)
	assert.Equal(t, []Status{StatusCreated, StatusCreated, StatusCreated}, statuses(results))
}

func TestWriter_ConfirmError(t *testing.T) {
	dir := seed(t)
	w := NewWriter(PolicyPrompt, false, false)
	w.Confirm = func(string) (bool, error) { return false, errors.New("no tty") }

	_, err := w.WriteComponent(context.Background(), componentFiles(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tty")
}

func TestWriter_DryRunTouchesNothing(t *testing.T) {
	dir := seed(t)
	w := NewWriter(PolicyOverwrite, true, true)

	results, err := w.WriteComponent(context.Background(), componentFiles(dir))
	require.NoError(t, err)
	assert.Equal(t, []Status{StatusUnchanged, StatusOverwritten, StatusCreated}, statuses(results))
	assert.Equal(t, "hand edited\n", readFile(t, filepath.Join(dir, "Video", "Video.tsx")))
	assert.NoFileExists(t, filepath.Join(dir, "Video", "index.ts"))
}

func TestWriter_MissingDirectoryIsFatal(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(PolicyOverwrite, false, false)

	results, err := w.WriteComponent(context.Background(), componentFiles(dir))
	require.Error(t, err)
	assert.True(t, errors.IsTargetDirectoryMissing(err))
	assert.Equal(t, errors.ClassTargetDirectoryMissing, errors.ClassOf(err))
	assert.Contains(t, errors.FlattenHints(err), "--mkdir")
	assert.Empty(t, results)
	assert.NoDirExists(t, filepath.Join(dir, "Video"))
}

func TestWriter_CreateDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "base")
	w := NewWriter(PolicyOverwrite, true, false)

	results, err := w.WriteComponent(context.Background(), componentFiles(dir))
	require.NoError(t, err)
	assert.Len(t, results, 3)
	assert.Equal(t, "types v2\n", readFile(t, filepath.Join(dir, "Video", "Video.types.ts")))
}

func TestWriter_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Video"), 0o555))
	t.Cleanup(func() { os.Chmod(filepath.Join(dir, "Video"), 0o755) })

	w := NewWriter(PolicyOverwrite, false, false)
	_, err := w.WriteComponent(context.Background(), componentFiles(dir))
	require.Error(t, err)
	assert.True(t, errors.IsWritePermissionDenied(err))
}

func TestWriter_UnreadableExistingFile(t *testing.T) {
	dir := t.TempDir()
	// a directory where Video.tsx should be cannot be read as a file
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Video", "Video.tsx"), 0o755))

	w := NewWriter(PolicyOverwrite, false, false)
	_, err := w.WriteComponent(context.Background(), componentFiles(dir))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read "+filepath.Join(dir, "Video", "Video.tsx"))
	assert.NotContains(t, err.Error(), "cannot write")
	assert.Equal(t, errors.ClassOtherIO, errors.ClassOf(err))
}

func TestWriter_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWriter(PolicyOverwrite, true, false)
	_, err := w.WriteComponent(ctx, componentFiles(t.TempDir()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWriter_Idempotent(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(PolicyOverwrite, true, false)

	_, err := w.WriteComponent(context.Background(), componentFiles(dir))
	require.NoError(t, err)
	results, err := w.WriteComponent(context.Background(), componentFiles(dir))
	require.NoError(t, err)
	assert.Equal(t, []Status{StatusUnchanged, StatusUnchanged, StatusUnchanged}, statuses(results))
}
