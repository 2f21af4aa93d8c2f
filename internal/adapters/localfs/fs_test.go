package localfs_test

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/mirror/internal/adapters/localfs"
	"go.trai.ch/mirror/internal/core/ports"
)

func newFS(t *testing.T) (*localfs.FS, string) {
	t.Helper()
	root := t.TempDir()
	fs, err := localfs.NewFS(root)
	require.NoError(t, err)
	return fs, root
}

func TestNewFS_RejectsMissingRoot(t *testing.T) {
	_, err := localfs.NewFS(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestNewFS_RejectsFileRoot(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	_, err := localfs.NewFS(file)
	require.Error(t, err)
}

func TestFS_WriteAndReadTextFile(t *testing.T) {
	fs, _ := newFS(t)
	ctx := context.Background()

	require.NoError(t, fs.WriteTextFile(ctx, "app/page.tsx", "<Page/>"))

	got, err := fs.ReadTextFile(ctx, "app/page.tsx")
	require.NoError(t, err)
	assert.Equal(t, "<Page/>", got)
}

func TestFS_WriteAndReadBinary(t *testing.T) {
	fs, _ := newFS(t)
	ctx := context.Background()

	require.NoError(t, fs.WriteFile(ctx, "logo.png", []byte{0x89, 0x50}))

	got, err := fs.ReadFile(ctx, "logo.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, got)
}

func TestFS_ReadMissingFile(t *testing.T) {
	fs, _ := newFS(t)

	_, err := fs.ReadTextFile(context.Background(), "nope.txt")
	require.Error(t, err)
}

func TestFS_RejectsEscapingPaths(t *testing.T) {
	fs, _ := newFS(t)

	_, err := fs.ReadTextFile(context.Background(), "../outside.txt")
	require.Error(t, err)
}

func TestFS_ReadDir(t *testing.T) {
	fs, root := newFS(t)
	ctx := context.Background()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o750))
	require.NoError(t, fs.WriteTextFile(ctx, "README.md", "# hi"))

	entries, err := fs.ReadDir(ctx, "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byName := map[string]ports.EntryKind{}
	for _, e := range entries {
		byName[e.Name] = e.Kind
	}
	assert.Equal(t, ports.EntryDirectory, byName["src"])
	assert.Equal(t, ports.EntryFile, byName["README.md"])
}

func TestFS_Stat(t *testing.T) {
	fs, root := newFS(t)
	ctx := context.Background()

	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o750))
	require.NoError(t, fs.WriteTextFile(ctx, "a.txt", "a"))

	info, err := fs.Stat(ctx, "src")
	require.NoError(t, err)
	assert.Equal(t, ports.EntryDirectory, info.Kind)

	info, err = fs.Stat(ctx, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, ports.EntryFile, info.Kind)

	_, err = fs.Stat(ctx, "missing")
	require.Error(t, err)
}

func TestFS_CopyFile(t *testing.T) {
	fs, _ := newFS(t)
	ctx := context.Background()

	require.NoError(t, fs.WriteTextFile(ctx, "a.txt", "body"))
	require.NoError(t, fs.Copy(ctx, "a.txt", "b.txt", false, false))

	got, err := fs.ReadTextFile(ctx, "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "body", got)
}

func TestFS_CopyRefusesExistingDestination(t *testing.T) {
	fs, _ := newFS(t)
	ctx := context.Background()

	require.NoError(t, fs.WriteTextFile(ctx, "a.txt", "a"))
	require.NoError(t, fs.WriteTextFile(ctx, "b.txt", "b"))

	require.Error(t, fs.Copy(ctx, "a.txt", "b.txt", false, false))
	require.NoError(t, fs.Copy(ctx, "a.txt", "b.txt", false, true))

	got, err := fs.ReadTextFile(ctx, "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestFS_CopyTree(t *testing.T) {
	fs, _ := newFS(t)
	ctx := context.Background()

	require.NoError(t, fs.WriteTextFile(ctx, "src/a.txt", "a"))
	require.NoError(t, fs.WriteTextFile(ctx, "src/sub/b.txt", "b"))

	require.Error(t, fs.Copy(ctx, "src", "dst", false, false),
		"directories require the recursive flag")
	require.NoError(t, fs.Copy(ctx, "src", "dst", true, false))

	got, err := fs.ReadTextFile(ctx, "dst/sub/b.txt")
	require.NoError(t, err)
	assert.Equal(t, "b", got)
}

func TestFS_Remove(t *testing.T) {
	fs, _ := newFS(t)
	ctx := context.Background()

	require.NoError(t, fs.WriteTextFile(ctx, "src/a.txt", "a"))

	require.Error(t, fs.Remove(ctx, "src", false),
		"non-empty directories require the recursive flag")
	require.NoError(t, fs.Remove(ctx, "src", true))

	_, err := fs.Stat(ctx, "src")
	require.Error(t, err)
}

func TestFS_Rename(t *testing.T) {
	fs, _ := newFS(t)
	ctx := context.Background()

	require.NoError(t, fs.WriteTextFile(ctx, "old/a.txt", "a"))
	require.NoError(t, fs.Rename(ctx, "old", "moved/new"))

	got, err := fs.ReadTextFile(ctx, "moved/new/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestFS_DownloadBuildsArchive(t *testing.T) {
	fs, _ := newFS(t)
	ctx := context.Background()

	require.NoError(t, fs.WriteTextFile(ctx, "a.txt", "a"))
	require.NoError(t, fs.WriteTextFile(ctx, "src/b.txt", "b"))

	info, err := fs.Download(ctx, "")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(info.URL, "file://"))
	assert.True(t, strings.HasSuffix(info.FileName, ".zip"))

	archive := strings.TrimPrefix(info.URL, "file://")
	t.Cleanup(func() { os.Remove(archive) })

	zr, err := zip.OpenReader(archive)
	require.NoError(t, err)
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"a.txt", "src/b.txt"}, names)
}
