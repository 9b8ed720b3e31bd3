package fileops

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestMove(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "Interstellar.2014.mkv")
	dst := filepath.Join(dir, "Interstellar (2014) [Bluray-1080p].mkv")
	writeFile(t, src, "video")

	require.NoError(t, Move(src, dst))

	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err), "source should be gone")

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "video", string(got))
}

func TestMove_CreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mkv")
	dst := filepath.Join(dir, "nested", "deep", "b.mkv")
	writeFile(t, src, "video")

	require.NoError(t, Move(src, dst))
	assert.FileExists(t, dst)
}

func TestMove_DestinationExists(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mkv")
	dst := filepath.Join(dir, "b.mkv")
	writeFile(t, src, "new")
	writeFile(t, dst, "existing")

	err := Move(src, dst)
	assert.ErrorIs(t, err, ErrDestinationExists)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(got), "destination must be untouched")
	assert.FileExists(t, src)
}

func TestMove_SourceMissing(t *testing.T) {
	dir := t.TempDir()
	err := Move(filepath.Join(dir, "missing.mkv"), filepath.Join(dir, "b.mkv"))
	assert.ErrorIs(t, err, ErrSourceMissing)
}

func TestCopyFile(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	srcPath := filepath.Join(srcDir, "test.mkv")
	writeFile(t, srcPath, "test video content")

	dstPath := filepath.Join(dstDir, "nested", "copied.mkv")
	size, err := CopyFile(srcPath, dstPath)
	require.NoError(t, err)
	assert.Equal(t, int64(len("test video content")), size)

	got, err := os.ReadFile(dstPath)
	require.NoError(t, err)
	assert.Equal(t, "test video content", string(got))
	assert.FileExists(t, srcPath, "copy keeps the source")
}

func TestCopyFile_DestinationExists(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mkv")
	dst := filepath.Join(dir, "b.mkv")
	writeFile(t, src, "content")
	writeFile(t, dst, "existing")

	_, err := CopyFile(src, dst)
	assert.True(t, errors.Is(err, ErrDestinationExists))
}

func TestMover(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.mkv")
	dst := filepath.Join(dir, "b.mkv")
	writeFile(t, src, "video")

	m := NewMover(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, m.Move(src, dst))
	assert.FileExists(t, dst)

	assert.ErrorIs(t, m.Move(src, dst), ErrSourceMissing)
}
