package util

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	fPath := filepath.Join(dir, "epg.xml")
	require.NoError(t, os.WriteFile(fPath, []byte("old"), 0600))

	op, err := WriteFileAtomic(fPath, func(w io.Writer) error {
		_, err := io.WriteString(w, "new")
		return err
	})
	require.NoError(t, err)
	assert.Empty(t, op)

	content, err := os.ReadFile(fPath)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))

	info, err := os.Stat(fPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteFileAtomicFailure(t *testing.T) {
	dir := t.TempDir()
	fPath := filepath.Join(dir, "epg.xml")
	boom := errors.New("boom")

	op, err := WriteFileAtomic(fPath, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "write", op)

	// 失败时不留下任何文件
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	op, err = WriteFileAtomic(filepath.Join(dir, "missing", "epg.xml"), func(w io.Writer) error { return nil })
	assert.Error(t, err)
	assert.Equal(t, "create", op)
}

func TestGetCurrentAbPathByExecutable(t *testing.T) {
	dir, err := GetCurrentAbPathByExecutable()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
}
