package romimage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRejectsWrongSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.rom")
	require.NoError(t, os.WriteFile(path, make([]byte, 100), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrBadROMSize)
}

func TestLoadAcceptsCorrectSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "good.rom")
	want := make([]byte, Size)
	for i := range want {
		want[i] = byte(i)
	}
	require.NoError(t, os.WriteFile(path, want, 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.rom"))
	assert.Error(t, err)
}
