package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/condalock/internal/adapters/fs"
	"go.trai.ch/condalock/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestHasher_KnownDigests(t *testing.T) {
	h := fs.NewHasher()

	empty, err := h.HashReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", empty)

	abc, err := h.HashReader(strings.NewReader("abc"))
	require.NoError(t, err)
	assert.Equal(t, "a9993e364706816aba3e25717850c26c9cd0d89d", abc)
}

func TestHasher_ByteSensitive(t *testing.T) {
	h := fs.NewHasher()
	got, err := h.HashReader(strings.NewReader("abc"))
	require.NoError(t, err)

	changed, err := h.HashReader(strings.NewReader("abc\n"))
	require.NoError(t, err)
	assert.NotEqual(t, got, changed, "a single byte change must alter the hash")
}

func TestHasher_ReadError(t *testing.T) {
	_, err := fs.NewHasher().HashReader(iotest.ErrReader(errors.New("disk gone")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestStore_WriteThenReadHash(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deps.Linux.lock.yml")
	store := fs.NewStore()

	body := []byte("name: test\ndependencies:\n- python=3.9.1=h1\n")
	require.NoError(t, store.Write(path, "abc123", body))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# ENVHASH: abc123\n"+string(body), string(data))

	got, err := store.ReadHash(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestStore_WriteReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deps.Linux.lock.yml")
	writeFile(t, path, "# ENVHASH: old\nname: stale\n")

	store := fs.NewStore()
	require.NoError(t, store.Write(path, "new", []byte("name: fresh\n")))

	got, err := store.ReadHash(path)
	require.NoError(t, err)
	assert.Equal(t, "new", got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files may remain")
}

func TestStore_WriteMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "deps.Linux.lock.yml")
	err := fs.NewStore().Write(path, "h", []byte("name: x\n"))
	require.ErrorIs(t, err, domain.ErrLockfileWriteFailed)
}

func TestStore_ReadHash_Errors(t *testing.T) {
	dir := t.TempDir()
	store := fs.NewStore()

	_, err := store.ReadHash(filepath.Join(dir, "absent.lock.yml"))
	require.ErrorIs(t, err, domain.ErrLockfileReadFailed)

	path := filepath.Join(dir, "plain.lock.yml")
	writeFile(t, path, "name: test\ndependencies: []\n")
	_, err = store.ReadHash(path)
	require.ErrorIs(t, err, domain.ErrNoSigil)
}

func TestResolver_Discover(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"deps.Linux.lock.yml", "deps.Darwin.lock.yml", "deps.yml", "other.lock.yml"} {
		writeFile(t, filepath.Join(dir, name), "")
	}

	got, err := fs.NewResolver().Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "deps.Darwin.lock.yml"),
		filepath.Join(dir, "deps.Linux.lock.yml"),
	}, got)
}

func TestResolver_Discover_Empty(t *testing.T) {
	got, err := fs.NewResolver().Discover(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}
