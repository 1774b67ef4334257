package uploads

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	name, err := store.Save(bytes.NewReader([]byte("photo-bytes")), "milo.JPG")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(name, ".jpg"), "extension should be lowercased: %s", name)
	require.NotEqual(t, "milo.jpg", name, "name should be regenerated")

	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	require.Equal(t, "photo-bytes", string(content))

	// Dos uploads con el mismo nombre original no colisionan
	other, err := store.Save(bytes.NewReader([]byte("other")), "milo.JPG")
	require.NoError(t, err)
	require.NotEqual(t, name, other)

	require.NoError(t, store.Remove(name))
	_, err = os.Stat(filepath.Join(dir, name))
	require.True(t, os.IsNotExist(err))

	// Remove es best-effort: vacío y ya-borrado no fallan
	require.NoError(t, store.Remove(""))
	require.NoError(t, store.Remove(name))
}

func TestRemove_IgnoresPathTraversal(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	outside := filepath.Join(t.TempDir(), "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	// El nombre con ../ se reduce a su base: el archivo externo sobrevive
	require.NoError(t, store.Remove("../"+filepath.Base(outside)))
	_, err = os.Stat(outside)
	require.NoError(t, err)
}

func TestNew_RequiresDirectory(t *testing.T) {
	_, err := New("  ")
	require.Error(t, err)
}
