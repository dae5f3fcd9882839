package tokenstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okul/schoolhub/internal/pkg/auth"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tokens.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	return store
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newFileStore(t)

	pair := auth.TokenPair{Access: "A1", Refresh: "R1"}
	require.NoError(t, store.Save(pair))

	got, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, pair, got)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(auth.TokenPair{Access: "A1", Refresh: "R1"}))
	require.NoError(t, store.SaveUser(json.RawMessage(`{"id":"u-1"}`)))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	pair, err := reopened.Read()
	require.NoError(t, err)
	assert.Equal(t, "A1", pair.Access)

	user, err := reopened.User()
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u-1"}`, string(user))
}

func TestFileStoreSaveAccessKeepsRefresh(t *testing.T) {
	store := newFileStore(t)
	require.NoError(t, store.Save(auth.TokenPair{Access: "A1", Refresh: "R1"}))
	require.NoError(t, store.SaveAccess("A2"))

	pair, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, auth.TokenPair{Access: "A2", Refresh: "R1"}, pair)
}

func TestFileStoreClear(t *testing.T) {
	store := newFileStore(t)
	require.NoError(t, store.Save(auth.TokenPair{Access: "A1", Refresh: "R1"}))
	require.NoError(t, store.SaveUser(json.RawMessage(`{"id":"u-1"}`)))

	require.NoError(t, store.Clear())

	pair, err := store.Read()
	require.NoError(t, err)
	assert.True(t, pair.Empty())

	user, err := store.User()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestFileStoreReadMissingFile(t *testing.T) {
	store := newFileStore(t)

	pair, err := store.Read()
	require.NoError(t, err)
	assert.True(t, pair.Empty())
}

func TestFileStorePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "tokens.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(auth.TokenPair{Access: "A1", Refresh: "R1"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestMemStoreRoundTrip(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.Save(auth.TokenPair{Access: "A1", Refresh: "R1"}))
	require.NoError(t, store.SaveAccess("A2"))

	pair, err := store.Read()
	require.NoError(t, err)
	assert.Equal(t, auth.TokenPair{Access: "A2", Refresh: "R1"}, pair)

	require.NoError(t, store.Clear())
	pair, err = store.Read()
	require.NoError(t, err)
	assert.True(t, pair.Empty())
}
