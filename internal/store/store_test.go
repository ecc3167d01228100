package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/steppe/mountain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStorage runs the behaviour shared by every Storage.
func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	names, err := s.ListWorlds()
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = s.LoadWorld("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(s.DeleteWorld("missing"), ErrNotFound))

	rec := &Record{Name: "tengri", Seed: "01", Maps: 1, Data: []byte{1, 2, 3}}
	require.NoError(t, s.SaveWorld(rec))
	require.NoError(t, s.SaveWorld(&Record{Name: "altai", Seed: "02", Maps: 3, Data: []byte{4}}))
	got, err := s.LoadWorld("tengri")
	require.NoError(t, err)
	assert.Equal(t, rec.Data, got.Data)
	assert.Equal(t, rec.Maps, got.Maps)
	assert.False(t, got.UpdatedAt.IsZero())

	rec.Maps = 2
	rec.Data = []byte{9}
	require.NoError(t, s.SaveWorld(rec))
	got, err = s.LoadWorld("tengri")
	require.NoError(t, err)
	assert.Equal(t, []byte{9}, got.Data)
	assert.Equal(t, 2, got.Maps)

	names, err = s.ListWorlds()
	require.NoError(t, err)
	assert.Equal(t, []string{"altai", "tengri"}, names)

	require.NoError(t, s.DeleteWorld("altai"))
	names, err = s.ListWorlds()
	require.NoError(t, err)
	assert.Equal(t, []string{"tengri"}, names)
}

func TestJSONStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worlds.json")
	s, err := NewJSONStore(path)
	require.NoError(t, err)
	_, err = os.Stat(path)
	require.NoError(t, err)
	exerciseStorage(t, s)
	require.NoError(t, s.Close())

	// Saves survive reopening.
	s, err = NewJSONStore(path)
	require.NoError(t, err)
	got, err := s.LoadWorld("tengri")
	require.NoError(t, err)
	assert.Equal(t, []byte{9}, got.Data)
}

func TestJSONStoreWriteFailure(t *testing.T) {
	dir := t.TempDir()
	s, err := NewJSONStore(filepath.Join(dir, "worlds.json"))
	require.NoError(t, err)
	require.NoError(t, s.SaveWorld(&Record{Name: "tengri", Seed: "01", Maps: 1, Data: []byte{1}}))

	s.filePath = filepath.Join(dir, "gone", "worlds.json")
	assert.Error(t, s.SaveWorld(&Record{Name: "tengri", Seed: "01", Maps: 4, Data: []byte{2}}))
	got, err := s.LoadWorld("tengri")
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, got.Data)
	assert.Equal(t, 1, got.Maps)

	assert.Error(t, s.SaveWorld(&Record{Name: "altai", Seed: "02"}))
	_, err = s.LoadWorld("altai")
	assert.True(t, errors.Is(err, ErrNotFound))

	assert.Error(t, s.DeleteWorld("tengri"))
	names, err := s.ListWorlds()
	require.NoError(t, err)
	assert.Equal(t, []string{"tengri"}, names)
}

func TestJSONStoreCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worlds.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	_, err := NewJSONStore(path)
	assert.Error(t, err)
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("MOUNTAIN_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("MOUNTAIN_TEST_DATABASE_URL not set")
	}
	s, err := NewPostgresStore(dsn)
	require.NoError(t, err)
	defer s.Close()
	_, err = s.db.Exec(`DELETE FROM worlds`)
	require.NoError(t, err)
	exerciseStorage(t, s)
}

func TestOpen(t *testing.T) {
	t.Setenv("DB_TYPE", "json")
	t.Setenv("DB_FILE", filepath.Join(t.TempDir(), "db.json"))
	s, err := Open()
	require.NoError(t, err)
	assert.IsType(t, &JSONStore{}, s)

	t.Setenv("DB_TYPE", "sqlite")
	_, err = Open()
	assert.Error(t, err)
}

func TestPutGet(t *testing.T) {
	s, err := NewJSONStore(filepath.Join(t.TempDir(), "worlds.json"))
	require.NoError(t, err)
	w, err := mountain.NewWorld(mountain.DefaultConfig(), mountain.NewSeed(11))
	require.NoError(t, err)
	require.NoError(t, Put(s, "eleven", w))

	rec, err := s.LoadWorld("eleven")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Maps)
	assert.Len(t, rec.Seed, 32)

	lw, err := Get(s, "eleven")
	require.NoError(t, err)
	assert.Equal(t, w.Seed, lw.Seed)
	assert.Equal(t, w.Root().String(), lw.Root().String())

	_, err = Get(s, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}
