package recent

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *clockwork.FakeClock) {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	s, err := NewWithClock(filepath.Join(t.TempDir(), "recent.json"), 5, clock)
	require.NoError(t, err)
	return s, clock
}

func TestRecordAndList(t *testing.T) {
	s, clock := newTestStore(t)

	require.NoError(t, s.Record("91604"))
	clock.Advance(time.Minute)
	require.NoError(t, s.Record("90001"))

	entries := s.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "90001", entries[0].Zip)
	assert.Equal(t, "91604", entries[1].Zip)
	assert.True(t, entries[0].SearchedAt.After(entries[1].SearchedAt))
}

func TestRecordDeduplicates(t *testing.T) {
	s, clock := newTestStore(t)

	require.NoError(t, s.Record("91604"))
	clock.Advance(time.Minute)
	require.NoError(t, s.Record("90001"))
	clock.Advance(time.Minute)
	require.NoError(t, s.Record("91604"))

	entries := s.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "91604", entries[0].Zip)
	assert.Equal(t, "90001", entries[1].Zip)
	assert.Equal(t, clock.Now().UTC(), entries[0].SearchedAt)
}

func TestRecordCapsAtLimit(t *testing.T) {
	s, clock := newTestStore(t)

	for _, zip := range []string{"90001", "90002", "90003", "90004", "90005", "90006"} {
		require.NoError(t, s.Record(zip))
		clock.Advance(time.Second)
	}

	entries := s.List()
	require.Len(t, entries, 5)
	assert.Equal(t, "90006", entries[0].Zip)
	assert.Equal(t, "90002", entries[4].Zip, "oldest entry evicted")
}

func TestPersistsAcrossReopen(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC))
	path := filepath.Join(t.TempDir(), "recent.json")

	s1, err := NewWithClock(path, 5, clock)
	require.NoError(t, err)
	require.NoError(t, s1.Record("94110"))

	s2, err := NewWithClock(path, 5, clock)
	require.NoError(t, err)
	entries := s2.List()
	require.Len(t, entries, 1)
	assert.Equal(t, "94110", entries[0].Zip)
	assert.Equal(t, clock.Now().UTC(), entries[0].SearchedAt)
}

func TestMissingFileLoadsEmpty(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "nope", "recent.json"), 5)
	require.NoError(t, err)
	assert.Empty(t, s.List())
}

func TestCorruptFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := New(path, 5)
	require.NoError(t, err)
	assert.Empty(t, s.List())
}

func TestClear(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Record("91604"))
	require.NoError(t, s.Clear())
	assert.Empty(t, s.List())

	// Clearing twice is fine even though the file is gone.
	require.NoError(t, s.Clear())
}

func TestEmptyPathRejected(t *testing.T) {
	_, err := New("", 5)
	assert.Error(t, err)
}
