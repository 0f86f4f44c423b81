// Package recent persists the user's most recent zip-code searches so the
// CLI and API can offer them back. It is presentation-layer state; the
// scoring engine never reads it.
package recent

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
)

// DefaultLimit is how many searches are kept when no limit is configured.
const DefaultLimit = 5

// Entry is one remembered search.
type Entry struct {
	Zip        string    `json:"zip"`
	SearchedAt time.Time `json:"searchedAt"`
}

// Store is a file-backed most-recent-first list of searched zips, capped and
// deduplicated by zip. Persistence is best effort: a missing or corrupt file
// loads as an empty list, and the list lives in memory between saves.
type Store struct {
	mu      sync.Mutex
	path    string
	limit   int
	clock   clockwork.Clock
	entries []Entry
}

// New opens (or lazily creates) the store at path, keeping at most limit
// entries. A limit of zero or less falls back to DefaultLimit. The file not
// existing yet, or holding unreadable JSON, is not an error.
func New(path string, limit int) (*Store, error) {
	return newStore(path, limit, clockwork.NewRealClock())
}

// NewWithClock is New with an injected time source for deterministic tests.
func NewWithClock(path string, limit int, clock clockwork.Clock) (*Store, error) {
	return newStore(path, limit, clock)
}

func newStore(path string, limit int, clock clockwork.Clock) (*Store, error) {
	if path == "" {
		return nil, errors.New("recent: empty path")
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	s := &Store{path: path, limit: limit, clock: clock}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Record remembers a search for zip, moving it to the front if already
// present, and persists the updated list.
func (s *Store) Record(zip string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0:0]
	for _, e := range s.entries {
		if e.Zip != zip {
			kept = append(kept, e)
		}
	}
	s.entries = append([]Entry{{Zip: zip, SearchedAt: s.clock.Now().UTC()}}, kept...)
	if len(s.entries) > s.limit {
		s.entries = s.entries[:s.limit]
	}

	return s.save()
}

// List returns the remembered searches, most recent first. The returned
// slice is a copy.
func (s *Store) List() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Clear forgets all remembered searches and removes the file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("recent: clear: %w", err)
	}
	return nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("recent: read %s: %w", s.path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Corrupt file: start fresh rather than refusing to run.
		return nil
	}
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}
	s.entries = entries
	return nil
}

func (s *Store) save() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("recent: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("recent: mkdir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("recent: write %s: %w", s.path, err)
	}
	return nil
}
