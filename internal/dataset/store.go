package dataset

import (
	"sync"
	"sync/atomic"

	"github.com/KaramelBytes/statloom-cli/internal/logging"
	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/cockroachdb/errors"
)

// ErrNotLoaded is returned by Store.Current before the first successful load.
var ErrNotLoaded = errors.New("dataset not loaded")

// Store owns the current collection of one source. Readers always see a
// complete collection; Reload swaps in a new one or leaves the old one.
type Store struct {
	path string
	opts Options

	mu  sync.Mutex // serializes reloads
	cur atomic.Pointer[match.Collection]
}

func NewStore(path string, opts Options) *Store {
	return &Store{path: path, opts: opts}
}

// Reload reads the source again and installs the result. On failure the
// previous collection stays current.
func (s *Store) Reload() (*match.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	col, err := Load(s.path, s.opts)
	if err != nil {
		return nil, err
	}
	if prev := s.cur.Swap(col); prev != nil {
		logging.Default().Debug("dataset replaced", "previous", prev.ID(), "current", col.ID())
	}
	return col, nil
}

// Current returns the installed collection.
func (s *Store) Current() (*match.Collection, error) {
	if col := s.cur.Load(); col != nil {
		return col, nil
	}
	return nil, ErrNotLoaded
}

// Get returns the installed collection, loading it on first use.
func (s *Store) Get() (*match.Collection, error) {
	if col, err := s.Current(); err == nil {
		return col, nil
	}
	return s.Reload()
}
