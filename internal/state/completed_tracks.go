package state

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"

	"mxm-archiver/internal/atomicfile"
)

// Store remembers which tracks were archived by earlier runs. Tracks are identified by
// archive keys such as "c:5920049" (commontrack id) or "t:15445219" (track id).
type Store struct {
	path string

	mu  sync.Mutex
	set map[string]struct{}
}

// NewStore loads the completed set from path if the file exists.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: path,
		set:  make(map[string]struct{}),
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read state file %s: %w", path, err)
	}

	var keys []string
	if err := json.Unmarshal(b, &keys); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", path, err)
	}
	for _, key := range keys {
		s.set[key] = struct{}{}
	}
	return s, nil
}

func (s *Store) IsCompleted(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.set[key]
	return ok
}

// Len reports how many tracks are recorded.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.set)
}

// MarkCompleted records a track and persists the whole set.
func (s *Store) MarkCompleted(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.set[key]; ok {
		return nil
	}
	s.set[key] = struct{}{}

	keys := make([]string, 0, len(s.set))
	for k := range s.set {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	if err := atomicfile.WriteJSON(s.path, keys); err != nil {
		delete(s.set, key)
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}
