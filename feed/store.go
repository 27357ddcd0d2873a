package feed

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("feed not found")

// Store is the global feed registry, filled by feedlib.
var Store = newStore()

type store struct {
	mu   sync.RWMutex
	hash map[string]*Feed
}

func newStore() *store {
	return &store{hash: map[string]*Feed{}}
}

func (s *store) Add(feeds ...*Feed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range feeds {
		s.hash[f.Name] = f
	}
}

func (s *store) Get(name string) (*Feed, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.hash[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	return f, nil
}

// List returns every feed ordered by name.
func (s *store) List() []*Feed {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*Feed, 0, len(s.hash))
	for _, f := range s.hash {
		list = append(list, f)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})

	return list
}

func (s *store) Names() []string {
	list := s.List()
	names := make([]string, len(list))
	for i, f := range list {
		names[i] = f.Name
	}

	return names
}
