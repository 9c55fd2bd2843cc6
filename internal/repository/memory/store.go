// Package memory implements the repositories over mutex-guarded slices.
package memory

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// store keeps items in insertion order. Items are copied on the way in and
// out; types with pointer fields set clone so callers never share them.
type store[T any] struct {
	mu       sync.RWMutex
	items    []T
	idOf     func(T) string
	notFound error
	clone    func(T) T
}

func newStore[T any](seed []T, idOf func(T) string, notFound error) *store[T] {
	return &store[T]{
		items:    slices.Clone(seed),
		idOf:     idOf,
		notFound: notFound,
	}
}

// withClone sets the deep copy used for every item crossing the store.
func (s *store[T]) withClone(clone func(T) T) *store[T] {
	s.clone = clone
	for i, item := range s.items {
		s.items[i] = clone(item)
	}
	return s
}

func (s *store[T]) copy(item T) T {
	if s.clone == nil {
		return item
	}
	return s.clone(item)
}

func (s *store[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[i] = s.copy(item)
	}
	return out
}

func (s *store[T]) get(id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.copy(s.items[i]), nil
	}
	var zero T
	return zero, s.notFound
}

// insert appends item unless conflict reports a clash with a stored item.
func (s *store[T]) insert(item T, conflict func(existing, item T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(item, "", conflict); err != nil {
		var zero T
		return zero, err
	}
	s.items = append(s.items, s.copy(item))
	return s.copy(item), nil
}

// update applies mutate to a copy of the stored item and keeps it only if
// it does not conflict with any other item.
func (s *store[T]) update(id string, mutate func(*T), conflict func(existing, item T) error) (T, error) {
	return s.updateIf(id, nil, mutate, conflict)
}

// updateIf is update with a guard checked against the stored item under the
// same lock. A guard error aborts the update and is returned as is.
func (s *store[T]) updateIf(id string, guard func(T) error, mutate func(*T), conflict func(existing, item T) error) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	i := s.indexOf(id)
	if i < 0 {
		return zero, s.notFound
	}
	if guard != nil {
		if err := guard(s.items[i]); err != nil {
			return zero, err
		}
	}
	item := s.copy(s.items[i])
	mutate(&item)
	if err := s.check(item, id, conflict); err != nil {
		return zero, err
	}
	s.items[i] = s.copy(item)
	return item, nil
}

// upsert replaces the first item matching same, after merge has carried over
// whatever of the existing item should survive, or appends item.
func (s *store[T]) upsert(item T, same func(existing T) bool, merge func(existing T, item *T)) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	item = s.copy(item)
	if i := slices.IndexFunc(s.items, same); i >= 0 {
		if merge != nil {
			merge(s.items[i], &item)
		}
		s.items[i] = s.copy(item)
	} else {
		s.items = append(s.items, s.copy(item))
	}
	return item
}

func (s *store[T]) remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return s.notFound
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

func (s *store[T]) check(item T, skipID string, conflict func(existing, item T) error) error {
	if conflict == nil {
		return nil
	}
	for _, existing := range s.items {
		if skipID != "" && s.idOf(existing) == skipID {
			continue
		}
		if err := conflict(existing, item); err != nil {
			return err
		}
	}
	return nil
}

func (s *store[T]) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(item T) bool { return s.idOf(item) == id })
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

var now = func() time.Time { return time.Now().UTC() }

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
