package memory

import (
	"fmt"
	"sync"

	"github.com/dtroode/playground-api/internal/model"
	"github.com/dtroode/playground-api/internal/query"
)

// table is an ordered collection of records guarded by a single lock.
// Writers hold the lock across the whole locate-then-mutate step.
type table[T any] struct {
	mu     sync.RWMutex
	items  []T
	lastID int
	idOf   func(T) int
	clone  func(T) T
}

func newTable[T any](idOf func(T) int, clone func(T) T) *table[T] {
	return &table[T]{
		items: make([]T, 0),
		idOf:  idOf,
		clone: clone,
	}
}

// indexOf must be called with the lock held.
func (t *table[T]) indexOf(id int) int {
	for i, item := range t.items {
		if t.idOf(item) == id {
			return i
		}
	}
	return -1
}

func (t *table[T]) insert(build func(id int) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lastID++
	item := build(t.lastID)
	t.items = append(t.items, item)

	return t.clone(item)
}

func (t *table[T]) get(id int) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := t.indexOf(id)
	if idx == -1 {
		var zero T
		return zero, model.ErrNotFound
	}

	return t.clone(t.items[idx]), nil
}

func (t *table[T]) list(preds ...query.Predicate[T]) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	matched := query.Apply(t.items, preds...)
	for i := range matched {
		matched[i] = t.clone(matched[i])
	}

	return matched
}

func (t *table[T]) update(id int, merge func(T) T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(id)
	if idx == -1 {
		var zero T
		return zero, model.ErrNotFound
	}

	merged := merge(t.items[idx])
	t.items[idx] = merged

	return t.clone(merged), nil
}

func (t *table[T]) remove(id int) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.indexOf(id)
	if idx == -1 {
		var zero T
		return zero, model.ErrNotFound
	}

	removed := t.items[idx]
	t.items = append(t.items[:idx], t.items[idx+1:]...)

	return removed, nil
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.items)
}

// seed replaces the collection. The id counter never moves backwards.
func (t *table[T]) seed(items []T) error {
	seen := make(map[int]struct{}, len(items))
	maxID := 0
	for i, item := range items {
		id := t.idOf(item)
		if id <= 0 {
			return fmt.Errorf("seed record at index %d has non-positive id %d", i, id)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("duplicate id %d in seed data at index %d", id, i)
		}
		seen[id] = struct{}{}
		maxID = max(maxID, id)
	}

	copied := make([]T, 0, len(items))
	for _, item := range items {
		copied = append(copied, t.clone(item))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = copied
	t.lastID = max(t.lastID, maxID)

	return nil
}
