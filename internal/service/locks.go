package service

import (
	"sync"

	"alugacar-backend/internal/domain"
)

// CategoryLocks serializes occupancy-sensitive work per category so that a
// quote and the write that commits it observe the same fleet state. Lock
// returns the matching unlock function.
type CategoryLocks struct {
	mu    sync.Mutex
	locks map[domain.CategoryCode]*sync.Mutex
}

func NewCategoryLocks() *CategoryLocks {
	return &CategoryLocks{locks: make(map[domain.CategoryCode]*sync.Mutex)}
}

func (l *CategoryLocks) Lock(code domain.CategoryCode) func() {
	l.mu.Lock()
	m, ok := l.locks[code]
	if !ok {
		m = &sync.Mutex{}
		l.locks[code] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
