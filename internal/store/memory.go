package store

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// entry pairs a record with the sequence number of its first insertion.
type entry struct {
	todo Todo
	seq  uint64
}

// MemoryStore is an in-memory implementation of [Store].
//
// MemoryStore guards a single map with one [sync.RWMutex]: GetAll, Get and
// Len take the read lock and may run concurrently with each other; Insert
// and Remove take the write lock and run exclusively. The lock is only held
// for the map operation itself.
//
// GetAll returns records in insertion order. Replacing a record through
// Insert keeps its original position, so paging through GetAll is stable
// between calls as long as the set of ids does not change.
type MemoryStore struct {
	mu      sync.RWMutex
	todos   map[uuid.UUID]entry
	nextSeq uint64
}

// NewMemoryStore creates a new, empty in-memory [Store].
//
// The store is immediately ready for use. No cleanup is required when done.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		todos: make(map[uuid.UUID]entry),
	}
}

// GetAll returns a snapshot of all records in insertion order.
//
// The returned slice is a copy and is never nil.
func (m *MemoryStore) GetAll() []Todo {
	m.mu.RLock()
	entries := make([]entry, 0, len(m.todos))
	for _, e := range m.todos {
		entries = append(entries, e)
	}
	m.mu.RUnlock()

	// sorting happens on the copy, outside the lock
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq < entries[j].seq
	})

	todos := make([]Todo, len(entries))
	for i, e := range entries {
		todos[i] = e.todo
	}
	return todos
}

// Get returns a snapshot of the record with the given id.
func (m *MemoryStore) Get(id uuid.UUID) (Todo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.todos[id]
	return e.todo, ok
}

// Insert stores todo, fully replacing any existing record with the same id.
func (m *MemoryStore) Insert(todo Todo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.todos[todo.ID]; ok {
		m.todos[todo.ID] = entry{todo: todo, seq: e.seq}
		return
	}
	m.todos[todo.ID] = entry{todo: todo, seq: m.nextSeq}
	m.nextSeq++
}

// Remove deletes the record with the given id and reports whether one existed.
func (m *MemoryStore) Remove(id uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.todos[id]; !ok {
		return false
	}
	delete(m.todos, id)
	return true
}

// Len returns the number of records currently stored.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.todos)
}
