package store

import "github.com/google/uuid"

// Todo is a single task record.
//
// Todo is both the storage representation and the JSON wire format served
// by the HTTP API. ID is generated server-side and never changes once the
// record has been created.
type Todo struct {
	// ID is the record's identifier, encoded as a canonical UUID string.
	ID uuid.UUID `json:"id"`

	// Text is the free-form task description.
	Text string `json:"text"`

	// Completed reports whether the task is done. False on creation.
	Completed bool `json:"completed"`
}

// Store defines the storage operations available to request handlers.
//
// Store implementations must be safe for concurrent access. Each operation
// is individually atomic; no operation spans more than one record, and a
// sequence of calls (such as Get followed by Insert) is not atomic as a
// whole.
type Store interface {
	// GetAll returns a snapshot of every record currently present.
	// The returned slice is a copy; modifications do not affect the store.
	GetAll() []Todo

	// Get returns a snapshot of the record with the given id, and whether
	// it was found.
	Get(id uuid.UUID) (Todo, bool)

	// Insert stores todo under todo.ID, replacing any existing record
	// with the same id.
	Insert(todo Todo)

	// Remove deletes the record with the given id. It reports whether a
	// record was actually removed.
	Remove(id uuid.UUID) bool

	// Len returns the number of records currently present.
	Len() int
}
