package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jpalmerr/todos/internal/store"
)

// createRequest is the body of POST /todos. Text is a pointer so that an
// absent field can be told apart from an empty string.
type createRequest struct {
	Text *string `json:"text"`
}

// updateRequest is the body of PATCH /todos/{id}. Nil fields are left
// unchanged.
type updateRequest struct {
	Text      *string `json:"text"`
	Completed *bool   `json:"completed"`
}

// apply returns todo with every supplied field overwritten.
func (u updateRequest) apply(todo store.Todo) store.Todo {
	if u.Text != nil {
		todo.Text = *u.Text
	}
	if u.Completed != nil {
		todo.Completed = *u.Completed
	}
	return todo
}

// handleList returns a page of the current records as JSON.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	page := parsePagination(r.URL.Query())

	todos := s.store.GetAll()
	start, end := page.window(len(todos))

	s.writeJSON(w, http.StatusOK, todos[start:end])
}

// handleCreate stores a new record with a generated id.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeRequestError(w, err)
		return
	}
	if req.Text == nil {
		writeRequestError(w, missingField("text"))
		return
	}

	todo := store.Todo{
		ID:        uuid.New(),
		Text:      *req.Text,
		Completed: false,
	}
	s.store.Insert(todo)

	s.writeJSON(w, http.StatusCreated, todo)
}

// handleUpdate applies a partial update to an existing record.
//
// The lookup and the write-back take the store lock separately, so two
// concurrent updates of the same id can interleave and one of them may be
// lost. A delete that lands between the two steps is undone by the
// write-back.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeRequestError(w, err)
		return
	}

	var req updateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	todo, ok := s.store.Get(id)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	todo = req.apply(todo)
	s.store.Insert(todo)

	s.writeJSON(w, http.StatusOK, todo)
}

// handleDelete removes a record.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeRequestError(w, err)
		return
	}

	if !s.store.Remove(id) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "status", status, "error", err)
	}
}
