// Package store provides the shared in-memory storage for Todo records.
//
// This package is internal to the todos service. It holds every live
// [Todo] for the lifetime of the process behind a single reader/writer
// lock, and is shared by reference with all HTTP handlers.
//
// The main components are:
//
//   - [Store]: Interface defining the four storage operations plus Len
//   - [MemoryStore]: Map-backed implementation guarded by a sync.RWMutex
//   - [Todo]: Storage and wire representation of a single task
//
// Every value crossing the package boundary is a copy (a snapshot), so
// callers never hold references into the underlying map. Nothing is
// persisted; the contents are lost when the process exits.
package store
