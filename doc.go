// Package todos provides a small, embeddable HTTP service that manages an
// in-memory collection of Todo records.
//
// The service exposes four JSON endpoints over a single shared store:
//
//	GET    /todos?offset=<uint>&limit=<uint>  list records (200)
//	POST   /todos          {"text": "..."}     create a record (201)
//	PATCH  /todos/{id}     {"text"?, "completed"?} partial update (200 or 404)
//	DELETE /todos/{id}                         delete a record (204 or 404)
//
// Records are identified by server-generated UUIDs and live only in process
// memory; restarting the service discards them.
//
// # Quick Start
//
//	svc, err := todos.New(todos.WithAddr("127.0.0.1:3000"))
//	if err != nil {
//	    slog.Error("failed to create service", "error", err)
//	    os.Exit(1)
//	}
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	svc.Start(ctx) // blocks until context is cancelled
//
// # Concurrency
//
// All handlers share one store guarded by a single reader/writer lock.
// Reads run concurrently; inserts and removals are exclusive. A PATCH reads
// the record and writes it back under two separate lock acquisitions, so
// two concurrent updates of the same record may race and one of them can
// be lost. Callers that need read-modify-write atomicity must serialize
// their updates themselves.
//
// # Architecture
//
// The service consists of several internal packages (under internal/):
//
//   - internal/store: Lock-guarded in-memory map of Todo records
//   - internal/server: HTTP routing, handlers, middleware and lifecycle
//
// The config package and cmd/todos binary provide YAML configuration and a
// command line front end.
package todos
