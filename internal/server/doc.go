// Package server provides the HTTP API for the todos service.
//
// This package is internal to the todos service and handles all HTTP
// concerns:
//
//   - Routing: method+path patterns on an [http.ServeMux]
//   - Handlers: list, create, update and delete over a [store.Store]
//   - Request decoding: JSON bodies, path ids and pagination parameters
//   - Middleware: panic recovery and debug-level request logging
//
// Handlers are stateless; the only shared state is the injected store.
// The server shuts down gracefully when the context passed to
// [Server.Start] is cancelled.
//
// Users of the todos library should not need to interact with this
// package directly. The server is started by [todos.Service.Start].
package server
