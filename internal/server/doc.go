// Package server wires and runs the application's HTTP server.
//
// It provides orchestration for the server lifecycle: startup, OS signal
// handling, and graceful shutdown.
package server
