// Package server wires and runs the vault's transport servers.
//
// It owns the lifecycle of the HTTP and gRPC listeners and of the background
// workers: startup, signal handling, and graceful shutdown of everything that
// was enabled.
package server
