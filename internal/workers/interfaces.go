// Package workers runs the background jobs of the vault server.
//
// A [Worker] is started once with the server's lifetime context and stopped
// during graceful shutdown. [Workers] groups them so the server can start and
// stop every job together.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block; the job runs in its own goroutine until ctx is
// cancelled or Stop is called. Stop blocks until the goroutine has exited and
// is a no-op for a job that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
