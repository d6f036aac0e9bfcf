package argon2

import "github.com/opd-ai/go-argon2/internal/core"

// Executor runs the parallelism lane tasks of each slice concurrently and
// blocks until all of them complete. Callers needing a specific worker
// pool, or deterministic sequential execution for testing, can supply
// their own via WithExecutor.
type Executor = core.Executor

// WaitGroupExecutor is the default Executor: one goroutine per lane per
// slice, synchronized with a sync.WaitGroup. With a single lane the task runs
// on the calling goroutine.
type WaitGroupExecutor = core.WaitGroupExecutor
