// Package portlock enforces a single running instance of an application.
//
// portlock uses an OS-level exclusive resource as its mutual-exclusion
// primitive: a datagram socket bound to a well-known port on the loopback
// address. The kernel guarantees at most one process can hold the binding,
// and reclaims it the instant the holder exits, however it exits, so there
// is never a stale lock to clean up.
//
// # Quick Start
//
//	import (
//	    "github.com/lbussy/portlock/pkg/errors"
//	    "github.com/lbussy/portlock/pkg/lock"
//	)
//
//	lk := lock.New(50000)
//	if err := lk.Acquire(); err != nil {
//	    if errors.Is(err, errors.ErrAlreadyRunning) {
//	        // another instance is active; exit gracefully
//	    }
//	    // unexpected system failure
//	}
//	defer lk.Release()
//
// # Key Features
//
//   - Kernel-Arbitrated Exclusivity: no lock files, no in-process primitives
//   - Crash Safety: abnormal termination releases the lock automatically
//   - Typed Failures: contention is distinguishable from system errors
//   - Demo Binary: cmd/portlock exercises the lock from the command line
//
// The library lives under pkg/lock and pkg/errors; cmd/portlock is a small
// demonstration harness around it.
package portlock
