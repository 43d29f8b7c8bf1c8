// Package lock provides single-instance enforcement for an application.
//
// This package implements a port-based locking mechanism to ensure that only
// one instance of an application runs on a machine at a time. It binds a
// datagram socket to a well-known port on the loopback address and holds the
// binding for the lifetime of the lock; the kernel's exclusivity guarantee on
// port binding does the mutual exclusion.
//
// # Core Components
//
// - InstanceLock: main type that claims and holds the port
//
// # Features
//
// - Kernel-arbitrated exclusivity, no in-process synchronization required
// - Automatic release on process exit, including crashes and kills
// - Contention distinguished from unexpected system failures
// - Idempotent acquire and release
//
// # Usage
//
// Basic usage pattern:
//
//	// Create a lock for the application's well-known port
//	lk := lock.New(50000)
//
//	// Acquire the lock
//	if err := lk.Acquire(); err != nil {
//	    // Handle lock acquisition failure
//	    // errors.Is(err, errors.ErrAlreadyRunning) means another
//	    // instance is active
//	}
//
//	// Use the locked resource
//	// ...
//
//	// Release the lock when done
//	defer lk.Release()
//
// # Lock Semantics
//
// The bound socket never sends or receives data; it exists purely to hold
// the binding. No lock file is written and no state persists beyond the
// process: a crashed or killed holder frees the port the moment the OS
// closes its descriptors, so there is no stale-lock recovery to perform.
//
// # Error Handling
//
// The package reports failures through the module's errors package:
//
// - ErrAlreadyRunning: another process holds the port
// - LockError: carries the port and the underlying OS error
//
// # Thread Safety
//
// InstanceLock is not designed to be used concurrently by multiple
// goroutines. A single instance should only be accessed from one goroutine
// at a time; callers that need concurrent access must serialize externally.
//
// # System Requirements
//
// This package relies on the ability to bind a UDP socket on the loopback
// interface. Ports at or below 1024 typically require elevated privileges.
package lock
