// Package errors provides error handling utilities for portlock.
//
// This package implements specialized error types and error handling functions
// to improve error management throughout the module. It focuses on providing
// rich context for errors while maintaining compatibility with the standard
// error handling practices.
//
// # Features
//
//   - Sentinel errors for the two failure classes of lock acquisition:
//     contention (ErrAlreadyRunning) and system failure (everything else)
//   - Typed errors carrying the contested port and the underlying OS error
//   - Error wrapping with context
//
// # Usage
//
// Distinguishing contention from an unexpected system failure:
//
//	if err := lk.Acquire(); err != nil {
//	    if errors.Is(err, errors.ErrAlreadyRunning) {
//	        // another instance holds the port; exit gracefully
//	    }
//	    // socket creation or bind failed for some other reason
//	}
//
// # Error Wrapping
//
// The package uses standard error wrapping conventions, allowing errors to be
// unwrapped and inspected using errors.Is and errors.As.
//
// # Compatibility
//
// The package is fully compatible with the standard library errors package
// and can be used as a drop-in replacement with additional functionality.
//
// # Thread Safety
//
// All types and functions in this package are safe for concurrent use
// by multiple goroutines.
package errors
