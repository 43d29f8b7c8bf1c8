package lock

import (
	"sync"
	"testing"

	portlockErrors "github.com/lbussy/portlock/pkg/errors"
)

// Each goroutine owns its own InstanceLock; the lock object itself is
// single-goroutine by contract, but separate objects may race for the same
// port and the kernel must admit exactly one.
func TestConcurrentLocks_EnforcesExclusivity(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping concurrency test in short mode")
	}

	port := freePort(t)
	const goroutineCount = 5

	start := make(chan struct{})
	hold := make(chan struct{})
	results := make(chan error, goroutineCount)

	var wg sync.WaitGroup
	for i := 0; i < goroutineCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			lk := New(port)
			<-start

			err := lk.Acquire()
			results <- err
			if err == nil {
				// Winner keeps the binding until every goroutine has tried.
				<-hold
				lk.Release()
			}
		}()
	}

	close(start)

	var successCount, contentionCount int
	for i := 0; i < goroutineCount; i++ {
		err := <-results
		switch {
		case err == nil:
			successCount++
		case portlockErrors.Is(err, portlockErrors.ErrAlreadyRunning):
			contentionCount++
		default:
			t.Errorf("Unexpected acquire error: %v", err)
		}
	}

	close(hold)
	wg.Wait()

	if successCount != 1 {
		t.Errorf("Expected exactly 1 successful acquire, got %d", successCount)
	}
	if contentionCount != goroutineCount-1 {
		t.Errorf("Expected %d contention failures, got %d", goroutineCount-1, contentionCount)
	}
}
