// Package leaktest fails tests that leave goroutines behind.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleTimeout = 2 * time.Second
	pollInterval  = 10 * time.Millisecond
)

// Check records the current goroutine count and, when t finishes, waits for the
// count to settle back within tolerance of it.
func Check(t testing.TB, tolerance int) {
	t.Helper()
	before := runtime.NumGoroutine()
	t.Cleanup(func() {
		t.Helper()
		if after, ok := settle(before+tolerance, settleTimeout); !ok {
			t.Errorf("goroutine leak: before=%d after=%d tolerance=%d", before, after, tolerance)
		}
	})
}

// WaitForGoroutines blocks until at most target goroutines run or timeout passes
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()
	if current, ok := settle(target, timeout); !ok {
		t.Errorf("timeout waiting for goroutines: current=%d target=%d", current, target)
	}
}

func settle(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.GC()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}
