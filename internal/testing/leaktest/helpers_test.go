package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheck_FinishedWorkersPass(t *testing.T) {
	Check(t, 0)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
		}()
	}
	wg.Wait()
}

func TestCheck_ToleratesBoundedStragglers(t *testing.T) {
	done := make(chan struct{})
	t.Cleanup(func() { close(done) })

	Check(t, 1)
	go func() { <-done }()
}

func TestSettle(t *testing.T) {
	base := runtime.NumGoroutine()

	release := make(chan struct{})
	go func() { <-release }()

	n, ok := settle(base, 30*time.Millisecond)
	assert.False(t, ok)
	assert.Greater(t, n, base)

	close(release)
	WaitForGoroutines(t, base, time.Second)
}
