package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"
)

func TestGoroutineChecker_NoLeak(t *testing.T) {
	checker := NewGoroutineChecker(t)
	checker.Check(0)
}

func TestGoroutineChecker_WithTolerance(t *testing.T) {
	checker := NewGoroutineChecker(t)

	done := make(chan struct{})
	go func() {
		<-done
	}()

	checker.Check(1)
	close(done)
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	go func() {
		time.Sleep(100 * time.Millisecond)
	}()

	checker.Check(0)
}

func TestCheckNoGoroutineLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(time.Millisecond)
			}()
		}
		wg.Wait()
	})
}

func TestWaitForGoroutines(t *testing.T) {
	baseline := runtime.NumGoroutine()

	done := make(chan struct{})
	go func() {
		<-done
	}()
	close(done)

	WaitForGoroutines(t, baseline, time.Second)
}
