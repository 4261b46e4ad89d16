// Package leaktest holds goroutine leak checks shared by package tests.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleTimeout bounds how long Check waits for goroutines to exit
const settleTimeout = 2 * time.Second

// GoroutineChecker records the goroutine count at creation and compares it later
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a checker from the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if more than tolerance goroutines are still running
// once the count has had time to settle.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	target := g.before + tolerance
	after := settle(target, settleTimeout)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines waits until at most target goroutines are running
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if n := settle(target, timeout); n > target {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", n, target)
	}
}

func settle(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(10 * time.Millisecond)
	}
}
