package core

import "sync/atomic"

// ============================================================================
// Cancellation token
// ============================================================================
//
// A Cancel is a cheaply-clonable shared flag: cloning a Cancel copies the
// pointer, not the flag, so every clone observes the same cancellation.
// Long-running entry points consult it between search nodes or logical
// steps and return a canceled result promptly; the core never starts its
// own timers (§5 - timeouts are the caller's responsibility).
//
// ============================================================================

// Cancel is a shared, atomic cancellation flag.
type Cancel struct {
	flag *int32
}

// NewCancel returns a fresh, not-yet-canceled token.
func NewCancel() Cancel {
	var f int32
	return Cancel{flag: &f}
}

// Check reports whether CancelNow has been called.
func (c Cancel) Check() bool {
	if c.flag == nil {
		return false
	}
	return atomic.LoadInt32(c.flag) != 0
}

// CancelNow trips the flag. Safe to call from any goroutine, any number of times.
func (c Cancel) CancelNow() {
	if c.flag == nil {
		return
	}
	atomic.StoreInt32(c.flag, 1)
}
