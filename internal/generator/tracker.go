package generator

import "sync/atomic"

// Tracker hands out request tokens so that only the newest request's result
// is applied. Older results are dropped by the caller, not cancelled.
type Tracker struct {
	seq atomic.Uint64
}

// Begin starts a new request and returns its token. Any earlier token
// becomes stale.
func (t *Tracker) Begin() uint64 {
	return t.seq.Add(1)
}

// Current reports whether token belongs to the newest request.
func (t *Tracker) Current(token uint64) bool {
	return token != 0 && t.seq.Load() == token
}

// Invalidate makes every outstanding token stale.
func (t *Tracker) Invalidate() {
	t.seq.Add(1)
}
