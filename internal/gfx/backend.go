package gfx

import "sync"

// Backend exposes the graphics context's error query. Error returns the
// oldest unread flag and clears it, or NoError when nothing is pending.
// Implementations are bound to the goroutine that owns the context.
type Backend interface {
	Error() ErrorCode
}

// BackendFunc adapts a plain function (e.g. a gl.GetError binding) to Backend.
type BackendFunc func() ErrorCode

// Error calls f.
func (f BackendFunc) Error() ErrorCode { return f() }

// Register is a software error register for headless backends and tests.
// Each distinct code is recorded at most once until it is read.
type Register struct {
	mu      sync.Mutex
	pending []ErrorCode
}

// NewRegister returns an empty register.
func NewRegister() *Register {
	return &Register{}
}

// Raise records code. NoError and codes already pending are ignored.
func (r *Register) Raise(code ErrorCode) {
	if code == NoError {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.pending {
		if c == code {
			return
		}
	}
	r.pending = append(r.pending, code)
}

// Error returns and clears the oldest pending flag.
func (r *Register) Error() ErrorCode {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.pending) == 0 {
		return NoError
	}
	code := r.pending[0]
	r.pending = r.pending[1:]
	return code
}

// Pending returns the number of unread flags.
func (r *Register) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Drain reads b until it reports NoError or limit codes were collected.
// A limit <= 0 means no limit; use it only with backends that are known to
// settle, since a lost context may report the same flag forever.
func Drain(b Backend, limit int) []ErrorCode {
	if b == nil {
		return nil
	}
	var out []ErrorCode
	for limit <= 0 || len(out) < limit {
		code := b.Error()
		if code == NoError {
			break
		}
		out = append(out, code)
	}
	return out
}
