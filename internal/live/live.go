// Package live coordinates search-as-you-type requests: each query waits out a debounce
// interval, and only the newest request per key may deliver a result.
package live

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded means a newer request for the same key started; the caller must
// discard whatever it fetched.
var ErrSuperseded = errors.New("superseded by a newer request")

type Ticket struct {
	key string
	seq uint64
}

type entry struct {
	seq    uint64
	cancel context.CancelFunc
}

// Tracker hands out tickets per key. Starting a ticket cancels the previous one.
type Tracker struct {
	mu      sync.Mutex
	seq     uint64
	entries map[string]entry
}

func NewTracker() *Tracker {
	return &Tracker{entries: make(map[string]entry)}
}

// Begin starts a new generation for key. The returned context is cancelled as soon
// as another Begin for the same key happens or the ticket is Done.
func (t *Tracker) Begin(ctx context.Context, key string) (context.Context, Ticket) {
	ctx, cancel := context.WithCancel(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	if prev, ok := t.entries[key]; ok {
		prev.cancel()
	}
	t.seq++
	t.entries[key] = entry{seq: t.seq, cancel: cancel}
	return ctx, Ticket{key: key, seq: t.seq}
}

func (t *Tracker) Current(tk Ticket) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[tk.key]
	return ok && e.seq == tk.seq
}

// Done releases the ticket. Superseded tickets were already cancelled.
func (t *Tracker) Done(tk Ticket) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[tk.key]; ok && e.seq == tk.seq {
		e.cancel()
		delete(t.entries, tk.key)
	}
}

// Run waits d, then calls fn, unless a newer Run for key begins first. A result
// produced after being superseded is reported as ErrSuperseded.
func (t *Tracker) Run(ctx context.Context, key string, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, tk := t.Begin(ctx, key)
	defer t.Done(tk)

	if err := Debounce(ctx, d); err != nil {
		if !t.Current(tk) {
			return ErrSuperseded
		}
		return err
	}
	if !t.Current(tk) {
		return ErrSuperseded
	}
	err := fn(ctx)
	if !t.Current(tk) {
		return ErrSuperseded
	}
	return err
}

// Debounce blocks for d or until ctx ends.
func Debounce(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
