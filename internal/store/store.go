package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned by lookups and mutators given an unknown id.
var ErrNotFound = errors.New("record not found")

// Options is shared by every repository. Latency reproduces the fixed
// fake-network delay of the original mock layer; it always elapses
// successfully and is zero in tests.
type Options struct {
	Latency time.Duration
}

func (o Options) simulateLatency() {
	if o.Latency > 0 {
		time.Sleep(o.Latency)
	}
}
