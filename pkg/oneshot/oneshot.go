// Copyright (c) 2020 Cisco and/or its affiliates.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package oneshot implements a broadcast signal that can be set exactly once
// and observed by any number of goroutines.
package oneshot

import (
	"context"
	"sync"
)

// Waiter is the read-only side of a Signal.
type Waiter interface {
	// IsSet returns true once the signal has been set.
	IsSet() bool

	// Done returns a channel closed when the signal is set.
	Done() <-chan struct{}

	// Wait blocks until the signal is set or the context is done.
	// It returns the context error in the latter case.
	Wait(ctx context.Context) error
}

// Signal is a one-shot idempotent signal. The zero value is not usable,
// use New.
type Signal struct {
	once sync.Once
	ch   chan struct{}
}

// New returns an unset signal.
func New() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Set sets the signal. Only the first call has an effect, it returns true
// if this call was the one that set it.
func (s *Signal) Set() (first bool) {
	s.once.Do(func() {
		close(s.ch)
		first = true
	})
	return first
}

// IsSet returns true once the signal has been set.
func (s *Signal) IsSet() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the signal is set.
func (s *Signal) Done() <-chan struct{} {
	return s.ch
}

// Wait blocks until the signal is set or ctx is done.
func (s *Signal) Wait(ctx context.Context) error {
	select {
	case <-s.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
