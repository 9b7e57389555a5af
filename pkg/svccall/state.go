// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package svccall

import "sync"

// State is a snapshot of the request lifecycle of a service. Data and Err
// are nil until a call of the corresponding outcome has completed; after
// that they retain the previous cycle's value until overwritten, so
// consumers must branch on Pending first and then on Success to decide
// which of the two is current.
type State[Out, Fail any] struct {
	// Pending reports whether an invocation is currently in flight.
	Pending bool

	// Success reports whether the most recently completed invocation
	// received a success-range HTTP status.
	Success bool

	// Data is the decoded payload of the last successful invocation.
	Data *Out

	// Err is the decoded payload of the last failed invocation.
	Err *Fail
}

// Patch is a partial state update. Only non-nil fields are applied;
// everything else keeps its prior value.
type Patch[Out, Fail any] struct {
	Pending *bool
	Success *bool
	Data    *Out
	Err     *Fail
}

// Container holds the observable request state of one service. Updates go
// exclusively through Apply, which merges a Patch into the current state
// and notifies subscribers with the resulting snapshot.
//
// The container is safe for concurrent use, but it does not fence
// overlapping invocations: if two calls race, the later writer wins.
type Container[Out, Fail any] struct {
	mu     sync.Mutex
	state  State[Out, Fail]
	nextID int
	subs   map[int]func(State[Out, Fail])
}

// NewContainer creates a container in the initial state: not pending, not
// successful, no data and no error.
func NewContainer[Out, Fail any]() *Container[Out, Fail] {
	return &Container[Out, Fail]{subs: make(map[int]func(State[Out, Fail]))}
}

// Snapshot returns a copy of the current state.
func (c *Container[Out, Fail]) Snapshot() State[Out, Fail] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Apply merges the patch into the current state and notifies every
// subscriber with the merged snapshot. Fields left nil in the patch are
// untouched.
func (c *Container[Out, Fail]) Apply(p Patch[Out, Fail]) {
	c.mu.Lock()
	if p.Pending != nil {
		c.state.Pending = *p.Pending
	}
	if p.Success != nil {
		c.state.Success = *p.Success
	}
	if p.Data != nil {
		c.state.Data = p.Data
	}
	if p.Err != nil {
		c.state.Err = p.Err
	}
	snapshot := c.state
	listeners := make([]func(State[Out, Fail]), 0, len(c.subs))
	for _, fn := range c.subs {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	// Notify outside the lock so a subscriber may read the container.
	for _, fn := range listeners {
		fn(snapshot)
	}
}

// Subscribe registers fn to be called with a snapshot after every applied
// patch. The returned function cancels the subscription.
func (c *Container[Out, Fail]) Subscribe(fn func(State[Out, Fail])) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}
