// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package stack

// Stack represents a reusable LIFO worklist which is implemented using an
// array.  Items pushed together are popped in reverse order.
type Stack[T any] struct {
	items []T
}

// NewStack returns a stack initialised with zero or more items, such that the
// last item given is on top.  The given items are copied.
func NewStack[T any](items ...T) *Stack[T] {
	var stack Stack[T]
	//
	stack.items = make([]T, len(items), max(len(items), 4))
	copy(stack.items, items)
	//
	return &stack
}

// IsEmpty checks whether or not there are still items on the stack
func (p *Stack[T]) IsEmpty() bool {
	return len(p.items) == 0
}

// Len returns the number of items on the stack.
func (p *Stack[T]) Len() uint {
	return uint(len(p.items))
}

// Push zero or more items onto the stack, such that the last item given ends
// up on top.
func (p *Stack[T]) Push(items ...T) {
	p.items = append(p.items, items...)
}

// Pop the top item off the stack, or panic if there is none.
func (p *Stack[T]) Pop() T {
	item, ok := p.TryPop()
	//
	if !ok {
		panic("cannot pop from empty stack")
	}
	//
	return item
}

// TryPop removes the top item from the stack, or returns false if the stack is
// empty.
func (p *Stack[T]) TryPop() (T, bool) {
	var (
		empty T
		n     = len(p.items)
	)
	//
	if n == 0 {
		return empty, false
	}
	// Get last item
	item := p.items[n-1]
	// Clear slot so that item can be collected
	p.items[n-1] = empty
	p.items = p.items[:n-1]
	// Done
	return item, true
}
