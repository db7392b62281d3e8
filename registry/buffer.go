package registry

import (
	"reflect"
	"sync"
)

// CommandBuffer stages insertions to be applied to a Registry later, in the
// order they were queued. The zero CommandBuffer is ready to use.
type CommandBuffer struct {
	mu      sync.Mutex
	pending []command
}

type command struct {
	typ   reflect.Type
	value any
}

// NewCommandBuffer returns an empty CommandBuffer.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{}
}

// Queue stages v for insertion under its concrete type. The destination
// registry is untouched until Apply.
func Queue[T any](b *CommandBuffer, v T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending = append(b.pending, command{typ: typeOf[T](), value: v})
}

// Apply drains the buffer into r in queue order with Put semantics, so a
// later entry of the same type wins. The pending entries are detached under
// the buffer's lock first, which leaves the buffer empty and keeps a
// concurrent Queue from landing halfway through a drain.
func (b *CommandBuffer) Apply(r *Registry) {
	b.mu.Lock()
	pending := b.pending
	b.pending = nil
	b.mu.Unlock()

	if len(pending) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[reflect.Type]any, len(pending))
	}

	for _, c := range pending {
		r.entries[c.typ] = c.value
	}
}

// Len returns the number of staged entries.
func (b *CommandBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.pending)
}
