package registry

import (
	"reflect"
	"sort"
	"sync"
)

// Registry is a type-keyed store of singleton values. Each distinct wrapper
// type owns exactly one slot, so two wrappers with identical underlying
// shapes never collide. The zero Registry is ready to use.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]any
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{entries: make(map[reflect.Type]any)}
}

// Put stores v under its concrete type, replacing any prior value of the same
// type. Methods cannot carry type parameters, so Put is a free function.
func Put[T any](r *Registry, v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[reflect.Type]any)
	}

	r.entries[typeOf[T]()] = v
}

// Get returns the value stored under T and whether one is present.
func Get[T any](r *Registry) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.entries[typeOf[T]()]
	if !ok {
		var zero T

		return zero, false
	}

	return v.(T), true
}

// Delete removes the value stored under T and reports whether one was there.
func Delete[T any](r *Registry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := typeOf[T]()

	_, ok := r.entries[t]
	if ok {
		delete(r.entries, t)
	}

	return ok
}

// Len returns the number of stored entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Types returns the stored entry types sorted by their string form, so
// inspection output is stable across runs.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]reflect.Type, 0, len(r.entries))
	for t := range r.entries {
		types = append(types, t)
	}

	sort.Slice(types, func(i, j int) bool { return types[i].String() < types[j].String() })

	return types
}

// typeOf returns the reflect.Type of T itself, not of a value, so interface
// type arguments resolve to the interface type.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
