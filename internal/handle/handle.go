// Package handle implements generational handles: opaque 64-bit ids for
// objects owned by an Arena.
//
// A handle packs a slot index and the slot's generation. Removing an
// object bumps the generation, so handles to it go stale and stop
// resolving even after the slot is reused. The zero Handle is Null and
// never resolves.
package handle

import (
	"fmt"
	"sync"
)

// Handle identifies an object in an Arena.
type Handle uint64

// Null is the handle that refers to nothing.
const Null Handle = 0

// Make packs index and generation. Generation 0 is reserved, so a handle
// made with it is Null only when index is 0 too; arenas never issue it.
func Make(index, generation uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index.
func (h Handle) Index() uint32 { return uint32(h) }

// Generation returns the slot generation the handle was issued for.
func (h Handle) Generation() uint32 { return uint32(h >> 32) }

// IsNull reports whether h is Null.
func (h Handle) IsNull() bool { return h == Null }

func (h Handle) String() string {
	if h.IsNull() {
		return "null"
	}
	return fmt.Sprintf("%d@%d", h.Index(), h.Generation())
}

type slot[T any] struct {
	value T
	gen   uint32
	used  bool
}

// Arena owns objects of type T addressed by handles.
//
// Arena is safe for concurrent use.
type Arena[T any] struct {
	mu    sync.RWMutex
	slots []slot[T]
	free  []uint32
	live  int
}

// NewArena returns an empty arena.
func NewArena[T any]() *Arena[T] {
	return &Arena[T]{}
}

// Insert stores v and returns its handle. Freed slots are reused.
func (a *Arena[T]) Insert(v T) Handle {
	a.mu.Lock()
	defer a.mu.Unlock()

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{gen: 1})
	}
	s := &a.slots[idx]
	s.value = v
	s.used = true
	a.live++
	return Make(idx, s.gen)
}

// lookup returns the live slot h refers to. The caller holds the lock.
func (a *Arena[T]) lookup(h Handle) *slot[T] {
	if h.IsNull() || int(h.Index()) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.Index()]
	if !s.used || s.gen != h.Generation() {
		return nil
	}
	return s
}

// Get returns the object for h. Null and stale handles report false.
func (a *Arena[T]) Get(h Handle) (T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if s := a.lookup(h); s != nil {
		return s.value, true
	}
	var zero T
	return zero, false
}

// Contains reports whether h resolves.
func (a *Arena[T]) Contains(h Handle) bool {
	_, ok := a.Get(h)
	return ok
}

// Replace swaps the object for h and reports whether h resolved.
func (a *Arena[T]) Replace(h Handle, v T) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	s := a.lookup(h)
	if s == nil {
		return false
	}
	s.value = v
	return true
}

// Remove deletes the object for h and returns it. The slot's generation
// is bumped, invalidating every copy of h.
func (a *Arena[T]) Remove(h Handle) (T, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	var zero T
	s := a.lookup(h)
	if s == nil {
		return zero, false
	}
	v := s.value
	s.value = zero
	s.used = false
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	a.free = append(a.free, h.Index())
	a.live--
	return v, true
}

// Len returns the number of live objects.
func (a *Arena[T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.live
}

// Each calls fn for every live object in slot order. fn must not use the
// arena.
func (a *Arena[T]) Each(fn func(Handle, T)) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for i := range a.slots {
		if s := &a.slots[i]; s.used {
			fn(Make(uint32(i), s.gen), s.value)
		}
	}
}
