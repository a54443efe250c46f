package handle

import "io"

// Guard is the behavior shared by Unique and Duplicable guards.
type Guard[T comparable] interface {
	io.Closer

	// Get returns the held handle without transferring ownership.
	Get() T

	// Valid reports whether the held handle differs from the null sentinel.
	Valid() bool

	// Reset releases the held handle and adopts v.
	Reset(v T) error

	// Detach gives up ownership of the held handle without releasing it.
	Detach() T
}

// slot holds the handle and its release action. Both guard modes embed it.
type slot[T comparable, N Sentinel[T], R Releaser[T]] struct {
	noCopy  noCopy
	value   T
	release R
}

// Get returns the held handle, or the null sentinel for an empty guard.
// The guard stays responsible for releasing it.
func (s *slot[T, N, R]) Get() T {
	return s.value
}

// Valid reports whether the guard holds a live handle.
func (s *slot[T, N, R]) Valid() bool {
	return s.value != Null[T, N]()
}

// Reset passes the held handle to release and then adopts v. The release
// action is kept. Passing the null sentinel empties the guard.
//
// A release failure is returned, but v is adopted regardless: the previous
// handle has been offered to release once and is no longer owned.
func (s *slot[T, N, R]) Reset(v T) error {
	old := s.value
	s.value = Null[T, N]()
	err := release(s.release, old)
	s.value = v
	return err
}

// Close releases the held handle and leaves the guard empty. Release is
// invoked even when the guard is already empty, with the null sentinel.
func (s *slot[T, N, R]) Close() error {
	return s.Reset(Null[T, N]())
}

// Detach returns the held handle and empties the guard without calling
// release. The caller becomes responsible for the handle.
func (s *slot[T, N, R]) Detach() T {
	v := s.value
	s.value = Null[T, N]()
	return v
}
