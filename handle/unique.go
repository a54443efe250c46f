package handle

// Unique owns a handle exclusively. Ownership can be moved to another guard
// but never copied. R is the release action's type; a zero-size R adds no
// space to the guard.
//
// Unique is not safe for concurrent use.
type Unique[T comparable, N Sentinel[T], R Releaser[T]] struct {
	slot[T, N, R]
}

var _ Guard[int] = (*Unique[int, Zero[int], NoRelease[int]])(nil)

// Empty returns a guard holding the null sentinel and the zero release
// action.
func Empty[T comparable, N Sentinel[T], R Releaser[T]]() *Unique[T, N, R] {
	return New[T, N](Null[T, N](), *new(R))
}

// New adopts value as is. value may be the null sentinel, which gives an
// empty guard ready for a later Reset.
func New[T comparable, N Sentinel[T], R Releaser[T]](value T, release R) *Unique[T, N, R] {
	u := &Unique[T, N, R]{}
	u.value = value
	u.release = release
	return u
}

// NewFrom calls init once and adopts its result. If init fails no guard is
// created and release is never called; init must clean up after itself.
func NewFrom[T comparable, N Sentinel[T], R Releaser[T]](init func() (T, error), release R) (*Unique[T, N, R], error) {
	v, err := initialize(init)
	if err != nil {
		return nil, err
	}
	return New[T, N](v, release), nil
}

// Move transfers the handle and release action to a new guard. u is left
// empty and keeps its release action, so closing it releases only the null
// sentinel.
func (u *Unique[T, N, R]) Move() *Unique[T, N, R] {
	return New[T, N](u.Detach(), u.release)
}

// MoveFrom releases u's handle, then takes over src's handle and release
// action, leaving src empty. Moving a guard into itself does nothing.
func (u *Unique[T, N, R]) MoveFrom(src *Unique[T, N, R]) error {
	if u == src {
		return nil
	}
	err := u.Close()
	u.value = src.Detach()
	u.release = src.release
	return err
}

// Swap exchanges the handles and release actions of u and other without
// calling either action.
func (u *Unique[T, N, R]) Swap(other *Unique[T, N, R]) {
	u.value, other.value = other.value, u.value
	u.release, other.release = other.release, u.release
}

// Swap exchanges the state of two unique guards.
func Swap[T comparable, N Sentinel[T], R Releaser[T]](a, b *Unique[T, N, R]) {
	a.Swap(b)
}
