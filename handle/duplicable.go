package handle

// Duplicable owns a handle that can be duplicated through a user supplied
// duplicate action. Each duplicate is an independently owned handle released
// by its own guard. The actions are stored as functions so guards built from
// different closures share one type.
//
// Duplicable is not safe for concurrent use.
type Duplicable[T comparable, N Sentinel[T]] struct {
	slot[T, N, ReleaseFunc[T]]
	duplicate DuplicateFunc[T]
}

var _ Guard[int] = (*Duplicable[int, Zero[int]])(nil)

// EmptyDuplicable returns a guard holding the null sentinel with a no-op
// release and an identity duplicate.
func EmptyDuplicable[T comparable, N Sentinel[T]]() *Duplicable[T, N] {
	return NewDuplicable[T, N](Null[T, N](), nil, nil)
}

// NewDuplicable adopts value as is. A nil release does nothing and a nil
// duplicate returns its argument.
func NewDuplicable[T comparable, N Sentinel[T]](value T, release ReleaseFunc[T], dup DuplicateFunc[T]) *Duplicable[T, N] {
	d := &Duplicable[T, N]{duplicate: dup}
	d.value = value
	d.release = release
	return d
}

// NewDuplicableFrom calls init once and adopts its result. If init fails no
// guard is created and release is never called.
func NewDuplicableFrom[T comparable, N Sentinel[T]](init func() (T, error), release ReleaseFunc[T], dup DuplicateFunc[T]) (*Duplicable[T, N], error) {
	v, err := initialize(init)
	if err != nil {
		return nil, err
	}
	return NewDuplicable[T, N](v, release, dup), nil
}

// Clone duplicates the held handle into a new guard carrying the same
// actions. d is unchanged. If the duplicate action fails no guard is
// returned.
func (d *Duplicable[T, N]) Clone() (*Duplicable[T, N], error) {
	v, err := duplicate(d.duplicate, d.value)
	if err != nil {
		return nil, err
	}
	return NewDuplicable[T, N](v, d.release, d.duplicate), nil
}

// CopyFrom replaces d's handle with a duplicate of src's handle and adopts
// src's actions. The duplicate is made first, so a failing duplicate leaves
// d untouched; d's previous handle is then released exactly once. Copying a
// guard onto itself does nothing.
func (d *Duplicable[T, N]) CopyFrom(src *Duplicable[T, N]) error {
	if d == src {
		return nil
	}
	v, err := duplicate(src.duplicate, src.value)
	if err != nil {
		return err
	}
	err = d.Close()
	d.value = v
	d.release = src.release
	d.duplicate = src.duplicate
	return err
}

// Move transfers the handle and both actions to a new guard, leaving d
// empty with its actions intact.
func (d *Duplicable[T, N]) Move() *Duplicable[T, N] {
	return NewDuplicable[T, N](d.Detach(), d.release, d.duplicate)
}

// MoveFrom releases d's handle, then takes over src's handle and actions,
// leaving src empty. Moving a guard into itself does nothing.
func (d *Duplicable[T, N]) MoveFrom(src *Duplicable[T, N]) error {
	if d == src {
		return nil
	}
	err := d.Close()
	d.value = src.Detach()
	d.release = src.release
	d.duplicate = src.duplicate
	return err
}

// Swap exchanges handles and both actions without calling either action.
func (d *Duplicable[T, N]) Swap(other *Duplicable[T, N]) {
	d.value, other.value = other.value, d.value
	d.release, other.release = other.release, d.release
	d.duplicate, other.duplicate = other.duplicate, d.duplicate
}

// SwapDuplicable exchanges the state of two duplicable guards.
func SwapDuplicable[T comparable, N Sentinel[T]](a, b *Duplicable[T, N]) {
	a.Swap(b)
}
