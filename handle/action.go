package handle

import (
	"go.uber.org/zap"

	"github.com/wippyai/handleguard/errors"
)

// Releaser relinquishes the resource named by a handle.
// Release is called with the null sentinel too and must treat it as a no-op.
type Releaser[T any] interface {
	Release(T) error
}

// ReleaseFunc adapts a function to Releaser. A nil ReleaseFunc does nothing.
type ReleaseFunc[T any] func(T) error

func (f ReleaseFunc[T]) Release(v T) error {
	if f == nil {
		return nil
	}
	return f(v)
}

// NoRelease is the inert release action.
type NoRelease[T any] struct{}

func (NoRelease[T]) Release(T) error { return nil }

// Duplicator produces an independently owned handle equivalent to its argument.
type Duplicator[T any] interface {
	Duplicate(T) (T, error)
}

// DuplicateFunc adapts a function to Duplicator. A nil DuplicateFunc returns
// its argument unchanged.
type DuplicateFunc[T any] func(T) (T, error)

func (f DuplicateFunc[T]) Duplicate(v T) (T, error) {
	if f == nil {
		return v, nil
	}
	return f(v)
}

// Identity duplicates a handle by returning it unchanged. Only useful when
// releasing the same value twice is harmless. It can be passed wherever a
// DuplicateFunc is expected.
func Identity[T any](v T) (T, error) { return v, nil }

func release[T any, R Releaser[T]](r R, v T) error {
	if err := r.Release(v); err != nil {
		Logger().Debug("handle release failed",
			zap.String("type", TypeName[T]()),
			zap.Any("value", v),
			zap.Error(err))
		return errors.ReleaseFailed(TypeName[T](), v, err)
	}
	return nil
}

func duplicate[T any, D Duplicator[T]](d D, v T) (T, error) {
	dup, err := d.Duplicate(v)
	if err != nil {
		Logger().Debug("handle duplicate failed",
			zap.String("type", TypeName[T]()),
			zap.Any("value", v),
			zap.Error(err))
		var zero T
		return zero, errors.DuplicateFailed(TypeName[T](), v, err)
	}
	return dup, nil
}

func initialize[T any](init func() (T, error)) (T, error) {
	v, err := init()
	if err != nil {
		Logger().Debug("handle initializer failed",
			zap.String("type", TypeName[T]()),
			zap.Error(err))
		var zero T
		return zero, errors.InitFailed(TypeName[T](), err)
	}
	return v, nil
}
