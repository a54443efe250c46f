package handle

// Sentinel names the null value of a handle type. Implementations are
// zero-size types passed as type arguments.
type Sentinel[T comparable] interface {
	Null() T
}

// Zero uses the zero value of T as the null handle: 0 for integers, nil for
// pointers and interfaces.
type Zero[T comparable] struct{}

func (Zero[T]) Null() T {
	var zero T
	return zero
}

// Signed is the set of signed integer handle types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Invalid uses -1 as the null handle, the POSIX descriptor convention.
type Invalid[T Signed] struct{}

func (Invalid[T]) Null() T {
	return -1
}

// Null returns the null handle named by N.
func Null[T comparable, N Sentinel[T]]() T {
	var n N
	return n.Null()
}

// IsNull reports whether v is the null handle named by N.
func IsNull[T comparable, N Sentinel[T]](v T) bool {
	return v == Null[T, N]()
}
