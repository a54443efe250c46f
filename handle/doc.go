// Package handle implements scoped ownership of opaque resource handles.
//
// A guard pairs a handle value with the action that releases it. Two modes
// are available:
//
//	Unique[T, N, R]     movable only; R is the release action's type
//	Duplicable[T, N]    movable and duplicable through a duplicate function
//
// T is the handle type and N a zero-size Sentinel naming its null value, so
// a guard is exactly as large as its handle plus its actions.
//
// # Lifecycle
//
// Guards are created with New, NewFrom (initializer form) or Empty, and
// destroyed with Close, normally deferred:
//
//	g := handle.New[int, handle.Zero[int]](id, handle.ReleaseFunc[int](free))
//	defer g.Close()
//
// Reset replaces the held handle, releasing the previous one first. Move and
// MoveFrom transfer ownership and leave the source empty. Duplicable guards
// add Clone and CopyFrom, which call the duplicate action and produce a
// handle that is released independently of the original.
//
// # Release Contract
//
// Release is called with whatever value the guard holds, including the null
// sentinel. Release actions must treat the sentinel as a no-op. Failures
// returned by release, duplicate or initializer actions are wrapped in
// *errors.Error and returned to the caller; panics are not recovered.
//
// # Copying
//
// Guards must not be copied by value; constructors return pointers and the
// types carry a marker that go vet's copylocks check reports. Unique guards
// expose no copy operation at all.
package handle
