// Package handleguard provides scoped ownership of opaque resource handles.
//
// A handle is any comparable value a foreign provider hands out to name a
// resource: a file descriptor, a table slot, a wazero module, a database
// cursor. A guard binds such a value to the action that releases it, so the
// resource is released exactly once no matter which path the caller takes.
//
// # Architecture Overview
//
//	handleguard/
//	├── handle/      Unique and Duplicable guards, sentinels, actions
//	├── errors/      Structured error types for guard and provider failures
//	├── resource/    In-process handle table with guarded ownership
//	├── fd/          POSIX file descriptors (golang.org/x/sys/unix)
//	├── wasmhandle/  wazero runtimes, compiled modules and instances
//	└── sqlhandle/   database/sql rows, transactions and connections
//
// # Quick Start
//
//	g, err := handle.NewFrom[int, handle.Invalid[int]](
//	    func() (int, error) { return unix.Open(path, unix.O_RDONLY, 0) },
//	    fd.Closer{},
//	)
//	if err != nil {
//	    return err
//	}
//	defer g.Close()
//
// # Ownership Modes
//
// Unique guards are movable but expose no copy operation. Duplicable guards
// carry a duplicate action and offer Clone and CopyFrom; the original and the
// duplicate are released independently.
//
// # Thread Safety
//
// Guards are not synchronized. Distinct guards may be used from distinct
// goroutines; a single guard must not be mutated concurrently.
package handleguard
