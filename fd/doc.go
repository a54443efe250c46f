// Package fd guards POSIX file descriptors.
//
// Descriptors use -1 as their null handle (handle.Invalid[int]). Closer is a
// zero-size release action, so a Unique descriptor guard is the size of an
// int. Duplicable guards duplicate with F_DUPFD_CLOEXEC:
//
//	r, w, err := fd.Pipe()
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	defer w.Close()
//
//	w2, err := w.Clone() // independent descriptor for the same pipe end
//
// Open uses the initializer form: a failed open produces no guard, and the
// errno is reachable with errors.Is.
package fd
