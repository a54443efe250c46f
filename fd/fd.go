//go:build unix

package fd

import (
	"os"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/wippyai/handleguard/errors"
	"github.com/wippyai/handleguard/handle"
)

// Null is the sentinel for descriptors.
type Null = handle.Invalid[int]

// Unique owns a descriptor exclusively.
type Unique = handle.Unique[int, Null, Closer]

// Guard owns a descriptor that can be duplicated.
type Guard = handle.Duplicable[int, Null]

// Closer closes descriptors. Negative descriptors are ignored.
type Closer struct{}

// Release closes fd.
func (Closer) Release(fd int) error {
	if fd < 0 {
		return nil
	}
	if err := unix.Close(fd); err != nil {
		return err
	}
	handle.Logger().Debug("descriptor closed", zap.Int("fd", fd))
	return nil
}

// Dup duplicates fd onto the lowest free descriptor with close-on-exec set.
// Negative descriptors duplicate to -1.
func Dup(fd int) (int, error) {
	if fd < 0 {
		return -1, nil
	}
	return unix.FcntlInt(uintptr(fd), unix.F_DUPFD_CLOEXEC, 0)
}

// Own transfers ownership of fd to a duplicable guard.
func Own(fd int) *Guard {
	return handle.NewDuplicable[int, Null](fd, Closer{}.Release, Dup)
}

// OwnUnique transfers ownership of fd to a unique guard.
func OwnUnique(fd int) *Unique {
	return handle.New[int, Null](fd, Closer{})
}

// Open opens path and returns a guard for the descriptor. O_CLOEXEC is
// always added to flags.
func Open(path string, flags int, perm uint32) (*Guard, error) {
	if path == "" {
		return nil, errors.InvalidInput(errors.PhaseOpen, "empty path")
	}
	return handle.NewDuplicableFrom[int, Null](func() (int, error) {
		return unix.Open(path, flags|unix.O_CLOEXEC, perm)
	}, Closer{}.Release, Dup)
}

// Pipe returns guards for the read and write ends of a new pipe.
func Pipe() (r, w *Guard, err error) {
	var p [2]int
	if err := pipe(p[:]); err != nil {
		return nil, nil, errors.Wrap(errors.PhaseOpen, errors.KindCallback, err, "pipe")
	}
	return Own(p[0]), Own(p[1]), nil
}

// File hands the descriptor held by g to a new *os.File, which becomes its
// owner. g is left empty.
func File(g handle.Guard[int], name string) (*os.File, error) {
	if !g.Valid() {
		return nil, errors.InvalidHandle(errors.PhaseTransfer, handle.TypeName[int](), g.Get())
	}
	return os.NewFile(uintptr(g.Detach()), name), nil
}
