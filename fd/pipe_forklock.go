//go:build aix || darwin

package fd

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// No pipe2 here; ForkLock keeps the descriptors from leaking into a child
// forked between the two calls.
func pipe(p []int) error {
	syscall.ForkLock.RLock()
	defer syscall.ForkLock.RUnlock()
	if err := unix.Pipe(p); err != nil {
		return err
	}
	unix.CloseOnExec(p[0])
	unix.CloseOnExec(p[1])
	return nil
}
