//go:build dragonfly || freebsd || illumos || linux || netbsd || openbsd || solaris

package fd

import "golang.org/x/sys/unix"

func pipe(p []int) error {
	return unix.Pipe2(p, unix.O_CLOEXEC)
}
