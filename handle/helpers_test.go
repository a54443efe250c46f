package handle

// auditLog records every handle passed to release, in order.
type auditLog struct {
	released []int
}

func (a *auditLog) release(v int) error {
	a.released = append(a.released, v)
	return nil
}

func (a *auditLog) releaser() ReleaseFunc[int] {
	return a.release
}

// auditReleaser is a compile-time release action bound to an auditLog.
type auditReleaser struct {
	log *auditLog
}

func (r auditReleaser) Release(v int) error {
	if r.log == nil {
		return nil
	}
	return r.log.release(v)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
