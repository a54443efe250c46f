package handle

import (
	"errors"
	"testing"

	guarderrors "github.com/wippyai/handleguard/errors"
)

// counter hands out fresh handles so duplicates are distinguishable.
type counter struct {
	next int
}

func (c *counter) dup(int) (int, error) {
	c.next++
	return c.next, nil
}

func TestDuplicable_Empty(t *testing.T) {
	d := EmptyDuplicable[int, Zero[int]]()
	if d.Valid() {
		t.Fatal("empty guard should not be valid")
	}

	clone, err := d.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	if clone.Valid() {
		t.Fatal("clone of empty guard should be empty")
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestDuplicable_CloneIsIndependent(t *testing.T) {
	audit := &auditLog{}
	c := &counter{next: 100}
	a := NewDuplicable[int, Zero[int]](1, audit.release, c.dup)

	b, err := a.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}
	if b.Get() != 101 {
		t.Fatalf("clone holds %d, want 101", b.Get())
	}
	if a.Get() != 1 {
		t.Fatalf("source changed to %d", a.Get())
	}

	if err := b.Reset(7); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if a.Get() != 1 {
		t.Fatalf("Reset on clone changed source to %d", a.Get())
	}

	a.Close()
	b.Close()
	if !equalInts(audit.released, []int{101, 1, 7}) {
		t.Fatalf("released = %v, want [101 1 7]", audit.released)
	}
}

func TestDuplicable_CloneFailure(t *testing.T) {
	audit := &auditLog{}
	cause := errors.New("dup refused")
	a := NewDuplicable[int, Zero[int]](3, audit.release, func(int) (int, error) {
		return 0, cause
	})

	b, err := a.Clone()
	if b != nil {
		t.Fatal("expected no guard on duplicate failure")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("err = %v, want wrapped %v", err, cause)
	}
	if !errors.Is(err, &guarderrors.Error{Phase: guarderrors.PhaseDuplicate, Kind: guarderrors.KindCallback}) {
		t.Fatalf("err = %v, want duplicate callback error", err)
	}
	if len(audit.released) != 0 || a.Get() != 3 {
		t.Fatalf("source disturbed: released=%v value=%d", audit.released, a.Get())
	}
}

func TestDuplicable_CopyFrom(t *testing.T) {
	dstLog, srcLog := &auditLog{}, &auditLog{}
	c := &counter{next: 50}
	dst := NewDuplicable[int, Zero[int]](1, dstLog.release, nil)
	src := NewDuplicable[int, Zero[int]](2, srcLog.release, c.dup)

	if err := dst.CopyFrom(src); err != nil {
		t.Fatalf("CopyFrom failed: %v", err)
	}

	if !equalInts(dstLog.released, []int{1}) {
		t.Fatalf("dst released = %v, want [1]", dstLog.released)
	}
	if dst.Get() != 51 || src.Get() != 2 {
		t.Fatalf("dst=%d src=%d", dst.Get(), src.Get())
	}

	// dst adopted src's actions.
	dst.Close()
	src.Close()
	if !equalInts(srcLog.released, []int{51, 2}) {
		t.Fatalf("src released = %v, want [51 2]", srcLog.released)
	}
	if !equalInts(dstLog.released, []int{1}) {
		t.Fatalf("dst released = %v, want [1]", dstLog.released)
	}
}

func TestDuplicable_CopyFromFailureLeavesDestination(t *testing.T) {
	audit := &auditLog{}
	cause := errors.New("dup refused")
	dst := NewDuplicable[int, Zero[int]](1, audit.release, nil)
	src := NewDuplicable[int, Zero[int]](2, audit.release, func(int) (int, error) {
		return 0, cause
	})

	if err := dst.CopyFrom(src); !errors.Is(err, cause) {
		t.Fatalf("CopyFrom() = %v, want wrapped %v", err, cause)
	}
	if dst.Get() != 1 || len(audit.released) != 0 {
		t.Fatalf("dst=%d released=%v", dst.Get(), audit.released)
	}
}

func TestDuplicable_CopyFromEqualValues(t *testing.T) {
	audit := &auditLog{}
	a := NewDuplicable[int, Zero[int]](4, audit.release, identity)
	b, _ := a.Clone()

	// Two guards may hold equal handles; only identity marks self-assignment.
	if err := a.CopyFrom(b); err != nil {
		t.Fatalf("CopyFrom failed: %v", err)
	}
	if !equalInts(audit.released, []int{4}) {
		t.Fatalf("released = %v, want [4]", audit.released)
	}
}

func TestDuplicable_MoveAndMoveFrom(t *testing.T) {
	audit := &auditLog{}
	c := &counter{next: 10}
	a := NewDuplicable[int, Zero[int]](1, audit.release, c.dup)

	b := a.Move()
	if a.Valid() || b.Get() != 1 {
		t.Fatalf("after Move a=%d b=%d", a.Get(), b.Get())
	}

	clone, err := b.Clone()
	if err != nil {
		t.Fatalf("moved guard lost its duplicate action: %v", err)
	}
	if clone.Get() != 11 {
		t.Fatalf("clone = %d, want 11", clone.Get())
	}

	if err := a.MoveFrom(clone); err != nil {
		t.Fatalf("MoveFrom failed: %v", err)
	}
	if a.Get() != 11 || clone.Valid() {
		t.Fatalf("after MoveFrom a=%d clone=%d", a.Get(), clone.Get())
	}
	if err := a.MoveFrom(a); err != nil {
		t.Fatalf("MoveFrom(self) failed: %v", err)
	}

	a.Close()
	b.Close()
	clone.Close()
	// a released null on MoveFrom, then 11; b released 1; clone released null.
	if !equalInts(audit.released, []int{0, 11, 1, 0}) {
		t.Fatalf("released = %v, want [0 11 1 0]", audit.released)
	}
}

func TestDuplicable_Swap(t *testing.T) {
	logA, logB := &auditLog{}, &auditLog{}
	a := NewDuplicable[int, Zero[int]](1, logA.release, func(v int) (int, error) { return v + 100, nil })
	b := NewDuplicable[int, Zero[int]](2, logB.release, func(v int) (int, error) { return v + 200, nil })

	SwapDuplicable(a, b)
	clone, _ := a.Clone()
	if a.Get() != 2 || clone.Get() != 202 {
		t.Fatalf("a=%d clone=%d, want 2 and 202", a.Get(), clone.Get())
	}

	SwapDuplicable(a, b)
	if a.Get() != 1 || b.Get() != 2 {
		t.Fatalf("double swap changed state: a=%d b=%d", a.Get(), b.Get())
	}

	a.Close()
	b.Close()
	clone.Close()
	if !equalInts(logA.released, []int{1}) || !equalInts(logB.released, []int{2, 202}) {
		t.Fatalf("logA=%v logB=%v", logA.released, logB.released)
	}
}

func TestDuplicable_PointerHandles(t *testing.T) {
	type conn struct{ open bool }
	release := func(c *conn) error {
		if c != nil {
			c.open = false
		}
		return nil
	}
	dup := func(c *conn) (*conn, error) {
		if c == nil {
			return nil, nil
		}
		return &conn{open: c.open}, nil
	}

	a := NewDuplicable[*conn, Zero[*conn]](&conn{open: true}, release, dup)
	b, err := a.Clone()
	if err != nil {
		t.Fatalf("Clone failed: %v", err)
	}

	first := a.Get()
	a.Close()
	if first.open {
		t.Fatal("original not released")
	}
	if !b.Get().open {
		t.Fatal("releasing the original affected the duplicate")
	}
	b.Close()
	if a.Valid() || b.Valid() {
		t.Fatal("closed guards should be empty")
	}
}
