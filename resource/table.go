package resource

import (
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/handleguard/errors"
	"github.com/wippyai/handleguard/handle"
)

// Table stores resources in a LocalBackend and notifies observers of
// lifecycle events. Table is safe for concurrent use; guards over its handles
// are not.
type Table struct {
	backend   *LocalBackend
	observers []Observer
	obsMu     sync.RWMutex
	closed    bool
	closeMu   sync.RWMutex
}

// NewTable creates a new table with a LocalBackend.
func NewTable() *Table {
	return &Table{
		backend: NewLocalBackend(),
	}
}

// Insert adds a value and returns its handle, or 0 if the table is closed.
func (t *Table) Insert(typeID uint32, value any) Handle {
	if t.isClosed() {
		return 0
	}

	h, err := t.backend.Create(typeID, value)
	if err != nil {
		return 0
	}

	t.notify(Event{
		Type:   EventCreated,
		Handle: h,
		TypeID: typeID,
		Value:  value,
	})

	return h
}

// Get retrieves a value by handle.
func (t *Table) Get(h Handle) (any, bool) {
	return t.backend.Get(h)
}

// GetTyped retrieves a value only if it matches the expected type.
func (t *Table) GetTyped(h Handle, typeID uint32) (any, bool) {
	actualTypeID, ok := t.backend.TypeID(h)
	if !ok || actualTypeID != typeID {
		return nil, false
	}
	return t.backend.Get(h)
}

// Remove drops a resource and returns (value, true) if found.
// Values implementing Dropper are dropped.
func (t *Table) Remove(h Handle) (any, bool) {
	typeID, _ := t.backend.TypeID(h)
	value, ok := t.backend.Drop(h)
	if !ok {
		return nil, false
	}

	if d, ok := value.(Dropper); ok {
		d.Drop()
	}

	t.notify(Event{
		Type:   EventDropped,
		Handle: h,
		TypeID: typeID,
		Value:  value,
	})

	return value, true
}

// Duplicate stores the value behind h under a new handle with the same type
// ID. Values implementing Cloner are cloned; others are shared. A Dropper
// that is not a Cloner cannot be shared and is refused. Duplicating handle 0
// yields 0.
func (t *Table) Duplicate(h Handle) (Handle, error) {
	if h == 0 {
		return 0, nil
	}
	if t.isClosed() {
		return 0, ErrClosed
	}

	typeID, ok := t.backend.TypeID(h)
	if !ok {
		return 0, errors.InvalidHandle(errors.PhaseLookup, handle.TypeName[Handle](), h)
	}
	value, ok := t.backend.Get(h)
	if !ok {
		return 0, errors.InvalidHandle(errors.PhaseLookup, handle.TypeName[Handle](), h)
	}

	if c, ok := value.(Cloner); ok {
		cloned, err := c.Clone()
		if err != nil {
			return 0, errors.New(errors.PhaseDuplicate, errors.KindCallback).
				HandleType(handle.TypeName[Handle]()).
				Value(h).
				Detail("clone resource value").
				Cause(err).
				Build()
		}
		value = cloned
	} else if _, ok := value.(Dropper); ok {
		return 0, errors.Unsupported(errors.PhaseDuplicate, "sharing a droppable resource value without Cloner")
	}

	dup, err := t.backend.Create(typeID, value)
	if err != nil {
		if d, ok := value.(Dropper); ok {
			d.Drop()
		}
		return 0, err
	}

	handle.Logger().Debug("resource duplicated",
		zap.Uint32("source", uint32(h)),
		zap.Uint32("handle", uint32(dup)),
		zap.Uint32("type_id", typeID))

	t.notify(Event{
		Type:   EventDuplicated,
		Handle: dup,
		Source: h,
		TypeID: typeID,
		Value:  value,
	})

	return dup, nil
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of active resources.
func (t *Table) Len() int {
	return t.backend.Len()
}

// Each iterates over all active resources.
func (t *Table) Each(fn func(Handle, uint32, any) bool) {
	t.backend.Each(fn)
}

// Clear drops all resources.
func (t *Table) Clear() {
	// Collect handles first to avoid holding lock during Remove
	var handles []Handle
	t.backend.Each(func(h Handle, typeID uint32, value any) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Remove(h)
	}
}

// Close releases all resources and stops accepting operations.
// Guards still holding handles of a closed table release them as no-ops.
func (t *Table) Close() error {
	t.closeMu.Lock()
	t.closed = true
	t.closeMu.Unlock()

	return t.backend.Close()
}

// Backend returns the underlying storage.
func (t *Table) Backend() Backend {
	return t.backend
}

func (t *Table) isClosed() bool {
	t.closeMu.RLock()
	defer t.closeMu.RUnlock()
	return t.closed
}

// release removes h for a guard. Handle 0 and handles of a closed table are
// ignored; any other unknown handle was released twice.
func (t *Table) release(h Handle) error {
	if h == 0 || t.isClosed() {
		return nil
	}
	if _, ok := t.Remove(h); !ok {
		return errors.NotFound(errors.PhaseRelease, "resource handle", strconv.FormatUint(uint64(h), 10))
	}
	return nil
}

func (t *Table) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnResourceEvent(e)
	}
}
