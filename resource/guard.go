package resource

import (
	"github.com/wippyai/handleguard/errors"
	"github.com/wippyai/handleguard/handle"
)

// Null is the sentinel naming handle 0.
type Null = handle.Zero[Handle]

// Owned is a duplicable guard over a table handle.
type Owned = handle.Duplicable[Handle, Null]

// Unique is a unique guard whose release action is bound to a table.
type Unique = handle.Unique[Handle, Null, Remover]

// Remover releases handles by removing them from its table.
// The zero Remover does nothing.
type Remover struct {
	table *Table
}

// Release removes h from the table.
func (r Remover) Release(h Handle) error {
	if r.table == nil {
		return nil
	}
	return r.table.release(h)
}

// Remover returns the release action for handles of t.
func (t *Table) Remover() Remover {
	return Remover{table: t}
}

// Own transfers ownership of h to a duplicable guard. Closing the guard
// removes the handle; cloning it duplicates the resource.
func (t *Table) Own(h Handle) *Owned {
	return handle.NewDuplicable[Handle, Null](h, t.release, t.Duplicate)
}

// OwnUnique transfers ownership of h to a unique guard.
func (t *Table) OwnUnique(h Handle) *Unique {
	return handle.New[Handle, Null](h, t.Remover())
}

// InsertOwned inserts value and returns a duplicable guard for its handle.
// It fails without creating a guard when the table is closed.
func (t *Table) InsertOwned(typeID uint32, value any) (*Owned, error) {
	return handle.NewDuplicableFrom[Handle, Null](func() (Handle, error) {
		h := t.Insert(typeID, value)
		if h == 0 {
			return 0, errors.Closed(errors.PhaseOpen, "resource table")
		}
		return h, nil
	}, t.release, t.Duplicate)
}
