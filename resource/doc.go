// Package resource provides an in-process handle table whose handles can be
// owned by guards from the handle package.
//
// Resources are Go values stored in a table and named by small integer
// handles. Handle 0 is reserved and always invalid, which makes it the null
// sentinel for guards.
//
// # Handle Table
//
// The Table maps integer handles to Go values:
//
//	table := resource.NewTable()
//
//	// Insert a value, get a handle
//	h := table.Insert(typeID, myValue)
//
//	// Retrieve value by handle
//	value, ok := table.Get(h)
//
//	// Remove and get value
//	value, ok := table.Remove(h)
//
//	// New handle for the same (or cloned) value
//	dup, err := table.Duplicate(h)
//
// # Guarded Ownership
//
// Own wraps a handle in a duplicable guard whose release removes the handle
// from the table and whose duplicate calls Duplicate:
//
//	g := table.Own(table.Insert(FileTypeID, file))
//	defer g.Close()
//
//	copy, err := g.Clone() // independent handle, removed by its own Close
//
// OwnUnique returns a unique guard whose release action is the Remover type,
// bound to the table at compile time.
//
// # Type Safety
//
// Handles are typed - each resource type gets a unique type ID:
//
//	const FileTypeID = 1
//	const SocketTypeID = 2
//
//	fileHandle := table.Insert(FileTypeID, file)
//	value, ok := table.GetTyped(fileHandle, FileTypeID)   // ok
//	value, ok := table.GetTyped(fileHandle, SocketTypeID) // !ok
//
// # Observers
//
// Register observers to track resource lifecycle events:
//
//	table.Subscribe(observer)
//
// Observers receive EventCreated, EventDuplicated and EventDropped.
//
// # Memory Management
//
// Values implementing Dropper have Drop called when their handle is removed
// or the table is closed. Values implementing Cloner are cloned by Duplicate;
// other values are shared between the original and duplicate handles. A
// Dropper that is not a Cloner cannot be shared, so Duplicate refuses it.
package resource
