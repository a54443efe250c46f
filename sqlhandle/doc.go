// Package sqlhandle guards database/sql cursors, transactions and
// connections.
//
// Rows and transactions are owned by unique guards. A transaction guard
// rolls back on Close unless Commit has taken the transaction out of it:
//
//	tx, err := sqlhandle.Begin(ctx, db, nil)
//	if err != nil {
//	    return err
//	}
//	defer tx.Close() // rollback unless committed
//
//	if _, err := tx.Get().ExecContext(ctx, stmt); err != nil {
//	    return err
//	}
//	return sqlhandle.Commit(tx)
//
// Connections are duplicable: cloning a connection guard checks out another
// connection from the same pool.
package sqlhandle
