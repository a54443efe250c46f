package sqlhandle

import (
	"context"
	"database/sql"
	stderrors "errors"

	"go.uber.org/zap"

	"github.com/wippyai/handleguard/errors"
	"github.com/wippyai/handleguard/handle"
)

// Querier is implemented by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// RowsCloser closes result sets. A nil *sql.Rows is ignored.
type RowsCloser struct{}

func (RowsCloser) Release(r *sql.Rows) error {
	if r == nil {
		return nil
	}
	return r.Close()
}

// Rows is a unique guard over a result set.
type Rows = handle.Unique[*sql.Rows, handle.Zero[*sql.Rows], RowsCloser]

// Query runs query and returns a guard over its result set. A failed query
// produces no guard.
func Query(ctx context.Context, q Querier, query string, args ...any) (*Rows, error) {
	return handle.NewFrom[*sql.Rows, handle.Zero[*sql.Rows]](func() (*sql.Rows, error) {
		return q.QueryContext(ctx, query, args...)
	}, RowsCloser{})
}

// Rollback rolls back transactions. A nil or already finished transaction is
// ignored.
type Rollback struct{}

func (Rollback) Release(tx *sql.Tx) error {
	if tx == nil {
		return nil
	}
	err := tx.Rollback()
	if stderrors.Is(err, sql.ErrTxDone) {
		return nil
	}
	if err == nil {
		handle.Logger().Debug("transaction rolled back")
	}
	return err
}

// Tx is a unique guard over a transaction that rolls back on Close.
type Tx = handle.Unique[*sql.Tx, handle.Zero[*sql.Tx], Rollback]

// Begin starts a transaction owned by a guard.
func Begin(ctx context.Context, db *sql.DB, opts *sql.TxOptions) (*Tx, error) {
	return handle.NewFrom[*sql.Tx, handle.Zero[*sql.Tx]](func() (*sql.Tx, error) {
		return db.BeginTx(ctx, opts)
	}, Rollback{})
}

// Commit takes the transaction out of g and commits it. g is left empty,
// so a deferred Close afterwards does nothing.
func Commit(g *Tx) error {
	tx := g.Detach()
	if tx == nil {
		return errors.InvalidHandle(errors.PhaseTransfer, handle.TypeName[*sql.Tx](), nil)
	}
	if err := tx.Commit(); err != nil {
		handle.Logger().Debug("transaction commit failed", zap.Error(err))
		return errors.Wrap(errors.PhaseTransfer, errors.KindCallback, err, "commit")
	}
	return nil
}

// Conn is a duplicable guard over a dedicated connection.
type Conn = handle.Duplicable[*sql.Conn, handle.Zero[*sql.Conn]]

// Checkout reserves a connection from db. Clones of the returned guard
// reserve further connections using ctx.
func Checkout(ctx context.Context, db *sql.DB) (*Conn, error) {
	return handle.NewDuplicableFrom[*sql.Conn, handle.Zero[*sql.Conn]](
		func() (*sql.Conn, error) {
			return db.Conn(ctx)
		},
		closeConn,
		func(c *sql.Conn) (*sql.Conn, error) {
			if c == nil {
				return nil, nil
			}
			return db.Conn(ctx)
		},
	)
}

func closeConn(c *sql.Conn) error {
	if c == nil {
		return nil
	}
	return c.Close()
}
