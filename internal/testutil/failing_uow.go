package testutil

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/db"
)

// FailOnNthExecUoW runs transactions like db.SQLiteUnitOfWork but makes the
// FailOn-th write return Err. Writes are counted from 1 per transaction; reads
// pass through. Tests use it to check that completing a lesson or seeding the
// store leaves nothing behind when a later write fails.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &writeFailer{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

type writeFailer struct {
	db.DBTX
	writes atomic.Int32
	failOn int32
	err    error
}

func (w *writeFailer) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if w.writes.Add(1) == w.failOn {
		return nil, w.err
	}
	return w.DBTX.ExecContext(ctx, query, args...)
}
