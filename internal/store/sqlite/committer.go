package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// ErrRowNotFound is returned when an update targets a missing row.
var ErrRowNotFound = errors.New("sqlite: row not found")

// Committer applies plans inside a single SQL transaction.
type Committer struct {
	db *sql.DB
}

func NewCommitter(db *sql.DB) *Committer {
	return &Committer{db: db}
}

func (c *Committer) Apply(ctx context.Context, plan *commitplan.Plan) (retErr error) {
	if plan == nil || plan.IsEmpty() {
		return nil
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	for _, w := range plan.Writes() {
		if err := execWrite(ctx, tx, w); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func execWrite(ctx context.Context, tx *sql.Tx, w *commitplan.Write) error {
	query, args, err := statement(w)
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s %s: %w", w.Op, w.Table, err)
	}
	if w.Op == commitplan.OpUpdate {
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%s %s: %w", w.Op, w.Table, err)
		}
		if n == 0 {
			return fmt.Errorf("update %s %v: %w", w.Table, w.Key(), ErrRowNotFound)
		}
	}
	return nil
}

// statement renders a write as SQL. Columns are sorted so the text is stable.
func statement(w *commitplan.Write) (string, []interface{}, error) {
	cols := make([]string, 0, len(w.Values))
	for col := range w.Values {
		if w.Op == commitplan.OpUpdate && col == w.KeyColumn {
			continue
		}
		cols = append(cols, col)
	}
	sort.Strings(cols)

	args := make([]interface{}, 0, len(w.Values))
	for _, col := range cols {
		args = append(args, bindValue(w.Values[col]))
	}

	switch w.Op {
	case commitplan.OpInsert:
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
		return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", w.Table, strings.Join(cols, ", "), placeholders), args, nil
	case commitplan.OpUpdate:
		if len(cols) == 0 {
			return "", nil, fmt.Errorf("update %s: no columns", w.Table)
		}
		sets := make([]string, len(cols))
		for i, col := range cols {
			sets[i] = col + " = ?"
		}
		args = append(args, w.Key())
		return fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", w.Table, strings.Join(sets, ", "), w.KeyColumn), args, nil
	default:
		return "", nil, fmt.Errorf("unknown op %q for table %s", w.Op, w.Table)
	}
}

// bindValue stores timestamps as RFC3339Nano text, the same format the read model parses.
func bindValue(v interface{}) interface{} {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano)
	case *time.Time:
		if t == nil {
			return nil
		}
		return t.UTC().Format(time.RFC3339Nano)
	case *float64:
		if t == nil {
			return nil
		}
		return *t
	case *string:
		if t == nil {
			return nil
		}
		return *t
	}
	return v
}
