package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/mmynk/wedplan/internal/storage"
)

// update collects the SET clauses of a partial update.
type update struct {
	table string
	sets  []string
	args  []any
}

func newUpdate(table string) *update {
	return &update{table: table}
}

// set assigns value to column.
func (u *update) set(column string, value any) {
	u.sets = append(u.sets, column+" = ?")
	u.args = append(u.args, value)
}

// setExpr appends a raw assignment such as "col = COALESCE(col, ?)".
func (u *update) setExpr(expr string, args ...any) {
	u.sets = append(u.sets, expr)
	u.args = append(u.args, args...)
}

// exec runs the update against id, always refreshing updated_at.
// Returns storage.ErrNotFound if no row matched.
func (s *Store) exec(ctx context.Context, db queryer, u *update, id string) error {
	sets := append(u.sets, "updated_at = ?")
	args := append(u.args, toMillis(s.timestamp()), id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", u.table, strings.Join(sets, ", "))

	res, err := db.ExecContext(ctx, s.q(query), args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", u.table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", u.table, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", u.table, id, storage.ErrNotFound)
	}
	return nil
}
