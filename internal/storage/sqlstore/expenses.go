package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/wedplan/internal/models"
)

const expenseColumns = `id, scenario_id, title, description, category, amount, paid_amount, status, vendor_id,
	due_date, paid_at, created_at, updated_at`

func scanExpense(row scanner) (*models.Expense, error) {
	e := &models.Expense{}
	var paidAmount decimal.NullDecimal
	var dueDate, paidAt sql.NullInt64
	var createdAt, updatedAt int64

	if err := row.Scan(&e.ID, &e.ScenarioID, &e.Title, &e.Description, &e.Category, &e.Amount, &paidAmount,
		&e.Status, &e.VendorID, &dueDate, &paidAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if paidAmount.Valid {
		e.PaidAmount = &paidAmount.Decimal
	}
	e.DueDate = timePtr(dueDate)
	e.PaidAt = timePtr(paidAt)
	e.CreatedAt = fromMillis(createdAt)
	e.UpdatedAt = fromMillis(updatedAt)
	return e, nil
}

func nullDecimal(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

// ListExpenses returns expenses newest first. A non-empty scenarioID limits
// the result to that scenario.
func (s *Store) ListExpenses(ctx context.Context, scenarioID string) ([]*models.Expense, error) {
	query := "SELECT " + expenseColumns + " FROM expenses"
	var args []any
	if scenarioID != "" {
		query += " WHERE scenario_id = ?"
		args = append(args, scenarioID)
	}
	query += " ORDER BY created_at DESC, id"

	expenses, err := queryAll(ctx, s.db, s.q(query), scanExpense, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// GetExpense retrieves an expense by ID, or nil if it does not exist.
func (s *Store) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	e, err := scanExpense(s.db.QueryRowContext(ctx, s.q("SELECT "+expenseColumns+" FROM expenses WHERE id = ?"), id))
	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return e, nil
}

// CreateExpense persists a new expense.
func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	return s.insertExpense(ctx, s.db, expense)
}

func (s *Store) insertExpense(ctx context.Context, db queryer, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	now := s.timestamp()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	_, err := db.ExecContext(ctx, s.q(`
		INSERT INTO expenses (`+expenseColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		expense.ID, expense.ScenarioID, expense.Title, expense.Description, expense.Category,
		expense.Amount.String(), nullDecimal(expense.PaidAmount), expense.Status, expense.VendorID,
		nullMillis(expense.DueDate), nullMillis(expense.PaidAt), toMillis(now), toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// UpdateExpense applies the non-nil fields of patch.
func (s *Store) UpdateExpense(ctx context.Context, id string, patch models.ExpensePatch) error {
	u := newUpdate("expenses")
	if patch.ScenarioID != nil {
		u.set("scenario_id", *patch.ScenarioID)
	}
	if patch.Title != nil {
		u.set("title", *patch.Title)
	}
	if patch.Description != nil {
		u.set("description", *patch.Description)
	}
	if patch.Category != nil {
		u.set("category", *patch.Category)
	}
	if patch.Amount != nil {
		u.set("amount", patch.Amount.String())
	}
	if patch.ClearPaidAmount {
		u.set("paid_amount", nil)
	} else if patch.PaidAmount != nil {
		u.set("paid_amount", patch.PaidAmount.String())
	}
	if patch.Status != nil {
		u.set("status", *patch.Status)
	}
	if patch.VendorID != nil {
		u.set("vendor_id", *patch.VendorID)
	}
	if patch.ClearDueDate {
		u.set("due_date", nil)
	} else if patch.DueDate != nil {
		u.set("due_date", toMillis(*patch.DueDate))
	}
	if patch.ClearPaidAt {
		u.set("paid_at", nil)
	} else if patch.PaidAt != nil {
		u.set("paid_at", toMillis(*patch.PaidAt))
	}

	return s.exec(ctx, s.db, u, id)
}

// DeleteExpense removes an expense.
func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "expenses", id)
}
