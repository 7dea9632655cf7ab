package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseStatus tracks how far an expense has been paid.
type ExpenseStatus string

const (
	ExpensePlanned ExpenseStatus = "planned"
	ExpenseDeposit ExpenseStatus = "deposit"
	ExpensePaid    ExpenseStatus = "paid"
)

// Expense is one cost line of a budget scenario.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// ScenarioID references the owning BudgetScenario.
	// The reference is by ID only; the scenario owns no embedded copy.
	ScenarioID string `json:"scenarioId" validate:"notblank"`

	// Title is the short name of the cost (e.g., "Venue deposit").
	Title string `json:"title" validate:"notblank"`

	Description string `json:"description,omitempty"`

	// Category is free text used for grouping (e.g., "Flowers", "Music").
	Category string `json:"category" validate:"notblank"`

	// Amount is the full cost. Never negative.
	Amount decimal.Decimal `json:"amount" validate:"nonnegative"`

	// PaidAmount tracks partial payments. Nil means no payment was recorded
	// explicitly; see budget.EffectivePaid for how it is interpreted.
	PaidAmount *decimal.Decimal `json:"paidAmount,omitempty" validate:"omitnil,nonnegative"`

	Status ExpenseStatus `json:"status" validate:"oneof=planned deposit paid"`

	// VendorID optionally links the expense to a Vendor.
	VendorID string `json:"vendorId,omitempty"`

	DueDate *time.Time `json:"dueDate,omitempty"`
	PaidAt  *time.Time `json:"paidAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ExpensePatch describes a partial update of an expense.
type ExpensePatch struct {
	ScenarioID      *string          `json:"scenarioId,omitempty" validate:"omitnil,notblank"`
	Title           *string          `json:"title,omitempty" validate:"omitnil,notblank"`
	Description     *string          `json:"description,omitempty"`
	Category        *string          `json:"category,omitempty" validate:"omitnil,notblank"`
	Amount          *decimal.Decimal `json:"amount,omitempty" validate:"omitnil,nonnegative"`
	PaidAmount      *decimal.Decimal `json:"paidAmount,omitempty" validate:"omitnil,nonnegative"`
	ClearPaidAmount bool             `json:"clearPaidAmount,omitempty"`
	Status          *ExpenseStatus   `json:"status,omitempty" validate:"omitnil,oneof=planned deposit paid"`
	VendorID        *string          `json:"vendorId,omitempty"`
	DueDate         *time.Time       `json:"dueDate,omitempty"`
	ClearDueDate    bool             `json:"clearDueDate,omitempty"`
	PaidAt          *time.Time       `json:"paidAt,omitempty"`
	ClearPaidAt     bool             `json:"clearPaidAt,omitempty"`
}
