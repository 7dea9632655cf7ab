// Package models defines the domain records of a wedding project.
//
// # Records
//
// The project is a singleton; every other record implicitly belongs to it:
//   - Project: name, wedding date, owner's note and currency
//   - Task: a to-do item with status, priority and assignee
//   - Guest: an invitee with RSVP state and an optional companion
//   - BudgetScenario: a named budget variant, at most one active at a time
//   - Expense: a cost line that belongs to exactly one scenario
//   - Vendor: a service provider being considered or booked
//   - TimelineEvent: a dated entry on the wedding-day schedule
//   - Note: free text with optional tags
//
// # Conventions
//
//  1. IDs are UUID strings assigned by the store; relationships use ID strings, never pointers.
//  2. CreatedAt/UpdatedAt are assigned by the store, never by callers.
//  3. Optional dates are *time.Time; money is decimal.Decimal.
//  4. Partial updates are expressed with *Patch types: nil fields are left untouched.
//  5. Input rules live in `validate` struct tags (go-playground/validator). Enum
//     fields list their values with oneof; custom tags such as nonnegative
//     and opt_email are registered by the service layer.
package models
