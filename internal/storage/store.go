// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/wedplan/internal/models"
)

// ErrNotFound is returned by updates and multi-step operations that target
// a record which does not exist. Get methods return (nil, nil) instead.
var ErrNotFound = errors.New("record not found")

// ProjectStore persists the singleton wedding project.
type ProjectStore interface {
	// EnsureProject creates the project with defaults if it is missing,
	// otherwise refreshes its UpdatedAt. It returns the stored project.
	EnsureProject(ctx context.Context) (*models.Project, error)

	// GetProject returns nil if the project has not been created yet.
	GetProject(ctx context.Context) (*models.Project, error)

	// UpdateProject merges the patch, creating the project first if needed.
	UpdateProject(ctx context.Context, patch models.ProjectPatch) error
}

// TaskStore persists tasks, listed newest first.
type TaskStore interface {
	ListTasks(ctx context.Context) ([]*models.Task, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
	CreateTask(ctx context.Context, task *models.Task) error
	UpdateTask(ctx context.Context, id string, patch models.TaskPatch) error
	DeleteTask(ctx context.Context, id string) error
}

// GuestStore persists guests, listed by first name.
type GuestStore interface {
	ListGuests(ctx context.Context) ([]*models.Guest, error)
	GetGuest(ctx context.Context, id string) (*models.Guest, error)
	CreateGuest(ctx context.Context, guest *models.Guest) error
	UpdateGuest(ctx context.Context, id string, patch models.GuestPatch) error
	DeleteGuest(ctx context.Context, id string) error
}

// ExpenseStore persists expenses, listed newest first.
type ExpenseStore interface {
	// ListExpenses returns every expense when scenarioID is empty,
	// otherwise only the expenses of that scenario.
	ListExpenses(ctx context.Context, scenarioID string) ([]*models.Expense, error)
	GetExpense(ctx context.Context, id string) (*models.Expense, error)
	CreateExpense(ctx context.Context, expense *models.Expense) error
	UpdateExpense(ctx context.Context, id string, patch models.ExpensePatch) error
	DeleteExpense(ctx context.Context, id string) error
}

// DeleteScenarioOptions decides what happens to the expenses of a deleted
// scenario. The zero value deletes them together with the scenario.
type DeleteScenarioOptions struct {
	// ReassignTo moves the expenses to this scenario instead of deleting them.
	// The target must exist.
	ReassignTo string
}

// ScenarioStore persists budget scenarios and enforces that at most one of
// them is active.
type ScenarioStore interface {
	ListScenarios(ctx context.Context) ([]*models.BudgetScenario, error)
	GetScenario(ctx context.Context, id string) (*models.BudgetScenario, error)

	// GetActiveScenario returns the active scenario, or nil if none is active.
	// Should legacy data hold several active rows, the newest one wins.
	GetActiveScenario(ctx context.Context) (*models.BudgetScenario, error)

	// CreateScenario inserts a scenario; if it is active, every other scenario
	// is deactivated in the same transaction.
	CreateScenario(ctx context.Context, scenario *models.BudgetScenario) error

	// UpdateScenario merges the patch; activating deactivates the others
	// in the same transaction.
	UpdateScenario(ctx context.Context, id string, patch models.ScenarioPatch) error

	// ActivateScenario makes id the only active scenario.
	ActivateScenario(ctx context.Context, id string) error

	// CloneScenario copies a scenario and all of its expenses into a new,
	// inactive scenario named newName.
	CloneScenario(ctx context.Context, sourceID, newName string) (*models.BudgetScenario, error)

	// DeleteScenario removes the scenario and applies opts to its expenses.
	DeleteScenario(ctx context.Context, id string, opts DeleteScenarioOptions) error
}

// VendorStore persists vendors, listed newest first.
type VendorStore interface {
	ListVendors(ctx context.Context) ([]*models.Vendor, error)
	GetVendor(ctx context.Context, id string) (*models.Vendor, error)
	CreateVendor(ctx context.Context, vendor *models.Vendor) error
	UpdateVendor(ctx context.Context, id string, patch models.VendorPatch) error
	DeleteVendor(ctx context.Context, id string) error
}

// TimelineStore persists timeline events, listed by event date.
type TimelineStore interface {
	ListTimelineEvents(ctx context.Context) ([]*models.TimelineEvent, error)
	GetTimelineEvent(ctx context.Context, id string) (*models.TimelineEvent, error)
	CreateTimelineEvent(ctx context.Context, event *models.TimelineEvent) error
	UpdateTimelineEvent(ctx context.Context, id string, patch models.TimelineEventPatch) error
	DeleteTimelineEvent(ctx context.Context, id string) error
}

// NoteStore persists notes, listed newest first.
type NoteStore interface {
	ListNotes(ctx context.Context) ([]*models.Note, error)
	GetNote(ctx context.Context, id string) (*models.Note, error)
	CreateNote(ctx context.Context, note *models.Note) error
	UpdateNote(ctx context.Context, id string, patch models.NotePatch) error
	DeleteNote(ctx context.Context, id string) error
}

// Store defines the full set of persistence operations of the planner.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	ProjectStore
	TaskStore
	GuestStore
	ExpenseStore
	ScenarioStore
	VendorStore
	TimelineStore
	NoteStore

	// Close releases any resources held by the store.
	Close() error
}
