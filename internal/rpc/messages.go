package rpc

import (
	"time"

	"github.com/mmynk/wedplan/internal/budget"
	"github.com/mmynk/wedplan/internal/dashboard"
	"github.com/mmynk/wedplan/internal/models"
)

// Auth

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token   string      `json:"token"`
	Session SessionInfo `json:"session"`
}

type RenewRequest struct{}

type RenewResponse struct {
	Token   string      `json:"token"`
	Session SessionInfo `json:"session"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type GetSessionRequest struct{}

type GetSessionResponse struct {
	Session SessionInfo `json:"session"`
}

// SessionInfo describes a session as seen by the client.
type SessionInfo struct {
	IssuedAt  time.Time `json:"issuedAt"`
	RenewedAt time.Time `json:"renewedAt"`
	// ExpiresAt is the absolute end of the session.
	ExpiresAt time.Time `json:"expiresAt"`
	// IdleExpiresAt is when the session ends unless renewed.
	IdleExpiresAt time.Time `json:"idleExpiresAt"`
	// RemainingSeconds counts down to the earlier of the two.
	RemainingSeconds int64 `json:"remainingSeconds"`
	// Warn is set during the last minute before expiry.
	Warn bool `json:"warn"`
}

// Project

type EnsureProjectRequest struct{}

type EnsureProjectResponse struct {
	Project *models.Project `json:"project"`
}

type GetProjectRequest struct{}

type GetProjectResponse struct {
	Project *models.Project `json:"project"`
}

type UpdateProjectRequest struct {
	Patch models.ProjectPatch `json:"patch"`
}

type UpdateProjectResponse struct {
	Project *models.Project `json:"project"`
}

// Tasks

type ListTasksRequest struct {
	Query      string              `json:"query,omitempty"`
	Status     models.TaskStatus   `json:"status,omitempty"`
	Priority   models.TaskPriority `json:"priority,omitempty"`
	AssignedTo models.TaskAssignee `json:"assignedTo,omitempty"`
}

type ListTasksResponse struct {
	Tasks []*models.Task `json:"tasks"`
}

type GetTaskRequest struct {
	ID string `json:"id"`
}

type GetTaskResponse struct {
	Task *models.Task `json:"task"`
}

// CreateTaskRequest carries the new task. ID and timestamps are ignored.
type CreateTaskRequest struct {
	Task models.Task `json:"task"`
}

type CreateTaskResponse struct {
	Task *models.Task `json:"task"`
}

type UpdateTaskRequest struct {
	ID    string           `json:"id"`
	Patch models.TaskPatch `json:"patch"`
}

type UpdateTaskResponse struct {
	Task *models.Task `json:"task"`
}

type DeleteTaskRequest struct {
	ID string `json:"id"`
}

type DeleteTaskResponse struct{}

// Guests

type ListGuestsRequest struct {
	Query string            `json:"query,omitempty"`
	Side  models.GuestSide  `json:"side,omitempty"`
	RSVP  models.RSVPStatus `json:"rsvp,omitempty"`
}

type ListGuestsResponse struct {
	Guests []*models.Guest `json:"guests"`
}

type GetGuestRequest struct {
	ID string `json:"id"`
}

type GetGuestResponse struct {
	Guest *models.Guest `json:"guest"`
}

type CreateGuestRequest struct {
	Guest models.Guest `json:"guest"`
}

type CreateGuestResponse struct {
	Guest *models.Guest `json:"guest"`
}

type UpdateGuestRequest struct {
	ID    string            `json:"id"`
	Patch models.GuestPatch `json:"patch"`
}

type UpdateGuestResponse struct {
	Guest *models.Guest `json:"guest"`
}

type DeleteGuestRequest struct {
	ID string `json:"id"`
}

type DeleteGuestResponse struct{}

// Expenses

// ListExpensesRequest filters expenses. An empty ScenarioID lists the
// expenses of every scenario.
type ListExpensesRequest struct {
	ScenarioID string               `json:"scenarioId,omitempty"`
	Query      string               `json:"query,omitempty"`
	Status     models.ExpenseStatus `json:"status,omitempty"`
	Category   string               `json:"category,omitempty"`
}

// ListExpensesResponse also carries the budget summary of the returned
// expenses.
type ListExpensesResponse struct {
	Expenses []*models.Expense `json:"expenses"`
	Summary  budget.Summary    `json:"summary"`
}

type GetExpenseRequest struct {
	ID string `json:"id"`
}

type GetExpenseResponse struct {
	Expense *models.Expense `json:"expense"`
}

type CreateExpenseRequest struct {
	Expense models.Expense `json:"expense"`
}

type CreateExpenseResponse struct {
	Expense *models.Expense `json:"expense"`
}

type UpdateExpenseRequest struct {
	ID    string              `json:"id"`
	Patch models.ExpensePatch `json:"patch"`
}

type UpdateExpenseResponse struct {
	Expense *models.Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ID string `json:"id"`
}

type DeleteExpenseResponse struct{}

type ListExpenseCategoriesRequest struct {
	ScenarioID string `json:"scenarioId,omitempty"`
}

type ListExpenseCategoriesResponse struct {
	Categories []string `json:"categories"`
}

// Scenarios

type ListScenariosRequest struct{}

type ListScenariosResponse struct {
	Scenarios []*models.BudgetScenario `json:"scenarios"`
}

type GetScenarioRequest struct {
	ID string `json:"id"`
}

type GetScenarioResponse struct {
	Scenario *models.BudgetScenario `json:"scenario"`
}

type GetActiveScenarioRequest struct{}

// GetActiveScenarioResponse has a nil Scenario when none is active.
type GetActiveScenarioResponse struct {
	Scenario *models.BudgetScenario `json:"scenario"`
}

type CreateScenarioRequest struct {
	Scenario models.BudgetScenario `json:"scenario"`
}

type CreateScenarioResponse struct {
	Scenario *models.BudgetScenario `json:"scenario"`
}

type UpdateScenarioRequest struct {
	ID    string               `json:"id"`
	Patch models.ScenarioPatch `json:"patch"`
}

type UpdateScenarioResponse struct {
	Scenario *models.BudgetScenario `json:"scenario"`
}

type ActivateScenarioRequest struct {
	ID string `json:"id"`
}

type ActivateScenarioResponse struct {
	Scenario *models.BudgetScenario `json:"scenario"`
}

type CloneScenarioRequest struct {
	SourceID string `json:"sourceId"`
	Name     string `json:"name"`
}

type CloneScenarioResponse struct {
	Scenario *models.BudgetScenario `json:"scenario"`
	Copied   int                    `json:"copied"`
}

// DeleteScenarioRequest deletes a scenario. Its expenses are deleted too
// unless ReassignTo names another scenario to move them to.
type DeleteScenarioRequest struct {
	ID         string `json:"id"`
	ReassignTo string `json:"reassignTo,omitempty"`
}

type DeleteScenarioResponse struct{}

type CompareScenariosRequest struct{}

type CompareScenariosResponse struct {
	Scenarios []budget.ScenarioComparison `json:"scenarios"`
}

// Vendors

type ListVendorsRequest struct {
	Query    string              `json:"query,omitempty"`
	Status   models.VendorStatus `json:"status,omitempty"`
	Category string              `json:"category,omitempty"`
}

// ListVendorsResponse lists matching vendors and the categories of all
// vendors.
type ListVendorsResponse struct {
	Vendors    []*models.Vendor `json:"vendors"`
	Categories []string         `json:"categories"`
}

type GetVendorRequest struct {
	ID string `json:"id"`
}

type GetVendorResponse struct {
	Vendor *models.Vendor `json:"vendor"`
}

type CreateVendorRequest struct {
	Vendor models.Vendor `json:"vendor"`
}

type CreateVendorResponse struct {
	Vendor *models.Vendor `json:"vendor"`
}

type UpdateVendorRequest struct {
	ID    string             `json:"id"`
	Patch models.VendorPatch `json:"patch"`
}

type UpdateVendorResponse struct {
	Vendor *models.Vendor `json:"vendor"`
}

type DeleteVendorRequest struct {
	ID string `json:"id"`
}

type DeleteVendorResponse struct{}

// Timeline

type ListTimelineEventsRequest struct {
	Query string `json:"query,omitempty"`
	// When is "", "upcoming" or "past".
	When string `json:"when,omitempty"`
}

type ListTimelineEventsResponse struct {
	Events []*models.TimelineEvent `json:"events"`
}

type GetTimelineEventRequest struct {
	ID string `json:"id"`
}

type GetTimelineEventResponse struct {
	Event *models.TimelineEvent `json:"event"`
}

type CreateTimelineEventRequest struct {
	Event models.TimelineEvent `json:"event"`
}

type CreateTimelineEventResponse struct {
	Event *models.TimelineEvent `json:"event"`
}

type UpdateTimelineEventRequest struct {
	ID    string                    `json:"id"`
	Patch models.TimelineEventPatch `json:"patch"`
}

type UpdateTimelineEventResponse struct {
	Event *models.TimelineEvent `json:"event"`
}

type DeleteTimelineEventRequest struct {
	ID string `json:"id"`
}

type DeleteTimelineEventResponse struct{}

// Notes

type ListNotesRequest struct {
	Query string `json:"query,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// ListNotesResponse lists matching notes and the tags used by all notes.
type ListNotesResponse struct {
	Notes []*models.Note `json:"notes"`
	Tags  []string       `json:"tags"`
}

type GetNoteRequest struct {
	ID string `json:"id"`
}

type GetNoteResponse struct {
	Note *models.Note `json:"note"`
}

type CreateNoteRequest struct {
	Note models.Note `json:"note"`
}

type CreateNoteResponse struct {
	Note *models.Note `json:"note"`
}

type UpdateNoteRequest struct {
	ID    string           `json:"id"`
	Patch models.NotePatch `json:"patch"`
}

type UpdateNoteResponse struct {
	Note *models.Note `json:"note"`
}

type DeleteNoteRequest struct {
	ID string `json:"id"`
}

type DeleteNoteResponse struct{}

// Dashboard

// GetDashboardRequest selects the scenario whose expenses feed the budget
// figures. Empty means all expenses.
type GetDashboardRequest struct {
	ScenarioID string `json:"scenarioId,omitempty"`
}

type GetDashboardResponse struct {
	Stats dashboard.Stats `json:"stats"`
}
