package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/wedplan/internal/models"
)

func TestValidateModels(t *testing.T) {
	negative := decimal.NewFromInt(-5)
	tests := []struct {
		name    string
		check   func() error
		wantMsg string // empty means the value is valid
	}{
		{
			name:    "task title too short",
			check:   func() error { return validateNewTask(&models.Task{Title: "x"}) },
			wantMsg: "title must be at least 2 characters",
		},
		{
			name:    "task title blank",
			check:   func() error { return validateNewTask(&models.Task{Title: "   "}) },
			wantMsg: "title is required",
		},
		{
			name:  "task defaults fill enums",
			check: func() error { return validateNewTask(&models.Task{Title: "Book venue"}) },
		},
		{
			name: "task unknown priority",
			check: func() error {
				return validateNewTask(&models.Task{Title: "Book venue", Priority: "urgent"})
			},
			wantMsg: `invalid priority "urgent"`,
		},
		{
			name:    "task patch empty title",
			check:   func() error { return validateTaskPatch(&models.TaskPatch{Title: ptr("")}) },
			wantMsg: "title is required",
		},
		{
			name:  "task patch without fields",
			check: func() error { return validateTaskPatch(&models.TaskPatch{}) },
		},
		{
			name: "guest bad email",
			check: func() error {
				return validateNewGuest(&models.Guest{FirstName: "Ola", Side: models.SideBride, Email: "ola@"})
			},
			wantMsg: `invalid email address "ola@"`,
		},
		{
			name:    "guest missing side",
			check:   func() error { return validateNewGuest(&models.Guest{FirstName: "Ola"}) },
			wantMsg: `invalid side ""`,
		},
		{
			name: "guest patch clears email",
			check: func() error {
				return validateGuestPatch(&models.GuestPatch{Email: ptr("")})
			},
		},
		{
			name: "expense negative amount",
			check: func() error {
				return validateNewExpense(&models.Expense{ScenarioID: "s", Title: "Cake", Category: "food", Amount: negative})
			},
			wantMsg: "amount must not be negative",
		},
		{
			name: "expense negative paid amount",
			check: func() error {
				return validateNewExpense(&models.Expense{
					ScenarioID: "s", Title: "Cake", Category: "food",
					Amount: decimal.NewFromInt(10), PaidAmount: &negative,
				})
			},
			wantMsg: "paidAmount must not be negative",
		},
		{
			name: "expense zero amount",
			check: func() error {
				return validateNewExpense(&models.Expense{ScenarioID: "s", Title: "Cake", Category: "food"})
			},
		},
		{
			name:    "expense patch negative amount",
			check:   func() error { return validateExpensePatch(&models.ExpensePatch{Amount: &negative}) },
			wantMsg: "amount must not be negative",
		},
		{
			name:    "expense patch blank scenario",
			check:   func() error { return validateExpensePatch(&models.ExpensePatch{ScenarioID: ptr(" ")}) },
			wantMsg: "scenarioId is required",
		},
		{
			name: "vendor website without scheme",
			check: func() error {
				return validateNewVendor(&models.Vendor{Name: "Band", Category: "music", Website: "band.example"})
			},
			wantMsg: `invalid website URL "band.example"`,
		},
		{
			name: "vendor valid website",
			check: func() error {
				return validateNewVendor(&models.Vendor{Name: "Band", Category: "music", Website: "https://band.example"})
			},
		},
		{
			name: "timeline bad start time",
			check: func() error {
				return validateNewTimelineEvent(&models.TimelineEvent{Title: "Ceremony", EventDate: time.Now(), StartTime: "25:00"})
			},
			wantMsg: `startTime must be HH:MM, got "25:00"`,
		},
		{
			name:    "timeline missing date",
			check:   func() error { return validateNewTimelineEvent(&models.TimelineEvent{Title: "Ceremony"}) },
			wantMsg: "eventDate is required",
		},
		{
			name: "timeline patch zero date",
			check: func() error {
				return validateTimelineEventPatch(&models.TimelineEventPatch{EventDate: &time.Time{}})
			},
			wantMsg: "eventDate is required",
		},
		{
			name:    "note without content",
			check:   func() error { return validateNewNote(&models.Note{Title: "Ideas"}) },
			wantMsg: "content is required",
		},
		{
			name:    "scenario patch blank name",
			check:   func() error { return validateScenarioPatch(&models.ScenarioPatch{Name: ptr("")}) },
			wantMsg: "name is required",
		},
		{
			name:    "project currency length",
			check:   func() error { return validateProjectPatch(&models.ProjectPatch{Currency: ptr("ZLOTY")}) },
			wantMsg: `currency must be 3 characters long, got "ZLOTY"`,
		},
		{
			name:    "project currency letters",
			check:   func() error { return validateProjectPatch(&models.ProjectPatch{Currency: ptr("P1N")}) },
			wantMsg: `currency must contain only letters, got "P1N"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			if tt.wantMsg == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			var cerr *connect.Error
			if !errors.As(err, &cerr) {
				t.Fatalf("expected connect error, got %v", err)
			}
			if cerr.Code() != connect.CodeInvalidArgument {
				t.Errorf("expected InvalidArgument, got %v", cerr.Code())
			}
			if !strings.Contains(cerr.Message(), tt.wantMsg) {
				t.Errorf("expected message containing %q, got %q", tt.wantMsg, cerr.Message())
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	task := models.Task{Title: "Book venue"}
	if err := validateNewTask(&task); err != nil {
		t.Fatalf("validateNewTask failed: %v", err)
	}
	if task.Status != models.TaskTodo || task.Priority != models.PriorityMedium || task.AssignedTo != models.AssigneeBoth {
		t.Errorf("task defaults: got %q/%q/%q", task.Status, task.Priority, task.AssignedTo)
	}

	guest := models.Guest{FirstName: "Ola", Side: models.SideGroom}
	if err := validateNewGuest(&guest); err != nil {
		t.Fatalf("validateNewGuest failed: %v", err)
	}
	if guest.RSVP != models.RSVPNotSent {
		t.Errorf("rsvp: expected not_sent, got %q", guest.RSVP)
	}

	note := models.Note{Title: "Ideas", Content: "peonies", Tags: []string{" flowers", "flowers", ""}}
	if err := validateNewNote(&note); err != nil {
		t.Fatalf("validateNewNote failed: %v", err)
	}
	if len(note.Tags) != 1 || note.Tags[0] != "flowers" {
		t.Errorf("tags: expected [flowers], got %v", note.Tags)
	}
}
