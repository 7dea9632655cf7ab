package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mmynk/wedplan/internal/models"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		fields []string
		want   bool
	}{
		{name: "empty term matches", term: "", fields: []string{"anything"}, want: true},
		{name: "blank term matches", term: "   ", fields: nil, want: true},
		{name: "case insensitive", term: "VENUE", fields: []string{"Book the venue"}, want: true},
		{name: "polish letters fold", term: "ŻANETA", fields: []string{"żaneta kowalska"}, want: true},
		{name: "decomposed accents", term: "caf\u00e9", fields: []string{"Cafe\u0301 Bloom"}, want: true},
		{name: "any field", term: "dj", fields: []string{"Music", "", "DJ Max"}, want: true},
		{name: "no match", term: "cake", fields: []string{"Flowers", "Music"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.term, tt.fields...))
		})
	}
}

func TestTasks(t *testing.T) {
	tasks := []*models.Task{
		{ID: "1", Title: "Book venue", Status: models.TaskTodo, Priority: models.PriorityHigh, AssignedTo: models.AssigneeBoth},
		{ID: "2", Title: "Order cake", Status: models.TaskDone, Priority: models.PriorityLow, AssignedTo: models.AssigneeMe},
		{ID: "3", Title: "Venue tasting", Status: models.TaskDoing, Priority: models.PriorityHigh, AssignedTo: models.AssigneePartner},
	}

	ids := func(ts []*models.Task) []string {
		var out []string
		for _, t := range ts {
			out = append(out, t.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "3"}, ids(Tasks(tasks, TaskFilter{Query: "venue"})))
	assert.Equal(t, []string{"1", "3"}, ids(Tasks(tasks, TaskFilter{Priority: models.PriorityHigh})))
	assert.Equal(t, []string{"3"}, ids(Tasks(tasks, TaskFilter{Query: "venue", AssignedTo: models.AssigneePartner})))
	assert.Equal(t, []string{"2"}, ids(Tasks(tasks, TaskFilter{Status: models.TaskDone})))
	assert.Len(t, Tasks(tasks, TaskFilter{}), 3)
}

func TestGuests(t *testing.T) {
	guests := []*models.Guest{
		{FirstName: "Anna", LastName: "Nowak", Email: "anna@example.com", Side: models.SideBride, RSVP: models.RSVPYes},
		{FirstName: "Piotr", LastName: "Nowak", Side: models.SideGroom, RSVP: models.RSVPSent},
	}

	assert.Len(t, Guests(guests, GuestFilter{Query: "nowak"}), 2)
	assert.Len(t, Guests(guests, GuestFilter{Query: "anna nowak"}), 1)
	assert.Len(t, Guests(guests, GuestFilter{Query: "example.com"}), 1)
	assert.Len(t, Guests(guests, GuestFilter{Side: models.SideGroom}), 1)
	assert.Len(t, Guests(guests, GuestFilter{RSVP: models.RSVPNo}), 0)
}

func TestExpensesAndVendors(t *testing.T) {
	expenses := []*models.Expense{
		{Title: "Hall", Category: "Venue", Status: models.ExpensePaid},
		{Title: "Band", Category: "Music", Description: "live venue set", Status: models.ExpensePlanned},
	}
	assert.Len(t, Expenses(expenses, ExpenseFilter{Query: "venue"}), 2)
	assert.Len(t, Expenses(expenses, ExpenseFilter{Category: "Venue"}), 1)
	assert.Len(t, Expenses(expenses, ExpenseFilter{Category: "venue"}), 0)
	assert.Len(t, Expenses(expenses, ExpenseFilter{Status: models.ExpensePlanned}), 1)

	vendors := []*models.Vendor{
		{Name: "DJ Max", Category: "Music", ContactName: "Max", Status: models.VendorBooked},
		{Name: "Rose Garden", Category: "Flowers", Notes: "ask about peonies", Status: models.VendorConsidering},
	}
	assert.Len(t, Vendors(vendors, VendorFilter{Query: "peonies"}), 1)
	assert.Len(t, Vendors(vendors, VendorFilter{Status: models.VendorBooked}), 1)
	assert.Len(t, Vendors(vendors, VendorFilter{Category: "Flowers", Query: "dj"}), 0)
}

func TestTimelineEvents(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	events := []*models.TimelineEvent{
		{Title: "Tasting", EventDate: now.AddDate(0, -1, 0)},
		{Title: "Ceremony", EventDate: now, Location: "St. Mary's"},
		{Title: "Party", EventDate: now.AddDate(0, 0, 1)},
	}

	assert.Len(t, TimelineEvents(events, TimelineFilter{When: WhenUpcoming, Now: now}), 2)
	assert.Len(t, TimelineEvents(events, TimelineFilter{When: WhenPast, Now: now}), 1)
	assert.Len(t, TimelineEvents(events, TimelineFilter{Query: "mary", Now: now}), 1)
	assert.True(t, WhenUpcoming.Valid())
	assert.False(t, When("soon").Valid())
}

func TestNotes(t *testing.T) {
	notes := []*models.Note{
		{Title: "Music", Content: "first dance", Tags: []string{"party", "music"}},
		{Title: "Food", Content: "vegan menu", Tags: []string{"catering"}},
		{Title: "Misc", Content: "call grandma"},
	}

	assert.Len(t, Notes(notes, NoteFilter{Query: "catering"}), 1)
	assert.Len(t, Notes(notes, NoteFilter{Tag: "party"}), 1)
	assert.Len(t, Notes(notes, NoteFilter{Tag: "part"}), 0)
	assert.Len(t, Notes(notes, NoteFilter{Query: "GRANDMA"}), 1)
}

func TestCategoriesAndTags(t *testing.T) {
	expenses := []*models.Expense{{Category: "Venue"}, {Category: "Music"}, {Category: "Venue"}, {Category: ""}}
	assert.Equal(t, []string{"Music", "Venue"}, Categories(expenses))

	vendors := []*models.Vendor{{Category: "Photo"}, {Category: "Flowers"}}
	assert.Equal(t, []string{"Flowers", "Photo"}, VendorCategories(vendors))

	notes := []*models.Note{{Tags: []string{"b", "a"}}, {Tags: []string{"a"}}, {}}
	assert.Equal(t, []string{"a", "b"}, Tags(notes))
	assert.Empty(t, Tags(nil))
}
