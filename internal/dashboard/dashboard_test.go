package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/wedplan/internal/models"
)

type fakeSource struct {
	snap        Snapshot
	tasksErr    error
	block       chan struct{}
	gotScenario string
}

func (f *fakeSource) EnsureProject(ctx context.Context) (*models.Project, error) {
	return f.snap.Project, nil
}

func (f *fakeSource) ListTasks(ctx context.Context) ([]*models.Task, error) {
	if f.block != nil {
		// Ignores ctx on purpose.
		<-f.block
	}
	return f.snap.Tasks, f.tasksErr
}

func (f *fakeSource) ListGuests(ctx context.Context) ([]*models.Guest, error) {
	return f.snap.Guests, nil
}

func (f *fakeSource) ListExpenses(ctx context.Context, scenarioID string) ([]*models.Expense, error) {
	f.gotScenario = scenarioID
	return f.snap.Expenses, nil
}

func (f *fakeSource) ListVendors(ctx context.Context) ([]*models.Vendor, error) {
	return f.snap.Vendors, nil
}

func (f *fakeSource) ListTimelineEvents(ctx context.Context) ([]*models.TimelineEvent, error) {
	return f.snap.Events, nil
}

func (f *fakeSource) ListNotes(ctx context.Context) ([]*models.Note, error) {
	return f.snap.Notes, nil
}

func TestLoad(t *testing.T) {
	src := &fakeSource{snap: Snapshot{
		Project: &models.Project{ID: models.ProjectID, Name: "Our Wedding"},
		Tasks:   []*models.Task{{ID: "t1"}},
		Notes:   []*models.Note{{ID: "n1"}, {ID: "n2"}},
	}}

	snap, err := Load(context.Background(), src, time.Second, "scenario-1")
	require.NoError(t, err)
	assert.Equal(t, "Our Wedding", snap.Project.Name)
	assert.Len(t, snap.Tasks, 1)
	assert.Len(t, snap.Notes, 2)
	assert.Equal(t, "scenario-1", src.gotScenario)
}

func TestLoadPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	src := &fakeSource{tasksErr: boom}

	_, err := Load(context.Background(), src, time.Second, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestLoadTimesOut(t *testing.T) {
	src := &fakeSource{block: make(chan struct{})}
	defer close(src.block)

	start := time.Now()
	_, err := Load(context.Background(), src, 50*time.Millisecond, "")
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCompute(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)
	paid := decimal.NewFromInt(40)

	snap := &Snapshot{
		Tasks: []*models.Task{
			{Status: models.TaskTodo, DueDate: &yesterday},
			{Status: models.TaskDoing, DueDate: &tomorrow},
			{Status: models.TaskDone, DueDate: &yesterday},
		},
		Guests: []*models.Guest{
			{Side: models.SideBride, RSVP: models.RSVPYes, HasCompanion: true},
			{Side: models.SideBride, RSVP: models.RSVPSent},
			{Side: models.SideGroom, RSVP: models.RSVPNo},
			{Side: models.SideGroom, RSVP: models.RSVPNotSent, HasCompanion: true},
		},
		Expenses: []*models.Expense{
			{Category: "A", Status: models.ExpenseDeposit, Amount: decimal.NewFromInt(100), PaidAmount: &paid},
			{Category: "B", Status: models.ExpensePaid, Amount: decimal.NewFromInt(10)},
		},
		Vendors: []*models.Vendor{
			{Status: models.VendorBooked},
			{Status: models.VendorConsidering},
			{Status: models.VendorConsidering},
		},
		Events: []*models.TimelineEvent{
			{EventDate: yesterday},
			{EventDate: now},
			{EventDate: tomorrow},
		},
		Notes: []*models.Note{
			{Tags: []string{"music"}},
			{},
		},
	}

	st := Compute(snap, now)

	assert.Equal(t, TaskStats{Total: 3, Todo: 1, Doing: 1, Done: 1, Overdue: 1}, st.Tasks)
	assert.Equal(t, GuestStats{
		Total: 4, Confirmed: 1, Pending: 1, NotSent: 1, Declined: 1,
		Bride: 2, Groom: 2, HeadCount: 6, ConfirmedHeadCount: 2,
	}, st.Guests)
	assert.Equal(t, VendorStats{Total: 3, Considering: 2, Booked: 1}, st.Vendors)
	assert.Equal(t, EventStats{Total: 3, Upcoming: 2, Past: 1}, st.Events)
	assert.Equal(t, NoteStats{Total: 2, WithTags: 1}, st.Notes)

	assert.True(t, st.Budget.Total.Equal(decimal.NewFromInt(110)))
	assert.True(t, st.Budget.Paid.Equal(decimal.NewFromInt(50)))
	assert.True(t, st.Budget.Remaining.Equal(decimal.NewFromInt(60)))
	require.Len(t, st.Budget.Categories, 2)
	assert.Equal(t, "A", st.Budget.Categories[0].Category)
}

func TestComputeEmpty(t *testing.T) {
	st := Compute(&Snapshot{}, time.Now())
	assert.Zero(t, st.Tasks.Total)
	assert.Zero(t, st.Guests.HeadCount)
	assert.True(t, st.Budget.Total.IsZero())
}
