package dashboard

import (
	"time"

	"github.com/mmynk/wedplan/internal/budget"
	"github.com/mmynk/wedplan/internal/models"
)

type TaskStats struct {
	Total   int `json:"total"`
	Todo    int `json:"todo"`
	Doing   int `json:"doing"`
	Done    int `json:"done"`
	Overdue int `json:"overdue"`
}

type GuestStats struct {
	Total              int `json:"total"`
	Confirmed          int `json:"confirmed"`
	Pending            int `json:"pending"`
	NotSent            int `json:"notSent"`
	Declined           int `json:"declined"`
	Bride              int `json:"bride"`
	Groom              int `json:"groom"`
	HeadCount          int `json:"headCount"`
	ConfirmedHeadCount int `json:"confirmedHeadCount"`
}

type VendorStats struct {
	Total       int `json:"total"`
	Considering int `json:"considering"`
	Booked      int `json:"booked"`
	Rejected    int `json:"rejected"`
}

type EventStats struct {
	Total    int `json:"total"`
	Upcoming int `json:"upcoming"`
	Past     int `json:"past"`
}

type NoteStats struct {
	Total    int `json:"total"`
	WithTags int `json:"withTags"`
}

// Stats is the full dashboard overview.
type Stats struct {
	Project  *models.Project `json:"project,omitempty"`
	Tasks    TaskStats       `json:"tasks"`
	Guests   GuestStats      `json:"guests"`
	Budget   budget.Summary  `json:"budget"`
	Vendors  VendorStats     `json:"vendors"`
	Events   EventStats      `json:"events"`
	Notes    NoteStats       `json:"notes"`
	Computed time.Time       `json:"computedAt"`
}

// Compute derives the statistics of snap as of now.
func Compute(snap *Snapshot, now time.Time) Stats {
	st := Stats{
		Project:  snap.Project,
		Computed: now,
		Budget:   budget.Summarize(budget.LinesFromExpenses(snap.Expenses), budget.DashboardCategoryLimit),
	}

	for _, t := range snap.Tasks {
		st.Tasks.Total++
		switch t.Status {
		case models.TaskTodo:
			st.Tasks.Todo++
		case models.TaskDoing:
			st.Tasks.Doing++
		case models.TaskDone:
			st.Tasks.Done++
		}
		if t.Status != models.TaskDone && t.DueDate != nil && t.DueDate.Before(now) {
			st.Tasks.Overdue++
		}
	}

	for _, g := range snap.Guests {
		st.Guests.Total++
		st.Guests.HeadCount += g.HeadCount()
		switch g.RSVP {
		case models.RSVPYes:
			st.Guests.Confirmed++
			st.Guests.ConfirmedHeadCount += g.HeadCount()
		case models.RSVPSent:
			st.Guests.Pending++
		case models.RSVPNotSent:
			st.Guests.NotSent++
		case models.RSVPNo:
			st.Guests.Declined++
		}
		switch g.Side {
		case models.SideBride:
			st.Guests.Bride++
		case models.SideGroom:
			st.Guests.Groom++
		}
	}

	for _, v := range snap.Vendors {
		st.Vendors.Total++
		switch v.Status {
		case models.VendorConsidering:
			st.Vendors.Considering++
		case models.VendorBooked:
			st.Vendors.Booked++
		case models.VendorRejected:
			st.Vendors.Rejected++
		}
	}

	for _, e := range snap.Events {
		st.Events.Total++
		if e.EventDate.Before(now) {
			st.Events.Past++
		} else {
			st.Events.Upcoming++
		}
	}

	for _, n := range snap.Notes {
		st.Notes.Total++
		if len(n.Tags) > 0 {
			st.Notes.WithTags++
		}
	}

	return st
}
