// Package search filters planner records by free text and by field values.
//
// Text matching is a case-insensitive substring test. Both sides are
// normalized to NFC and case folded, so "ŻANETA" matches "żaneta" and
// precomposed and decomposed accents compare equal.
package search

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/mmynk/wedplan/internal/models"
)

func fold(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Query is a prepared search term.
type Query struct {
	term string
}

// NewQuery prepares term for matching. Surrounding whitespace is ignored.
func NewQuery(term string) Query {
	return Query{term: fold(strings.TrimSpace(term))}
}

// Empty reports whether the query matches everything.
func (q Query) Empty() bool {
	return q.term == ""
}

// Matches reports whether any of fields contains the query.
func (q Query) Matches(fields ...string) bool {
	if q.term == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(fold(f), q.term) {
			return true
		}
	}
	return false
}

// Matches is a one-shot helper for NewQuery(term).Matches(fields...).
func Matches(term string, fields ...string) bool {
	return NewQuery(term).Matches(fields...)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// TaskFilter narrows the task list. Zero-valued fields match everything.
type TaskFilter struct {
	Query      string
	Status     models.TaskStatus
	Priority   models.TaskPriority
	AssignedTo models.TaskAssignee
}

func Tasks(tasks []*models.Task, f TaskFilter) []*models.Task {
	q := NewQuery(f.Query)
	return filter(tasks, func(t *models.Task) bool {
		return (f.Status == "" || t.Status == f.Status) &&
			(f.Priority == "" || t.Priority == f.Priority) &&
			(f.AssignedTo == "" || t.AssignedTo == f.AssignedTo) &&
			q.Matches(t.Title)
	})
}

type GuestFilter struct {
	Query string
	Side  models.GuestSide
	RSVP  models.RSVPStatus
}

// Guests matches the query against the full name and the email.
func Guests(guests []*models.Guest, f GuestFilter) []*models.Guest {
	q := NewQuery(f.Query)
	return filter(guests, func(g *models.Guest) bool {
		return (f.Side == "" || g.Side == f.Side) &&
			(f.RSVP == "" || g.RSVP == f.RSVP) &&
			q.Matches(g.FirstName+" "+g.LastName, g.Email)
	})
}

type ExpenseFilter struct {
	Query    string
	Status   models.ExpenseStatus
	Category string
}

// Expenses matches the query against title, category and description.
// Category is compared exactly.
func Expenses(expenses []*models.Expense, f ExpenseFilter) []*models.Expense {
	q := NewQuery(f.Query)
	return filter(expenses, func(e *models.Expense) bool {
		return (f.Status == "" || e.Status == f.Status) &&
			(f.Category == "" || e.Category == f.Category) &&
			q.Matches(e.Title, e.Category, e.Description)
	})
}

type VendorFilter struct {
	Query    string
	Status   models.VendorStatus
	Category string
}

func Vendors(vendors []*models.Vendor, f VendorFilter) []*models.Vendor {
	q := NewQuery(f.Query)
	return filter(vendors, func(v *models.Vendor) bool {
		return (f.Status == "" || v.Status == f.Status) &&
			(f.Category == "" || v.Category == f.Category) &&
			q.Matches(v.Name, v.Category, v.ContactName, v.Email, v.Notes)
	})
}

// When selects timeline events relative to a moment.
type When string

const (
	WhenAll      When = ""
	WhenUpcoming When = "upcoming"
	WhenPast     When = "past"
)

// Valid reports whether w is a known selector.
func (w When) Valid() bool {
	return w == WhenAll || w == WhenUpcoming || w == WhenPast
}

type TimelineFilter struct {
	Query string
	When  When
	Now   time.Time
}

// TimelineEvents keeps events matching the query on title, description and
// location. Upcoming includes events dated exactly at Now.
func TimelineEvents(events []*models.TimelineEvent, f TimelineFilter) []*models.TimelineEvent {
	q := NewQuery(f.Query)
	return filter(events, func(e *models.TimelineEvent) bool {
		switch f.When {
		case WhenUpcoming:
			if e.EventDate.Before(f.Now) {
				return false
			}
		case WhenPast:
			if !e.EventDate.Before(f.Now) {
				return false
			}
		}
		return q.Matches(e.Title, e.Description, e.Location)
	})
}

type NoteFilter struct {
	Query string
	Tag   string
}

// Notes matches the query against title, content and every tag.
func Notes(notes []*models.Note, f NoteFilter) []*models.Note {
	q := NewQuery(f.Query)
	return filter(notes, func(n *models.Note) bool {
		if f.Tag != "" && !hasTag(n, f.Tag) {
			return false
		}
		return q.Matches(append([]string{n.Title, n.Content}, n.Tags...)...)
	})
}

func hasTag(n *models.Note, tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func uniqueSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Categories lists the distinct expense categories.
func Categories(expenses []*models.Expense) []string {
	values := make([]string, 0, len(expenses))
	for _, e := range expenses {
		values = append(values, e.Category)
	}
	return uniqueSorted(values)
}

// VendorCategories lists the distinct vendor categories.
func VendorCategories(vendors []*models.Vendor) []string {
	values := make([]string, 0, len(vendors))
	for _, v := range vendors {
		values = append(values, v.Category)
	}
	return uniqueSorted(values)
}

// Tags lists the distinct note tags.
func Tags(notes []*models.Note) []string {
	var values []string
	for _, n := range notes {
		values = append(values, n.Tags...)
	}
	return uniqueSorted(values)
}
