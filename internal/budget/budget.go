// Package budget aggregates expenses into totals and category breakdowns.
// Everything here is a pure function of its input; nothing is persisted.
package budget

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/wedplan/internal/models"
)

// DashboardCategoryLimit is the number of categories shown on the dashboard.
const DashboardCategoryLimit = 10

// Line is the part of an expense the aggregation needs.
type Line struct {
	Category   string
	Status     models.ExpenseStatus
	Amount     decimal.Decimal
	PaidAmount *decimal.Decimal
}

// LinesFromExpenses projects expenses onto budget lines.
func LinesFromExpenses(expenses []*models.Expense) []Line {
	lines := make([]Line, 0, len(expenses))
	for _, e := range expenses {
		lines = append(lines, lineOf(e))
	}
	return lines
}

func lineOf(e *models.Expense) Line {
	return Line{Category: e.Category, Status: e.Status, Amount: e.Amount, PaidAmount: e.PaidAmount}
}

// EffectivePaid is the amount considered paid for a line: the recorded
// PaidAmount if any, otherwise the full Amount once the status is paid.
func (l Line) EffectivePaid() decimal.Decimal {
	if l.PaidAmount != nil {
		return *l.PaidAmount
	}
	if l.Status == models.ExpensePaid {
		return l.Amount
	}
	return decimal.Zero
}

// StatusTotal sums the lines of one status.
type StatusTotal struct {
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// CategoryTotal is the rollup of one category.
type CategoryTotal struct {
	Category  string          `json:"category"`
	Total     decimal.Decimal `json:"total"`
	Paid      decimal.Decimal `json:"paid"`
	Remaining decimal.Decimal `json:"remaining"`
	Count     int             `json:"count"`
}

// Summary is the budget overview of a set of lines.
type Summary struct {
	Total      decimal.Decimal                      `json:"total"`
	Paid       decimal.Decimal                      `json:"paid"`
	Remaining  decimal.Decimal                      `json:"remaining"`
	Count      int                                  `json:"count"`
	ByStatus   map[models.ExpenseStatus]StatusTotal `json:"byStatus"`
	Categories []CategoryTotal                      `json:"categories"`
}

// remaining returns total - paid, floored at zero.
func remaining(total, paid decimal.Decimal) decimal.Decimal {
	r := total.Sub(paid)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// Summarize totals the lines and keeps the top categoryLimit categories
// (all of them when categoryLimit <= 0).
func Summarize(lines []Line, categoryLimit int) Summary {
	s := Summary{
		Total: decimal.Zero,
		Paid:  decimal.Zero,
		ByStatus: map[models.ExpenseStatus]StatusTotal{
			models.ExpensePlanned: {Amount: decimal.Zero},
			models.ExpenseDeposit: {Amount: decimal.Zero},
			models.ExpensePaid:    {Amount: decimal.Zero},
		},
	}

	for _, l := range lines {
		s.Total = s.Total.Add(l.Amount)
		s.Paid = s.Paid.Add(l.EffectivePaid())
		s.Count++

		st := s.ByStatus[l.Status]
		st.Amount = st.Amount.Add(l.Amount)
		st.Count++
		s.ByStatus[l.Status] = st
	}

	s.Remaining = remaining(s.Total, s.Paid)
	s.Categories = ByCategory(lines, categoryLimit)
	return s
}

// ByCategory groups lines by category, sorted by total descending (ties by
// name), truncated to limit entries when limit > 0.
func ByCategory(lines []Line, limit int) []CategoryTotal {
	index := make(map[string]int)
	out := make([]CategoryTotal, 0)

	for _, l := range lines {
		i, ok := index[l.Category]
		if !ok {
			i = len(out)
			index[l.Category] = i
			out = append(out, CategoryTotal{Category: l.Category, Total: decimal.Zero, Paid: decimal.Zero})
		}
		out[i].Total = out[i].Total.Add(l.Amount)
		out[i].Paid = out[i].Paid.Add(l.EffectivePaid())
		out[i].Count++
	}

	for i := range out {
		out[i].Remaining = remaining(out[i].Total, out[i].Paid)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Category < out[j].Category
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
