package budget

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/wedplan/internal/models"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func assertDec(t *testing.T, want string, got decimal.Decimal, msg string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s = %s, want %s", msg, got, want)
}

func TestEffectivePaid(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want string
	}{
		{
			name: "explicit paid amount wins",
			line: Line{Status: models.ExpenseDeposit, Amount: dec("100"), PaidAmount: decPtr("30")},
			want: "30",
		},
		{
			name: "explicit paid amount wins even when paid",
			line: Line{Status: models.ExpensePaid, Amount: dec("100"), PaidAmount: decPtr("80")},
			want: "80",
		},
		{
			name: "paid status without amount counts in full",
			line: Line{Status: models.ExpensePaid, Amount: dec("100")},
			want: "100",
		},
		{
			name: "planned without amount is unpaid",
			line: Line{Status: models.ExpensePlanned, Amount: dec("100")},
			want: "0",
		},
		{
			name: "deposit without amount is unpaid",
			line: Line{Status: models.ExpenseDeposit, Amount: dec("100")},
			want: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDec(t, tt.want, tt.line.EffectivePaid(), "EffectivePaid")
		})
	}
}

func TestByCategoryRollup(t *testing.T) {
	lines := []Line{
		{Category: "A", Status: models.ExpenseDeposit, Amount: dec("100"), PaidAmount: decPtr("40")},
		{Category: "A", Status: models.ExpensePaid, Amount: dec("50"), PaidAmount: decPtr("50")},
		{Category: "B", Status: models.ExpensePlanned, Amount: dec("10"), PaidAmount: decPtr("0")},
	}

	cats := ByCategory(lines, 10)
	require.Len(t, cats, 2)

	assert.Equal(t, "A", cats[0].Category)
	assertDec(t, "150", cats[0].Total, "A total")
	assertDec(t, "90", cats[0].Paid, "A paid")
	assertDec(t, "60", cats[0].Remaining, "A remaining")
	assert.Equal(t, 2, cats[0].Count)

	assert.Equal(t, "B", cats[1].Category)
	assertDec(t, "10", cats[1].Remaining, "B remaining")
}

func TestByCategoryOrderingAndLimit(t *testing.T) {
	var lines []Line
	for i := 0; i < 12; i++ {
		lines = append(lines, Line{
			Category: fmt.Sprintf("cat-%02d", i),
			Status:   models.ExpensePlanned,
			Amount:   decimal.NewFromInt(int64(i * 10)),
		})
	}
	// Tie with cat-11 on total; name breaks the tie.
	lines = append(lines, Line{Category: "aaa", Status: models.ExpensePlanned, Amount: dec("110")})

	cats := ByCategory(lines, DashboardCategoryLimit)
	require.Len(t, cats, DashboardCategoryLimit)
	assert.Equal(t, "aaa", cats[0].Category)
	assert.Equal(t, "cat-11", cats[1].Category)
	for i := 1; i < len(cats); i++ {
		assert.True(t, cats[i-1].Total.GreaterThanOrEqual(cats[i].Total), "categories must be sorted by total")
	}

	assert.Len(t, ByCategory(lines, 0), 13)
}

func TestRemainingFlooredAtZero(t *testing.T) {
	lines := []Line{
		{Category: "Venue", Status: models.ExpensePaid, Amount: dec("100"), PaidAmount: decPtr("120")},
	}

	s := Summarize(lines, 0)
	assertDec(t, "100", s.Total, "total")
	assertDec(t, "120", s.Paid, "paid")
	assertDec(t, "0", s.Remaining, "remaining")
	assertDec(t, "0", s.Categories[0].Remaining, "category remaining")
}

func TestSummarize(t *testing.T) {
	lines := []Line{
		{Category: "Venue", Status: models.ExpenseDeposit, Amount: dec("5000"), PaidAmount: decPtr("1000")},
		{Category: "Music", Status: models.ExpensePaid, Amount: dec("2000.50")},
		{Category: "Flowers", Status: models.ExpensePlanned, Amount: dec("800")},
	}

	s := Summarize(lines, DashboardCategoryLimit)
	assertDec(t, "7800.50", s.Total, "total")
	assertDec(t, "3000.50", s.Paid, "paid")
	assertDec(t, "4800", s.Remaining, "remaining")
	assert.Equal(t, 3, s.Count)

	assert.Equal(t, 1, s.ByStatus[models.ExpensePaid].Count)
	assertDec(t, "800", s.ByStatus[models.ExpensePlanned].Amount, "planned")
	assertDec(t, "5000", s.ByStatus[models.ExpenseDeposit].Amount, "deposit")

	require.Len(t, s.Categories, 3)
	assert.Equal(t, []string{"Venue", "Music", "Flowers"}, []string{
		s.Categories[0].Category, s.Categories[1].Category, s.Categories[2].Category,
	})
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, DashboardCategoryLimit)
	assert.True(t, s.Total.IsZero())
	assert.True(t, s.Remaining.IsZero())
	assert.Empty(t, s.Categories)
	assert.Equal(t, 0, s.ByStatus[models.ExpensePaid].Count)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"categories":[]`)
}

func TestCompareScenarios(t *testing.T) {
	scenarios := []*models.BudgetScenario{
		{ID: "small", Name: "Small", IsActive: true},
		{ID: "castle", Name: "Castle"},
		{ID: "empty", Name: "Empty"},
	}
	expenses := []*models.Expense{
		{ScenarioID: "small", Category: "Venue", Status: models.ExpensePaid, Amount: dec("100")},
		{ScenarioID: "small", Category: "Music", Status: models.ExpensePlanned, Amount: dec("50")},
		{ScenarioID: "castle", Category: "Venue", Status: models.ExpenseDeposit, Amount: dec("900"), PaidAmount: decPtr("300")},
		{ScenarioID: "gone", Category: "Venue", Status: models.ExpensePlanned, Amount: dec("1")},
	}

	rows := CompareScenarios(scenarios, expenses)
	require.Len(t, rows, 3)

	assert.Equal(t, "small", rows[0].ScenarioID)
	assert.True(t, rows[0].IsActive)
	assertDec(t, "150", rows[0].Total, "small total")
	assertDec(t, "100", rows[0].Paid, "small paid")
	assertDec(t, "50", rows[0].Planned, "small planned")
	assert.Equal(t, 2, rows[0].Count)

	assertDec(t, "600", rows[1].Remaining, "castle remaining")
	assertDec(t, "900", rows[1].Deposit, "castle deposit")

	assert.Equal(t, 0, rows[2].Count)
	assertDec(t, "0", rows[2].Total, "empty total")
}
