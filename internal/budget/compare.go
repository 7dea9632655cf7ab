package budget

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/wedplan/internal/models"
)

// ScenarioComparison is one row of the side-by-side scenario view.
type ScenarioComparison struct {
	ScenarioID string          `json:"scenarioId"`
	Name       string          `json:"name"`
	IsActive   bool            `json:"isActive"`
	Total      decimal.Decimal `json:"total"`
	Paid       decimal.Decimal `json:"paid"`
	Remaining  decimal.Decimal `json:"remaining"`
	Planned    decimal.Decimal `json:"planned"`
	Deposit    decimal.Decimal `json:"deposit"`
	PaidStatus decimal.Decimal `json:"paidStatus"`
	Count      int             `json:"count"`
}

// CompareScenarios summarizes every scenario in the given order. Expenses
// whose scenario is not listed are ignored.
func CompareScenarios(scenarios []*models.BudgetScenario, expenses []*models.Expense) []ScenarioComparison {
	grouped := make(map[string][]Line, len(scenarios))
	for _, e := range expenses {
		grouped[e.ScenarioID] = append(grouped[e.ScenarioID], lineOf(e))
	}

	rows := make([]ScenarioComparison, 0, len(scenarios))
	for _, sc := range scenarios {
		s := Summarize(grouped[sc.ID], 0)
		rows = append(rows, ScenarioComparison{
			ScenarioID: sc.ID,
			Name:       sc.Name,
			IsActive:   sc.IsActive,
			Total:      s.Total,
			Paid:       s.Paid,
			Remaining:  s.Remaining,
			Planned:    s.ByStatus[models.ExpensePlanned].Amount,
			Deposit:    s.ByStatus[models.ExpenseDeposit].Amount,
			PaidStatus: s.ByStatus[models.ExpensePaid].Amount,
			Count:      s.Count,
		})
	}
	return rows
}
