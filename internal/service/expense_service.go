package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/wedplan/internal/budget"
	"github.com/mmynk/wedplan/internal/models"
	"github.com/mmynk/wedplan/internal/rpc"
	"github.com/mmynk/wedplan/internal/search"
	"github.com/mmynk/wedplan/internal/storage"
)

// expenseStore is what ExpenseService needs: expenses plus scenario lookups
// to reject expenses pointing at unknown scenarios.
type expenseStore interface {
	storage.ExpenseStore
	GetScenario(ctx context.Context, id string) (*models.BudgetScenario, error)
}

// ExpenseService implements the Connect ExpenseService.
type ExpenseService struct {
	store expenseStore
}

func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// ListExpenses returns the matching expenses, newest first, with a budget
// summary of exactly those expenses.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[rpc.ListExpensesRequest]) (*connect.Response[rpc.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received",
		"scenario_id", req.Msg.ScenarioID,
		"query", req.Msg.Query,
		"status", req.Msg.Status,
		"category", req.Msg.Category,
	)

	expenses, err := s.store.ListExpenses(ctx, req.Msg.ScenarioID)
	if err != nil {
		return nil, storeError("ListExpenses", err)
	}

	expenses = search.Expenses(expenses, search.ExpenseFilter{
		Query:    req.Msg.Query,
		Status:   req.Msg.Status,
		Category: req.Msg.Category,
	})

	return connect.NewResponse(&rpc.ListExpensesResponse{
		Expenses: expenses,
		Summary:  budget.Summarize(budget.LinesFromExpenses(expenses), 0),
	}), nil
}

// ListExpenseCategories lists the distinct categories used by the expenses
// of a scenario (all scenarios when none is given).
func (s *ExpenseService) ListExpenseCategories(ctx context.Context, req *connect.Request[rpc.ListExpenseCategoriesRequest]) (*connect.Response[rpc.ListExpenseCategoriesResponse], error) {
	expenses, err := s.store.ListExpenses(ctx, req.Msg.ScenarioID)
	if err != nil {
		return nil, storeError("ListExpenseCategories", err)
	}
	return connect.NewResponse(&rpc.ListExpenseCategoriesResponse{Categories: search.Categories(expenses)}), nil
}

func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[rpc.GetExpenseRequest]) (*connect.Response[rpc.GetExpenseResponse], error) {
	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("GetExpense", err)
	}
	if expense == nil {
		return nil, notFound("expense", req.Msg.ID)
	}

	return connect.NewResponse(&rpc.GetExpenseResponse{Expense: expense}), nil
}

func (s *ExpenseService) requireScenario(ctx context.Context, id string) error {
	scenario, err := s.store.GetScenario(ctx, id)
	if err != nil {
		return storeError("GetScenario", err)
	}
	if scenario == nil {
		return invalidArgument("scenario %s does not exist", id)
	}
	return nil
}

func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[rpc.CreateExpenseRequest]) (*connect.Response[rpc.CreateExpenseResponse], error) {
	expense := req.Msg.Expense
	expense.ID = ""
	slog.Info("CreateExpense request received",
		"scenario_id", expense.ScenarioID,
		"category", expense.Category,
		"amount", expense.Amount,
	)

	if err := validateNewExpense(&expense); err != nil {
		return nil, err
	}
	if err := s.requireScenario(ctx, expense.ScenarioID); err != nil {
		return nil, err
	}

	if err := s.store.CreateExpense(ctx, &expense); err != nil {
		return nil, storeError("CreateExpense", err)
	}

	slog.Info("Expense created", "expense_id", expense.ID)
	return connect.NewResponse(&rpc.CreateExpenseResponse{Expense: &expense}), nil
}

func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[rpc.UpdateExpenseRequest]) (*connect.Response[rpc.UpdateExpenseResponse], error) {
	slog.Info("UpdateExpense request received", "expense_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	patch := req.Msg.Patch
	if err := validateExpensePatch(&patch); err != nil {
		return nil, err
	}
	if patch.ScenarioID != nil {
		if err := s.requireScenario(ctx, *patch.ScenarioID); err != nil {
			return nil, err
		}
	}

	if err := s.store.UpdateExpense(ctx, req.Msg.ID, patch); err != nil {
		return nil, storeError("UpdateExpense", err)
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError("UpdateExpense", err)
	}
	if expense == nil {
		return nil, notFound("expense", req.Msg.ID)
	}

	return connect.NewResponse(&rpc.UpdateExpenseResponse{Expense: expense}), nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[rpc.DeleteExpenseRequest]) (*connect.Response[rpc.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteExpense(ctx, req.Msg.ID); err != nil {
		return nil, storeError("DeleteExpense", err)
	}

	return connect.NewResponse(&rpc.DeleteExpenseResponse{}), nil
}
