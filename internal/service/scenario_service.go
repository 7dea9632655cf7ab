package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/wedplan/internal/budget"
	"github.com/mmynk/wedplan/internal/models"
	"github.com/mmynk/wedplan/internal/rpc"
	"github.com/mmynk/wedplan/internal/storage"
)

// ActivationObserver is told whenever the active scenario changes.
type ActivationObserver interface {
	ScenarioActivated()
}

type nopObserver struct{}

func (nopObserver) ScenarioActivated() {}

// ScenarioService implements the Connect ScenarioService.
type ScenarioService struct {
	store    storage.Store
	observer ActivationObserver
}

// NewScenarioService creates a ScenarioService. observer may be nil.
func NewScenarioService(store storage.Store, observer ActivationObserver) *ScenarioService {
	if observer == nil {
		observer = nopObserver{}
	}
	return &ScenarioService{store: store, observer: observer}
}

func (s *ScenarioService) ListScenarios(ctx context.Context, req *connect.Request[rpc.ListScenariosRequest]) (*connect.Response[rpc.ListScenariosResponse], error) {
	slog.Info("ListScenarios request received")

	scenarios, err := s.store.ListScenarios(ctx)
	if err != nil {
		return nil, storeError("ListScenarios", err)
	}

	return connect.NewResponse(&rpc.ListScenariosResponse{Scenarios: scenarios}), nil
}

func (s *ScenarioService) GetScenario(ctx context.Context, req *connect.Request[rpc.GetScenarioRequest]) (*connect.Response[rpc.GetScenarioResponse], error) {
	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}

	scenario, err := s.get(ctx, req.Msg.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.GetScenarioResponse{Scenario: scenario}), nil
}

func (s *ScenarioService) get(ctx context.Context, id string) (*models.BudgetScenario, error) {
	scenario, err := s.store.GetScenario(ctx, id)
	if err != nil {
		return nil, storeError("GetScenario", err)
	}
	if scenario == nil {
		return nil, notFound("scenario", id)
	}
	return scenario, nil
}

// GetActiveScenario returns the active scenario; the response carries nil
// when no scenario is active.
func (s *ScenarioService) GetActiveScenario(ctx context.Context, req *connect.Request[rpc.GetActiveScenarioRequest]) (*connect.Response[rpc.GetActiveScenarioResponse], error) {
	scenario, err := s.store.GetActiveScenario(ctx)
	if err != nil {
		return nil, storeError("GetActiveScenario", err)
	}
	return connect.NewResponse(&rpc.GetActiveScenarioResponse{Scenario: scenario}), nil
}

func (s *ScenarioService) CreateScenario(ctx context.Context, req *connect.Request[rpc.CreateScenarioRequest]) (*connect.Response[rpc.CreateScenarioResponse], error) {
	scenario := req.Msg.Scenario
	scenario.ID = ""
	slog.Info("CreateScenario request received", "name", scenario.Name, "active", scenario.IsActive)

	if err := validateNewScenario(&scenario); err != nil {
		return nil, err
	}

	if err := s.store.CreateScenario(ctx, &scenario); err != nil {
		return nil, storeError("CreateScenario", err)
	}
	if scenario.IsActive {
		s.observer.ScenarioActivated()
	}

	slog.Info("Scenario created", "scenario_id", scenario.ID)
	return connect.NewResponse(&rpc.CreateScenarioResponse{Scenario: &scenario}), nil
}

func (s *ScenarioService) UpdateScenario(ctx context.Context, req *connect.Request[rpc.UpdateScenarioRequest]) (*connect.Response[rpc.UpdateScenarioResponse], error) {
	slog.Info("UpdateScenario request received", "scenario_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if err := validateScenarioPatch(&req.Msg.Patch); err != nil {
		return nil, err
	}

	if err := s.store.UpdateScenario(ctx, req.Msg.ID, req.Msg.Patch); err != nil {
		return nil, storeError("UpdateScenario", err)
	}
	if req.Msg.Patch.IsActive != nil && *req.Msg.Patch.IsActive {
		s.observer.ScenarioActivated()
	}

	scenario, err := s.get(ctx, req.Msg.ID)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&rpc.UpdateScenarioResponse{Scenario: scenario}), nil
}

// ActivateScenario makes the scenario the only active one.
func (s *ScenarioService) ActivateScenario(ctx context.Context, req *connect.Request[rpc.ActivateScenarioRequest]) (*connect.Response[rpc.ActivateScenarioResponse], error) {
	slog.Info("ActivateScenario request received", "scenario_id", req.Msg.ID)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}

	if err := s.store.ActivateScenario(ctx, req.Msg.ID); err != nil {
		return nil, storeError("ActivateScenario", err)
	}
	s.observer.ScenarioActivated()

	scenario, err := s.get(ctx, req.Msg.ID)
	if err != nil {
		return nil, err
	}

	slog.Info("Scenario activated", "scenario_id", scenario.ID, "name", scenario.Name)
	return connect.NewResponse(&rpc.ActivateScenarioResponse{Scenario: scenario}), nil
}

// CloneScenario copies a scenario with all its expenses. An empty name
// defaults to "<source name> (copy)".
func (s *ScenarioService) CloneScenario(ctx context.Context, req *connect.Request[rpc.CloneScenarioRequest]) (*connect.Response[rpc.CloneScenarioResponse], error) {
	slog.Info("CloneScenario request received", "source_id", req.Msg.SourceID, "name", req.Msg.Name)

	if req.Msg.SourceID == "" {
		return nil, invalidArgument("sourceId is required")
	}

	name := req.Msg.Name
	if name == "" {
		source, err := s.get(ctx, req.Msg.SourceID)
		if err != nil {
			return nil, err
		}
		name = source.Name + " (copy)"
	}

	clone, err := s.store.CloneScenario(ctx, req.Msg.SourceID, name)
	if err != nil {
		return nil, storeError("CloneScenario", err)
	}

	copied, err := s.store.ListExpenses(ctx, clone.ID)
	if err != nil {
		return nil, storeError("CloneScenario", err)
	}

	slog.Info("Scenario cloned", "source_id", req.Msg.SourceID, "scenario_id", clone.ID, "expenses", len(copied))
	return connect.NewResponse(&rpc.CloneScenarioResponse{Scenario: clone, Copied: len(copied)}), nil
}

// DeleteScenario removes a scenario and deletes or reassigns its expenses.
func (s *ScenarioService) DeleteScenario(ctx context.Context, req *connect.Request[rpc.DeleteScenarioRequest]) (*connect.Response[rpc.DeleteScenarioResponse], error) {
	slog.Info("DeleteScenario request received", "scenario_id", req.Msg.ID, "reassign_to", req.Msg.ReassignTo)

	if err := requireID(req.Msg.ID); err != nil {
		return nil, err
	}
	if req.Msg.ReassignTo == req.Msg.ID {
		return nil, invalidArgument("cannot reassign expenses to the deleted scenario")
	}

	err := s.store.DeleteScenario(ctx, req.Msg.ID, storage.DeleteScenarioOptions{ReassignTo: req.Msg.ReassignTo})
	if err != nil {
		return nil, storeError("DeleteScenario", err)
	}

	return connect.NewResponse(&rpc.DeleteScenarioResponse{}), nil
}

// CompareScenarios summarizes every scenario side by side.
func (s *ScenarioService) CompareScenarios(ctx context.Context, req *connect.Request[rpc.CompareScenariosRequest]) (*connect.Response[rpc.CompareScenariosResponse], error) {
	scenarios, err := s.store.ListScenarios(ctx)
	if err != nil {
		return nil, storeError("CompareScenarios", err)
	}
	expenses, err := s.store.ListExpenses(ctx, "")
	if err != nil {
		return nil, storeError("CompareScenarios", err)
	}

	return connect.NewResponse(&rpc.CompareScenariosResponse{
		Scenarios: budget.CompareScenarios(scenarios, expenses),
	}), nil
}
