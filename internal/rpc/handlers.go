package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// AuthServiceHandler is implemented by the server side of AuthService.
type AuthServiceHandler interface {
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	Renew(context.Context, *connect.Request[RenewRequest]) (*connect.Response[RenewResponse], error)
	Logout(context.Context, *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error)
	GetSession(context.Context, *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler serving every AuthService procedure.
// It returns the path prefix to mount it on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	routes := map[string]http.Handler{
		AuthServiceLoginProcedure:      connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
		AuthServiceRenewProcedure:      connect.NewUnaryHandler(AuthServiceRenewProcedure, svc.Renew, opts...),
		AuthServiceLogoutProcedure:     connect.NewUnaryHandler(AuthServiceLogoutProcedure, svc.Logout, opts...),
		AuthServiceGetSessionProcedure: connect.NewUnaryHandler(AuthServiceGetSessionProcedure, svc.GetSession, opts...),
	}
	return "/" + AuthServiceName + "/", mount(routes)
}

// ProjectServiceHandler is implemented by the server side of ProjectService.
type ProjectServiceHandler interface {
	EnsureProject(context.Context, *connect.Request[EnsureProjectRequest]) (*connect.Response[EnsureProjectResponse], error)
	GetProject(context.Context, *connect.Request[GetProjectRequest]) (*connect.Response[GetProjectResponse], error)
	UpdateProject(context.Context, *connect.Request[UpdateProjectRequest]) (*connect.Response[UpdateProjectResponse], error)
}

// NewProjectServiceHandler builds an HTTP handler serving every ProjectService procedure.
// It returns the path prefix to mount it on.
func NewProjectServiceHandler(svc ProjectServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	routes := map[string]http.Handler{
		ProjectServiceEnsureProjectProcedure: connect.NewUnaryHandler(ProjectServiceEnsureProjectProcedure, svc.EnsureProject, opts...),
		ProjectServiceGetProjectProcedure:    connect.NewUnaryHandler(ProjectServiceGetProjectProcedure, svc.GetProject, opts...),
		ProjectServiceUpdateProjectProcedure: connect.NewUnaryHandler(ProjectServiceUpdateProjectProcedure, svc.UpdateProject, opts...),
	}
	return "/" + ProjectServiceName + "/", mount(routes)
}

// TaskServiceHandler is implemented by the server side of TaskService.
type TaskServiceHandler interface {
	ListTasks(context.Context, *connect.Request[ListTasksRequest]) (*connect.Response[ListTasksResponse], error)
	GetTask(context.Context, *connect.Request[GetTaskRequest]) (*connect.Response[GetTaskResponse], error)
	CreateTask(context.Context, *connect.Request[CreateTaskRequest]) (*connect.Response[CreateTaskResponse], error)
	UpdateTask(context.Context, *connect.Request[UpdateTaskRequest]) (*connect.Response[UpdateTaskResponse], error)
	DeleteTask(context.Context, *connect.Request[DeleteTaskRequest]) (*connect.Response[DeleteTaskResponse], error)
}

// NewTaskServiceHandler builds an HTTP handler serving every TaskService procedure.
// It returns the path prefix to mount it on.
func NewTaskServiceHandler(svc TaskServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	routes := map[string]http.Handler{
		TaskServiceListTasksProcedure:  connect.NewUnaryHandler(TaskServiceListTasksProcedure, svc.ListTasks, opts...),
		TaskServiceGetTaskProcedure:    connect.NewUnaryHandler(TaskServiceGetTaskProcedure, svc.GetTask, opts...),
		TaskServiceCreateTaskProcedure: connect.NewUnaryHandler(TaskServiceCreateTaskProcedure, svc.CreateTask, opts...),
		TaskServiceUpdateTaskProcedure: connect.NewUnaryHandler(TaskServiceUpdateTaskProcedure, svc.UpdateTask, opts...),
		TaskServiceDeleteTaskProcedure: connect.NewUnaryHandler(TaskServiceDeleteTaskProcedure, svc.DeleteTask, opts...),
	}
	return "/" + TaskServiceName + "/", mount(routes)
}

// GuestServiceHandler is implemented by the server side of GuestService.
type GuestServiceHandler interface {
	ListGuests(context.Context, *connect.Request[ListGuestsRequest]) (*connect.Response[ListGuestsResponse], error)
	GetGuest(context.Context, *connect.Request[GetGuestRequest]) (*connect.Response[GetGuestResponse], error)
	CreateGuest(context.Context, *connect.Request[CreateGuestRequest]) (*connect.Response[CreateGuestResponse], error)
	UpdateGuest(context.Context, *connect.Request[UpdateGuestRequest]) (*connect.Response[UpdateGuestResponse], error)
	DeleteGuest(context.Context, *connect.Request[DeleteGuestRequest]) (*connect.Response[DeleteGuestResponse], error)
}

// NewGuestServiceHandler builds an HTTP handler serving every GuestService procedure.
// It returns the path prefix to mount it on.
func NewGuestServiceHandler(svc GuestServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	routes := map[string]http.Handler{
		GuestServiceListGuestsProcedure:  connect.NewUnaryHandler(GuestServiceListGuestsProcedure, svc.ListGuests, opts...),
		GuestServiceGetGuestProcedure:    connect.NewUnaryHandler(GuestServiceGetGuestProcedure, svc.GetGuest, opts...),
		GuestServiceCreateGuestProcedure: connect.NewUnaryHandler(GuestServiceCreateGuestProcedure, svc.CreateGuest, opts...),
		GuestServiceUpdateGuestProcedure: connect.NewUnaryHandler(GuestServiceUpdateGuestProcedure, svc.UpdateGuest, opts...),
		GuestServiceDeleteGuestProcedure: connect.NewUnaryHandler(GuestServiceDeleteGuestProcedure, svc.DeleteGuest, opts...),
	}
	return "/" + GuestServiceName + "/", mount(routes)
}

// ExpenseServiceHandler is implemented by the server side of ExpenseService.
type ExpenseServiceHandler interface {
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	GetExpense(context.Context, *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error)
	CreateExpense(context.Context, *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error)
	UpdateExpense(context.Context, *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
	ListExpenseCategories(context.Context, *connect.Request[ListExpenseCategoriesRequest]) (*connect.Response[ListExpenseCategoriesResponse], error)
}

// NewExpenseServiceHandler builds an HTTP handler serving every ExpenseService procedure.
// It returns the path prefix to mount it on.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	routes := map[string]http.Handler{
		ExpenseServiceListExpensesProcedure:          connect.NewUnaryHandler(ExpenseServiceListExpensesProcedure, svc.ListExpenses, opts...),
		ExpenseServiceGetExpenseProcedure:            connect.NewUnaryHandler(ExpenseServiceGetExpenseProcedure, svc.GetExpense, opts...),
		ExpenseServiceCreateExpenseProcedure:         connect.NewUnaryHandler(ExpenseServiceCreateExpenseProcedure, svc.CreateExpense, opts...),
		ExpenseServiceUpdateExpenseProcedure:         connect.NewUnaryHandler(ExpenseServiceUpdateExpenseProcedure, svc.UpdateExpense, opts...),
		ExpenseServiceDeleteExpenseProcedure:         connect.NewUnaryHandler(ExpenseServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...),
		ExpenseServiceListExpenseCategoriesProcedure: connect.NewUnaryHandler(ExpenseServiceListExpenseCategoriesProcedure, svc.ListExpenseCategories, opts...),
	}
	return "/" + ExpenseServiceName + "/", mount(routes)
}

// ScenarioServiceHandler is implemented by the server side of ScenarioService.
type ScenarioServiceHandler interface {
	ListScenarios(context.Context, *connect.Request[ListScenariosRequest]) (*connect.Response[ListScenariosResponse], error)
	GetScenario(context.Context, *connect.Request[GetScenarioRequest]) (*connect.Response[GetScenarioResponse], error)
	GetActiveScenario(context.Context, *connect.Request[GetActiveScenarioRequest]) (*connect.Response[GetActiveScenarioResponse], error)
	CreateScenario(context.Context, *connect.Request[CreateScenarioRequest]) (*connect.Response[CreateScenarioResponse], error)
	UpdateScenario(context.Context, *connect.Request[UpdateScenarioRequest]) (*connect.Response[UpdateScenarioResponse], error)
	ActivateScenario(context.Context, *connect.Request[ActivateScenarioRequest]) (*connect.Response[ActivateScenarioResponse], error)
	CloneScenario(context.Context, *connect.Request[CloneScenarioRequest]) (*connect.Response[CloneScenarioResponse], error)
	DeleteScenario(context.Context, *connect.Request[DeleteScenarioRequest]) (*connect.Response[DeleteScenarioResponse], error)
	CompareScenarios(context.Context, *connect.Request[CompareScenariosRequest]) (*connect.Response[CompareScenariosResponse], error)
}

// NewScenarioServiceHandler builds an HTTP handler serving every ScenarioService procedure.
// It returns the path prefix to mount it on.
func NewScenarioServiceHandler(svc ScenarioServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	routes := map[string]http.Handler{
		ScenarioServiceListScenariosProcedure:     connect.NewUnaryHandler(ScenarioServiceListScenariosProcedure, svc.ListScenarios, opts...),
		ScenarioServiceGetScenarioProcedure:       connect.NewUnaryHandler(ScenarioServiceGetScenarioProcedure, svc.GetScenario, opts...),
		ScenarioServiceGetActiveScenarioProcedure: connect.NewUnaryHandler(ScenarioServiceGetActiveScenarioProcedure, svc.GetActiveScenario, opts...),
		ScenarioServiceCreateScenarioProcedure:    connect.NewUnaryHandler(ScenarioServiceCreateScenarioProcedure, svc.CreateScenario, opts...),
		ScenarioServiceUpdateScenarioProcedure:    connect.NewUnaryHandler(ScenarioServiceUpdateScenarioProcedure, svc.UpdateScenario, opts...),
		ScenarioServiceActivateScenarioProcedure:  connect.NewUnaryHandler(ScenarioServiceActivateScenarioProcedure, svc.ActivateScenario, opts...),
		ScenarioServiceCloneScenarioProcedure:     connect.NewUnaryHandler(ScenarioServiceCloneScenarioProcedure, svc.CloneScenario, opts...),
		ScenarioServiceDeleteScenarioProcedure:    connect.NewUnaryHandler(ScenarioServiceDeleteScenarioProcedure, svc.DeleteScenario, opts...),
		ScenarioServiceCompareScenariosProcedure:  connect.NewUnaryHandler(ScenarioServiceCompareScenariosProcedure, svc.CompareScenarios, opts...),
	}
	return "/" + ScenarioServiceName + "/", mount(routes)
}

// VendorServiceHandler is implemented by the server side of VendorService.
type VendorServiceHandler interface {
	ListVendors(context.Context, *connect.Request[ListVendorsRequest]) (*connect.Response[ListVendorsResponse], error)
	GetVendor(context.Context, *connect.Request[GetVendorRequest]) (*connect.Response[GetVendorResponse], error)
	CreateVendor(context.Context, *connect.Request[CreateVendorRequest]) (*connect.Response[CreateVendorResponse], error)
	UpdateVendor(context.Context, *connect.Request[UpdateVendorRequest]) (*connect.Response[UpdateVendorResponse], error)
	DeleteVendor(context.Context, *connect.Request[DeleteVendorRequest]) (*connect.Response[DeleteVendorResponse], error)
}

// NewVendorServiceHandler builds an HTTP handler serving every VendorService procedure.
// It returns the path prefix to mount it on.
func NewVendorServiceHandler(svc VendorServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	routes := map[string]http.Handler{
		VendorServiceListVendorsProcedure:  connect.NewUnaryHandler(VendorServiceListVendorsProcedure, svc.ListVendors, opts...),
		VendorServiceGetVendorProcedure:    connect.NewUnaryHandler(VendorServiceGetVendorProcedure, svc.GetVendor, opts...),
		VendorServiceCreateVendorProcedure: connect.NewUnaryHandler(VendorServiceCreateVendorProcedure, svc.CreateVendor, opts...),
		VendorServiceUpdateVendorProcedure: connect.NewUnaryHandler(VendorServiceUpdateVendorProcedure, svc.UpdateVendor, opts...),
		VendorServiceDeleteVendorProcedure: connect.NewUnaryHandler(VendorServiceDeleteVendorProcedure, svc.DeleteVendor, opts...),
	}
	return "/" + VendorServiceName + "/", mount(routes)
}

// TimelineServiceHandler is implemented by the server side of TimelineService.
type TimelineServiceHandler interface {
	ListTimelineEvents(context.Context, *connect.Request[ListTimelineEventsRequest]) (*connect.Response[ListTimelineEventsResponse], error)
	GetTimelineEvent(context.Context, *connect.Request[GetTimelineEventRequest]) (*connect.Response[GetTimelineEventResponse], error)
	CreateTimelineEvent(context.Context, *connect.Request[CreateTimelineEventRequest]) (*connect.Response[CreateTimelineEventResponse], error)
	UpdateTimelineEvent(context.Context, *connect.Request[UpdateTimelineEventRequest]) (*connect.Response[UpdateTimelineEventResponse], error)
	DeleteTimelineEvent(context.Context, *connect.Request[DeleteTimelineEventRequest]) (*connect.Response[DeleteTimelineEventResponse], error)
}

// NewTimelineServiceHandler builds an HTTP handler serving every TimelineService procedure.
// It returns the path prefix to mount it on.
func NewTimelineServiceHandler(svc TimelineServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	routes := map[string]http.Handler{
		TimelineServiceListTimelineEventsProcedure:  connect.NewUnaryHandler(TimelineServiceListTimelineEventsProcedure, svc.ListTimelineEvents, opts...),
		TimelineServiceGetTimelineEventProcedure:    connect.NewUnaryHandler(TimelineServiceGetTimelineEventProcedure, svc.GetTimelineEvent, opts...),
		TimelineServiceCreateTimelineEventProcedure: connect.NewUnaryHandler(TimelineServiceCreateTimelineEventProcedure, svc.CreateTimelineEvent, opts...),
		TimelineServiceUpdateTimelineEventProcedure: connect.NewUnaryHandler(TimelineServiceUpdateTimelineEventProcedure, svc.UpdateTimelineEvent, opts...),
		TimelineServiceDeleteTimelineEventProcedure: connect.NewUnaryHandler(TimelineServiceDeleteTimelineEventProcedure, svc.DeleteTimelineEvent, opts...),
	}
	return "/" + TimelineServiceName + "/", mount(routes)
}

// NoteServiceHandler is implemented by the server side of NoteService.
type NoteServiceHandler interface {
	ListNotes(context.Context, *connect.Request[ListNotesRequest]) (*connect.Response[ListNotesResponse], error)
	GetNote(context.Context, *connect.Request[GetNoteRequest]) (*connect.Response[GetNoteResponse], error)
	CreateNote(context.Context, *connect.Request[CreateNoteRequest]) (*connect.Response[CreateNoteResponse], error)
	UpdateNote(context.Context, *connect.Request[UpdateNoteRequest]) (*connect.Response[UpdateNoteResponse], error)
	DeleteNote(context.Context, *connect.Request[DeleteNoteRequest]) (*connect.Response[DeleteNoteResponse], error)
}

// NewNoteServiceHandler builds an HTTP handler serving every NoteService procedure.
// It returns the path prefix to mount it on.
func NewNoteServiceHandler(svc NoteServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	routes := map[string]http.Handler{
		NoteServiceListNotesProcedure:  connect.NewUnaryHandler(NoteServiceListNotesProcedure, svc.ListNotes, opts...),
		NoteServiceGetNoteProcedure:    connect.NewUnaryHandler(NoteServiceGetNoteProcedure, svc.GetNote, opts...),
		NoteServiceCreateNoteProcedure: connect.NewUnaryHandler(NoteServiceCreateNoteProcedure, svc.CreateNote, opts...),
		NoteServiceUpdateNoteProcedure: connect.NewUnaryHandler(NoteServiceUpdateNoteProcedure, svc.UpdateNote, opts...),
		NoteServiceDeleteNoteProcedure: connect.NewUnaryHandler(NoteServiceDeleteNoteProcedure, svc.DeleteNote, opts...),
	}
	return "/" + NoteServiceName + "/", mount(routes)
}

// DashboardServiceHandler is implemented by the server side of DashboardService.
type DashboardServiceHandler interface {
	GetDashboard(context.Context, *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error)
}

// NewDashboardServiceHandler builds an HTTP handler serving every DashboardService procedure.
// It returns the path prefix to mount it on.
func NewDashboardServiceHandler(svc DashboardServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	routes := map[string]http.Handler{
		DashboardServiceGetDashboardProcedure: connect.NewUnaryHandler(DashboardServiceGetDashboardProcedure, svc.GetDashboard, opts...),
	}
	return "/" + DashboardServiceName + "/", mount(routes)
}
