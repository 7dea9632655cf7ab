package rpc

import (
	"context"

	"connectrpc.com/connect"
)

// AuthServiceClient calls AuthService procedures.
type AuthServiceClient interface {
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	Renew(context.Context, *connect.Request[RenewRequest]) (*connect.Response[RenewResponse], error)
	Logout(context.Context, *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error)
	GetSession(context.Context, *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error)
}

type authServiceClient struct {
	login      *connect.Client[LoginRequest, LoginResponse]
	renew      *connect.Client[RenewRequest, RenewResponse]
	logout     *connect.Client[LogoutRequest, LogoutResponse]
	getSession *connect.Client[GetSessionRequest, GetSessionResponse]
}

// NewAuthServiceClient returns a client for the server at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &authServiceClient{
		login:      connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		renew:      connect.NewClient[RenewRequest, RenewResponse](httpClient, baseURL+AuthServiceRenewProcedure, opts...),
		logout:     connect.NewClient[LogoutRequest, LogoutResponse](httpClient, baseURL+AuthServiceLogoutProcedure, opts...),
		getSession: connect.NewClient[GetSessionRequest, GetSessionResponse](httpClient, baseURL+AuthServiceGetSessionProcedure, opts...),
	}
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) Renew(ctx context.Context, req *connect.Request[RenewRequest]) (*connect.Response[RenewResponse], error) {
	return c.renew.CallUnary(ctx, req)
}

func (c *authServiceClient) Logout(ctx context.Context, req *connect.Request[LogoutRequest]) (*connect.Response[LogoutResponse], error) {
	return c.logout.CallUnary(ctx, req)
}

func (c *authServiceClient) GetSession(ctx context.Context, req *connect.Request[GetSessionRequest]) (*connect.Response[GetSessionResponse], error) {
	return c.getSession.CallUnary(ctx, req)
}

// ProjectServiceClient calls ProjectService procedures.
type ProjectServiceClient interface {
	EnsureProject(context.Context, *connect.Request[EnsureProjectRequest]) (*connect.Response[EnsureProjectResponse], error)
	GetProject(context.Context, *connect.Request[GetProjectRequest]) (*connect.Response[GetProjectResponse], error)
	UpdateProject(context.Context, *connect.Request[UpdateProjectRequest]) (*connect.Response[UpdateProjectResponse], error)
}

type projectServiceClient struct {
	ensureProject *connect.Client[EnsureProjectRequest, EnsureProjectResponse]
	getProject    *connect.Client[GetProjectRequest, GetProjectResponse]
	updateProject *connect.Client[UpdateProjectRequest, UpdateProjectResponse]
}

// NewProjectServiceClient returns a client for the server at baseURL.
func NewProjectServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ProjectServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &projectServiceClient{
		ensureProject: connect.NewClient[EnsureProjectRequest, EnsureProjectResponse](httpClient, baseURL+ProjectServiceEnsureProjectProcedure, opts...),
		getProject:    connect.NewClient[GetProjectRequest, GetProjectResponse](httpClient, baseURL+ProjectServiceGetProjectProcedure, opts...),
		updateProject: connect.NewClient[UpdateProjectRequest, UpdateProjectResponse](httpClient, baseURL+ProjectServiceUpdateProjectProcedure, opts...),
	}
}

func (c *projectServiceClient) EnsureProject(ctx context.Context, req *connect.Request[EnsureProjectRequest]) (*connect.Response[EnsureProjectResponse], error) {
	return c.ensureProject.CallUnary(ctx, req)
}

func (c *projectServiceClient) GetProject(ctx context.Context, req *connect.Request[GetProjectRequest]) (*connect.Response[GetProjectResponse], error) {
	return c.getProject.CallUnary(ctx, req)
}

func (c *projectServiceClient) UpdateProject(ctx context.Context, req *connect.Request[UpdateProjectRequest]) (*connect.Response[UpdateProjectResponse], error) {
	return c.updateProject.CallUnary(ctx, req)
}

// TaskServiceClient calls TaskService procedures.
type TaskServiceClient interface {
	ListTasks(context.Context, *connect.Request[ListTasksRequest]) (*connect.Response[ListTasksResponse], error)
	GetTask(context.Context, *connect.Request[GetTaskRequest]) (*connect.Response[GetTaskResponse], error)
	CreateTask(context.Context, *connect.Request[CreateTaskRequest]) (*connect.Response[CreateTaskResponse], error)
	UpdateTask(context.Context, *connect.Request[UpdateTaskRequest]) (*connect.Response[UpdateTaskResponse], error)
	DeleteTask(context.Context, *connect.Request[DeleteTaskRequest]) (*connect.Response[DeleteTaskResponse], error)
}

type taskServiceClient struct {
	listTasks  *connect.Client[ListTasksRequest, ListTasksResponse]
	getTask    *connect.Client[GetTaskRequest, GetTaskResponse]
	createTask *connect.Client[CreateTaskRequest, CreateTaskResponse]
	updateTask *connect.Client[UpdateTaskRequest, UpdateTaskResponse]
	deleteTask *connect.Client[DeleteTaskRequest, DeleteTaskResponse]
}

// NewTaskServiceClient returns a client for the server at baseURL.
func NewTaskServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TaskServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &taskServiceClient{
		listTasks:  connect.NewClient[ListTasksRequest, ListTasksResponse](httpClient, baseURL+TaskServiceListTasksProcedure, opts...),
		getTask:    connect.NewClient[GetTaskRequest, GetTaskResponse](httpClient, baseURL+TaskServiceGetTaskProcedure, opts...),
		createTask: connect.NewClient[CreateTaskRequest, CreateTaskResponse](httpClient, baseURL+TaskServiceCreateTaskProcedure, opts...),
		updateTask: connect.NewClient[UpdateTaskRequest, UpdateTaskResponse](httpClient, baseURL+TaskServiceUpdateTaskProcedure, opts...),
		deleteTask: connect.NewClient[DeleteTaskRequest, DeleteTaskResponse](httpClient, baseURL+TaskServiceDeleteTaskProcedure, opts...),
	}
}

func (c *taskServiceClient) ListTasks(ctx context.Context, req *connect.Request[ListTasksRequest]) (*connect.Response[ListTasksResponse], error) {
	return c.listTasks.CallUnary(ctx, req)
}

func (c *taskServiceClient) GetTask(ctx context.Context, req *connect.Request[GetTaskRequest]) (*connect.Response[GetTaskResponse], error) {
	return c.getTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) CreateTask(ctx context.Context, req *connect.Request[CreateTaskRequest]) (*connect.Response[CreateTaskResponse], error) {
	return c.createTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) UpdateTask(ctx context.Context, req *connect.Request[UpdateTaskRequest]) (*connect.Response[UpdateTaskResponse], error) {
	return c.updateTask.CallUnary(ctx, req)
}

func (c *taskServiceClient) DeleteTask(ctx context.Context, req *connect.Request[DeleteTaskRequest]) (*connect.Response[DeleteTaskResponse], error) {
	return c.deleteTask.CallUnary(ctx, req)
}

// GuestServiceClient calls GuestService procedures.
type GuestServiceClient interface {
	ListGuests(context.Context, *connect.Request[ListGuestsRequest]) (*connect.Response[ListGuestsResponse], error)
	GetGuest(context.Context, *connect.Request[GetGuestRequest]) (*connect.Response[GetGuestResponse], error)
	CreateGuest(context.Context, *connect.Request[CreateGuestRequest]) (*connect.Response[CreateGuestResponse], error)
	UpdateGuest(context.Context, *connect.Request[UpdateGuestRequest]) (*connect.Response[UpdateGuestResponse], error)
	DeleteGuest(context.Context, *connect.Request[DeleteGuestRequest]) (*connect.Response[DeleteGuestResponse], error)
}

type guestServiceClient struct {
	listGuests  *connect.Client[ListGuestsRequest, ListGuestsResponse]
	getGuest    *connect.Client[GetGuestRequest, GetGuestResponse]
	createGuest *connect.Client[CreateGuestRequest, CreateGuestResponse]
	updateGuest *connect.Client[UpdateGuestRequest, UpdateGuestResponse]
	deleteGuest *connect.Client[DeleteGuestRequest, DeleteGuestResponse]
}

// NewGuestServiceClient returns a client for the server at baseURL.
func NewGuestServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GuestServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &guestServiceClient{
		listGuests:  connect.NewClient[ListGuestsRequest, ListGuestsResponse](httpClient, baseURL+GuestServiceListGuestsProcedure, opts...),
		getGuest:    connect.NewClient[GetGuestRequest, GetGuestResponse](httpClient, baseURL+GuestServiceGetGuestProcedure, opts...),
		createGuest: connect.NewClient[CreateGuestRequest, CreateGuestResponse](httpClient, baseURL+GuestServiceCreateGuestProcedure, opts...),
		updateGuest: connect.NewClient[UpdateGuestRequest, UpdateGuestResponse](httpClient, baseURL+GuestServiceUpdateGuestProcedure, opts...),
		deleteGuest: connect.NewClient[DeleteGuestRequest, DeleteGuestResponse](httpClient, baseURL+GuestServiceDeleteGuestProcedure, opts...),
	}
}

func (c *guestServiceClient) ListGuests(ctx context.Context, req *connect.Request[ListGuestsRequest]) (*connect.Response[ListGuestsResponse], error) {
	return c.listGuests.CallUnary(ctx, req)
}

func (c *guestServiceClient) GetGuest(ctx context.Context, req *connect.Request[GetGuestRequest]) (*connect.Response[GetGuestResponse], error) {
	return c.getGuest.CallUnary(ctx, req)
}

func (c *guestServiceClient) CreateGuest(ctx context.Context, req *connect.Request[CreateGuestRequest]) (*connect.Response[CreateGuestResponse], error) {
	return c.createGuest.CallUnary(ctx, req)
}

func (c *guestServiceClient) UpdateGuest(ctx context.Context, req *connect.Request[UpdateGuestRequest]) (*connect.Response[UpdateGuestResponse], error) {
	return c.updateGuest.CallUnary(ctx, req)
}

func (c *guestServiceClient) DeleteGuest(ctx context.Context, req *connect.Request[DeleteGuestRequest]) (*connect.Response[DeleteGuestResponse], error) {
	return c.deleteGuest.CallUnary(ctx, req)
}

// ExpenseServiceClient calls ExpenseService procedures.
type ExpenseServiceClient interface {
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	GetExpense(context.Context, *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error)
	CreateExpense(context.Context, *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error)
	UpdateExpense(context.Context, *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
	ListExpenseCategories(context.Context, *connect.Request[ListExpenseCategoriesRequest]) (*connect.Response[ListExpenseCategoriesResponse], error)
}

type expenseServiceClient struct {
	listExpenses          *connect.Client[ListExpensesRequest, ListExpensesResponse]
	getExpense            *connect.Client[GetExpenseRequest, GetExpenseResponse]
	createExpense         *connect.Client[CreateExpenseRequest, CreateExpenseResponse]
	updateExpense         *connect.Client[UpdateExpenseRequest, UpdateExpenseResponse]
	deleteExpense         *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	listExpenseCategories *connect.Client[ListExpenseCategoriesRequest, ListExpenseCategoriesResponse]
}

// NewExpenseServiceClient returns a client for the server at baseURL.
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExpenseServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &expenseServiceClient{
		listExpenses:          connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+ExpenseServiceListExpensesProcedure, opts...),
		getExpense:            connect.NewClient[GetExpenseRequest, GetExpenseResponse](httpClient, baseURL+ExpenseServiceGetExpenseProcedure, opts...),
		createExpense:         connect.NewClient[CreateExpenseRequest, CreateExpenseResponse](httpClient, baseURL+ExpenseServiceCreateExpenseProcedure, opts...),
		updateExpense:         connect.NewClient[UpdateExpenseRequest, UpdateExpenseResponse](httpClient, baseURL+ExpenseServiceUpdateExpenseProcedure, opts...),
		deleteExpense:         connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+ExpenseServiceDeleteExpenseProcedure, opts...),
		listExpenseCategories: connect.NewClient[ListExpenseCategoriesRequest, ListExpenseCategoriesResponse](httpClient, baseURL+ExpenseServiceListExpenseCategoriesProcedure, opts...),
	}
}

func (c *expenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *expenseServiceClient) GetExpense(ctx context.Context, req *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error) {
	return c.getExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) CreateExpense(ctx context.Context, req *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) UpdateExpense(ctx context.Context, req *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error) {
	return c.updateExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) ListExpenseCategories(ctx context.Context, req *connect.Request[ListExpenseCategoriesRequest]) (*connect.Response[ListExpenseCategoriesResponse], error) {
	return c.listExpenseCategories.CallUnary(ctx, req)
}

// ScenarioServiceClient calls ScenarioService procedures.
type ScenarioServiceClient interface {
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

type scenarioServiceClient struct {
	listScenarios     *connect.Client[ListScenariosRequest, ListScenariosResponse]
	getScenario       *connect.Client[GetScenarioRequest, GetScenarioResponse]
	getActiveScenario *connect.Client[GetActiveScenarioRequest, GetActiveScenarioResponse]
	createScenario    *connect.Client[CreateScenarioRequest, CreateScenarioResponse]
	updateScenario    *connect.Client[UpdateScenarioRequest, UpdateScenarioResponse]
	activateScenario  *connect.Client[ActivateScenarioRequest, ActivateScenarioResponse]
	cloneScenario     *connect.Client[CloneScenarioRequest, CloneScenarioResponse]
	deleteScenario    *connect.Client[DeleteScenarioRequest, DeleteScenarioResponse]
	compareScenarios  *connect.Client[CompareScenariosRequest, CompareScenariosResponse]
}

// NewScenarioServiceClient returns a client for the server at baseURL.
func NewScenarioServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ScenarioServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &scenarioServiceClient{
		listScenarios:     connect.NewClient[ListScenariosRequest, ListScenariosResponse](httpClient, baseURL+ScenarioServiceListScenariosProcedure, opts...),
		getScenario:       connect.NewClient[GetScenarioRequest, GetScenarioResponse](httpClient, baseURL+ScenarioServiceGetScenarioProcedure, opts...),
		getActiveScenario: connect.NewClient[GetActiveScenarioRequest, GetActiveScenarioResponse](httpClient, baseURL+ScenarioServiceGetActiveScenarioProcedure, opts...),
		createScenario:    connect.NewClient[CreateScenarioRequest, CreateScenarioResponse](httpClient, baseURL+ScenarioServiceCreateScenarioProcedure, opts...),
		updateScenario:    connect.NewClient[UpdateScenarioRequest, UpdateScenarioResponse](httpClient, baseURL+ScenarioServiceUpdateScenarioProcedure, opts...),
		activateScenario:  connect.NewClient[ActivateScenarioRequest, ActivateScenarioResponse](httpClient, baseURL+ScenarioServiceActivateScenarioProcedure, opts...),
		cloneScenario:     connect.NewClient[CloneScenarioRequest, CloneScenarioResponse](httpClient, baseURL+ScenarioServiceCloneScenarioProcedure, opts...),
		deleteScenario:    connect.NewClient[DeleteScenarioRequest, DeleteScenarioResponse](httpClient, baseURL+ScenarioServiceDeleteScenarioProcedure, opts...),
		compareScenarios:  connect.NewClient[CompareScenariosRequest, CompareScenariosResponse](httpClient, baseURL+ScenarioServiceCompareScenariosProcedure, opts...),
	}
}

func (c *scenarioServiceClient) ListScenarios(ctx context.Context, req *connect.Request[ListScenariosRequest]) (*connect.Response[ListScenariosResponse], error) {
	return c.listScenarios.CallUnary(ctx, req)
}

func (c *scenarioServiceClient) GetScenario(ctx context.Context, req *connect.Request[GetScenarioRequest]) (*connect.Response[GetScenarioResponse], error) {
	return c.getScenario.CallUnary(ctx, req)
}

func (c *scenarioServiceClient) GetActiveScenario(ctx context.Context, req *connect.Request[GetActiveScenarioRequest]) (*connect.Response[GetActiveScenarioResponse], error) {
	return c.getActiveScenario.CallUnary(ctx, req)
}

func (c *scenarioServiceClient) CreateScenario(ctx context.Context, req *connect.Request[CreateScenarioRequest]) (*connect.Response[CreateScenarioResponse], error) {
	return c.createScenario.CallUnary(ctx, req)
}

func (c *scenarioServiceClient) UpdateScenario(ctx context.Context, req *connect.Request[UpdateScenarioRequest]) (*connect.Response[UpdateScenarioResponse], error) {
	return c.updateScenario.CallUnary(ctx, req)
}

func (c *scenarioServiceClient) ActivateScenario(ctx context.Context, req *connect.Request[ActivateScenarioRequest]) (*connect.Response[ActivateScenarioResponse], error) {
	return c.activateScenario.CallUnary(ctx, req)
}

func (c *scenarioServiceClient) CloneScenario(ctx context.Context, req *connect.Request[CloneScenarioRequest]) (*connect.Response[CloneScenarioResponse], error) {
	return c.cloneScenario.CallUnary(ctx, req)
}

func (c *scenarioServiceClient) DeleteScenario(ctx context.Context, req *connect.Request[DeleteScenarioRequest]) (*connect.Response[DeleteScenarioResponse], error) {
	return c.deleteScenario.CallUnary(ctx, req)
}

func (c *scenarioServiceClient) CompareScenarios(ctx context.Context, req *connect.Request[CompareScenariosRequest]) (*connect.Response[CompareScenariosResponse], error) {
	return c.compareScenarios.CallUnary(ctx, req)
}

// VendorServiceClient calls VendorService procedures.
type VendorServiceClient interface {
	ListVendors(context.Context, *connect.Request[ListVendorsRequest]) (*connect.Response[ListVendorsResponse], error)
	GetVendor(context.Context, *connect.Request[GetVendorRequest]) (*connect.Response[GetVendorResponse], error)
	CreateVendor(context.Context, *connect.Request[CreateVendorRequest]) (*connect.Response[CreateVendorResponse], error)
	UpdateVendor(context.Context, *connect.Request[UpdateVendorRequest]) (*connect.Response[UpdateVendorResponse], error)
	DeleteVendor(context.Context, *connect.Request[DeleteVendorRequest]) (*connect.Response[DeleteVendorResponse], error)
}

type vendorServiceClient struct {
	listVendors  *connect.Client[ListVendorsRequest, ListVendorsResponse]
	getVendor    *connect.Client[GetVendorRequest, GetVendorResponse]
	createVendor *connect.Client[CreateVendorRequest, CreateVendorResponse]
	updateVendor *connect.Client[UpdateVendorRequest, UpdateVendorResponse]
	deleteVendor *connect.Client[DeleteVendorRequest, DeleteVendorResponse]
}

// NewVendorServiceClient returns a client for the server at baseURL.
func NewVendorServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) VendorServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &vendorServiceClient{
		listVendors:  connect.NewClient[ListVendorsRequest, ListVendorsResponse](httpClient, baseURL+VendorServiceListVendorsProcedure, opts...),
		getVendor:    connect.NewClient[GetVendorRequest, GetVendorResponse](httpClient, baseURL+VendorServiceGetVendorProcedure, opts...),
		createVendor: connect.NewClient[CreateVendorRequest, CreateVendorResponse](httpClient, baseURL+VendorServiceCreateVendorProcedure, opts...),
		updateVendor: connect.NewClient[UpdateVendorRequest, UpdateVendorResponse](httpClient, baseURL+VendorServiceUpdateVendorProcedure, opts...),
		deleteVendor: connect.NewClient[DeleteVendorRequest, DeleteVendorResponse](httpClient, baseURL+VendorServiceDeleteVendorProcedure, opts...),
	}
}

func (c *vendorServiceClient) ListVendors(ctx context.Context, req *connect.Request[ListVendorsRequest]) (*connect.Response[ListVendorsResponse], error) {
	return c.listVendors.CallUnary(ctx, req)
}

func (c *vendorServiceClient) GetVendor(ctx context.Context, req *connect.Request[GetVendorRequest]) (*connect.Response[GetVendorResponse], error) {
	return c.getVendor.CallUnary(ctx, req)
}

func (c *vendorServiceClient) CreateVendor(ctx context.Context, req *connect.Request[CreateVendorRequest]) (*connect.Response[CreateVendorResponse], error) {
	return c.createVendor.CallUnary(ctx, req)
}

func (c *vendorServiceClient) UpdateVendor(ctx context.Context, req *connect.Request[UpdateVendorRequest]) (*connect.Response[UpdateVendorResponse], error) {
	return c.updateVendor.CallUnary(ctx, req)
}

func (c *vendorServiceClient) DeleteVendor(ctx context.Context, req *connect.Request[DeleteVendorRequest]) (*connect.Response[DeleteVendorResponse], error) {
	return c.deleteVendor.CallUnary(ctx, req)
}

// TimelineServiceClient calls TimelineService procedures.
type TimelineServiceClient interface {
	ListTimelineEvents(context.Context, *connect.Request[ListTimelineEventsRequest]) (*connect.Response[ListTimelineEventsResponse], error)
	GetTimelineEvent(context.Context, *connect.Request[GetTimelineEventRequest]) (*connect.Response[GetTimelineEventResponse], error)
	CreateTimelineEvent(context.Context, *connect.Request[CreateTimelineEventRequest]) (*connect.Response[CreateTimelineEventResponse], error)
	UpdateTimelineEvent(context.Context, *connect.Request[UpdateTimelineEventRequest]) (*connect.Response[UpdateTimelineEventResponse], error)
	DeleteTimelineEvent(context.Context, *connect.Request[DeleteTimelineEventRequest]) (*connect.Response[DeleteTimelineEventResponse], error)
}

type timelineServiceClient struct {
	listTimelineEvents  *connect.Client[ListTimelineEventsRequest, ListTimelineEventsResponse]
	getTimelineEvent    *connect.Client[GetTimelineEventRequest, GetTimelineEventResponse]
	createTimelineEvent *connect.Client[CreateTimelineEventRequest, CreateTimelineEventResponse]
	updateTimelineEvent *connect.Client[UpdateTimelineEventRequest, UpdateTimelineEventResponse]
	deleteTimelineEvent *connect.Client[DeleteTimelineEventRequest, DeleteTimelineEventResponse]
}

// NewTimelineServiceClient returns a client for the server at baseURL.
func NewTimelineServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TimelineServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &timelineServiceClient{
		listTimelineEvents:  connect.NewClient[ListTimelineEventsRequest, ListTimelineEventsResponse](httpClient, baseURL+TimelineServiceListTimelineEventsProcedure, opts...),
		getTimelineEvent:    connect.NewClient[GetTimelineEventRequest, GetTimelineEventResponse](httpClient, baseURL+TimelineServiceGetTimelineEventProcedure, opts...),
		createTimelineEvent: connect.NewClient[CreateTimelineEventRequest, CreateTimelineEventResponse](httpClient, baseURL+TimelineServiceCreateTimelineEventProcedure, opts...),
		updateTimelineEvent: connect.NewClient[UpdateTimelineEventRequest, UpdateTimelineEventResponse](httpClient, baseURL+TimelineServiceUpdateTimelineEventProcedure, opts...),
		deleteTimelineEvent: connect.NewClient[DeleteTimelineEventRequest, DeleteTimelineEventResponse](httpClient, baseURL+TimelineServiceDeleteTimelineEventProcedure, opts...),
	}
}

func (c *timelineServiceClient) ListTimelineEvents(ctx context.Context, req *connect.Request[ListTimelineEventsRequest]) (*connect.Response[ListTimelineEventsResponse], error) {
	return c.listTimelineEvents.CallUnary(ctx, req)
}

func (c *timelineServiceClient) GetTimelineEvent(ctx context.Context, req *connect.Request[GetTimelineEventRequest]) (*connect.Response[GetTimelineEventResponse], error) {
	return c.getTimelineEvent.CallUnary(ctx, req)
}

func (c *timelineServiceClient) CreateTimelineEvent(ctx context.Context, req *connect.Request[CreateTimelineEventRequest]) (*connect.Response[CreateTimelineEventResponse], error) {
	return c.createTimelineEvent.CallUnary(ctx, req)
}

func (c *timelineServiceClient) UpdateTimelineEvent(ctx context.Context, req *connect.Request[UpdateTimelineEventRequest]) (*connect.Response[UpdateTimelineEventResponse], error) {
	return c.updateTimelineEvent.CallUnary(ctx, req)
}

func (c *timelineServiceClient) DeleteTimelineEvent(ctx context.Context, req *connect.Request[DeleteTimelineEventRequest]) (*connect.Response[DeleteTimelineEventResponse], error) {
	return c.deleteTimelineEvent.CallUnary(ctx, req)
}

// NoteServiceClient calls NoteService procedures.
type NoteServiceClient interface {
	ListNotes(context.Context, *connect.Request[ListNotesRequest]) (*connect.Response[ListNotesResponse], error)
	GetNote(context.Context, *connect.Request[GetNoteRequest]) (*connect.Response[GetNoteResponse], error)
	CreateNote(context.Context, *connect.Request[CreateNoteRequest]) (*connect.Response[CreateNoteResponse], error)
	UpdateNote(context.Context, *connect.Request[UpdateNoteRequest]) (*connect.Response[UpdateNoteResponse], error)
	DeleteNote(context.Context, *connect.Request[DeleteNoteRequest]) (*connect.Response[DeleteNoteResponse], error)
}

type noteServiceClient struct {
	listNotes  *connect.Client[ListNotesRequest, ListNotesResponse]
	getNote    *connect.Client[GetNoteRequest, GetNoteResponse]
	createNote *connect.Client[CreateNoteRequest, CreateNoteResponse]
	updateNote *connect.Client[UpdateNoteRequest, UpdateNoteResponse]
	deleteNote *connect.Client[DeleteNoteRequest, DeleteNoteResponse]
}

// NewNoteServiceClient returns a client for the server at baseURL.
func NewNoteServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) NoteServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &noteServiceClient{
		listNotes:  connect.NewClient[ListNotesRequest, ListNotesResponse](httpClient, baseURL+NoteServiceListNotesProcedure, opts...),
		getNote:    connect.NewClient[GetNoteRequest, GetNoteResponse](httpClient, baseURL+NoteServiceGetNoteProcedure, opts...),
		createNote: connect.NewClient[CreateNoteRequest, CreateNoteResponse](httpClient, baseURL+NoteServiceCreateNoteProcedure, opts...),
		updateNote: connect.NewClient[UpdateNoteRequest, UpdateNoteResponse](httpClient, baseURL+NoteServiceUpdateNoteProcedure, opts...),
		deleteNote: connect.NewClient[DeleteNoteRequest, DeleteNoteResponse](httpClient, baseURL+NoteServiceDeleteNoteProcedure, opts...),
	}
}

func (c *noteServiceClient) ListNotes(ctx context.Context, req *connect.Request[ListNotesRequest]) (*connect.Response[ListNotesResponse], error) {
	return c.listNotes.CallUnary(ctx, req)
}

func (c *noteServiceClient) GetNote(ctx context.Context, req *connect.Request[GetNoteRequest]) (*connect.Response[GetNoteResponse], error) {
	return c.getNote.CallUnary(ctx, req)
}

func (c *noteServiceClient) CreateNote(ctx context.Context, req *connect.Request[CreateNoteRequest]) (*connect.Response[CreateNoteResponse], error) {
	return c.createNote.CallUnary(ctx, req)
}

func (c *noteServiceClient) UpdateNote(ctx context.Context, req *connect.Request[UpdateNoteRequest]) (*connect.Response[UpdateNoteResponse], error) {
	return c.updateNote.CallUnary(ctx, req)
}

func (c *noteServiceClient) DeleteNote(ctx context.Context, req *connect.Request[DeleteNoteRequest]) (*connect.Response[DeleteNoteResponse], error) {
	return c.deleteNote.CallUnary(ctx, req)
}

// DashboardServiceClient calls DashboardService procedures.
type DashboardServiceClient interface {
	GetDashboard(context.Context, *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error)
}

type dashboardServiceClient struct {
	getDashboard *connect.Client[GetDashboardRequest, GetDashboardResponse]
}

// NewDashboardServiceClient returns a client for the server at baseURL.
func NewDashboardServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) DashboardServiceClient {
	baseURL = trimBaseURL(baseURL)
	opts = clientOptions(opts)
	return &dashboardServiceClient{
		getDashboard: connect.NewClient[GetDashboardRequest, GetDashboardResponse](httpClient, baseURL+DashboardServiceGetDashboardProcedure, opts...),
	}
}

func (c *dashboardServiceClient) GetDashboard(ctx context.Context, req *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}
