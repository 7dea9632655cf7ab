package rpc

// Fully-qualified service names.
const (
	AuthServiceName      = "wedplan.v1.AuthService"
	ProjectServiceName   = "wedplan.v1.ProjectService"
	TaskServiceName      = "wedplan.v1.TaskService"
	GuestServiceName     = "wedplan.v1.GuestService"
	ExpenseServiceName   = "wedplan.v1.ExpenseService"
	ScenarioServiceName  = "wedplan.v1.ScenarioService"
	VendorServiceName    = "wedplan.v1.VendorService"
	TimelineServiceName  = "wedplan.v1.TimelineService"
	NoteServiceName      = "wedplan.v1.NoteService"
	DashboardServiceName = "wedplan.v1.DashboardService"
)

// Procedure paths, one per RPC.
const (
	AuthServiceLoginProcedure                    = "/" + AuthServiceName + "/Login"
	AuthServiceRenewProcedure                    = "/" + AuthServiceName + "/Renew"
	AuthServiceLogoutProcedure                   = "/" + AuthServiceName + "/Logout"
	AuthServiceGetSessionProcedure               = "/" + AuthServiceName + "/GetSession"
	ProjectServiceEnsureProjectProcedure         = "/" + ProjectServiceName + "/EnsureProject"
	ProjectServiceGetProjectProcedure            = "/" + ProjectServiceName + "/GetProject"
	ProjectServiceUpdateProjectProcedure         = "/" + ProjectServiceName + "/UpdateProject"
	TaskServiceListTasksProcedure                = "/" + TaskServiceName + "/ListTasks"
	TaskServiceGetTaskProcedure                  = "/" + TaskServiceName + "/GetTask"
	TaskServiceCreateTaskProcedure               = "/" + TaskServiceName + "/CreateTask"
	TaskServiceUpdateTaskProcedure               = "/" + TaskServiceName + "/UpdateTask"
	TaskServiceDeleteTaskProcedure               = "/" + TaskServiceName + "/DeleteTask"
	GuestServiceListGuestsProcedure              = "/" + GuestServiceName + "/ListGuests"
	GuestServiceGetGuestProcedure                = "/" + GuestServiceName + "/GetGuest"
	GuestServiceCreateGuestProcedure             = "/" + GuestServiceName + "/CreateGuest"
	GuestServiceUpdateGuestProcedure             = "/" + GuestServiceName + "/UpdateGuest"
	GuestServiceDeleteGuestProcedure             = "/" + GuestServiceName + "/DeleteGuest"
	ExpenseServiceListExpensesProcedure          = "/" + ExpenseServiceName + "/ListExpenses"
	ExpenseServiceGetExpenseProcedure            = "/" + ExpenseServiceName + "/GetExpense"
	ExpenseServiceCreateExpenseProcedure         = "/" + ExpenseServiceName + "/CreateExpense"
	ExpenseServiceUpdateExpenseProcedure         = "/" + ExpenseServiceName + "/UpdateExpense"
	ExpenseServiceDeleteExpenseProcedure         = "/" + ExpenseServiceName + "/DeleteExpense"
	ExpenseServiceListExpenseCategoriesProcedure = "/" + ExpenseServiceName + "/ListExpenseCategories"
	ScenarioServiceListScenariosProcedure        = "/" + ScenarioServiceName + "/ListScenarios"
	ScenarioServiceGetScenarioProcedure          = "/" + ScenarioServiceName + "/GetScenario"
	ScenarioServiceGetActiveScenarioProcedure    = "/" + ScenarioServiceName + "/GetActiveScenario"
	ScenarioServiceCreateScenarioProcedure       = "/" + ScenarioServiceName + "/CreateScenario"
	ScenarioServiceUpdateScenarioProcedure       = "/" + ScenarioServiceName + "/UpdateScenario"
	ScenarioServiceActivateScenarioProcedure     = "/" + ScenarioServiceName + "/ActivateScenario"
	ScenarioServiceCloneScenarioProcedure        = "/" + ScenarioServiceName + "/CloneScenario"
	ScenarioServiceDeleteScenarioProcedure       = "/" + ScenarioServiceName + "/DeleteScenario"
	ScenarioServiceCompareScenariosProcedure     = "/" + ScenarioServiceName + "/CompareScenarios"
	VendorServiceListVendorsProcedure            = "/" + VendorServiceName + "/ListVendors"
	VendorServiceGetVendorProcedure              = "/" + VendorServiceName + "/GetVendor"
	VendorServiceCreateVendorProcedure           = "/" + VendorServiceName + "/CreateVendor"
	VendorServiceUpdateVendorProcedure           = "/" + VendorServiceName + "/UpdateVendor"
	VendorServiceDeleteVendorProcedure           = "/" + VendorServiceName + "/DeleteVendor"
	TimelineServiceListTimelineEventsProcedure   = "/" + TimelineServiceName + "/ListTimelineEvents"
	TimelineServiceGetTimelineEventProcedure     = "/" + TimelineServiceName + "/GetTimelineEvent"
	TimelineServiceCreateTimelineEventProcedure  = "/" + TimelineServiceName + "/CreateTimelineEvent"
	TimelineServiceUpdateTimelineEventProcedure  = "/" + TimelineServiceName + "/UpdateTimelineEvent"
	TimelineServiceDeleteTimelineEventProcedure  = "/" + TimelineServiceName + "/DeleteTimelineEvent"
	NoteServiceListNotesProcedure                = "/" + NoteServiceName + "/ListNotes"
	NoteServiceGetNoteProcedure                  = "/" + NoteServiceName + "/GetNote"
	NoteServiceCreateNoteProcedure               = "/" + NoteServiceName + "/CreateNote"
	NoteServiceUpdateNoteProcedure               = "/" + NoteServiceName + "/UpdateNote"
	NoteServiceDeleteNoteProcedure               = "/" + NoteServiceName + "/DeleteNote"
	DashboardServiceGetDashboardProcedure        = "/" + DashboardServiceName + "/GetDashboard"
)
