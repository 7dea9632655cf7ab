package models

import "time"

// TaskStatus is the column a task sits in on the board.
type TaskStatus string

const (
	TaskTodo  TaskStatus = "todo"
	TaskDoing TaskStatus = "doing"
	TaskDone  TaskStatus = "done"
)

// TaskPriority ranks tasks within a column.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TaskAssignee says who is responsible for a task.
type TaskAssignee string

const (
	AssigneeMe      TaskAssignee = "me"
	AssigneePartner TaskAssignee = "partner"
	AssigneeBoth    TaskAssignee = "both"
)

// Task is a single to-do item.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title" validate:"notblank,min=2"`
	Description string       `json:"description,omitempty"`
	Status      TaskStatus   `json:"status" validate:"oneof=todo doing done"`
	Priority    TaskPriority `json:"priority" validate:"oneof=low medium high"`
	AssignedTo  TaskAssignee `json:"assignedTo" validate:"oneof=me partner both"`
	Category    string       `json:"category,omitempty"`
	DueDate     *time.Time   `json:"dueDate,omitempty"`

	// CompletedAt is set by the store when the task moves to done and
	// cleared when it leaves done.
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TaskPatch describes a partial update of a task.
type TaskPatch struct {
	Title        *string       `json:"title,omitempty" validate:"omitnil,notblank,min=2"`
	Description  *string       `json:"description,omitempty"`
	Status       *TaskStatus   `json:"status,omitempty" validate:"omitnil,oneof=todo doing done"`
	Priority     *TaskPriority `json:"priority,omitempty" validate:"omitnil,oneof=low medium high"`
	AssignedTo   *TaskAssignee `json:"assignedTo,omitempty" validate:"omitnil,oneof=me partner both"`
	Category     *string       `json:"category,omitempty"`
	DueDate      *time.Time    `json:"dueDate,omitempty"`
	ClearDueDate bool          `json:"clearDueDate,omitempty"`
}
