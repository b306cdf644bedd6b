package domain

import "time"

// Status is a task's board column. Any status is reachable from any other;
// the four values form a free graph, not a constrained state machine.
type Status string

const (
	StatusTodo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusQA         Status = "QA"
	StatusDone       Status = "Done"
)

// Statuses lists the board columns in display order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusQA, StatusDone}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusQA, StatusDone:
		return true
	}
	return false
}

// Priority of a task.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Valid reports whether p is one of the enumerated priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Subtask is a titled boolean checklist item owned by a task.
type Subtask struct {
	ID        string
	Title     string
	Completed bool
}

// TaskActivity records the most recent action taken on a task and who took
// it, e.g. a board move.
type TaskActivity struct {
	User      string
	Action    string
	Timestamp time.Time
}

// Task is a board card. Every task belongs to exactly one workspace.
//
// AssigneeID is a lookup key, not ownership: the referenced member may have
// been removed, and consumers must fall back to "Unassigned" when resolution
// fails.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	AssigneeID  string

	// DueDate is a plain calendar-day string (YYYY-MM-DD). Calendar
	// bucketing is string equality on this field, no timezone handling.
	DueDate string

	WorkspaceID string
	Subtasks    []Subtask

	CreatedAt time.Time
	UpdatedAt time.Time

	// LastActivity is set when a board move changes the task's status.
	LastActivity *TaskActivity
}
