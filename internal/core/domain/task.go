package domain

import "time"

type TaskStatus string

// Statuses the web client cycles a task through. The store keeps whatever
// string the client sent; these constants document the expected values.
const (
	TaskStatusNew        TaskStatus = "New"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

// Task is owned by exactly one user. UserID is set from the authenticated
// identity at creation time and never changes afterwards.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description string
	Status      TaskStatus
}

// UpdateTaskInput replaces title, description and status wholesale. There
// are no partial updates; the client always sends the full object.
type UpdateTaskInput struct {
	Title       string
	Description string
	Status      TaskStatus
}
