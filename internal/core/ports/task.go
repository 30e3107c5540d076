package ports

import (
	"context"

	"taskhive/internal/core/domain"
)

type TaskRepository interface {
	ListByOwner(ctx context.Context, userID string) ([]domain.Task, error)
	Create(ctx context.Context, task domain.Task) (domain.Task, error)
	FindByID(ctx context.Context, taskID string) (domain.Task, error)
	FindByIDAndOwner(ctx context.Context, taskID, userID string) (domain.Task, error)
	DeleteByIDAndOwner(ctx context.Context, taskID, userID string) error
	Replace(ctx context.Context, task domain.Task) error
}

type TaskService interface {
	ListTasks(ctx context.Context, userID string) ([]domain.Task, error)
	CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, userID, taskID string) (domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
	UpdateTask(ctx context.Context, userID, taskID string, input domain.UpdateTaskInput) error
}
