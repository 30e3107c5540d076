package service

import (
	"context"

	"taskhive/internal/core/domain"
	"taskhive/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.taskRepository.ListByOwner(ctx, userID)
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	return s.taskRepository.Create(ctx, domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		UserID:      userID,
	})
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID string) (domain.Task, error) {
	return s.taskRepository.FindByIDAndOwner(ctx, taskID, userID)
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	return s.taskRepository.DeleteByIDAndOwner(ctx, taskID, userID)
}

// UpdateTask looks the task up by id before checking ownership, so a
// missing task and a foreign task produce different errors. Read and
// delete scope the lookup by owner instead and cannot tell the two apart.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID string, input domain.UpdateTaskInput) error {
	task, err := s.taskRepository.FindByID(ctx, taskID)
	if err != nil {
		return err
	}

	if task.UserID != userID {
		return domain.ErrTaskNotOwned
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Status = input.Status

	return s.taskRepository.Replace(ctx, task)
}

var _ ports.TaskService = (*TaskService)(nil)
