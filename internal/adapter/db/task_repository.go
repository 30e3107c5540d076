package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"

	"taskhive/internal/core/domain"
	"taskhive/internal/core/ports"
)

const (
	listTasksByOwnerQuery = `
SELECT id, title, description, status, user_id, created_at, updated_at
FROM tasks
WHERE user_id = ?
ORDER BY created_at, id;
`
	insertTaskQuery = `
INSERT INTO tasks (id, title, description, status, user_id)
VALUES (:id, :title, :description, :status, :user_id);
`
	findTaskByIDQuery = `
SELECT id, title, description, status, user_id, created_at, updated_at
FROM tasks
WHERE id = ?;
`
	findTaskByIDAndOwnerQuery = `
SELECT id, title, description, status, user_id, created_at, updated_at
FROM tasks
WHERE id = ? AND user_id = ?;
`
	deleteTaskByIDAndOwnerQuery = `
DELETE FROM tasks
WHERE id = ? AND user_id = ?;
`
	replaceTaskQuery = `
UPDATE tasks
SET title = :title, description = :description, status = :status
WHERE id = :id;
`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	UserID      string    `db:"user_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByOwner(ctx context.Context, userID string) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksByOwnerQuery, userID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) (domain.Task, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return domain.Task{}, err
	}

	row := taskRow{
		ID:          id.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		UserID:      task.UserID,
	}

	if _, err := r.db.NamedExecContext(ctx, insertTaskQuery, row); err != nil {
		return domain.Task{}, err
	}

	return r.FindByID(ctx, id.String())
}

func (r *TaskRepository) FindByID(ctx context.Context, taskID string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, findTaskByIDQuery, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) FindByIDAndOwner(ctx context.Context, taskID, userID string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, findTaskByIDAndOwnerQuery, taskID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

// DeleteByIDAndOwner removes the row only when the caller owns it. Zero
// affected rows means the task is absent or foreign; both report not found.
func (r *TaskRepository) DeleteByIDAndOwner(ctx context.Context, taskID, userID string) error {
	result, err := r.db.ExecContext(ctx, deleteTaskByIDAndOwnerQuery, taskID, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) Replace(ctx context.Context, task domain.Task) error {
	row := taskRow{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
	}

	_, err := r.db.NamedExecContext(ctx, replaceTaskQuery, row)
	return err
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Status:      domain.TaskStatus(row.Status),
		UserID:      row.UserID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
