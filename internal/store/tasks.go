package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/models"
)

// TaskStatusAll disables the status filter when listing tasks.
const TaskStatusAll = "all"

type TaskInput struct {
	Title            string
	Description      *string
	Subject          *string
	Priority         string
	Status           string
	DueDate          *string
	EstimatedMinutes *int // nil means models.DefaultEstimatedMinutes
}

func (in TaskInput) withDefaults() TaskInput {
	if in.Priority == "" {
		in.Priority = models.TaskPriorityMedium
	}
	if in.Status == "" {
		in.Status = models.TaskStatusPending
	}
	if in.EstimatedMinutes == nil {
		minutes := models.DefaultEstimatedMinutes
		in.EstimatedMinutes = &minutes
	}
	return in
}

func (s *Store) CreateTask(ctx context.Context, owner string, in TaskInput) (*models.Task, error) {
	in = in.withDefaults()
	task := &models.Task{
		ID:               newID(),
		UserID:           owner,
		Title:            in.Title,
		Description:      in.Description,
		Subject:          in.Subject,
		Priority:         in.Priority,
		Status:           in.Status,
		DueDate:          in.DueDate,
		EstimatedMinutes: *in.EstimatedMinutes,
		CreatedAt:        s.stamp(),
	}

	_, err := s.db.NamedExecContext(ctx, `
		INSERT INTO tasks (id, user_id, title, description, subject, priority, status, due_date, estimated_time, created_at)
		VALUES (:id, :user_id, :title, :description, :subject, :priority, :status, :due_date, :estimated_time, :created_at)`, task)
	if err != nil {
		return nil, errors.Wrap(err, "inserting task")
	}
	return task, nil
}

// ListTasks returns the owner's tasks newest-first, optionally filtered by status.
func (s *Store) ListTasks(ctx context.Context, owner, status string, limit int) ([]models.Task, error) {
	query := `SELECT * FROM tasks WHERE user_id = ?`
	args := []interface{}{owner}
	if status != "" && status != TaskStatusAll {
		query += ` AND status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC LIMIT ?`
	args = append(args, limit)

	tasks := []models.Task{}
	if err := s.db.SelectContext(ctx, &tasks, s.rebind(query), args...); err != nil {
		return nil, errors.Wrap(err, "listing tasks")
	}
	return tasks, nil
}

func (s *Store) UpdateTask(ctx context.Context, owner, id string, in TaskInput) error {
	if err := s.checkOwner(ctx, s.db, taskEntity, id, owner); err != nil {
		return err
	}

	in = in.withDefaults()
	_, err := s.db.ExecContext(ctx, s.rebind(`
		UPDATE tasks
		SET title = ?, description = ?, subject = ?, priority = ?, status = ?, due_date = ?, estimated_time = ?
		WHERE id = ? AND user_id = ?`),
		in.Title, in.Description, in.Subject, in.Priority, in.Status, in.DueDate, *in.EstimatedMinutes, id, owner)
	return errors.Wrap(err, "updating task")
}

func (s *Store) DeleteTask(ctx context.Context, owner, id string) error {
	if err := s.checkOwner(ctx, s.db, taskEntity, id, owner); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM tasks WHERE id = ? AND user_id = ?`), id, owner)
	return errors.Wrap(err, "deleting task")
}
