// internal/services/task_service.go
package services

import (
	"context"
	"time"

	"tasktracker/internal/models"
	"tasktracker/internal/repositories"
)

// TaskService defines the interface for task-related business logic.
type TaskService interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	Stats(ctx context.Context) (models.TaskStats, error)
	Update(ctx context.Context, id int64, updateData *models.Task) (*models.Task, error)
	Delete(ctx context.Context, id int64) error
	Toggle(ctx context.Context, id int64) (*models.Task, error)
}

type taskService struct {
	repo repositories.TaskRepository
	now  func() time.Time
}

// Option configures a TaskService.
type Option func(*taskService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *taskService) { s.now = now }
}

// NewTaskService creates a new instance of TaskService.
func NewTaskService(repo repositories.TaskRepository, opts ...Option) TaskService {
	s := &taskService{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp is the current time in the precision the store keeps.
func (s *taskService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

func (s *taskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.DueDate != nil {
		d := models.DateOf(*task.DueDate)
		task.DueDate = &d
	}
	now := s.timestamp()
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := s.repo.Store(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return QueryTasks(tasks, filter), nil
}

func (s *taskService) Stats(ctx context.Context) (models.TaskStats, error) {
	tasks, err := s.repo.FindAll(ctx)
	if err != nil {
		return models.TaskStats{}, err
	}
	return ComputeStats(tasks, s.now()), nil
}

func (s *taskService) Update(ctx context.Context, id int64, updateData *models.Task) (*models.Task, error) {
	existingTask, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existingTask.Title = updateData.Title
	existingTask.Description = updateData.Description
	existingTask.DueDate = nil
	if updateData.DueDate != nil {
		d := models.DateOf(*updateData.DueDate)
		existingTask.DueDate = &d
	}
	existingTask.Priority = updateData.Priority
	if existingTask.Priority == "" {
		existingTask.Priority = models.PriorityMedium
	}
	existingTask.Completed = updateData.Completed

	existingTask.UpdatedAt = s.timestamp()

	if err := s.repo.Update(ctx, existingTask); err != nil {
		return nil, err
	}
	return existingTask, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *taskService) Toggle(ctx context.Context, id int64) (*models.Task, error) {
	return s.repo.Toggle(ctx, id, s.timestamp())
}
