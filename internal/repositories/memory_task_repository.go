package repositories

import (
	"context"
	"sync"
	"time"

	"tasktracker/internal/models"
)

// memoryTaskRepository keeps tasks in process memory. Every method holds
// the lock for its whole duration, so each write is applied atomically.
type memoryTaskRepository struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]models.Task
}

func NewMemoryTaskRepository() TaskRepository {
	return &memoryTaskRepository{tasks: make(map[int64]models.Task)}
}

func cloneTask(t models.Task) models.Task {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	return t
}

func (r *memoryTaskRepository) Store(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	task.ID = r.nextID
	r.tasks[task.ID] = cloneTask(*task)
	return nil
}

func (r *memoryTaskRepository) FindByID(_ context.Context, id int64) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	t = cloneTask(t)
	return &t, nil
}

func (r *memoryTaskRepository) FindAll(_ context.Context) ([]models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, cloneTask(t))
	}
	return out, nil
}

func (r *memoryTaskRepository) Update(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.tasks[task.ID]
	if !ok {
		return ErrTaskNotFound
	}
	cur.Title = task.Title
	cur.Description = task.Description
	cur.DueDate = task.DueDate
	cur.Priority = task.Priority
	cur.Completed = task.Completed
	cur.UpdatedAt = task.UpdatedAt
	if cur.UpdatedAt.Before(cur.CreatedAt) {
		cur.UpdatedAt = cur.CreatedAt
	}
	cur = cloneTask(cur)
	r.tasks[task.ID] = cur

	task.CreatedAt = cur.CreatedAt
	task.UpdatedAt = cur.UpdatedAt
	return nil
}

func (r *memoryTaskRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *memoryTaskRepository) Toggle(_ context.Context, id int64, at time.Time) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, ErrTaskNotFound
	}
	t.Completed = !t.Completed
	if !at.After(t.UpdatedAt) {
		at = t.UpdatedAt.Add(time.Microsecond)
	}
	t.UpdatedAt = at
	r.tasks[id] = t

	out := cloneTask(t)
	return &out, nil
}
