package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tasktracker/internal/models"
)

// ErrTaskNotFound is returned when the referenced task does not exist.
var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	Store(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	FindAll(ctx context.Context) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id int64) error

	// Toggle flips the completed flag and moves updated_at forward to at,
	// or one microsecond past its previous value if at is not later.
	Toggle(ctx context.Context, id int64, at time.Time) (*models.Task, error)
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, title, COALESCE(description, ''), due_date, priority, completed, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	t := &models.Task{}
	var due sql.NullTime
	if err := row.Scan(
		&t.ID, &t.Title, &t.Description, &due, &t.Priority,
		&t.Completed, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if due.Valid {
		d := models.DateOf(due.Time)
		t.DueDate = &d
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func nullDate(d *time.Time) any {
	if d == nil {
		return nil
	}
	return models.DateOf(*d)
}

// withTx runs fn inside a transaction, committing on success and rolling
// back on any error.
func (r *taskRepository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (title, description, due_date, priority, completed, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id`
	return r.withTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query,
			task.Title, task.Description, nullDate(task.DueDate), task.Priority,
			task.Completed, task.CreatedAt, task.UpdatedAt,
		).Scan(&task.ID)
		if err != nil {
			return fmt.Errorf("insert task: %w", err)
		}
		return nil
	})
}

func (r *taskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	return task, nil
}

func (r *taskRepository) FindAll(ctx context.Context) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks SET
			title=$1, description=$2, due_date=$3, priority=$4,
			completed=$5, updated_at=GREATEST($6, created_at)
		WHERE id=$7
		RETURNING created_at, updated_at`
	return r.withTx(ctx, func(tx *sql.Tx) error {
		if err := lockTask(ctx, tx, task.ID); err != nil {
			return err
		}
		err := tx.QueryRowContext(ctx, query,
			task.Title, task.Description, nullDate(task.DueDate), task.Priority,
			task.Completed, task.UpdatedAt, task.ID,
		).Scan(&task.CreatedAt, &task.UpdatedAt)
		if err != nil {
			return fmt.Errorf("update task %d: %w", task.ID, err)
		}
		task.CreatedAt = task.CreatedAt.UTC()
		task.UpdatedAt = task.UpdatedAt.UTC()
		return nil
	})
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete task %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete task %d: %w", id, err)
		}
		if n == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
}

func (r *taskRepository) Toggle(ctx context.Context, id int64, at time.Time) (*models.Task, error) {
	query := `
		UPDATE tasks SET
			completed = NOT completed,
			updated_at = GREATEST($1, updated_at + INTERVAL '1 microsecond')
		WHERE id = $2
		RETURNING ` + taskColumns
	var task *models.Task
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if err := lockTask(ctx, tx, id); err != nil {
			return err
		}
		t, err := scanTask(tx.QueryRowContext(ctx, query, at, id))
		if err != nil {
			return fmt.Errorf("toggle task %d: %w", id, err)
		}
		task = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func lockTask(ctx context.Context, tx *sql.Tx, id int64) error {
	var locked int64
	err := tx.QueryRowContext(ctx, `SELECT id FROM tasks WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrTaskNotFound
	}
	if err != nil {
		return fmt.Errorf("lock task %d: %w", id, err)
	}
	return nil
}
