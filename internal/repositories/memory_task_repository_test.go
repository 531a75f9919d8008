package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/models"
)

func TestMemoryRepositoryAssignsUniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepository()

	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		task := &models.Task{Title: "t", Priority: models.PriorityLow}
		require.NoError(t, repo.Store(ctx, task))
		assert.False(t, seen[task.ID])
		seen[task.ID] = true
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestMemoryRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepository()

	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	due := d
	task := &models.Task{Title: "orig", DueDate: &due}
	require.NoError(t, repo.Store(ctx, task))

	task.Title = "mutated"
	*task.DueDate = d.AddDate(0, 0, 1)

	got, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "orig", got.Title)
	assert.True(t, got.DueDate.Equal(d))
}

func TestMemoryRepositoryUpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepository()
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	task := &models.Task{Title: "a", CreatedAt: created, UpdatedAt: created}
	require.NoError(t, repo.Store(ctx, task))

	upd := &models.Task{ID: task.ID, Title: "b", CreatedAt: time.Time{}, UpdatedAt: created.Add(-time.Hour)}
	require.NoError(t, repo.Update(ctx, upd))

	got, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Title)
	assert.True(t, got.CreatedAt.Equal(created))
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestMemoryRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepository()

	_, err := repo.FindByID(ctx, 1)
	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &models.Task{ID: 1}), ErrTaskNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 1), ErrTaskNotFound)
	_, err = repo.Toggle(ctx, 1, time.Now())
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestMemoryRepositoryToggleMovesUpdatedAtForward(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTaskRepository()
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	task := &models.Task{Title: "a", CreatedAt: at, UpdatedAt: at}
	require.NoError(t, repo.Store(ctx, task))

	got, err := repo.Toggle(ctx, task.ID, at)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Equal(t, at.Add(time.Microsecond), got.UpdatedAt)

	later := at.Add(time.Hour)
	got, err = repo.Toggle(ctx, task.ID, later)
	require.NoError(t, err)
	assert.False(t, got.Completed)
	assert.Equal(t, later, got.UpdatedAt)
}
