package memory

import (
	"math"
	"sort"
	"sync"
	"testing"

	"github.com/phrazzld/task-registry/internal/domain"
	"github.com/phrazzld/task-registry/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint64) *uint64 {
	return &v
}

func TestTaskStore_AddThenGet(t *testing.T) {
	s := NewTaskStore(nil)

	added, err := s.Add("T", "D", nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), added.ID)

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, domain.TaskStatusPending, got.Status)
	assert.Nil(t, got.DueDate)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, "D", got.Description)
}

func TestTaskStore_Scenario(t *testing.T) {
	s := NewTaskStore(nil)

	milk, err := s.Add("Buy milk", "2% milk", nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), milk.ID)
	assert.Equal(t, domain.TaskStatusPending, milk.Status)

	_, err = s.Add("Pay bills", "", nil)
	require.Error(t, err)
	assert.True(t, domain.IsValidationError(err))
	assert.ErrorIs(t, err, domain.ErrEmptyDescription)

	tasks := s.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, uint64(1), tasks[0].ID)
}

func TestTaskStore_IDsStrictlyIncreasingAcrossDeletes(t *testing.T) {
	s := NewTaskStore(nil)

	var last uint64
	seen := make(map[uint64]bool)
	for i := 0; i < 50; i++ {
		task, err := s.Add("T", "D", nil)
		require.NoError(t, err)
		assert.Greater(t, task.ID, last, "IDs must be strictly increasing")
		assert.False(t, seen[task.ID], "IDs must never repeat")
		seen[task.ID] = true
		last = task.ID

		// Delete every other task, including the most recent one
		if i%2 == 0 {
			_, ok := s.Delete(task.ID)
			require.True(t, ok)
		}
	}

	// Deleting the newest task must not cause its ID to be reissued
	newest, err := s.Add("T", "D", nil)
	require.NoError(t, err)
	_, ok := s.Delete(newest.ID)
	require.True(t, ok)

	next, err := s.Add("T", "D", nil)
	require.NoError(t, err)
	assert.Equal(t, newest.ID+1, next.ID)
}

func TestTaskStore_ValidationLeavesStateUnchanged(t *testing.T) {
	s := NewTaskStore(nil)

	_, err := s.Add("", "D", nil)
	require.Error(t, err)
	_, err = s.Add("T", "  ", nil)
	require.Error(t, err)

	assert.Equal(t, 0, s.Len())

	// A rejected add does not consume an ID
	task, err := s.Add("T", "D", nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), task.ID)
}

func TestTaskStore_Update(t *testing.T) {
	s := NewTaskStore(nil)

	task, err := s.Add("T", "D", uintPtr(100))
	require.NoError(t, err)
	_, ok, err := s.SetStatus(task.ID, domain.TaskStatusCompleted)
	require.NoError(t, err)
	require.True(t, ok)

	updated, ok, err := s.Update(task.ID, "T2", "D2", nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, task.ID, updated.ID)
	assert.Equal(t, "T2", updated.Title)
	assert.Equal(t, "D2", updated.Description)
	assert.Nil(t, updated.DueDate)
	assert.Equal(t, domain.TaskStatusCompleted, updated.Status, "update must not touch status")

	got, ok := s.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, updated, got)

	withDue, ok, err := s.Update(task.ID, "T3", "D3", uintPtr(200))
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, withDue.DueDate)
	assert.Equal(t, uint64(200), *withDue.DueDate)
}

func TestTaskStore_UpdateMissing(t *testing.T) {
	s := NewTaskStore(nil)
	_, err := s.Add("T", "D", nil)
	require.NoError(t, err)
	before := s.List()

	_, ok, err := s.Update(99, "X", "Y", nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, before, s.List())
}

func TestTaskStore_UpdateValidation(t *testing.T) {
	s := NewTaskStore(nil)
	task, err := s.Add("T", "D", nil)
	require.NoError(t, err)

	_, ok, err := s.Update(task.ID, "", "D", nil)
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	// Validation happens before the lookup, so unknown IDs still report the error
	_, _, err = s.Update(12345, "T", "", nil)
	assert.ErrorIs(t, err, domain.ErrEmptyDescription)

	got, ok := s.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, "T", got.Title)
}

func TestTaskStore_Delete(t *testing.T) {
	s := NewTaskStore(nil)
	task, err := s.Add("T", "D", uintPtr(5))
	require.NoError(t, err)

	removed, ok := s.Delete(task.ID)
	require.True(t, ok)
	assert.Equal(t, task, removed)

	_, ok = s.Get(task.ID)
	assert.False(t, ok)

	// A second delete is a no-op that reports absence
	_, ok = s.Delete(task.ID)
	assert.False(t, ok)
}

func TestTaskStore_ListLength(t *testing.T) {
	s := NewTaskStore(nil)
	assert.NotNil(t, s.List())
	assert.Empty(t, s.List())

	adds, deletes := 0, 0
	var ids []uint64
	for i := 0; i < 10; i++ {
		task, err := s.Add("T", "D", nil)
		require.NoError(t, err)
		ids = append(ids, task.ID)
		adds++
	}
	for _, id := range ids[:4] {
		if _, ok := s.Delete(id); ok {
			deletes++
		}
	}
	// Deleting unknown IDs does not count
	s.Delete(1000)

	assert.Len(t, s.List(), adds-deletes)
	assert.Equal(t, adds-deletes, s.Len())
}

func TestTaskStore_SetStatus(t *testing.T) {
	s := NewTaskStore(nil)
	task, err := s.Add("T", "D", uintPtr(7))
	require.NoError(t, err)

	done, ok, err := s.SetStatus(task.ID, domain.TaskStatusCompleted)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.TaskStatusCompleted, done.Status)
	assert.Equal(t, task.Title, done.Title)
	assert.Equal(t, task.DueDate, done.DueDate)

	_, ok, err = s.SetStatus(999, domain.TaskStatusCompleted)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.SetStatus(task.ID, "archived")
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrInvalidTaskStatus)

	got, _ := s.Get(task.ID)
	assert.Equal(t, domain.TaskStatusCompleted, got.Status)
}

func TestTaskStore_ReturnsCopies(t *testing.T) {
	s := NewTaskStore(nil)
	due := uint64(10)
	added, err := s.Add("T", "D", &due)
	require.NoError(t, err)

	// Mutating the caller's input after the call must not leak into the store
	due = 11
	*added.DueDate = 12
	added.Title = "mutated"

	got, ok := s.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, "T", got.Title)
	assert.Equal(t, uint64(10), *got.DueDate)

	*got.DueDate = 13
	listed := s.List()
	require.Len(t, listed, 1)
	assert.Equal(t, uint64(10), *listed[0].DueDate)

	*listed[0].DueDate = 14
	again, _ := s.Get(added.ID)
	assert.Equal(t, uint64(10), *again.DueDate)
}

func TestTaskStore_IDSpaceExhausted(t *testing.T) {
	s := NewTaskStore(nil)
	s.nextID = math.MaxUint64

	assert.PanicsWithError(t,
		"add operation on task failed: cannot mint id: task ID space exhausted",
		func() { _, _ = s.Add("T", "D", nil) })

	// The lock must have been released by the panic
	assert.Equal(t, 0, s.Len())
}

func TestTaskStore_ConcurrentAddsProduceUniqueIDs(t *testing.T) {
	s := NewTaskStore(nil)

	const workers = 16
	const perWorker = 200

	var wg sync.WaitGroup
	results := make(chan uint64, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				task, err := s.Add("T", "D", nil)
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				results <- task.ID
			}
		}()
	}
	wg.Wait()
	close(results)

	ids := make([]uint64, 0, workers*perWorker)
	for id := range results {
		ids = append(ids, id)
	}
	require.Len(t, ids, workers*perWorker)

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		assert.Equal(t, uint64(i+1), id, "IDs must be dense and unique under concurrent adds")
	}
	assert.Equal(t, workers*perWorker, s.Len())
}

func TestTaskStore_ConcurrentMixedOperations(t *testing.T) {
	s := NewTaskStore(nil)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				task, err := s.Add("T", "D", nil)
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				_, _, _ = s.Update(task.ID, "T2", "D2", uintPtr(uint64(i)))
				_, _, _ = s.SetStatus(task.ID, domain.TaskStatusCompleted)
				_ = s.List()
				if i%2 == 0 {
					s.Delete(task.ID)
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 8*50, s.Len())
	for _, task := range s.List() {
		assert.Equal(t, "T2", task.Title)
		assert.Equal(t, domain.TaskStatusCompleted, task.Status)
	}
}

func TestTaskStore_ImplementsInterface(t *testing.T) {
	var s store.TaskStore = NewTaskStore(nil)
	assert.Equal(t, 0, s.Len())
}
