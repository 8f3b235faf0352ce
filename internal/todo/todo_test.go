package todo

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewTodoIsPending(t *testing.T) {
	userID := uuid.New()
	td := New(userID, "water the plants", "Home")

	assert.Equal(t, StatusPending, td.Status)
	assert.Nil(t, td.CompletedAt)
	assert.Equal(t, userID, td.UserID)
	assert.Empty(t, td.Subtasks)
}

// completedAt must be non-nil exactly when status is "completed",
// after any sequence of Complete/Revert calls.
func Test_CompleteRevertInvariant(t *testing.T) {
	td := New(uuid.New(), "file taxes", "Errands")

	checkInvariant := func() {
		t.Helper()
		assert.Equal(t, td.Status == StatusCompleted, td.CompletedAt != nil)
	}

	at := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	td.Complete(at)
	checkInvariant()
	require.NotNil(t, td.CompletedAt)
	// the caller-supplied timestamp is stored verbatim
	assert.Equal(t, at, *td.CompletedAt)

	td.Revert()
	checkInvariant()
	assert.Equal(t, StatusPending, td.Status)

	td.Complete(at.Add(time.Hour))
	td.Complete(at.Add(2 * time.Hour))
	checkInvariant()

	td.Revert()
	checkInvariant()
}

func Test_RevertIsIdempotent(t *testing.T) {
	td := New(uuid.New(), "read a chapter", "Personal")
	td.Complete(time.Now().UTC())

	td.Revert()
	once := *td

	td.Revert()
	assert.Equal(t, once.Status, td.Status)
	assert.Equal(t, once.CompletedAt, td.CompletedAt)
}

func Test_AddSubtask(t *testing.T) {
	td := New(uuid.New(), "plan trip", "Travel")
	td.Complete(time.Now().UTC())

	before := len(td.Subtasks)
	s, err := td.AddSubtask("book flights")
	require.NoError(t, err)

	// count grows by exactly one and the parent status never changes
	assert.Len(t, td.Subtasks, before+1)
	assert.Equal(t, StatusCompleted, td.Status)
	assert.False(t, s.Completed)
	assert.Equal(t, "book flights", s.Title)
}

func Test_AddSubtaskEmptyTitle(t *testing.T) {
	td := New(uuid.New(), "plan trip", "Travel")
	_, err := td.AddSubtask("")
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Empty(t, td.Subtasks)
}

func Test_CompleteSubtaskLeavesParentAlone(t *testing.T) {
	td := New(uuid.New(), "plan trip", "Travel")
	s1, err := td.AddSubtask("book flights")
	require.NoError(t, err)
	_, err = td.AddSubtask("pack bags")
	require.NoError(t, err)

	require.NoError(t, td.CompleteSubtask(s1.ID))
	assert.True(t, td.Subtasks[0].Completed)
	assert.False(t, td.Subtasks[1].Completed)
	assert.Equal(t, StatusPending, td.Status)

	// completing every subtask still does not roll up into the parent
	require.NoError(t, td.CompleteSubtask(td.Subtasks[1].ID))
	assert.Equal(t, StatusPending, td.Status)
}

func Test_CompleteSubtaskUnknownID(t *testing.T) {
	td := New(uuid.New(), "plan trip", "Travel")
	err := td.CompleteSubtask(uuid.New())
	assert.ErrorIs(t, err, ErrSubtaskNotFound)
}

func Test_RenameSubtask(t *testing.T) {
	td := New(uuid.New(), "plan trip", "Travel")
	s, err := td.AddSubtask("book flights")
	require.NoError(t, err)

	require.NoError(t, td.RenameSubtask(s.ID, "book trains"))
	assert.Equal(t, "book trains", td.Subtasks[0].Title)
	assert.False(t, td.Subtasks[0].Completed)

	assert.ErrorIs(t, td.RenameSubtask(uuid.New(), "x"), ErrSubtaskNotFound)
}

func Test_RemoveSubtask(t *testing.T) {
	td := New(uuid.New(), "plan trip", "Travel")
	s1, _ := td.AddSubtask("book flights")
	s2, _ := td.AddSubtask("pack bags")
	s3, _ := td.AddSubtask("buy sunscreen")

	require.NoError(t, td.RemoveSubtask(s2.ID))
	require.Len(t, td.Subtasks, 2)
	assert.Equal(t, s1.ID, td.Subtasks[0].ID)
	assert.Equal(t, s3.ID, td.Subtasks[1].ID)

	assert.ErrorIs(t, td.RemoveSubtask(s2.ID), ErrSubtaskNotFound)
}
