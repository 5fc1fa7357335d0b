package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionByCompletion(t *testing.T) {
	items := []Task{
		{Name: "restock gloves", Completed: false},
		{Name: "order vaccines", Completed: true},
		{Name: "call supplier", Completed: false},
		{Name: "clean fridge", Completed: true},
		{Name: "check fridge log", Completed: false},
	}

	active, completed := PartitionByCompletion(items)

	require.Len(t, active, 3)
	require.Len(t, completed, 2)
	assert.Equal(t, len(items), len(active)+len(completed))

	// Incoming order survives within each half.
	assert.Equal(t, "restock gloves", active[0].Name)
	assert.Equal(t, "call supplier", active[1].Name)
	assert.Equal(t, "check fridge log", active[2].Name)
	assert.Equal(t, "order vaccines", completed[0].Name)
	assert.Equal(t, "clean fridge", completed[1].Name)
}

func TestPartitionByCompletionAllActive(t *testing.T) {
	items := []Task{
		{Name: "a"},
		{Name: "b"},
	}

	active, completed := PartitionByCompletion(items)

	assert.Len(t, active, 2)
	assert.Empty(t, completed)
}

func TestPartitionByCompletionAllCompleted(t *testing.T) {
	items := []Task{
		{Name: "a", Completed: true},
		{Name: "b", Completed: true},
	}

	active, completed := PartitionByCompletion(items)

	assert.Empty(t, active)
	assert.Len(t, completed, 2)
}

func TestPartitionByCompletionEmpty(t *testing.T) {
	active, completed := PartitionByCompletion(nil)

	assert.Empty(t, active)
	assert.Empty(t, completed)
}
