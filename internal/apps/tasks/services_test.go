package tasks

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Task{}, &Project{}))
	return db
}

func TestCreateProjectThenTask(t *testing.T) {
	svc := NewTaskService(newTestDB(t))
	userID := uuid.New()

	// The created project record comes back so the task form can use
	// its ID right away.
	project, err := svc.CreateProject(userID, CreateProjectRequest{Name: "Inventory"})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, project.ID)
	assert.Equal(t, DefaultProjectColor, project.Color)

	task, err := svc.CreateTask(userID, CreateTaskRequest{
		Name:      "reorder gloves",
		ProjectID: project.ID.String(),
		DueDate:   "2026-09-15",
	})
	require.NoError(t, err)
	assert.Equal(t, project.ID, task.ProjectID)
	assert.Equal(t, PriorityMedium, task.Priority)
	require.NotNil(t, task.DueDate)

	items, err := svc.ListTasks(userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, task.ID, items[0].ID)
	assert.Equal(t, project.ID, items[0].ProjectID)
}

func TestCreateTaskRejectsForeignProject(t *testing.T) {
	svc := NewTaskService(newTestDB(t))

	owner := uuid.New()
	project, err := svc.CreateProject(owner, CreateProjectRequest{Name: "Private"})
	require.NoError(t, err)

	_, err = svc.CreateTask(uuid.New(), CreateTaskRequest{
		Name:      "sneaky",
		ProjectID: project.ID.String(),
	})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestToggleCompletionFlipsFlagOnly(t *testing.T) {
	svc := NewTaskService(newTestDB(t))
	userID := uuid.New()

	project, err := svc.CreateProject(userID, CreateProjectRequest{Name: "Inventory"})
	require.NoError(t, err)
	task, err := svc.CreateTask(userID, CreateTaskRequest{
		Name:      "clean fridge",
		ProjectID: project.ID.String(),
	})
	require.NoError(t, err)

	toggled, err := svc.ToggleCompletion(userID, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.Nil(t, toggled.DateCompleted)

	toggled, err = svc.ToggleCompletion(userID, task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)
}
