package tasks

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vocesapp/voces-backend/internal/session"
	"github.com/vocesapp/voces-backend/internal/validation"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidDueDate  = errors.New("due_date must be formatted as YYYY-MM-DD")
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// ListTasks returns the user's tasks ordered newest-first.
func (s *TaskService) ListTasks(userID uuid.UUID) ([]Task, error) {
	var items []Task
	err := s.db.Scopes(session.ForOwner(userID)).
		Order("date_added DESC").
		Find(&items).Error
	return items, err
}

func (s *TaskService) ListProjects(userID uuid.UUID) ([]Project, error) {
	var projects []Project
	err := s.db.Scopes(session.ForOwner(userID)).
		Order("created_at ASC").
		Find(&projects).Error
	return projects, err
}

func (s *TaskService) CreateTask(userID uuid.UUID, req CreateTaskRequest) (*Task, error) {
	if err := validation.Struct(&req); err != nil {
		return nil, err
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	// The selected project must belong to the same user.
	var project Project
	if err := s.db.Scopes(session.ForOwner(userID)).First(&project, "id = ?", projectID).Error; err != nil {
		return nil, ErrProjectNotFound
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, ErrInvalidDueDate
		}
		dueDate = &d
	}

	priority := req.Priority
	if priority == 0 {
		priority = PriorityMedium
	}

	task := Task{
		ID:            uuid.New(),
		UserID:        userID,
		ProjectID:     projectID,
		Name:          req.Name,
		Description:   req.Description,
		Priority:      priority,
		DueDate:       dueDate,
		DateAdded:     time.Now().UTC(),
		Completed:     false,
		DateCompleted: nil,
	}

	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

func (s *TaskService) CreateProject(userID uuid.UUID, req CreateProjectRequest) (*Project, error) {
	if err := validation.Struct(&req); err != nil {
		return nil, err
	}

	color := req.Color
	if color == "" {
		color = DefaultProjectColor
	}

	project := Project{
		ID:     uuid.New(),
		UserID: userID,
		Name:   req.Name,
		Color:  color,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ToggleCompletion flips the completed flag for one task and returns the
// stored record so the client can reconcile its optimistic update.
// date_completed is intentionally left untouched here.
func (s *TaskService) ToggleCompletion(userID uuid.UUID, taskID uuid.UUID) (*Task, error) {
	var task Task
	if err := s.db.Scopes(session.ForOwner(userID)).First(&task, "id = ?", taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	task.Completed = !task.Completed
	if err := s.db.Model(&task).Update("completed", task.Completed).Error; err != nil {
		return nil, err
	}
	return &task, nil
}
