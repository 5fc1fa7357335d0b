package planner

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vocesapp/voces-backend/internal/apps/supplies"
	"github.com/vocesapp/voces-backend/internal/apps/tasks"
)

var (
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTimezone = errors.New("unknown timezone")
)

type PlannerService struct {
	tasks    *tasks.TaskService
	supplies *supplies.SupplyService
}

func NewPlannerService(db *gorm.DB) *PlannerService {
	return &PlannerService{
		tasks:    tasks.NewTaskService(db),
		supplies: supplies.NewSupplyService(db),
	}
}

type CalendarResponse struct {
	Selected string              `json:"selected"`
	Timezone string              `json:"timezone"`
	Marks    map[string]DayMarks `json:"marks"`
}

// Calendar builds the marks for the user's full set of dated tasks and
// supply expirations. selected defaults to today and tzName to UTC.
func (s *PlannerService) Calendar(userID uuid.UUID, selected, tzName string) (*CalendarResponse, error) {
	loc := time.UTC
	if tzName != "" {
		parsed, err := time.LoadLocation(tzName)
		if err != nil {
			return nil, ErrInvalidTimezone
		}
		loc = parsed
	}

	day := time.Now().In(loc)
	if selected != "" {
		parsed, err := time.ParseInLocation(dayKeyFormat, selected, loc)
		if err != nil {
			return nil, ErrInvalidDate
		}
		day = parsed
	}

	items, err := s.tasks.ListTasks(userID)
	if err != nil {
		return nil, err
	}
	stock, err := s.supplies.AllSupplies(userID)
	if err != nil {
		return nil, err
	}

	return &CalendarResponse{
		Selected: day.In(loc).Format(dayKeyFormat),
		Timezone: loc.String(),
		Marks:    BuildCalendarMarks(items, stock, day, loc),
	}, nil
}
