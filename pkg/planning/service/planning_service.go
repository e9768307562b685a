package service

import (
	"context"
	"errors"
	"time"

	"github.com/xuri/excelize/v2"

	"peerplan/entities"
)

var (
	ErrCourseNotFound     = errors.New("course not found")
	ErrSheetNotFound      = errors.New("planning sheet not found")
	ErrNotOwner           = errors.New("not the course owner")
	ErrWeekAlreadyPlanned = errors.New("a planning sheet already exists for this week")
)

type GenerateRequest struct {
	CourseID    uint       `json:"courseId"`
	WeekNumber  int        `json:"weekNumber"`
	SessionDate *time.Time `json:"sessionDate"`
	AIProvider  string     `json:"aiProvider"`
	MaterialIDs []uint     `json:"materialIds"`
}

// UpdateRequest carries a partial edit. Nil pointers and nil slices mean
// "leave as is". Touching any generated field marks the sheet customized.
type UpdateRequest struct {
	SessionDate        *time.Time                  `json:"sessionDate"`
	WeeklyAbstract     *string                     `json:"weeklyAbstract"`
	LearningObjectives []string                    `json:"learningObjectives"`
	Questions          []entities.Question         `json:"questions"`
	AssessmentMethods  []entities.AssessmentMethod `json:"assessmentMethods"`
	AdditionalNotes    *string                     `json:"additionalNotes"`
	IsCustomized       *bool                       `json:"isCustomized"`
}

type PlanningService interface {
	Generate(ctx context.Context, userID uint, req GenerateRequest) (*entities.PlanningSheet, error)
	GetByWeek(courseID uint, week int) (*entities.PlanningSheet, error)
	ListByCourse(courseID uint) ([]entities.PlanningSheet, error)
	Update(userID, planningID uint, req UpdateRequest) (*entities.PlanningSheet, error)
	Regenerate(ctx context.Context, userID, planningID uint, provider string) (*entities.PlanningSheet, error)
	Delete(userID, planningID uint) error
	// Export renders the sheet as a spreadsheet and returns it with a
	// suggested filename.
	Export(userID, planningID uint) (*excelize.File, string, error)
}
