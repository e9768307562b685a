package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"peerplan/entities"
	"peerplan/pkg/ai"
	courserepo "peerplan/pkg/course/repository"
	custrepo "peerplan/pkg/customization/repository"
	matrepo "peerplan/pkg/material/repository"
	"peerplan/pkg/planning/repository"
	"peerplan/pkg/planning/service"
)

const excerptRunes = 2000

type planningService struct {
	plans    repository.PlanningRepository
	courses  courserepo.CourseRepository
	mats     matrepo.MaterialRepository
	settings custrepo.CustomizationRepository
	orch     *ai.Orchestrator
	log      *zap.SugaredLogger
}

func NewPlanningService(
	plans repository.PlanningRepository,
	courses courserepo.CourseRepository,
	mats matrepo.MaterialRepository,
	settings custrepo.CustomizationRepository,
	orch *ai.Orchestrator,
	log *zap.SugaredLogger,
) service.PlanningService {
	return &planningService{plans: plans, courses: courses, mats: mats, settings: settings, orch: orch, log: log}
}

func (s *planningService) Generate(ctx context.Context, userID uint, req service.GenerateRequest) (*entities.PlanningSheet, error) {
	if _, err := s.plans.FindByCourseWeek(req.CourseID, req.WeekNumber); err == nil {
		return nil, service.ErrWeekAlreadyPlanned
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	course, err := s.courses.FindByID(req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrCourseNotFound
		}
		return nil, err
	}
	if course.SessionLeadID != userID {
		return nil, service.ErrNotOwner
	}

	cust, err := s.courseSettings(req.CourseID, userID, req.AIProvider)
	if err != nil {
		return nil, err
	}

	mats, err := s.requestMaterials(req)
	if err != nil {
		return nil, err
	}

	previous, err := s.plans.ListPrevious(req.CourseID, req.WeekNumber, 3)
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(previous))
	for _, p := range previous {
		topics = append(topics, p.WeeklyAbstract)
	}

	pctx := ai.PlanningContext{
		CourseCode:          course.CourseCode,
		CourseName:          course.CourseName,
		WeekNumber:          req.WeekNumber,
		CourseMaterials:     materialExcerpts(mats),
		Customization:       cust,
		PreviousWeeksTopics: topics,
	}

	provider := req.AIProvider
	if provider == "" {
		provider = cust.PreferredAIProvider
	}

	generated, used, err := s.orch.Generate(ctx, pctx, provider)
	if err != nil {
		return nil, err
	}

	sheet := &entities.PlanningSheet{
		CourseID:           req.CourseID,
		CreatedBy:          userID,
		WeekNumber:         req.WeekNumber,
		SessionDate:        req.SessionDate,
		WeeklyAbstract:     generated.WeeklyAbstract,
		LearningObjectives: generated.LearningObjectives,
		Questions:          generated.Questions,
		AssessmentMethods:  generated.AssessmentMethods,
		AdditionalNotes:    generated.AdditionalNotes,
		AIProvider:         used,
		GeneratedWith:      used + " AI",
		IsCustomized:       false,
	}
	if err := s.plans.Create(sheet); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, service.ErrWeekAlreadyPlanned
		}
		return nil, err
	}
	s.log.Infow("planning sheet generated",
		"courseId", req.CourseID, "week", req.WeekNumber, "provider", used)
	return sheet, nil
}

// courseSettings loads the course customization, creating the defaults on
// first touch so generation never runs without a difficulty mix.
func (s *planningService) courseSettings(courseID, userID uint, provider string) (*entities.CustomizationSettings, error) {
	cust, err := s.settings.FindByCourse(courseID)
	if err == nil {
		return cust, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	cust = entities.DefaultCustomization(courseID, userID, provider)
	if err := s.settings.Create(cust); err != nil {
		return nil, err
	}
	return cust, nil
}

func (s *planningService) requestMaterials(req service.GenerateRequest) ([]entities.CourseMaterial, error) {
	if len(req.MaterialIDs) > 0 {
		return s.mats.FindByIDs(req.CourseID, req.MaterialIDs)
	}
	return s.mats.FindByCourseWeek(req.CourseID, req.WeekNumber)
}

// materialExcerpts renders each material as one prompt-ready line. Extracted
// text wins, then the description, then just the title.
func materialExcerpts(mats []entities.CourseMaterial) []string {
	out := make([]string, 0, len(mats))
	for _, m := range mats {
		preview := m.ExtractedText
		if preview == "" {
			preview = m.Description
		}
		if preview == "" {
			preview = m.Title
		}
		out = append(out, fmt.Sprintf("**%s** (%s): %s", m.Title, m.MaterialType, truncateRunes(preview, excerptRunes)))
	}
	return out
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func (s *planningService) GetByWeek(courseID uint, week int) (*entities.PlanningSheet, error) {
	sheet, err := s.plans.FindByCourseWeek(courseID, week)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrSheetNotFound
		}
		return nil, err
	}
	return sheet, nil
}

func (s *planningService) ListByCourse(courseID uint) ([]entities.PlanningSheet, error) {
	return s.plans.ListByCourse(courseID)
}

func (s *planningService) Update(userID, planningID uint, req service.UpdateRequest) (*entities.PlanningSheet, error) {
	sheet, err := s.ownedSheet(userID, planningID)
	if err != nil {
		return nil, err
	}

	touched := false
	if req.WeeklyAbstract != nil {
		sheet.WeeklyAbstract = *req.WeeklyAbstract
		touched = true
	}
	if req.LearningObjectives != nil {
		sheet.LearningObjectives = req.LearningObjectives
		touched = true
	}
	if req.Questions != nil {
		sheet.Questions = req.Questions
		touched = true
	}
	if req.AssessmentMethods != nil {
		sheet.AssessmentMethods = req.AssessmentMethods
		touched = true
	}
	if req.SessionDate != nil {
		sheet.SessionDate = req.SessionDate
	}
	if req.AdditionalNotes != nil {
		sheet.AdditionalNotes = *req.AdditionalNotes
	}

	// editing generated content always marks the sheet customized, whatever
	// the caller put in the flag
	if touched {
		sheet.IsCustomized = true
	} else if req.IsCustomized != nil {
		sheet.IsCustomized = *req.IsCustomized
	}

	if err := s.plans.Save(sheet); err != nil {
		return nil, err
	}
	return sheet, nil
}

func (s *planningService) Regenerate(ctx context.Context, userID, planningID uint, provider string) (*entities.PlanningSheet, error) {
	sheet, err := s.ownedSheet(userID, planningID)
	if err != nil {
		return nil, err
	}

	courseID, week := sheet.CourseID, sheet.WeekNumber
	if err := s.plans.Delete(planningID); err != nil {
		return nil, err
	}

	// delete and generate are two separate steps: a provider failure here
	// leaves the week without a sheet, and the caller generates again
	fresh, err := s.Generate(ctx, userID, service.GenerateRequest{
		CourseID:   courseID,
		WeekNumber: week,
		AIProvider: provider,
	})
	if err != nil {
		s.log.Warnw("regeneration failed after delete",
			"courseId", courseID, "week", week, "error", err)
		return nil, err
	}
	return fresh, nil
}

func (s *planningService) Delete(userID, planningID uint) error {
	if _, err := s.ownedSheet(userID, planningID); err != nil {
		return err
	}
	return s.plans.Delete(planningID)
}

// ownedSheet loads a sheet and checks the caller owns its course.
func (s *planningService) ownedSheet(userID, planningID uint) (*entities.PlanningSheet, error) {
	sheet, err := s.plans.FindByID(planningID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrSheetNotFound
		}
		return nil, err
	}
	course, err := s.courses.FindByID(sheet.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrCourseNotFound
		}
		return nil, err
	}
	if course.SessionLeadID != userID {
		return nil, service.ErrNotOwner
	}
	return sheet, nil
}
