package serviceImp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"peerplan/database"
	"peerplan/entities"
	"peerplan/pkg/ai"
	courseRepoImp "peerplan/pkg/course/repositoryImp"
	custRepoImp "peerplan/pkg/customization/repositoryImp"
	matRepoImp "peerplan/pkg/material/repositoryImp"
	"peerplan/pkg/planning/repositoryImp"
	"peerplan/pkg/planning/service"
)

const validReply = `{
  "weeklyAbstract": "Recursion, base cases, and the call stack.",
  "learningObjectives": ["trace recursion", "spot base cases", "estimate depth"],
  "questions": [
    {"questionText": "q1", "difficulty": "easy", "estimatedTime": 5},
    {"questionText": "q2", "difficulty": "easy", "estimatedTime": 5},
    {"questionText": "q3", "difficulty": "medium", "estimatedTime": 10},
    {"questionText": "q4", "difficulty": "medium", "estimatedTime": 10},
    {"questionText": "q5", "difficulty": "hard", "estimatedTime": 15}
  ],
  "assessmentMethods": [
    {"methodName": "Quick Quiz", "description": "short answers", "duration": 10}
  ]
}`

const leadID uint = 1

func newTestService(t *testing.T, mock *ai.MockClient) (service.PlanningService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	orch := ai.NewOrchestrator(ai.ProviderOpenAI, zap.NewNop().Sugar(), mock)
	svc := NewPlanningService(
		repositoryImp.NewPlanningRepository(db),
		courseRepoImp.New(db),
		matRepoImp.New(db),
		custRepoImp.New(db),
		orch,
		zap.NewNop().Sugar(),
	)
	return svc, db
}

func seedCourse(t *testing.T, db *gorm.DB) *entities.Course {
	t.Helper()
	c := &entities.Course{
		SessionLeadID: leadID,
		CourseCode:    "CS101",
		CourseName:    "Introduction to Computer Science",
		Semester:      "Fall",
		Year:          2026,
	}
	require.NoError(t, db.Create(c).Error)
	return c
}

func okMock() *ai.MockClient {
	m := ai.NewMock(ai.ProviderOpenAI)
	m.Response = validReply
	return m
}

func TestGenerateHappyPath(t *testing.T) {
	mock := okMock()
	svc, db := newTestService(t, mock)
	course := seedCourse(t, db)

	require.NoError(t, db.Create(&entities.CourseMaterial{
		CourseID:      course.CourseID,
		UploadedBy:    leadID,
		Title:         "Week 3 Notes",
		MaterialType:  entities.MaterialLectureNotes,
		ExtractedText: "recursion and stacks",
		WeekNumber:    3,
	}).Error)

	sheet, err := svc.Generate(context.Background(), leadID, service.GenerateRequest{
		CourseID:   course.CourseID,
		WeekNumber: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, sheet.WeekNumber)
	assert.Len(t, sheet.Questions, 5)
	assert.False(t, sheet.IsCustomized)
	assert.Equal(t, "openai", sheet.AIProvider)
	assert.Equal(t, "openai AI", sheet.GeneratedWith)
	assert.Contains(t, mock.LastPrompt, "**Week 3 Notes** (lecture_notes): recursion and stacks")

	// defaults were created on first generation
	var cust entities.CustomizationSettings
	require.NoError(t, db.Where("course_id = ?", course.CourseID).First(&cust).Error)
	assert.Equal(t, 5, cust.NumberOfQuestions)
	assert.Equal(t, "openai", cust.PreferredAIProvider)
}

func TestGenerateDuplicateWeek(t *testing.T) {
	mock := okMock()
	svc, db := newTestService(t, mock)
	course := seedCourse(t, db)

	_, err := svc.Generate(context.Background(), leadID, service.GenerateRequest{CourseID: course.CourseID, WeekNumber: 3})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), leadID, service.GenerateRequest{CourseID: course.CourseID, WeekNumber: 3})
	assert.ErrorIs(t, err, service.ErrWeekAlreadyPlanned)
	assert.EqualValues(t, 1, mock.Calls())
}

func TestGenerateNotOwner(t *testing.T) {
	mock := okMock()
	svc, db := newTestService(t, mock)
	course := seedCourse(t, db)

	_, err := svc.Generate(context.Background(), leadID+1, service.GenerateRequest{CourseID: course.CourseID, WeekNumber: 1})
	assert.ErrorIs(t, err, service.ErrNotOwner)
	assert.EqualValues(t, 0, mock.Calls())
}

func TestGenerateUnknownCourse(t *testing.T) {
	svc, _ := newTestService(t, okMock())
	_, err := svc.Generate(context.Background(), leadID, service.GenerateRequest{CourseID: 404, WeekNumber: 1})
	assert.ErrorIs(t, err, service.ErrCourseNotFound)
}

func TestGenerateProviderNotConfigured(t *testing.T) {
	mock := okMock()
	svc, db := newTestService(t, mock)
	course := seedCourse(t, db)

	_, err := svc.Generate(context.Background(), leadID, service.GenerateRequest{
		CourseID:   course.CourseID,
		WeekNumber: 2,
		AIProvider: ai.ProviderClaude,
	})
	require.ErrorIs(t, err, ai.ErrProviderNotConfigured)
	assert.EqualValues(t, 0, mock.Calls())

	_, err = svc.GetByWeek(course.CourseID, 2)
	assert.ErrorIs(t, err, service.ErrSheetNotFound)
}

func TestGeneratePrefersPreviousAbstracts(t *testing.T) {
	mock := okMock()
	svc, db := newTestService(t, mock)
	course := seedCourse(t, db)

	for week := 1; week <= 4; week++ {
		require.NoError(t, db.Create(&entities.PlanningSheet{
			CourseID:       course.CourseID,
			CreatedBy:      leadID,
			WeekNumber:     week,
			WeeklyAbstract: map[int]string{1: "intro", 2: "types", 3: "loops", 4: "functions"}[week],
		}).Error)
	}

	_, err := svc.Generate(context.Background(), leadID, service.GenerateRequest{CourseID: course.CourseID, WeekNumber: 5})
	require.NoError(t, err)

	// three most recent prior weeks, most recent first
	assert.Contains(t, mock.LastPrompt, "functions, loops, types")
	assert.NotContains(t, mock.LastPrompt, "intro")
}

func TestUpdateSessionDateOnlyPreservesCustomized(t *testing.T) {
	svc, db := newTestService(t, okMock())
	course := seedCourse(t, db)

	sheet, err := svc.Generate(context.Background(), leadID, service.GenerateRequest{CourseID: course.CourseID, WeekNumber: 3})
	require.NoError(t, err)
	require.False(t, sheet.IsCustomized)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Update(leadID, sheet.PlanningID, service.UpdateRequest{SessionDate: &date})
	require.NoError(t, err)
	assert.False(t, updated.IsCustomized)
	require.NotNil(t, updated.SessionDate)
	assert.True(t, updated.SessionDate.Equal(date))
}

func TestUpdateQuestionsForcesCustomized(t *testing.T) {
	svc, db := newTestService(t, okMock())
	course := seedCourse(t, db)

	sheet, err := svc.Generate(context.Background(), leadID, service.GenerateRequest{CourseID: course.CourseID, WeekNumber: 3})
	require.NoError(t, err)

	no := false
	updated, err := svc.Update(leadID, sheet.PlanningID, service.UpdateRequest{
		Questions:    []entities.Question{{QuestionText: "edited", Difficulty: "easy", EstimatedTime: 5}},
		IsCustomized: &no,
	})
	require.NoError(t, err)

	// content edits win over the caller's flag
	assert.True(t, updated.IsCustomized)
	require.Len(t, updated.Questions, 1)
	assert.Equal(t, "edited", updated.Questions[0].QuestionText)
}

func TestUpdateNotOwner(t *testing.T) {
	svc, db := newTestService(t, okMock())
	course := seedCourse(t, db)

	sheet, err := svc.Generate(context.Background(), leadID, service.GenerateRequest{CourseID: course.CourseID, WeekNumber: 3})
	require.NoError(t, err)

	abstract := "mine now"
	_, err = svc.Update(leadID+1, sheet.PlanningID, service.UpdateRequest{WeeklyAbstract: &abstract})
	assert.ErrorIs(t, err, service.ErrNotOwner)
}

func TestRegenerateReplacesSheet(t *testing.T) {
	mock := okMock()
	svc, db := newTestService(t, mock)
	course := seedCourse(t, db)

	sheet, err := svc.Generate(context.Background(), leadID, service.GenerateRequest{CourseID: course.CourseID, WeekNumber: 3})
	require.NoError(t, err)

	fresh, err := svc.Regenerate(context.Background(), leadID, sheet.PlanningID, "")
	require.NoError(t, err)
	assert.NotEqual(t, sheet.PlanningID, fresh.PlanningID)
	assert.Equal(t, 3, fresh.WeekNumber)
	assert.False(t, fresh.IsCustomized)
	assert.EqualValues(t, 2, mock.Calls())
}

func TestRegenerateFailureLeavesWeekEmpty(t *testing.T) {
	mock := okMock()
	svc, db := newTestService(t, mock)
	course := seedCourse(t, db)

	sheet, err := svc.Generate(context.Background(), leadID, service.GenerateRequest{CourseID: course.CourseID, WeekNumber: 3})
	require.NoError(t, err)

	mock.Err = errors.New("rate limited")
	_, err = svc.Regenerate(context.Background(), leadID, sheet.PlanningID, "")
	require.Error(t, err)

	// delete already happened, the week is back to having no sheet
	_, err = svc.GetByWeek(course.CourseID, 3)
	assert.ErrorIs(t, err, service.ErrSheetNotFound)
}

func TestDelete(t *testing.T) {
	svc, db := newTestService(t, okMock())
	course := seedCourse(t, db)

	sheet, err := svc.Generate(context.Background(), leadID, service.GenerateRequest{CourseID: course.CourseID, WeekNumber: 3})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(leadID+1, sheet.PlanningID), service.ErrNotOwner)
	require.NoError(t, svc.Delete(leadID, sheet.PlanningID))
	_, err = svc.GetByWeek(course.CourseID, 3)
	assert.ErrorIs(t, err, service.ErrSheetNotFound)
}

func TestExport(t *testing.T) {
	svc, db := newTestService(t, okMock())
	course := seedCourse(t, db)

	sheet, err := svc.Generate(context.Background(), leadID, service.GenerateRequest{CourseID: course.CourseID, WeekNumber: 3})
	require.NoError(t, err)

	x, name, err := svc.Export(leadID, sheet.PlanningID)
	require.NoError(t, err)
	assert.Equal(t, "CS101_week3_planning.xlsx", name)

	v, err := x.GetCellValue("Planning Sheet", "B2")
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}
