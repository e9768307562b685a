package entities_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"peerplan/database"
	"peerplan/entities"
)

func TestOneSheetPerCourseWeek(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	first := &entities.PlanningSheet{CourseID: 1, WeekNumber: 3, WeeklyAbstract: "a"}
	require.NoError(t, db.Create(first).Error)

	dup := &entities.PlanningSheet{CourseID: 1, WeekNumber: 3, WeeklyAbstract: "b"}
	err = db.Create(dup).Error
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint")

	// a different week or course is fine
	require.NoError(t, db.Create(&entities.PlanningSheet{CourseID: 1, WeekNumber: 4}).Error)
	require.NoError(t, db.Create(&entities.PlanningSheet{CourseID: 2, WeekNumber: 3}).Error)
}

func TestSheetCollectionsRoundTrip(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	in := &entities.PlanningSheet{
		CourseID:           1,
		WeekNumber:         1,
		WeeklyAbstract:     "pointers",
		LearningObjectives: []string{"draw memory diagrams"},
		Questions: []entities.Question{
			{QuestionText: "what does & do", Difficulty: "easy", EstimatedTime: 5},
		},
		AssessmentMethods: []entities.AssessmentMethod{
			{MethodName: "Quiz", Description: "short", Duration: 10},
		},
	}
	require.NoError(t, db.Create(in).Error)

	var out entities.PlanningSheet
	require.NoError(t, db.First(&out, in.PlanningID).Error)
	assert.Equal(t, in.LearningObjectives, out.LearningObjectives)
	assert.Equal(t, in.Questions, out.Questions)
	assert.Equal(t, in.AssessmentMethods, out.AssessmentMethods)
}
