package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peerplan/entities"
)

func testContext() PlanningContext {
	return PlanningContext{
		CourseCode: "CS101",
		CourseName: "Introduction to Computer Science",
		WeekNumber: 3,
		CourseMaterials: []string{
			"**Syllabus** (syllabus): course outline",
			"**Week 3 Notes** (lecture_notes): recursion and stacks",
		},
		Customization: &entities.CustomizationSettings{
			PreferredAIProvider:    "openai",
			DefaultSessionDuration: 90,
			NumberOfQuestions:      5,
			QuestionDifficultyMix:  entities.DifficultyMix{Easy: 30, Medium: 50, Hard: 20},
			AssessmentPreferences:  []string{"Quick Quiz", "Group Discussion"},
			TeachingStyle:          "interactive",
		},
		PreviousWeeksTopics: []string{"Variables and types", "Control flow"},
	}
}

func TestBuildPromptContents(t *testing.T) {
	p := BuildPrompt(testContext())

	assert.Contains(t, p, "- Course: CS101 - Introduction to Computer Science")
	assert.Contains(t, p, "- Week Number: 3")
	assert.Contains(t, p, "- Session Duration: 90 minutes")
	assert.Contains(t, p, "- Teaching Style: interactive")
	assert.Contains(t, p, "1. **Syllabus** (syllabus): course outline")
	assert.Contains(t, p, "2. **Week 3 Notes** (lecture_notes): recursion and stacks")
	assert.Contains(t, p, "- Difficulty Mix: 30% easy, 50% medium, 20% hard")
	assert.Contains(t, p, "- Preferred Assessment Methods: Quick Quiz, Group Discussion")
	assert.Contains(t, p, "1. Generate exactly 5 questions")
	assert.Contains(t, p, "Respond ONLY with valid JSON")
}

func TestBuildPromptSectionOrder(t *testing.T) {
	p := BuildPrompt(testContext())

	info := strings.Index(p, "**Course Information:**")
	mats := strings.Index(p, "**Course Materials for This Week:**")
	prev := strings.Index(p, "**Previous Weeks Topics:**")
	cust := strings.Index(p, "**Customization Preferences:**")
	out := strings.Index(p, "**Required Output (JSON format only):**")

	for _, i := range []int{info, mats, prev, cust, out} {
		require.GreaterOrEqual(t, i, 0)
	}
	assert.Less(t, info, mats)
	assert.Less(t, mats, prev)
	assert.Less(t, prev, cust)
	assert.Less(t, cust, out)
}

func TestBuildPromptOptionalSections(t *testing.T) {
	ctx := testContext()
	ctx.PreviousWeeksTopics = nil
	ctx.Customization.AdditionalInstructions = ""

	p := BuildPrompt(ctx)
	assert.NotContains(t, p, "**Previous Weeks Topics:**")
	assert.NotContains(t, p, "- Additional Instructions:")

	ctx.Customization.AdditionalInstructions = "focus on worked examples"
	p = BuildPrompt(ctx)
	assert.Contains(t, p, "- Additional Instructions: focus on worked examples")
}

func TestBuildPromptDeterministic(t *testing.T) {
	assert.Equal(t, BuildPrompt(testContext()), BuildPrompt(testContext()))
}
