package ai

import (
	"fmt"
	"strings"
)

// jsonReminder is appended at dispatch time for vendors that tend to wrap
// replies in markdown fences despite the closing instruction.
const jsonReminder = "\n\nRemember: Respond with ONLY valid JSON, no markdown."

// BuildPrompt renders a PlanningContext into the single provider-agnostic
// instruction block. Pure and deterministic: same context, same string.
func BuildPrompt(ctx PlanningContext) string {
	cust := ctx.Customization
	var b strings.Builder

	b.WriteString("You are an AI assistant helping create a peer study session planning sheet for a university course.\n\n")

	fmt.Fprintf(&b, "**Course Information:**\n")
	fmt.Fprintf(&b, "- Course: %s - %s\n", ctx.CourseCode, ctx.CourseName)
	fmt.Fprintf(&b, "- Week Number: %d\n", ctx.WeekNumber)
	fmt.Fprintf(&b, "- Session Duration: %d minutes\n", cust.DefaultSessionDuration)
	fmt.Fprintf(&b, "- Teaching Style: %s\n\n", cust.TeachingStyle)

	b.WriteString("**Course Materials for This Week:**\n")
	for i, m := range ctx.CourseMaterials {
		fmt.Fprintf(&b, "%d. %s\n", i+1, m)
	}
	b.WriteString("\n")

	if len(ctx.PreviousWeeksTopics) > 0 {
		fmt.Fprintf(&b, "**Previous Weeks Topics:**\n%s\n\n", strings.Join(ctx.PreviousWeeksTopics, ", "))
	}

	b.WriteString("**Customization Preferences:**\n")
	fmt.Fprintf(&b, "- Number of Questions: %d\n", cust.NumberOfQuestions)
	fmt.Fprintf(&b, "- Difficulty Mix: %d%% easy, %d%% medium, %d%% hard\n",
		cust.QuestionDifficultyMix.Easy, cust.QuestionDifficultyMix.Medium, cust.QuestionDifficultyMix.Hard)
	fmt.Fprintf(&b, "- Preferred Assessment Methods: %s\n", strings.Join(cust.AssessmentPreferences, ", "))
	if cust.AdditionalInstructions != "" {
		fmt.Fprintf(&b, "- Additional Instructions: %s\n", cust.AdditionalInstructions)
	}
	b.WriteString("\n")

	b.WriteString(`**Required Output (JSON format only):**
Generate a peer study session planning sheet with the following structure:

{
  "weeklyAbstract": "A concise 2-3 sentence summary of what will be covered this week",
  "learningObjectives": ["objective 1", "objective 2", "objective 3"],
  "questions": [
    {
      "questionText": "The question text",
      "difficulty": "easy|medium|hard",
      "estimatedTime": minutes_as_number,
      "expectedAnswer": "Brief expected answer or key points"
    }
  ],
  "assessmentMethods": [
    {
      "methodName": "Name of assessment method",
      "description": "How to use this method",
      "duration": minutes_as_number
    }
  ],
  "additionalNotes": "Any additional tips or notes for the session lead"
}

**Important Guidelines:**
`)
	fmt.Fprintf(&b, "1. Generate exactly %d questions\n", cust.NumberOfQuestions)
	b.WriteString(`2. Follow the specified difficulty distribution
3. Questions should progress from basic understanding to application
4. Assessment methods should check different levels of understanding
5. Ensure all content is relevant to the course materials provided
6. Make questions specific and actionable
7. Provide practical assessment methods that fit within the session duration

Respond ONLY with valid JSON. Do not include any markdown formatting or code blocks.`)

	return b.String()
}
