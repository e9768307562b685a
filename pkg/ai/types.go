package ai

import "peerplan/entities"

// PlanningContext carries everything the prompt builder needs for one
// generation call. Built fresh per request, never persisted.
type PlanningContext struct {
	CourseCode          string
	CourseName          string
	WeekNumber          int
	CourseMaterials     []string
	Customization       *entities.CustomizationSettings
	PreviousWeeksTopics []string
}

// GeneratedPlanning is the validated output of a provider call. All four
// required fields are non-empty or the whole response was rejected.
type GeneratedPlanning struct {
	WeeklyAbstract     string                      `json:"weeklyAbstract"`
	LearningObjectives []string                    `json:"learningObjectives"`
	Questions          []entities.Question         `json:"questions"`
	AssessmentMethods  []entities.AssessmentMethod `json:"assessmentMethods"`
	AdditionalNotes    string                      `json:"additionalNotes,omitempty"`
}
