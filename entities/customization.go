package entities

import "time"

type DifficultyMix struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

type CustomizationSettings struct {
	SettingsID uint `gorm:"primaryKey" json:"settingsId"`
	CourseID   uint `gorm:"uniqueIndex" json:"courseId"`
	UserID     uint `json:"userId"`

	PreferredAIProvider    string        `gorm:"size:32" json:"preferredAiProvider"` // openai|gemini|claude
	DefaultSessionDuration int           `json:"defaultSessionDuration"`             // minutes
	NumberOfQuestions      int           `json:"numberOfQuestions"`
	QuestionDifficultyMix  DifficultyMix `gorm:"serializer:json" json:"questionDifficultyMix"`
	AssessmentPreferences  []string      `gorm:"serializer:json" json:"assessmentPreferences"`
	TeachingStyle          string        `gorm:"size:32" json:"teachingStyle"`
	AdditionalInstructions string        `json:"additionalInstructions,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DefaultCustomization is used when a course has no saved settings yet: the
// planning workflow creates one lazily with these values on first generation.
func DefaultCustomization(courseID, userID uint, provider string) *CustomizationSettings {
	if provider == "" {
		provider = "openai"
	}
	return &CustomizationSettings{
		CourseID:               courseID,
		UserID:                 userID,
		PreferredAIProvider:    provider,
		DefaultSessionDuration: 90,
		NumberOfQuestions:      5,
		QuestionDifficultyMix:  DifficultyMix{Easy: 30, Medium: 50, Hard: 20},
		AssessmentPreferences:  []string{"Quick Quiz", "Group Discussion", "Problem Solving"},
		TeachingStyle:          "interactive",
	}
}
