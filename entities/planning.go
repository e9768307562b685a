package entities

import "time"

type Question struct {
	QuestionText   string  `json:"questionText"`
	Difficulty     string  `json:"difficulty"`
	EstimatedTime  float64 `json:"estimatedTime"` // minutes
	ExpectedAnswer string  `json:"expectedAnswer,omitempty"`
}

type AssessmentMethod struct {
	MethodName  string  `json:"methodName"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"` // minutes
}

// PlanningSheet is the persisted weekly artifact. At most one sheet exists per
// (course, week): the composite unique index makes the loser of two racing
// generations fail its insert instead of overwriting.
type PlanningSheet struct {
	PlanningID  uint       `gorm:"primaryKey" json:"planningId"`
	CourseID    uint       `gorm:"uniqueIndex:idx_course_week" json:"courseId"`
	CreatedBy   uint       `json:"createdBy"`
	WeekNumber  int        `gorm:"uniqueIndex:idx_course_week" json:"weekNumber"`
	SessionDate *time.Time `json:"sessionDate,omitempty"`

	WeeklyAbstract     string             `json:"weeklyAbstract"`
	LearningObjectives []string           `gorm:"serializer:json" json:"learningObjectives"`
	Questions          []Question         `gorm:"serializer:json" json:"questions"`
	AssessmentMethods  []AssessmentMethod `gorm:"serializer:json" json:"assessmentMethods"`
	AdditionalNotes    string             `json:"additionalNotes,omitempty"`

	AIProvider    string `gorm:"size:32" json:"aiProvider"`
	GeneratedWith string `json:"generatedWith,omitempty"`
	// flips to true the first time generated content is edited by hand
	IsCustomized bool `json:"isCustomized"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
