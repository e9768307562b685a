package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"peerplan/entities"
)

// Shadow structs with pointer fields so a missing key is distinguishable from
// a zero value. A string where a number belongs fails the unmarshal outright;
// nothing is coerced.
type rawQuestion struct {
	QuestionText   *string  `json:"questionText"`
	Difficulty     *string  `json:"difficulty"`
	EstimatedTime  *float64 `json:"estimatedTime"`
	ExpectedAnswer string   `json:"expectedAnswer"`
}

type rawAssessment struct {
	MethodName  *string  `json:"methodName"`
	Description *string  `json:"description"`
	Duration    *float64 `json:"duration"`
}

type rawPlanning struct {
	WeeklyAbstract     *string         `json:"weeklyAbstract"`
	LearningObjectives []string        `json:"learningObjectives"`
	Questions          []rawQuestion   `json:"questions"`
	AssessmentMethods  []rawAssessment `json:"assessmentMethods"`
	AdditionalNotes    string          `json:"additionalNotes"`
}

// StripFences removes markdown code fencing some vendors wrap JSON replies in.
// Applying it to already-clean text is a no-op.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ParseGeneratedPlanning converts a provider's raw text reply into a validated
// GeneratedPlanning. Applied uniformly regardless of which vendor produced the
// text. Any single violation rejects the whole response; there is no
// field-level salvage.
func ParseGeneratedPlanning(raw string) (*GeneratedPlanning, error) {
	clean := StripFences(raw)

	var p rawPlanning
	if err := json.Unmarshal([]byte(clean), &p); err != nil {
		return nil, &FormatError{Reason: err.Error(), Raw: raw}
	}

	if p.WeeklyAbstract == nil || strings.TrimSpace(*p.WeeklyAbstract) == "" {
		return nil, &FormatError{Reason: "missing or invalid weeklyAbstract", Raw: raw}
	}
	if len(p.LearningObjectives) == 0 {
		return nil, &FormatError{Reason: "missing or invalid learningObjectives", Raw: raw}
	}
	if len(p.Questions) == 0 {
		return nil, &FormatError{Reason: "missing or invalid questions", Raw: raw}
	}
	if len(p.AssessmentMethods) == 0 {
		return nil, &FormatError{Reason: "missing or invalid assessmentMethods", Raw: raw}
	}

	out := &GeneratedPlanning{
		WeeklyAbstract:  *p.WeeklyAbstract,
		AdditionalNotes: p.AdditionalNotes,
	}
	out.LearningObjectives = p.LearningObjectives

	for i, q := range p.Questions {
		if q.QuestionText == nil || *q.QuestionText == "" || q.Difficulty == nil || *q.Difficulty == "" || q.EstimatedTime == nil {
			return nil, &FormatError{Reason: fmt.Sprintf("invalid question at index %d", i), Raw: raw}
		}
		out.Questions = append(out.Questions, entities.Question{
			QuestionText:   *q.QuestionText,
			Difficulty:     *q.Difficulty,
			EstimatedTime:  *q.EstimatedTime,
			ExpectedAnswer: q.ExpectedAnswer,
		})
	}

	for i, a := range p.AssessmentMethods {
		if a.MethodName == nil || *a.MethodName == "" || a.Description == nil || *a.Description == "" || a.Duration == nil {
			return nil, &FormatError{Reason: fmt.Sprintf("invalid assessment method at index %d", i), Raw: raw}
		}
		out.AssessmentMethods = append(out.AssessmentMethods, entities.AssessmentMethod{
			MethodName:  *a.MethodName,
			Description: *a.Description,
			Duration:    *a.Duration,
		})
	}

	return out, nil
}
