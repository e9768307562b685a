package entities

import (
	"fmt"
	"time"
)

type Course struct {
	CourseID      uint   `gorm:"primaryKey" json:"courseId"`
	SessionLeadID uint   `gorm:"index;uniqueIndex:idx_lead_course_term" json:"sessionLeadId"`
	CourseCode    string `gorm:"uniqueIndex:idx_lead_course_term;size:32" json:"courseCode"`
	CourseName    string `json:"courseName"`
	Semester      string `gorm:"uniqueIndex:idx_lead_course_term;size:16" json:"semester"` // Fall|Spring|Summer|Winter
	Year          int    `gorm:"uniqueIndex:idx_lead_course_term" json:"year"`
	Description   string `json:"description,omitempty"`
	// sessions per week
	SessionFrequency int `gorm:"default:2" json:"sessionFrequency"`
	TotalWeeks       int `gorm:"default:15" json:"totalWeeks"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Course) FullName() string {
	return fmt.Sprintf("%s - %s (%s %d)", c.CourseCode, c.CourseName, c.Semester, c.Year)
}

var Semesters = []string{"Fall", "Spring", "Summer", "Winter"}

func ValidSemester(s string) bool {
	for _, v := range Semesters {
		if v == s {
			return true
		}
	}
	return false
}
