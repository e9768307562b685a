package entities

import "time"

const (
	MaterialSyllabus     = "syllabus"
	MaterialLectureNotes = "lecture_notes"
	MaterialTextbook     = "textbook"
	MaterialSlides       = "slides"
	MaterialAssignments  = "assignments"
	MaterialExams        = "exams"
	MaterialOther        = "other"
)

var MaterialTypes = []string{
	MaterialSyllabus, MaterialLectureNotes, MaterialTextbook,
	MaterialSlides, MaterialAssignments, MaterialExams, MaterialOther,
}

func ValidMaterialType(t string) bool {
	for _, v := range MaterialTypes {
		if v == t {
			return true
		}
	}
	return false
}

type CourseMaterial struct {
	MaterialID   uint   `gorm:"primaryKey" json:"materialId"`
	CourseID     uint   `gorm:"index:idx_material_course_week" json:"courseId"`
	UploadedBy   uint   `json:"uploadedBy"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	MaterialType string `gorm:"size:32" json:"materialType"`
	FileName     string `json:"fileName"`
	FilePath     string `json:"filePath"`
	FileSize     int64  `json:"fileSize"`
	MimeType     string `gorm:"size:128" json:"mimeType"`
	// best-effort plain text pulled out of the document at upload time
	ExtractedText string `json:"extractedText,omitempty"`
	PageCount     int    `json:"pageCount,omitempty"`
	WeekNumber    int    `gorm:"index:idx_material_course_week" json:"weekNumber,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
