package serviceImp

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"peerplan/entities"
)

func (s *planningService) Export(userID, planningID uint) (*excelize.File, string, error) {
	sheet, err := s.ownedSheet(userID, planningID)
	if err != nil {
		return nil, "", err
	}
	course, err := s.courses.FindByID(sheet.CourseID)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("%s_week%d_planning.xlsx", course.CourseCode, sheet.WeekNumber)
	return buildWorkbook(course, sheet), name, nil
}

func buildWorkbook(course *entities.Course, p *entities.PlanningSheet) *excelize.File {
	x := excelize.NewFile()
	const tab = "Planning Sheet"
	x.SetSheetName("Sheet1", tab)

	set := func(cell string, v any) { _ = x.SetCellValue(tab, cell, v) }

	set("A1", "Course")
	set("B1", course.CourseCode+" - "+course.CourseName)
	set("A2", "Week")
	set("B2", p.WeekNumber)
	if p.SessionDate != nil {
		set("A3", "Session Date")
		set("B3", p.SessionDate.Format("2006-01-02"))
	}
	set("A4", "Generated With")
	set("B4", p.GeneratedWith)

	set("A6", "Weekly Abstract")
	set("B6", p.WeeklyAbstract)
	set("A7", "Learning Objectives")
	set("B7", strings.Join(p.LearningObjectives, "\n"))

	row := 9
	set(fmt.Sprintf("A%d", row), "Questions")
	row++
	for i, c := range []string{"#", "Question", "Difficulty", "Est. Minutes", "Expected Answer"} {
		set(fmt.Sprintf("%c%d", 'A'+i, row), c)
	}
	row++
	for i, q := range p.Questions {
		set(fmt.Sprintf("A%d", row), i+1)
		set(fmt.Sprintf("B%d", row), q.QuestionText)
		set(fmt.Sprintf("C%d", row), q.Difficulty)
		set(fmt.Sprintf("D%d", row), q.EstimatedTime)
		set(fmt.Sprintf("E%d", row), q.ExpectedAnswer)
		row++
	}

	row++
	set(fmt.Sprintf("A%d", row), "Assessment Methods")
	row++
	for i, c := range []string{"#", "Method", "Description", "Minutes"} {
		set(fmt.Sprintf("%c%d", 'A'+i, row), c)
	}
	row++
	for i, m := range p.AssessmentMethods {
		set(fmt.Sprintf("A%d", row), i+1)
		set(fmt.Sprintf("B%d", row), m.MethodName)
		set(fmt.Sprintf("C%d", row), m.Description)
		set(fmt.Sprintf("D%d", row), m.Duration)
		row++
	}

	if p.AdditionalNotes != "" {
		row++
		set(fmt.Sprintf("A%d", row), "Notes")
		set(fmt.Sprintf("B%d", row), p.AdditionalNotes)
	}
	return x
}
