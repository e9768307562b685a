package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"peerplan/entities"
	"peerplan/pkg/course/repository"
)

type CourseCtrl struct{ repo repository.CourseRepository }

func New(repo repository.CourseRepository) *CourseCtrl { return &CourseCtrl{repo} }

type courseReq struct {
	CourseCode       string `json:"courseCode"`
	CourseName       string `json:"courseName"`
	Semester         string `json:"semester"`
	Year             int    `json:"year"`
	Description      string `json:"description"`
	SessionFrequency int    `json:"sessionFrequency"`
	TotalWeeks       int    `json:"totalWeeks"`
}

func (req *courseReq) validate() string {
	if strings.TrimSpace(req.CourseCode) == "" || strings.TrimSpace(req.CourseName) == "" {
		return "courseCode and courseName are required"
	}
	if !entities.ValidSemester(req.Semester) {
		return "semester must be one of Fall, Spring, Summer, Winter"
	}
	if req.Year == 0 {
		return "year is required"
	}
	if req.SessionFrequency < 0 || req.SessionFrequency > 7 {
		return "sessionFrequency must be between 1 and 7"
	}
	if req.TotalWeeks < 0 || req.TotalWeeks > 52 {
		return "totalWeeks must be between 1 and 52"
	}
	return ""
}

func (h *CourseCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(uint)
	var req courseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	course := &entities.Course{
		SessionLeadID:    uid,
		CourseCode:       strings.ToUpper(strings.TrimSpace(req.CourseCode)),
		CourseName:       strings.TrimSpace(req.CourseName),
		Semester:         req.Semester,
		Year:             req.Year,
		Description:      strings.TrimSpace(req.Description),
		SessionFrequency: req.SessionFrequency,
		TotalWeeks:       req.TotalWeeks,
	}
	if course.SessionFrequency == 0 {
		course.SessionFrequency = 2
	}
	if course.TotalWeeks == 0 {
		course.TotalWeeks = 15
	}
	if err := h.repo.Create(course); err != nil {
		// unique (lead, code, semester, year) violation lands here
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Course created successfully", "course": course})
}

func (h *CourseCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(uint)
	courses, err := h.repo.ListByLead(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"courses": courses})
}

func (h *CourseCtrl) Get(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	course, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "course not found"})
	}
	return c.JSON(http.StatusOK, map[string]any{"course": course})
}

func (h *CourseCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	course, err := h.repo.FindByID(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "course not found"})
	}
	if course.SessionLeadID != uid {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "not authorized to update this course"})
	}
	var req courseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.CourseCode != "" {
		course.CourseCode = strings.ToUpper(strings.TrimSpace(req.CourseCode))
	}
	if req.CourseName != "" {
		course.CourseName = strings.TrimSpace(req.CourseName)
	}
	if req.Semester != "" {
		if !entities.ValidSemester(req.Semester) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid semester"})
		}
		course.Semester = req.Semester
	}
	if req.Year != 0 {
		course.Year = req.Year
	}
	if req.Description != "" {
		course.Description = strings.TrimSpace(req.Description)
	}
	if req.SessionFrequency != 0 {
		course.SessionFrequency = req.SessionFrequency
	}
	if req.TotalWeeks != 0 {
		course.TotalWeeks = req.TotalWeeks
	}
	if err := h.repo.Update(course); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Course updated successfully", "course": course})
}

func (h *CourseCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.DeleteCascade(uint(id), uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "course not found or unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Course deleted successfully"})
}
