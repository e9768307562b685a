package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"peerplan/entities"
	"peerplan/pkg/customization/repository"
)

type CustomizationCtrl struct{ repo repository.CustomizationRepository }

func New(repo repository.CustomizationRepository) *CustomizationCtrl {
	return &CustomizationCtrl{repo}
}

func (h *CustomizationCtrl) Get(c echo.Context) error {
	courseID, _ := strconv.Atoi(c.Param("courseId"))
	s, err := h.repo.FindByCourse(uint(courseID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// no settings yet is not an error; generation creates defaults lazily
			return c.JSON(http.StatusOK, map[string]any{"settings": nil})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"settings": s})
}

type settingsReq struct {
	PreferredAIProvider    string                  `json:"preferredAiProvider"`
	DefaultSessionDuration int                     `json:"defaultSessionDuration"`
	NumberOfQuestions      int                     `json:"numberOfQuestions"`
	QuestionDifficultyMix  *entities.DifficultyMix `json:"questionDifficultyMix"`
	AssessmentPreferences  []string                `json:"assessmentPreferences"`
	TeachingStyle          string                  `json:"teachingStyle"`
	AdditionalInstructions string                  `json:"additionalInstructions"`
}

func (req *settingsReq) validate() string {
	switch req.PreferredAIProvider {
	case "", "openai", "gemini", "claude":
	default:
		return "preferredAiProvider must be one of openai, gemini, claude"
	}
	if req.DefaultSessionDuration != 0 && (req.DefaultSessionDuration < 30 || req.DefaultSessionDuration > 240) {
		return "defaultSessionDuration must be between 30 and 240"
	}
	if req.NumberOfQuestions != 0 && (req.NumberOfQuestions < 1 || req.NumberOfQuestions > 20) {
		return "numberOfQuestions must be between 1 and 20"
	}
	if len(req.AdditionalInstructions) > 1000 {
		return "additionalInstructions must be at most 1000 characters"
	}
	return ""
}

// Upsert creates the course settings row on first save and patches it after.
func (h *CustomizationCtrl) Upsert(c echo.Context) error {
	uid := c.Get("uid").(uint)
	courseID, _ := strconv.Atoi(c.Param("courseId"))

	var req settingsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	s, err := h.repo.FindByCourse(uint(courseID))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s = entities.DefaultCustomization(uint(courseID), uid, req.PreferredAIProvider)
	} else if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	if req.PreferredAIProvider != "" {
		s.PreferredAIProvider = req.PreferredAIProvider
	}
	if req.DefaultSessionDuration != 0 {
		s.DefaultSessionDuration = req.DefaultSessionDuration
	}
	if req.NumberOfQuestions != 0 {
		s.NumberOfQuestions = req.NumberOfQuestions
	}
	if req.QuestionDifficultyMix != nil {
		s.QuestionDifficultyMix = *req.QuestionDifficultyMix
	}
	if req.AssessmentPreferences != nil {
		s.AssessmentPreferences = req.AssessmentPreferences
	}
	if req.TeachingStyle != "" {
		s.TeachingStyle = req.TeachingStyle
	}
	if req.AdditionalInstructions != "" {
		s.AdditionalInstructions = req.AdditionalInstructions
	}
	s.UserID = uid

	if err := h.repo.Save(s); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Settings saved successfully", "settings": s})
}
