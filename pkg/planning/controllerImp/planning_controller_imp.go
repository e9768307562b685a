package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"peerplan/pkg/ai"
	"peerplan/pkg/planning/service"
)

type PlanningCtrl struct {
	svc  service.PlanningService
	orch *ai.Orchestrator
}

func New(svc service.PlanningService, orch *ai.Orchestrator) *PlanningCtrl {
	return &PlanningCtrl{svc: svc, orch: orch}
}

func (h *PlanningCtrl) Generate(c echo.Context) error {
	uid := c.Get("uid").(uint)

	var req service.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.CourseID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "courseId is required"})
	}
	if req.WeekNumber < 1 || req.WeekNumber > 52 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "weekNumber must be between 1 and 52"})
	}
	if req.AIProvider != "" && !ai.ValidProvider(req.AIProvider) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "aiProvider must be one of openai, gemini, claude"})
	}

	sheet, err := h.svc.Generate(c.Request().Context(), uid, req)
	if err != nil {
		return planningError(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Planning sheet generated successfully", "planning": sheet})
}

func (h *PlanningCtrl) GetByWeek(c echo.Context) error {
	courseID, _ := strconv.Atoi(c.Param("courseId"))
	week, _ := strconv.Atoi(c.Param("weekNumber"))
	sheet, err := h.svc.GetByWeek(uint(courseID), week)
	if err != nil {
		return planningError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"planning": sheet})
}

func (h *PlanningCtrl) ListByCourse(c echo.Context) error {
	courseID, _ := strconv.Atoi(c.Param("courseId"))
	sheets, err := h.svc.ListByCourse(uint(courseID))
	if err != nil {
		return planningError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"plannings": sheets})
}

func (h *PlanningCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))

	var req service.UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	sheet, err := h.svc.Update(uid, uint(id), req)
	if err != nil {
		return planningError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Planning sheet updated successfully", "planning": sheet})
}

type regenerateReq struct {
	AIProvider string `json:"aiProvider"`
}

func (h *PlanningCtrl) Regenerate(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))

	var req regenerateReq
	_ = c.Bind(&req)
	if req.AIProvider != "" && !ai.ValidProvider(req.AIProvider) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "aiProvider must be one of openai, gemini, claude"})
	}

	sheet, err := h.svc.Regenerate(c.Request().Context(), uid, uint(id), req.AIProvider)
	if err != nil {
		return planningError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Planning sheet regenerated successfully", "planning": sheet})
}

func (h *PlanningCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.svc.Delete(uid, uint(id)); err != nil {
		return planningError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "Planning sheet deleted successfully"})
}

func (h *PlanningCtrl) Export(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))

	x, name, err := h.svc.Export(uid, uint(id))
	if err != nil {
		return planningError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return x.Write(c.Response())
}

// Providers reports which of the three providers carry credentials. Purely a
// configuration diagnostic, no provider call is made.
func (h *PlanningCtrl) Providers(c echo.Context) error {
	out := make([]map[string]any, 0, len(ai.Providers))
	for _, p := range ai.Providers {
		out = append(out, map[string]any{"name": p, "configured": h.orch.Configured(p)})
	}
	return c.JSON(http.StatusOK, map[string]any{"providers": out, "default": h.orch.Resolve("")})
}

func planningError(c echo.Context, err error) error {
	var genErr *ai.GenerationError
	switch {
	case errors.Is(err, service.ErrWeekAlreadyPlanned):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrNotOwner):
		return c.JSON(http.StatusForbidden, map[string]string{"error": "Not authorized to manage planning for this course"})
	case errors.Is(err, service.ErrCourseNotFound), errors.Is(err, service.ErrSheetNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, ai.ErrProviderNotConfigured):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &genErr):
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": genErr.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
