package controllerImp

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"peerplan/entities"
	"peerplan/pkg/material/extract"
	"peerplan/pkg/material/repository"
)

type MaterialCtrl struct {
	repo      repository.MaterialRepository
	uploadDir string
	maxBytes  int64
}

func New(repo repository.MaterialRepository, uploadDir string, maxUploadMB int64) *MaterialCtrl {
	return &MaterialCtrl{repo: repo, uploadDir: uploadDir, maxBytes: maxUploadMB << 20}
}

// Upload stores a multipart file, extracts its text, and records the material.
func (h *MaterialCtrl) Upload(c echo.Context) error {
	uid := c.Get("uid").(uint)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing file"})
	}
	if fh.Size > h.maxBytes {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file too large"})
	}
	mime := fh.Header.Get("Content-Type")
	if !extract.Supported(mime) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unsupported file type"})
	}

	courseID, _ := strconv.Atoi(c.FormValue("courseId"))
	title := strings.TrimSpace(c.FormValue("title"))
	materialType := c.FormValue("materialType")
	if courseID == 0 || title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "courseId and title are required"})
	}
	if !entities.ValidMaterialType(materialType) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid materialType"})
	}
	weekNumber, _ := strconv.Atoi(c.FormValue("weekNumber"))
	if weekNumber < 0 || weekNumber > 52 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "weekNumber must be between 1 and 52"})
	}

	dst := filepath.Join(h.uploadDir, uuid.NewString()+filepath.Ext(fh.Filename))
	if err := saveUpload(fh, dst); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	text, pages := extract.Extract(dst, mime)

	m := &entities.CourseMaterial{
		CourseID:      uint(courseID),
		UploadedBy:    uid,
		Title:         title,
		Description:   strings.TrimSpace(c.FormValue("description")),
		MaterialType:  materialType,
		FileName:      fh.Filename,
		FilePath:      dst,
		FileSize:      fh.Size,
		MimeType:      mime,
		ExtractedText: text,
		PageCount:     pages,
		WeekNumber:    weekNumber,
	}
	if err := h.repo.Create(m); err != nil {
		os.Remove(dst)
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Material uploaded successfully", "material": m})
}

type urlIngestReq struct {
	CourseID     uint   `json:"courseId"`
	URL          string `json:"url"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	MaterialType string `json:"materialType"`
	WeekNumber   int    `json:"weekNumber"`
}

// IngestURL fetches a web page and records its text as a material, no file
// involved.
func (h *MaterialCtrl) IngestURL(c echo.Context) error {
	uid := c.Get("uid").(uint)
	var req urlIngestReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.CourseID == 0 || req.URL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "courseId and url are required"})
	}
	if req.MaterialType == "" {
		req.MaterialType = entities.MaterialOther
	}
	if !entities.ValidMaterialType(req.MaterialType) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid materialType"})
	}

	text, pageTitle, err := extract.FetchPage(req.URL)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("fetch url: %v", err)})
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = pageTitle
	}
	if title == "" {
		title = req.URL
	}

	m := &entities.CourseMaterial{
		CourseID:      req.CourseID,
		UploadedBy:    uid,
		Title:         title,
		Description:   strings.TrimSpace(req.Description),
		MaterialType:  req.MaterialType,
		FileName:      req.URL,
		MimeType:      "text/html",
		FileSize:      int64(len(text)),
		ExtractedText: text,
		WeekNumber:    req.WeekNumber,
	}
	if err := h.repo.Create(m); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]any{"message": "Material ingested successfully", "material": m})
}

func (h *MaterialCtrl) ListByCourse(c echo.Context) error {
	courseID, _ := strconv.Atoi(c.Param("courseId"))
	ms, err := h.repo.ListByCourse(uint(courseID))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"materials": ms})
}

func (h *MaterialCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(uint)
	id, _ := strconv.Atoi(c.Param("id"))
	if err := h.repo.Delete(uint(id), uid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "material not found or unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Material deleted successfully"})
}

func saveUpload(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, src)
	return err
}
