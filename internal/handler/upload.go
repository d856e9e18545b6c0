package handler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/moraputalapraveen/hireme4u-backend/internal/ingest"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/response"
)

// DownloadTemplate serves the CSV template with a fixed header and one
// sample row.
func (h *Handler) DownloadTemplate(c *gin.Context) {
	c.Header("Content-Disposition", "attachment; filename=job_template.csv")
	c.Data(200, "text/csv", ingest.CSVTemplate())
}

// BulkUpload imports postings from an uploaded CSV. Per-row failures are
// collected and returned alongside the successes; the uploaded file is
// removed on every exit path.
func (h *Handler) BulkUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}

	path := filepath.Join(h.UploadDir, uuid.New().String()+".csv")
	if err := c.SaveUploadedFile(file, path); err != nil {
		h.Logger.Sugar().Errorw("failed to save upload", "err", err)
		response.InternalError(c, "")
		return
	}
	defer os.Remove(path)

	f, err := os.Open(path)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to open upload", "err", err)
		response.InternalError(c, "")
		return
	}
	defer f.Close()

	result, err := h.Importer.ImportCSV(c.Request.Context(), f)
	if err != nil {
		h.Logger.Sugar().Errorw("bulk import failed", "err", err)
		response.InternalError(c, "")
		return
	}

	h.invalidateFacets(c.Request.Context())
	response.OK(c, gin.H{
		"message": fmt.Sprintf("Processed %d jobs", result.Processed),
		"created": result.Created,
		"errors":  result.Errors,
		"jobs":    result.Jobs,
	})
}
