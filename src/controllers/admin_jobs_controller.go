package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"Backend-Scholarship-Finder/src/jobs"
	"Backend-Scholarship-Finder/src/middleware"
	"Backend-Scholarship-Finder/src/models"
	"Backend-Scholarship-Finder/src/services/ingestion"
	"Backend-Scholarship-Finder/src/utils"

	"github.com/gofiber/fiber/v2"
)

const recentImportsLimit = 20

// ImportController รับไฟล์ CSV แล้วนำเข้าทันทีหรือส่งเข้าคิว
type ImportController struct {
	importer  Importer
	queue     ImportQueue
	reports   ImportReports
	svc       ScholarshipService
	maxUpload int64
}

func NewImportController(importer Importer, queue ImportQueue, reports ImportReports, svc ScholarshipService, maxUpload int64) *ImportController {
	return &ImportController{importer: importer, queue: queue, reports: reports, svc: svc, maxUpload: maxUpload}
}

// UploadCSV godoc
// @Summary      Upload a scholarship CSV
// @Description  Imports a CSV (UTF-8, UTF-8 with BOM, or CP949). mode: append (default), replace, deactivate. With async=true the file is queued and a task id is returned.
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file   formData file   true  "CSV file"
// @Param        mode   formData string false "append | replace | deactivate" default(append)
// @Param        async  query    bool   false "Run in the background"
// @Success      200  {object}  models.CsvUploadResponse
// @Success      202  {object}  models.ImportQueued
// @Failure      400  {object}  models.ErrorResponse
// @Failure      413  {object}  models.ErrorResponse
// @Failure      503  {object}  models.ErrorResponse
// @Router       /api/v1/admin/upload-csv [post]
func (h *ImportController) UploadCSV(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Failed to upload file: "+err.Error())
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".csv") {
		return utils.HandleError(c, fiber.StatusBadRequest, "CSV 파일만 업로드 가능합니다.")
	}
	if h.maxUpload > 0 && file.Size > h.maxUpload {
		return utils.HandleError(c, fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("file exceeds %d bytes", h.maxUpload))
	}

	mode, err := ingestion.ParseMode(c.FormValue("mode", c.Query("mode")))
	if err != nil {
		return utils.HandleServiceError(c, err)
	}

	src, err := file.Open()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to read file: "+err.Error())
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to read file: "+err.Error())
	}

	actor, _ := c.Locals(middleware.LocalUsername).(string)

	if c.QueryBool("async") {
		taskID, err := h.queue.EnqueueImport(c.UserContext(), jobs.ImportPayload{
			Filename: file.Filename,
			Content:  content,
			Mode:     mode,
			Actor:    actor,
		})
		if errors.Is(err, jobs.ErrQueueUnavailable) {
			return utils.HandleError(c, fiber.StatusServiceUnavailable, err.Error())
		}
		if err != nil {
			return utils.HandleServiceError(c, err)
		}
		return c.Status(fiber.StatusAccepted).JSON(models.ImportQueued{
			Message:  "CSV 업로드가 대기열에 등록되었습니다.",
			TaskID:   taskID,
			Filename: file.Filename,
			Mode:     mode,
		})
	}

	resp, err := h.importer.Ingest(c.UserContext(), ingestion.ImportRequest{
		Filename: file.Filename,
		Content:  bytes.NewReader(content),
		Mode:     mode,
		Actor:    actor,
	})
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	h.svc.InvalidateCache(c.UserContext())
	return c.JSON(resp)
}

// ListImports godoc
// @Summary      Recent background imports
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.ImportReport
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/v1/admin/imports [get]
func (h *ImportController) ListImports(c *fiber.Ctx) error {
	reports, err := h.reports.Recent(c.UserContext(), recentImportsLimit)
	if err != nil {
		return utils.HandleServiceError(c, err)
	}
	return c.JSON(reports)
}
