package jobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"Backend-Scholarship-Finder/src/logger"
	"Backend-Scholarship-Finder/src/models"
	"Backend-Scholarship-Finder/src/services/ingestion"
)

// Ingester runs one import batch.
type Ingester interface {
	Ingest(ctx context.Context, req ingestion.ImportRequest) (*models.CsvUploadResponse, error)
}

// ImportHandler runs queued imports through the pipeline and records a report.
type ImportHandler struct {
	ingester   Ingester
	reports    ReportStore
	log        logger.Logger
	now        func() time.Time
	// runs after a batch commits, e.g. to drop cached listings
	onComplete func(ctx context.Context)
}

func NewImportHandler(ingester Ingester, reports ReportStore, log logger.Logger) *ImportHandler {
	return &ImportHandler{ingester: ingester, reports: reports, log: log, now: time.Now}
}

// OnComplete registers fn to run after every successful batch.
func (h *ImportHandler) OnComplete(fn func(ctx context.Context)) {
	h.onComplete = fn
}

// ProcessTask implements asynq.Handler. A failed batch is reported, not
// retried: the pipeline already rolled it back.
func (h *ImportHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p ImportPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		h.log.WithError(err).Error("❌ payload decode error", nil)
		return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
	}

	taskID, _ := asynq.GetTaskID(ctx)
	log := h.log.WithFields(map[string]interface{}{"taskId": taskID, "filename": p.Filename})
	log.Info("🎯 import task started", nil)

	report := &models.ImportReport{ID: taskID, TaskID: taskID, Status: StatusCompleted}
	if report.ID == "" {
		report.ID = fmt.Sprintf("import-%d", h.now().UnixNano())
	}

	resp, err := h.ingester.Ingest(ctx, ingestion.ImportRequest{
		Filename: p.Filename,
		Content:  bytes.NewReader(p.Content),
		Mode:     p.Mode,
		Actor:    p.Actor,
	})
	if err != nil {
		report.Status = StatusFailed
		report.Failure = err.Error()
	} else {
		report.Report = resp
		if h.onComplete != nil {
			h.onComplete(ctx)
		}
	}
	report.FinishedAt = h.now()

	if saveErr := h.reports.Save(ctx, report); saveErr != nil {
		log.WithError(saveErr).Error("❌ failed to save import report", nil)
		return saveErr
	}
	log.Info("✅ import task finished", map[string]interface{}{"status": report.Status})
	return nil
}

// NewServer builds the asynq worker with the import handler registered.
func NewServer(redisAddr string, concurrency int, handler *ImportHandler) (*asynq.Server, *asynq.ServeMux) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{Concurrency: concurrency},
	)
	mux := asynq.NewServeMux()
	mux.Handle(TypeImportScholarships, handler)
	return srv, mux
}
