package jobs

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-Scholarship-Finder/src/models"
)

// Report statuses
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ReportStore keeps the outcome of background imports.
type ReportStore interface {
	Save(ctx context.Context, r *models.ImportReport) error
	Recent(ctx context.Context, limit int) ([]models.ImportReport, error)
}

type MongoReportStore struct {
	col *mongo.Collection
}

func NewMongoReportStore(col *mongo.Collection) *MongoReportStore {
	return &MongoReportStore{col: col}
}

func (s *MongoReportStore) Save(ctx context.Context, r *models.ImportReport) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": r.ID}, r, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save import report: %w", err)
	}
	return nil
}

func (s *MongoReportStore) Recent(ctx context.Context, limit int) ([]models.ImportReport, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "finishedAt", Value: -1}}).SetLimit(int64(limit))
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find import reports: %w", err)
	}
	defer cursor.Close(ctx)

	reports := []models.ImportReport{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("decode import reports: %w", err)
	}
	return reports, nil
}

// MemoryReportStore is used when Mongo is not the storage driver.
type MemoryReportStore struct {
	mu      sync.Mutex
	reports map[string]models.ImportReport
}

func NewMemoryReportStore() *MemoryReportStore {
	return &MemoryReportStore{reports: map[string]models.ImportReport{}}
}

func (s *MemoryReportStore) Save(_ context.Context, r *models.ImportReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[r.ID] = *r
	return nil
}

func (s *MemoryReportStore) Recent(_ context.Context, limit int) ([]models.ImportReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ImportReport, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FinishedAt.After(out[j].FinishedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
