package scholarships

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Backend-Scholarship-Finder/src/apperrors"
	"Backend-Scholarship-Finder/src/models"
)

// MongoStore stores scholarships in the "scholarships" collection.
type MongoStore struct {
	col *mongo.Collection
	// multi-document transactions need a replica set
	useTransactions bool
}

// opTimeout bounds one collection call. The session (if any) rides along in ctx.
const opTimeout = 5 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

func NewMongoStore(col *mongo.Collection, useTransactions bool) *MongoStore {
	return &MongoStore{col: col, useTransactions: useTransactions}
}

func (m *MongoStore) Create(ctx context.Context, s *models.Scholarship) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	if _, err := m.col.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("insert scholarship: %w", err)
	}
	return nil
}

func (m *MongoStore) Save(ctx context.Context, s *models.Scholarship) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	_, err := m.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save scholarship %s: %w", s.ID, err)
	}
	return nil
}

func (m *MongoStore) SaveMany(ctx context.Context, items []models.Scholarship) error {
	if len(items) == 0 {
		return nil
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	writes := make([]mongo.WriteModel, 0, len(items))
	for i := range items {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": items[i].ID}).
			SetReplacement(items[i]).
			SetUpsert(true))
	}
	if _, err := m.col.BulkWrite(ctx, writes); err != nil {
		return fmt.Errorf("bulk save scholarships: %w", err)
	}
	return nil
}

func (m *MongoStore) FindByID(ctx context.Context, id string) (*models.Scholarship, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var s models.Scholarship
	err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find scholarship %s: %w", id, err)
	}
	return &s, nil
}

func (m *MongoStore) FindByIDs(ctx context.Context, ids []string) ([]models.Scholarship, error) {
	return m.findAll(ctx, bson.M{"_id": bson.M{"$in": ids}}, options.Find())
}

func (m *MongoStore) FindActive(ctx context.Context) ([]models.Scholarship, error) {
	opts := options.Find().SetSort(bson.D{{Key: "isFeatured", Value: -1}, {Key: "updatedAt", Value: -1}})
	return m.findAll(ctx, bson.M{"isActive": true}, opts)
}

func (m *MongoStore) FindFeatured(ctx context.Context) ([]models.Scholarship, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	return m.findAll(ctx, bson.M{"isActive": true, "isFeatured": true}, opts)
}

func (m *MongoStore) FindAccepting(ctx context.Context, day time.Time) ([]models.Scholarship, error) {
	filter := bson.M{
		"isActive":   true,
		"applyStart": bson.M{"$lte": day},
		"applyEnd":   bson.M{"$gte": day},
	}
	opts := options.Find().SetSort(bson.D{{Key: "applyEnd", Value: 1}})
	return m.findAll(ctx, filter, opts)
}

func (m *MongoStore) Find(ctx context.Context, f models.ScholarshipFilter, page models.PaginationParams) ([]models.Scholarship, int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := mongoFilter(f)

	total, err := m.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count scholarships: %w", err)
	}

	opts := options.Find().
		SetSort(mongoSort(f.Sort)).
		SetSkip(page.GetSkip()).
		SetLimit(int64(page.Limit))
	items, err := m.findAll(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func mongoFilter(f models.ScholarshipFilter) bson.M {
	filter := bson.M{}
	if f.Search != "" {
		pattern := searchRegex(f.Search)
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"organization": pattern},
		}
	}
	if f.Type != nil {
		filter["scholarshipType"] = *f.Type
	}
	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}
	if f.IsFeatured != nil {
		filter["isFeatured"] = *f.IsFeatured
	}
	if f.AcceptingOn != nil {
		filter["applyStart"] = bson.M{"$lte": *f.AcceptingOn}
		filter["applyEnd"] = bson.M{"$gte": *f.AcceptingOn}
	}
	return filter
}

func searchRegex(search string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
}

func mongoSort(order models.ScholarshipSort) bson.D {
	if order == models.SortActiveRecent {
		return bson.D{{Key: "isActive", Value: -1}, {Key: "updatedAt", Value: -1}}
	}
	return bson.D{{Key: "isFeatured", Value: -1}, {Key: "applyEnd", Value: 1}}
}

func (m *MongoStore) findAll(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]models.Scholarship, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	cursor, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find scholarships: %w", err)
	}
	defer cursor.Close(ctx)

	items := []models.Scholarship{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode scholarships: %w", err)
	}
	return items, nil
}

func (m *MongoStore) Count(ctx context.Context) (int64, error) {
	return m.count(ctx, bson.M{})
}

func (m *MongoStore) CountActive(ctx context.Context) (int64, error) {
	return m.count(ctx, bson.M{"isActive": true})
}

func (m *MongoStore) CountInactive(ctx context.Context) (int64, error) {
	return m.count(ctx, bson.M{"isActive": false})
}

func (m *MongoStore) CountFeatured(ctx context.Context) (int64, error) {
	return m.count(ctx, bson.M{"isFeatured": true})
}

func (m *MongoStore) count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	n, err := m.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count scholarships: %w", err)
	}
	return n, nil
}

func (m *MongoStore) CountByType(ctx context.Context) (map[string]int64, error) {
	return m.countBy(ctx, "$scholarshipType", string(models.ScholarshipTypeOther))
}

func (m *MongoStore) CountByOrganizationType(ctx context.Context) (map[string]int64, error) {
	return m.countBy(ctx, "$organizationType", unknownOrganizationType)
}

func (m *MongoStore) countBy(ctx context.Context, field, fallback string) (map[string]int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := m.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Key   *string `bson:"_id"`
		Count int64   `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode %s counts: %w", field, err)
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		key := fallback
		if r.Key != nil && *r.Key != "" {
			key = *r.Key
		}
		out[key] += r.Count
	}
	return out, nil
}

func (m *MongoStore) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete scholarship %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (m *MongoStore) DeleteAll(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := m.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("delete all scholarships: %w", err)
	}
	return res.DeletedCount, nil
}

func (m *MongoStore) DeleteInactive(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := m.col.DeleteMany(ctx, bson.M{"isActive": false})
	if err != nil {
		return 0, fmt.Errorf("delete inactive scholarships: %w", err)
	}
	return res.DeletedCount, nil
}

func (m *MongoStore) DeactivateAll(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := m.col.UpdateMany(ctx,
		bson.M{"isActive": true},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, fmt.Errorf("deactivate scholarships: %w", err)
	}
	return res.ModifiedCount, nil
}

// WithTransaction wraps fn in a session transaction when enabled.
// Without a replica set fn runs directly.
func (m *MongoStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !m.useTransactions {
		return fn(ctx)
	}

	session, err := m.col.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
