package admins

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"Backend-Scholarship-Finder/src/apperrors"
	"Backend-Scholarship-Finder/src/models"
)

// MongoStore reads and writes the admins collection.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(col *mongo.Collection) *MongoStore {
	return &MongoStore{col: col}
}

func (s *MongoStore) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	return s.findOne(ctx, bson.M{"username": username})
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.M) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var admin models.Admin
	err := s.col.FindOne(ctx, filter).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("admin: %w", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return &admin, nil
}

func (s *MongoStore) Create(ctx context.Context, admin *models.Admin) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.col.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func (s *MongoStore) UpdatePassword(ctx context.Context, id, hash string) error {
	return s.set(ctx, id, bson.M{"password": hash})
}

func (s *MongoStore) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	return s.set(ctx, id, bson.M{"lastLogin": at})
}

func (s *MongoStore) set(ctx context.Context, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update admin: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("admin %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
