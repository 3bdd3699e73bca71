package database

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	ScholarshipCollection  *mongo.Collection
	AdminCollection        *mongo.Collection
	ImportReportCollection *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว แล้วเตรียม collection ที่ใช้
func ConnectMongoDB(uri, dbName string) (*mongo.Client, error) {
	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, connectErr = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if connectErr != nil {
			connectErr = fmt.Errorf("failed to connect to MongoDB: %w", connectErr)
			return
		}

		// ตรวจสอบการเชื่อมต่อ
		if connectErr = client.Ping(ctx, readpref.Primary()); connectErr != nil {
			connectErr = fmt.Errorf("MongoDB ping failed: %w", connectErr)
			return
		}

		db := client.Database(dbName)
		ScholarshipCollection = db.Collection("scholarships")
		AdminCollection = db.Collection("admins")
		ImportReportCollection = db.Collection("import_reports")

		log.Println("✅ MongoDB connected successfully")
		ensureIndexes(ctx)
	})

	return client, connectErr
}

// ensureIndexes สร้าง index ที่ query หลักต้องใช้ (ถ้ามีอยู่แล้วจะไม่ทำอะไร)
func ensureIndexes(ctx context.Context) {
	_, err := ScholarshipCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "isFeatured", Value: -1}, {Key: "updatedAt", Value: -1}}},
		{Keys: bson.D{{Key: "applyEnd", Value: 1}}},
	})
	if err != nil {
		log.Println("⚠️ Warning: failed to create scholarship indexes:", err)
	}

	_, err = AdminCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Println("⚠️ Warning: failed to create admin index:", err)
	}
}

// DisconnectMongoDB ปิดการเชื่อมต่อ
func DisconnectMongoDB(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
