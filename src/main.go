package main

import (
	_ "Backend-Scholarship-Finder/docs"
	"Backend-Scholarship-Finder/src/config"
	"Backend-Scholarship-Finder/src/controllers"
	"Backend-Scholarship-Finder/src/database"
	"Backend-Scholarship-Finder/src/jobs"
	"Backend-Scholarship-Finder/src/logger"
	"Backend-Scholarship-Finder/src/routes"
	"Backend-Scholarship-Finder/src/services/admins"
	"Backend-Scholarship-Finder/src/services/eligibility"
	"Backend-Scholarship-Finder/src/services/ingestion"
	"Backend-Scholarship-Finder/src/services/scholarships"
	"Backend-Scholarship-Finder/src/utils"
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// stores ที่เลือกตาม STORAGE_DRIVER
type stores struct {
	scholarships scholarships.Store
	admins       admins.Store
	reports      jobs.ReportStore
	close        func()
}

func openStores(cfg *config.Config, appLog logger.Logger) (*stores, error) {
	switch cfg.StorageDriver {
	case config.StorageMongo:
		if _, err := database.ConnectMongoDB(cfg.MongoURI, cfg.MongoDatabase); err != nil {
			return nil, err
		}
		return &stores{
			scholarships: scholarships.NewMongoStore(database.ScholarshipCollection, cfg.MongoTransactions),
			admins:       admins.NewMongoStore(database.AdminCollection),
			reports:      jobs.NewMongoReportStore(database.ImportReportCollection),
			close: func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := database.DisconnectMongoDB(ctx); err != nil {
					appLog.WithError(err).Warn("⚠️ MongoDB disconnect failed", nil)
				}
			},
		}, nil

	case config.StoragePostgres:
		db, err := database.ConnectPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		scholarshipStore := scholarships.NewPostgresStore(db)
		if err := scholarshipStore.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		adminStore := admins.NewPostgresStore(db)
		if err := adminStore.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return &stores{
			scholarships: scholarshipStore,
			admins:       adminStore,
			reports:      jobs.NewMemoryReportStore(),
			close:        func() { db.Close() },
		}, nil
	}

	appLog.Warn("⚠️ using in-memory storage, data is lost on restart", nil)
	return &stores{
		scholarships: scholarships.NewMemoryStore(),
		admins:       admins.NewMemoryStore(),
		reports:      jobs.NewMemoryReportStore(),
		close:        func() {},
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	zl := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zl.Sync()
	appLog := logger.NewZapAdapter(zl)

	utils.ConfigureJWT(cfg.JWTSecret, cfg.JWTExpiration)

	if err := database.InitRedis(cfg.RedisURI); err != nil {
		appLog.WithError(err).Warn("⚠️ Redis unavailable, continuing without cache", nil)
	}
	database.InitAsynq(cfg.RedisURI)

	st, err := openStores(cfg, appLog)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	defer st.close()

	cache := scholarships.NewCache(database.RedisClient, cfg.CacheTTL, appLog.WithFields(map[string]interface{}{"component": "cache"}))
	scholarshipSvc := scholarships.NewService(st.scholarships, cache, appLog.WithFields(map[string]interface{}{"component": "scholarships"}))
	pipeline := ingestion.NewPipeline(st.scholarships, appLog.WithFields(map[string]interface{}{"component": "ingestion"}))
	evaluator := eligibility.NewEvaluator(st.scholarships, appLog.WithFields(map[string]interface{}{"component": "eligibility"}))
	adminSvc := admins.NewService(st.admins, appLog.WithFields(map[string]interface{}{"component": "admins"}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := adminSvc.BootstrapDefaultAdmin(ctx, cfg.DefaultAdminUsername, cfg.DefaultAdminPassword); err != nil {
		log.Fatalf("Error creating default admin: %v", err)
	}

	// worker รันใน process เดียวกันเมื่อมี Redis
	if cfg.RunWorker && database.AsynqClient != nil {
		handler := jobs.NewImportHandler(pipeline, st.reports, appLog.WithFields(map[string]interface{}{"component": "worker"}))
		handler.OnComplete(scholarshipSvc.InvalidateCache)
		srv, mux := jobs.NewServer(cfg.RedisURI, cfg.WorkerConcurrency, handler)
		if err := srv.Start(mux); err != nil {
			log.Fatalf("Error starting worker: %v", err)
		}
		defer srv.Shutdown()
		appLog.Info("✅ import worker started", map[string]interface{}{"concurrency": cfg.WorkerConcurrency})
	}

	// สร้าง app instance
	app := fiber.New(fiber.Config{
		BodyLimit: cfg.UploadMaxBytes + 1<<20,
	})
	app.Use(recover.New())

	// ✅ เปิดใช้งาน CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// เปิดใช้งาน Swagger ที่ URL /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app, routes.Handlers{
		Scholarships: controllers.NewScholarshipController(scholarshipSvc, evaluator),
		Admin:        controllers.NewAdminController(scholarshipSvc),
		Imports:      controllers.NewImportController(pipeline, jobs.NewEnqueuer(database.AsynqClient), st.reports, scholarshipSvc, int64(cfg.UploadMaxBytes)),
		Auth:         controllers.NewAuthController(adminSvc),
	})

	go func() {
		<-ctx.Done()
		appLog.Info("shutting down", nil)
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			appLog.WithError(err).Error("❌ shutdown failed", nil)
		}
	}()

	// เริ่มเซิร์ฟเวอร์
	appLog.Info("Server is running", map[string]interface{}{"port": cfg.AppURI, "storage": cfg.StorageDriver})
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(cfg.AppURI))); err != nil {
		appLog.WithError(err).Error("❌ server stopped", nil)
	}
}
