package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fadilmartias/career-platform/internal/cache"
	"github.com/fadilmartias/career-platform/internal/config"
	"github.com/fadilmartias/career-platform/internal/domain/fiber/handler"
	"github.com/fadilmartias/career-platform/internal/middleware"
	"github.com/fadilmartias/career-platform/internal/model"
	"github.com/fadilmartias/career-platform/internal/repository"
	"github.com/fadilmartias/career-platform/internal/service"
	"github.com/fadilmartias/career-platform/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load .env file
	ctx := context.Background()
	err := godotenv.Load()
	if err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed, // 1
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	vectors, err := cache.NewEmbeddingCache(config.LoadRedisConfig())
	if err != nil {
		log.Fatalf("Could not connect to redis: %v", err)
	}
	defer vectors.Close()

	provider, err := service.NewEmbeddingProvider(ctx, config.LoadEmbeddingConfig())
	if err != nil {
		log.Fatal(err)
	}
	if !provider.Enabled() {
		log.Println("No embedding credential configured; summaries and scores will use fallbacks")
	}

	staffRepo := repository.NewStaffRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	jobRepo := repository.NewJobRepository(db)
	matchRepo := repository.NewMatchRepository(db)

	authUc := usecase.NewAuthUsecase(staffRepo, vectors, config.LoadAuthConfig())
	studentUc := usecase.NewStudentUsecase(studentRepo, vectors, provider)
	jobUc := usecase.NewJobUsecase(jobRepo)
	matchUc := usecase.NewMatchUsecase(matchRepo, studentRepo, jobRepo, vectors, provider)
	metricsUc := usecase.NewMetricsUsecase(studentRepo, jobRepo, matchRepo)

	auth := middleware.RequireAuth(authUc, config.LoadAuthConfig())
	admin := middleware.RequireAdmin()

	handler.NewAuthHandler(authUc).RegisterRoutes(app, auth)
	handler.NewDashboardHandler(studentUc, jobUc, matchUc).RegisterRoutes(app, auth)
	handler.NewStudentHandler(studentUc).RegisterRoutes(app, auth)
	handler.NewJobHandler(jobUc).RegisterRoutes(app, auth, admin)
	handler.NewMatchHandler(matchUc).RegisterRoutes(app, auth, admin)
	handler.NewMetricsHandler(metricsUc).RegisterRoutes(app, auth)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Jakarta",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	// migrasi tabel
	err = db.AutoMigrate(&model.Staff{}, &model.Student{}, &model.Job{}, &model.Match{})
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
