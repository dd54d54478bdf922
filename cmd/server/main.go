package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/BuyMeAnIcecream/chapter-a-day/internal/cache"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/handlers"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/middleware"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/repository"
	"github.com/BuyMeAnIcecream/chapter-a-day/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Chapter A Day Backend",
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: os.Getenv("ALLOWED_ORIGINS"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	// Initialize database connection
	db, err := repository.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis cache
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if parsedDB, err := strconv.Atoi(dbStr); err == nil {
			redisDB = parsedDB
		}
	}

	redisCache := cache.NewRedisCache(redisAddr, redisPassword, redisDB)
	if err := redisCache.Ping(); err != nil {
		log.Printf("WARNING: Redis connection failed: %v. Running without cache.", err)
		redisCache = nil
	} else {
		log.Println("Redis cache connected successfully")
		defer redisCache.Close()
	}

	chapterCache := cache.NewChapterCache(redisCache)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	chapterRepo := repository.NewChapterRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	configRepo := repository.NewConfigRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, progressRepo)
	chapterService := service.NewChapterService(chapterRepo, progressRepo, chapterCache)
	commentService := service.NewCommentService(commentRepo, chapterRepo, notificationRepo, chapterCache)
	notificationService := service.NewNotificationService(notificationRepo)
	versionService := service.NewVersionService(configRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	chapterHandler := handlers.NewChapterHandler(chapterService)
	commentHandler := handlers.NewCommentHandler(commentService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	versionHandler := handlers.NewVersionHandler(versionService)

	// Public routes
	api := app.Group("/api")
	auth := api.Group("/", limiter.New(limiter.Config{
		Max:        20,
		Expiration: time.Minute,
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Version endpoint (public - no auth required for update checks)
	api.Get("/version", versionHandler.GetVersion)

	// Today works anonymously; a valid token additionally records delivery
	api.Get("/today", middleware.AuthOptional(), chapterHandler.Today)

	api.Get("/chapters/:chapterId/verses/:verseNumber", chapterHandler.GetVerse)
	api.Get("/chapters/:chapterId/comments", commentHandler.GetComments)

	// Protected routes
	protected := api.Group("/", middleware.AuthRequired())
	protected.Get("/me", authHandler.GetCurrentUser)
	protected.Get("/progress", chapterHandler.GetProgress)
	protected.Post("/chapters/:chapterId/comments", commentHandler.CreateComment)
	protected.Delete("/comments/:commentId", commentHandler.DeleteComment)
	protected.Get("/notifications", notificationHandler.GetNotifications)
	protected.Put("/notifications/read-all", notificationHandler.MarkAllRead)
	protected.Put("/notifications/:notificationId/read", notificationHandler.MarkRead)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Chapter A Day is running",
		})
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s...", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
