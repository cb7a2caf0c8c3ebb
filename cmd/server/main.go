package main

import (
	"alcyxob/wodadapt/internal/api"
	"alcyxob/wodadapt/internal/config"
	"alcyxob/wodadapt/internal/repository/mongo"
	"alcyxob/wodadapt/internal/service"
	"alcyxob/wodadapt/internal/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
)

// @title WodAdapt API
// @version 1.0
// @description API for adapting and scaling workouts around athlete constraints.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting WodAdapt server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	// Index creation has to finish before the catalog seeds: the movement
	// unique index is what makes seeding idempotent across replicas.
	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 1*time.Minute)
	mongo.EnsureUserIndexes(indexCtx, appDB.Collection("users"))
	mongo.EnsureMovementIndexes(indexCtx, appDB.Collection("movements"))
	mongo.EnsureWorkoutIndexes(indexCtx, appDB.Collection("workouts"))
	mongo.EnsureMediaIndexes(indexCtx, appDB.Collection("media_uploads"))
	cancelIndexes()
	log.Println("Index creation process completed.")

	// --- Initialize Storage ---
	log.Println("Initializing file storage service...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	movementRepo := mongo.NewMongoMovementRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	mediaRepo := mongo.NewMongoMediaRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	profileService := service.NewProfileService(userRepo)

	catalogCtx, cancelCatalog := context.WithTimeout(context.Background(), 1*time.Minute)
	catalogService, err := service.NewCatalogService(catalogCtx, movementRepo, mediaRepo, fileStorage)
	cancelCatalog()
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize movement catalog: %v", err)
	}

	workoutService := service.NewWorkoutService(workoutRepo, catalogService)
	scalingService := service.NewScalingService(profileService, catalogService, workoutRepo)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, profileService, catalogService, workoutService, scalingService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
