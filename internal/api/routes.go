package api

import (
	"alcyxob/wodadapt/internal/domain"
	"alcyxob/wodadapt/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	catalogService service.CatalogService,
	workoutService service.WorkoutService,
	scalingService service.ScalingService,
) {

	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	movementHandler := NewMovementHandler(catalogService)
	workoutHandler := NewWorkoutHandler(workoutService)
	scalingHandler := NewScalingHandler(scalingService)

	authMiddleware := AuthMiddleware(jwtSecret)
	coachOnly := RoleMiddleware(domain.RoleCoach)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userID.Hex(), "role": role})
		})

		// --- Movement Catalog ---
		movementGroup := protected.Group("/movements")
		{
			movementGroup.GET("", movementHandler.ListMovements)
			movementGroup.GET("/:id", movementHandler.GetMovement)
			movementGroup.POST("", coachOnly, movementHandler.CreateMovement)
			movementGroup.PUT("/:id", coachOnly, movementHandler.UpdateMovement)
			movementGroup.DELETE("/:id", coachOnly, movementHandler.DeleteMovement)

			// Demo media
			movementGroup.POST("/:id/media-upload-url", coachOnly, movementHandler.InitiateMediaUpload)
			movementGroup.GET("/:id/media-url", movementHandler.GetMediaURL)

			// Per-athlete engine queries
			movementGroup.GET("/:id/check", scalingHandler.CheckMovement)
			movementGroup.GET("/:id/substitution", scalingHandler.Substitute)
		}

		// --- Athlete Profile ---
		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PUT("/equipment", profileHandler.SetEquipment)
			profileGroup.POST("/impediments", profileHandler.AddImpediment)
			profileGroup.DELETE("/impediments/:impedimentId", profileHandler.RemoveImpediment)
		}

		// --- Benchmark Workouts ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.POST("", coachOnly, workoutHandler.CreateWorkout)
			workoutGroup.PUT("/:id", coachOnly, workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", coachOnly, workoutHandler.DeleteWorkout)

			// Per-athlete adaptation and scaling
			workoutGroup.GET("/:id/adapt", scalingHandler.AdaptWorkout)
			workoutGroup.GET("/:id/scale", scalingHandler.ScaleWorkout)
			workoutGroup.GET("/:id/tiers", scalingHandler.ScaleWorkoutAllTiers)
		}
	}
}
