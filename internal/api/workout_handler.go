package api

import (
	"alcyxob/wodadapt/internal/domain"
	"alcyxob/wodadapt/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutHandler holds the workout service dependency.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Request/Response Structs ---

type PrescriptionRequest struct {
	MovementID      string  `json:"movementId" binding:"required"`
	Reps            int     `json:"reps"`
	Load            float64 `json:"load"`
	DistanceMeters  float64 `json:"distanceMeters"`
	DurationSeconds int     `json:"durationSeconds"`
	Calories        int     `json:"calories"`
	Notes           string  `json:"notes"`
}

type WorkoutRequest struct {
	Slug          string                `json:"slug" binding:"required"`
	Name          string                `json:"name" binding:"required"`
	Description   string                `json:"description"`
	Prescriptions []PrescriptionRequest `json:"prescriptions" binding:"required,min=1"`
}

// --- Handler Methods ---

// ListWorkouts godoc
// @Summary List benchmark workouts
// @Tags Workouts
// @Produce json
// @Success 200 {array} domain.Workout
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list workouts")
		return
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout godoc
// @Summary Get one workout with resolved movements
// @Tags Workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} domain.Workout
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{id} [get]
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format")
		return
	}

	workout, err := h.workoutService.GetWorkout(c.Request.Context(), workoutID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load workout")
		}
		return
	}
	c.JSON(http.StatusOK, workout)
}

// CreateWorkout godoc
// @Summary Create a benchmark workout (Coach only)
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workout body WorkoutRequest true "Workout definition (Rx level)"
// @Success 201 {object} domain.Workout
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Slug already exists"
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	workout := mapRequestToWorkout(&req)
	created, err := h.workoutService.CreateWorkout(c.Request.Context(), coachID, workout)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutAlreadyExists):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidWorkout):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateWorkout godoc
// @Summary Update a benchmark workout (Coach only, owner only)
// @Tags Workouts
// @Accept json
// @Produce json
// @Param id path string true "Workout ID"
// @Param workout body WorkoutRequest true "Workout definition"
// @Success 200 {object} domain.Workout
// @Failure 403 {object} gin.H "Not the owner"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{id} [put]
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format")
		return
	}

	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	workout := mapRequestToWorkout(&req)
	workout.ID = workoutID
	if err := h.workoutService.UpdateWorkout(c.Request.Context(), coachID, workout); err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotWorkoutOwner):
			abortWithError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrInvalidWorkout):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update workout")
		}
		return
	}

	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout godoc
// @Summary Delete a benchmark workout (Coach only, owner only)
// @Tags Workouts
// @Param id path string true "Workout ID"
// @Success 204 "Deleted"
// @Failure 403 {object} gin.H "Not the owner"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{id} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	workoutID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format")
		return
	}

	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	if err := h.workoutService.DeleteWorkout(c.Request.Context(), coachID, workoutID); err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotWorkoutOwner):
			abortWithError(c, http.StatusForbidden, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func mapRequestToWorkout(req *WorkoutRequest) *domain.Workout {
	prescriptions := make([]domain.Prescription, len(req.Prescriptions))
	for i, p := range req.Prescriptions {
		prescriptions[i] = domain.Prescription{
			MovementID:      p.MovementID,
			Reps:            p.Reps,
			Load:            p.Load,
			DistanceMeters:  p.DistanceMeters,
			DurationSeconds: p.DurationSeconds,
			Calories:        p.Calories,
			Notes:           p.Notes,
		}
	}
	return &domain.Workout{
		Slug:          req.Slug,
		Name:          req.Name,
		Description:   req.Description,
		Prescriptions: prescriptions,
	}
}
