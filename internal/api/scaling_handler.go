package api

import (
	"alcyxob/wodadapt/internal/domain"
	"alcyxob/wodadapt/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScalingHandler exposes the adaptation engine: movement checks,
// substitutions, and workout scaling for the authenticated athlete.
type ScalingHandler struct {
	scalingService service.ScalingService
}

// NewScalingHandler creates a new ScalingHandler.
func NewScalingHandler(scalingService service.ScalingService) *ScalingHandler {
	return &ScalingHandler{scalingService: scalingService}
}

// --- Response Structs ---

type MovementCheckResponse struct {
	Allowed        bool     `json:"allowed"`
	Reasons        []string `json:"reasons"`
	Warnings       []string `json:"warnings"`
	MaxLoadPercent *float64 `json:"maxLoadPercent,omitempty"`
	LoadScale      float64  `json:"loadScale"`
}

type SubstitutionResponse struct {
	Replacement *domain.Movement `json:"replacement"`
	Reasons     []string         `json:"reasons"`
	Warnings    []string         `json:"warnings"`
	LoadScale   float64          `json:"loadScale"`
}

// --- Handler Methods ---

// CheckMovement godoc
// @Summary Check a movement against the athlete's constraints and equipment
// @Tags Scaling
// @Produce json
// @Param id path string true "Movement ID"
// @Success 200 {object} MovementCheckResponse
// @Failure 404 {object} gin.H "Movement not found"
// @Router /movements/{id}/check [get]
func (h *ScalingHandler) CheckMovement(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	check, err := h.scalingService.CheckMovement(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleScalingError(c, err)
		return
	}

	c.JSON(http.StatusOK, MovementCheckResponse{
		Allowed:        check.Allowed,
		Reasons:        emptyIfNil(check.Reasons),
		Warnings:       emptyIfNil(check.Warnings),
		MaxLoadPercent: check.MaxLoadPercent,
		LoadScale:      check.LoadScale(),
	})
}

// Substitute godoc
// @Summary Find a substitution for a movement the athlete cannot perform
// @Description Returns the original movement unchanged when it is allowed; otherwise walks the authored chain, then falls back to a muscle-group search. Replacement is null when nothing suitable exists.
// @Tags Scaling
// @Produce json
// @Param id path string true "Movement ID"
// @Success 200 {object} SubstitutionResponse
// @Failure 404 {object} gin.H "Movement not found"
// @Router /movements/{id}/substitution [get]
func (h *ScalingHandler) Substitute(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	result, err := h.scalingService.Substitute(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.handleScalingError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubstitutionResponse{
		Replacement: result.Replacement,
		Reasons:     emptyIfNil(result.Reasons),
		Warnings:    emptyIfNil(result.Warnings),
		LoadScale:   result.LoadScale,
	})
}

// AdaptWorkout godoc
// @Summary Adapt a workout to the athlete's constraints and equipment
// @Tags Scaling
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {array} service.AdaptedPrescription
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{id}/adapt [get]
func (h *ScalingHandler) AdaptWorkout(c *gin.Context) {
	userID, workoutID, ok := h.userAndWorkoutIDs(c)
	if !ok {
		return
	}

	adapted, err := h.scalingService.AdaptWorkout(c.Request.Context(), userID, workoutID)
	if err != nil {
		h.handleScalingError(c, err)
		return
	}
	c.JSON(http.StatusOK, adapted)
}

// ScaleWorkout godoc
// @Summary Scale a workout to a target tier
// @Tags Scaling
// @Produce json
// @Param id path string true "Workout ID"
// @Param tier query string true "Target tier (beginner, intermediate, advanced, rx, rx_plus)"
// @Success 200 {object} domain.ScaledWorkout
// @Failure 400 {object} gin.H "Unknown tier"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{id}/scale [get]
func (h *ScalingHandler) ScaleWorkout(c *gin.Context) {
	userID, workoutID, ok := h.userAndWorkoutIDs(c)
	if !ok {
		return
	}

	tier := domain.Tier(c.Query("tier"))
	scaled, err := h.scalingService.ScaleWorkout(c.Request.Context(), userID, workoutID, tier)
	if err != nil {
		h.handleScalingError(c, err)
		return
	}
	c.JSON(http.StatusOK, scaled)
}

// ScaleWorkoutAllTiers godoc
// @Summary Produce the full five-tier card for a workout
// @Tags Scaling
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {array} domain.ScaledWorkout
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{id}/tiers [get]
func (h *ScalingHandler) ScaleWorkoutAllTiers(c *gin.Context) {
	userID, workoutID, ok := h.userAndWorkoutIDs(c)
	if !ok {
		return
	}

	tiers, err := h.scalingService.ScaleWorkoutAllTiers(c.Request.Context(), userID, workoutID)
	if err != nil {
		h.handleScalingError(c, err)
		return
	}
	c.JSON(http.StatusOK, tiers)
}

// --- Helpers ---

func (h *ScalingHandler) userAndWorkoutIDs(c *gin.Context) (userID, workoutID primitive.ObjectID, ok bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}

	workoutID, err = primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format")
		return primitive.NilObjectID, primitive.NilObjectID, false
	}
	return userID, workoutID, true
}

func (h *ScalingHandler) handleScalingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMovementNotFound),
		errors.Is(err, service.ErrWorkoutNotFound),
		errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidTier):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
