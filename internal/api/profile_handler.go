package api

import (
	"alcyxob/wodadapt/internal/domain"
	"alcyxob/wodadapt/internal/service"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileHandler holds the profile service dependency.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// --- Request/Response Structs ---

type SetEquipmentRequest struct {
	Equipment []domain.Equipment `json:"equipment" binding:"required"`
}

type AddImpedimentRequest struct {
	Category        domain.ImpedimentCategory `json:"category" binding:"required"`
	Severity        domain.Severity           `json:"severity" binding:"required"`
	Regions         []domain.BodyRegion       `json:"regions"`
	Description     string                    `json:"description"`
	Trimester       int                       `json:"trimester"`
	WeeksPostpartum int                       `json:"weeksPostpartum"`
	StartDate       *time.Time                `json:"startDate"`
	EndDate         *time.Time                `json:"endDate"`
}

type ProfileResponse struct {
	User              UserResponse        `json:"user"`
	Equipment         []domain.Equipment  `json:"equipment"`
	Impediments       []domain.Impediment `json:"impediments"`
	ActiveImpediments []domain.Impediment `json:"activeImpediments"`
}

// --- Handler Methods ---

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 404 {object} gin.H "User not found"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	user, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load profile")
		}
		return
	}

	c.JSON(http.StatusOK, MapProfileToResponse(user))
}

// SetEquipment godoc
// @Summary Replace the athlete's equipment inventory
// @Tags Profile
// @Accept json
// @Produce json
// @Param equipment body SetEquipmentRequest true "Equipment kinds"
// @Success 200 {object} gin.H "Updated"
// @Failure 400 {object} gin.H "Unknown equipment kind"
// @Router /profile/equipment [put]
func (h *ProfileHandler) SetEquipment(c *gin.Context) {
	var req SetEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	if err := h.profileService.SetEquipment(c.Request.Context(), userID, req.Equipment); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEquipment):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update equipment")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"equipment": req.Equipment})
}

// AddImpediment godoc
// @Summary Record a new impediment on the athlete's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param impediment body AddImpedimentRequest true "Impediment details"
// @Success 201 {object} domain.Impediment
// @Failure 400 {object} gin.H "Invalid impediment"
// @Router /profile/impediments [post]
func (h *ProfileHandler) AddImpediment(c *gin.Context) {
	var req AddImpedimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	imp := domain.Impediment{
		Category:        req.Category,
		Severity:        req.Severity,
		Regions:         req.Regions,
		Description:     req.Description,
		Trimester:       req.Trimester,
		WeeksPostpartum: req.WeeksPostpartum,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
	}

	created, err := h.profileService.AddImpediment(c.Request.Context(), userID, imp)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidImpediment):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to record impediment")
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// RemoveImpediment godoc
// @Summary Remove an impediment from the athlete's profile
// @Tags Profile
// @Param impedimentId path string true "Impediment ID"
// @Success 204 "Removed"
// @Failure 404 {object} gin.H "Impediment not found"
// @Router /profile/impediments/{impedimentId} [delete]
func (h *ProfileHandler) RemoveImpediment(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	impedimentID, err := primitive.ObjectIDFromHex(c.Param("impedimentId"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid impediment ID format")
		return
	}

	if err := h.profileService.RemoveImpediment(c.Request.Context(), userID, impedimentID); err != nil {
		if errors.Is(err, service.ErrImpedimentNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to remove impediment")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// MapProfileToResponse converts a domain User to the profile DTO, splitting
// the impediment list into all and currently active.
func MapProfileToResponse(user *domain.User) ProfileResponse {
	resp := ProfileResponse{
		User:              MapUserToResponse(user),
		Equipment:         user.Equipment,
		Impediments:       user.Impediments,
		ActiveImpediments: user.ActiveImpediments(time.Now().UTC()),
	}
	if resp.Equipment == nil {
		resp.Equipment = []domain.Equipment{}
	}
	if resp.Impediments == nil {
		resp.Impediments = []domain.Impediment{}
	}
	if resp.ActiveImpediments == nil {
		resp.ActiveImpediments = []domain.Impediment{}
	}
	return resp
}
