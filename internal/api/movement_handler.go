package api

import (
	"alcyxob/wodadapt/internal/domain"
	"alcyxob/wodadapt/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MovementHandler holds the catalog service dependency.
type MovementHandler struct {
	catalogService service.CatalogService
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(catalogService service.CatalogService) *MovementHandler {
	return &MovementHandler{catalogService: catalogService}
}

// --- Request/Response Structs ---

type MovementRequest struct {
	ID               string                 `json:"id" binding:"required"`
	Name             string                 `json:"name" binding:"required"`
	Equipment        []domain.Equipment     `json:"equipment"`
	PrimaryRegions   []domain.BodyRegion    `json:"primaryRegions"`
	SecondaryRegions []domain.BodyRegion    `json:"secondaryRegions"`
	MuscleGroups     []domain.MuscleGroup   `json:"muscleGroups" binding:"required,min=1"`
	Modality         domain.Modality        `json:"modality" binding:"required"`
	Difficulty       domain.Tier            `json:"difficulty" binding:"required"`
	Tags             []string               `json:"tags"`
	LoadType         domain.LoadType        `json:"loadType" binding:"required"`
	Substitutions    []string               `json:"substitutions"`
	DefaultLoads     map[domain.Sex]float64 `json:"defaultLoads"`
}

type MediaUploadRequest struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType" binding:"required"`
}

type MediaUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

type MediaURLResponse struct {
	URL string `json:"url"`
}

// --- Handler Methods ---

// ListMovements godoc
// @Summary List catalog movements
// @Description Returns the movement library, optionally filtered by modality, muscle group, equipment, or tag.
// @Tags Movements
// @Produce json
// @Param modality query string false "Filter by modality"
// @Param muscleGroup query string false "Filter by muscle group"
// @Param equipment query string false "Filter by required equipment"
// @Param tag query string false "Filter by descriptive tag"
// @Success 200 {array} domain.Movement
// @Router /movements [get]
func (h *MovementHandler) ListMovements(c *gin.Context) {
	snap := h.catalogService.Snapshot()

	var movements []domain.Movement
	switch {
	case c.Query("modality") != "":
		movements = snap.ByModality(domain.Modality(c.Query("modality")))
	case c.Query("muscleGroup") != "":
		movements = snap.ByMuscleGroup(domain.MuscleGroup(c.Query("muscleGroup")))
	case c.Query("equipment") != "":
		movements = snap.ByEquipment(domain.Equipment(c.Query("equipment")))
	case c.Query("tag") != "":
		movements = snap.ByTag(c.Query("tag"))
	default:
		movements = snap.All()
	}

	if movements == nil {
		movements = []domain.Movement{}
	}
	c.JSON(http.StatusOK, movements)
}

// GetMovement godoc
// @Summary Get one movement
// @Tags Movements
// @Produce json
// @Param id path string true "Movement ID"
// @Success 200 {object} domain.Movement
// @Failure 404 {object} gin.H "Movement not found"
// @Router /movements/{id} [get]
func (h *MovementHandler) GetMovement(c *gin.Context) {
	movement, err := h.catalogService.GetMovement(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusNotFound, err.Error())
		return
	}
	c.JSON(http.StatusOK, movement)
}

// CreateMovement godoc
// @Summary Create a movement (Coach only)
// @Tags Movements
// @Accept json
// @Produce json
// @Param movement body MovementRequest true "Movement definition"
// @Success 201 {object} domain.Movement
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 409 {object} gin.H "Movement already exists"
// @Router /movements [post]
func (h *MovementHandler) CreateMovement(c *gin.Context) {
	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	movement := mapRequestToMovement(&req)
	if err := h.catalogService.CreateMovement(c.Request.Context(), movement); err != nil {
		switch {
		case errors.Is(err, service.ErrMovementAlreadyExists):
			abortWithError(c, http.StatusConflict, err.Error())
		case errors.Is(err, service.ErrInvalidMovement):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create movement")
		}
		return
	}

	c.JSON(http.StatusCreated, movement)
}

// UpdateMovement godoc
// @Summary Update a movement (Coach only)
// @Tags Movements
// @Accept json
// @Produce json
// @Param id path string true "Movement ID"
// @Param movement body MovementRequest true "Movement definition"
// @Success 200 {object} domain.Movement
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 404 {object} gin.H "Movement not found"
// @Router /movements/{id} [put]
func (h *MovementHandler) UpdateMovement(c *gin.Context) {
	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if req.ID != c.Param("id") {
		abortWithError(c, http.StatusBadRequest, "Movement ID in body does not match URL")
		return
	}

	movement := mapRequestToMovement(&req)
	if err := h.catalogService.UpdateMovement(c.Request.Context(), movement); err != nil {
		switch {
		case errors.Is(err, service.ErrMovementNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrInvalidMovement):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to update movement")
		}
		return
	}

	c.JSON(http.StatusOK, movement)
}

// DeleteMovement godoc
// @Summary Delete a movement (Coach only)
// @Tags Movements
// @Param id path string true "Movement ID"
// @Success 204 "Deleted"
// @Failure 404 {object} gin.H "Movement not found"
// @Failure 409 {object} gin.H "Movement referenced by substitution chains"
// @Router /movements/{id} [delete]
func (h *MovementHandler) DeleteMovement(c *gin.Context) {
	err := h.catalogService.DeleteMovement(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMovementNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrMovementReferenced):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete movement")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// InitiateMediaUpload godoc
// @Summary Get a presigned upload URL for a movement's demo video (Coach only)
// @Tags Movements
// @Accept json
// @Produce json
// @Param id path string true "Movement ID"
// @Param upload body MediaUploadRequest true "Upload details"
// @Success 200 {object} MediaUploadResponse
// @Failure 404 {object} gin.H "Movement not found"
// @Router /movements/{id}/media-upload-url [post]
func (h *MovementHandler) InitiateMediaUpload(c *gin.Context) {
	var req MediaUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	uploadURL, objectKey, err := h.catalogService.InitiateMediaUpload(
		c.Request.Context(), coachID, c.Param("id"), req.FileName, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrMovementNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate upload URL")
		}
		return
	}

	c.JSON(http.StatusOK, MediaUploadResponse{UploadURL: uploadURL, ObjectKey: objectKey})
}

// GetMediaURL godoc
// @Summary Get a presigned download URL for a movement's demo video
// @Tags Movements
// @Produce json
// @Param id path string true "Movement ID"
// @Success 200 {object} MediaURLResponse
// @Failure 404 {object} gin.H "Movement or media not found"
// @Router /movements/{id}/media-url [get]
func (h *MovementHandler) GetMediaURL(c *gin.Context) {
	url, err := h.catalogService.MediaDownloadURL(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrMovementNotFound) || errors.Is(err, service.ErrNoMediaForMovement) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate download URL")
		}
		return
	}
	c.JSON(http.StatusOK, MediaURLResponse{URL: url})
}

func mapRequestToMovement(req *MovementRequest) *domain.Movement {
	return &domain.Movement{
		ID:               req.ID,
		Name:             req.Name,
		Equipment:        req.Equipment,
		PrimaryRegions:   req.PrimaryRegions,
		SecondaryRegions: req.SecondaryRegions,
		MuscleGroups:     req.MuscleGroups,
		Modality:         req.Modality,
		Difficulty:       req.Difficulty,
		Tags:             req.Tags,
		LoadType:         req.LoadType,
		Substitutions:    req.Substitutions,
		DefaultLoads:     req.DefaultLoads,
	}
}
