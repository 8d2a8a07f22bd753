package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/trainhub/internal/app/middleware"
	"github.com/emre/trainhub/internal/app/models/dto"
	"github.com/emre/trainhub/internal/app/services"
	"github.com/emre/trainhub/internal/pkg/helpers"
)

// TrainerController handles trainer record operations
type TrainerController struct {
	trainerService services.TrainerService
}

// NewTrainerController creates a new TrainerController
func NewTrainerController(trainerService services.TrainerService) *TrainerController {
	return &TrainerController{
		trainerService: trainerService,
	}
}

// CreateTrainer creates a trainer record
// @Summary Create a trainer
// @Tags trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTrainerRequest true "Trainer information"
// @Success 201 {object} dto.APIResponse{data=models.Trainer} "Trainer created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trainers [post]
func (c *TrainerController) CreateTrainer(ctx *gin.Context) {
	var req dto.CreateTrainerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	trainer, err := c.trainerService.CreateTrainer(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(trainer))
}

// GetTrainerByID retrieves a trainer
// @Summary Get trainer details
// @Tags trainers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trainer ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Trainer} "Trainer retrieved"
// @Failure 404 {object} dto.ErrorResponse "Trainer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trainers/{id} [get]
func (c *TrainerController) GetTrainerByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	trainer, err := c.trainerService.GetTrainerByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(trainer))
}

// GetAllTrainers lists trainers
// @Summary List trainers
// @Tags trainers
// @Produce json
// @Security BearerAuth
// @Param activeOnly query bool false "Only active trainers"
// @Param page query int false "1-based page index" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Trainers retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trainers [get]
func (c *TrainerController) GetAllTrainers(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	activeOnly := false
	if activeStr := ctx.Query("activeOnly"); activeStr != "" {
		if parsed, err := strconv.ParseBool(activeStr); err == nil {
			activeOnly = parsed
		}
	}

	trainers, total, err := c.trainerService.GetAllTrainers(ctx, activeOnly, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PagedResponse{
		Items:      trainers,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// UpdateTrainer updates a trainer record
// @Summary Update a trainer
// @Tags trainers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trainer ID" Format(int64) minimum(1)
// @Param request body dto.UpdateTrainerRequest true "Trainer information"
// @Success 200 {object} dto.APIResponse{data=models.Trainer} "Trainer updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Trainer not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trainers/{id} [put]
func (c *TrainerController) UpdateTrainer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateTrainerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	trainer, err := c.trainerService.UpdateTrainer(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(trainer))
}

// DeleteTrainer removes a trainer record
// @Summary Delete a trainer
// @Tags trainers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trainer ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Trainer deleted"
// @Failure 404 {object} dto.ErrorResponse "Trainer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trainers/{id} [delete]
func (c *TrainerController) DeleteTrainer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.trainerService.DeleteTrainer(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Trainer deleted successfully"}))
}

// UploadDocument attaches a certification or contract document to a trainer
// @Summary Upload a trainer document
// @Tags trainers
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trainer ID" Format(int64) minimum(1)
// @Param file formData file true "Certification or contract document"
// @Success 200 {object} dto.APIResponse{data=models.Trainer} "Document uploaded"
// @Failure 400 {object} dto.ErrorResponse "No file provided"
// @Failure 404 {object} dto.ErrorResponse "Trainer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /trainers/{id}/documents [post]
func (c *TrainerController) UploadDocument(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "A document file is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	trainer, err := c.trainerService.UploadDocument(ctx, id, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(trainer))
}
