package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emre/trainhub/internal/app/middleware"
	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/app/models/dto"
	"github.com/emre/trainhub/internal/app/repositories"
	"github.com/emre/trainhub/internal/app/services"
	"github.com/emre/trainhub/internal/pkg/helpers"
)

// AssetController handles asset rental lifecycle operations
type AssetController struct {
	assetService services.AssetService
}

// NewAssetController creates a new AssetController
func NewAssetController(assetService services.AssetService) *AssetController {
	return &AssetController{
		assetService: assetService,
	}
}

// CreateAsset registers a new equipment unit
// @Summary Register an asset
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAssetRequest true "Asset information"
// @Success 201 {object} dto.APIResponse{data=models.Asset} "Asset registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "Serial number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assets [post]
func (c *AssetController) CreateAsset(ctx *gin.Context) {
	var req dto.CreateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	asset, err := c.assetService.CreateAsset(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(asset))
}

// GetAssetByID retrieves an asset
// @Summary Get asset details
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Asset} "Asset retrieved"
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assets/{id} [get]
func (c *AssetController) GetAssetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	asset, err := c.assetService.GetAssetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(asset))
}

// GetAllAssets lists assets matching the filter
// @Summary List assets
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(available, rental_in_progress, ready_to_return, returned, maintenance, lost)
// @Param category query string false "Category filter"
// @Param q query string false "Search over name and serial number"
// @Param page query int false "1-based page index" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Assets retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assets [get]
func (c *AssetController) GetAllAssets(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter := repositories.AssetFilter{
		Status:   models.AssetStatus(ctx.Query("status")),
		Category: ctx.Query("category"),
		Query:    ctx.Query("q"),
	}

	assets, total, err := c.assetService.GetAllAssets(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PagedResponse{
		Items:      assets,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// UpdateAsset updates an asset's descriptive fields
// @Summary Update an asset
// @Description Updates name, serial number and category. The lifecycle state is only changed through the transition endpoints.
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID" Format(int64) minimum(1)
// @Param request body dto.UpdateAssetRequest true "Asset information"
// @Success 200 {object} dto.APIResponse{data=models.Asset} "Asset updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Failure 409 {object} dto.ErrorResponse "Serial number already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assets/{id} [put]
func (c *AssetController) UpdateAsset(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	asset, err := c.assetService.UpdateAsset(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(asset))
}

// DeleteAsset removes an asset
// @Summary Delete an asset
// @Description Deletes an asset that is not currently rented out, together with its assignment history.
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Asset deleted"
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Failure 409 {object} dto.ErrorResponse "Asset is rented out"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assets/{id} [delete]
func (c *AssetController) DeleteAsset(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.assetService.DeleteAsset(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Asset deleted successfully"}))
}

// Assign rents an asset out to a student or trainer
// @Summary Assign an asset
// @Description Rents the asset out. Only an available asset can be assigned; a concurrent second assignment of the same unit is rejected.
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID" Format(int64) minimum(1)
// @Param request body dto.AssignAssetRequest true "Assignee"
// @Success 200 {object} dto.APIResponse{data=models.Asset} "Asset assigned"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Failure 409 {object} dto.ErrorResponse "Asset is not available"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assets/{id}/assign [post]
func (c *AssetController) Assign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AssignAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	asset, err := c.assetService.Assign(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(asset))
}

// MarkReadyToReturn flags a rental as awaiting physical return
// @Summary Mark an asset ready to return
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Asset} "Asset marked"
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assets/{id}/ready-to-return [post]
func (c *AssetController) MarkReadyToReturn(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	asset, err := c.assetService.MarkReadyToReturn(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(asset))
}

// Return completes a rental
// @Summary Return an asset
// @Description Completes the rental, stamps the rental end date and closes the open assignment record.
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Asset} "Asset returned"
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assets/{id}/return [post]
func (c *AssetController) Return(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	asset, err := c.assetService.Return(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(asset))
}

// Reactivate puts an asset back into circulation
// @Summary Reactivate an asset
// @Description Moves a returned, maintained or recovered asset back to available, clearing the rental fields.
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Asset} "Asset reactivated"
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Failure 409 {object} dto.ErrorResponse "Asset must be returned first"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assets/{id}/reactivate [post]
func (c *AssetController) Reactivate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	asset, err := c.assetService.Reactivate(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(asset))
}

// MarkMaintenance takes an asset out of circulation for repair
// @Summary Send an asset to maintenance
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Asset} "Asset in maintenance"
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assets/{id}/maintenance [post]
func (c *AssetController) MarkMaintenance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	asset, err := c.assetService.MarkMaintenance(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(asset))
}

// MarkLost records an asset as lost
// @Summary Mark an asset lost
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Asset} "Asset marked lost"
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assets/{id}/lost [post]
func (c *AssetController) MarkLost(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	asset, err := c.assetService.MarkLost(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(asset))
}

// BulkSetStatus sets the status of several assets at once
// @Summary Bulk-set asset status
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkStatusRequest true "Asset IDs and target status"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Statuses updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assets/bulk-status [post]
func (c *AssetController) BulkSetStatus(ctx *gin.Context) {
	var req dto.BulkStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	changed, err := c.assetService.BulkSetStatus(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"updated": changed}))
}

// GetAssignmentHistory returns an asset's assignment history
// @Summary Get an asset's assignment history
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Asset ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.AssetAssignment} "History retrieved"
// @Failure 404 {object} dto.ErrorResponse "Asset not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /assets/{id}/assignments [get]
func (c *AssetController) GetAssignmentHistory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	history, err := c.assetService.GetAssignmentHistory(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(history))
}
