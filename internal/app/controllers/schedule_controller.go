package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/emre/trainhub/internal/app/middleware"
	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/app/models/dto"
	"github.com/emre/trainhub/internal/app/repositories"
	"github.com/emre/trainhub/internal/app/services"
	"github.com/emre/trainhub/internal/pkg/helpers"
)

const holidayDataWarning = "Public holiday data was unavailable; the end date skips weekends only and may be earlier than the actual one."

// ScheduleController handles scheduled course batch operations
type ScheduleController struct {
	scheduleService services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// CreateSchedule schedules a new batch
// @Summary Schedule a course batch
// @Description Creates a schedule. The end date is computed from the offering's working-day duration, skipping weekends and public holidays; the status is derived from today's date. Neither is accepted from the client.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateScheduleRequest true "Schedule information"
// @Success 201 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Offering not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules [post]
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.scheduleService.CreateSchedule(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, scheduleEnvelope(resp))
}

// GetScheduleByID retrieves a schedule with its course and offering
// @Summary Get schedule details
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.CourseSchedule} "Schedule retrieved"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [get]
func (c *ScheduleController) GetScheduleByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	schedule, err := c.scheduleService.GetScheduleByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schedule))
}

// GetAllSchedules lists schedules matching the filter
// @Summary List schedules
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param courseId query int false "Course filter"
// @Param status query string false "Status filter" Enums(upcoming, ongoing, completed)
// @Param page query int false "1-based page index" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Schedules retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules [get]
func (c *ScheduleController) GetAllSchedules(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter := repositories.ScheduleFilter{
		Status: models.ScheduleStatus(ctx.Query("status")),
	}
	if courseIDStr := ctx.Query("courseId"); courseIDStr != "" {
		if courseID, err := strconv.ParseInt(courseIDStr, 10, 64); err == nil {
			filter.CourseID = courseID
		}
	}

	schedules, total, err := c.scheduleService.GetAllSchedules(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PagedResponse{
		Items:      schedules,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// UpdateSchedule moves or resizes a batch
// @Summary Update a schedule
// @Description A changed start date recomputes the end date and the derived status.
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID" Format(int64) minimum(1)
// @Param request body dto.UpdateScheduleRequest true "Schedule information"
// @Success 200 {object} dto.APIResponse{data=dto.ScheduleResponse} "Schedule updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [put]
func (c *ScheduleController) UpdateSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.scheduleService.UpdateSchedule(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, scheduleEnvelope(resp))
}

// DeleteSchedule deletes a scheduled batch
// @Summary Delete a schedule
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Schedule ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Schedule deleted"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Failure 409 {object} dto.ErrorResponse "Schedule has enrollments"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/{id} [delete]
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.scheduleService.DeleteSchedule(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Schedule deleted successfully"}))
}

// RefreshStatuses re-derives every schedule's status from today's date
// @Summary Refresh schedule statuses
// @Description Recomputes upcoming/ongoing/completed for all schedules and persists only the changed ones. Safe to run repeatedly.
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.RefreshStatusesResponse} "Refresh completed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/refresh-statuses [post]
func (c *ScheduleController) RefreshStatuses(ctx *gin.Context) {
	resp, err := c.scheduleService.RefreshStatuses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// PreviewEndDate runs the working-day calculation without persisting
// @Summary Preview an end date
// @Description Computes the end date for a start date and working-day count, without creating a schedule.
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param startDate query string true "Start date (YYYY-MM-DD)"
// @Param workingDays query int true "Working days" minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.PreviewEndDateResponse} "Preview computed"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /schedules/preview-end-date [get]
func (c *ScheduleController) PreviewEndDate(ctx *gin.Context) {
	startDate := ctx.Query("startDate")
	workingDays, err := strconv.Atoi(ctx.Query("workingDays"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "workingDays must be a number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.scheduleService.PreviewEndDate(ctx, startDate, workingDays)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	envelope := dto.NewAPIResponse(resp)
	if resp.Calculation != nil && resp.Calculation.HolidayDataMissing {
		envelope.Warning = holidayDataWarning
	}
	ctx.JSON(http.StatusOK, envelope)
}

// scheduleEnvelope wraps a schedule response, surfacing the degraded-holiday
// warning when the calculation fell back to weekends only
func scheduleEnvelope(resp *dto.ScheduleResponse) dto.APIResponse {
	envelope := dto.APIResponse{Data: resp, Timestamp: time.Now()}
	if resp.Calculation != nil && resp.Calculation.HolidayDataMissing {
		envelope.Warning = holidayDataWarning
	}
	return envelope
}
