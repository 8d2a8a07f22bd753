package services

import (
	"context"
	"time"

	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/app/models/dto"
	"github.com/emre/trainhub/internal/app/repositories"
	"github.com/emre/trainhub/internal/pkg/apperrors"
	"github.com/emre/trainhub/internal/pkg/helpers"
	"github.com/emre/trainhub/internal/pkg/logger"
	"github.com/emre/trainhub/internal/pkg/workdays"
)

// ScheduleStore is the persistence surface the schedule service needs
type ScheduleStore interface {
	CreateSchedule(ctx context.Context, schedule *models.CourseSchedule) (int64, error)
	GetScheduleByID(ctx context.Context, id int64) (*models.CourseSchedule, error)
	GetAllSchedules(ctx context.Context, filter repositories.ScheduleFilter, offset uint64, limit int) ([]*models.CourseSchedule, int64, error)
	UpdateSchedule(ctx context.Context, schedule *models.CourseSchedule) error
	UpdateScheduleStatus(ctx context.Context, id int64, status models.ScheduleStatus) error
	ListForStatusRefresh(ctx context.Context) ([]*models.CourseSchedule, error)
	DeleteSchedule(ctx context.Context, id int64) error
}

// OfferingStore resolves course offerings for schedule creation
type OfferingStore interface {
	GetOfferingByID(ctx context.Context, id int64) (*models.CourseOffering, error)
}

// ScheduleService defines scheduled course batch operations
type ScheduleService interface {
	CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)
	GetScheduleByID(ctx context.Context, id int64) (*models.CourseSchedule, error)
	GetAllSchedules(ctx context.Context, filter repositories.ScheduleFilter, page, size int) ([]*models.CourseSchedule, int64, error)
	UpdateSchedule(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error)
	DeleteSchedule(ctx context.Context, id int64) error
	RefreshStatuses(ctx context.Context) (*dto.RefreshStatusesResponse, error)
	PreviewEndDate(ctx context.Context, startDate string, workingDays int) (*dto.PreviewEndDateResponse, error)
}

// ScheduleServiceImpl implements ScheduleService
type ScheduleServiceImpl struct {
	scheduleStore ScheduleStore
	offeringStore OfferingStore
	calculator    *workdays.Calculator
	now           func() time.Time
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(scheduleStore ScheduleStore, offeringStore OfferingStore, calculator *workdays.Calculator) ScheduleService {
	return &ScheduleServiceImpl{
		scheduleStore: scheduleStore,
		offeringStore: offeringStore,
		calculator:    calculator,
		now:           time.Now,
	}
}

// CreateSchedule schedules a new batch. The end date is computed from the
// offering's working-day duration and the status derived from today's date;
// neither is accepted from the client.
func (s *ScheduleServiceImpl) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("startDate must be in YYYY-MM-DD format")
	}

	offering, err := s.offeringStore.GetOfferingByID(ctx, req.CourseOfferingID)
	if err != nil {
		return nil, err
	}

	calc, err := s.calculator.CalculateEndDate(ctx, startDate, offering.DurationDays)
	if err != nil {
		return nil, err
	}

	schedule := &models.CourseSchedule{
		CourseID:         offering.CourseID,
		CourseOfferingID: offering.ID,
		StartDate:        startDate,
		EndDate:          calc.EndDate,
		Status:           models.DeriveScheduleStatus(startDate, calc.EndDate, s.now()),
		Capacity:         req.Capacity,
		Location:         req.Location,
	}

	id, err := s.scheduleStore.CreateSchedule(ctx, schedule)
	if err != nil {
		return nil, err
	}

	created, err := s.scheduleStore.GetScheduleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ScheduleResponse{Schedule: created, Calculation: calc}, nil
}

// GetScheduleByID retrieves a schedule with its course and offering. The
// status is re-derived from today's date so reads never serve a batch whose
// dates have moved past its stored status.
func (s *ScheduleServiceImpl) GetScheduleByID(ctx context.Context, id int64) (*models.CourseSchedule, error) {
	schedule, err := s.scheduleStore.GetScheduleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.refreshStaleStatus(ctx, schedule)
	return schedule, nil
}

// GetAllSchedules lists schedules matching the filter, re-deriving stale
// statuses the same way GetScheduleByID does
func (s *ScheduleServiceImpl) GetAllSchedules(ctx context.Context, filter repositories.ScheduleFilter, page, size int) ([]*models.CourseSchedule, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	schedules, total, err := s.scheduleStore.GetAllSchedules(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	for _, schedule := range schedules {
		s.refreshStaleStatus(ctx, schedule)
	}
	return schedules, total, nil
}

// refreshStaleStatus replaces a stored status that no longer matches the
// schedule's dates. The derived value is always returned to the caller; the
// write-back is best effort and a failure only logs, the next read or the
// bulk refresh will retry it.
func (s *ScheduleServiceImpl) refreshStaleStatus(ctx context.Context, schedule *models.CourseSchedule) {
	derived := models.DeriveScheduleStatus(schedule.StartDate, schedule.EndDate, s.now())
	if derived == schedule.Status {
		return
	}
	if err := s.scheduleStore.UpdateScheduleStatus(ctx, schedule.ID, derived); err != nil {
		logger.Warn().Err(err).Int64("scheduleID", schedule.ID).Msg("Failed to persist re-derived schedule status")
	}
	schedule.Status = derived
}

// UpdateSchedule moves or resizes a batch. A changed start date recomputes
// the end date and the derived status.
func (s *ScheduleServiceImpl) UpdateSchedule(ctx context.Context, id int64, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	schedule, err := s.scheduleStore.GetScheduleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	startDate, err := helpers.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("startDate must be in YYYY-MM-DD format")
	}

	offering, err := s.offeringStore.GetOfferingByID(ctx, schedule.CourseOfferingID)
	if err != nil {
		return nil, err
	}

	calc, err := s.calculator.CalculateEndDate(ctx, startDate, offering.DurationDays)
	if err != nil {
		return nil, err
	}

	schedule.StartDate = startDate
	schedule.EndDate = calc.EndDate
	schedule.Status = models.DeriveScheduleStatus(startDate, calc.EndDate, s.now())
	schedule.Capacity = req.Capacity
	schedule.Location = req.Location

	if err := s.scheduleStore.UpdateSchedule(ctx, schedule); err != nil {
		return nil, err
	}

	updated, err := s.scheduleStore.GetScheduleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ScheduleResponse{Schedule: updated, Calculation: calc}, nil
}

// DeleteSchedule deletes a scheduled batch
func (s *ScheduleServiceImpl) DeleteSchedule(ctx context.Context, id int64) error {
	return s.scheduleStore.DeleteSchedule(ctx, id)
}

// RefreshStatuses re-derives the status of every schedule from today's date
// and persists only the ones that changed. The sweep is idempotent; running
// it twice on the same day updates nothing the second time.
func (s *ScheduleServiceImpl) RefreshStatuses(ctx context.Context) (*dto.RefreshStatusesResponse, error) {
	schedules, err := s.scheduleStore.ListForStatusRefresh(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	updated := 0
	for _, schedule := range schedules {
		derived := models.DeriveScheduleStatus(schedule.StartDate, schedule.EndDate, now)
		if derived == schedule.Status {
			continue
		}
		if err := s.scheduleStore.UpdateScheduleStatus(ctx, schedule.ID, derived); err != nil {
			logger.Error().Err(err).Int64("scheduleID", schedule.ID).Msg("Failed to persist refreshed schedule status")
			return nil, err
		}
		updated++
	}

	logger.Info().Int("examined", len(schedules)).Int("updated", updated).Msg("Schedule status refresh completed")
	return &dto.RefreshStatusesResponse{Examined: len(schedules), Updated: updated}, nil
}

// PreviewEndDate runs the working-day calculation without persisting anything
func (s *ScheduleServiceImpl) PreviewEndDate(ctx context.Context, startDate string, workingDays int) (*dto.PreviewEndDateResponse, error) {
	start, err := helpers.ParseDate(startDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("startDate must be in YYYY-MM-DD format")
	}
	if workingDays < 1 {
		return nil, apperrors.NewBadRequestError("workingDays must be at least 1")
	}

	calc, err := s.calculator.CalculateEndDate(ctx, start, workingDays)
	if err != nil {
		return nil, err
	}

	return &dto.PreviewEndDateResponse{
		StartDate:   startDate,
		WorkingDays: workingDays,
		Calculation: calc,
	}, nil
}
