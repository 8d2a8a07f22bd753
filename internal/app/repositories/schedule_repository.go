package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/pkg/apperrors"
	"github.com/emre/trainhub/internal/pkg/dberrors"
	"github.com/emre/trainhub/internal/pkg/logger"
)

// ScheduleFilter narrows schedule listings
type ScheduleFilter struct {
	CourseID int64
	Status   models.ScheduleStatus
}

// ScheduleRepository handles scheduled course batch database operations
type ScheduleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Joined select: every read returns the schedule together with its course and
// offering so callers never need a second round trip.
func (r *ScheduleRepository) baseSelect() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.id", "s.course_id", "s.course_offering_id", "s.start_date", "s.end_date",
		"s.status", "s.capacity", "s.location", "s.created_at", "s.updated_at",
		"c.id", "c.code", "c.name", "c.description", "c.category", "c.curriculum_url", "c.is_active",
		"o.id", "o.course_id", "o.delivery_mode", "o.pace", "o.duration_days", "o.fee",
	).
		From("course_schedules s").
		Join("courses c ON c.id = s.course_id").
		Join("course_offerings o ON o.id = s.course_offering_id")
}

func scanScheduleJoined(row pgx.Row) (*models.CourseSchedule, error) {
	s := &models.CourseSchedule{Course: &models.Course{}, Offering: &models.CourseOffering{}}
	err := row.Scan(
		&s.ID, &s.CourseID, &s.CourseOfferingID, &s.StartDate, &s.EndDate,
		&s.Status, &s.Capacity, &s.Location, &s.CreatedAt, &s.UpdatedAt,
		&s.Course.ID, &s.Course.Code, &s.Course.Name, &s.Course.Description,
		&s.Course.Category, &s.Course.CurriculumURL, &s.Course.IsActive,
		&s.Offering.ID, &s.Offering.CourseID, &s.Offering.DeliveryMode,
		&s.Offering.Pace, &s.Offering.DurationDays, &s.Offering.Fee,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateSchedule inserts a new scheduled batch
func (r *ScheduleRepository) CreateSchedule(ctx context.Context, schedule *models.CourseSchedule) (int64, error) {
	sql, args, err := r.sb.Insert("course_schedules").
		Columns("course_id", "course_offering_id", "start_date", "end_date", "status", "capacity", "location").
		Values(schedule.CourseID, schedule.CourseOfferingID, schedule.StartDate, schedule.EndDate,
			schedule.Status, schedule.Capacity, schedule.Location).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create schedule query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrOfferingNotFound
		}
		logger.Error().Err(err).Int64("offeringID", schedule.CourseOfferingID).Msg("Error executing create schedule query")
		return 0, fmt.Errorf("error creating schedule: %w", err)
	}
	return id, nil
}

// GetScheduleByID retrieves a schedule with its course and offering
func (r *ScheduleRepository) GetScheduleByID(ctx context.Context, id int64) (*models.CourseSchedule, error) {
	sql, args, err := r.baseSelect().
		Where(squirrel.Eq{"s.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get schedule query: %w", err)
	}

	schedule, err := scanScheduleJoined(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error scanning schedule row")
		return nil, fmt.Errorf("error getting schedule by ID: %w", err)
	}
	return schedule, nil
}

// GetAllSchedules retrieves schedules matching the filter, with pagination
func (r *ScheduleRepository) GetAllSchedules(ctx context.Context, filter ScheduleFilter, offset uint64, limit int) ([]*models.CourseSchedule, int64, error) {
	base := r.baseSelect()
	countQ := r.sb.Select("COUNT(*)").From("course_schedules s")

	if filter.CourseID > 0 {
		base = base.Where(squirrel.Eq{"s.course_id": filter.CourseID})
		countQ = countQ.Where(squirrel.Eq{"s.course_id": filter.CourseID})
	}
	if filter.Status != "" {
		base = base.Where(squirrel.Eq{"s.status": filter.Status})
		countQ = countQ.Where(squirrel.Eq{"s.status": filter.Status})
	}

	countSql, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count schedules query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting schedules: %w", err)
	}

	sql, args, err := base.OrderBy("s.start_date DESC").Offset(offset).Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list schedules query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list schedules query")
		return nil, 0, fmt.Errorf("error querying schedules: %w", err)
	}
	defer rows.Close()

	schedules := []*models.CourseSchedule{}
	for rows.Next() {
		schedule, err := scanScheduleJoined(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning schedule row: %w", err)
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating schedule rows: %w", err)
	}

	return schedules, total, nil
}

// UpdateSchedule rewrites a schedule's stored fields, including the
// recomputed end date and derived status
func (r *ScheduleRepository) UpdateSchedule(ctx context.Context, schedule *models.CourseSchedule) error {
	sql, args, err := r.sb.Update("course_schedules").
		SetMap(map[string]interface{}{
			"course_offering_id": schedule.CourseOfferingID,
			"start_date":         schedule.StartDate,
			"end_date":           schedule.EndDate,
			"status":             schedule.Status,
			"capacity":           schedule.Capacity,
			"location":           schedule.Location,
			"updated_at":         time.Now(),
		}).
		Where(squirrel.Eq{"id": schedule.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update schedule query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scheduleID", schedule.ID).Msg("Error executing update schedule query")
		return fmt.Errorf("error updating schedule: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}
	return nil
}

// UpdateScheduleStatus sets only the derived status column
func (r *ScheduleRepository) UpdateScheduleStatus(ctx context.Context, id int64, status models.ScheduleStatus) error {
	sql, args, err := r.sb.Update("course_schedules").
		SetMap(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update schedule status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating schedule status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}
	return nil
}

// ListForStatusRefresh returns the date and status columns of every schedule,
// enough for the bulk status recomputation sweep
func (r *ScheduleRepository) ListForStatusRefresh(ctx context.Context) ([]*models.CourseSchedule, error) {
	sql, args, err := r.sb.Select("id", "start_date", "end_date", "status").
		From("course_schedules").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build status refresh query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying schedules for refresh: %w", err)
	}
	defer rows.Close()

	schedules := []*models.CourseSchedule{}
	for rows.Next() {
		s := &models.CourseSchedule{}
		if err := rows.Scan(&s.ID, &s.StartDate, &s.EndDate, &s.Status); err != nil {
			return nil, fmt.Errorf("error scanning schedule row: %w", err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule rows: %w", err)
	}

	return schedules, nil
}

// DeleteSchedule deletes a scheduled batch
func (r *ScheduleRepository) DeleteSchedule(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("course_schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete schedule query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflictError("schedule has enrollments and cannot be deleted")
		}
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error executing delete schedule query")
		return fmt.Errorf("error deleting schedule: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}
	return nil
}
