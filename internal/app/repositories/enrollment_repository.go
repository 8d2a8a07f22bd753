package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/pkg/apperrors"
	"github.com/emre/trainhub/internal/pkg/dberrors"
	"github.com/emre/trainhub/internal/pkg/logger"
)

// EnrollmentRepository handles enrollment database operations
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateEnrollment enrolls a student into a scheduled batch
func (r *EnrollmentRepository) CreateEnrollment(ctx context.Context, enrollment *models.Enrollment) (int64, error) {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("student_id", "schedule_id", "status").
		Values(enrollment.StudentID, enrollment.ScheduleID, enrollment.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrScheduleNotFound
		}
		logger.Error().Err(err).
			Int64("studentID", enrollment.StudentID).
			Int64("scheduleID", enrollment.ScheduleID).
			Msg("Error executing create enrollment query")
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}
	return id, nil
}

// GetEnrollmentByID retrieves a single enrollment
func (r *EnrollmentRepository) GetEnrollmentByID(ctx context.Context, id int64) (*models.Enrollment, error) {
	sql, args, err := r.sb.Select("id", "student_id", "schedule_id", "status", "enrolled_at").
		From("enrollments").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	e := &models.Enrollment{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&e.ID, &e.StudentID, &e.ScheduleID, &e.Status, &e.EnrolledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error getting enrollment by ID: %w", err)
	}
	return e, nil
}

// CountActiveBySchedule counts active enrollments in a batch, used for the
// capacity check
func (r *EnrollmentRepository) CountActiveBySchedule(ctx context.Context, scheduleID int64) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("enrollments").
		Where(squirrel.Eq{"schedule_id": scheduleID, "status": models.EnrollmentActive}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count enrollments query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting enrollments: %w", err)
	}
	return count, nil
}

// ListBySchedule lists the enrollments of a batch with the student attached
func (r *EnrollmentRepository) ListBySchedule(ctx context.Context, scheduleID int64) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"e.id", "e.student_id", "e.schedule_id", "e.status", "e.enrolled_at",
		"s.id", "s.enrollment_no", "s.first_name", "s.last_name", "s.email", "s.phone", "s.date_of_birth", "s.created_at", "s.updated_at",
	).
		From("enrollments e").
		Join("students s ON s.id = e.student_id").
		Where(squirrel.Eq{"e.schedule_id": scheduleID}).
		OrderBy("e.enrolled_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scheduleID", scheduleID).Msg("Error executing list enrollments query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		e := &models.Enrollment{Student: &models.Student{}}
		err := rows.Scan(&e.ID, &e.StudentID, &e.ScheduleID, &e.Status, &e.EnrolledAt,
			&e.Student.ID, &e.Student.EnrollmentNo, &e.Student.FirstName, &e.Student.LastName,
			&e.Student.Email, &e.Student.Phone, &e.Student.DateOfBirth, &e.Student.CreatedAt, &e.Student.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating enrollment rows: %w", err)
	}

	return enrollments, nil
}

// ListByStudent lists a student's enrollments with the schedule and course attached
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Enrollment, error) {
	sql, args, err := r.sb.Select(
		"e.id", "e.student_id", "e.schedule_id", "e.status", "e.enrolled_at",
		"cs.id", "cs.course_id", "cs.course_offering_id", "cs.start_date", "cs.end_date",
		"cs.status", "cs.capacity", "cs.location", "cs.created_at", "cs.updated_at",
		"c.id", "c.code", "c.name", "c.description", "c.category", "c.curriculum_url", "c.is_active",
	).
		From("enrollments e").
		Join("course_schedules cs ON cs.id = e.schedule_id").
		Join("courses c ON c.id = cs.course_id").
		Where(squirrel.Eq{"e.student_id": studentID}).
		OrderBy("cs.start_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list student enrollments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Error executing list student enrollments query")
		return nil, fmt.Errorf("error querying student enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		e := &models.Enrollment{Schedule: &models.CourseSchedule{Course: &models.Course{}}}
		err := rows.Scan(&e.ID, &e.StudentID, &e.ScheduleID, &e.Status, &e.EnrolledAt,
			&e.Schedule.ID, &e.Schedule.CourseID, &e.Schedule.CourseOfferingID,
			&e.Schedule.StartDate, &e.Schedule.EndDate, &e.Schedule.Status,
			&e.Schedule.Capacity, &e.Schedule.Location, &e.Schedule.CreatedAt, &e.Schedule.UpdatedAt,
			&e.Schedule.Course.ID, &e.Schedule.Course.Code, &e.Schedule.Course.Name,
			&e.Schedule.Course.Description, &e.Schedule.Course.Category,
			&e.Schedule.Course.CurriculumURL, &e.Schedule.Course.IsActive)
		if err != nil {
			return nil, fmt.Errorf("error scanning student enrollment row: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student enrollment rows: %w", err)
	}

	return enrollments, nil
}

// UpdateEnrollmentStatus moves an enrollment to a new lifecycle state
func (r *EnrollmentRepository) UpdateEnrollmentStatus(ctx context.Context, id int64, status models.EnrollmentStatus) error {
	sql, args, err := r.sb.Update("enrollments").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update enrollment status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating enrollment status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}
