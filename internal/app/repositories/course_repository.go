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

// CourseFilter narrows course listings
type CourseFilter struct {
	Query    string // matches code or name, case-insensitive
	Category string
	Active   *bool
}

// CourseRepository handles course catalog database operations,
// including per-course offerings
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateCourse inserts a new catalog course
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("code", "name", "description", "category", "is_active").
		Values(course.Code, course.Name, course.Description, course.Category, course.IsActive).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Str("code", course.Code).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}
	return id, nil
}

// GetCourseByID retrieves a course with its offerings
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "code", "name", "description", "category", "curriculum_url", "is_active").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course := &models.Course{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.Code, &course.Name,
		&course.Description, &course.Category, &course.CurriculumURL, &course.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	offerings, err := r.GetOfferingsByCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	course.Offerings = offerings
	return course, nil
}

// GetAllCourses retrieves courses matching the filter, with pagination
func (r *CourseRepository) GetAllCourses(ctx context.Context, filter CourseFilter, offset uint64, limit int) ([]*models.Course, int64, error) {
	base := r.sb.Select("id", "code", "name", "description", "category", "curriculum_url", "is_active").
		From("courses")
	countQ := r.sb.Select("COUNT(*)").From("courses")

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		cond := squirrel.Or{
			squirrel.ILike{"code": pattern},
			squirrel.ILike{"name": pattern},
		}
		base = base.Where(cond)
		countQ = countQ.Where(cond)
	}
	if filter.Category != "" {
		base = base.Where(squirrel.Eq{"category": filter.Category})
		countQ = countQ.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Active != nil {
		base = base.Where(squirrel.Eq{"is_active": *filter.Active})
		countQ = countQ.Where(squirrel.Eq{"is_active": *filter.Active})
	}

	countSql, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count courses query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	sql, args, err := base.OrderBy("code ASC").Offset(offset).Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list courses query")
		return nil, 0, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course := &models.Course{}
		err := rows.Scan(&course.ID, &course.Code, &course.Name,
			&course.Description, &course.Category, &course.CurriculumURL, &course.IsActive)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, total, nil
}

// UpdateCourse updates a course's descriptive fields
func (r *CourseRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"code":        course.Code,
			"name":        course.Name,
			"description": course.Description,
			"category":    course.Category,
			"is_active":   course.IsActive,
		}).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// SetCurriculumURL stores the uploaded curriculum document URL
func (r *CourseRepository) SetCurriculumURL(ctx context.Context, courseID int64, url string) error {
	sql, args, err := r.sb.Update("courses").
		Set("curriculum_url", url).
		Where(squirrel.Eq{"id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set curriculum query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error setting curriculum URL: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// DeleteCourse deletes a course. Courses with scheduled batches cannot be
// deleted; deactivate them instead.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").
		From("course_schedules").
		Where(squirrel.Eq{"course_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build schedule count query: %w", err)
	}
	var scheduleCount int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&scheduleCount); err != nil {
		return fmt.Errorf("error counting course schedules: %w", err)
	}
	if scheduleCount > 0 {
		return apperrors.ErrCourseHasSchedules
	}

	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseHasSchedules
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// CreateOffering inserts a delivery-mode variant for a course
func (r *CourseRepository) CreateOffering(ctx context.Context, offering *models.CourseOffering) (int64, error) {
	sql, args, err := r.sb.Insert("course_offerings").
		Columns("course_id", "delivery_mode", "pace", "duration_days", "fee").
		Values(offering.CourseID, offering.DeliveryMode, offering.Pace, offering.DurationDays, offering.Fee).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create offering query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return 0, apperrors.ErrOfferingAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", offering.CourseID).Msg("Error executing create offering query")
		return 0, fmt.Errorf("error creating offering: %w", err)
	}
	return id, nil
}

// GetOfferingByID retrieves a single offering
func (r *CourseRepository) GetOfferingByID(ctx context.Context, id int64) (*models.CourseOffering, error) {
	sql, args, err := r.sb.Select("id", "course_id", "delivery_mode", "pace", "duration_days", "fee").
		From("course_offerings").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get offering query: %w", err)
	}

	offering := &models.CourseOffering{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&offering.ID, &offering.CourseID,
		&offering.DeliveryMode, &offering.Pace, &offering.DurationDays, &offering.Fee)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOfferingNotFound
		}
		return nil, fmt.Errorf("error getting offering by ID: %w", err)
	}
	return offering, nil
}

// GetOfferingsByCourse lists all offerings of one course
func (r *CourseRepository) GetOfferingsByCourse(ctx context.Context, courseID int64) ([]*models.CourseOffering, error) {
	sql, args, err := r.sb.Select("id", "course_id", "delivery_mode", "pace", "duration_days", "fee").
		From("course_offerings").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("delivery_mode ASC", "pace ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list offerings query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying offerings: %w", err)
	}
	defer rows.Close()

	offerings := []*models.CourseOffering{}
	for rows.Next() {
		offering := &models.CourseOffering{}
		err := rows.Scan(&offering.ID, &offering.CourseID,
			&offering.DeliveryMode, &offering.Pace, &offering.DurationDays, &offering.Fee)
		if err != nil {
			return nil, fmt.Errorf("error scanning offering row: %w", err)
		}
		offerings = append(offerings, offering)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offering rows: %w", err)
	}

	return offerings, nil
}

// UpdateOffering updates an offering's duration and fee
func (r *CourseRepository) UpdateOffering(ctx context.Context, offering *models.CourseOffering) error {
	sql, args, err := r.sb.Update("course_offerings").
		SetMap(map[string]interface{}{
			"delivery_mode": offering.DeliveryMode,
			"pace":          offering.Pace,
			"duration_days": offering.DurationDays,
			"fee":           offering.Fee,
		}).
		Where(squirrel.Eq{"id": offering.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update offering query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateKeyError(err) {
			return apperrors.ErrOfferingAlreadyExists
		}
		return fmt.Errorf("error updating offering: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOfferingNotFound
	}
	return nil
}

// DeleteOffering deletes an offering
func (r *CourseRepository) DeleteOffering(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("course_offerings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete offering query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseHasSchedules
		}
		return fmt.Errorf("error deleting offering: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrOfferingNotFound
	}
	return nil
}
