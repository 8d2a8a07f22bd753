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
	"github.com/emre/trainhub/internal/db"
	"github.com/emre/trainhub/internal/pkg/apperrors"
	"github.com/emre/trainhub/internal/pkg/dberrors"
	"github.com/emre/trainhub/internal/pkg/logger"
)

// StudentRepository handles student and student address database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const studentColumns = "id, enrollment_no, first_name, last_name, email, phone, date_of_birth, created_at, updated_at"

func scanStudent(row pgx.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(&s.ID, &s.EnrollmentNo, &s.FirstName, &s.LastName, &s.Email,
		&s.Phone, &s.DateOfBirth, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateStudentWithAddress inserts the student record, its address and an
// optional initial enrollment in one transaction. Either everything is
// written or nothing is.
func (r *StudentRepository) CreateStudentWithAddress(ctx context.Context, student *models.Student, address *models.StudentAddress, scheduleID *int64) (int64, error) {
	var studentID int64

	err := db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		sql, args, err := r.sb.Insert("students").
			Columns("enrollment_no", "first_name", "last_name", "email", "phone", "date_of_birth").
			Values(student.EnrollmentNo, student.FirstName, student.LastName, student.Email, student.Phone, student.DateOfBirth).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create student query: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&studentID); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "students_enrollment_no_key") {
				return apperrors.ErrEnrollmentNoAlreadyExists
			}
			if dberrors.IsDuplicateKeyError(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating student: %w", err)
		}

		sql, args, err = r.sb.Insert("student_addresses").
			Columns("student_id", "line1", "line2", "city", "postal_code", "country").
			Values(studentID, address.Line1, address.Line2, address.City, address.PostalCode, address.Country).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create address query: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("error creating student address: %w", err)
		}

		if scheduleID != nil {
			sql, args, err = r.sb.Insert("enrollments").
				Columns("student_id", "schedule_id", "status").
				Values(studentID, *scheduleID, models.EnrollmentActive).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build create enrollment query: %w", err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				if dberrors.IsForeignKeyViolation(err) {
					return apperrors.ErrScheduleNotFound
				}
				return fmt.Errorf("error creating initial enrollment: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		if !isKnownAppError(err) {
			logger.Error().Err(err).Str("enrollmentNo", student.EnrollmentNo).Msg("Error in student creation transaction")
		}
		return 0, err
	}

	return studentID, nil
}

func isKnownAppError(err error) bool {
	return errors.Is(err, apperrors.ErrEnrollmentNoAlreadyExists) ||
		errors.Is(err, apperrors.ErrEmailAlreadyExists) ||
		errors.Is(err, apperrors.ErrScheduleNotFound)
}

// GetStudentByID retrieves a student with their address
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by ID: %w", err)
	}

	address, err := r.getAddress(ctx, id)
	if err != nil {
		return nil, err
	}
	student.Address = address
	return student, nil
}

func (r *StudentRepository) getAddress(ctx context.Context, studentID int64) (*models.StudentAddress, error) {
	sql, args, err := r.sb.Select("id", "student_id", "line1", "line2", "city", "postal_code", "country").
		From("student_addresses").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get address query: %w", err)
	}

	addr := &models.StudentAddress{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&addr.ID, &addr.StudentID,
		&addr.Line1, &addr.Line2, &addr.City, &addr.PostalCode, &addr.Country)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error getting student address: %w", err)
	}
	return addr, nil
}

// GetAllStudents retrieves students with pagination, optionally matching a
// free-text search over name, email and enrollment number
func (r *StudentRepository) GetAllStudents(ctx context.Context, search string, offset uint64, limit int) ([]*models.Student, int64, error) {
	base := r.sb.Select(studentColumns).From("students")
	countQ := r.sb.Select("COUNT(*)").From("students")

	if search != "" {
		pattern := "%" + search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"first_name": pattern},
			squirrel.ILike{"last_name": pattern},
			squirrel.ILike{"email": pattern},
			squirrel.ILike{"enrollment_no": pattern},
		}
		base = base.Where(cond)
		countQ = countQ.Where(cond)
	}

	countSql, countArgs, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count students query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting students: %w", err)
	}

	sql, args, err := base.OrderBy("last_name ASC", "first_name ASC").Offset(offset).Limit(uint64(limit)).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, 0, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, total, nil
}

// UpdateStudentWithAddress updates the student record and its address
// together in one transaction
func (r *StudentRepository) UpdateStudentWithAddress(ctx context.Context, student *models.Student, address *models.StudentAddress) error {
	return db.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		sql, args, err := r.sb.Update("students").
			SetMap(map[string]interface{}{
				"first_name":    student.FirstName,
				"last_name":     student.LastName,
				"email":         student.Email,
				"phone":         student.Phone,
				"date_of_birth": student.DateOfBirth,
				"updated_at":    time.Now(),
			}).
			Where(squirrel.Eq{"id": student.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update student query: %w", err)
		}
		cmdTag, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			if dberrors.IsDuplicateKeyError(err) {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error updating student: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		if address == nil {
			return nil
		}

		sql, args, err = r.sb.Update("student_addresses").
			SetMap(map[string]interface{}{
				"line1":       address.Line1,
				"line2":       address.Line2,
				"city":        address.City,
				"postal_code": address.PostalCode,
				"country":     address.Country,
			}).
			Where(squirrel.Eq{"student_id": student.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update address query: %w", err)
		}
		cmdTag, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("error updating student address: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			// student predates address records, insert instead
			sql, args, err = r.sb.Insert("student_addresses").
				Columns("student_id", "line1", "line2", "city", "postal_code", "country").
				Values(student.ID, address.Line1, address.Line2, address.City, address.PostalCode, address.Country).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build insert address query: %w", err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return fmt.Errorf("error inserting student address: %w", err)
			}
		}
		return nil
	})
}

// DeleteStudent deletes a student, their address and enrollments
func (r *StudentRepository) DeleteStudent(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
