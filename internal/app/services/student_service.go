package services

import (
	"context"
	"time"

	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/app/models/dto"
	"github.com/emre/trainhub/internal/app/repositories"
	"github.com/emre/trainhub/internal/pkg/apperrors"
	"github.com/emre/trainhub/internal/pkg/helpers"
	"github.com/emre/trainhub/internal/pkg/validation"
)

// StudentService defines student record operations
type StudentService interface {
	CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context, search string, page, size int) ([]*models.Student, int64, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	GetStudentEnrollments(ctx context.Context, id int64) ([]*models.Enrollment, error)
}

// StudentServiceImpl implements StudentService
type StudentServiceImpl struct {
	studentRepo    *repositories.StudentRepository
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository, enrollmentRepo *repositories.EnrollmentRepository) StudentService {
	return &StudentServiceImpl{
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// CreateStudent creates the student record, its address and an optional
// initial enrollment atomically
func (s *StudentServiceImpl) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if !validation.IsValidEnrollmentNo(req.EnrollmentNo) {
		return nil, apperrors.NewBadRequestError("enrollmentNo must match the XX-YYYY-NNNN format")
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewBadRequestError("dateOfBirth must be in YYYY-MM-DD format")
	}

	student := &models.Student{
		EnrollmentNo: req.EnrollmentNo,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DateOfBirth:  dob,
	}
	address := &models.StudentAddress{
		Line1:      req.Address.Line1,
		Line2:      req.Address.Line2,
		City:       req.Address.City,
		PostalCode: req.Address.PostalCode,
		Country:    req.Address.Country,
	}

	id, err := s.studentRepo.CreateStudentWithAddress(ctx, student, address, req.ScheduleID)
	if err != nil {
		return nil, err
	}
	return s.studentRepo.GetStudentByID(ctx, id)
}

// GetStudentByID retrieves a student with their address
func (s *StudentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetStudentByID(ctx, id)
}

// GetAllStudents lists students, optionally matching a search term
func (s *StudentServiceImpl) GetAllStudents(ctx context.Context, search string, page, size int) ([]*models.Student, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.studentRepo.GetAllStudents(ctx, search, offset, limit)
}

// UpdateStudent updates the student header and address together. The
// enrollment number is immutable once assigned.
func (s *StudentServiceImpl) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetStudentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dob, err := parseOptionalDate(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewBadRequestError("dateOfBirth must be in YYYY-MM-DD format")
	}

	student.FirstName = req.FirstName
	student.LastName = req.LastName
	student.Email = req.Email
	student.Phone = req.Phone
	if dob != nil {
		student.DateOfBirth = dob
	}

	var address *models.StudentAddress
	if req.Address != nil {
		address = &models.StudentAddress{
			Line1:      req.Address.Line1,
			Line2:      req.Address.Line2,
			City:       req.Address.City,
			PostalCode: req.Address.PostalCode,
			Country:    req.Address.Country,
		}
	}

	if err := s.studentRepo.UpdateStudentWithAddress(ctx, student, address); err != nil {
		return nil, err
	}
	return s.studentRepo.GetStudentByID(ctx, id)
}

// DeleteStudent removes a student record
func (s *StudentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	return s.studentRepo.DeleteStudent(ctx, id)
}

// GetStudentEnrollments lists the student's enrollments with schedule details
func (s *StudentServiceImpl) GetStudentEnrollments(ctx context.Context, id int64) ([]*models.Enrollment, error) {
	if _, err := s.studentRepo.GetStudentByID(ctx, id); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.ListByStudent(ctx, id)
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := helpers.ParseDate(*value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
