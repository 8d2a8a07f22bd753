package services

import (
	"context"

	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/app/models/dto"
	"github.com/emre/trainhub/internal/app/repositories"
	"github.com/emre/trainhub/internal/pkg/apperrors"
)

// EnrollmentService defines enrollment operations
type EnrollmentService interface {
	Enroll(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error)
	GetBySchedule(ctx context.Context, scheduleID int64) ([]*models.Enrollment, error)
	Cancel(ctx context.Context, enrollmentID int64) error
	Complete(ctx context.Context, enrollmentID int64) error
}

// EnrollmentServiceImpl implements EnrollmentService
type EnrollmentServiceImpl struct {
	enrollmentRepo *repositories.EnrollmentRepository
	scheduleRepo   *repositories.ScheduleRepository
	studentRepo    *repositories.StudentRepository
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enrollmentRepo *repositories.EnrollmentRepository,
	scheduleRepo *repositories.ScheduleRepository,
	studentRepo *repositories.StudentRepository,
) EnrollmentService {
	return &EnrollmentServiceImpl{
		enrollmentRepo: enrollmentRepo,
		scheduleRepo:   scheduleRepo,
		studentRepo:    studentRepo,
	}
}

// Enroll adds a student to a scheduled batch after a capacity check. A unique
// constraint on the student and schedule pair rejects duplicates.
func (s *EnrollmentServiceImpl) Enroll(ctx context.Context, req *dto.CreateEnrollmentRequest) (*models.Enrollment, error) {
	if _, err := s.studentRepo.GetStudentByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	schedule, err := s.scheduleRepo.GetScheduleByID(ctx, req.ScheduleID)
	if err != nil {
		return nil, err
	}

	active, err := s.enrollmentRepo.CountActiveBySchedule(ctx, req.ScheduleID)
	if err != nil {
		return nil, err
	}
	if active >= schedule.Capacity {
		return nil, apperrors.ErrScheduleFull
	}

	enrollment := &models.Enrollment{
		StudentID:  req.StudentID,
		ScheduleID: req.ScheduleID,
		Status:     models.EnrollmentActive,
	}

	id, err := s.enrollmentRepo.CreateEnrollment(ctx, enrollment)
	if err != nil {
		return nil, err
	}
	return s.enrollmentRepo.GetEnrollmentByID(ctx, id)
}

// GetBySchedule lists a batch's enrollments with student details
func (s *EnrollmentServiceImpl) GetBySchedule(ctx context.Context, scheduleID int64) ([]*models.Enrollment, error) {
	if _, err := s.scheduleRepo.GetScheduleByID(ctx, scheduleID); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.ListBySchedule(ctx, scheduleID)
}

// Cancel moves an enrollment to cancelled, freeing its capacity slot
func (s *EnrollmentServiceImpl) Cancel(ctx context.Context, enrollmentID int64) error {
	return s.enrollmentRepo.UpdateEnrollmentStatus(ctx, enrollmentID, models.EnrollmentCancelled)
}

// Complete marks an enrollment as completed
func (s *EnrollmentServiceImpl) Complete(ctx context.Context, enrollmentID int64) error {
	return s.enrollmentRepo.UpdateEnrollmentStatus(ctx, enrollmentID, models.EnrollmentCompleted)
}
