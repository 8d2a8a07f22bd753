package services

import (
	"context"
	"mime/multipart"

	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/app/models/dto"
	"github.com/emre/trainhub/internal/app/repositories"
	"github.com/emre/trainhub/internal/pkg/apperrors"
	"github.com/emre/trainhub/internal/pkg/filestorage"
	"github.com/emre/trainhub/internal/pkg/helpers"
)

// CourseService defines course catalog operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context, filter repositories.CourseFilter, page, size int) ([]*models.Course, int64, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	UploadCurriculum(ctx context.Context, courseID int64, file *multipart.FileHeader) (*models.Course, error)

	CreateOffering(ctx context.Context, courseID int64, req *dto.CreateOfferingRequest) (*models.CourseOffering, error)
	UpdateOffering(ctx context.Context, courseID, offeringID int64, req *dto.UpdateOfferingRequest) (*models.CourseOffering, error)
	DeleteOffering(ctx context.Context, courseID, offeringID int64) error
}

// CourseServiceImpl implements CourseService
type CourseServiceImpl struct {
	courseRepo  *repositories.CourseRepository
	fileStorage filestorage.FileStorage
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo *repositories.CourseRepository, fileStorage filestorage.FileStorage) CourseService {
	return &CourseServiceImpl{
		courseRepo:  courseRepo,
		fileStorage: fileStorage,
	}
}

// CreateCourse creates a catalog course
func (s *CourseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IsActive:    true,
	}

	id, err := s.courseRepo.CreateCourse(ctx, course)
	if err != nil {
		return nil, err
	}
	return s.courseRepo.GetCourseByID(ctx, id)
}

// GetCourseByID retrieves a course with its offerings
func (s *CourseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetCourseByID(ctx, id)
}

// GetAllCourses lists courses matching the filter
func (s *CourseServiceImpl) GetAllCourses(ctx context.Context, filter repositories.CourseFilter, page, size int) ([]*models.Course, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.courseRepo.GetAllCourses(ctx, filter, offset, limit)
}

// UpdateCourse updates a catalog course
func (s *CourseServiceImpl) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Code = req.Code
	course.Name = req.Name
	course.Description = req.Description
	course.Category = req.Category
	if req.IsActive != nil {
		course.IsActive = *req.IsActive
	}

	if err := s.courseRepo.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}
	return s.courseRepo.GetCourseByID(ctx, id)
}

// DeleteCourse deletes a course without scheduled batches
func (s *CourseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	return s.courseRepo.DeleteCourse(ctx, id)
}

// UploadCurriculum stores the curriculum document and links it to the course.
// A previously uploaded document is removed from storage.
func (s *CourseServiceImpl) UploadCurriculum(ctx context.Context, courseID int64, file *multipart.FileHeader) (*models.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	url, err := s.fileStorage.SaveFileWithPath(file, "curricula")
	if err != nil {
		return nil, err
	}

	if err := s.courseRepo.SetCurriculumURL(ctx, courseID, url); err != nil {
		return nil, err
	}

	if course.CurriculumURL != nil && *course.CurriculumURL != "" {
		_ = s.fileStorage.DeleteFile(*course.CurriculumURL)
	}

	return s.courseRepo.GetCourseByID(ctx, courseID)
}

// CreateOffering adds a delivery-mode variant to a course
func (s *CourseServiceImpl) CreateOffering(ctx context.Context, courseID int64, req *dto.CreateOfferingRequest) (*models.CourseOffering, error) {
	// Ensure the course exists so a bad ID yields not-found rather than a
	// foreign key error
	if _, err := s.courseRepo.GetCourseByID(ctx, courseID); err != nil {
		return nil, err
	}

	offering := &models.CourseOffering{
		CourseID:     courseID,
		DeliveryMode: models.DeliveryMode(req.DeliveryMode),
		Pace:         models.CoursePace(req.Pace),
		DurationDays: req.DurationDays,
		Fee:          req.Fee,
	}

	id, err := s.courseRepo.CreateOffering(ctx, offering)
	if err != nil {
		return nil, err
	}
	return s.courseRepo.GetOfferingByID(ctx, id)
}

// UpdateOffering updates an offering's duration and fee. Existing schedules
// keep their computed end dates; only new calculations see the new duration.
func (s *CourseServiceImpl) UpdateOffering(ctx context.Context, courseID, offeringID int64, req *dto.UpdateOfferingRequest) (*models.CourseOffering, error) {
	offering, err := s.getOwnedOffering(ctx, courseID, offeringID)
	if err != nil {
		return nil, err
	}

	offering.DurationDays = req.DurationDays
	offering.Fee = req.Fee

	if err := s.courseRepo.UpdateOffering(ctx, offering); err != nil {
		return nil, err
	}
	return s.courseRepo.GetOfferingByID(ctx, offeringID)
}

// DeleteOffering deletes an offering
func (s *CourseServiceImpl) DeleteOffering(ctx context.Context, courseID, offeringID int64) error {
	if _, err := s.getOwnedOffering(ctx, courseID, offeringID); err != nil {
		return err
	}
	return s.courseRepo.DeleteOffering(ctx, offeringID)
}

func (s *CourseServiceImpl) getOwnedOffering(ctx context.Context, courseID, offeringID int64) (*models.CourseOffering, error) {
	offering, err := s.courseRepo.GetOfferingByID(ctx, offeringID)
	if err != nil {
		return nil, err
	}
	if offering.CourseID != courseID {
		return nil, apperrors.ErrOfferingNotFound
	}
	return offering, nil
}
