package services

import (
	"context"
	"mime/multipart"

	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/app/models/dto"
	"github.com/emre/trainhub/internal/app/repositories"
	"github.com/emre/trainhub/internal/pkg/filestorage"
	"github.com/emre/trainhub/internal/pkg/helpers"
)

// TrainerService defines trainer record operations
type TrainerService interface {
	CreateTrainer(ctx context.Context, req *dto.CreateTrainerRequest) (*models.Trainer, error)
	GetTrainerByID(ctx context.Context, id int64) (*models.Trainer, error)
	GetAllTrainers(ctx context.Context, activeOnly bool, page, size int) ([]*models.Trainer, int64, error)
	UpdateTrainer(ctx context.Context, id int64, req *dto.UpdateTrainerRequest) (*models.Trainer, error)
	DeleteTrainer(ctx context.Context, id int64) error
	UploadDocument(ctx context.Context, trainerID int64, file *multipart.FileHeader) (*models.Trainer, error)
}

// TrainerServiceImpl implements TrainerService
type TrainerServiceImpl struct {
	trainerRepo *repositories.TrainerRepository
	fileStorage filestorage.FileStorage
}

// NewTrainerService creates a new TrainerService
func NewTrainerService(trainerRepo *repositories.TrainerRepository, fileStorage filestorage.FileStorage) TrainerService {
	return &TrainerServiceImpl{
		trainerRepo: trainerRepo,
		fileStorage: fileStorage,
	}
}

// CreateTrainer creates a trainer record
func (s *TrainerServiceImpl) CreateTrainer(ctx context.Context, req *dto.CreateTrainerRequest) (*models.Trainer, error) {
	trainer := &models.Trainer{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Specialization: req.Specialization,
		Bio:            req.Bio,
		IsActive:       true,
	}

	id, err := s.trainerRepo.CreateTrainer(ctx, trainer)
	if err != nil {
		return nil, err
	}
	return s.trainerRepo.GetTrainerByID(ctx, id)
}

// GetTrainerByID retrieves a trainer
func (s *TrainerServiceImpl) GetTrainerByID(ctx context.Context, id int64) (*models.Trainer, error) {
	return s.trainerRepo.GetTrainerByID(ctx, id)
}

// GetAllTrainers lists trainers with pagination
func (s *TrainerServiceImpl) GetAllTrainers(ctx context.Context, activeOnly bool, page, size int) ([]*models.Trainer, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.trainerRepo.GetAllTrainers(ctx, activeOnly, offset, limit)
}

// UpdateTrainer updates a trainer record
func (s *TrainerServiceImpl) UpdateTrainer(ctx context.Context, id int64, req *dto.UpdateTrainerRequest) (*models.Trainer, error) {
	trainer, err := s.trainerRepo.GetTrainerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	trainer.FirstName = req.FirstName
	trainer.LastName = req.LastName
	trainer.Email = req.Email
	trainer.Phone = req.Phone
	trainer.Specialization = req.Specialization
	trainer.Bio = req.Bio
	if req.IsActive != nil {
		trainer.IsActive = *req.IsActive
	}

	if err := s.trainerRepo.UpdateTrainer(ctx, trainer); err != nil {
		return nil, err
	}
	return s.trainerRepo.GetTrainerByID(ctx, id)
}

// DeleteTrainer removes a trainer record
func (s *TrainerServiceImpl) DeleteTrainer(ctx context.Context, id int64) error {
	return s.trainerRepo.DeleteTrainer(ctx, id)
}

// UploadDocument stores a certification or contract document and links it to
// the trainer, replacing any earlier document.
func (s *TrainerServiceImpl) UploadDocument(ctx context.Context, trainerID int64, file *multipart.FileHeader) (*models.Trainer, error) {
	trainer, err := s.trainerRepo.GetTrainerByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	url, err := s.fileStorage.SaveFileWithPath(file, "trainer-documents")
	if err != nil {
		return nil, err
	}

	if err := s.trainerRepo.SetDocumentURL(ctx, trainerID, url); err != nil {
		return nil, err
	}

	if trainer.DocumentURL != nil && *trainer.DocumentURL != "" {
		_ = s.fileStorage.DeleteFile(*trainer.DocumentURL)
	}

	return s.trainerRepo.GetTrainerByID(ctx, trainerID)
}
