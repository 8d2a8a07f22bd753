package services

import (
	"context"

	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/app/models/dto"
	"github.com/emre/trainhub/internal/app/repositories"
	"github.com/emre/trainhub/internal/pkg/apperrors"
	"github.com/emre/trainhub/internal/pkg/auth"
	"github.com/emre/trainhub/internal/pkg/email"
	"github.com/emre/trainhub/internal/pkg/helpers"
	"github.com/emre/trainhub/internal/pkg/logger"
	"github.com/emre/trainhub/internal/pkg/validation"
)

// UserService defines console account management operations
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	InviteUser(ctx context.Context, req *dto.InviteUserRequest) (*dto.InviteUserResponse, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context, page, size int) ([]*models.User, int64, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// UserServiceImpl implements UserService
type UserServiceImpl struct {
	userRepo     *repositories.UserRepository
	emailService email.EmailService
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, emailService email.EmailService) UserService {
	return &UserServiceImpl{
		userRepo:     userRepo,
		emailService: emailService,
	}
}

// CreateUser creates a console account with an explicit password
func (s *UserServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewBadRequestError("email address is not valid")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.NewBadRequestError("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.UserRole(req.Role),
		IsActive:  true,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return s.userRepo.GetUserByID(ctx, id)
}

// InviteUser creates an account with a generated temporary password and mails
// it to the new user. Account creation succeeds even if the mail cannot be
// delivered; the response reports delivery separately.
func (s *UserServiceImpl) InviteUser(ctx context.Context, req *dto.InviteUserRequest) (*dto.InviteUserResponse, error) {
	// The temporary password travels by mail, so the address is checked
	// before the account exists.
	if !validation.IsValidEmail(req.Email) {
		return nil, apperrors.NewBadRequestError("email address is not valid")
	}

	tempPassword, err := auth.GenerateTemporaryPassword(12)
	if err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(tempPassword)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		Password:     hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.UserRole(req.Role),
		IsActive:     true,
		MustChangePW: true,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	emailSent := true
	fullName := req.FirstName + " " + req.LastName
	if err := s.emailService.SendWelcomeEmail(req.Email, fullName, tempPassword, req.Role); err != nil {
		logger.Error().Err(err).Str("email", req.Email).Msg("Failed to send welcome email for invited user")
		emailSent = false
	}

	return &dto.InviteUserResponse{User: created, EmailSent: emailSent}, nil
}

// GetUserByID retrieves a single account
func (s *UserServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetUserByID(ctx, id)
}

// GetAllUsers lists accounts with pagination
func (s *UserServiceImpl) GetAllUsers(ctx context.Context, page, size int) ([]*models.User, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)
	return s.userRepo.GetAllUsers(ctx, offset, limit)
}

// UpdateUser applies the non-nil fields of the request
func (s *UserServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return s.userRepo.GetUserByID(ctx, id)
}

// DeleteUser removes an account
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.DeleteUser(ctx, id)
}
