package services

import (
	"github.com/emre/trainhub/internal/app/repositories"
	"github.com/emre/trainhub/internal/pkg/auth"
	"github.com/emre/trainhub/internal/pkg/email"
	"github.com/emre/trainhub/internal/pkg/filestorage"
	"github.com/emre/trainhub/internal/pkg/workdays"
)

// Services holds all the service instances
type Services struct {
	AuthService       AuthService
	UserService       UserService
	CourseService     CourseService
	ScheduleService   ScheduleService
	StudentService    StudentService
	TrainerService    TrainerService
	EnrollmentService EnrollmentService
	AssetService      AssetService
}

// NewServices initializes all services
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	emailService email.EmailService,
	fileStorage filestorage.FileStorage,
	calculator *workdays.Calculator,
) *Services {
	return &Services{
		AuthService:       NewAuthService(repos.UserRepository, repos.TokenRepository, jwtService),
		UserService:       NewUserService(repos.UserRepository, emailService),
		CourseService:     NewCourseService(repos.CourseRepository, fileStorage),
		ScheduleService:   NewScheduleService(repos.ScheduleRepository, repos.CourseRepository, calculator),
		StudentService:    NewStudentService(repos.StudentRepository, repos.EnrollmentRepository),
		TrainerService:    NewTrainerService(repos.TrainerRepository, fileStorage),
		EnrollmentService: NewEnrollmentService(repos.EnrollmentRepository, repos.ScheduleRepository, repos.StudentRepository),
		AssetService:      NewAssetService(repos.AssetRepository),
	}
}
