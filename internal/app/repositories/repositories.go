package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
	CourseRepository     *CourseRepository
	ScheduleRepository   *ScheduleRepository
	StudentRepository    *StudentRepository
	TrainerRepository    *TrainerRepository
	EnrollmentRepository *EnrollmentRepository
	AssetRepository      *AssetRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
		CourseRepository:     NewCourseRepository(db),
		ScheduleRepository:   NewScheduleRepository(db),
		StudentRepository:    NewStudentRepository(db),
		TrainerRepository:    NewTrainerRepository(db),
		EnrollmentRepository: NewEnrollmentRepository(db),
		AssetRepository:      NewAssetRepository(db),
	}
}
