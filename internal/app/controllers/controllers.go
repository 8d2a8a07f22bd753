package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emre/trainhub/internal/app/models/dto"
	"github.com/emre/trainhub/internal/app/services"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController       *AuthController
	UserController       *UserController
	CourseController     *CourseController
	ScheduleController   *ScheduleController
	StudentController    *StudentController
	TrainerController    *TrainerController
	EnrollmentController *EnrollmentController
	AssetController      *AssetController
}

// NewControllers initializes all controllers
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(svcs.AuthService),
		UserController:       NewUserController(svcs.UserService),
		CourseController:     NewCourseController(svcs.CourseService),
		ScheduleController:   NewScheduleController(svcs.ScheduleService),
		StudentController:    NewStudentController(svcs.StudentService),
		TrainerController:    NewTrainerController(svcs.TrainerService),
		EnrollmentController: NewEnrollmentController(svcs.EnrollmentService),
		AssetController:      NewAssetController(svcs.AssetService),
	}
}

// parseIDParam parses a positive int64 path parameter, writing a 400 response
// and returning false when it is malformed
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
