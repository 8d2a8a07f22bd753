package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/emre/trainhub/internal/app/controllers"
	"github.com/emre/trainhub/internal/app/middleware"
	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	jwtService *auth.JWTService,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", ctrls.AuthController.Login)
		authGroup.POST("/refresh", ctrls.AuthController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(middleware.JWTAuth(jwtService))
	{
		// Session routes for the signed-in account
		authenticated.POST("/auth/logout", ctrls.AuthController.Logout)
		authenticated.GET("/auth/profile", ctrls.AuthController.GetProfile)
		authenticated.POST("/auth/change-password", ctrls.AuthController.ChangePassword)

		// Console account management is restricted to administrators
		users := authenticated.Group("/users")
		users.Use(middleware.RoleRequired(models.RoleAdmin))
		{
			users.POST("", ctrls.UserController.CreateUser)
			users.POST("/invite", ctrls.UserController.InviteUser)
			users.GET("", ctrls.UserController.GetAllUsers)
			users.GET("/:id", ctrls.UserController.GetUserByID)
			users.PUT("/:id", ctrls.UserController.UpdateUser)
			users.DELETE("/:id", ctrls.UserController.DeleteUser)
		}

		// Course catalog routes
		courses := authenticated.Group("/courses")
		{
			courses.GET("", ctrls.CourseController.GetAllCourses)
			courses.GET("/:id", ctrls.CourseController.GetCourseByID)
			courses.POST("", ctrls.CourseController.CreateCourse)
			courses.PUT("/:id", ctrls.CourseController.UpdateCourse)
			courses.POST("/:id/curriculum", ctrls.CourseController.UploadCurriculum)

			// Offerings belong to a course and share its lifecycle
			courses.POST("/:id/offerings", ctrls.CourseController.CreateOffering)
			courses.PUT("/:id/offerings/:offeringId", ctrls.CourseController.UpdateOffering)

			// Destructive catalog operations require the admin role
			coursesAdmin := courses.Group("")
			coursesAdmin.Use(middleware.RoleRequired(models.RoleAdmin))
			{
				coursesAdmin.DELETE("/:id", ctrls.CourseController.DeleteCourse)
				coursesAdmin.DELETE("/:id/offerings/:offeringId", ctrls.CourseController.DeleteOffering)
			}
		}

		// Schedule routes
		schedules := authenticated.Group("/schedules")
		{
			schedules.GET("", ctrls.ScheduleController.GetAllSchedules)
			schedules.GET("/preview-end-date", ctrls.ScheduleController.PreviewEndDate)
			schedules.GET("/:id", ctrls.ScheduleController.GetScheduleByID)
			schedules.GET("/:id/enrollments", ctrls.EnrollmentController.GetBySchedule)
			schedules.POST("", ctrls.ScheduleController.CreateSchedule)
			schedules.PUT("/:id", ctrls.ScheduleController.UpdateSchedule)
			schedules.POST("/refresh-statuses", ctrls.ScheduleController.RefreshStatuses)

			schedulesAdmin := schedules.Group("")
			schedulesAdmin.Use(middleware.RoleRequired(models.RoleAdmin))
			{
				schedulesAdmin.DELETE("/:id", ctrls.ScheduleController.DeleteSchedule)
			}
		}

		// Student record routes
		students := authenticated.Group("/students")
		{
			students.GET("", ctrls.StudentController.GetAllStudents)
			students.GET("/:id", ctrls.StudentController.GetStudentByID)
			students.GET("/:id/enrollments", ctrls.StudentController.GetStudentEnrollments)
			students.POST("", ctrls.StudentController.CreateStudent)
			students.PUT("/:id", ctrls.StudentController.UpdateStudent)

			studentsAdmin := students.Group("")
			studentsAdmin.Use(middleware.RoleRequired(models.RoleAdmin))
			{
				studentsAdmin.DELETE("/:id", ctrls.StudentController.DeleteStudent)
			}
		}

		// Trainer record routes
		trainers := authenticated.Group("/trainers")
		{
			trainers.GET("", ctrls.TrainerController.GetAllTrainers)
			trainers.GET("/:id", ctrls.TrainerController.GetTrainerByID)
			trainers.POST("", ctrls.TrainerController.CreateTrainer)
			trainers.PUT("/:id", ctrls.TrainerController.UpdateTrainer)
			trainers.POST("/:id/documents", ctrls.TrainerController.UploadDocument)

			trainersAdmin := trainers.Group("")
			trainersAdmin.Use(middleware.RoleRequired(models.RoleAdmin))
			{
				trainersAdmin.DELETE("/:id", ctrls.TrainerController.DeleteTrainer)
			}
		}

		// Enrollment routes
		enrollments := authenticated.Group("/enrollments")
		{
			enrollments.POST("", ctrls.EnrollmentController.Enroll)
			enrollments.POST("/:id/cancel", ctrls.EnrollmentController.Cancel)
			enrollments.POST("/:id/complete", ctrls.EnrollmentController.Complete)
		}

		// Rental asset routes
		assets := authenticated.Group("/assets")
		{
			assets.GET("", ctrls.AssetController.GetAllAssets)
			assets.GET("/:id", ctrls.AssetController.GetAssetByID)
			assets.GET("/:id/assignments", ctrls.AssetController.GetAssignmentHistory)
			assets.POST("", ctrls.AssetController.CreateAsset)
			assets.PUT("/:id", ctrls.AssetController.UpdateAsset)

			// Rental lifecycle transitions
			assets.POST("/:id/assign", ctrls.AssetController.Assign)
			assets.POST("/:id/ready-to-return", ctrls.AssetController.MarkReadyToReturn)
			assets.POST("/:id/return", ctrls.AssetController.Return)
			assets.POST("/:id/reactivate", ctrls.AssetController.Reactivate)
			assets.POST("/:id/maintenance", ctrls.AssetController.MarkMaintenance)
			assets.POST("/:id/lost", ctrls.AssetController.MarkLost)

			assetsAdmin := assets.Group("")
			assetsAdmin.Use(middleware.RoleRequired(models.RoleAdmin))
			{
				assetsAdmin.POST("/bulk-status", ctrls.AssetController.BulkSetStatus)
				assetsAdmin.DELETE("/:id", ctrls.AssetController.DeleteAsset)
			}
		}
	}
}
