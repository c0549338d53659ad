package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/tuteuradom/backend/internal/app/controllers"
	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/middleware"
)

// SetupRouter configures all application routes. Self-service routes live
// under /me because gin does not allow a static segment next to a wildcard
// like /teachers/:id.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	teacherController *controllers.TeacherController,
	parentController *controllers.ParentController,
	courseController *controllers.CourseController,
	requestController *controllers.RequestController,
	appointmentController *controllers.AppointmentController,
	statsController *controllers.StatsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register/parent", authController.RegisterParent)
		auth.POST("/register/teacher", authController.RegisterTeacher)
		auth.POST("/login", authController.Login)
	}

	// Public teacher and course browsing
	v1.GET("/teachers", teacherController.ListTeachers)
	v1.GET("/teachers/:id", teacherController.GetTeacher)
	v1.GET("/teachers/:id/reviews", teacherController.ListReviews)
	v1.GET("/courses", courseController.ListCourses)
	v1.GET("/courses/:id", courseController.GetCourse)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/requests/:id", requestController.GetRequest)
		authenticated.GET("/appointments/:id", appointmentController.GetAppointment)
		authenticated.POST("/appointments/:id/complete", appointmentController.CompleteAppointment)
		authenticated.POST("/appointments/:id/cancel", appointmentController.CancelAppointment)

		// Parent-only routes
		parentOnly := authenticated.Group("")
		parentOnly.Use(authMiddleware.RoleRequired(string(models.RoleParent)))
		{
			parentOnly.POST("/requests", requestController.CreateRequest)
			parentOnly.GET("/me/parent", parentController.GetProfile)
			parentOnly.PUT("/me/parent", parentController.UpdateProfile)
			parentOnly.PUT("/me/parent/children", parentController.UpdateChildren)
			parentOnly.GET("/me/requests", requestController.ListMyRequests)
			parentOnly.GET("/me/appointments", appointmentController.ListMyAppointments)
			parentOnly.POST("/teachers/:id/reviews", teacherController.CreateReview)
		}

		// Teacher-only routes
		teacherOnly := authenticated.Group("")
		teacherOnly.Use(authMiddleware.RoleRequired(string(models.RoleTeacher)))
		{
			teacherOnly.PUT("/me/teacher", teacherController.UpdateProfile)
			teacherOnly.GET("/me/teacher/requests", requestController.ListIncomingRequests)
			teacherOnly.GET("/me/teacher/appointments", appointmentController.ListTeachingAppointments)
			teacherOnly.POST("/courses", courseController.CreateCourse)
			teacherOnly.PUT("/courses/:id", courseController.UpdateCourse)
			teacherOnly.DELETE("/courses/:id", courseController.DeleteCourse)
		}

		// Decisions on pending requests belong to teachers and admins
		deciders := authenticated.Group("")
		deciders.Use(authMiddleware.RoleRequired(string(models.RoleTeacher), string(models.RoleAdmin)))
		{
			deciders.GET("/requests", requestController.ListPendingRequests)
			deciders.POST("/requests/:id/approve", requestController.ApproveRequest)
			deciders.POST("/requests/:id/reject", requestController.RejectRequest)
		}

		// Admin-only routes
		adminOnly := authenticated.Group("")
		adminOnly.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			adminOnly.GET("/admin/stats", statsController.GetStats)
			adminOnly.GET("/admin/requests", requestController.ListAllRequests)
			adminOnly.GET("/admin/appointments", appointmentController.ListAllAppointments)
			adminOnly.PUT("/admin/teachers/:id/status", teacherController.UpdateStatus)
			adminOnly.PUT("/admin/parents/:id/status", parentController.UpdateStatus)
		}
	}
}
