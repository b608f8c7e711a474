package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hostelhub/hostelhub/internal/app/controllers"
	"github.com/hostelhub/hostelhub/internal/app/models"
	"github.com/hostelhub/hostelhub/internal/middleware"
)

// SetupRouter wires every route with its allow-list. Each operation
// enumerates its roles explicitly; admin never implies warden or
// staff anywhere.
func SetupRouter(
	router *gin.Engine,
	healthController *controllers.HealthController,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	hostelController *controllers.HostelController,
	feeController *controllers.FeeController,
	attendanceController *controllers.AttendanceController,
	complaintController *controllers.ComplaintController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	staffOnly := authMiddleware.RoleRequired(models.RoleAdmin, models.RoleWarden, models.RoleStaff)
	managersOnly := authMiddleware.RoleRequired(models.RoleAdmin, models.RoleWarden)

	// --- Public routes ---
	router.GET("/", healthController.Root)
	router.GET("/test", healthController.Status)

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		students := authenticated.Group("/students")
		{
			students.POST("", staffOnly, studentController.Create)
			students.GET("/:id", studentController.Get) // self-or-role check in service
			students.PUT("/:id", staffOnly, studentController.Update)
			students.DELETE("/:id", managersOnly, studentController.Delete)
		}

		authenticated.POST("/hostels", managersOnly, hostelController.CreateHostel)

		rooms := authenticated.Group("/rooms")
		{
			rooms.POST("", managersOnly, hostelController.CreateRoom)
			rooms.GET("/available", hostelController.AvailableRooms)
			rooms.POST("/allocate", staffOnly, hostelController.AllocateRoom)
		}

		fees := authenticated.Group("/fees")
		{
			fees.POST("", staffOnly, feeController.Create)
			fees.POST("/:id/pay", staffOnly, feeController.Pay)
		}

		attendance := authenticated.Group("/attendance")
		{
			attendance.POST("", staffOnly, attendanceController.Mark)
			attendance.POST("/late", staffOnly, attendanceController.LateEntry)
			attendance.POST("/leave", attendanceController.RequestLeave) // self-or-role check in service
			attendance.POST("/leave/:id/status", staffOnly, attendanceController.SetLeaveStatus)
		}

		complaints := authenticated.Group("/complaints")
		{
			complaints.POST("", complaintController.Create) // self-or-role check in service
			complaints.POST("/:id/updates", staffOnly, complaintController.AddUpdate)
		}

		authenticated.POST("/notifications", staffOnly, notificationController.Create)
	}
}
