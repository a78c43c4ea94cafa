package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halitb/certman/internal/app/controllers"
)

// SetupRouter configures all application routes. This is the single route
// table; every path has exactly one handler.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	adminController *controllers.AdminController,
	eventController *controllers.EventController,
	certificateController *controllers.CertificateController,
	dashboardController *controllers.DashboardController,
	fileController *controllers.FileController,
) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Certification Management System backend is running!")
	})

	api := router.Group("/api")
	{
		api.POST("/login", authController.Login)

		api.GET("/student/:id", dashboardController.StudentDashboard)
		api.GET("/teacher/:id", dashboardController.TeacherDashboard)

		api.GET("/events", eventController.ListEvents)
		api.POST("/events", eventController.CreateEvent)

		api.POST("/admin/create-user", adminController.CreateUser)

		api.POST("/upload-certificate", certificateController.Upload)
		api.GET("/certificates/:studentId", certificateController.ListByStudent)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	router.GET("/uploads/:filename", fileController.ServeUpload)
}
