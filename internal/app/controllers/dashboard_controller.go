package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/halitb/certman/internal/app/models/dto"
	"github.com/halitb/certman/internal/app/services"
	"github.com/halitb/certman/internal/middleware"
)

// DashboardController handles the student and teacher dashboard reads
type DashboardController struct {
	dashboardService services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// StudentDashboard returns one student row plus all their certificates.
func (c *DashboardController) StudentDashboard(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "student id must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	dashboard, err := c.dashboardService.StudentDashboard(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentDashboardResponse{
		Success:      true,
		Student:      dashboard.Student,
		Certificates: dashboard.Certificates,
	})
}

// TeacherDashboard returns one teacher row, the students of their class and
// those students' certificates.
func (c *DashboardController) TeacherDashboard(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "teacher id must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	dashboard, err := c.dashboardService.TeacherDashboard(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TeacherDashboardResponse{
		Success:      true,
		Teacher:      dashboard.Teacher,
		Students:     dashboard.Students,
		Certificates: dashboard.Certificates,
	})
}
