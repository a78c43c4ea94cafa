package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halitb/certman/internal/app/models/dto"
	"github.com/halitb/certman/internal/app/services"
	"github.com/halitb/certman/internal/middleware"
)

// AdminController handles administrative account management
type AdminController struct {
	userService services.UserService
}

// NewAdminController creates a new AdminController
func NewAdminController(userService services.UserService) *AdminController {
	return &AdminController{
		userService: userService,
	}
}

// CreateUser creates a role-scoped account. Students and teachers need
// class_id and dept, organizers need club_name.
func (c *AdminController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "role, name and password are required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	created, err := c.userService.CreateUser(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateUserResponse{
		Success: true,
		Data:    created,
	})
}
