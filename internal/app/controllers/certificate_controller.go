package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/halitb/certman/internal/app/models/dto"
	"github.com/halitb/certman/internal/app/services"
	"github.com/halitb/certman/internal/middleware"
)

// CertificateController handles certificate uploads and listings
type CertificateController struct {
	certService services.CertificateService
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(certService services.CertificateService) *CertificateController {
	return &CertificateController{
		certService: certService,
	}
}

// Upload accepts one or more multipart file parts plus event_id and
// organizer_id form fields. Filenames are validated before any write; a
// malformed one aborts the batch.
func (c *CertificateController) Upload(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "multipart form data required")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "no files supplied")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	eventID, err := requiredFormID(ctx, "event_id")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}
	organizerID, err := requiredFormID(ctx, "organizer_id")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	uploaded, err := c.certService.Upload(ctx, files, eventID, organizerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadResponse{
		Success: true,
		Files:   uploaded,
	})
}

// ListByStudent returns all certificates belonging to one student.
func (c *CertificateController) ListByStudent(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("studentId"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "student id must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	certs, err := c.certService.ListByStudent(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CertificateListResponse{
		Success:      true,
		Certificates: certs,
	})
}

// requiredFormID reads a numeric form value that must be present.
func requiredFormID(ctx *gin.Context, field string) (int64, error) {
	raw := ctx.PostForm(field)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", field)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number", field)
	}
	return id, nil
}
