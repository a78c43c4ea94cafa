package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halitb/certman/internal/middleware"
	"github.com/halitb/certman/internal/pkg/filestorage"
)

// FileController streams stored certificate files
type FileController struct {
	storage filestorage.FileStorage
}

// NewFileController creates a new FileController
func NewFileController(storage filestorage.FileStorage) *FileController {
	return &FileController{
		storage: storage,
	}
}

// ServeUpload streams a stored file by filename. Path traversal attempts are
// rejected before the filesystem is touched; missing files yield a JSON 404.
func (c *FileController) ServeUpload(ctx *gin.Context) {
	filename := ctx.Param("filename")

	f, err := c.storage.Open(filename)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	ctx.DataFromReader(http.StatusOK, info.Size(), "application/octet-stream", f, nil)
}
