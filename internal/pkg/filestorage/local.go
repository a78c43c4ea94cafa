package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/halitb/certman/internal/pkg/apperrors"
	"github.com/halitb/certman/internal/pkg/certfile"
	"github.com/halitb/certman/internal/pkg/logger"
)

// LocalStorage stores uploaded files on the local filesystem. Files are keyed
// by their original filename, so concurrent uploads of the same name race and
// the last write wins.
type LocalStorage struct {
	basePath string // root directory where files are stored
	baseURL  string // base URL prepended to returned file paths
}

// NewLocalStorage creates a LocalStorage rooted at basePath, creating the
// directory if it does not exist. baseURL should match the route the files
// are served from (e.g. "/uploads").
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

// SaveFile persists the uploaded file under its original filename.
// The filename must already be a bare name; anything resembling a path is
// rejected before touching the disk.
func (ls *LocalStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader == nil {
		return "", apperrors.NewValidationError("no file provided")
	}
	name := fileHeader.Filename
	if !certfile.IsSafeName(name) {
		return "", apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("unsafe filename %q", name))
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", name).Msg("Failed to open uploaded file")
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dstPath := filepath.Join(ls.basePath, name)
	dst, err := os.Create(dstPath)
	if err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to create destination file")
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to copy uploaded file content")
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("failed to save file content: %w", err)
	}

	url := ls.URLFor(name)
	logger.Info().Str("filename", name).Str("url", url).Msg("File saved")
	return url, nil
}

// Open opens a stored file by its bare filename. Names carrying path
// separators or traversal sequences are rejected, missing files map to
// ErrFileNotFound.
func (ls *LocalStorage) Open(filename string) (*os.File, error) {
	if !certfile.IsSafeName(filename) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("unsafe filename %q", filename))
	}

	f, err := os.Open(filepath.Join(ls.basePath, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.ErrFileNotFound
		}
		logger.Error().Err(err).Str("filename", filename).Msg("Failed to open stored file")
		return nil, fmt.Errorf("failed to open stored file: %w", err)
	}
	return f, nil
}

// URLFor returns the retrievable URL for a stored filename.
func (ls *LocalStorage) URLFor(filename string) string {
	return ls.baseURL + "/" + filename
}
