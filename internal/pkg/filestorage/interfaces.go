package filestorage

import (
	"mime/multipart"
	"os"
)

// FileStorage defines the interface for upload storage operations.
type FileStorage interface {
	// SaveFile persists an uploaded file under its (sanitized) original
	// filename and returns the URL it can be retrieved from. Saving the same
	// filename twice overwrites the previous content.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// Open opens a previously stored file by its bare filename.
	Open(filename string) (*os.File, error)

	// URLFor returns the retrievable URL for a stored filename.
	URLFor(filename string) string
}
