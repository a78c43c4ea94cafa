// Package certfile decodes the certificate filename convention used by
// organizer uploads: STUDENTID_CLASSID_<rest>.pdf, where the first two
// underscore-delimited segments carry the student and class identifiers.
package certfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/halitb/certman/internal/pkg/apperrors"
)

// Keys holds the foreign keys extracted from an uploaded certificate filename.
type Keys struct {
	StudentID int64
	ClassID   int64
}

// Parse extracts the student and class identifiers from a certificate
// filename. The extension must be .pdf (case-insensitive) and the name must
// contain at least two underscore-delimited segments with numeric values up
// front, e.g. "42_7_certificate.pdf".
func Parse(filename string) (Keys, error) {
	if filename == "" {
		return Keys{}, apperrors.NewCustomError(apperrors.ErrInvalidCertFilename, "empty filename")
	}
	if !IsSafeName(filename) {
		return Keys{}, apperrors.NewCustomError(apperrors.ErrInvalidCertFilename,
			fmt.Sprintf("filename %q contains path separators", filename))
	}

	base := filename
	dot := strings.LastIndex(base, ".")
	if dot < 0 || !strings.EqualFold(base[dot:], ".pdf") {
		return Keys{}, apperrors.NewCustomError(apperrors.ErrInvalidCertFilename,
			fmt.Sprintf("filename %q must have a .pdf extension", filename))
	}
	base = base[:dot]

	segments := strings.Split(base, "_")
	if len(segments) < 2 {
		return Keys{}, apperrors.NewCustomError(apperrors.ErrInvalidCertFilename,
			fmt.Sprintf("filename %q must start with STUDENTID_CLASSID", filename))
	}

	studentID, err := strconv.ParseInt(segments[0], 10, 64)
	if err != nil {
		return Keys{}, apperrors.NewCustomError(apperrors.ErrInvalidCertFilename,
			fmt.Sprintf("filename %q has a non-numeric student id %q", filename, segments[0]))
	}
	classID, err := strconv.ParseInt(segments[1], 10, 64)
	if err != nil {
		return Keys{}, apperrors.NewCustomError(apperrors.ErrInvalidCertFilename,
			fmt.Sprintf("filename %q has a non-numeric class id %q", filename, segments[1]))
	}

	return Keys{StudentID: studentID, ClassID: classID}, nil
}

// IsSafeName reports whether the filename is a bare name without path
// separators or traversal sequences. Names failing this check must never be
// used as storage keys or looked up on disk.
func IsSafeName(filename string) bool {
	if filename == "" || filename == "." || filename == ".." {
		return false
	}
	if strings.ContainsAny(filename, "/\\") {
		return false
	}
	if strings.Contains(filename, "..") {
		return false
	}
	return true
}
