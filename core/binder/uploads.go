package binder

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/forms/core/form"
)

const (
	// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
	DefaultMaxMemory = 10 << 20 // 10 MB

	// DefaultMaxFileSize is the default size above which an upload is marked too large (32MB).
	DefaultMaxFileSize = 32 << 20 // 32 MB
)

type options struct {
	maxMemory   int64
	maxFileSize int64
}

// Option configures Uploads.
type Option func(*options)

// WithMaxMemory sets the memory budget for multipart parsing; larger parts spill to disk.
func WithMaxMemory(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxMemory = n
		}
	}
}

// WithMaxFileSize sets the size above which an upload is marked form.UploadTooLarge.
func WithMaxFileSize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxFileSize = n
		}
	}
}

// Uploads reads the files of a request into the descriptor table consumed by
// form.Form.Reconcile. Entries are keyed by field name, which is the submit
// path of the file control; a trailing "[]" is dropped so "docs[]" and
// "docs" address the same multi-file control.
//
// URL-encoded requests carry no files and yield an empty table.
// Cleanup of the multipart form is left to the caller so files stay readable.
//
// Example:
//
//	func uploadHandler(w http.ResponseWriter, r *http.Request) {
//		uploads, err := binder.Uploads(r, binder.WithMaxFileSize(5<<20))
//		if err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		res, err := f.Reconcile(submission, uploads)
//		// ...
//	}
func Uploads(r *http.Request, opts ...Option) (form.Uploads, error) {
	o := options{maxMemory: DefaultMaxMemory, maxFileSize: DefaultMaxFileSize}
	for _, opt := range opts {
		opt(&o)
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed content type", ErrFailedToParseForm)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		return form.Uploads{}, nil
	case "multipart/form-data":
	default:
		return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
	}

	// Reject malformed boundaries before the multipart reader sees them
	if !validateBoundary(params["boundary"]) {
		return nil, fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
	}

	if err := r.ParseMultipartForm(o.maxMemory); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
	}

	uploads := form.Uploads{}
	if r.MultipartForm == nil {
		return uploads, nil
	}
	for field, headers := range r.MultipartForm.File {
		key := strings.TrimSuffix(field, "[]")
		for _, fh := range headers {
			uploads[key] = append(uploads[key], describe(fh, o.maxFileSize))
		}
	}
	return uploads, nil
}

// describe builds the descriptor of one uploaded part.
func describe(fh *multipart.FileHeader, maxFileSize int64) *form.Upload {
	fh.Filename = sanitizeFilename(fh.Filename)

	u := &form.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Header:      fh,
	}
	switch {
	case fh.Size == 0:
		u.Error = form.UploadNoFile
	case fh.Size > maxFileSize:
		u.Error = form.UploadTooLarge
	default:
		u.Error = form.UploadOK
	}
	return u
}

// sanitizeFilename removes path components and dangerous characters from uploaded filenames.
func sanitizeFilename(filename string) string {
	// Normalize path separators for consistent processing across platforms
	filename = strings.ReplaceAll(filename, "\\", "/")

	// Extract filename component only, discarding directory paths
	filename = filepath.Base(filename)

	filename = strings.ReplaceAll(filename, "\x00", "")

	// Provide fallback name for empty or special directory references
	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}

// validateBoundary rejects multipart boundaries that break parsing.
func validateBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > 100 {
		return false
	}
	return !strings.ContainsAny(boundary, "\x00\r\n")
}
