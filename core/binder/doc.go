// Package binder reads uploaded files from HTTP requests into the descriptor
// table used by form reconciliation.
//
// Only multipart/form-data requests carry files. Every part is described by
// a form.Upload with a sanitized file name and an outcome code:
//
//   - form.UploadOK for a received file
//   - form.UploadNoFile for an empty part
//   - form.UploadTooLarge for a file above the configured limit
//
// Usage:
//
//	import "github.com/dmitrymomot/forms/core/binder"
//
//	uploads, err := binder.Uploads(r)
//	if err != nil {
//		switch {
//		case errors.Is(err, binder.ErrUnsupportedMediaType):
//			http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
//		default:
//			http.Error(w, err.Error(), http.StatusBadRequest)
//		}
//		return
//	}
//
// File names have directory components and null bytes removed; an empty
// name becomes "unnamed".
package binder
