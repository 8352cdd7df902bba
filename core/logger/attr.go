package logger

import (
	"log/slog"
	"time"
)

// The helpers below return an empty Attr for empty input, which slog drops.
// Callers can pass them unconditionally: log.Warn("msg", logger.Error(err)).

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Elapsed reports the time since start under the key "elapsed".
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// Form names the form being processed. Unnamed forms are omitted.
func Form(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("form", name)
}

// Control names a single control.
func Control(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("control", name)
}

// SubmitPath is the key a control occupies in a submission, e.g. "f_user[email]".
func SubmitPath(path string) slog.Attr {
	if path == "" {
		return slog.Attr{}
	}
	return slog.String("submit_path", path)
}

// Component names the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Count reports a counter under key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Key is a generic attribute; nil values are omitted.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
