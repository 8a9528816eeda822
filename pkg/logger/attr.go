package logger

import (
	"fmt"
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field records a form field identifier under the key "field".
func Field(id fmt.Stringer) slog.Attr {
	return slog.String("field", id.String())
}

// Fields records a list of field identifiers under the key "fields".
func Fields[T fmt.Stringer](ids []T) slog.Attr {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}
	return slog.Any("fields", names)
}

// Valid records a check outcome under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}

// Message records a user-facing validation message under the key "message".
// Empty messages produce an empty Attr.
func Message(msg string) slog.Attr {
	if msg == "" {
		return slog.Attr{}
	}
	return slog.String("message", msg)
}

// SubmissionID records the submission identifier under the key "submission_id".
// If id is nil, it returns an empty Attr.
func SubmissionID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("submission_id", id)
}
