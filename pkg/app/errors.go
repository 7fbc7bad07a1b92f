package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"tableflip.dev/folio/pkg/media"
)

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrNoUploader    = errors.New("app: no media uploader configured")
	ErrNoExporter    = errors.New("app: no exporter configured")
)

// ValidationError rejects a command before it touches the workspace.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("app: invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an id that is not in the current workspace.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("app: %s %q not found", e.Kind, e.ID)
}

// PersistenceError wraps a failed save or load. The in-memory change it
// belonged to stays applied.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("app: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// MediaUploadError wraps a failed upload. The pending placeholder has been
// removed by the time it is reported.
type MediaUploadError struct {
	Phase media.Phase
	Err   error
}

func (e *MediaUploadError) Error() string {
	return fmt.Sprintf("app: media %s: %v", e.Phase, e.Err)
}

func (e *MediaUploadError) Unwrap() error { return e.Err }

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func notFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return v
}

// check runs struct validation and converts the first failure.
func check(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) || len(fields) == 0 {
		return &ValidationError{Field: "input", Reason: err.Error()}
	}
	fe := fields[0]
	reason := fe.Tag()
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "max":
		reason = "must be at most " + fe.Param() + " characters"
	case "oneof":
		reason = "must be one of " + fe.Param()
	}
	return &ValidationError{Field: fe.Field(), Reason: reason}
}
