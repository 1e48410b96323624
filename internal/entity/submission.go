package entity

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Bounds enforced on every stored submission.
const (
	NameMinLength    = 3
	NameMaxLength    = 100
	MessageMinLength = 5
	MessageMaxLength = 5000
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = newValidator()

// Submission is one inbound contact-form inquiry. It is written once and never updated.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,min=3,max=100"`
	Email     string    `json:"email" validate:"required,emailshape"`
	Message   string    `json:"message" validate:"required,nonblank,min=5,max=5000"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewSubmission normalizes the raw form fields: name and email are trimmed and
// the email is lowercased. The message body is kept as sent.
func NewSubmission(name, email, message string, now time.Time) *Submission {
	now = now.UTC()
	return &Submission{
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Message:   message,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate checks the stored-record schema. Lengths are counted in runes.
func (s *Submission) Validate() error {
	if s == nil {
		return errors.New("submission is nil")
	}
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate submission: %w", err)
	}

	verr := &ValidationError{}
	for _, fe := range fieldErrs {
		verr.Fields = append(verr.Fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return verr
}

// FieldError names the field and the rule it broke.
type FieldError struct {
	Field string
	Rule  string
}

// ValidationError is returned when a submission violates the schema.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" ("+f.Rule+")")
	}
	return "submission validation failed: " + strings.Join(parts, ", ")
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}
