package validation

import (
	"fmt"
	"strings"
	"time"

	"nvp-welfare-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// Error carries per-field failures and unwraps to domain.ErrInvalidInput.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+":"+f.Rule)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *Error) Unwrap() error { return domain.ErrInvalidInput }

// Validate runs struct rules and returns *Error on failure.
func Validate(s interface{}) error {
	if errs := Struct(s); errs != nil {
		return &Error{Fields: errs}
	}
	return nil
}

// ParseBody decodes the request body into out and validates it.
func ParseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return &Error{Fields: []FieldError{{Field: "body", Rule: "invalid"}}}
	}
	return Validate(out)
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

// ParseDate accepts RFC3339 or a plain calendar date; field names the input for the error.
func ParseDate(field, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &Error{Fields: []FieldError{{Field: field, Rule: "date", Param: fmt.Sprintf("%q", s)}}}
}

// ParseOptionalDate returns nil for an empty or missing value.
func ParseOptionalDate(field string, s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseDate(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
