// Package validation checks untrusted request input against the user
// schemas before anything reaches the store.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one violated constraint on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CreateUserInput is the body schema for POST /api/users.
type CreateUserInput struct {
	Name      string `json:"name" validate:"required,max=255"`
	Surname   string `json:"surname" validate:"required,max=255"`
	Gender    string `json:"gender" validate:"required,oneof=male female other"`
	IsTrusted *bool  `json:"isTrusted"`
}

// UpdateUserInput is the body schema for PUT /api/users/{id}. Every field
// is optional; an empty body is a valid no-op patch.
type UpdateUserInput struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=255"`
	Surname   *string `json:"surname" validate:"omitempty,min=1,max=255"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=male female other"`
	IsTrusted *bool   `json:"isTrusted"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names as they appear on the wire
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate runs the schema checks on a create or update input, collecting
// every violated constraint. It never touches the store.
func Validate(input any) []FieldError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return details
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be male, female, or other", fe.Field())
	case "min":
		return fmt.Sprintf("%s must not be empty", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	}
	return fe.Error()
}

var idPattern = regexp.MustCompile(`^\d+$`)

// ParseID validates the path parameter: one or more digits, nothing else.
// A non-digit id is a validation failure, never a lookup.
func ParseID(raw string) (int, []FieldError) {
	if !idPattern.MatchString(raw) {
		return 0, []FieldError{{Field: "id", Message: "ID must be a number"}}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, []FieldError{{Field: "id", Message: "ID must be a number"}}
	}
	return id, nil
}
