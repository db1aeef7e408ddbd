package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// studentEmailPattern is deliberately narrower than RFC 5322: local@domain.tld
// with a 2-6 letter TLD.
var studentEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// global validator instance
var validate *validator.Validate

func init() {
	validate = newValidator()
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("studentemail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	return v
}

// RegisterInput carries the fields a student fills in when registering.
type RegisterInput struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,studentemail"`
	StudentID string
	Major     string
	Password  string `validate:"required,min=6"`
}

// IsValidEmail applies the registration email rule.
func IsValidEmail(email string) bool {
	return email != "" && studentEmailPattern.MatchString(email)
}

// IsValidPassword applies the registration password rule.
func IsValidPassword(password string) bool {
	return len(password) >= MinPasswordLength
}

// ValidateRegistration runs the pre-submission checks for a registration form.
// Directory.Register does not call this; the caller is expected to.
func ValidateRegistration(in RegisterInput) error {
	return ValidateStruct(in)
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		validate = newValidator()
	}
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, describeFieldError(e))
	}
	return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
}

func describeFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "studentemail":
		return "invalid email format"
	case "min":
		if e.Field() == "Password" {
			return fmt.Sprintf("password must be at least %s characters", e.Param())
		}
	}
	return fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value())
}
