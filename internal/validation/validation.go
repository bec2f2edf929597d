// Package validation provides field-level request validation.
// Constraint checks run before any store mutation; a failing request is
// rejected as a whole with per-field messages.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// emailPattern is deliberately loose: non-space chars, "@", non-space chars,
// ".", non-space chars.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// passwordPattern requires at least one letter and one digit, length >= 6,
// and restricts the character set to letters, digits and a small symbol set.
// Any other character makes the password invalid.
var passwordPattern = regexp.MustCompile(`^[A-Za-z\d@$!%*#?&]{6,}$`)

var (
	hasLetter = regexp.MustCompile(`[A-Za-z]`)
	hasDigit  = regexp.MustCompile(`\d`)
)

// IsValidEmail reports whether the input is shaped like an email address.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPassword reports whether the password meets the policy:
// at least 6 characters, one letter, one digit, allowed charset only.
func IsValidPassword(password string) bool {
	return passwordPattern.MatchString(password) &&
		hasLetter.MatchString(password) &&
		hasDigit.MatchString(password)
}

// IsValidPublishedYear reports whether the year falls in [1000, currentYear],
// with currentYear evaluated at call time.
func IsValidPublishedYear(year int) bool {
	return year >= 1000 && year <= time.Now().Year()
}

// Validator validates request structs using struct tags plus the custom
// rules above.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with the domain rules registered.
func New() *Validator {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		for i := 0; i < len(name); i++ {
			if name[i] == ',' {
				return name[:i]
			}
		}
		return name
	})

	// Custom rules the tag vocabulary does not cover
	_ = v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return IsValidPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("published_year", func(fl validator.FieldLevel) bool {
		return IsValidPublishedYear(int(fl.Field().Int()))
	})

	return &Validator{v: v}
}

// Validate checks a struct and returns a *validation.Error describing every
// failing field, or nil if the struct is valid.
func (va *Validator) Validate(s any) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(FieldErrors, len(validationErrs))
	for _, e := range validationErrs {
		fields[e.Field()] = message(e)
	}

	return &Error{Fields: fields}
}

// message converts a validator error into a human-readable message.
func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "email_format":
		return "must be a valid email address"
	case "password":
		return "must be at least 6 characters with one letter and one number"
	case "published_year":
		return fmt.Sprintf("must be between 1000 and %d", time.Now().Year())
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	default:
		return "is invalid"
	}
}
