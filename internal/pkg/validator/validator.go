package validator

import (
	"errors"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	playground "github.com/go-playground/validator/v10"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Err returns v as an error, or nil when there are no entries.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse(time.DateOnly, dateStr)
	return date, err == nil
}

var phoneRegex = regexp.MustCompile(`^(\+?[0-9]{1,3}-?)?[0-9]{10}$`)

// IsValidPhoneNumber accepts an optional country code followed by ten digits,
// e.g. "+91-9876543210" or "9876543210".
func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(strings.ReplaceAll(phone, " ", ""))
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	return slices.Contains(slice, value)
}

var employeeCodeRegex = regexp.MustCompile(`^[A-Z]{2,5}-\d{4}-\d{3,}$`)

// IsValidEmployeeCode matches codes like "IPA-2024-001".
func IsValidEmployeeCode(code string) bool {
	return employeeCodeRegex.MatchString(code)
}

var (
	structValidator     *playground.Validate
	structValidatorOnce sync.Once
)

func getStructValidator() *playground.Validate {
	structValidatorOnce.Do(func() {
		v := playground.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		structValidator = v
	})
	return structValidator
}

// ValidateStruct runs the `validate` struct tags of s and reports failures
// keyed by their json field names.
func ValidateStruct(s interface{}) ValidationErrors {
	err := getStructValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{{Field: "request", Message: err.Error()}}
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{Field: fe.Field(), Message: tagMessage(fe)})
	}
	return errs
}

func tagMessage(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "invalid email format"
	case "max":
		return fe.Field() + " must not exceed " + fe.Param() + " characters"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "gte":
		return fe.Field() + " cannot be less than " + fe.Param()
	case "lte":
		return fe.Field() + " cannot be greater than " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fe.Field() + " is invalid"
	}
}

// CheckOneOf records an error on errs for the first value not in allowed.
func CheckOneOf(errs *ValidationErrors, field string, values []string, allowed []string) {
	for _, v := range values {
		if !IsInSlice(v, allowed) {
			errs.Add(field, "'"+v+"' is not one of: "+strings.Join(allowed, ", "))
			return
		}
	}
}

// CheckNotBlank records an error on errs if any value is blank.
func CheckNotBlank(errs *ValidationErrors, field string, values []string) {
	for _, v := range values {
		if IsEmpty(v) {
			errs.Add(field, field+" filter values must not be empty")
			return
		}
	}
}
