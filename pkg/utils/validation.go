package utils

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// passwordSpecials is the accepted special-character set for passwords.
const passwordSpecials = "!@#$%^&*"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("userpassword", validPassword)
	return v
}

// validPassword enforces the account password policy: 8-16 characters,
// letters/digits/specials only, at least one uppercase letter and at
// least one special character.
func validPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 || len(password) > 16 {
		return false
	}

	hasUpper := false
	hasSpecial := false
	for _, c := range password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case strings.ContainsRune(passwordSpecials, c):
			hasSpecial = true
		case unicode.IsLower(c) || unicode.IsDigit(c):
			// allowed
		default:
			return false
		}
	}

	return hasUpper && hasSpecial
}

// fieldMessages is the single field -> message policy table shared by all
// request types. Falls back to tag-based messages for anything unlisted.
var fieldMessages = map[string]string{
	"Name":            "Name must be 20-60 characters",
	"Address":         "Address must be less than 400 characters",
	"Email":           "Invalid email format",
	"Password":        fmt.Sprintf("Password must be 8-16 characters with at least one uppercase letter and one special character (%s)", passwordSpecials),
	"NewPassword":     "Invalid password format",
	"CurrentPassword": "Current password is required",
	"Rating":          "Rating must be between 1 and 5",
	"StoreID":         "Invalid store id",
	"OwnerID":         "Invalid owner id",
}

func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// FirstValidationError returns the message for the first failing rule in
// struct field order, or "" when the struct is valid.
func FirstValidationError(data interface{}) string {
	err := validate.Struct(data)
	if err == nil {
		return ""
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		return getErrorMessage(validationErrors[0])
	}

	return "Invalid input"
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	if msg, ok := fieldMessages[err.Field()]; ok {
		return msg
	}

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("%s must be one of: %s", err.Field(), options)
	case "uuid":
		return "Must be a valid UUID"
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// FormatValidationErrors formats a validation errors map into single string
func FormatValidationErrors(errors map[string]string) string {
	var msgs []string
	for field, msg := range errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}
