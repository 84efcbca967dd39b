package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/apperrors"
)

var validate = validator.New()

// Struct validates a tagged struct and maps failures onto the application
// error taxonomy. The store layer assumes validated input, so every form
// must pass through here before a mutation.
func Struct(obj interface{}) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidationError(err.Error())
	}

	details := make(map[string]interface{}, len(verrs))
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := formatFieldError(fe)
		details[fe.Field()] = msg
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), msg))
	}

	cerr := &apperrors.CustomError{
		Err:     apperrors.ErrValidationFailed,
		Message: strings.Join(msgs, "; "),
	}
	return cerr.WithDetails(details)
}

// formatFieldError turns a single field error into a user-facing message
func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "datetime":
		return fmt.Sprintf("must match format %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
