package api

import (
	"fmt"
	"regexp"
	"time"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	hhmmPattern   = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	mobilePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})
	return v
}

// bindAndValidate decodes the JSON body into req and runs the declarative
// schema on it, translating failures into the field-level validation error
// the handlers return as 400.
func bindAndValidate(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return domain.NewValidationError("body", err.Error())
	}
	if err := validate.Struct(req); err != nil {
		var fields []domain.FieldError
		for _, fe := range err.(validator.ValidationErrors) {
			fields = append(fields, domain.FieldError{
				Field:   fe.Field(),
				Message: ruleMessage(fe),
			})
		}
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "hhmm":
		return "must be a valid time in HH:MM format"
	case "mobile":
		return "must be 10 to 15 digits"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// parseDate accepts the wire format for calendar-day fields.
func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}
