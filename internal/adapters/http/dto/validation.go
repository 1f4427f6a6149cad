package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrValidation wraps struct-tag validation failures.
	ErrValidation = errors.New("validation failed")

	// ErrBinding wraps JSON decoding failures.
	ErrBinding = errors.New("binding failed")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// messages maps validator tags to client-facing text. {param} is replaced
// with the tag parameter.
var messages = map[string]string{
	"required": "this field is required",
	"notempty": "must not be empty",
	"gte":      "must be greater than or equal to {param}",
	"lte":      "must be less than or equal to {param}",
	"max":      "must be at most {param}",
	"min":      "must be at least {param}",
}

// Validator returns the shared validator. Field names in errors are the
// JSON names, so details keys match the request body.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			return name
		})

		_ = validate.RegisterValidation("notempty", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})

	return validate
}

// Validate checks v against its struct tags.
func Validate(v any) error {
	if err := Validator().Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindAndValidate decodes the JSON body into v and validates it.
func BindAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// ValidationErrors returns one message per failing field, keyed by JSON name.
// It returns an empty map when err carries no field errors.
func ValidationErrors(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fields
	}

	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}

	return fields
}

func fieldMessage(fe validator.FieldError) string {
	msg, ok := messages[fe.Tag()]
	if !ok {
		return "failed validation: " + fe.Tag()
	}

	if fe.Kind() == reflect.String && (fe.Tag() == "min" || fe.Tag() == "max") {
		msg += " characters"
	}

	return strings.ReplaceAll(msg, "{param}", fe.Param())
}
