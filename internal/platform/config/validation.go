package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their koanf key, so errors name the same
// path an operator sets in YAML or the environment.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" {
			return strings.ToLower(f.Name)
		}

		return name
	})

	return v
}

// Validate reports every invalid setting at once. The service refuses to
// start on error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, describe(fe))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

var tagMessages = map[string]string{
	"required":      "is required",
	"required_if":   "is required when %s",
	"min":           "must be at least %s",
	"max":           "must be at most %s",
	"oneof":         "must be one of: %s",
	"url":           "must be a valid URL",
	"hostname_port": "must be a host:port address",
	"filepath":      "must be a file path",
}

func describe(fe validator.FieldError) string {
	field := formatFieldPath(fe.Namespace())

	msg, ok := tagMessages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}

	if strings.Contains(msg, "%s") {
		msg = fmt.Sprintf(msg, fe.Param())
	}

	return field + " " + msg
}

// formatFieldPath drops the root struct from a validator namespace:
// "Config.server.port" becomes "server.port".
func formatFieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return rest
}
