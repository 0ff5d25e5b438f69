package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the struct's validate tags and returns one message per
// failing field, keyed by the lowercased field name.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		field := strings.ToLower(fe.Field())
		errs[field] = fmt.Sprintf("%s is %s", field, fe.Tag())
	}
	return errs
}
