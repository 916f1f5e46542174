package helper

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MapValidationErrors mengubah error validator jadi map field → pesan,
// supaya shape 422 konsisten di semua controller.
func MapValidationErrors(err error) map[string][]string {
	out := map[string][]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = []string{err.Error()}
		return out
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "field is required"
		case "oneof":
			msg = "must be one of: " + fe.Param()
		case "min":
			msg = "must have at least " + fe.Param() + " items"
		case "max":
			msg = "exceeds maximum of " + fe.Param()
		case "gte":
			msg = "must be >= " + fe.Param()
		case "lte":
			msg = "must be <= " + fe.Param()
		case "uuid", "uuid4":
			msg = "must be a valid uuid"
		case "url":
			msg = "must be a valid url"
		default:
			msg = "failed on rule: " + fe.Tag()
		}
		out[field] = append(out[field], msg)
	}
	return out
}
