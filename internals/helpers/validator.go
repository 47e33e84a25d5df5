package helper

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate runs validator.v10 tags over a bound DTO.
func Validate(dto any) error {
	return validate.Struct(dto)
}

func FormatValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["body"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		out[fe.Field()] = append(out[fe.Field()], fe.Tag())
	}
	return out
}
