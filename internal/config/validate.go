package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"hanoi/internal/core"
)

var validate = validator.New()

var ringsTag = fmt.Sprintf("min=%d,max=%d", core.MinRings, core.MaxRings)

// ValidateRings checks a ring count typed at the difficulty prompt
func ValidateRings(n int) error {
	if err := validate.Var(n, ringsTag); err != nil {
		return fmt.Errorf("invalid ring count: %s", describe(err))
	}
	return nil
}

// describe turns validator errors into one readable line
func describe(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var details strings.Builder
	for _, e := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		field := e.Namespace()
		if field == "" {
			field = "value"
		}
		switch e.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", field))
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", field, e.Param()))
		case "min":
			details.WriteString(fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "max":
			details.WriteString(fmt.Sprintf("%s must be at most %s", field, e.Param()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", field, e.Tag()))
		}
	}
	return details.String()
}
