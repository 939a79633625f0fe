// Package rule wraps go-playground/validator for struct validation
// under the "rule" tag. Config structs and incoming organization rules
// share the same engine.
package rule

import (
	"errors"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	inst *validator.Validate
	once sync.Once
)

// Engine returns the shared *validator.Validate. It reuses gin's binding
// engine when available so ShouldBind and explicit validation agree, and
// switches the tag name to "rule".
func Engine() *validator.Validate {
	once.Do(func() {
		if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
			inst = engine
		} else {
			inst = validator.New()
		}

		inst.SetTagName("rule")
	})

	return inst
}

// ValidateStruct runs full struct validation.
func ValidateStruct(s any) error {
	return Engine().Struct(s)
}

// ValidationErrors maps field names to readable messages.
type ValidationErrors map[string]string

// Describe flattens a validator error into field messages suitable for
// an API response. Non-validation errors map to a single "_" entry.
func Describe(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationErrors{"_": err.Error()}
	}

	out := make(ValidationErrors, len(verrs))
	for _, fe := range verrs {
		msg := "failed on " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}

		out[strings.ToLower(fe.Field())] = msg
	}

	return out
}
