// Package validators owns the process-wide request validator.
package validators

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	appErr "github.com/comcode/blog-engine/pkg/errors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// New returns the shared validator instance.
func New() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Check validates v and converts field failures into an invalid AppError
// whose meta carries a field -> constraint map for the problem response.
func Check(v any) error {
	err := New().Struct(v)
	if err == nil {
		return nil
	}
	fields := map[string]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = fe.Tag()
		}
	}
	return appErr.New(appErr.CodeInvalid, "request body failed validation").WithMeta("errors", fields)
}
