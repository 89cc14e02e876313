package utils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the `validate` tag rules of obj and returns a single
// labeled error listing every violated field. The web layer already does
// binding-level validation; this is the last gate before business data
// reaches the planner.
func ValidateStruct(obj interface{}) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}
	invalid, ok := err.(*validator.InvalidValidationError)
	if ok {
		return invalid
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msg := "input validation failed:"
	for _, fe := range fieldErrs {
		msg += fmt.Sprintf(" %s(%s)", fe.Namespace(), fe.Tag())
	}
	return fmt.Errorf("%s", msg)
}
