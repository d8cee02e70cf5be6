package book

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type violation int

const (
	violationNone violation = iota
	violationMissingName
	violationReadPageExceedsPageCount
)

// validateInput reports the first rule the input breaks. Name is checked
// before page counts.
func validateInput(in Input) violation {
	err := validate.Struct(in)
	if err == nil {
		return violationNone
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return violationNone
	}

	found := violationNone
	for _, fe := range fieldErrs {
		switch fe.StructField() {
		case "Name":
			return violationMissingName
		case "ReadPage":
			found = violationReadPageExceedsPageCount
		}
	}
	return found
}
