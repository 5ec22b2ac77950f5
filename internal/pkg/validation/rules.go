package validation

import (
	"fmt"
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// CGPA bounds on the grading scale
const (
	MinCGPA = 0.0
	MaxCGPA = 10.0
)

// CGPATag is the struct tag accepting a grade point average on the 0 to 10 scale
const CGPATag = "cgpa"

// IsCGPA reports whether v lies on the grading scale.
func IsCGPA(v float64) bool {
	return v >= MinCGPA && v <= MaxCGPA
}

func validateCGPA(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		return IsCGPA(fl.Field().Float())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IsCGPA(float64(fl.Field().Int()))
	default:
		return false
	}
}

// RegisterRules adds the custom rules to v.
func RegisterRules(v *validator.Validate) error {
	if err := v.RegisterValidation(CGPATag, validateCGPA); err != nil {
		return fmt.Errorf("failed to register %s rule: %w", CGPATag, err)
	}
	return nil
}

// New returns a validator with the custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	if err := RegisterRules(v); err != nil {
		panic(err)
	}
	return v
}

// RegisterGinRules adds the custom rules to gin's request binding validator.
func RegisterGinRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return RegisterRules(v)
}
