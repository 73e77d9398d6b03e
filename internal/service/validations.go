package service

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/limbo/taskflow/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Report fields by their JSON names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}

// validateStruct runs the struct tags and converts failures into a
// ValidationError listing every offending field.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]errorvalues.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, errorvalues.FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return &errorvalues.ValidationError{Fields: fields}
}

func validateDate(field, value string) error {
	InitValidator()
	if err := validate.Var(value, "datetime=2006-01-02"); err != nil {
		return &errorvalues.ValidationError{Fields: []errorvalues.FieldError{
			{Field: field, Rule: "datetime", Param: "2006-01-02"},
		}}
	}
	return nil
}
