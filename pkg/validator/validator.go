package validator

import (
	"strings"

	"clinic-admin/internal/domain/entity"
	"clinic-admin/pkg/format"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("specialty", func(fl validator.FieldLevel) bool {
		return entity.Specialty(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		return format.IsValidDate(format.NormalizeDate(fl.Field().String()))
	})
	v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return format.IsValidTime(format.NormalizeTime(fl.Field().String()))
	})
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required", "notblank":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "gt":
				errors[field] = field + " must be greater than " + e.Param()
			case "specialty":
				errors[field] = field + " must be one of " + specialtyList()
			case "date":
				errors[field] = field + " must be a date in YYYY-MM-DD format"
			case "clock":
				errors[field] = field + " must be a time in HH:MM format"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

func specialtyList() string {
	names := make([]string, 0, len(entity.Specialties()))
	for _, s := range entity.Specialties() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
