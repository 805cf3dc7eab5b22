package utils

import (
	"labportal-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("test_type", validateTestType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateTestType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.TestTypeBlood || value == constvars.TestTypeUrinalysis || value == constvars.TestTypeFecal
}
