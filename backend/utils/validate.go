package utils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateStruct проверяет структуру запроса по validate-тегам
func ValidateStruct(i interface{}) error {
	if err := validate.Struct(i); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Please Enter All Details")
	}
	return nil
}
