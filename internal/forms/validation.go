package forms

import (
	"time"

	"github.com/go-playground/validator/v10"

	"tasktracker/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("priority", PriorityValidator)
	_ = v.RegisterValidation("isodate", DateValidator)
	return v
}

// PriorityValidator accepts Low, Medium and High only.
func PriorityValidator(fl validator.FieldLevel) bool {
	return models.TaskPriority(fl.Field().String()).IsValid()
}

// DateValidator accepts a YYYY-MM-DD calendar date.
func DateValidator(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}
