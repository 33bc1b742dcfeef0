package service

import (
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Deliberately loose email shape check, mirroring what the site
		// frontend accepts: an "@" somewhere and at least 5 characters
		validate.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return strings.Contains(value, "@") && len(value) >= 5
		})
	})
}
