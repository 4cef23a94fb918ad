// Package validation registers the custom binding tags used by the API.
package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// Register installs custom validators on gin's binding engine.
// Call once at startup before handling requests.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return timeOfDayRe.MatchString(fl.Field().String())
	})
}

// IsTimeOfDay reports whether s is a 24-hour HH:MM clock value.
func IsTimeOfDay(s string) bool {
	return timeOfDayRe.MatchString(s)
}
