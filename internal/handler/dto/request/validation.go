package request

import (
	"reflect"
	"strings"
	"sync"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the isodate and clocktime tags to gin's validator.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(wireName)
		_ = v.RegisterValidation("isodate", isoDate)
		_ = v.RegisterValidation("clocktime", clockTime)
	})
}

// wireName reports fields by their json or form key.
func wireName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := calendar.ParseDate(fl.Field().String())
	return err == nil
}

func clockTime(fl validator.FieldLevel) bool {
	_, err := slot.ParseClockTime(fl.Field().String())
	return err == nil
}
