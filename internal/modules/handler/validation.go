package handler

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
)

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	// Report query parameter names, not Go field names, in validation errors.
	v.RegisterTagNameFunc(formTagName)
	_ = v.RegisterValidation("geometry_type", func(fl validator.FieldLevel) bool {
		return model.IsGeometryType(fl.Field().String())
	})
	_ = v.RegisterValidation("admin_action", func(fl validator.FieldLevel) bool {
		return model.IsAdminLogAction(fl.Field().String())
	})
}

func formTagName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
	if name == "" || name == "-" {
		return f.Name
	}
	return name
}
