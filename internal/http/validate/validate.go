// Package validate настраивает общий экземпляр go-playground/validator
// так, чтобы в ошибках валидации поля назывались по их json-тегам,
// а не по именам полей Go-структур.
package validate

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator"
)

// New возвращает валидатор, использующий json-теги как имена полей.
// Правило datetime отсутствует в используемой версии validator,
// поэтому регистрируется вручную: параметр тега задаёт layout даты.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("datetime", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(fl.Param(), fl.Field().String())
		return err == nil
	})
	return v
}
