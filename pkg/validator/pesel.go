package validator

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const peselLength = 11

// Валидатор номера PESEL: ровно 11 символов. Содержимое не проверяется, номер непрозрачен
func validatorPesel(fl validator.FieldLevel) bool {
	pesel, ok := fl.Field().Interface().(string)
	return ok && utf8.RuneCountInString(pesel) == peselLength
}
