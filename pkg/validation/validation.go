// Package validation настраивает go-playground/validator с тегами сервиса
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// New создает валидатор с зарегистрированными тегами:
//
//	hhmm       - строка в формате HH:MM
//	whole_hour - время HH:00
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Регистрация статических функций не может вернуть ошибку при корректном имени тега
	_ = v.RegisterValidation("hhmm", validateHHMM)
	_ = v.RegisterValidation("whole_hour", validateWholeHour)

	return v
}

func validateHHMM(fl validator.FieldLevel) bool {
	return types.TimeString(fl.Field().String()).Validate() == nil
}

func validateWholeHour(fl validator.FieldLevel) bool {
	return types.TimeString(fl.Field().String()).IsWholeHour()
}

// Describe превращает ошибки валидатора в короткую строку "Field: tag; ..."
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s: %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		messages = append(messages, fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag()))
	}
	return strings.Join(messages, "; ")
}
