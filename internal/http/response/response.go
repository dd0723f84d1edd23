// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков. Пакет упрощает возврат
// успешных ответов, ошибок и сообщений валидации в едином формате.
package response

import (
	"fmt"

	"github.com/go-playground/validator"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
// Поле Status — статус запроса ("OK" или "Error").
// Поле Error — текст ошибки (опционально, при неуспехе).
// Поле Errors — ошибки валидации по полям (опционально).
// Поле Data — данные ответа (опционально, при успехе).
type Response struct {
	Status string              `json:"status"`
	Error  string              `json:"error,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
	Data   any                 `json:"data,omitempty"`
}

// ErrorResponse — структура ошибки для Swagger-документации.
// Используется в аннотациях @Failure как возвращаемый тип ошибки.
type ErrorResponse struct {
	Status string `json:"status" example:"Error"`
	Error  string `json:"error" example:"invalid request body"`
}

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// OK возвращает успешный Response без данных.
func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

// OKWithData возвращает успешный Response с переданными данными.
func OKWithData(data any) Response {
	return Response{
		Status: StatusOK,
		Data:   data,
	}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  msg,
	}
}

// ValidationError формирует Response со статусом Error на основе ошибок валидации.
// Сообщения группируются по имени поля: одно нарушенное правило — одно сообщение,
// несколько нарушений по одному полю накапливаются в списке.
func ValidationError(errs validator.ValidationErrors) Response {
	fieldErrs := make(map[string][]string, len(errs))

	for _, err := range errs {
		var msg string
		switch err.ActualTag() {
		case "required":
			msg = fmt.Sprintf("field %s is a required field", err.Field())
		case "email":
			msg = fmt.Sprintf("field %s must be a valid email address", err.Field())
		case "uuid":
			msg = fmt.Sprintf("field %s must be a valid uuid", err.Field())
		case "min":
			msg = fmt.Sprintf("field %s must be at least %s characters long", err.Field(), err.Param())
		case "max":
			msg = fmt.Sprintf("field %s must be at most %s characters long", err.Field(), err.Param())
		case "datetime":
			msg = fmt.Sprintf("field %s must be a date in format %s", err.Field(), err.Param())
		default:
			msg = fmt.Sprintf("field %s is not valid", err.Field())
		}
		fieldErrs[err.Field()] = append(fieldErrs[err.Field()], msg)
	}
	return Response{
		Status: StatusError,
		Errors: fieldErrs,
	}
}
