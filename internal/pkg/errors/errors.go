package errors

import (
	"fmt"
)

type AppError struct {
	Code       string                 `json:"code"`
	Message    string                 `json:"message"`
	Details    map[string]interface{} `json:"details,omitempty"`
	StatusCode int                    `json:"-"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    make(map[string]interface{}),
	}
}

func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// Kind классифицирует ошибки провайдера BusSystem.
type Kind string

const (
	// KindTransport - сетевая ошибка или таймаут HTTP-слоя
	KindTransport Kind = "transport"
	// KindParse - ответ не является ни валидным JSON, ни валидным XML
	KindParse Kind = "parse"
	// KindAuthentication - дилер неактивен, повторять запрос бессмысленно
	KindAuthentication Kind = "authentication"
	// KindValidation - провайдер отклонил данные клиента (телефон, имя, документ, дата)
	KindValidation Kind = "validation"
	// KindAPI - любая другая ошибка, о которой сообщил провайдер
	KindAPI Kind = "api"
)

// ProviderError - типизированная ошибка API BusSystem.
// Code и Detail сохраняются в том виде, в котором их вернул провайдер.
type ProviderError struct {
	Kind   Kind   `json:"kind"`
	Code   string `json:"code,omitempty"`
	Detail string `json:"detail,omitempty"`
	Err    error  `json:"-"`
}

func (e *ProviderError) Error() string {
	switch {
	case e.Code != "" && e.Detail != "":
		return fmt.Sprintf("bussystem %s error: %s - %s", e.Kind, e.Code, e.Detail)
	case e.Code != "":
		return fmt.Sprintf("bussystem %s error: %s", e.Kind, e.Code)
	case e.Err != nil:
		return fmt.Sprintf("bussystem %s error: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("bussystem %s error: %s", e.Kind, e.Detail)
	}
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// providerErrorKinds - таблица соответствия кодов ошибок провайдера их типам.
// Новые коды добавляются сюда, логика диспетчеризации не меняется.
var providerErrorKinds = map[string]Kind{
	"dealer_no_activ": KindAuthentication,
	"no_phone":        KindValidation,
	"no_name":         KindValidation,
	"no_doc":          KindValidation,
	"date":            KindValidation,
}

// FromProviderCode строит типизированную ошибку по коду из ответа провайдера.
func FromProviderCode(code, detail string) *ProviderError {
	kind, ok := providerErrorKinds[code]
	if !ok {
		kind = KindAPI
	}
	return &ProviderError{
		Kind:   kind,
		Code:   code,
		Detail: detail,
	}
}

// TransportError оборачивает ошибку HTTP-слоя.
func TransportError(err error) *ProviderError {
	return &ProviderError{
		Kind: KindTransport,
		Err:  err,
	}
}

// ParseError сигнализирует о теле ответа, которое не удалось разобрать.
func ParseError(detail string) *ProviderError {
	return &ProviderError{
		Kind:   KindParse,
		Detail: detail,
	}
}
