package utils

import (
	"net/http"

	"github.com/bussystem-service/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error interface{} `json:"error"`
}

type Meta struct {
	Total    int     `json:"total,omitempty"`
	Page     int     `json:"page,omitempty"`
	Limit    int     `json:"limit,omitempty"`
	TimeMSec float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	if provErr, ok := err.(*errors.ProviderError); ok {
		return c.Status(providerStatusCode(provErr)).JSON(ErrorResponse{
			Error: provErr,
		})
	}

	// Unknown error - return 500
	return c.Status(500).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}

// providerStatusCode переводит тип ошибки провайдера в HTTP-статус нашего API
func providerStatusCode(err *errors.ProviderError) int {
	switch err.Kind {
	case errors.KindValidation:
		return http.StatusUnprocessableEntity
	case errors.KindAuthentication:
		return http.StatusBadGateway
	case errors.KindTransport:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
