package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bussystem-service/internal/pkg/utils"
	"github.com/bussystem-service/internal/pkg/validator"
	"github.com/bussystem-service/internal/usecase"
	"github.com/bussystem-service/internal/usecase/dto"
)

// BookingHandler - обработчик жизненного цикла заказа
type BookingHandler struct {
	bookingUC *usecase.BookingUseCase
	logger    *zap.Logger
}

// NewBookingHandler - создание нового BookingHandler
func NewBookingHandler(bookingUC *usecase.BookingUseCase, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
		logger:    logger,
	}
}

// CreateOrder godoc
// @Summary Создание заказа
// @Description Создает заказ у провайдера из маршрутов, пассажиров и выбранных мест. Заказ сохраняется локально со статусом reserve и внешней ссылкой.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Данные бронирования"
// @Success 200 {object} utils.SuccessResponse{data=dto.OrderResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/orders [post]
func (h *BookingHandler) CreateOrder(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.bookingUC.CreateOrder(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Reserve godoc
// @Summary Резервирование билетов заказа
// @Description Переводит заказ в статус reserve_ok. Некоторые перевозчики требуют подтвержденный телефон.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор заказа у провайдера"
// @Param phone query string false "Телефон для резервирования"
// @Success 200 {object} utils.SuccessResponse{data=dto.OrderResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/orders/{id}/reserve [post]
func (h *BookingHandler) Reserve(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order id"})
	}

	result, err := h.bookingUC.Reserve(c.Context(), int64(orderID), c.Query("phone"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Buy godoc
// @Summary Выкуп заказа
// @Description Оплачивает зарезервированный заказ. Выданные провайдером билеты сохраняются локально вместе со ссылками на PDF-бланки.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор заказа у провайдера"
// @Param lang query string false "Язык бланков" default(en)
// @Success 200 {object} utils.SuccessResponse{data=dto.OrderResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/orders/{id}/buy [post]
func (h *BookingHandler) Buy(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order id"})
	}

	result, err := h.bookingUC.Buy(c.Context(), int64(orderID), c.Query("lang"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Cancel godoc
// @Summary Отмена заказа или билета
// @Description Отменяет заказ целиком либо отдельный билет, если передан ticket_id. Сумма возврата определяется провайдером.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор заказа у провайдера"
// @Param request body dto.CancelRequest false "Параметры отмены"
// @Success 200 {object} utils.SuccessResponse{data=dto.OrderResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/orders/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order id"})
	}

	var req dto.CancelRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}

	result, err := h.bookingUC.Cancel(c.Context(), int64(orderID), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ValidateReservation godoc
// @Summary Проверка возможности резервирования
// @Description Проверяет у провайдера, доступно ли резервирование по телефону без предоплаты
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body dto.ReserveValidationRequest true "Телефон"
// @Success 200 {object} utils.SuccessResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/reservations/validate [post]
func (h *BookingHandler) ValidateReservation(c *fiber.Ctx) error {
	var req dto.ReserveValidationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.bookingUC.ValidateReservation(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ValidateSMS godoc
// @Summary Подтверждение телефона по SMS
// @Description Отправляет SMS-код при send_sms=true, проверяет код при переданном code
// @Tags Validation
// @Accept json
// @Produce json
// @Param request body dto.SMSValidationRequest true "Телефон и код"
// @Success 200 {object} utils.SuccessResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/sms/validate [post]
func (h *BookingHandler) ValidateSMS(c *fiber.Ctx) error {
	var req dto.SMSValidationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.bookingUC.ValidateSMS(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
