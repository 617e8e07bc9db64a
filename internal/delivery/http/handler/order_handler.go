package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bussystem-service/internal/pkg/utils"
	"github.com/bussystem-service/internal/usecase"
)

// OrderHandler - обработчик чтения сохраненных заказов и билетов
type OrderHandler struct {
	orderUC *usecase.OrderUseCase
	logger  *zap.Logger
}

// NewOrderHandler - создание нового OrderHandler
func NewOrderHandler(orderUC *usecase.OrderUseCase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
		logger:  logger,
	}
}

// List godoc
// @Summary Список заказов
// @Description Возвращает сохраненные заказы, отфильтрованные по статусам (через запятую)
// @Tags Orders
// @Accept json
// @Produce json
// @Param status query string false "Статусы через запятую (reserve, reserve_ok, buy, cancel)"
// @Param limit query int false "Максимум записей" default(100)
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var statuses []string
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}

	orders, err := h.orderUC.List(c.Context(), statuses, c.QueryInt("limit", 100))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, orders, &utils.Meta{Total: len(orders)})
}

// Get godoc
// @Summary Заказ по идентификатору
// @Description Возвращает локально сохраненный заказ вместе с билетами
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор заказа у провайдера"
// @Success 200 {object} utils.SuccessResponse{data=dto.OrderResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order id"})
	}

	result, err := h.orderUC.Get(c.Context(), int64(orderID))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// GetByReference godoc
// @Summary Заказ по внешней ссылке
// @Description Возвращает заказ по UUID-ссылке, выданной при создании
// @Tags Orders
// @Accept json
// @Produce json
// @Param reference path string true "Внешняя ссылка заказа"
// @Success 200 {object} utils.SuccessResponse{data=dto.OrderResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/orders/reference/{reference} [get]
func (h *OrderHandler) GetByReference(c *fiber.Ctx) error {
	result, err := h.orderUC.GetByReference(c.Context(), c.Params("reference"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Refresh godoc
// @Summary Синхронизация заказа с провайдером
// @Description Запрашивает актуальное состояние заказа у провайдера и обновляет локальный статус
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор заказа у провайдера"
// @Param lang query string false "Язык" default(en)
// @Success 200 {object} utils.SuccessResponse{data=dto.OrderResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/orders/{id}/refresh [post]
func (h *OrderHandler) Refresh(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order id"})
	}

	result, err := h.orderUC.Refresh(c.Context(), int64(orderID), c.Query("lang"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Delete godoc
// @Summary Удаление заказа
// @Description Мягко удаляет заказ и его билеты из локальной базы. Заказ у провайдера не отменяется.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор заказа у провайдера"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order id"})
	}

	if err := h.orderUC.Delete(c.Context(), int64(orderID)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// ExpireStale godoc
// @Summary Отмена просроченных резервов
// @Description Переводит в статус cancel резервы с истекшим окном оплаты. Предназначен для вызова планировщиком.
// @Tags Orders
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/orders/expire [post]
func (h *OrderHandler) ExpireStale(c *fiber.Ctx) error {
	count, err := h.orderUC.ExpireStale(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"expired": count}, nil)
}

// GetTicket godoc
// @Summary Билет по идентификатору
// @Description Возвращает локально сохраненный билет
// @Tags Tickets
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор билета у провайдера"
// @Success 200 {object} utils.SuccessResponse{data=domain.Ticket}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/tickets/{id} [get]
func (h *OrderHandler) GetTicket(c *fiber.Ctx) error {
	ticketID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ticket id"})
	}

	ticket, err := h.orderUC.Ticket(c.Context(), int64(ticketID))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, ticket, nil)
}

// GetProviderTicket godoc
// @Summary Состояние билета у провайдера
// @Description Запрашивает билет напрямую у провайдера, код безопасности берется из локальной записи, если не передан
// @Tags Tickets
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор билета у провайдера"
// @Param security query string false "Код безопасности билета"
// @Param lang query string false "Язык" default(en)
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/tickets/{id}/provider [get]
func (h *OrderHandler) GetProviderTicket(c *fiber.Ctx) error {
	ticketID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid ticket id"})
	}

	result, err := h.orderUC.ProviderTicket(c.Context(), int64(ticketID), c.Query("security"), c.Query("lang"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
