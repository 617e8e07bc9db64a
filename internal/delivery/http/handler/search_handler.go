package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bussystem-service/internal/pkg/utils"
	"github.com/bussystem-service/internal/pkg/validator"
	"github.com/bussystem-service/internal/usecase"
	"github.com/bussystem-service/internal/usecase/dto"
)

// SearchHandler - обработчик справочных и поисковых запросов к провайдеру
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

// NewSearchHandler - создание нового SearchHandler
func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Points godoc
// @Summary Справочник городов и станций
// @Description Возвращает список доступных точек отправления и прибытия. Поддерживает фильтрацию по стране, связанным точкам и автодополнение по названию.
// @Tags Search
// @Accept json
// @Produce json
// @Param country_id query int false "Фильтр по стране"
// @Param point_id_from query int false "Только точки, достижимые из указанной"
// @Param autocomplete query string false "Автодополнение по началу названия"
// @Param trans query string false "Вид транспорта (all, bus, train, air)" default(all)
// @Param lang query string false "Язык названий" default(en)
// @Success 200 {object} utils.SuccessResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/points [get]
func (h *SearchHandler) Points(c *fiber.Ctx) error {
	params := url.Values{}
	for _, key := range []string{"country_id", "point_id_from", "point_id_to", "autocomplete", "trans", "lang", "viev", "group_by_iata", "all"} {
		if v := c.Query(key); v != "" {
			params.Set(key, v)
		}
	}

	result, err := h.searchUC.Points(c.Context(), params)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// SearchRoutes godoc
// @Summary Поиск рейсов
// @Description Ищет рейсы между точками на заданную дату. Поддерживает автобусы, поезда и авиаперелеты, пересадки и расширение периода поиска.
// @Tags Search
// @Accept json
// @Produce json
// @Param request body dto.SearchRoutesRequest true "Критерии поиска"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/routes/search [post]
func (h *SearchHandler) SearchRoutes(c *fiber.Ctx) error {
	var req dto.SearchRoutesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.searchUC.SearchRoutes(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Timetable godoc
// @Summary Полное расписание маршрута
// @Description Возвращает все остановки маршрута по идентификатору расписания из результатов поиска
// @Tags Search
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор расписания (timetable_id)"
// @Param lang query string false "Язык названий" default(en)
// @Success 200 {object} utils.SuccessResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/timetables/{id} [get]
func (h *SearchHandler) Timetable(c *fiber.Ctx) error {
	result, err := h.searchUC.Timetable(c.Context(), c.Params("id"), c.Query("lang"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// FreeSeats godoc
// @Summary Свободные места рейса
// @Description Возвращает свободные места интервала. Для поездов требует train_id и vagon_id из результатов поиска.
// @Tags Search
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор интервала (interval_id)"
// @Param train_id query string false "Идентификатор поезда"
// @Param vagon_id query string false "Идентификатор вагона"
// @Param currency query string false "Валюта цен"
// @Param lang query string false "Язык" default(en)
// @Success 200 {object} utils.SuccessResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/intervals/{id}/seats [get]
func (h *SearchHandler) FreeSeats(c *fiber.Ctx) error {
	params := url.Values{}
	for _, key := range []string{"train_id", "vagon_id", "currency", "lang", "session"} {
		if v := c.Query(key); v != "" {
			params.Set(key, v)
		}
	}

	result, err := h.searchUC.FreeSeats(c.Context(), c.Params("id"), params)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// SeatPlan godoc
// @Summary Схема салона
// @Description Возвращает план расположения мест автобуса или вагона
// @Tags Search
// @Accept json
// @Produce json
// @Param bustype_id query string false "Тип автобуса из результатов поиска"
// @Param vagon_type query string false "Тип вагона"
// @Param position query string false "Ориентация схемы (h, v)" default(h)
// @Success 200 {object} utils.SuccessResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/plan [get]
func (h *SearchHandler) SeatPlan(c *fiber.Ctx) error {
	params := url.Values{}
	for _, key := range []string{"bustype_id", "vagon_type", "position", "orientation", "session"} {
		if v := c.Query(key); v != "" {
			params.Set(key, v)
		}
	}

	result, err := h.searchUC.SeatPlan(c.Context(), params)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Discounts godoc
// @Summary Доступные скидки рейса
// @Description Возвращает скидки, применимые к интервалу (детские, студенческие и прочие)
// @Tags Search
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор интервала (interval_id)"
// @Param currency query string false "Валюта"
// @Param lang query string false "Язык" default(en)
// @Success 200 {object} utils.SuccessResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/intervals/{id}/discounts [get]
func (h *SearchHandler) Discounts(c *fiber.Ctx) error {
	params := url.Values{}
	for _, key := range []string{"currency", "lang", "session"} {
		if v := c.Query(key); v != "" {
			params.Set(key, v)
		}
	}

	result, err := h.searchUC.Discounts(c.Context(), c.Params("id"), params)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Baggage godoc
// @Summary Доступный багаж рейса
// @Description Возвращает платные багажные опции интервала
// @Tags Search
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор интервала (interval_id)"
// @Param currency query string false "Валюта"
// @Param lang query string false "Язык" default(en)
// @Success 200 {object} utils.SuccessResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/intervals/{id}/baggage [get]
func (h *SearchHandler) Baggage(c *fiber.Ctx) error {
	params := url.Values{}
	for _, key := range []string{"currency", "lang", "session"} {
		if v := c.Query(key); v != "" {
			params.Set(key, v)
		}
	}

	result, err := h.searchUC.Baggage(c.Context(), c.Params("id"), params)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
