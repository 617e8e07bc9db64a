package usecase

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/bussystem-service/internal/domain"
	"github.com/bussystem-service/internal/domain/repository"
	"github.com/bussystem-service/internal/usecase/dto"
)

// expireBatchSize ограничивает один проход уборки просроченных резервов
const expireBatchSize = 100

// OrderUseCase - чтение и сопровождение сохраненных заказов.
// Локальная база - источник истины для списков и ссылок,
// провайдер - для актуального статуса.
type OrderUseCase struct {
	client   repository.BusSystemRepository
	orders   repository.OrderRepository
	tickets  repository.TicketRepository
	logger   *zap.Logger
	defaults domain.Defaults
}

func NewOrderUseCase(
	client repository.BusSystemRepository,
	orders repository.OrderRepository,
	tickets repository.TicketRepository,
	logger *zap.Logger,
	defaults domain.Defaults,
) *OrderUseCase {
	return &OrderUseCase{
		client:   client,
		orders:   orders,
		tickets:  tickets,
		logger:   logger,
		defaults: defaults,
	}
}

// Get возвращает заказ с билетами из локальной базы
func (uc *OrderUseCase) Get(ctx context.Context, orderID int64) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.tickets.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &dto.OrderResponse{Order: order, Tickets: tickets}, nil
}

// GetByReference ищет заказ по внешней ссылке
func (uc *OrderUseCase) GetByReference(ctx context.Context, reference string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.tickets.ListByOrder(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}

	return &dto.OrderResponse{Order: order, Tickets: tickets}, nil
}

// List возвращает заказы с указанными статусами
func (uc *OrderUseCase) List(ctx context.Context, statuses []string, limit int) ([]*domain.Order, error) {
	if len(statuses) == 0 {
		statuses = []string{domain.StatusReserve, domain.StatusReserveOK, domain.StatusBuy}
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return uc.orders.ListByStatuses(ctx, statuses, limit)
}

// Refresh запрашивает актуальное состояние заказа у провайдера
// и синхронизирует локальный статус
func (uc *OrderUseCase) Refresh(ctx context.Context, orderID int64, language string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if language == "" {
		language = uc.defaults.Language
	}

	resp, err := uc.client.GetOrder(ctx, orderID, order.SecurityCode, language)
	if err != nil {
		uc.logger.Error("Failed to refresh order",
			zap.Int64("order_id", orderID), zap.Error(err))
		return nil, err
	}

	raw, _ := json.Marshal(resp)
	if status := cast.ToString(resp["status"]); status != "" && status != order.Status {
		if err := uc.orders.UpdateStatus(ctx, orderID, status, raw); err != nil {
			return nil, err
		}
		uc.logger.Info("Order status updated from provider",
			zap.Int64("order_id", orderID),
			zap.String("from", order.Status),
			zap.String("to", status))
		order.Status = status
	}

	tickets, err := uc.tickets.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &dto.OrderResponse{Order: order, Tickets: tickets}, nil
}

// Ticket возвращает билет из локальной базы
func (uc *OrderUseCase) Ticket(ctx context.Context, ticketID int64) (*domain.Ticket, error) {
	return uc.tickets.GetByTicketID(ctx, ticketID)
}

// ProviderTicket запрашивает состояние билета напрямую у провайдера.
// Код безопасности берется из локальной записи, если не передан явно.
func (uc *OrderUseCase) ProviderTicket(ctx context.Context, ticketID int64, security, language string) (repository.Response, error) {
	if security == "" {
		ticket, err := uc.tickets.GetByTicketID(ctx, ticketID)
		if err != nil {
			return nil, err
		}
		security = ticket.SecurityCode
	}
	if language == "" {
		language = uc.defaults.Language
	}

	params := url.Values{}
	params.Set("ticket_id", strconv.FormatInt(ticketID, 10))
	params.Set("security", security)
	params.Set("lang", language)

	return uc.client.GetTicket(ctx, params)
}

// ExpireStale помечает отмененными резервы с истекшим окном оплаты
func (uc *OrderUseCase) ExpireStale(ctx context.Context) (int, error) {
	expired, err := uc.orders.ListExpired(ctx, time.Now(), expireBatchSize)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, order := range expired {
		if err := uc.orders.UpdateStatus(ctx, order.OrderID, domain.StatusCancel, nil); err != nil {
			uc.logger.Error("Failed to expire order",
				zap.Int64("order_id", order.OrderID), zap.Error(err))
			continue
		}
		count++
	}

	if count > 0 {
		uc.logger.Info("Expired stale reservations", zap.Int("count", count))
	}
	return count, nil
}

// Delete мягко удаляет заказ и его билеты
func (uc *OrderUseCase) Delete(ctx context.Context, orderID int64) error {
	if _, err := uc.orders.GetByOrderID(ctx, orderID); err != nil {
		return err
	}

	tickets, err := uc.tickets.ListByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	for _, ticket := range tickets {
		if err := uc.tickets.SoftDelete(ctx, ticket.TicketID); err != nil {
			return err
		}
	}

	return uc.orders.SoftDelete(ctx, orderID)
}
