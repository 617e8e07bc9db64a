package repository

import (
	"context"
	"time"

	"github.com/bussystem-service/internal/domain"
)

// OrderRepository - хранение локальных отражений заказов.
// Удаление всегда мягкое: запись помечается, но остается для аудита.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByOrderID(ctx context.Context, orderID int64) (*domain.Order, error)
	GetByReference(ctx context.Context, reference string) (*domain.Order, error)
	ListByStatuses(ctx context.Context, statuses []string, limit int) ([]*domain.Order, error)
	ListExpired(ctx context.Context, before time.Time, limit int) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status string, rawResponse []byte) error
	SoftDelete(ctx context.Context, orderID int64) error
}

// TicketRepository - хранение билетов заказа
type TicketRepository interface {
	CreateBatch(ctx context.Context, tickets []*domain.Ticket) error
	GetByTicketID(ctx context.Context, ticketID int64) (*domain.Ticket, error)
	ListByOrder(ctx context.Context, orderID int64) ([]*domain.Ticket, error)
	ListByStatuses(ctx context.Context, statuses []string, limit int) ([]*domain.Ticket, error)
	UpdateStatus(ctx context.Context, ticketID int64, status string, rawResponse []byte) error
	SoftDelete(ctx context.Context, ticketID int64) error
}
