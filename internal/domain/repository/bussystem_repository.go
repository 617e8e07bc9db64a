package repository

import (
	"context"
	"net/url"

	"github.com/bussystem-service/internal/domain"
)

// Response - нормализованный ответ API BusSystem. JSON и XML ответы
// приводятся к одной и той же структуре.
type Response = map[string]interface{}

// BusSystemRepository - клиент API BusSystem. Каждая операция - одиночный
// исходящий запрос; последовательность создание заказа -> резервирование ->
// покупка выстраивается вызывающей стороной.
type BusSystemRepository interface {
	Ping(ctx context.Context) (Response, error)
	GetPoints(ctx context.Context, params url.Values) (Response, error)
	GetRoutes(ctx context.Context, criteria *domain.SearchCriteria) (Response, error)
	GetAllRoutes(ctx context.Context, timetableID, language string) (Response, error)
	GetFreeSeats(ctx context.Context, intervalID string, params url.Values) (Response, error)
	GetSeatPlan(ctx context.Context, params url.Values) (Response, error)
	GetDiscounts(ctx context.Context, intervalID string, params url.Values) (Response, error)
	GetBaggage(ctx context.Context, intervalID string, params url.Values) (Response, error)
	CreateOrder(ctx context.Context, booking *domain.BookingData) (Response, error)
	ReserveTickets(ctx context.Context, orderID int64, params url.Values) (Response, error)
	BuyTickets(ctx context.Context, orderID int64, language string) (Response, error)
	CancelTickets(ctx context.Context, params url.Values) (Response, error)
	GetOrder(ctx context.Context, orderID int64, security, language string) (Response, error)
	GetTicket(ctx context.Context, params url.Values) (Response, error)
	ValidateReservation(ctx context.Context, phone, language string) (Response, error)
	ValidateSMS(ctx context.Context, params url.Values) (Response, error)
}
