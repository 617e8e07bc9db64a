package usecase_test

import (
	"context"
	"net/url"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/bussystem-service/internal/domain"
	"github.com/bussystem-service/internal/domain/repository"
)

// MockBusSystemRepository is a mock of BusSystemRepository
type MockBusSystemRepository struct {
	mock.Mock
}

func (m *MockBusSystemRepository) resp(args mock.Arguments) (repository.Response, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Response), args.Error(1)
}

func (m *MockBusSystemRepository) Ping(ctx context.Context) (repository.Response, error) {
	return m.resp(m.Called(ctx))
}

func (m *MockBusSystemRepository) GetPoints(ctx context.Context, params url.Values) (repository.Response, error) {
	return m.resp(m.Called(ctx, params))
}

func (m *MockBusSystemRepository) GetRoutes(ctx context.Context, criteria *domain.SearchCriteria) (repository.Response, error) {
	return m.resp(m.Called(ctx, criteria))
}

func (m *MockBusSystemRepository) GetAllRoutes(ctx context.Context, timetableID, language string) (repository.Response, error) {
	return m.resp(m.Called(ctx, timetableID, language))
}

func (m *MockBusSystemRepository) GetFreeSeats(ctx context.Context, intervalID string, params url.Values) (repository.Response, error) {
	return m.resp(m.Called(ctx, intervalID, params))
}

func (m *MockBusSystemRepository) GetSeatPlan(ctx context.Context, params url.Values) (repository.Response, error) {
	return m.resp(m.Called(ctx, params))
}

func (m *MockBusSystemRepository) GetDiscounts(ctx context.Context, intervalID string, params url.Values) (repository.Response, error) {
	return m.resp(m.Called(ctx, intervalID, params))
}

func (m *MockBusSystemRepository) GetBaggage(ctx context.Context, intervalID string, params url.Values) (repository.Response, error) {
	return m.resp(m.Called(ctx, intervalID, params))
}

func (m *MockBusSystemRepository) CreateOrder(ctx context.Context, booking *domain.BookingData) (repository.Response, error) {
	return m.resp(m.Called(ctx, booking))
}

func (m *MockBusSystemRepository) ReserveTickets(ctx context.Context, orderID int64, params url.Values) (repository.Response, error) {
	return m.resp(m.Called(ctx, orderID, params))
}

func (m *MockBusSystemRepository) BuyTickets(ctx context.Context, orderID int64, language string) (repository.Response, error) {
	return m.resp(m.Called(ctx, orderID, language))
}

func (m *MockBusSystemRepository) CancelTickets(ctx context.Context, params url.Values) (repository.Response, error) {
	return m.resp(m.Called(ctx, params))
}

func (m *MockBusSystemRepository) GetOrder(ctx context.Context, orderID int64, security, language string) (repository.Response, error) {
	return m.resp(m.Called(ctx, orderID, security, language))
}

func (m *MockBusSystemRepository) GetTicket(ctx context.Context, params url.Values) (repository.Response, error) {
	return m.resp(m.Called(ctx, params))
}

func (m *MockBusSystemRepository) ValidateReservation(ctx context.Context, phone, language string) (repository.Response, error) {
	return m.resp(m.Called(ctx, phone, language))
}

func (m *MockBusSystemRepository) ValidateSMS(ctx context.Context, params url.Values) (repository.Response, error) {
	return m.resp(m.Called(ctx, params))
}

// MockOrderRepository is a mock of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByOrderID(ctx context.Context, orderID int64) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByReference(ctx context.Context, reference string) (*domain.Order, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByStatuses(ctx context.Context, statuses []string, limit int) ([]*domain.Order, error) {
	args := m.Called(ctx, statuses, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListExpired(ctx context.Context, before time.Time, limit int) ([]*domain.Order, error) {
	args := m.Called(ctx, before, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderID int64, status string, rawResponse []byte) error {
	args := m.Called(ctx, orderID, status, rawResponse)
	return args.Error(0)
}

func (m *MockOrderRepository) SoftDelete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

// MockTicketRepository is a mock of TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) CreateBatch(ctx context.Context, tickets []*domain.Ticket) error {
	args := m.Called(ctx, tickets)
	return args.Error(0)
}

func (m *MockTicketRepository) GetByTicketID(ctx context.Context, ticketID int64) (*domain.Ticket, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) ListByOrder(ctx context.Context, orderID int64) ([]*domain.Ticket, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) ListByStatuses(ctx context.Context, statuses []string, limit int) ([]*domain.Ticket, error) {
	args := m.Called(ctx, statuses, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) UpdateStatus(ctx context.Context, ticketID int64, status string, rawResponse []byte) error {
	args := m.Called(ctx, ticketID, status, rawResponse)
	return args.Error(0)
}

func (m *MockTicketRepository) SoftDelete(ctx context.Context, ticketID int64) error {
	args := m.Called(ctx, ticketID)
	return args.Error(0)
}
