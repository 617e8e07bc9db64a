package usecase_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bussystem-service/internal/domain"
	"github.com/bussystem-service/internal/domain/repository"
	"github.com/bussystem-service/internal/pkg/errors"
	"github.com/bussystem-service/internal/usecase"
	"github.com/bussystem-service/internal/usecase/dto"
)

func bookingDefaults() domain.Defaults {
	return domain.Defaults{Currency: "EUR", Language: "en", Version: "1.1"}
}

func validCreateOrderRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Routes: []dto.BookingRoute{
			{Date: "2026-09-10", IntervalID: "local|12345|67890"},
		},
		Passengers: []dto.BookingPassenger{
			{Name: "John", Surname: "Doe", BirthDate: "1990-01-15"},
		},
		Phone: "+420776000000",
		Email: "john@example.com",
	}
}

func TestBookingUseCase_CreateOrder(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockClient := &MockBusSystemRepository{}
		mockOrders := &MockOrderRepository{}
		mockTickets := &MockTicketRepository{}

		providerResp := repository.Response{
			"order_id":    json.Number("1044444"),
			"security":    "133918",
			"status":      "reserve",
			"price_total": "99.90",
			"currency":    "EUR",
			"lock_min":    "30",
		}

		mockClient.On("CreateOrder", ctx, mock.AnythingOfType("*domain.BookingData")).
			Return(providerResp, nil)
		mockOrders.On("Create", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

		uc := usecase.NewBookingUseCase(mockClient, mockOrders, mockTickets, logger, bookingDefaults())

		result, err := uc.CreateOrder(ctx, validCreateOrderRequest())
		require.NoError(t, err)
		require.NotNil(t, result.Order)

		assert.Equal(t, int64(1044444), result.Order.OrderID)
		assert.Equal(t, "133918", result.Order.SecurityCode)
		assert.Equal(t, domain.StatusReserve, result.Order.Status)
		assert.True(t, result.Order.PriceTotal.Valid)
		assert.InDelta(t, 99.90, result.Order.PriceTotal.Float64, 0.001)
		assert.True(t, result.Order.ReservationUntil.Valid)
		assert.Len(t, result.Order.Reference, 36)
		assert.Equal(t, 1, result.Order.PassengerCount)
		assert.Equal(t, 1, result.Order.RouteCount)

		mockClient.AssertExpectations(t)
		mockOrders.AssertExpectations(t)
	})

	t.Run("validation violations block provider call", func(t *testing.T) {
		mockClient := &MockBusSystemRepository{}
		mockOrders := &MockOrderRepository{}
		mockTickets := &MockTicketRepository{}

		uc := usecase.NewBookingUseCase(mockClient, mockOrders, mockTickets, logger, bookingDefaults())

		req := validCreateOrderRequest()
		req.Phone = ""

		_, err := uc.CreateOrder(ctx, req)
		require.Error(t, err)

		appErr, ok := err.(*errors.AppError)
		require.True(t, ok)
		assert.Equal(t, "BOOKING_INVALID", appErr.Code)
		assert.Equal(t, 422, appErr.StatusCode)
		assert.Contains(t, appErr.Details["violations"], "Phone number is required")

		mockClient.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("provider error propagated", func(t *testing.T) {
		mockClient := &MockBusSystemRepository{}
		mockOrders := &MockOrderRepository{}
		mockTickets := &MockTicketRepository{}

		provErr := errors.FromProviderCode("new_order", "Failed to create order")
		mockClient.On("CreateOrder", ctx, mock.Anything).Return(nil, provErr)

		uc := usecase.NewBookingUseCase(mockClient, mockOrders, mockTickets, logger, bookingDefaults())

		_, err := uc.CreateOrder(ctx, validCreateOrderRequest())
		assert.Equal(t, provErr, err)
		mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestBookingUseCase_Buy(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("persists issued tickets", func(t *testing.T) {
		mockClient := &MockBusSystemRepository{}
		mockOrders := &MockOrderRepository{}
		mockTickets := &MockTicketRepository{}

		order := &domain.Order{OrderID: 1044444, Status: domain.StatusReserveOK, Currency: "EUR"}
		mockOrders.On("GetByOrderID", ctx, int64(1044444)).Return(order, nil)

		providerResp := repository.Response{
			"order_id":    json.Number("1044444"),
			"price_total": "99.90",
			"item": []interface{}{
				map[string]interface{}{
					"ticket_id": json.Number("21011"),
					"security":  "761899",
					"price":     "49.95",
					"name":      "John",
					"surname":   "Doe",
					"link":      "https://test-api.bussystem.eu/viev/frame_ticket.php?ticket_id=21011",
				},
				map[string]interface{}{
					"ticket_id": json.Number("21012"),
					"security":  "761900",
					"price":     "49.95",
					"name":      "Jane",
					"surname":   "Doe",
				},
			},
		}
		mockClient.On("BuyTickets", ctx, int64(1044444), "en").Return(providerResp, nil)
		mockOrders.On("UpdateStatus", ctx, int64(1044444), domain.StatusBuy, mock.Anything).Return(nil)
		mockTickets.On("CreateBatch", ctx, mock.AnythingOfType("[]*domain.Ticket")).Return(nil)

		uc := usecase.NewBookingUseCase(mockClient, mockOrders, mockTickets, logger, bookingDefaults())

		result, err := uc.Buy(ctx, 1044444, "")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusBuy, result.Order.Status)
		require.Len(t, result.Tickets, 2)
		assert.Equal(t, int64(21011), result.Tickets[0].TicketID)
		assert.Equal(t, "John", result.Tickets[0].PassengerName)
		assert.True(t, result.Tickets[0].PDFLink.Valid)
		assert.False(t, result.Tickets[1].PDFLink.Valid)
		assert.Equal(t, "EUR", result.Tickets[0].Currency)

		mockTickets.AssertExpectations(t)
	})

	t.Run("single ticket object response", func(t *testing.T) {
		mockClient := &MockBusSystemRepository{}
		mockOrders := &MockOrderRepository{}
		mockTickets := &MockTicketRepository{}

		order := &domain.Order{OrderID: 1044445, Status: domain.StatusReserveOK, Currency: "EUR"}
		mockOrders.On("GetByOrderID", ctx, int64(1044445)).Return(order, nil)

		providerResp := repository.Response{
			"item": map[string]interface{}{
				"ticket_id": json.Number("21013"),
				"security":  "761901",
			},
		}
		mockClient.On("BuyTickets", ctx, int64(1044445), "en").Return(providerResp, nil)
		mockOrders.On("UpdateStatus", ctx, int64(1044445), domain.StatusBuy, mock.Anything).Return(nil)
		mockTickets.On("CreateBatch", ctx, mock.Anything).Return(nil)

		uc := usecase.NewBookingUseCase(mockClient, mockOrders, mockTickets, logger, bookingDefaults())

		result, err := uc.Buy(ctx, 1044445, "")
		require.NoError(t, err)
		require.Len(t, result.Tickets, 1)
		assert.Equal(t, int64(21013), result.Tickets[0].TicketID)
	})

	t.Run("unknown order", func(t *testing.T) {
		mockClient := &MockBusSystemRepository{}
		mockOrders := &MockOrderRepository{}
		mockTickets := &MockTicketRepository{}

		mockOrders.On("GetByOrderID", ctx, int64(999)).Return(nil, errors.ErrOrderNotFound)

		uc := usecase.NewBookingUseCase(mockClient, mockOrders, mockTickets, logger, bookingDefaults())

		_, err := uc.Buy(ctx, 999, "")
		assert.Equal(t, errors.ErrOrderNotFound, err)
		mockClient.AssertNotCalled(t, "BuyTickets", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingUseCase_Reserve(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	mockClient := &MockBusSystemRepository{}
	mockOrders := &MockOrderRepository{}
	mockTickets := &MockTicketRepository{}

	order := &domain.Order{OrderID: 1044444, Status: domain.StatusReserve}
	mockOrders.On("GetByOrderID", ctx, int64(1044444)).Return(order, nil)
	mockClient.On("ReserveTickets", ctx, int64(1044444), mock.Anything).
		Return(repository.Response{"reserve_ok": "1"}, nil)
	mockOrders.On("UpdateStatus", ctx, int64(1044444), domain.StatusReserveOK, mock.Anything).Return(nil)

	uc := usecase.NewBookingUseCase(mockClient, mockOrders, mockTickets, logger, bookingDefaults())

	result, err := uc.Reserve(ctx, 1044444, "+420776000000")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReserveOK, result.Order.Status)
}

func TestBookingUseCase_Cancel(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("whole order cancels every ticket", func(t *testing.T) {
		mockClient := &MockBusSystemRepository{}
		mockOrders := &MockOrderRepository{}
		mockTickets := &MockTicketRepository{}

		order := &domain.Order{OrderID: 1044444, Status: domain.StatusBuy}
		tickets := []*domain.Ticket{
			{TicketID: 21011, Status: domain.StatusBuy},
			{TicketID: 21012, Status: domain.StatusBuy},
		}

		mockOrders.On("GetByOrderID", ctx, int64(1044444)).Return(order, nil)
		mockClient.On("CancelTickets", ctx, mock.Anything).
			Return(repository.Response{"cancel_order": "1", "money_back_total": "99.90"}, nil)
		mockOrders.On("UpdateStatus", ctx, int64(1044444), domain.StatusCancel, mock.Anything).Return(nil)
		mockTickets.On("ListByOrder", ctx, int64(1044444)).Return(tickets, nil)
		mockTickets.On("UpdateStatus", ctx, int64(21011), domain.StatusCancel, mock.Anything).Return(nil)
		mockTickets.On("UpdateStatus", ctx, int64(21012), domain.StatusCancel, mock.Anything).Return(nil)

		uc := usecase.NewBookingUseCase(mockClient, mockOrders, mockTickets, logger, bookingDefaults())

		result, err := uc.Cancel(ctx, 1044444, dto.CancelRequest{})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancel, result.Order.Status)
		mockTickets.AssertExpectations(t)
	})

	t.Run("single ticket leaves order status alone", func(t *testing.T) {
		mockClient := &MockBusSystemRepository{}
		mockOrders := &MockOrderRepository{}
		mockTickets := &MockTicketRepository{}

		ticketID := int64(21011)
		order := &domain.Order{OrderID: 1044444, Status: domain.StatusBuy}

		mockOrders.On("GetByOrderID", ctx, int64(1044444)).Return(order, nil)
		mockClient.On("CancelTickets", ctx, mock.Anything).
			Return(repository.Response{"cancel_ticket": "1"}, nil)
		mockTickets.On("UpdateStatus", ctx, ticketID, domain.StatusCancel, mock.Anything).Return(nil)

		uc := usecase.NewBookingUseCase(mockClient, mockOrders, mockTickets, logger, bookingDefaults())

		result, err := uc.Cancel(ctx, 1044444, dto.CancelRequest{TicketID: &ticketID})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusBuy, result.Order.Status)
		mockOrders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestBookingUseCase_ValidateSMS(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	mockClient := &MockBusSystemRepository{}
	mockOrders := &MockOrderRepository{}
	mockTickets := &MockTicketRepository{}

	mockClient.On("ValidateSMS", ctx, mock.Anything).
		Return(repository.Response{"validation_id": "555"}, nil)

	uc := usecase.NewBookingUseCase(mockClient, mockOrders, mockTickets, logger, bookingDefaults())

	result, err := uc.ValidateSMS(ctx, dto.SMSValidationRequest{Phone: "+420776000000", SendSMS: true})
	require.NoError(t, err)
	assert.Equal(t, "555", result["validation_id"])
}
