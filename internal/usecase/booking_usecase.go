package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/bussystem-service/internal/domain"
	"github.com/bussystem-service/internal/domain/repository"
	"github.com/bussystem-service/internal/pkg/errors"
	"github.com/bussystem-service/internal/usecase/dto"
)

// BookingUseCase - жизненный цикл заказа: создание, резервирование,
// покупка, отмена. Провайдер не предоставляет распределенных транзакций,
// поэтому каждая операция - одиночный вызов, а локальное состояние
// обновляется по факту ответа.
type BookingUseCase struct {
	client   repository.BusSystemRepository
	orders   repository.OrderRepository
	tickets  repository.TicketRepository
	logger   *zap.Logger
	defaults domain.Defaults
}

func NewBookingUseCase(
	client repository.BusSystemRepository,
	orders repository.OrderRepository,
	tickets repository.TicketRepository,
	logger *zap.Logger,
	defaults domain.Defaults,
) *BookingUseCase {
	return &BookingUseCase{
		client:   client,
		orders:   orders,
		tickets:  tickets,
		logger:   logger,
		defaults: defaults,
	}
}

// CreateOrder собирает BookingData из запроса, прогоняет предварительную
// проверку и создает заказ у провайдера. Нарушения проверки возвращаются
// как ошибка с деталями, запрос к провайдеру при этом не выполняется.
func (uc *BookingUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	booking := uc.buildBookingData(req)

	if violations := booking.Validate(); len(violations) > 0 {
		return nil, errors.New("BOOKING_INVALID", "Booking data failed validation", 422).
			WithDetails(map[string]interface{}{"violations": violations})
	}

	resp, err := uc.client.CreateOrder(ctx, booking)
	if err != nil {
		uc.logger.Error("Failed to create order at provider", zap.Error(err))
		return nil, err
	}

	order := uc.orderFromResponse(resp, booking)
	if err := uc.orders.Create(ctx, order); err != nil {
		// Заказ у провайдера уже существует - логируем и возвращаем его,
		// локальную запись можно восстановить повторной синхронизацией
		uc.logger.Error("Order created at provider but not persisted locally",
			zap.Int64("order_id", order.OrderID), zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Order created",
		zap.Int64("order_id", order.OrderID),
		zap.String("reference", order.Reference),
		zap.String("status", order.Status))

	return &dto.OrderResponse{Order: order}, nil
}

// Reserve резервирует билеты созданного заказа
func (uc *BookingUseCase) Reserve(ctx context.Context, orderID int64, phone string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	if phone != "" {
		params.Set("phone", phone)
	}

	resp, err := uc.client.ReserveTickets(ctx, orderID, params)
	if err != nil {
		uc.logger.Error("Failed to reserve tickets",
			zap.Int64("order_id", orderID), zap.Error(err))
		return nil, err
	}

	raw, _ := json.Marshal(resp)
	if err := uc.orders.UpdateStatus(ctx, orderID, domain.StatusReserveOK, raw); err != nil {
		return nil, err
	}
	order.Status = domain.StatusReserveOK

	return &dto.OrderResponse{Order: order}, nil
}

// Buy выкупает заказ и сохраняет выданные провайдером билеты
func (uc *BookingUseCase) Buy(ctx context.Context, orderID int64, language string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if language == "" {
		language = uc.defaults.Language
	}

	resp, err := uc.client.BuyTickets(ctx, orderID, language)
	if err != nil {
		uc.logger.Error("Failed to buy tickets",
			zap.Int64("order_id", orderID), zap.Error(err))
		return nil, err
	}

	raw, _ := json.Marshal(resp)
	if err := uc.orders.UpdateStatus(ctx, orderID, domain.StatusBuy, raw); err != nil {
		return nil, err
	}
	order.Status = domain.StatusBuy

	tickets := uc.ticketsFromResponse(resp, order)
	if len(tickets) > 0 {
		if err := uc.tickets.CreateBatch(ctx, tickets); err != nil {
			uc.logger.Error("Tickets bought but not persisted locally",
				zap.Int64("order_id", orderID), zap.Error(err))
			return nil, err
		}
	}

	uc.logger.Info("Order bought",
		zap.Int64("order_id", orderID),
		zap.Int("tickets", len(tickets)))

	return &dto.OrderResponse{Order: order, Tickets: tickets}, nil
}

// Cancel отменяет заказ целиком или отдельный билет
func (uc *BookingUseCase) Cancel(ctx context.Context, orderID int64, req dto.CancelRequest) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = uc.defaults.Language
	}

	params := url.Values{}
	params.Set("order_id", strconv.FormatInt(orderID, 10))
	params.Set("lang", language)
	if req.TicketID != nil {
		params.Set("ticket_id", strconv.FormatInt(*req.TicketID, 10))
	}

	resp, err := uc.client.CancelTickets(ctx, params)
	if err != nil {
		uc.logger.Error("Failed to cancel",
			zap.Int64("order_id", orderID), zap.Error(err))
		return nil, err
	}

	raw, _ := json.Marshal(resp)

	if req.TicketID != nil {
		if err := uc.tickets.UpdateStatus(ctx, *req.TicketID, domain.StatusCancel, raw); err != nil {
			return nil, err
		}
		return &dto.OrderResponse{Order: order}, nil
	}

	if err := uc.orders.UpdateStatus(ctx, orderID, domain.StatusCancel, raw); err != nil {
		return nil, err
	}
	order.Status = domain.StatusCancel

	tickets, err := uc.tickets.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	for _, ticket := range tickets {
		if err := uc.tickets.UpdateStatus(ctx, ticket.TicketID, domain.StatusCancel, nil); err != nil {
			return nil, err
		}
		ticket.Status = domain.StatusCancel
	}

	return &dto.OrderResponse{Order: order, Tickets: tickets}, nil
}

// ValidateReservation проверяет, доступно ли резервирование для телефона
func (uc *BookingUseCase) ValidateReservation(ctx context.Context, req dto.ReserveValidationRequest) (repository.Response, error) {
	language := req.Language
	if language == "" {
		language = uc.defaults.Language
	}
	return uc.client.ValidateReservation(ctx, req.Phone, language)
}

// ValidateSMS отправляет или проверяет SMS-код подтверждения
func (uc *BookingUseCase) ValidateSMS(ctx context.Context, req dto.SMSValidationRequest) (repository.Response, error) {
	params := url.Values{}
	params.Set("phone", req.Phone)
	if req.SendSMS {
		params.Set("send_sms", "1")
	}
	if req.Code != "" {
		params.Set("validation_code", req.Code)
	}
	language := req.Language
	if language == "" {
		language = uc.defaults.Language
	}
	params.Set("lang", language)

	return uc.client.ValidateSMS(ctx, params)
}

func (uc *BookingUseCase) buildBookingData(req dto.CreateOrderRequest) *domain.BookingData {
	booking := domain.NewBookingData(uc.defaults)

	if req.Currency != "" {
		booking.SetCurrency(req.Currency)
	}
	if req.Language != "" {
		booking.SetLanguage(req.Language)
	}
	booking.AlignOptionalFields(req.AlignedOutput)

	for _, route := range req.Routes {
		if route.StationFromID != nil && route.StationToID != nil {
			booking.AddRouteWithStations(route.Date, route.IntervalID, *route.StationFromID, *route.StationToID)
		} else {
			booking.AddRoute(route.Date, route.IntervalID)
		}
	}

	for _, p := range req.Passengers {
		booking.AddPassenger(domain.Passenger{
			Name:          p.Name,
			Surname:       p.Surname,
			BirthDate:     p.BirthDate,
			DocType:       p.DocType,
			DocNumber:     p.DocNumber,
			Gender:        p.Gender,
			MiddleName:    p.MiddleName,
			Citizenship:   p.Citizenship,
			DocExpireDate: p.DocExpireDate,
		})
	}

	for _, s := range req.Seats {
		booking.AddSeats(s.RouteIndex, s.Seats)
	}
	for _, d := range req.Discounts {
		booking.AddDiscount(d.RouteIndex, d.PassengerIndex, d.DiscountID)
	}
	for _, b := range req.Baggage {
		booking.AddBaggage(b.RouteIndex, b.PassengerIndex, b.BaggageIDs)
	}
	for _, w := range req.Wagons {
		booking.AddWagon(w.RouteIndex, w.WagonID)
	}

	booking.SetContactInfo(req.Phone, req.Email, req.Phone2)
	if req.Info != "" {
		booking.SetAdditionalInfo(req.Info)
	}
	if req.Promocode != "" {
		booking.SetPromocode(req.Promocode)
	}

	return booking
}

// orderFromResponse переносит поля ответа new_order в локальную запись.
// Исходный ответ сохраняется целиком.
func (uc *BookingUseCase) orderFromResponse(resp repository.Response, booking *domain.BookingData) *domain.Order {
	raw, _ := json.Marshal(resp)

	order := &domain.Order{
		OrderID:        cast.ToInt64(resp["order_id"]),
		Reference:      uuid.NewString(),
		SecurityCode:   cast.ToString(resp["security"]),
		Status:         domain.StatusReserve,
		Currency:       uc.defaults.Currency,
		PassengerCount: booking.PassengerCount(),
		RouteCount:     booking.RouteCount(),
		RawResponse:    raw,
	}

	if status := cast.ToString(resp["status"]); status != "" {
		order.Status = status
	}
	if currency := cast.ToString(resp["currency"]); currency != "" {
		order.Currency = currency
	}
	if price := cast.ToFloat64(resp["price_total"]); price > 0 {
		order.PriceTotal = sql.NullFloat64{Float64: price, Valid: true}
	}
	if phone := cast.ToString(resp["phone"]); phone != "" {
		order.Phone = sql.NullString{String: phone, Valid: true}
	}
	if email := cast.ToString(resp["email"]); email != "" {
		order.Email = sql.NullString{String: email, Valid: true}
	}
	if promocode := cast.ToString(resp["promocode_name"]); promocode != "" {
		order.Promocode = sql.NullString{String: promocode, Valid: true}
	}

	// Окно резервирования: либо явная метка, либо lock_min в минутах
	if until := cast.ToString(resp["reservation_until"]); until != "" {
		if t, err := time.Parse("2006-01-02 15:04:05", until); err == nil {
			order.ReservationUntil = sql.NullTime{Time: t, Valid: true}
		}
	} else if lockMin := cast.ToInt(resp["lock_min"]); lockMin > 0 {
		order.ReservationUntil = sql.NullTime{
			Time:  time.Now().Add(time.Duration(lockMin) * time.Minute),
			Valid: true,
		}
	}

	return order
}

// ticketsFromResponse извлекает билеты из ответа buy_ticket.
// Провайдер возвращает их в массиве item.
func (uc *BookingUseCase) ticketsFromResponse(resp repository.Response, order *domain.Order) []*domain.Ticket {
	items, ok := resp["item"].([]interface{})
	if !ok {
		// Одиночный билет приходит объектом, а не массивом
		if item, ok := resp["item"].(map[string]interface{}); ok {
			items = []interface{}{item}
		} else {
			return nil
		}
	}

	tickets := make([]*domain.Ticket, 0, len(items))
	for _, entry := range items {
		item, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}

		raw, _ := json.Marshal(item)
		ticket := &domain.Ticket{
			OrderID:      order.OrderID,
			TicketID:     cast.ToInt64(item["ticket_id"]),
			SecurityCode: cast.ToString(item["security"]),
			Currency:     order.Currency,
			Status:       domain.StatusBuy,
			RawResponse:  raw,
		}

		if txn := cast.ToInt64(item["transaction_id"]); txn > 0 {
			ticket.TransactionID = sql.NullInt64{Int64: txn, Valid: true}
		}
		ticket.PassengerName = cast.ToString(item["name"])
		ticket.PassengerSurname = cast.ToString(item["surname"])
		if middle := cast.ToString(item["middlename"]); middle != "" {
			ticket.PassengerMiddle = sql.NullString{String: middle, Valid: true}
		}
		if birth := cast.ToString(item["birth_date"]); birth != "" {
			if t, err := time.Parse("2006-01-02", birth); err == nil {
				ticket.PassengerBirthDate = sql.NullTime{Time: t, Valid: true}
			}
		}
		if docType := cast.ToInt64(item["doc_type"]); docType > 0 {
			ticket.PassengerDocType = sql.NullInt64{Int64: docType, Valid: true}
		}
		if docNumber := cast.ToString(item["doc_number"]); docNumber != "" {
			ticket.PassengerDocNumber = sql.NullString{String: docNumber, Valid: true}
		}
		if gender := cast.ToString(item["gender"]); gender != "" {
			ticket.PassengerGender = sql.NullString{String: gender, Valid: true}
		}
		if seat := cast.ToString(item["seat"]); seat != "" {
			ticket.SeatNumber = sql.NullString{String: seat, Valid: true}
		}
		if price := cast.ToFloat64(item["price"]); price > 0 {
			ticket.Price = sql.NullFloat64{Float64: price, Valid: true}
		}
		if provision := cast.ToFloat64(item["provision"]); provision > 0 {
			ticket.Provision = sql.NullFloat64{Float64: provision, Valid: true}
		}
		if from := cast.ToString(item["point_from"]); from != "" {
			ticket.RouteFrom = sql.NullString{String: from, Valid: true}
		}
		if to := cast.ToString(item["point_to"]); to != "" {
			ticket.RouteTo = sql.NullString{String: to, Valid: true}
		}
		if date := cast.ToString(item["date_from"]); date != "" {
			if t, err := time.Parse("2006-01-02", date); err == nil {
				ticket.DepartureDate = sql.NullTime{Time: t, Valid: true}
			}
		}
		if t := cast.ToString(item["time_from"]); t != "" {
			ticket.DepartureTime = sql.NullString{String: t, Valid: true}
		}
		if date := cast.ToString(item["date_to"]); date != "" {
			if t, err := time.Parse("2006-01-02", date); err == nil {
				ticket.ArrivalDate = sql.NullTime{Time: t, Valid: true}
			}
		}
		if t := cast.ToString(item["time_to"]); t != "" {
			ticket.ArrivalTime = sql.NullString{String: t, Valid: true}
		}
		if carrier := cast.ToString(item["carrier"]); carrier != "" {
			ticket.Carrier = sql.NullString{String: carrier, Valid: true}
		}
		if link := cast.ToString(item["link"]); link != "" {
			ticket.PDFLink = sql.NullString{String: link, Valid: true}
		}

		tickets = append(tickets, ticket)
	}

	return tickets
}
