package dto

// SearchRoutesRequest - параметры поиска маршрутов
type SearchRoutesRequest struct {
	Date           string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Transport      string `json:"transport" validate:"omitempty,oneof=all bus train air"`
	FromCityID     *int64 `json:"from_city_id"`
	ToCityID       *int64 `json:"to_city_id"`
	TrainFromID    *int64 `json:"train_from_id"`
	TrainToID      *int64 `json:"train_to_id"`
	AirportFrom    string `json:"airport_from" validate:"omitempty,iata"`
	AirportTo      string `json:"airport_to" validate:"omitempty,iata"`
	StationFromID  *int64 `json:"station_from_id"`
	StationToID    *int64 `json:"station_to_id"`
	Currency       string `json:"currency" validate:"omitempty,len=3"`
	Language       string `json:"language" validate:"omitempty,len=2"`
	Change         string `json:"change"`
	Period         int    `json:"period"`
	SortBy         string `json:"sort_by"`
	IncludeSoldOut bool   `json:"include_sold_out"`
	Adults         int    `json:"adults" validate:"omitempty,min=0"`
	Children       int    `json:"children" validate:"omitempty,min=0"`
	Infants        int    `json:"infants" validate:"omitempty,min=0"`
}

// BookingRoute - один сегмент бронирования
type BookingRoute struct {
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	IntervalID    string `json:"interval_id" validate:"required"`
	StationFromID *int64 `json:"station_from_id"`
	StationToID   *int64 `json:"station_to_id"`
}

// BookingPassenger - один пассажир бронирования
type BookingPassenger struct {
	Name          string `json:"name" validate:"required"`
	Surname       string `json:"surname" validate:"required"`
	BirthDate     string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	DocType       int    `json:"doc_type"`
	DocNumber     string `json:"doc_number"`
	Gender        string `json:"gender" validate:"omitempty,oneof=M F"`
	MiddleName    string `json:"middle_name"`
	Citizenship   string `json:"citizenship"`
	DocExpireDate string `json:"doc_expire_date" validate:"omitempty,datetime=2006-01-02"`
}

// SeatSelection - места для сегмента
type SeatSelection struct {
	RouteIndex int      `json:"route_index" validate:"min=0"`
	Seats      []string `json:"seats" validate:"required,min=1"`
}

// DiscountSelection - скидка для пары (сегмент, пассажир)
type DiscountSelection struct {
	RouteIndex     int    `json:"route_index" validate:"min=0"`
	PassengerIndex int    `json:"passenger_index" validate:"min=0"`
	DiscountID     string `json:"discount_id" validate:"required"`
}

// BaggageSelection - багаж для пары (сегмент, пассажир)
type BaggageSelection struct {
	RouteIndex     int      `json:"route_index" validate:"min=0"`
	PassengerIndex int      `json:"passenger_index" validate:"min=0"`
	BaggageIDs     []string `json:"baggage_ids" validate:"required,min=1"`
}

// WagonSelection - вагон для железнодорожного сегмента
type WagonSelection struct {
	RouteIndex int    `json:"route_index" validate:"min=0"`
	WagonID    string `json:"wagon_id" validate:"required"`
}

// CreateOrderRequest - запрос на создание заказа
type CreateOrderRequest struct {
	Currency       string              `json:"currency" validate:"omitempty,len=3"`
	Language       string              `json:"language" validate:"omitempty,len=2"`
	Routes         []BookingRoute      `json:"routes" validate:"required,min=1,dive"`
	Passengers     []BookingPassenger  `json:"passengers" validate:"required,min=1,dive"`
	Seats          []SeatSelection     `json:"seats" validate:"omitempty,dive"`
	Discounts      []DiscountSelection `json:"discounts" validate:"omitempty,dive"`
	Baggage        []BaggageSelection  `json:"baggage" validate:"omitempty,dive"`
	Wagons         []WagonSelection    `json:"wagons" validate:"omitempty,dive"`
	Phone          string              `json:"phone" validate:"required"`
	Phone2         string              `json:"phone2"`
	Email          string              `json:"email" validate:"omitempty,email"`
	Info           string              `json:"info"`
	Promocode      string              `json:"promocode"`
	AlignedOutput  bool                `json:"aligned_output"`
}

// CancelRequest - отмена заказа или отдельного билета
type CancelRequest struct {
	TicketID *int64 `json:"ticket_id"`
	Language string `json:"language" validate:"omitempty,len=2"`
}

// SMSValidationRequest - подтверждение резервирования кодом из SMS
type SMSValidationRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Code     string `json:"code"`
	SendSMS  bool   `json:"send_sms"`
	Language string `json:"language" validate:"omitempty,len=2"`
}

// ReserveValidationRequest - проверка возможности резервирования по телефону
type ReserveValidationRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Language string `json:"language" validate:"omitempty,len=2"`
}
