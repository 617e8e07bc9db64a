package domain

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Статусы заказов и билетов BusSystem
const (
	StatusReserve   = "reserve"
	StatusReserveOK = "reserve_ok"
	StatusBuy       = "buy"
	StatusCancel    = "cancel"
)

// Order - локальное отражение заказа, созданного у провайдера.
// RawResponse хранит исходный ответ API без изменений для аудита.
type Order struct {
	ID               int64           `db:"id" json:"id"`
	OrderID          int64           `db:"order_id" json:"order_id"`
	Reference        string          `db:"reference" json:"reference"`
	SecurityCode     string          `db:"security_code" json:"-"`
	Status           string          `db:"status" json:"status"`
	PriceTotal       sql.NullFloat64 `db:"price_total" json:"price_total,omitempty"`
	Currency         string          `db:"currency" json:"currency"`
	PassengerCount   int             `db:"passenger_count" json:"passenger_count"`
	RouteCount       int             `db:"route_count" json:"route_count"`
	Phone            sql.NullString  `db:"phone" json:"phone,omitempty"`
	Email            sql.NullString  `db:"email" json:"email,omitempty"`
	Promocode        sql.NullString  `db:"promocode" json:"promocode,omitempty"`
	ReservationUntil sql.NullTime    `db:"reservation_until" json:"reservation_until,omitempty"`
	RawResponse      json.RawMessage `db:"api_response" json:"-"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
	DeletedAt        sql.NullTime    `db:"deleted_at" json:"-"`
}

func (o *Order) IsReserved() bool {
	return o.Status == StatusReserve || o.Status == StatusReserveOK
}

func (o *Order) IsPaid() bool {
	return o.Status == StatusBuy
}

func (o *Order) IsCancelled() bool {
	return o.Status == StatusCancel
}

// IsExpired - истекло ли окно резервирования неоплаченного заказа
func (o *Order) IsExpired() bool {
	return o.ReservationUntil.Valid && o.ReservationUntil.Time.Before(time.Now())
}

// Ticket - локальное отражение билета провайдера. Принадлежит заказу,
// удаляется каскадно вместе с ним.
type Ticket struct {
	ID                 int64           `db:"id" json:"id"`
	OrderID            int64           `db:"order_id" json:"order_id"`
	TicketID           int64           `db:"ticket_id" json:"ticket_id"`
	TransactionID      sql.NullInt64   `db:"transaction_id" json:"transaction_id,omitempty"`
	SecurityCode       string          `db:"security_code" json:"-"`
	PassengerName      string          `db:"passenger_name" json:"passenger_name"`
	PassengerSurname   string          `db:"passenger_surname" json:"passenger_surname"`
	PassengerMiddle    sql.NullString  `db:"passenger_middlename" json:"passenger_middlename,omitempty"`
	PassengerBirthDate sql.NullTime    `db:"passenger_birth_date" json:"passenger_birth_date,omitempty"`
	PassengerDocType   sql.NullInt64   `db:"passenger_doc_type" json:"passenger_doc_type,omitempty"`
	PassengerDocNumber sql.NullString  `db:"passenger_doc_number" json:"passenger_doc_number,omitempty"`
	PassengerGender    sql.NullString  `db:"passenger_gender" json:"passenger_gender,omitempty"`
	SeatNumber         sql.NullString  `db:"seat_number" json:"seat_number,omitempty"`
	Price              sql.NullFloat64 `db:"price" json:"price,omitempty"`
	Provision          sql.NullFloat64 `db:"provision" json:"provision,omitempty"`
	Currency           string          `db:"currency" json:"currency"`
	RouteFrom          sql.NullString  `db:"route_from" json:"route_from,omitempty"`
	RouteTo            sql.NullString  `db:"route_to" json:"route_to,omitempty"`
	DepartureDate      sql.NullTime    `db:"departure_date" json:"departure_date,omitempty"`
	DepartureTime      sql.NullString  `db:"departure_time" json:"departure_time,omitempty"`
	ArrivalDate        sql.NullTime    `db:"arrival_date" json:"arrival_date,omitempty"`
	ArrivalTime        sql.NullString  `db:"arrival_time" json:"arrival_time,omitempty"`
	Carrier            sql.NullString  `db:"carrier" json:"carrier,omitempty"`
	Status             string          `db:"status" json:"status"`
	PDFLink            sql.NullString  `db:"pdf_link" json:"pdf_link,omitempty"`
	RawResponse        json.RawMessage `db:"api_response" json:"-"`
	CreatedAt          time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updated_at"`
	DeletedAt          sql.NullTime    `db:"deleted_at" json:"-"`
}

func (t *Ticket) IsReserved() bool {
	return t.Status == StatusReserve || t.Status == StatusReserveOK
}

func (t *Ticket) IsPaid() bool {
	return t.Status == StatusBuy
}

func (t *Ticket) IsCancelled() bool {
	return t.Status == StatusCancel
}

// PassengerFullName - имя пассажира одной строкой
func (t *Ticket) PassengerFullName() string {
	name := t.PassengerName + " " + t.PassengerSurname
	if t.PassengerMiddle.Valid && t.PassengerMiddle.String != "" {
		name += " " + t.PassengerMiddle.String
	}
	return name
}
