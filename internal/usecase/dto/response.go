package dto

import "github.com/bussystem-service/internal/domain"

// OrderResponse - заказ вместе с его билетами
type OrderResponse struct {
	Order   *domain.Order    `json:"order"`
	Tickets []*domain.Ticket `json:"tickets,omitempty"`
}

// ViolationsResponse - нарушения, найденные предварительной проверкой бронирования
type ViolationsResponse struct {
	Violations []string `json:"violations"`
}
