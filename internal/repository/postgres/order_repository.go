package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bussystem-service/internal/domain"
	"github.com/bussystem-service/internal/domain/repository"
	"github.com/bussystem-service/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type orderRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewOrderRepository(db *DB) repository.OrderRepository {
	return &orderRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO bussystem_orders (
			order_id, reference, security_code, status, price_total, currency,
			passenger_count, route_count, phone, email, promocode,
			reservation_until, api_response, created_at, updated_at
		) VALUES (
			:order_id, :reference, :security_code, :status, :price_total, :currency,
			:passenger_count, :route_count, :phone, :email, :promocode,
			:reservation_until, :api_response, now(), now()
		)
		RETURNING id, created_at, updated_at
	`

	rows, err := r.db.NamedQueryContext(ctx, query, order)
	if err != nil {
		r.logger.Error("Failed to create order",
			zap.Int64("order_id", order.OrderID), zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
			r.logger.Error("Failed to scan created order", zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	return nil
}

func (r *orderRepository) GetByOrderID(ctx context.Context, orderID int64) (*domain.Order, error) {
	query := `
		SELECT *
		FROM bussystem_orders
		WHERE order_id = $1 AND deleted_at IS NULL
	`

	var order domain.Order
	err := r.db.GetContext(ctx, &order, query, orderID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrOrderNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get order", zap.Int64("order_id", orderID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &order, nil
}

func (r *orderRepository) GetByReference(ctx context.Context, reference string) (*domain.Order, error) {
	query := `
		SELECT *
		FROM bussystem_orders
		WHERE reference = $1 AND deleted_at IS NULL
	`

	var order domain.Order
	err := r.db.GetContext(ctx, &order, query, reference)
	if err == sql.ErrNoRows {
		return nil, errors.ErrOrderNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get order by reference", zap.String("reference", reference), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &order, nil
}

func (r *orderRepository) ListByStatuses(ctx context.Context, statuses []string, limit int) ([]*domain.Order, error) {
	query := `
		SELECT *
		FROM bussystem_orders
		WHERE status = ANY($1) AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $2
	`

	var orders []*domain.Order
	err := r.db.SelectContext(ctx, &orders, query, pq.Array(statuses), limit)
	if err != nil {
		r.logger.Error("Failed to list orders by statuses", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return orders, nil
}

// ListExpired возвращает неоплаченные заказы с истекшим окном резервирования
func (r *orderRepository) ListExpired(ctx context.Context, before time.Time, limit int) ([]*domain.Order, error) {
	query := `
		SELECT *
		FROM bussystem_orders
		WHERE status = ANY($1)
		  AND reservation_until IS NOT NULL
		  AND reservation_until < $2
		  AND deleted_at IS NULL
		ORDER BY reservation_until
		LIMIT $3
	`

	var orders []*domain.Order
	err := r.db.SelectContext(ctx, &orders, query,
		pq.Array([]string{domain.StatusReserve, domain.StatusReserveOK}), before, limit)
	if err != nil {
		r.logger.Error("Failed to list expired orders", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status string, rawResponse []byte) error {
	query := `
		UPDATE bussystem_orders
		SET status = $2,
		    api_response = COALESCE($3, api_response),
		    updated_at = now()
		WHERE order_id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, orderID, status, rawResponse)
	if err != nil {
		r.logger.Error("Failed to update order status",
			zap.Int64("order_id", orderID), zap.String("status", status), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrOrderNotFound
	}

	return nil
}

// SoftDelete помечает заказ удаленным; билеты остаются связанными с ним
// и отфильтровываются вместе с заказом.
func (r *orderRepository) SoftDelete(ctx context.Context, orderID int64) error {
	query := `
		UPDATE bussystem_orders
		SET deleted_at = now(), updated_at = now()
		WHERE order_id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, orderID)
	if err != nil {
		r.logger.Error("Failed to soft delete order", zap.Int64("order_id", orderID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrOrderNotFound
	}

	return nil
}
