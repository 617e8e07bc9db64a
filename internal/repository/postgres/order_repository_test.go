package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bussystem-service/internal/domain"
	"github.com/bussystem-service/internal/pkg/errors"
)

var orderColumns = []string{
	"id", "order_id", "reference", "security_code", "status", "price_total",
	"currency", "passenger_count", "route_count", "phone", "email", "promocode",
	"reservation_until", "api_response", "created_at", "updated_at", "deleted_at",
}

func newMockRepo(t *testing.T) (*orderRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger, _ := zap.NewDevelopment()
	return &orderRepository{
		db:     sqlx.NewDb(db, "sqlmock"),
		logger: logger,
	}, mock
}

func orderRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(orderColumns).AddRow(
		1, int64(1044444), "2f9c1f7e-1111-2222-3333-444455556666", "133918",
		domain.StatusReserve, 123.45, "EUR", 2, 1,
		"+420776000000", "john@example.com", nil,
		now.Add(30*time.Minute), []byte(`{"order_id":1044444}`), now, now, nil,
	)
}

func TestOrderRepository_GetByOrderID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT \*\s+FROM bussystem_orders\s+WHERE order_id = \$1 AND deleted_at IS NULL`).
			WithArgs(int64(1044444)).
			WillReturnRows(orderRow())

		order, err := repo.GetByOrderID(context.Background(), 1044444)
		require.NoError(t, err)
		assert.Equal(t, int64(1044444), order.OrderID)
		assert.Equal(t, "133918", order.SecurityCode)
		assert.Equal(t, domain.StatusReserve, order.Status)
		assert.True(t, order.PriceTotal.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT \*\s+FROM bussystem_orders\s+WHERE order_id = \$1 AND deleted_at IS NULL`).
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows(orderColumns))

		_, err := repo.GetByOrderID(context.Background(), 999)
		assert.Equal(t, errors.ErrOrderNotFound, err)
	})
}

func TestOrderRepository_GetByReference(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \*\s+FROM bussystem_orders\s+WHERE reference = \$1 AND deleted_at IS NULL`).
		WithArgs("2f9c1f7e-1111-2222-3333-444455556666").
		WillReturnRows(orderRow())

	order, err := repo.GetByReference(context.Background(), "2f9c1f7e-1111-2222-3333-444455556666")
	require.NoError(t, err)
	assert.Equal(t, int64(1044444), order.OrderID)
}

func TestOrderRepository_ListByStatuses(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \*\s+FROM bussystem_orders\s+WHERE status = ANY\(\$1\) AND deleted_at IS NULL`).
		WillReturnRows(orderRow())

	orders, err := repo.ListByStatuses(context.Background(), []string{domain.StatusReserve}, 100)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, domain.StatusReserve, orders[0].Status)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`UPDATE bussystem_orders\s+SET status = \$2`).
			WithArgs(int64(1044444), domain.StatusBuy, []byte(`{}`)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), 1044444, domain.StatusBuy, []byte(`{}`))
		assert.NoError(t, err)
	})

	t.Run("missing order", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`UPDATE bussystem_orders\s+SET status = \$2`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), 999, domain.StatusBuy, nil)
		assert.Equal(t, errors.ErrOrderNotFound, err)
	})
}

func TestOrderRepository_SoftDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bussystem_orders\s+SET deleted_at = now\(\)`).
		WithArgs(int64(1044444)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SoftDelete(context.Background(), 1044444)
	assert.NoError(t, err)
}
