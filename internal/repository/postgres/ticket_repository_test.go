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

var ticketColumns = []string{
	"id", "order_id", "ticket_id", "transaction_id", "security_code",
	"passenger_name", "passenger_surname", "passenger_middlename",
	"passenger_birth_date", "passenger_doc_type", "passenger_doc_number",
	"passenger_gender", "seat_number", "price", "provision", "currency",
	"route_from", "route_to", "departure_date", "departure_time",
	"arrival_date", "arrival_time", "carrier", "status", "pdf_link",
	"api_response", "created_at", "updated_at", "deleted_at",
}

func newMockTicketRepo(t *testing.T) (*ticketRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger, _ := zap.NewDevelopment()
	return &ticketRepository{
		db:     sqlx.NewDb(db, "sqlmock"),
		logger: logger,
	}, mock
}

func ticketRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(ticketColumns).AddRow(
		1, int64(1044444), int64(21011), nil, "761899",
		"John", "Doe", nil,
		now.AddDate(-30, 0, 0), 1, "CZ1234567",
		"M", "11", 49.50, 4.95, "EUR",
		"Praha", "Brno", now.AddDate(0, 0, 7), "10:30:00",
		now.AddDate(0, 0, 7), "13:05:00", "RegioJet", domain.StatusBuy,
		"https://test-api.bussystem.eu/viev/frame_ticket.php?ticket_id=21011",
		[]byte(`{"ticket_id":21011}`), now, now, nil,
	)
}

func TestTicketRepository_GetByTicketID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockTicketRepo(t)

		mock.ExpectQuery(`SELECT \*\s+FROM bussystem_tickets\s+WHERE ticket_id = \$1 AND deleted_at IS NULL`).
			WithArgs(int64(21011)).
			WillReturnRows(ticketRow())

		ticket, err := repo.GetByTicketID(context.Background(), 21011)
		require.NoError(t, err)
		assert.Equal(t, int64(21011), ticket.TicketID)
		assert.Equal(t, "John Doe", ticket.PassengerFullName())
		assert.True(t, ticket.PDFLink.Valid)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockTicketRepo(t)

		mock.ExpectQuery(`SELECT \*\s+FROM bussystem_tickets\s+WHERE ticket_id = \$1 AND deleted_at IS NULL`).
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows(ticketColumns))

		_, err := repo.GetByTicketID(context.Background(), 999)
		assert.Equal(t, errors.ErrTicketNotFound, err)
	})
}

func TestTicketRepository_ListByOrder(t *testing.T) {
	repo, mock := newMockTicketRepo(t)

	mock.ExpectQuery(`SELECT \*\s+FROM bussystem_tickets\s+WHERE order_id = \$1 AND deleted_at IS NULL`).
		WithArgs(int64(1044444)).
		WillReturnRows(ticketRow())

	tickets, err := repo.ListByOrder(context.Background(), 1044444)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, int64(1044444), tickets[0].OrderID)
}

func TestTicketRepository_CreateBatch(t *testing.T) {
	t.Run("empty batch is a no-op", func(t *testing.T) {
		repo, mock := newMockTicketRepo(t)

		err := repo.CreateBatch(context.Background(), nil)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inserts inside transaction", func(t *testing.T) {
		repo, mock := newMockTicketRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO bussystem_tickets`).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		tickets := []*domain.Ticket{{
			OrderID:          1044444,
			TicketID:         21011,
			PassengerName:    "John",
			PassengerSurname: "Doe",
			Currency:         "EUR",
			Status:           domain.StatusBuy,
		}}

		err := repo.CreateBatch(context.Background(), tickets)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTicketRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMockTicketRepo(t)

	mock.ExpectExec(`UPDATE bussystem_tickets\s+SET status = \$2`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 999, domain.StatusCancel, nil)
	assert.Equal(t, errors.ErrTicketNotFound, err)
}
