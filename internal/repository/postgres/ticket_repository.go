package postgres

import (
	"context"
	"database/sql"

	"github.com/bussystem-service/internal/domain"
	"github.com/bussystem-service/internal/domain/repository"
	"github.com/bussystem-service/internal/pkg/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type ticketRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTicketRepository(db *DB) repository.TicketRepository {
	return &ticketRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *ticketRepository) CreateBatch(ctx context.Context, tickets []*domain.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}

	query := `
		INSERT INTO bussystem_tickets (
			order_id, ticket_id, transaction_id, security_code,
			passenger_name, passenger_surname, passenger_middlename,
			passenger_birth_date, passenger_doc_type, passenger_doc_number,
			passenger_gender, seat_number, price, provision, currency,
			route_from, route_to, departure_date, departure_time,
			arrival_date, arrival_time, carrier, status, pdf_link,
			api_response, created_at, updated_at
		) VALUES (
			:order_id, :ticket_id, :transaction_id, :security_code,
			:passenger_name, :passenger_surname, :passenger_middlename,
			:passenger_birth_date, :passenger_doc_type, :passenger_doc_number,
			:passenger_gender, :seat_number, :price, :provision, :currency,
			:route_from, :route_to, :departure_date, :departure_time,
			:arrival_date, :arrival_time, :carrier, :status, :pdf_link,
			:api_response, now(), now()
		)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	for _, ticket := range tickets {
		if _, err := tx.NamedExecContext(ctx, query, ticket); err != nil {
			r.logger.Error("Failed to create ticket",
				zap.Int64("ticket_id", ticket.TicketID), zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit tickets", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *ticketRepository) GetByTicketID(ctx context.Context, ticketID int64) (*domain.Ticket, error) {
	query := `
		SELECT *
		FROM bussystem_tickets
		WHERE ticket_id = $1 AND deleted_at IS NULL
	`

	var ticket domain.Ticket
	err := r.db.GetContext(ctx, &ticket, query, ticketID)
	if err == sql.ErrNoRows {
		return nil, errors.ErrTicketNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get ticket", zap.Int64("ticket_id", ticketID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &ticket, nil
}

func (r *ticketRepository) ListByOrder(ctx context.Context, orderID int64) ([]*domain.Ticket, error) {
	query := `
		SELECT *
		FROM bussystem_tickets
		WHERE order_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`

	var tickets []*domain.Ticket
	err := r.db.SelectContext(ctx, &tickets, query, orderID)
	if err != nil {
		r.logger.Error("Failed to list tickets", zap.Int64("order_id", orderID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return tickets, nil
}

func (r *ticketRepository) ListByStatuses(ctx context.Context, statuses []string, limit int) ([]*domain.Ticket, error) {
	query := `
		SELECT *
		FROM bussystem_tickets
		WHERE status = ANY($1) AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $2
	`

	var tickets []*domain.Ticket
	err := r.db.SelectContext(ctx, &tickets, query, pq.Array(statuses), limit)
	if err != nil {
		r.logger.Error("Failed to list tickets by statuses", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return tickets, nil
}

func (r *ticketRepository) UpdateStatus(ctx context.Context, ticketID int64, status string, rawResponse []byte) error {
	query := `
		UPDATE bussystem_tickets
		SET status = $2,
		    api_response = COALESCE($3, api_response),
		    updated_at = now()
		WHERE ticket_id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, ticketID, status, rawResponse)
	if err != nil {
		r.logger.Error("Failed to update ticket status",
			zap.Int64("ticket_id", ticketID), zap.String("status", status), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrTicketNotFound
	}

	return nil
}

func (r *ticketRepository) SoftDelete(ctx context.Context, ticketID int64) error {
	query := `
		UPDATE bussystem_tickets
		SET deleted_at = now(), updated_at = now()
		WHERE ticket_id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, ticketID)
	if err != nil {
		r.logger.Error("Failed to soft delete ticket", zap.Int64("ticket_id", ticketID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrTicketNotFound
	}

	return nil
}
