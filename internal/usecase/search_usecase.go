package usecase

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/bussystem-service/internal/domain"
	"github.com/bussystem-service/internal/domain/repository"
	"github.com/bussystem-service/internal/usecase/dto"
)

// SearchUseCase - справочные операции провайдера: пункты, маршруты,
// свободные места, схемы салонов, скидки и багаж. Все операции
// идемпотентны, часть из них кешируется на уровне клиента.
type SearchUseCase struct {
	client   repository.BusSystemRepository
	logger   *zap.Logger
	defaults domain.Defaults
}

func NewSearchUseCase(
	client repository.BusSystemRepository,
	logger *zap.Logger,
	defaults domain.Defaults,
) *SearchUseCase {
	return &SearchUseCase{
		client:   client,
		logger:   logger,
		defaults: defaults,
	}
}

func (uc *SearchUseCase) Ping(ctx context.Context) (repository.Response, error) {
	return uc.client.Ping(ctx)
}

// Points - справочник городов и станций
func (uc *SearchUseCase) Points(ctx context.Context, params url.Values) (repository.Response, error) {
	result, err := uc.client.GetPoints(ctx, params)
	if err != nil {
		uc.logger.Error("Failed to get points", zap.Error(err))
		return nil, err
	}
	return result, nil
}

// SearchRoutes строит критерии поиска из запроса и опрашивает провайдера
func (uc *SearchUseCase) SearchRoutes(ctx context.Context, req dto.SearchRoutesRequest) (repository.Response, error) {
	criteria := domain.NewSearchCriteria(uc.defaults)

	if req.Date != "" {
		criteria.Date(req.Date)
	}
	if req.Transport != "" {
		criteria.Transport(req.Transport)
	}
	if req.FromCityID != nil {
		criteria.From(*req.FromCityID)
	}
	if req.ToCityID != nil {
		criteria.To(*req.ToCityID)
	}
	if req.TrainFromID != nil {
		criteria.TrainFrom(*req.TrainFromID)
	}
	if req.TrainToID != nil {
		criteria.TrainTo(*req.TrainToID)
	}
	if req.AirportFrom != "" {
		criteria.AirportFrom(req.AirportFrom)
	}
	if req.AirportTo != "" {
		criteria.AirportTo(req.AirportTo)
	}
	if req.StationFromID != nil {
		criteria.StationFrom(*req.StationFromID)
	}
	if req.StationToID != nil {
		criteria.StationTo(*req.StationToID)
	}
	if req.Currency != "" {
		criteria.Currency(req.Currency)
	}
	if req.Language != "" {
		criteria.Language(req.Language)
	}
	if req.Change != "" {
		criteria.AllowTransfers(req.Change)
	}
	if req.Period != 0 {
		criteria.Period(req.Period)
	}
	if req.SortBy != "" {
		criteria.SortBy(req.SortBy)
	}
	criteria.IncludeSoldOut(req.IncludeSoldOut)

	if req.Adults > 0 || req.Children > 0 || req.Infants > 0 {
		criteria.AirPassengers(req.Adults, req.Children, req.Infants)
	}

	result, err := uc.client.GetRoutes(ctx, criteria)
	if err != nil {
		uc.logger.Error("Failed to search routes", zap.Error(err))
		return nil, err
	}
	return result, nil
}

// Timetable - полное расписание маршрута
func (uc *SearchUseCase) Timetable(ctx context.Context, timetableID, language string) (repository.Response, error) {
	if language == "" {
		language = uc.defaults.Language
	}
	result, err := uc.client.GetAllRoutes(ctx, timetableID, language)
	if err != nil {
		uc.logger.Error("Failed to get timetable",
			zap.String("timetable_id", timetableID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (uc *SearchUseCase) FreeSeats(ctx context.Context, intervalID string, params url.Values) (repository.Response, error) {
	result, err := uc.client.GetFreeSeats(ctx, intervalID, params)
	if err != nil {
		uc.logger.Error("Failed to get free seats",
			zap.String("interval_id", intervalID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (uc *SearchUseCase) SeatPlan(ctx context.Context, params url.Values) (repository.Response, error) {
	result, err := uc.client.GetSeatPlan(ctx, params)
	if err != nil {
		uc.logger.Error("Failed to get seat plan", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (uc *SearchUseCase) Discounts(ctx context.Context, intervalID string, params url.Values) (repository.Response, error) {
	result, err := uc.client.GetDiscounts(ctx, intervalID, params)
	if err != nil {
		uc.logger.Error("Failed to get discounts",
			zap.String("interval_id", intervalID), zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (uc *SearchUseCase) Baggage(ctx context.Context, intervalID string, params url.Values) (repository.Response, error) {
	result, err := uc.client.GetBaggage(ctx, intervalID, params)
	if err != nil {
		uc.logger.Error("Failed to get baggage",
			zap.String("interval_id", intervalID), zap.Error(err))
		return nil, err
	}
	return result, nil
}
