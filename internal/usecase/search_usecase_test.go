package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bussystem-service/internal/domain"
	"github.com/bussystem-service/internal/domain/repository"
	"github.com/bussystem-service/internal/usecase"
	"github.com/bussystem-service/internal/usecase/dto"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestSearchUseCase_SearchRoutes(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("request mapped onto search criteria", func(t *testing.T) {
		mockClient := &MockBusSystemRepository{}

		var captured *domain.SearchCriteria
		mockClient.On("GetRoutes", ctx, mock.AnythingOfType("*domain.SearchCriteria")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*domain.SearchCriteria)
			}).
			Return(repository.Response{"items": []interface{}{}}, nil)

		uc := usecase.NewSearchUseCase(mockClient, logger, bookingDefaults())

		req := dto.SearchRoutesRequest{
			Date:       "2026-09-10",
			Transport:  "bus",
			FromCityID: int64Ptr(3),
			ToCityID:   int64Ptr(6),
			Currency:   "CZK",
			Period:     20,
			SortBy:     "price",
		}

		_, err := uc.SearchRoutes(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, captured)

		params := captured.Values()
		assert.Equal(t, "2026-09-10", params.Get("date"))
		assert.Equal(t, "bus", params.Get("trans"))
		assert.Equal(t, "3", params.Get("id_from"))
		assert.Equal(t, "6", params.Get("id_to"))
		assert.Equal(t, "CZK", params.Get("currency"))
		assert.Equal(t, "14", params.Get("period"))
		assert.Equal(t, "price", params.Get("sort_type"))
	})

	t.Run("air passengers only for air search", func(t *testing.T) {
		mockClient := &MockBusSystemRepository{}

		var captured *domain.SearchCriteria
		mockClient.On("GetRoutes", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*domain.SearchCriteria)
			}).
			Return(repository.Response{}, nil)

		uc := usecase.NewSearchUseCase(mockClient, logger, bookingDefaults())

		req := dto.SearchRoutesRequest{
			Transport:   "air",
			AirportFrom: "PRG",
			AirportTo:   "BCN",
			Adults:      2,
			Children:    1,
		}

		_, err := uc.SearchRoutes(ctx, req)
		require.NoError(t, err)

		params := captured.Values()
		assert.Equal(t, "PRG", params.Get("id_iata_from"))
		assert.Equal(t, "BCN", params.Get("id_iata_to"))
		assert.Equal(t, "2", params.Get("adt"))
		assert.Equal(t, "1", params.Get("chd"))
		assert.Equal(t, "0", params.Get("inf"))
	})

	t.Run("defaults used when request is empty", func(t *testing.T) {
		mockClient := &MockBusSystemRepository{}

		var captured *domain.SearchCriteria
		mockClient.On("GetRoutes", ctx, mock.Anything).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*domain.SearchCriteria)
			}).
			Return(repository.Response{}, nil)

		uc := usecase.NewSearchUseCase(mockClient, logger, bookingDefaults())

		_, err := uc.SearchRoutes(ctx, dto.SearchRoutesRequest{})
		require.NoError(t, err)

		params := captured.Values()
		assert.Equal(t, "all", params.Get("trans"))
		assert.Equal(t, "EUR", params.Get("currency"))
		assert.Equal(t, "en", params.Get("lang"))
		assert.Equal(t, "auto", params.Get("change"))
	})
}

func TestSearchUseCase_Timetable(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	mockClient := &MockBusSystemRepository{}
	mockClient.On("GetAllRoutes", ctx, "90", "en").
		Return(repository.Response{"route_name": "Praha - Brno"}, nil)

	uc := usecase.NewSearchUseCase(mockClient, logger, bookingDefaults())

	// Пустой язык подменяется языком по умолчанию
	result, err := uc.Timetable(ctx, "90", "")
	require.NoError(t, err)
	assert.Equal(t, "Praha - Brno", result["route_name"])
	mockClient.AssertExpectations(t)
}
