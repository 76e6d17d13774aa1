package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cospace/config"
	otelMocks "cospace/infras/otel/mocks"
	tariffMocks "cospace/internal/domains/tariff/mocks"
	"cospace/internal/domains/tariff/model"
	"cospace/internal/domains/tariff/model/dto"
	"cospace/internal/domains/tariff/service"
	cacheMocks "cospace/shared/cache/mocks"
	"cospace/shared/constant"
	"cospace/shared/failure"
)

const testUserID = "7f3b2c1d-0000-4000-8000-000000000001"

type tariffFixture struct {
	svc   service.Tariff
	repo  *tariffMocks.MockTariff
	cache *cacheMocks.MockRedisCache
}

func newTariffFixture(t *testing.T) tariffFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := tariffMocks.NewMockTariff(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	svc := service.New(repo, &config.Config{}, mockCache, otelMocks.NewOtel())

	return tariffFixture{svc: svc, repo: repo, cache: mockCache}
}

func priceOf(v float64) *float64 {
	return &v
}

func TestTariffService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, testUserID)

	t.Run("creates a tariff", func(t *testing.T) {
		f := newTariffFixture(t)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.Create(ctx, dto.CreateTariffRequest{PlanType: "hourly", Price: priceOf(12.5)})

		require.NoError(t, err)
		assert.Equal(t, "hourly", res.PlanType)
		assert.Equal(t, 12.5, res.Price)
	})

	t.Run("duplicate plan type maps to bad request", func(t *testing.T) {
		f := newTariffFixture(t)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})

		_, err := f.svc.Create(ctx, dto.CreateTariffRequest{PlanType: "hourly", Price: priceOf(12.5)})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestTariffService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss falls through to the store and repopulates", func(t *testing.T) {
		f := newTariffFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Tariff{{ID: "t-1", PlanType: "daily", Price: 60}}, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		res, err := f.svc.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, res.Tariffs, 1)
		assert.Equal(t, "daily", res.Tariffs[0].PlanType)
	})

	t.Run("cache hit skips the store", func(t *testing.T) {
		f := newTariffFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.GetTariffsResponse)
				require.True(t, ok)

				res.Tariffs = []dto.TariffResponse{{ID: "t-1", PlanType: "daily", Price: 60}}

				return nil
			})

		res, err := f.svc.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, res.Tariffs, 1)
	})
}

func TestTariffService_Update(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, testUserID)

	t.Run("updates an existing tariff", func(t *testing.T) {
		f := newTariffFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.Update(ctx, dto.UpdateTariffRequest{Price: priceOf(70)}, "t-1")

		require.NoError(t, err)
	})

	t.Run("unknown tariff", func(t *testing.T) {
		f := newTariffFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(ctx, dto.UpdateTariffRequest{Price: priceOf(70)}, "t-404")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestTariffService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing tariff", func(t *testing.T) {
		f := newTariffFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		err := f.svc.Delete(ctx, "t-1")

		require.NoError(t, err)
	})

	t.Run("unknown tariff", func(t *testing.T) {
		f := newTariffFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(ctx, "t-404")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
