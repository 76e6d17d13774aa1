package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cospace/config"
	otelMocks "cospace/infras/otel/mocks"
	bookingModel "cospace/internal/domains/booking/model"
	paymentMocks "cospace/internal/domains/payment/mocks"
	"cospace/internal/domains/payment/model"
	"cospace/internal/domains/payment/service"
	"cospace/shared/constant"
	gDto "cospace/shared/dto"
)

const testUserID = "7f3b2c1d-0000-4000-8000-000000000001"

func TestPaymentService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := paymentMocks.NewMockPayment(ctrl)
	svc := service.New(mockRepo, &config.Config{}, otelMocks.NewOtel())

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, testUserID)

	payments := []model.Payment{
		{ID: "p-1", BookingID: "b-1", Amount: 25, PaymentMethod: constant.PaymentMethodCard},
	}

	t.Run("lists the caller's payments newest first", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Payment, error) {
				assert.Equal(t, model.FieldPaymentDate, params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)

				require.Len(t, filter.Filters, 1)

				f, ok := filter.Filters[0].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, bookingModel.FieldUserID, f.Field)
				assert.Equal(t, bookingModel.TableName, f.Table)
				assert.Equal(t, testUserID, f.Value)

				return payments, nil
			})

		res, err := svc.GetAll(ctx)

		require.NoError(t, err)
		require.Len(t, res.Payments, 1)
		assert.Equal(t, "p-1", res.Payments[0].ID)
		assert.Equal(t, 25.0, res.Payments[0].Amount)
	})
}
