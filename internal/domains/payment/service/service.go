package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"cospace/config"
	"cospace/infras/otel"
	bookingModel "cospace/internal/domains/booking/model"
	"cospace/internal/domains/payment/model"
	"cospace/internal/domains/payment/model/dto"
	"cospace/internal/domains/payment/repository"
	"cospace/shared"
	"cospace/shared/constant"
	gDto "cospace/shared/dto"
)

type Payment interface {
	GetAll(ctx context.Context) (dto.GetPaymentsResponse, error)
}

type serviceImpl struct {
	repo repository.Payment
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Payment, cfg *config.Config, otel otel.Otel) Payment {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// GetAll returns the caller's payments joined with their bookings, newest
// first. Results always come from the store; payment history is never cached.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	params := gDto.QueryParams{
		SortBy:  model.FieldPaymentDate,
		SortDir: gDto.SortDirDesc,
	}

	filter := shared.FilterByID(user, bookingModel.FieldUserID, bookingModel.TableName)

	payments, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		return res, err
	}

	res.FromModels(payments)

	return res, nil
}
