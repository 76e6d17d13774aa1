package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"cospace/config"
	"cospace/infras/kafka"
	"cospace/infras/otel"
	"cospace/internal/domains/booking/model"
	"cospace/internal/domains/booking/model/dto"
	"cospace/internal/domains/booking/repository"
	workspaceModel "cospace/internal/domains/workspace/model"
	workspaceRepo "cospace/internal/domains/workspace/repository"
	"cospace/shared"
	"cospace/shared/constant"
	gDto "cospace/shared/dto"
	"cospace/shared/failure"
	"cospace/shared/timezone"
)

const recentBookingsLimit = 3

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, bookingID string) (dto.BookingResponse, error)
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
	GetRecent(ctx context.Context) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo          repository.Booking
	workspaceRepo workspaceRepo.Workspace
	cfg           *config.Config
	otel          otel.Otel
	kafka         kafka.Client
}

func New(repo repository.Booking, workspaceRepo workspaceRepo.Workspace, cfg *config.Config, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:          repo,
		workspaceRepo: workspaceRepo,
		cfg:           cfg,
		otel:          otel,
		kafka:         kafka,
	}
}

// Create books a workspace for the requested interval and records its payment
// in the same transaction. The overlap pre-check rejects most conflicting
// requests before a transaction is opened; racing requests that pass it are
// still serialized by the store's no-overlap constraint, so at most one of
// them commits. Both paths surface the same conflict error.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	start, end, err := req.Interval()
	if err != nil {
		return res, failure.BadRequestFromString("start_time and end_time must be valid RFC3339 timestamps")
	}

	if !start.Before(end) {
		return res, failure.BadRequestFromString("start_time must be before end_time")
	}

	exist, err := s.workspaceRepo.Exist(ctx, shared.FilterByID(req.WorkspaceID, workspaceModel.FieldID, workspaceModel.TableName))
	if err != nil {
		return res, err
	}

	if !exist {
		return res, failure.NotFound(workspaceModel.EntityName)
	}

	overlap, err := s.repo.HasOverlap(ctx, req.WorkspaceID, start, end, constant.Empty)
	if err != nil {
		return res, err
	}

	if overlap {
		return res, failure.Conflict("workspace is already booked for the selected interval")
	}

	booking := req.ToModel(user, start, end)
	payment := req.ToPaymentModel(booking)

	if err = s.repo.CreateWithPayment(ctx, booking, payment); err != nil {
		if errors.Is(err, repository.ErrBookingConflict) {
			return res, failure.Conflict(err.Error())
		}

		return res, err
	}

	s.publishEvent(ctx, constant.TopicBookingCreated, booking)

	res.FromModel(booking)

	return res, nil
}

// Cancel marks the booking cancelled after verifying it belongs to the
// caller. Cancelling an already-cancelled booking is a no-op success
// returning the terminal record.
func (s *serviceImpl) Cancel(ctx context.Context, bookingID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.getOwned(ctx, bookingID, user)
	if err != nil {
		return res, err
	}

	if booking.Cancelled {
		res.FromModel(booking)

		return res, nil
	}

	booking.Cancelled = true
	booking.ModifiedAt = timezone.Now()
	booking.ModifiedBy = user

	if err = s.repo.Cancel(ctx, booking); err != nil {
		return res, err
	}

	s.publishEvent(ctx, constant.TopicBookingCancelled, booking)

	res.FromModel(booking)

	return res, nil
}

// GetAll returns the caller's bookings, newest interval first.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.listOwn(ctx, 0)
}

// GetRecent returns the caller's three most recent bookings.
func (s *serviceImpl) GetRecent(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRecent")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.listOwn(ctx, recentBookingsLimit)
}

func (s *serviceImpl) listOwn(ctx context.Context, limit int) (res dto.GetBookingsResponse, err error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	params := gDto.QueryParams{
		Limit:   limit,
		SortBy:  model.FieldStartTime,
		SortDir: gDto.SortDirDesc,
	}

	filter := shared.FilterByID(user, model.FieldUserID, model.TableName)

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		return res, err
	}

	res.FromModels(bookings)

	return res, nil
}

func (s *serviceImpl) getOwned(ctx context.Context, bookingID, user string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		return booking, err
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(model.EntityName)
	}

	if booking.UserID != user {
		return booking, failure.Forbidden("booking belongs to another user")
	}

	return booking, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, topic string, booking model.Booking) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event := dto.NewBookingEvent(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: booking.ID, Value: event}
		if err := s.kafka.SendMessages(c, topic, message); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg(fmt.Sprintf("failed to publish %s event", model.EntityName))
		}
	}()
}
