package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cospace/config"
	"cospace/infras/kafka"
	kafkaMocks "cospace/infras/kafka/mocks"
	otelMocks "cospace/infras/otel/mocks"
	bookingMocks "cospace/internal/domains/booking/mocks"
	"cospace/internal/domains/booking/model"
	"cospace/internal/domains/booking/model/dto"
	"cospace/internal/domains/booking/repository"
	"cospace/internal/domains/booking/service"
	paymentModel "cospace/internal/domains/payment/model"
	workspaceMocks "cospace/internal/domains/workspace/mocks"
	"cospace/shared/constant"
	gDto "cospace/shared/dto"
	"cospace/shared/failure"
	gModel "cospace/shared/model"
	"cospace/shared/timezone"
)

const (
	testUserID      = "7f3b2c1d-0000-4000-8000-000000000001"
	testWorkspaceID = "7f3b2c1d-0000-4000-8000-000000000002"
	testBookingID   = "7f3b2c1d-0000-4000-8000-000000000003"
)

func userContext(user string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, user)
}

func validCreateRequest() dto.CreateBookingRequest {
	price := 25.0

	return dto.CreateBookingRequest{
		WorkspaceID:     testWorkspaceID,
		WorkspaceNumber: "A-101",
		StartTime:       "2026-09-01T09:00:00Z",
		EndTime:         "2026-09-01T12:00:00Z",
		Price:           &price,
	}
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockWorkspaceRepo := workspaceMocks.NewMockWorkspace(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockWorkspaceRepo, cfg, mockOtel, nil)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful booking with mirrored payment",
			req:  validCreateRequest(),
			setupMock: func() {
				mockWorkspaceRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					HasOverlap(gomock.Any(), testWorkspaceID, gomock.Any(), gomock.Any(), "").
					Return(false, nil)

				mockRepo.EXPECT().
					CreateWithPayment(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking, payment paymentModel.Payment) error {
						assert.Equal(t, testUserID, booking.UserID)
						assert.Equal(t, booking.Price, payment.Amount)
						assert.Equal(t, booking.ID, payment.BookingID)
						assert.Equal(t, constant.PaymentMethodCard, payment.PaymentMethod)
						assert.False(t, booking.Cancelled)

						return nil
					})
			},
		},
		{
			name: "malformed timestamps are rejected",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.StartTime = "tomorrow"

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "start equal to end is rejected",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.EndTime = req.StartTime

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "start after end is rejected",
			req: func() dto.CreateBookingRequest {
				req := validCreateRequest()
				req.StartTime = "2026-09-01T15:00:00Z"

				return req
			}(),
			setupMock: func() {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown workspace",
			req:  validCreateRequest(),
			setupMock: func() {
				mockWorkspaceRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "overlapping interval is rejected before the transaction",
			req:  validCreateRequest(),
			setupMock: func() {
				mockWorkspaceRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					HasOverlap(gomock.Any(), testWorkspaceID, gomock.Any(), gomock.Any(), "").
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "constraint violation from a racing writer maps to conflict",
			req:  validCreateRequest(),
			setupMock: func() {
				mockWorkspaceRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					HasOverlap(gomock.Any(), testWorkspaceID, gomock.Any(), gomock.Any(), "").
					Return(false, nil)

				mockRepo.EXPECT().
					CreateWithPayment(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(repository.ErrBookingConflict)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "storage error surfaces unchanged",
			req:  validCreateRequest(),
			setupMock: func() {
				mockWorkspaceRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					HasOverlap(gomock.Any(), testWorkspaceID, gomock.Any(), gomock.Any(), "").
					Return(false, nil)

				mockRepo.EXPECT().
					CreateWithPayment(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("connection reset"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(userContext(testUserID), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testUserID, res.UserID)
			assert.Equal(t, testWorkspaceID, res.WorkspaceID)
			assert.False(t, res.Cancelled)
		})
	}
}

func existingBooking(owner string, cancelled bool) model.Booking {
	return model.Booking{
		ID:              testBookingID,
		UserID:          owner,
		WorkspaceID:     testWorkspaceID,
		WorkspaceNumber: "A-101",
		StartTime:       time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		EndTime:         time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Price:           25,
		Cancelled:       cancelled,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  owner,
			ModifiedBy: owner,
		},
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockWorkspaceRepo := workspaceMocks.NewMockWorkspace(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockWorkspaceRepo, cfg, mockOtel, nil)

	tests := []struct {
		name          string
		requester     string
		setupMock     func()
		wantErr       bool
		wantCode      int
		wantCancelled bool
	}{
		{
			name:      "owner cancels an active booking",
			requester: testUserID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existingBooking(testUserID, false), nil)

				mockRepo.EXPECT().
					Cancel(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, testBookingID, booking.ID)
						assert.True(t, booking.Cancelled)

						return nil
					})
			},
			wantCancelled: true,
		},
		{
			name:      "unknown booking",
			requester: testUserID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:      "foreign booking is forbidden",
			requester: "someone-else",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existingBooking(testUserID, false), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name:      "cancelling twice is a no-op success",
			requester: testUserID,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(existingBooking(testUserID, true), nil)
			},
			wantCancelled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Cancel(userContext(tt.requester), testBookingID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCancelled, res.Cancelled)
			assert.Equal(t, testBookingID, res.ID)
		})
	}
}

func TestBookingService_Listings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockWorkspaceRepo := workspaceMocks.NewMockWorkspace(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockWorkspaceRepo, cfg, mockOtel, nil)

	bookings := []model.Booking{existingBooking(testUserID, false)}

	t.Run("all bookings are sorted by start time descending", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				assert.Equal(t, model.FieldStartTime, params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)
				assert.Zero(t, params.Limit)

				return bookings, nil
			})

		res, err := svc.GetAll(userContext(testUserID))

		require.NoError(t, err)
		require.Len(t, res.Bookings, 1)
		assert.Equal(t, testBookingID, res.Bookings[0].ID)
	})

	t.Run("recent bookings are capped at three", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
				assert.Equal(t, 3, params.Limit)
				assert.Equal(t, model.FieldStartTime, params.SortBy)

				return bookings, nil
			})

		res, err := svc.GetRecent(userContext(testUserID))

		require.NoError(t, err)
		require.Len(t, res.Bookings, 1)
	})
}

func TestBookingService_PublishesEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockWorkspaceRepo := workspaceMocks.NewMockWorkspace(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.Enable = true

	svc := service.New(mockRepo, mockWorkspaceRepo, cfg, mockOtel, mockKafka)

	t.Run("create publishes a booking created event after commit", func(t *testing.T) {
		mockWorkspaceRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			HasOverlap(gomock.Any(), testWorkspaceID, gomock.Any(), gomock.Any(), "").
			Return(false, nil)

		mockRepo.EXPECT().
			CreateWithPayment(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		published := make(chan kafka.Message, 1)

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), constant.TopicBookingCreated, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published <- messages[0]

				return nil
			})

		res, err := svc.Create(userContext(testUserID), validCreateRequest())
		require.NoError(t, err)

		select {
		case msg := <-published:
			assert.Equal(t, res.ID, msg.Key)

			event, ok := msg.Value.(dto.BookingEvent)
			require.True(t, ok)
			assert.Equal(t, res.ID, event.BookingID)
			assert.False(t, event.Cancelled)
		case <-time.After(time.Second):
			t.Fatal("no event published")
		}
	})

	t.Run("cancel publishes a booking cancelled event", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(existingBooking(testUserID, false), nil)

		mockRepo.EXPECT().
			Cancel(gomock.Any(), gomock.Any()).
			Return(nil)

		published := make(chan kafka.Message, 1)

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), constant.TopicBookingCancelled, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published <- messages[0]

				return nil
			})

		_, err := svc.Cancel(userContext(testUserID), testBookingID)
		require.NoError(t, err)

		select {
		case msg := <-published:
			assert.Equal(t, testBookingID, msg.Key)

			event, ok := msg.Value.(dto.BookingEvent)
			require.True(t, ok)
			assert.True(t, event.Cancelled)
		case <-time.After(time.Second):
			t.Fatal("no event published")
		}
	})
}
