package dto

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"cospace/internal/domains/booking/model"
	paymentModel "cospace/internal/domains/payment/model"
	"cospace/shared/constant"
	gModel "cospace/shared/model"
	"cospace/shared/timezone"
)

var validPaymentMethods = []string{
	constant.PaymentMethodCard,
	constant.PaymentMethodCash,
	constant.PaymentMethodTransfer,
}

// NormalizePaymentMethod maps unknown or absent methods to card.
func NormalizePaymentMethod(method string) string {
	if slices.Contains(validPaymentMethods, method) {
		return method
	}

	return constant.PaymentMethodCard
}

type CreateBookingRequest struct {
	WorkspaceID     string   `json:"workspace_id"     validate:"required"`
	WorkspaceNumber string   `json:"workspace_number" validate:"required"`
	TariffID        *string  `json:"tariff_id"        validate:"omitempty"`
	StartTime       string   `json:"start_time"       validate:"required"`
	EndTime         string   `json:"end_time"         validate:"required"`
	Price           *float64 `json:"price"            validate:"required,gte=0"`
	PaymentMethod   string   `json:"payment_method"   validate:"omitempty"`
}

// Interval parses the requested window and enforces start strictly before end.
func (c *CreateBookingRequest) Interval() (start, end time.Time, err error) {
	start, err = time.Parse(time.RFC3339, c.StartTime)
	if err != nil {
		return start, end, err
	}

	end, err = time.Parse(time.RFC3339, c.EndTime)
	if err != nil {
		return start, end, err
	}

	return start, end, nil
}

func (c *CreateBookingRequest) ToModel(user string, start, end time.Time) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		UserID:          user,
		WorkspaceID:     c.WorkspaceID,
		WorkspaceNumber: c.WorkspaceNumber,
		TariffID:        c.TariffID,
		StartTime:       start,
		EndTime:         end,
		Price:           *c.Price,
		Cancelled:       false,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// ToPaymentModel builds the payment row created atomically with the booking.
// The amount always mirrors the booking price at creation time.
func (c *CreateBookingRequest) ToPaymentModel(booking model.Booking) paymentModel.Payment {
	return paymentModel.Payment{
		ID:            uuid.NewString(),
		BookingID:     booking.ID,
		Amount:        booking.Price,
		PaymentMethod: NormalizePaymentMethod(c.PaymentMethod),
		PaymentDate:   timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  booking.CreatedAt,
			ModifiedAt: booking.ModifiedAt,
			CreatedBy:  booking.CreatedBy,
			ModifiedBy: booking.ModifiedBy,
		},
	}
}

type BookingResponse struct {
	ID              string  `json:"booking_id"`
	UserID          string  `json:"user_id"`
	WorkspaceID     string  `json:"workspace_id"`
	WorkspaceNumber string  `json:"workspace_number"`
	TariffID        *string `json:"tariff_id,omitempty"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Price           float64 `json:"price"`
	Cancelled       bool    `json:"cancelled"`
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	r.ID = mod.ID
	r.UserID = mod.UserID
	r.WorkspaceID = mod.WorkspaceID
	r.WorkspaceNumber = mod.WorkspaceNumber
	r.TariffID = mod.TariffID
	r.StartTime = mod.StartTime.Format(constant.DateFormat)
	r.EndTime = mod.EndTime.Format(constant.DateFormat)
	r.Price = mod.Price
	r.Cancelled = mod.Cancelled
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to Kafka after a booking state
// change has been committed.
type BookingEvent struct {
	BookingID   string `json:"booking_id"`
	UserID      string `json:"user_id"`
	WorkspaceID string `json:"workspace_id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Cancelled   bool   `json:"cancelled"`
	OccurredAt  string `json:"occurred_at"`
}

func NewBookingEvent(mod model.Booking) BookingEvent {
	return BookingEvent{
		BookingID:   mod.ID,
		UserID:      mod.UserID,
		WorkspaceID: mod.WorkspaceID,
		StartTime:   mod.StartTime.Format(constant.DateFormat),
		EndTime:     mod.EndTime.Format(constant.DateFormat),
		Cancelled:   mod.Cancelled,
		OccurredAt:  timezone.Now().Format(constant.DateFormat),
	}
}
