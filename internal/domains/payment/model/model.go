package model

import (
	"time"

	bookingModel "cospace/internal/domains/booking/model"
	"cospace/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldAmount        = "amount"
	FieldPaymentMethod = "payment_method"
	FieldPaymentDate   = "payment_date"
)

// Payment is created exactly once, inside the same transaction as its booking,
// and is never mutated afterwards.
type Payment struct {
	ID            string    `db:"id"`
	BookingID     string    `db:"booking_id"`
	Amount        float64   `db:"amount"`
	PaymentMethod string    `db:"payment_method"`
	PaymentDate   time.Time `db:"payment_date"`

	// Read-only columns joined from the owning booking.
	UserID          string `db:"user_id"          table:"bookings"`
	WorkspaceNumber string `db:"workspace_number" table:"bookings"`

	model.Metadata
}

func (p Payment) GetJoinQuery() string {
	return "INNER JOIN " + bookingModel.TableName + " ON " +
		bookingModel.TableName + ".id = " + TableName + ".booking_id"
}
