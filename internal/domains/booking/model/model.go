package model

import (
	"time"

	"cospace/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldWorkspaceID     = "workspace_id"
	FieldWorkspaceNumber = "workspace_number"
	FieldTariffID        = "tariff_id"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldPrice           = "price"
	FieldCancelled       = "cancelled"
)

// Booking reserves a workspace for the half-open interval
// [StartTime, EndTime). Active bookings on one workspace never overlap;
// the bookings_no_overlap exclusion constraint enforces this at commit time.
// Cancellation is a soft, terminal state transition: rows are never deleted
// and cancelled bookings are excluded from every overlap computation.
type Booking struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	WorkspaceID     string    `db:"workspace_id"`
	WorkspaceNumber string    `db:"workspace_number"`
	TariffID        *string   `db:"tariff_id"`
	StartTime       time.Time `db:"start_time"`
	EndTime         time.Time `db:"end_time"`
	Price           float64   `db:"price"`
	Cancelled       bool      `db:"cancelled"`
	model.Metadata
}
