package model

import "cospace/shared/model"

const (
	TableName  = "workspaces"
	EntityName = "workspace"

	FieldID     = "id"
	FieldNumber = "number"
	FieldType   = "type"
)

// Workspace carries display attributes only. Occupancy is derived per query
// from active bookings and is never stored on the row.
type Workspace struct {
	ID     string `db:"id"`
	Number string `db:"number"`
	Type   string `db:"type"`
	model.Metadata
}
