package model

import "cospace/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldWorkspaceID = "workspace_id"
	FieldRating      = "rating"
	FieldComment     = "comment"
)

type Review struct {
	ID          string `db:"id"`
	UserID      string `db:"user_id"`
	WorkspaceID string `db:"workspace_id"`
	Rating      int    `db:"rating"`
	Comment     string `db:"comment"`
	model.Metadata
}
