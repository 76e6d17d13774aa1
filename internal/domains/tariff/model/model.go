package model

import "cospace/shared/model"

const (
	TableName  = "tariffs"
	EntityName = "tariff"

	FieldID       = "id"
	FieldPlanType = "plan_type"
	FieldPrice    = "price"
)

type Tariff struct {
	ID       string  `db:"id"`
	PlanType string  `db:"plan_type"`
	Price    float64 `db:"price"`
	model.Metadata
}
