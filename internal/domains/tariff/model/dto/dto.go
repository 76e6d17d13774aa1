package dto

import (
	"github.com/google/uuid"

	"cospace/internal/domains/tariff/model"
	gModel "cospace/shared/model"
	"cospace/shared/timezone"
)

type CreateTariffRequest struct {
	PlanType string   `json:"plan_type" validate:"required,max=50"`
	Price    *float64 `json:"price"     validate:"required,gte=0"`
}

func (c *CreateTariffRequest) ToModel(user string) model.Tariff {
	return model.Tariff{
		ID:       uuid.NewString(),
		PlanType: c.PlanType,
		Price:    *c.Price,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTariffRequest struct {
	PlanType string   `db:"plan_type" json:"plan_type" validate:"omitempty,max=50"`
	Price    *float64 `db:"price"     json:"price"     validate:"omitempty,gte=0"`
}

type TariffResponse struct {
	ID       string  `json:"tariff_id"`
	PlanType string  `json:"plan_type"`
	Price    float64 `json:"price"`
}

func (r *TariffResponse) FromModel(mod model.Tariff) {
	r.ID = mod.ID
	r.PlanType = mod.PlanType
	r.Price = mod.Price
}

type GetTariffsResponse struct {
	Tariffs []TariffResponse `json:"tariffs"`
}

func (r *GetTariffsResponse) FromModels(models []model.Tariff) {
	r.Tariffs = make([]TariffResponse, len(models))
	for i, mod := range models {
		r.Tariffs[i].FromModel(mod)
	}
}
