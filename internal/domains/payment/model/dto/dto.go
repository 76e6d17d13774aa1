package dto

import (
	"cospace/internal/domains/payment/model"
	"cospace/shared/constant"
)

type PaymentResponse struct {
	ID              string  `json:"payment_id"`
	BookingID       string  `json:"booking_id"`
	Amount          float64 `json:"amount"`
	PaymentMethod   string  `json:"payment_method"`
	PaymentDate     string  `json:"payment_date"`
	WorkspaceNumber string  `json:"workspace_number"`
}

func (r *PaymentResponse) FromModel(mod model.Payment) {
	r.ID = mod.ID
	r.BookingID = mod.BookingID
	r.Amount = mod.Amount
	r.PaymentMethod = mod.PaymentMethod
	r.PaymentDate = mod.PaymentDate.Format(constant.DateFormat)
	r.WorkspaceNumber = mod.WorkspaceNumber
}

type GetPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment) {
	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
