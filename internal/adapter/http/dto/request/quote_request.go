package request

import (
	"math"
	"strings"

	"maquininhas_mky/internal/domain/entities"
)

// QuoteRequest is the payload for live price quotes.
//
// Quantity arrives as a JSON number and may be fractional or out of range;
// the engine normalizes instead of erroring. The Portuguese wire values used
// by the storefront ("avista"/"parcelado") are accepted alongside the
// canonical ones.
type QuoteRequest struct {
	MachineType   string   `json:"machine_type" binding:"required"`
	MachineName   string   `json:"machine_name" binding:"required"`
	Quantity      *float64 `json:"quantity"`
	PaymentMethod string   `json:"payment_method" binding:"required"`
	Installments  *int     `json:"installments"`
}

func (r QuoteRequest) ResolveCategory() (entities.MachineCategory, bool) {
	c := entities.MachineCategory(strings.TrimSpace(r.MachineType))
	return c, c.Valid()
}

func (r QuoteRequest) ResolvePaymentMethod() (entities.PaymentMethod, bool) {
	switch strings.TrimSpace(r.PaymentMethod) {
	case string(entities.PaymentMethodCash), "avista":
		return entities.PaymentMethodCash, true
	case string(entities.PaymentMethodInstallment), "parcelado":
		return entities.PaymentMethodInstallment, true
	}
	return "", false
}

// ResolveQuantity truncates non-integer input and clamps into [1, 1000].
func (r QuoteRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return entities.MinQuantity
	}
	q := *r.Quantity
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return entities.MinQuantity
	}
	return entities.ClampQuantity(int(math.Trunc(q)))
}
