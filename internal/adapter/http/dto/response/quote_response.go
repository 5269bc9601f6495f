package response

import "maquininhas_mky/internal/domain/entities"

type QuoteResponse struct {
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`

	Installments         *int     `json:"installments,omitempty"`
	InstallmentUnitPrice *float64 `json:"installment_unit_price,omitempty"`
	InstallmentTotal     *float64 `json:"installment_total,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		UnitPrice:            q.UnitPrice,
		TotalPrice:           q.TotalPrice,
		Installments:         q.Installments,
		InstallmentUnitPrice: q.InstallmentUnitPrice,
		InstallmentTotal:     q.InstallmentTotal,
	}
}

type PriceTierResponse struct {
	MinQty    int     `json:"min_qty"`
	MaxQty    *int    `json:"max_qty,omitempty"`
	UnitPrice float64 `json:"unit_price"`
}

type MachineResponse struct {
	Name        string `json:"name"`
	MachineType string `json:"machine_type"`
	Pricing     string `json:"pricing"`

	UnitPrice            float64  `json:"unit_price"`
	Installments         int      `json:"installments"`
	InstallmentUnitPrice *float64 `json:"installment_unit_price,omitempty"`

	Tiers []PriceTierResponse `json:"tiers,omitempty"`
}

// FromMachine renders a catalog entry with its single-unit price figures, the
// way the storefront presents machine cards.
func FromMachine(m entities.Machine) MachineResponse {
	resp := MachineResponse{
		Name:         m.Name,
		MachineType:  string(m.Category),
		Pricing:      string(m.Pricing),
		UnitPrice:    m.UnitPrice(1),
		Installments: m.InstallmentsOrDefault(),
	}
	if v, ok := m.InstallmentUnitPrice(1, nil); ok {
		resp.InstallmentUnitPrice = &v
	}
	for _, t := range m.Tiers {
		resp.Tiers = append(resp.Tiers, PriceTierResponse{
			MinQty:    t.MinQty,
			MaxQty:    t.MaxQty,
			UnitPrice: t.UnitPrice,
		})
	}
	return resp
}

func FromMachines(machines []entities.Machine) []MachineResponse {
	out := make([]MachineResponse, 0, len(machines))
	for _, m := range machines {
		out = append(out, FromMachine(m))
	}
	return out
}
