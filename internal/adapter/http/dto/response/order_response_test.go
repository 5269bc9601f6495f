package response

import (
	"testing"
	"time"

	"maquininhas_mky/internal/domain/entities"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func TestFromOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.Order{
		ID:        "o-1",
		OwnerID:   "u-1",
		CreatedAt: now,

		CustomerName:       "João Silva",
		CustomerPhone:      "11999990000",
		CustomerEmail:      "joao@example.com",
		LinkedAccountEmail: "joao@pagseguro.com",

		Delivery: entities.DeliveryAddress{
			Cep:          "01310100",
			Street:       "Av. Paulista",
			Number:       "1000",
			Neighborhood: "Bela Vista",
			City:         "São Paulo",
			State:        "SP",
		},

		Category:    entities.CategoryPagSeguro,
		MachineName: "Smart",
		Quantity:    2,

		PaymentMethod:        entities.PaymentMethodInstallment,
		TotalPrice:           392.16,
		InstallmentCount:     intp(12),
		InstallmentUnitPrice: floatp(16.34),

		Status:           entities.OrderStatusPending,
		NotificationSent: false,
	}

	res := FromOrder(o)
	if res.ID != "o-1" || res.OrderID != "o-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.PagSeguroEmail != "joao@pagseguro.com" {
		t.Fatalf("unexpected pagseguro email: %+v", res)
	}
	if res.MachineType != "pagseguro" || res.MachineName != "Smart" {
		t.Fatalf("unexpected machine fields: %+v", res)
	}
	if res.TotalPrice != 392.16 || res.Installments == nil || *res.Installments != 12 {
		t.Fatalf("unexpected money fields: %+v", res)
	}
	if res.Delivery.Cep != "01310100" || res.Delivery.State != "SP" {
		t.Fatalf("unexpected delivery: %+v", res.Delivery)
	}
	if res.Status != "pending" || res.NotificationSent {
		t.Fatalf("unexpected lifecycle fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %+v", res)
	}
}

func TestFromMachine(t *testing.T) {
	t.Run("flat entry", func(t *testing.T) {
		m := entities.Machine{
			Name:                     "Smart",
			Category:                 entities.CategoryPagSeguro,
			Pricing:                  entities.PricingFlat,
			FlatUnitPrice:            196.08,
			FlatInstallmentUnitPrice: floatp(16.34),
			Installments:             12,
		}
		res := FromMachine(m)
		if res.UnitPrice != 196.08 || res.Installments != 12 {
			t.Fatalf("unexpected mapping: %+v", res)
		}
		if res.InstallmentUnitPrice == nil || *res.InstallmentUnitPrice != 16.34 {
			t.Fatalf("expected installment price: %+v", res)
		}
		if len(res.Tiers) != 0 {
			t.Fatalf("flat entry carries no tiers: %+v", res)
		}
	})

	t.Run("tiered entry exposes bands", func(t *testing.T) {
		m := entities.Machine{
			Name:     "S920",
			Category: entities.CategorySubAcquirer,
			Pricing:  entities.PricingTiered,
			Tiers: []entities.PriceTier{
				{MinQty: 1, MaxQty: intp(10), UnitPrice: 245},
			},
			AutoInstallment: true,
			Installments:    12,
		}
		res := FromMachine(m)
		if res.UnitPrice != 245 {
			t.Fatalf("expected single-unit price 245, got %v", res.UnitPrice)
		}
		if len(res.Tiers) != 1 || res.Tiers[0].MinQty != 1 || res.Tiers[0].UnitPrice != 245 {
			t.Fatalf("unexpected tiers: %+v", res.Tiers)
		}
		if res.InstallmentUnitPrice == nil {
			t.Fatalf("auto installment entry should expose a derived figure")
		}
	})
}
