package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"maquininhas_mky/internal/domain/entities"
	mock_interfaces "maquininhas_mky/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func flatMachine() entities.Machine {
	return entities.Machine{
		Name:                     "Smart",
		Category:                 entities.CategoryPagSeguro,
		Pricing:                  entities.PricingFlat,
		FlatUnitPrice:            196.08,
		FlatInstallmentUnitPrice: floatp(16.34),
		Installments:             12,
	}
}

func TestPricingUseCase_Quote(t *testing.T) {
	t.Run("invalid category", func(t *testing.T) {
		uc := NewPricingUseCase(nil)
		_, err := uc.Quote(context.Background(), "banco", "Smart", 1, entities.PaymentMethodCash, nil)
		if !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("invalid payment method", func(t *testing.T) {
		uc := NewPricingUseCase(nil)
		_, err := uc.Quote(context.Background(), entities.CategoryPagSeguro, "Smart", 1, "pix", nil)
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("blank machine name", func(t *testing.T) {
		uc := NewPricingUseCase(nil)
		_, err := uc.Quote(context.Background(), entities.CategoryPagSeguro, "   ", 1, entities.PaymentMethodCash, nil)
		if !errors.Is(err, ErrMachineNotFound) {
			t.Fatalf("expected ErrMachineNotFound, got %v", err)
		}
	})

	t.Run("catalog error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewPricingUseCase(catalog)

		catalog.EXPECT().GetByName(gomock.Any(), entities.CategoryPagSeguro, "Smart").Return(entities.Machine{}, errors.New("db"))

		_, err := uc.Quote(context.Background(), entities.CategoryPagSeguro, "Smart", 1, entities.PaymentMethodCash, nil)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("machine not in catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewPricingUseCase(catalog)

		catalog.EXPECT().GetByName(gomock.Any(), entities.CategoryPagSeguro, "Ghost").Return(entities.Machine{}, nil)

		_, err := uc.Quote(context.Background(), entities.CategoryPagSeguro, "Ghost", 1, entities.PaymentMethodCash, nil)
		if !errors.Is(err, ErrMachineNotFound) {
			t.Fatalf("expected ErrMachineNotFound, got %v", err)
		}
	})

	t.Run("cash quote has no installment fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewPricingUseCase(catalog)

		catalog.EXPECT().GetByName(gomock.Any(), entities.CategoryPagSeguro, "Smart").Return(flatMachine(), nil)

		quote, err := uc.Quote(context.Background(), entities.CategoryPagSeguro, "Smart", 3, entities.PaymentMethodCash, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.UnitPrice != 196.08 {
			t.Fatalf("expected unit 196.08, got %v", quote.UnitPrice)
		}
		if math.Abs(quote.TotalPrice-588.24) > 1e-9 {
			t.Fatalf("expected total 588.24, got %v", quote.TotalPrice)
		}
		if quote.Installments != nil || quote.InstallmentUnitPrice != nil || quote.InstallmentTotal != nil {
			t.Fatalf("cash quote must carry no installment fields: %+v", quote)
		}
	})

	t.Run("installment quote uses catalog figure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewPricingUseCase(catalog)

		catalog.EXPECT().GetByName(gomock.Any(), entities.CategoryPagSeguro, "Smart").Return(flatMachine(), nil)

		quote, err := uc.Quote(context.Background(), entities.CategoryPagSeguro, "Smart", 2, entities.PaymentMethodInstallment, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Installments == nil || *quote.Installments != 12 {
			t.Fatalf("expected 12 installments, got %+v", quote.Installments)
		}
		if quote.InstallmentUnitPrice == nil || *quote.InstallmentUnitPrice != 16.34 {
			t.Fatalf("expected installment unit 16.34, got %+v", quote.InstallmentUnitPrice)
		}
		if quote.InstallmentTotal == nil || math.Abs(*quote.InstallmentTotal-32.68) > 1e-9 {
			t.Fatalf("expected installment total 32.68, got %+v", quote.InstallmentTotal)
		}
	})

	t.Run("requested installments override catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewPricingUseCase(catalog)

		machine := entities.Machine{
			Name:          "Plain",
			Category:      entities.CategoryPagSeguro,
			Pricing:       entities.PricingFlat,
			FlatUnitPrice: 120,
			Installments:  12,
		}
		catalog.EXPECT().GetByName(gomock.Any(), entities.CategoryPagSeguro, "Plain").Return(machine, nil)

		quote, err := uc.Quote(context.Background(), entities.CategoryPagSeguro, "Plain", 1, entities.PaymentMethodInstallment, intp(6))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Installments == nil || *quote.Installments != 6 {
			t.Fatalf("expected 6 installments, got %+v", quote.Installments)
		}
		if quote.InstallmentUnitPrice == nil || math.Abs(*quote.InstallmentUnitPrice-20) > 1e-9 {
			t.Fatalf("expected installment unit 20, got %+v", quote.InstallmentUnitPrice)
		}
	})

	t.Run("tiered quote with auto installment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewPricingUseCase(catalog)

		machine := entities.Machine{
			Name:     "Tiered",
			Category: entities.CategorySubAcquirer,
			Pricing:  entities.PricingTiered,
			Tiers: []entities.PriceTier{
				{MinQty: 1, MaxQty: intp(9), UnitPrice: 525},
				{MinQty: 10, UnitPrice: 475},
			},
			AutoInstallment: true,
			Installments:    12,
		}
		catalog.EXPECT().GetByName(gomock.Any(), entities.CategorySubAcquirer, "Tiered").Return(machine, nil)

		quote, err := uc.Quote(context.Background(), entities.CategorySubAcquirer, "Tiered", 15, entities.PaymentMethodInstallment, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.UnitPrice != 475 {
			t.Fatalf("expected unit 475, got %v", quote.UnitPrice)
		}
		if quote.TotalPrice != 7125 {
			t.Fatalf("expected total 7125, got %v", quote.TotalPrice)
		}
		if quote.InstallmentUnitPrice == nil || math.Abs(*quote.InstallmentUnitPrice-475.0/12) > 1e-9 {
			t.Fatalf("expected installment unit 475/12, got %+v", quote.InstallmentUnitPrice)
		}
	})

	t.Run("quantity is normalized not rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewPricingUseCase(catalog)

		catalog.EXPECT().GetByName(gomock.Any(), entities.CategoryPagSeguro, "Smart").Return(flatMachine(), nil).Times(2)

		quote, err := uc.Quote(context.Background(), entities.CategoryPagSeguro, "Smart", -3, entities.PaymentMethodCash, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.TotalPrice != 196.08 {
			t.Fatalf("expected qty clamp to 1, got total %v", quote.TotalPrice)
		}

		quote, err = uc.Quote(context.Background(), entities.CategoryPagSeguro, "Smart", 99999, entities.PaymentMethodCash, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(quote.TotalPrice-196.08*1000) > 1e-6 {
			t.Fatalf("expected qty clamp to 1000, got total %v", quote.TotalPrice)
		}
	})
}

func TestPricingUseCase_ListMachines(t *testing.T) {
	t.Run("invalid category", func(t *testing.T) {
		uc := NewPricingUseCase(nil)
		_, err := uc.ListMachines(context.Background(), "banco")
		if !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("delegates to catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
		uc := NewPricingUseCase(catalog)

		catalog.EXPECT().ListByCategory(gomock.Any(), entities.CategoryPagSeguro).Return([]entities.Machine{flatMachine()}, nil)

		machines, err := uc.ListMachines(context.Background(), entities.CategoryPagSeguro)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(machines) != 1 || machines[0].Name != "Smart" {
			t.Fatalf("unexpected machines: %+v", machines)
		}
	})
}
