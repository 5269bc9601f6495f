package usecase

import (
	"context"
	"errors"
	"strings"

	"maquininhas_mky/internal/domain/entities"
	"maquininhas_mky/internal/usecase/interfaces"
)

var (
	ErrMachineNotFound      = errors.New("machine not found in catalog")
	ErrInvalidCategory      = errors.New("invalid machine category")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// IPricingUseCase exposes the catalog and the pricing engine.
//
// Quote is pure aside from the catalog read: no side effects, safe to call
// repeatedly for live UI feedback. The same derivation runs again inside
// order creation so client-computed totals are never trusted.

type IPricingUseCase interface {
	Quote(ctx context.Context, category entities.MachineCategory, machineName string, quantity int, method entities.PaymentMethod, requestedInstallments *int) (entities.Quote, error)
	ListMachines(ctx context.Context, category entities.MachineCategory) ([]entities.Machine, error)
}

type PricingUseCase struct {
	catalog interfaces.ICatalogRepository
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(catalog interfaces.ICatalogRepository) *PricingUseCase {
	return &PricingUseCase{catalog: catalog}
}

func (u *PricingUseCase) Quote(ctx context.Context, category entities.MachineCategory, machineName string, quantity int, method entities.PaymentMethod, requestedInstallments *int) (entities.Quote, error) {
	if !category.Valid() {
		return entities.Quote{}, ErrInvalidCategory
	}
	if !method.Valid() {
		return entities.Quote{}, ErrInvalidPaymentMethod
	}
	machineName = strings.TrimSpace(machineName)
	if machineName == "" {
		return entities.Quote{}, ErrMachineNotFound
	}

	machine, err := u.catalog.GetByName(ctx, category, machineName)
	if err != nil {
		return entities.Quote{}, err
	}
	if machine.Name == "" {
		return entities.Quote{}, ErrMachineNotFound
	}

	return quoteMachine(machine, quantity, method, requestedInstallments), nil
}

func (u *PricingUseCase) ListMachines(ctx context.Context, category entities.MachineCategory) ([]entities.Machine, error) {
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	return u.catalog.ListByCategory(ctx, category)
}

// quoteMachine computes the full price breakdown for one catalog entry.
// Cash quotes carry no installment fields regardless of catalog data.
func quoteMachine(machine entities.Machine, quantity int, method entities.PaymentMethod, requestedInstallments *int) entities.Quote {
	q := entities.ClampQuantity(quantity)
	unit := machine.UnitPrice(q)

	quote := entities.Quote{
		UnitPrice:  unit,
		TotalPrice: unit * float64(q),
	}

	if method != entities.PaymentMethodInstallment {
		return quote
	}

	installments := machine.InstallmentsOrDefault()
	if requestedInstallments != nil {
		installments = entities.ClampInstallments(*requestedInstallments)
	}

	if unitInstallment, ok := machine.InstallmentUnitPrice(q, requestedInstallments); ok {
		total := unitInstallment * float64(q)
		quote.Installments = &installments
		quote.InstallmentUnitPrice = &unitInstallment
		quote.InstallmentTotal = &total
	}
	return quote
}
