package repository

import (
	"context"

	"maquininhas_mky/internal/domain/entities"
	"maquininhas_mky/internal/usecase/interfaces"
)

// CatalogMemoryRepository serves the machine catalog from a fixed in-process
// table. The offering set changes through deploys, not at runtime, so there
// is no backing store.

type CatalogMemoryRepository struct {
	machines []entities.Machine
}

var _ interfaces.ICatalogRepository = (*CatalogMemoryRepository)(nil)

func NewCatalogMemoryRepository() *CatalogMemoryRepository {
	return &CatalogMemoryRepository{machines: defaultCatalog()}
}

func (r *CatalogMemoryRepository) GetByName(ctx context.Context, category entities.MachineCategory, name string) (entities.Machine, error) {
	for _, m := range r.machines {
		if m.Category == category && m.Name == name {
			return m, nil
		}
	}
	return entities.Machine{}, nil
}

func (r *CatalogMemoryRepository) ListByCategory(ctx context.Context, category entities.MachineCategory) ([]entities.Machine, error) {
	out := make([]entities.Machine, 0, len(r.machines))
	for _, m := range r.machines {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out, nil
}

func defaultCatalog() []entities.Machine {
	return []entities.Machine{
		{
			Name:                     "Smart",
			Category:                 entities.CategoryPagSeguro,
			Pricing:                  entities.PricingFlat,
			FlatUnitPrice:            196.08,
			FlatInstallmentUnitPrice: floatPtr(16.34),
			Installments:             12,
		},
		{
			Name:                     "Moderninha Pro",
			Category:                 entities.CategoryPagSeguro,
			Pricing:                  entities.PricingFlat,
			FlatUnitPrice:            107.88,
			FlatInstallmentUnitPrice: floatPtr(8.99),
			Installments:             12,
		},
		{
			Name:                     "Minizinha Chip",
			Category:                 entities.CategoryPagSeguro,
			Pricing:                  entities.PricingFlat,
			FlatUnitPrice:            47.88,
			FlatInstallmentUnitPrice: floatPtr(3.99),
			Installments:             12,
		},
		{
			Name:                     "POS A960",
			Category:                 entities.CategorySubAcquirer,
			Pricing:                  entities.PricingFlat,
			FlatUnitPrice:            826.00,
			FlatInstallmentUnitPrice: floatPtr(69.00),
			Installments:             12,
		},
		{
			Name:     "S920",
			Category: entities.CategorySubAcquirer,
			Pricing:  entities.PricingTiered,
			Tiers: []entities.PriceTier{
				{MinQty: 1, MaxQty: intPtr(10), UnitPrice: 245.00},
			},
			AutoInstallment: true,
			Installments:    12,
		},
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
