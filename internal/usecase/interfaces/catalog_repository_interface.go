package interfaces

import (
	"context"
	"maquininhas_mky/internal/domain/entities"
)

// ICatalogRepository abstracts the machine catalog lookup.
//
// The catalog is a small static table today, but the pricing engine only
// depends on this interface so the data source can move without touching it.

type ICatalogRepository interface {
	GetByName(ctx context.Context, category entities.MachineCategory, name string) (entities.Machine, error)
	ListByCategory(ctx context.Context, category entities.MachineCategory) ([]entities.Machine, error)
}
