package cost

import (
	"context"

	"kosku/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, c *domain.CostRecord) error
	GetByID(ctx context.Context, kind domain.CostKind, id string) (*domain.CostRecord, error)
	ListByKind(ctx context.Context, kind domain.CostKind) ([]domain.CostRecord, error)
	Update(ctx context.Context, c *domain.CostRecord) error
	Delete(ctx context.Context, kind domain.CostKind, id string) error
}
