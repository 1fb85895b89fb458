package cost

import (
	"context"
	"errors"
	"strings"
	"time"

	"kosku/internal/domain"
	"kosku/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	costs Repository
}

func NewService(costs Repository) *Service {
	return &Service{costs: costs}
}

// ParseKind maps the :kind path segment to a CostKind.
func ParseKind(raw string) (domain.CostKind, error) {
	kind := domain.CostKind(raw)
	if !domain.ValidCostKind(kind) {
		return "", ErrBadKind
	}
	return kind, nil
}

func (s *Service) List(ctx context.Context, kind domain.CostKind) ([]domain.CostRecord, error) {
	return s.costs.ListByKind(ctx, kind)
}

func (s *Service) Get(ctx context.Context, kind domain.CostKind, id string) (*domain.CostRecord, error) {
	rec, err := s.costs.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *Service) Create(ctx context.Context, kind domain.CostKind, req CreateCostRequest) (*domain.CostRecord, error) {
	status := domain.CostStatus(req.Status)
	if req.Status == "" {
		status = domain.CostPending
	}

	rec := &domain.CostRecord{
		Kind:    kind,
		Status:  status,
		Caption: strings.TrimSpace(req.Caption),
		Harga:   req.Harga,
		Tanggal: req.Tanggal,
		Receipt: toReceipt(req.Receipt),
	}
	if err := validateCost(rec); err != nil {
		return nil, err
	}

	if err := s.costs.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service) Update(ctx context.Context, kind domain.CostKind, id string, req UpdateCostRequest) (*domain.CostRecord, error) {
	existing, err := s.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	version := req.Version
	if version == 0 {
		version = existing.Version
	}

	rec := &domain.CostRecord{
		ID:      id,
		Kind:    kind,
		Status:  domain.CostStatus(req.Status),
		Caption: strings.TrimSpace(req.Caption),
		Harga:   req.Harga,
		Tanggal: req.Tanggal,
		Receipt: toReceipt(req.Receipt),
		Version: version,
	}
	if err := validateCost(rec); err != nil {
		return nil, err
	}

	if err := s.costs.Update(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return s.Get(ctx, kind, id)
}

func (s *Service) Delete(ctx context.Context, kind domain.CostKind, id string) error {
	if _, err := s.Get(ctx, kind, id); err != nil {
		return err
	}
	return s.costs.Delete(ctx, kind, id)
}

func toReceipt(r *ReceiptRequest) *domain.CostReceipt {
	if r == nil {
		return nil
	}
	return &domain.CostReceipt{URL: r.URL, FileName: r.FileName}
}

func validateCost(rec *domain.CostRecord) error {
	if rec.Caption == "" {
		return ErrValidation
	}
	if rec.Harga.Sign() <= 0 {
		return ErrValidation
	}
	if _, err := time.Parse("2006-01-02", rec.Tanggal); err != nil {
		return ErrValidation
	}
	if !domain.ValidCostStatus(rec.Status) {
		return ErrValidation
	}
	return nil
}
