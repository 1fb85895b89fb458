package room

import (
	"context"
	"errors"
	"strings"

	"kosku/internal/domain"
	"kosku/internal/pkg/validator"
	"kosku/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	rooms Repository
}

func NewService(rooms Repository) *Service {
	return &Service{rooms: rooms}
}

func (s *Service) List(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) Create(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	status := domain.RoomStatus(req.Status)
	if req.Status == "" {
		status = domain.RoomAvailable
	}

	room := &domain.Room{
		Name:         strings.TrimSpace(req.Name),
		Type:         domain.RoomType(req.Type),
		Pricing:      toPricing(req.Pricing),
		Status:       status,
		Description:  req.Description,
		Facilities:   req.Facilities,
		Images:       req.Images,
		MaxOccupancy: req.MaxOccupancy,
		Size:         req.Size,
	}

	if err := validateRoom(room); err != nil {
		return nil, err
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	version := req.Version
	if version == 0 {
		version = existing.Version
	}

	room := &domain.Room{
		ID:           id,
		Name:         strings.TrimSpace(req.Name),
		Type:         domain.RoomType(req.Type),
		Pricing:      toPricing(req.Pricing),
		Status:       domain.RoomStatus(req.Status),
		Description:  req.Description,
		Facilities:   req.Facilities,
		Images:       req.Images,
		MaxOccupancy: req.MaxOccupancy,
		Size:         req.Size,
		Version:      version,
	}

	if err := validateRoom(room); err != nil {
		return nil, err
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete refuses to remove a room that is currently Booked; this is the one
// cross-field invariant the CRUD layer enforces.
func (s *Service) Delete(ctx context.Context, id int64) error {
	room, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if room.Status == domain.RoomBooked {
		return ErrRoomBooked
	}
	return s.rooms.Delete(ctx, id)
}

func toPricing(p PricingRequest) domain.RoomPricing {
	return domain.RoomPricing{
		Weekly:   p.Weekly,
		Monthly:  p.Monthly,
		Semester: p.Semester,
		Yearly:   p.Yearly,
	}
}

func validateRoom(r *domain.Room) error {
	fields := validator.Validate(r)
	if fields == nil {
		fields = make(map[string]string)
	}
	if !domain.ValidRoomType(r.Type) {
		fields["type"] = "unknown room type"
	}
	if !domain.ValidRoomStatus(r.Status) {
		fields["status"] = "unknown room status"
	}
	if r.Pricing.Monthly.Sign() <= 0 {
		fields["pricing.monthly"] = "must be positive"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
