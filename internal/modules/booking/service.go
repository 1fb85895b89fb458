package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"kosku/internal/domain"
	"kosku/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	bookings Repository
	rooms    RoomRepository
	events   EventPublisher
}

func NewService(bookings Repository, rooms RoomRepository, events EventPublisher) *Service {
	return &Service{bookings: bookings, rooms: rooms, events: events}
}

// Create registers a new PENDING booking for the calling customer. The room
// is snapshotted into the booking so later room edits do not rewrite history.
func (s *Service) Create(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	duration := domain.DurationType(req.DurationType)
	if !domain.ValidDurationType(duration) {
		return nil, ErrValidation
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	b := &domain.Booking{
		UserID: userID,
		Room: domain.RoomSnapshot{
			RoomID:      room.ID,
			RoomNumber:  room.Name,
			Type:        room.Type,
			Size:        room.Size,
			Description: room.Description,
			Facilities:  room.Facilities,
			Images:      room.Images,
		},
		RentalStatus: domain.BookingPending,
		RentalPeriod: domain.RentalPeriod{
			StartDate:    start,
			EndDate:      endDate(start, duration),
			DurationType: duration,
		},
		ContactInfo: domain.ContactInfo{
			Name:     req.Contact.Name,
			Email:    req.Contact.Email,
			Phone:    req.Contact.Phone,
			WhatsApp: req.Contact.WhatsApp,
		},
		Notes: req.Notes,
	}
	if req.Pricing != nil {
		b.Pricing = &domain.BookingPricing{
			Amount:     req.Pricing.Amount,
			PaidAmount: req.Pricing.PaidAmount,
		}
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	s.publish("booking.created", b)
	return b, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// Get loads a booking. Customers can only read their own; admins read any.
func (s *Service) Get(ctx context.Context, id, userID int64, isAdmin bool) (*domain.Booking, error) {
	b, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.UserID != userID {
		return nil, ErrForbidden
	}
	return b, nil
}

// Approve moves a PENDING booking to APPROVED and marks the room Booked.
func (s *Service) Approve(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.RentalStatus != domain.BookingPending {
		return nil, ErrNotPending
	}

	if err := s.bookings.UpdateStatus(ctx, id, b.Version, domain.BookingApproved); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if err := s.rooms.UpdateStatus(ctx, b.Room.RoomID, domain.RoomBooked); err != nil {
		// The booking decision stands; the room status is a projection of it.
		log.Printf("booking: failed to mark room %d booked: %v", b.Room.RoomID, err)
	}

	approved, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish("booking.approved", approved)
	return approved, nil
}

// Reject and Cancel both move a PENDING booking to the CANCEL terminal
// state; a booking that has already been decided is refused.
func (s *Service) Reject(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.Cancel(ctx, id)
}

func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.RentalStatus != domain.BookingPending {
		return nil, ErrNotPending
	}
	return s.cancel(ctx, b)
}

func (s *Service) cancel(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if err := s.bookings.UpdateStatus(ctx, b.ID, b.Version, domain.BookingCancel); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}

	// Free the room only if it is currently booked and no other live
	// booking still claims it. A room in maintenance stays untouched.
	s.freeRoomIfUnclaimed(ctx, b.Room.RoomID, b.ID)

	cancelled, err := s.get(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	s.publish("booking.cancelled", cancelled)
	return cancelled, nil
}

func (s *Service) freeRoomIfUnclaimed(ctx context.Context, roomID, excludeBookingID int64) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		log.Printf("booking: room lookup for %d: %v", roomID, err)
		return
	}
	if room.Status != domain.RoomBooked {
		return
	}

	active, err := s.bookings.HasActiveForRoom(ctx, roomID, excludeBookingID)
	if err != nil {
		log.Printf("booking: active check for room %d: %v", roomID, err)
		return
	}
	if active {
		return
	}
	if err := s.rooms.UpdateStatus(ctx, roomID, domain.RoomAvailable); err != nil {
		log.Printf("booking: failed to free room %d: %v", roomID, err)
	}
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	return s.bookings.Delete(ctx, id)
}

func (s *Service) AttachDocument(ctx context.Context, id int64, req AttachDocumentRequest) (*domain.BookingDocument, error) {
	docType := domain.DocumentType(req.Type)
	if !domain.ValidDocumentType(docType) {
		return nil, ErrInvalidDocument
	}

	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}

	doc := &domain.BookingDocument{
		BookingID: id,
		Type:      docType,
		FileName:  req.FileName,
		FileURL:   req.FileURL,
	}
	if err := s.bookings.AddDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Service) UpdatePricing(ctx context.Context, id int64, req UpdatePricingRequest) (*domain.Booking, error) {
	if req.Amount.Sign() <= 0 || req.PaidAmount.Sign() < 0 {
		return nil, ErrValidation
	}

	b, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	version := req.Version
	if version == 0 {
		version = b.Version
	}

	pricing := domain.BookingPricing{Amount: req.Amount, PaidAmount: req.PaidAmount}
	if err := s.bookings.UpdatePricing(ctx, id, version, pricing); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return s.get(ctx, id)
}

func (s *Service) get(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) publish(event string, b *domain.Booking) {
	if s.events == nil {
		return
	}
	s.events.Publish(event, b)
}

func endDate(start time.Time, d domain.DurationType) time.Time {
	switch d {
	case domain.DurationWeekly:
		return start.AddDate(0, 0, 7)
	case domain.DurationMonthly:
		return start.AddDate(0, 1, 0)
	case domain.DurationSemester:
		return start.AddDate(0, 6, 0)
	case domain.DurationYearly:
		return start.AddDate(1, 0, 0)
	}
	return start
}
