package reminder

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"kosku/internal/domain"
	"kosku/internal/pkg/whatsapp"
)

// Summary reports how many reminders each run sent per lead bucket, plus a
// human-readable label for each bucket so the cron dispatcher's report needs
// no lookup table of its own.
type Summary struct {
	H1           int               `json:"h1"`
	H7           int               `json:"h7"`
	H15          int               `json:"h15"`
	H30          int               `json:"h30"`
	Total        int               `json:"total"`
	Failed       int               `json:"failed"`
	Descriptions map[string]string `json:"perBucketDescription"`
}

func newSummary() *Summary {
	descriptions := make(map[string]string, len(Leads))
	for _, lead := range Leads {
		descriptions[fmt.Sprintf("h%d", lead)] = bucketDescription(lead)
	}
	return &Summary{Descriptions: descriptions}
}

func bucketDescription(lead int) string {
	if lead == 1 {
		return "Berakhir besok"
	}
	return fmt.Sprintf("Berakhir dalam %d hari", lead)
}

type Service struct {
	bookings BookingRepository
	logs     LogRepository
	wa       whatsapp.Sender
	rng      *rand.Rand
	now      func() time.Time
}

func NewService(bookings BookingRepository, logs LogRepository, wa whatsapp.Sender) *Service {
	return &Service{
		bookings: bookings,
		logs:     logs,
		wa:       wa,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// WithRand replaces the template picker's randomness source. Used by tests.
func (s *Service) WithRand(rng *rand.Rand) *Service {
	s.rng = rng
	return s
}

// WithClock replaces the wall clock. Used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Run walks all APPROVED bookings and sends an expiry reminder to every
// tenant whose rental ends exactly 1, 7, 15, or 30 days from today. A booking
// whose end date falls between the boundaries gets nothing; it will be caught
// when it reaches the next boundary. One failed send never aborts the rest of
// the run.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	approved, err := s.bookings.ListByStatus(ctx, domain.BookingApproved)
	if err != nil {
		return nil, err
	}

	now := s.now()
	summary := newSummary()

	for i := range approved {
		b := &approved[i]
		days := b.DaysRemaining(now)

		lead, ok := matchLead(days)
		if !ok {
			continue
		}

		sent, err := s.logs.Exists(ctx, b.ID, lead)
		if err != nil {
			log.Printf("reminder: dedup check booking=%d lead=%d: %v", b.ID, lead, err)
			continue
		}
		if sent {
			continue
		}

		phone := b.ContactInfo.WhatsApp
		if phone == "" {
			phone = b.ContactInfo.Phone
		}
		if phone == "" {
			log.Printf("reminder: booking=%d has no phone, skipping", b.ID)
			continue
		}

		message := pick(templates[lead], s.rng)(b) + paymentLine(b)
		if err := s.wa.Send(ctx, phone, message); err != nil {
			log.Printf("reminder: send booking=%d lead=%d: %v", b.ID, lead, err)
			summary.Failed++
			continue
		}

		if err := s.logs.Create(ctx, &domain.ReminderLog{
			BookingID: b.ID,
			LeadDays:  lead,
			SentAt:    now,
		}); err != nil {
			log.Printf("reminder: log booking=%d lead=%d: %v", b.ID, lead, err)
		}

		summary.bump(lead)
	}

	return summary, nil
}

// matchLead returns the bucket for an exact boundary day. Exactly 7 days out
// lands in the h7 bucket; 6 or 8 days out lands nowhere.
func matchLead(days int) (int, bool) {
	for _, lead := range Leads {
		if days == lead {
			return lead, true
		}
	}
	return 0, false
}

func (s *Summary) bump(lead int) {
	switch lead {
	case 1:
		s.H1++
	case 7:
		s.H7++
	case 15:
		s.H15++
	case 30:
		s.H30++
	}
	s.Total++
}
