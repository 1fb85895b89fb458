package domain

import "time"

// ReminderLog records that an expiry reminder was sent for a booking at a
// given lead time, so a second run on the same boundary day does not send a
// duplicate message.
type ReminderLog struct {
	ID        string    `json:"id"`
	BookingID int64     `json:"booking_id"`
	LeadDays  int       `json:"lead_days"`
	SentAt    time.Time `json:"sent_at"`
}
