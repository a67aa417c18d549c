package notification

import (
	"context"

	"carrental/internal/domain"
)

// Event is pushed to the owner's live connection when one of their bookings
// is inserted. It deliberately carries ids only: the client refetches its
// booking list on receipt, since the event lacks the joined car snapshot.
type Event struct {
	Type      string `json:"type"`
	BookingID string `json:"booking_id"`
	Username  string `json:"username"`
}

const EventBookingCreated = "booking.created"

// BookingFeed pushes booking insert events through the hub, filtered to the
// owning username.
type BookingFeed struct {
	hub *Hub
}

func NewBookingFeed(hub *Hub) *BookingFeed {
	return &BookingFeed{hub: hub}
}

func (f *BookingFeed) NotifyBookingCreated(_ context.Context, b *domain.Booking) error {
	f.hub.SendToUser(b.Username, Event{
		Type:      EventBookingCreated,
		BookingID: b.ID,
		Username:  b.Username,
	})
	return nil
}
