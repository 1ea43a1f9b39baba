package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TemporaryBooking is the soft claim on a seat between bill creation and
// ticket confirmation. It lives only in the reservation store and expires
// with its TTL.
type TemporaryBooking struct {
	EventID int64
	BillID  string
	Seat    SeatData
	UserID  string
	Email   string
	Price   decimal.Decimal
}

func NewTemporaryBooking(eventID int64, billID, userID, email string, seat SeatData, price decimal.Decimal) (*TemporaryBooking, error) {
	if eventID <= 0 {
		return nil, NewMissingFieldError("event ID")
	}
	if billID == "" {
		return nil, NewMissingFieldError("bill ID")
	}
	if userID == "" {
		return nil, NewMissingFieldError("user ID")
	}
	return &TemporaryBooking{
		EventID: eventID,
		BillID:  billID,
		Seat:    seat,
		UserID:  userID,
		Email:   email,
		Price:   price,
	}, nil
}

// Key is the reservation store key for the booking.
func (b *TemporaryBooking) Key() string {
	return BookingKey(b.EventID, b.BillID)
}

// ClaimsSameSeat reports whether both bookings target one numbered seat of
// one event. General admission bookings never contest each other.
func (b *TemporaryBooking) ClaimsSameSeat(eventID int64, seat SeatData) bool {
	if !seat.Numbered() {
		return false
	}
	return b.EventID == eventID && b.Seat.Equal(seat)
}

func BookingKey(eventID int64, billID string) string {
	return fmt.Sprintf("event%d_bill%s", eventID, billID)
}
