package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID       int64
	Name     string
	Slug     string
	StartAt  time.Time
	EndAt    time.Time
	Canceled bool
	MinPrice decimal.Decimal
}

// HasEnded reports whether the event is over at the given moment.
func (e *Event) HasEnded(now time.Time) bool {
	return !e.EndAt.After(now)
}

// OnSale reports whether tickets for the event can still be sold.
func (e *Event) OnSale(now time.Time) bool {
	return !e.Canceled && !e.HasEnded(now)
}

// SeatData identifies a seat. Section and row locate the Landing, Seat is
// the place inside it. Any part may be absent for general admission.
type SeatData struct {
	Section *string `json:"section"`
	Row     *string `json:"row"`
	Seat    *string `json:"seat"`
}

// Numbered reports whether the seat names a place. A seat without a number
// is a general admission unit of its landing and is bounded by the landing
// quantity alone.
func (s SeatData) Numbered() bool {
	return s.Seat != nil
}

// Landing returns the seat data reduced to its landing coordinates.
func (s SeatData) Landing() SeatData {
	return SeatData{Section: s.Section, Row: s.Row}
}

// Equal compares two seats treating absent parts as equal to each other.
func (s SeatData) Equal(other SeatData) bool {
	return eqOptional(s.Section, other.Section) &&
		eqOptional(s.Row, other.Row) &&
		eqOptional(s.Seat, other.Seat)
}

func (s SeatData) String() string {
	return fmt.Sprintf("section=%s row=%s seat=%s", optional(s.Section), optional(s.Row), optional(s.Seat))
}

func eqOptional(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func optional(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

// Landing is a purchasable seating category of an event.
type Landing struct {
	ID       int64
	EventID  int64
	Section  *string
	Row      *string
	Quantity int
	Price    decimal.Decimal
}

// SpecialSeat overrides price and type for a named seat inside a Landing.
type SpecialSeat struct {
	ID        int64
	LandingID int64
	Seat      string
	Price     decimal.Decimal
	SeatType  string
}

// PriceFor returns the price a buyer must pay for the seat.
func (l *Landing) PriceFor(special *SpecialSeat) decimal.Decimal {
	if special != nil {
		return special.Price
	}
	return l.Price
}
