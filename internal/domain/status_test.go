package domain_test

import (
	"testing"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestParseBillStatus(t *testing.T) {
	cases := map[string]domain.BillStatus{
		"CREATED":   domain.BillCreated,
		"paid":      domain.BillPaid,
		" EXPIRED ": domain.BillExpired,
		"DECLINED":  domain.BillDeclined,
		"WAITING":   domain.BillUnknown,
		"":          domain.BillUnknown,
	}
	for raw, want := range cases {
		assert.Equal(t, want, domain.ParseBillStatus(raw), "raw=%q", raw)
	}

	assert.True(t, domain.BillCreated.IsSuccess())
	assert.True(t, domain.BillPaid.IsSuccess())
	assert.True(t, domain.BillExpired.IsFailure())
	assert.False(t, domain.BillUnknown.IsSuccess())
	assert.False(t, domain.BillUnknown.IsFailure())
}

func TestPaymentStatus_TicketStatus(t *testing.T) {
	assert.Equal(t, domain.StatusWaitingPayment, domain.ParsePaymentStatus("WAITING").TicketStatus())
	assert.Equal(t, domain.StatusActive, domain.ParsePaymentStatus("COMPLETED").TicketStatus())
	assert.Equal(t, domain.StatusCanceled, domain.ParsePaymentStatus("DECLINED").TicketStatus())
	assert.Equal(t, domain.StatusCanceled, domain.ParsePaymentStatus("failed").TicketStatus())
	assert.Equal(t, domain.StatusUnknown, domain.ParsePaymentStatus("AUTHORIZED").TicketStatus())
}

func TestRefundStatus_TicketStatus(t *testing.T) {
	assert.Equal(t, domain.StatusWaitingRefund, domain.ParseRefundStatus("WAITING").TicketStatus())
	assert.Equal(t, domain.StatusWaitingRefund, domain.ParseRefundStatus("PARTIAL").TicketStatus())
	assert.Equal(t, domain.StatusSuccessRefund, domain.ParseRefundStatus("COMPLETED").TicketStatus())
	assert.Equal(t, domain.StatusFailRefund, domain.ParseRefundStatus("DECLINED").TicketStatus())
	assert.Equal(t, domain.StatusUnknown, domain.ParseRefundStatus("SOMETHING").TicketStatus())
}

func TestSeatData(t *testing.T) {
	t.Run("absent parts compare equal", func(t *testing.T) {
		a := domain.SeatData{Seat: strPtr("3")}
		b := domain.SeatData{Seat: strPtr("3")}

		assert.True(t, a.Equal(b))
	})

	t.Run("absent differs from present", func(t *testing.T) {
		a := domain.SeatData{Section: strPtr("A"), Seat: strPtr("3")}
		b := domain.SeatData{Seat: strPtr("3")}

		assert.False(t, a.Equal(b))
	})

	t.Run("landing drops the seat", func(t *testing.T) {
		a := domain.SeatData{Section: strPtr("A"), Row: strPtr("2"), Seat: strPtr("3")}

		assert.Nil(t, a.Landing().Seat)
		assert.Equal(t, "A", *a.Landing().Section)
	})
}

func TestBookingKey(t *testing.T) {
	booking := newBooking()

	assert.Equal(t, "event7_billbill-123", booking.Key())
	assert.True(t, booking.ClaimsSameSeat(7, booking.Seat))
	assert.False(t, booking.ClaimsSameSeat(8, booking.Seat))
}

func TestBooking_GeneralAdmissionNeverContested(t *testing.T) {
	admission := domain.SeatData{Section: strPtr("FAN"), Row: nil}
	booking := newBooking()
	booking.Seat = admission

	assert.False(t, admission.Numbered())
	assert.False(t, booking.ClaimsSameSeat(7, admission))
	assert.False(t, booking.ClaimsSameSeat(7, domain.SeatData{}))
}

func TestEvent_OnSale(t *testing.T) {
	now := time.Now()

	open := &domain.Event{StartAt: now.Add(time.Hour), EndAt: now.Add(3 * time.Hour)}
	ended := &domain.Event{StartAt: now.Add(-3 * time.Hour), EndAt: now.Add(-time.Hour)}
	canceled := &domain.Event{EndAt: now.Add(time.Hour), Canceled: true}

	assert.True(t, open.OnSale(now))
	assert.False(t, ended.OnSale(now))
	assert.False(t, canceled.OnSale(now))
}
