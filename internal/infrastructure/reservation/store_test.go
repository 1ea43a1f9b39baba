package reservation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/DanielPopoola/ticketing-engine/internal/infrastructure/reservation"
	"github.com/go-redis/redismock/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRedisStore_SaveBooking(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := reservation.NewRedisStore(db)

	booking := &domain.TemporaryBooking{
		EventID: 7,
		BillID:  "bill-1",
		Seat:    domain.SeatData{Section: strPtr("A"), Row: strPtr("1"), Seat: strPtr("12")},
		UserID:  "user-1",
		Email:   "user@example.com",
		Price:   decimal.RequireFromString("1500"),
	}

	mock.ExpectTxPipeline()
	mock.Regexp().ExpectSet("event7_billbill-1", `.*`, 600*time.Second).SetVal("OK")
	mock.ExpectSet("bill_bill-1", int64(7), 600*time.Second).SetVal("OK")
	mock.ExpectTxPipelineExec()

	require.NoError(t, store.SaveBooking(context.Background(), booking, 600*time.Second))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_FindBookingsByEvent(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := reservation.NewRedisStore(db)

	keys := []string{"event7_billbill-1", "event7_billbill-2"}
	mock.ExpectScan(0, "event7_bill*", 100).SetVal(keys, 0)
	mock.ExpectMGet(keys...).SetVal([]interface{}{
		`{"seat_data":{"section":"A","row":"1","seat":"12"},"user":"user-1","price":"1500","event":7,"email":"a@example.com"}`,
		nil,
	})

	bookings, err := store.FindBookingsByEvent(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "bill-1", bookings[0].BillID)
	assert.Equal(t, int64(7), bookings[0].EventID)
	assert.Equal(t, "user-1", bookings[0].UserID)
	assert.Equal(t, "a@example.com", bookings[0].Email)
	assert.True(t, bookings[0].Price.Equal(decimal.NewFromInt(1500)))
	assert.True(t, bookings[0].Seat.Equal(domain.SeatData{Section: strPtr("A"), Row: strPtr("1"), Seat: strPtr("12")}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_FindBookingByBill(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := reservation.NewRedisStore(db)

	mock.ExpectGet("bill_bill-9").SetVal("3")
	mock.ExpectGet("event3_billbill-9").SetVal(
		`{"seat_data":{"section":null,"row":null,"seat":null},"user":"user-2","price":"10.50","event":3,"email":""}`,
	)

	booking, err := store.FindBookingByBill(context.Background(), "bill-9")

	require.NoError(t, err)
	assert.Equal(t, int64(3), booking.EventID)
	assert.Equal(t, "bill-9", booking.BillID)
	assert.Nil(t, booking.Seat.Section)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_FindBookingByBill_Missing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := reservation.NewRedisStore(db)

	mock.ExpectGet("bill_bill-9").RedisNil()

	_, err := store.FindBookingByBill(context.Background(), "bill-9")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_FindBookingByBill_BookingExpired(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := reservation.NewRedisStore(db)

	mock.ExpectGet("bill_bill-9").SetVal("3")
	mock.ExpectGet("event3_billbill-9").RedisNil()

	_, err := store.FindBookingByBill(context.Background(), "bill-9")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_FindBookingByBill_LookupError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := reservation.NewRedisStore(db)

	mock.ExpectGet("bill_bill-9").SetErr(errors.New("connection refused"))

	_, err := store.FindBookingByBill(context.Background(), "bill-9")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestRedisStore_ScanError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := reservation.NewRedisStore(db)

	mock.ExpectScan(0, "event1_bill*", 100).SetErr(errors.New("connection refused"))

	_, err := store.FindBookingsByEvent(context.Background(), 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRedisStore_DeleteBooking(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := reservation.NewRedisStore(db)

	mock.ExpectDel("event7_billbill-1", "bill_bill-1").SetVal(2)

	err := store.DeleteBooking(context.Background(), &domain.TemporaryBooking{EventID: 7, BillID: "bill-1"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_PendingBills(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := reservation.NewRedisStore(db)
	ctx := context.Background()

	mock.ExpectLPush(reservation.PendingBillsKey, "bill-1").SetVal(1)
	mock.ExpectLRange(reservation.PendingBillsKey, 0, -1).SetVal([]string{"bill-1"})
	mock.ExpectLRem(reservation.PendingBillsKey, 0, "bill-1").SetVal(1)

	require.NoError(t, store.AddPendingBill(ctx, "bill-1"))

	ids, err := store.ListPendingBills(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bill-1"}, ids)

	require.NoError(t, store.RemovePendingBill(ctx, "bill-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
