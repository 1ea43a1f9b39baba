// Package reservation keeps the soft seat claims that live between bill
// creation and ticket confirmation.
package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// PendingBillsKey is the list of bill ids the bill sweep still has to look at.
const PendingBillsKey = "bills_to_check"

const scanCount = 100

// billIndexKey maps a bill id to the event of its booking, so a confirm
// finds the booking without scanning the keyspace.
func billIndexKey(billID string) string {
	return "bill_" + billID
}

type bookingRecord struct {
	SeatData domain.SeatData `json:"seat_data"`
	User     string          `json:"user"`
	Price    decimal.Decimal `json:"price"`
	Event    int64           `json:"event"`
	Email    string          `json:"email"`
}

type RedisStore struct {
	rdb redis.Cmdable
}

func NewRedisStore(rdb redis.Cmdable) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) SaveBooking(ctx context.Context, booking *domain.TemporaryBooking, ttl time.Duration) error {
	data, err := json.Marshal(bookingRecord{
		SeatData: booking.Seat,
		User:     booking.UserID,
		Price:    booking.Price,
		Event:    booking.EventID,
		Email:    booking.Email,
	})
	if err != nil {
		return fmt.Errorf("failed to encode booking: %w", err)
	}

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, booking.Key(), data, ttl)
		pipe.Set(ctx, billIndexKey(booking.BillID), booking.EventID, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save booking %s: %w", booking.Key(), err)
	}
	return nil
}

func (s *RedisStore) FindBookingsByEvent(ctx context.Context, eventID int64) ([]*domain.TemporaryBooking, error) {
	return s.findByPattern(ctx, fmt.Sprintf("event%d_bill*", eventID))
}

// FindBookingByBill returns domain.ErrBookingNotFound once the TTL has
// elapsed or the booking was already consumed.
func (s *RedisStore) FindBookingByBill(ctx context.Context, billID string) (*domain.TemporaryBooking, error) {
	eventID, err := s.rdb.Get(ctx, billIndexKey(billID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("bill %s: %w", billID, domain.ErrBookingNotFound)
		}
		return nil, fmt.Errorf("failed to look up bill %s: %w", billID, err)
	}

	key := domain.BookingKey(eventID, billID)
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("bill %s: %w", billID, domain.ErrBookingNotFound)
		}
		return nil, fmt.Errorf("failed to load booking %s: %w", key, err)
	}
	return decodeBooking(key, raw)
}

func (s *RedisStore) DeleteBooking(ctx context.Context, booking *domain.TemporaryBooking) error {
	if err := s.rdb.Del(ctx, booking.Key(), billIndexKey(booking.BillID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", booking.Key(), err)
	}
	return nil
}

func (s *RedisStore) AddPendingBill(ctx context.Context, billID string) error {
	if err := s.rdb.LPush(ctx, PendingBillsKey, billID).Err(); err != nil {
		return fmt.Errorf("failed to queue bill %s: %w", billID, err)
	}
	return nil
}

func (s *RedisStore) RemovePendingBill(ctx context.Context, billID string) error {
	if err := s.rdb.LRem(ctx, PendingBillsKey, 0, billID).Err(); err != nil {
		return fmt.Errorf("failed to dequeue bill %s: %w", billID, err)
	}
	return nil
}

func (s *RedisStore) ListPendingBills(ctx context.Context) ([]string, error) {
	ids, err := s.rdb.LRange(ctx, PendingBillsKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list pending bills: %w", err)
	}
	return ids, nil
}

func (s *RedisStore) findByPattern(ctx context.Context, pattern string) ([]*domain.TemporaryBooking, error) {
	var keys []string
	iter := s.rdb.Scan(ctx, 0, pattern, scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", pattern, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}

	bookings := make([]*domain.TemporaryBooking, 0, len(keys))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// expired between SCAN and MGET
			continue
		}
		b, err := decodeBooking(keys[i], raw)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func decodeBooking(key, raw string) (*domain.TemporaryBooking, error) {
	eventID, billID, err := parseKey(key)
	if err != nil {
		return nil, err
	}

	var rec bookingRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("failed to decode booking %s: %w", key, err)
	}
	if rec.Event != 0 && rec.Event != eventID {
		return nil, fmt.Errorf("booking %s: event mismatch %d", key, rec.Event)
	}

	return &domain.TemporaryBooking{
		EventID: eventID,
		BillID:  billID,
		Seat:    rec.SeatData,
		UserID:  rec.User,
		Email:   rec.Email,
		Price:   rec.Price,
	}, nil
}

var errMalformedKey = errors.New("malformed booking key")

func parseKey(key string) (int64, string, error) {
	rest, ok := strings.CutPrefix(key, "event")
	if !ok {
		return 0, "", fmt.Errorf("%w: %s", errMalformedKey, key)
	}
	rawEvent, billID, ok := strings.Cut(rest, "_bill")
	if !ok || billID == "" {
		return 0, "", fmt.Errorf("%w: %s", errMalformedKey, key)
	}
	eventID, err := strconv.ParseInt(rawEvent, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %s", errMalformedKey, key)
	}
	return eventID, billID, nil
}
