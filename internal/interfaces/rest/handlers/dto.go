package handlers

import (
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SeatData struct {
	Section *string `json:"section" example:"A"`
	Row     *string `json:"row" example:"12"`
	Seat    *string `json:"seat" example:"7"`
}

type BuyRequest struct {
	EventID  int64           `json:"event_id" validate:"required,gt=0" example:"42"`
	SeatData SeatData        `json:"seat_data"`
	Price    decimal.Decimal `json:"price" swaggertype:"string" example:"1500.00"`
}

type BuyResponse struct {
	PayURL string `json:"pay_url"`
	BillID string `json:"bill_id"`
}

type CheckRequest struct {
	UUID string `json:"uuid" validate:"required,uuid"`
}

type ConfirmResponse struct {
	Status string          `json:"status" example:"confirmed"`
	Ticket *TicketResponse `json:"ticket,omitempty"`
}

type CancelEventResponse struct {
	EventID         int64 `json:"event_id"`
	TicketsToRefund int64 `json:"tickets_to_refund"`
}

type EmailSettingsRequest struct {
	SendEmails *bool `json:"send_emails" validate:"required"`
}

type EmailSettingsResponse struct {
	SendEmails bool `json:"send_emails"`
}

type TicketResponse struct {
	UUID               uuid.UUID       `json:"uuid"`
	EventID            *int64          `json:"event_id"`
	EventName          string          `json:"event_name"`
	EventStartAt       *time.Time      `json:"event_start_at,omitempty"`
	BillID             string          `json:"bill_id"`
	SeatData           SeatData        `json:"seat_data"`
	Price              decimal.Decimal `json:"price" swaggertype:"string"`
	Status             string          `json:"status"`
	RefundStatus       string          `json:"refund_status"`
	AcquiringStatus    string          `json:"acquiring_status"`
	NotificationStatus string          `json:"notification_status"`
	BoughtAt           time.Time       `json:"bought_at"`
}

func (s SeatData) toDomain() domain.SeatData {
	return domain.SeatData{Section: s.Section, Row: s.Row, Seat: s.Seat}
}

func toTicketResponse(t *domain.Ticket) *TicketResponse {
	resp := &TicketResponse{
		UUID:               t.UUID,
		EventID:            t.EventID,
		EventName:          t.EventName,
		BillID:             t.BillID,
		SeatData:           SeatData{Section: t.Seat.Section, Row: t.Seat.Row, Seat: t.Seat.Seat},
		Price:              t.Price,
		Status:             string(t.Status),
		RefundStatus:       t.RefundStatusLabel(),
		AcquiringStatus:    t.AcquiringStatus,
		NotificationStatus: string(t.NotificationStatus),
		BoughtAt:           t.BoughtAt,
	}
	if t.Event != nil {
		startAt := t.Event.StartAt
		resp.EventStartAt = &startAt
		if resp.EventName == "" {
			resp.EventName = t.Event.Name
		}
	}
	return resp
}

func toTicketResponses(tickets []*domain.Ticket) []*TicketResponse {
	out := make([]*TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResponse(t))
	}
	return out
}
