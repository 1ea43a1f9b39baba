package handlers

import (
	"net/http"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/application/services"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/DanielPopoola/ticketing-engine/internal/interfaces/rest"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
)

// BuyTicket reserves a seat and opens a bill with the acquirer
// @Summary      Buy a ticket
// @Description  Places a soft claim on the seat and returns the payment page of a new bill.
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        X-User-ID     header    string      true   "Buyer id"
// @Param        X-User-Email  header    string      false  "Buyer email for notifications"
// @Param        request       body      BuyRequest  true   "Seat and expected price"
// @Success      200           {object}  rest.APIResponse{data=BuyResponse}
// @Failure      400           {object}  rest.APIResponse  "Invalid request or price mismatch"
// @Failure      404           {object}  rest.APIResponse  "Unknown event or landing"
// @Failure      409           {object}  rest.APIResponse  "Seat taken or sold out"
// @Failure      422           {object}  rest.APIResponse  "Acquirer refused the bill"
// @Failure      503           {object}  rest.APIResponse  "Acquirer unavailable"
// @Router       /tickets/buy [post]
func (h *Handlers) BuyTicket(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	var req BuyRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	result, err := h.purchase.Buy(r.Context(), services.BuyCommand{
		UserID:    user,
		UserEmail: r.Header.Get(userEmailHeader),
		EventID:   req.EventID,
		Seat:      req.SeatData.toDomain(),
		Price:     req.Price,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, BuyResponse{PayURL: result.PayURL, BillID: result.BillID})
}

// CheckTicket admits the holder of an active ticket
// @Summary      Check a ticket at the entrance
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        request  body  CheckRequest  true  "Ticket uuid from the QR code"
// @Success      200
// @Failure      400  {object}  rest.APIResponse  "Ticket is not active"
// @Failure      410  {object}  rest.APIResponse  "Ticket does not exist"
// @Router       /tickets/check [post]
func (h *Handlers) CheckTicket(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	id, err := uuid.Parse(req.UUID)
	if err != nil {
		h.fail(w, application.NewValidationError(err))
		return
	}

	if err := h.checkIn.CheckTicketQr(r.Context(), id); err != nil {
		h.fail(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// ListTickets returns the caller's tickets
// @Summary      List my tickets
// @Tags         tickets
// @Produce      json
// @Param        X-User-ID  header    string  true   "Ticket holder id"
// @Param        limit      query     int     false  "Page size"  default(20)
// @Param        offset     query     int     false  "Offset"     default(0)
// @Success      200        {object}  rest.APIResponse{data=[]TicketResponse}
// @Router       /tickets [get]
func (h *Handlers) ListTickets(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	var limit, offset *int
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		h.fail(w, application.NewValidationError(err))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "offset", r.URL.Query(), &offset); err != nil {
		h.fail(w, application.NewValidationError(err))
		return
	}

	tickets, err := h.query.GetUserTickets(r.Context(), user, deref(limit), deref(offset))
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, toTicketResponses(tickets))
}

// GetTicket returns one of the caller's tickets
// @Summary      Get a ticket
// @Tags         tickets
// @Produce      json
// @Param        X-User-ID  header    string  true  "Ticket holder id"
// @Param        ticketId   path      string  true  "Ticket uuid"
// @Success      200        {object}  rest.APIResponse{data=TicketResponse}
// @Failure      404        {object}  rest.APIResponse
// @Router       /tickets/{ticketId} [get]
func (h *Handlers) GetTicket(w http.ResponseWriter, r *http.Request) {
	user, err := userID(r)
	if err != nil {
		h.fail(w, err)
		return
	}

	var id uuid.UUID
	err = runtime.BindStyledParameterWithOptions("simple", "ticketId", r.PathValue("ticketId"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		h.fail(w, application.NewValidationError(err))
		return
	}

	ticket, err := h.query.GetTicket(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}
	// other users' tickets are indistinguishable from missing ones
	if ticket.UserID != user {
		h.fail(w, application.NewNotFoundError(domain.ErrTicketNotFound))
		return
	}

	rest.WriteJSON(w, http.StatusOK, toTicketResponse(ticket))
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
