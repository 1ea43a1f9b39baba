package handlers

import (
	"net/http"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/interfaces/rest"
	"github.com/oapi-codegen/runtime"
)

// CancelEvent stops sales and queues refunds for every active ticket
// @Summary      Cancel an event
// @Tags         events
// @Produce      json
// @Param        eventId  path      int  true  "Event id"
// @Success      200      {object}  rest.APIResponse{data=CancelEventResponse}
// @Failure      404      {object}  rest.APIResponse
// @Router       /events/{eventId}/cancel [post]
func (h *Handlers) CancelEvent(w http.ResponseWriter, r *http.Request) {
	var eventID int64
	err := runtime.BindStyledParameterWithOptions("simple", "eventId", r.PathValue("eventId"), &eventID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		h.fail(w, application.NewValidationError(err))
		return
	}

	flagged, err := h.events.CancelEvent(r.Context(), eventID)
	if err != nil {
		h.fail(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, CancelEventResponse{EventID: eventID, TicketsToRefund: flagged})
}
