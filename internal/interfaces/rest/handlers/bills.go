package handlers

import (
	"net/http"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/application/services"
	"github.com/DanielPopoola/ticketing-engine/internal/interfaces/rest"
	"github.com/oapi-codegen/runtime"
)

// ConfirmBill turns a paid bill into a ticket
// @Summary      Confirm a bill
// @Description  Checks the bill with the acquirer. A paid bill yields a ticket, an unpaid one answers 202.
// @Tags         bills
// @Produce      json
// @Param        billId  path      string  true  "Bill id returned by buy"
// @Success      200     {object}  rest.APIResponse{data=ConfirmResponse}
// @Success      202     {object}  rest.APIResponse{data=ConfirmResponse}
// @Failure      404     {object}  rest.APIResponse  "Unknown bill or already confirmed"
// @Failure      409     {object}  rest.APIResponse  "Seat was sold to someone else"
// @Failure      422     {object}  rest.APIResponse  "Bill expired or payment declined"
// @Router       /bills/{billId}/confirm [post]
func (h *Handlers) ConfirmBill(w http.ResponseWriter, r *http.Request) {
	var billID string
	err := runtime.BindStyledParameterWithOptions("simple", "billId", r.PathValue("billId"), &billID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		h.fail(w, application.NewValidationError(err))
		return
	}

	result, err := h.confirm.ConfirmBuying(r.Context(), billID)
	if err != nil {
		h.fail(w, err)
		return
	}

	if result.Outcome == services.OutcomePending {
		rest.WriteJSON(w, http.StatusAccepted, ConfirmResponse{Status: string(result.Outcome)})
		return
	}

	rest.WriteJSON(w, http.StatusOK, ConfirmResponse{
		Status: string(result.Outcome),
		Ticket: toTicketResponse(result.Ticket),
	})
}
