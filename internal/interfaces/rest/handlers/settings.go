package handlers

import (
	"net/http"

	"github.com/DanielPopoola/ticketing-engine/internal/interfaces/rest"
)

// GetEmailSettings reports whether reminder emails are sent
// @Summary      Read the email switch
// @Tags         settings
// @Produce      json
// @Success      200  {object}  rest.APIResponse{data=EmailSettingsResponse}
// @Router       /settings/email [get]
func (h *Handlers) GetEmailSettings(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.emails.SendEmails(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, EmailSettingsResponse{SendEmails: enabled})
}

// UpdateEmailSettings turns reminder emails on or off for every event
// @Summary      Flip the email switch
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request  body      EmailSettingsRequest  true  "New value"
// @Success      200      {object}  rest.APIResponse{data=EmailSettingsResponse}
// @Failure      400      {object}  rest.APIResponse
// @Router       /settings/email [put]
func (h *Handlers) UpdateEmailSettings(w http.ResponseWriter, r *http.Request) {
	var req EmailSettingsRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, err)
		return
	}

	if err := h.emails.SetSendEmails(r.Context(), *req.SendEmails); err != nil {
		h.fail(w, err)
		return
	}

	h.logger.Info("email switch updated", "send_emails", *req.SendEmails)
	rest.WriteJSON(w, http.StatusOK, EmailSettingsResponse{SendEmails: *req.SendEmails})
}
