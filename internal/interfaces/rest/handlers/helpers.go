package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/DanielPopoola/ticketing-engine/internal/interfaces/rest"
)

const maxBodyBytes = 1 << 20

func (h *Handlers) decode(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return application.NewValidationError(err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return application.NewValidationError(fmt.Errorf("malformed JSON body: %w", err))
	}
	if err := h.validate.Struct(dst); err != nil {
		return application.NewValidationError(err)
	}
	return nil
}

func userID(r *http.Request) (string, error) {
	id := r.Header.Get(userIDHeader)
	if id == "" {
		return "", application.NewValidationError(domain.NewMissingFieldError(userIDHeader))
	}
	return id, nil
}

func (h *Handlers) fail(w http.ResponseWriter, err error) {
	rest.WriteError(w, err, h.logger)
}
