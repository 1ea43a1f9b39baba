package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/stretchr/testify/assert"
)

func TestMapGatewayError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code string
	}{
		{"not found", &application.GatewayError{StatusCode: http.StatusNotFound}, application.ErrCodeNotFound},
		{"unauthorized", &application.GatewayError{Code: "Unauthorized", StatusCode: http.StatusUnauthorized}, application.ErrCodeGatewayUnavailable},
		{"forbidden", &application.GatewayError{StatusCode: http.StatusForbidden}, application.ErrCodeGatewayUnavailable},
		{"bad request", &application.GatewayError{StatusCode: http.StatusBadRequest}, application.ErrCodeGatewayUnavailable},
		{"throttled", &application.GatewayError{StatusCode: http.StatusTooManyRequests}, application.ErrCodeGatewayUnavailable},
		{"server error", &application.GatewayError{StatusCode: http.StatusBadGateway}, application.ErrCodeGatewayUnavailable},
		{"deadline", fmt.Errorf("get bill: %w", context.DeadlineExceeded), application.ErrCodeGatewayUnavailable},
		{"transport", errors.New("connection reset by peer"), application.ErrCodeGatewayUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := mapGatewayError(tc.err)

			assert.True(t, application.HasCode(mapped, tc.code), "got %v", mapped)
			assert.ErrorIs(t, mapped, tc.err)
		})
	}
}

func TestMapGatewayError_AuthFailureIsRetryable(t *testing.T) {
	err := mapGatewayError(&application.GatewayError{StatusCode: http.StatusUnauthorized})

	assert.True(t, application.IsRetryable(err))
}
