package services

import (
	"github.com/DanielPopoola/ticketing-engine/internal/application"
)

// mapGatewayError sorts a failed gateway call into the service taxonomy.
// Only a 404 is definitive. Every other HTTP failure, auth errors included,
// says nothing about the bill and stays retryable: GatewayRejected is kept
// for failure statuses the acquirer reports in a payload.
func mapGatewayError(err error) error {
	if application.IsGatewayNotFound(err) {
		return application.NewNotFoundError(err)
	}
	return application.NewGatewayUnavailableError(err)
}
