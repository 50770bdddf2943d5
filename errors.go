package zapay

import "github.com/boddenberg/zapay-go/internal/domain"

// Error types, aliased so callers can match them with errors.As.
type (
	// ValidationError reports a caller input that failed a constraint.
	ValidationError = domain.ValidationError
	// APIError reports a non-200 answer from the remote API.
	APIError = domain.APIError
	// TransportError reports a request that never produced a response.
	TransportError = domain.TransportError
	// IntegrationError reports a 200 payload that failed validation.
	IntegrationError = domain.IntegrationError
	// UsageError reports an SDK misuse, e.g. calling before authentication.
	UsageError = domain.UsageError
)
