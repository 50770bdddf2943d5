package domain

import "time"

// ============================================================
// Protocol lifecycle
// ============================================================

// ProtocolStatus is the state of a payment protocol on the remote side.
// A protocol is the opaque session id correlating a debts lookup through
// confirmation, checkout and order-status steps.
type ProtocolStatus string

const (
	StatusSearch              ProtocolStatus = "SEARCH"
	StatusSimulation          ProtocolStatus = "SIMULATION"
	StatusCheckoutSuccess     ProtocolStatus = "CHECKOUT_SUCCESS"
	StatusVehicleNotFound     ProtocolStatus = "VEHICLE_NOT_FOUND"
	StatusVehicleWithoutDebts ProtocolStatus = "VEHICLE_WITHOUT_DEBTS"
	StatusServiceUnavailable  ProtocolStatus = "SERVICE_UNAVAILABLE"
	StatusCheckoutFail        ProtocolStatus = "CHECKOUT_FAIL"
	StatusPaymentInitiated    ProtocolStatus = "PAYMENT_INITIATED"
	StatusBarcodeEmitted      ProtocolStatus = "BARCODE_EMITTED"
)

// ProtocolStatuses lists every status the remote API emits, in protocol
// lifecycle order.
var ProtocolStatuses = []ProtocolStatus{
	StatusSearch,
	StatusSimulation,
	StatusCheckoutSuccess,
	StatusVehicleNotFound,
	StatusVehicleWithoutDebts,
	StatusServiceUnavailable,
	StatusCheckoutFail,
	StatusPaymentInitiated,
	StatusBarcodeEmitted,
}

// ValidProtocolStatus reports whether s is a status the API can emit.
func ValidProtocolStatus(s ProtocolStatus) bool {
	for _, known := range ProtocolStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Order is the remote view of a protocol's current status.
type Order struct {
	Status ProtocolStatus
}

// WebhookPix carries the PIX charge attached to an async webhook report.
type WebhookPix struct {
	QRCodeURL      string
	QRCodeData     string
	ExpirationDate time.Time
}

// WebhookReport is a parsed async callback about a protocol.
type WebhookReport struct {
	Protocol string
	Status   ProtocolStatus
	Message  *string
	Success  *bool
	Pix      *WebhookPix
}

// Token is a validated bearer credential for the remote API.
// Values exist only through schema.ParseToken.
type Token string
