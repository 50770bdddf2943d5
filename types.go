package zapay

import "github.com/boddenberg/zapay-go/internal/schema"

// The SDK exchanges raw DTOs with callers. The types live in the schema
// package next to their validation rules and are aliased here so callers
// never import internal packages.
type (
	DebtDTO            = schema.DebtDTO
	BillDTO            = schema.BillDTO
	ConfirmationDTO    = schema.ConfirmationDTO
	InstallmentPlanDTO = schema.InstallmentPlanDTO
	CardDTO            = schema.CardDTO
	BillingAddressDTO  = schema.BillingAddressDTO
	PixDTO             = schema.PixDTO
	CustomerDTO        = schema.CustomerDTO
	ClientDetailsDTO   = schema.ClientDetailsDTO
	OrderDTO           = schema.OrderDTO
	CompleteVehicleDTO = schema.CompleteVehicleDTO
	SimpleVehicleDTO   = schema.SimpleVehicleDTO
	WebhookPixDTO      = schema.WebhookPixDTO
	WebhookReportDTO   = schema.WebhookReportDTO
	StateDTO           = schema.StateDTO
	StateKeysDTO       = schema.StateKeysDTO
)

// DebtsResponse is the result of a synchronous debts search.
type DebtsResponse struct {
	Protocol string             `json:"protocol"`
	Debts    []DebtDTO          `json:"debts"`
	Vehicle  CompleteVehicleDTO `json:"vehicle"`
}

// AsyncDebtsResponse acknowledges an asynchronous debts search. Status is
// normally "processing"; the actual result arrives on the webhook.
type AsyncDebtsResponse struct {
	Protocol string `json:"protocol"`
	Status   string `json:"status"`
}

// ConfirmationResponse lists the debts confirmed for payment.
type ConfirmationResponse struct {
	Confirmations []ConfirmationDTO `json:"confirmations"`
}

// CheckOrderResponse reports an order's status and its bills.
type CheckOrderResponse struct {
	Order OrderDTO  `json:"order"`
	Bills []BillDTO `json:"bills"`
}

// InstallmentsResponse lists the quoted payment plans.
type InstallmentsResponse struct {
	InstallmentsPlans []InstallmentPlanDTO `json:"installmentsPlans"`
}

// CheckoutResponse acknowledges a checkout. Status is present only when
// the remote reports one.
type CheckoutResponse struct {
	Success bool    `json:"success"`
	Status  *string `json:"status,omitempty"`
}

// WebhookRegisterResponse acknowledges a webhook endpoint registration.
type WebhookRegisterResponse struct {
	Success bool `json:"success"`
}

// WebhookReportResponse carries a validated async webhook report.
type WebhookReportResponse struct {
	WebhookReport WebhookReportDTO `json:"webhookReport"`
}

// VehicleResponse is the result of a plate lookup.
type VehicleResponse struct {
	Vehicle SimpleVehicleDTO `json:"vehicle"`
}

// WebhookPayloadPix is the PIX charge of a raw webhook callback.
type WebhookPayloadPix struct {
	QRCodeURL      string `json:"qr_code_url"`
	QRCodeData     string `json:"qr_code_data"`
	ExpirationDate string `json:"expiration_date"`
}

// WebhookPayload is the body Zapay POSTs to the registered endpoint,
// exactly as it arrives on the wire. Feed it to Client.WebhookReport to
// validate it.
type WebhookPayload struct {
	Protocol string             `json:"protocol"`
	Status   string             `json:"status"`
	Message  *string            `json:"message,omitempty"`
	Success  *bool              `json:"success,omitempty"`
	Pix      *WebhookPayloadPix `json:"pix,omitempty"`
}

// CardCheckoutRequest settles a confirmed protocol with a credit card.
// Coupon, ClientDetails and Customer are optional.
type CardCheckoutRequest struct {
	Protocol        string
	Debts           []DebtDTO
	InstallmentPlan int
	Card            CardDTO
	Coupon          string
	ClientDetails   *ClientDetailsDTO
	Customer        *CustomerDTO
}

// PixCheckoutRequest settles a confirmed protocol through a PIX charge.
// Coupon, ClientDetails and Customer are optional.
type PixCheckoutRequest struct {
	Protocol      string
	Debts         []DebtDTO
	Pix           PixDTO
	Coupon        string
	ClientDetails *ClientDetailsDTO
	Customer      *CustomerDTO
}
