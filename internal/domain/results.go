package domain

// ============================================================
// Operation results and checkout intents
// ============================================================

// DebtsLookup is the validated result of a debts search.
type DebtsLookup struct {
	Protocol string
	Debts    []Debt
	Vehicle  CompleteVehicle
}

// AsyncDebtsLookup acknowledges an asynchronous debts search; the result
// arrives later through the registered webhook.
type AsyncDebtsLookup struct {
	Protocol string
	Status   string
}

// OrderCheck is the validated result of an order status query.
type OrderCheck struct {
	Order Order
	Bills []Bill
}

// CheckoutResult is the remote acknowledgment of a checkout. Status is
// reported verbatim when the remote includes one.
type CheckoutResult struct {
	Success bool
	Status  *string
}

// WebhookRegistration acknowledges a webhook endpoint registration.
type WebhookRegistration struct {
	Success bool
}

// CardCheckoutIntent is a validated card checkout ready for the wire.
type CardCheckoutIntent struct {
	Protocol        string
	Debts           []Debt
	InstallmentPlan int
	Card            Card
	Coupon          string
	ClientDetails   *ClientDetails
	Customer        *Customer
}

// PixCheckoutIntent is a validated PIX checkout ready for the wire.
type PixCheckoutIntent struct {
	Protocol      string
	Debts         []Debt
	Pix           Pix
	Coupon        string
	ClientDetails *ClientDetails
	Customer      *Customer
}
