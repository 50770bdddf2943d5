package domain

// ============================================================
// Checkout payment instruments
// ============================================================

// BillingAddress is the cardholder address. Every field is optional on the
// remote side; absent fields stay nil and are never serialized.
type BillingAddress struct {
	ZipCode      *string
	Address      *string
	Neighborhood *string
	City         *string
	Number       *string
}

// Card is a credit card presented at checkout. Document is the holder's
// CPF (11 digits) or CNPJ (14 digits).
type Card struct {
	Document       string
	Number         string
	Brand          string
	Holder         string
	ExpirationDate string
	CVV            string
	BillingAddress BillingAddress
}

// Pix identifies the payer of a PIX checkout.
type Pix struct {
	Document string
	Name     string
}

// Customer carries the contact data attached to a checkout.
type Customer struct {
	Email string
	Phone string
}

// ClientDetails carries the opaque cart token of the caller's session.
type ClientDetails struct {
	CartToken string
}
