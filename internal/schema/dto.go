package schema

// DTOs are the raw shapes callers exchange with the SDK. Field constraints
// that are purely structural live here as validator tags; cross-field and
// semantic rules live in the Parse functions. Optional fields are pointers
// (or nil slices) so that absence survives a round trip.

// DebtDTO is a single payable obligation as exchanged with callers.
type DebtDTO struct {
	ID            string   `json:"id" validate:"required,min=2"`
	AmountInCents int64    `json:"amountInCents" validate:"required,gt=0"`
	Title         string   `json:"title" validate:"required,min=2"`
	DebtType      string   `json:"debtType" validate:"required,oneof=ipva licensing ticket"`
	Description   string   `json:"description" validate:"required,min=2"`
	DueDate       string   `json:"dueDate" validate:"required"`
	Required      *bool    `json:"required,omitempty"`
	DependsOn     []string `json:"dependsOn,omitempty" validate:"omitempty,dive,min=2"`
	Distinct      []string `json:"distinct,omitempty" validate:"omitempty,dive,min=2"`
}

// BillDTO is one payable line of a checked order.
type BillDTO struct {
	ID                string  `json:"id" validate:"required,min=2"`
	AmountInCents     int64   `json:"amountInCents" validate:"required,gt=0"`
	Status            string  `json:"status" validate:"required,oneof=awaiting_payment settled"`
	AuthorizationCode *string `json:"authorizationCode,omitempty" validate:"omitempty,min=2"`
}

// ConfirmationDTO acknowledges a debt selected for payment.
type ConfirmationDTO struct {
	ID            string `json:"id" validate:"required,min=2"`
	AmountInCents int64  `json:"amountInCents" validate:"required,gt=0"`
	DebtYear      int    `json:"debtYear" validate:"required,gte=1900"`
	DebtType      string `json:"debtType" validate:"required,oneof=ipva licensing ticket"`
}

// InstallmentPlanDTO is one quoted payment option. Fee fields are basis
// points.
type InstallmentPlanDTO struct {
	Installments       int    `json:"installments" validate:"required,gt=0"`
	AmountInCents      int64  `json:"amountInCents" validate:"required,gt=0"`
	TotalAmountInCents int64  `json:"totalAmountInCents" validate:"required,gt=0,gtefield=AmountInCents"`
	InstallmentType    string `json:"installmentType" validate:"required,oneof=credit"`
	FeePercent         int    `json:"feePercent" validate:"gte=0,lte=10000"`
	MayApplyCoupon     bool   `json:"mayApplyCoupon"`
	MonthlyFeePercent  int    `json:"monthlyFeePercent" validate:"gte=0,lte=10000"`
}

// BillingAddressDTO is the cardholder address; every field is optional.
type BillingAddressDTO struct {
	ZipCode      *string `json:"zipCode,omitempty" validate:"omitempty,min=8"`
	Address      *string `json:"address,omitempty"`
	Neighborhood *string `json:"neighborhood,omitempty"`
	City         *string `json:"city,omitempty"`
	Number       *string `json:"number,omitempty"`
}

// CardDTO is a credit card presented at checkout.
type CardDTO struct {
	Document       string            `json:"document" validate:"required,brdocument"`
	Number         string            `json:"number" validate:"required,digitsonly,min=13"`
	Brand          string            `json:"brand" validate:"required,min=2"`
	Holder         string            `json:"holder" validate:"required,min=2"`
	ExpirationDate string            `json:"expirationDate" validate:"required,digitsonly,len=4"`
	CVV            string            `json:"cvv" validate:"required,min=2"`
	BillingAddress BillingAddressDTO `json:"billingAddress"`
}

// CustomerDTO carries checkout contact data.
type CustomerDTO struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,digitsonly,len=11"`
}

// ClientDetailsDTO carries the caller's opaque cart token.
type ClientDetailsDTO struct {
	CartToken string `json:"cartToken" validate:"required"`
}

// PixDTO identifies the payer of a PIX checkout.
type PixDTO struct {
	Document string `json:"document" validate:"required,brdocument"`
	Name     string `json:"name" validate:"required,min=2"`
}

// OrderDTO is the remote view of a protocol's status.
type OrderDTO struct {
	Status string `json:"status" validate:"required,oneof=SEARCH SIMULATION CHECKOUT_SUCCESS VEHICLE_NOT_FOUND VEHICLE_WITHOUT_DEBTS SERVICE_UNAVAILABLE CHECKOUT_FAIL PAYMENT_INITIATED BARCODE_EMITTED"`
}

// CompleteVehicleDTO is the vehicle record attached to a debts lookup.
type CompleteVehicleDTO struct {
	Renavam         string  `json:"renavam" validate:"required,renavam"`
	Plate           string  `json:"plate" validate:"required"`
	Document        *string `json:"document,omitempty" validate:"omitempty,brdocument"`
	Owner           *string `json:"owner,omitempty"`
	Model           *string `json:"model,omitempty"`
	Color           *string `json:"color,omitempty"`
	FabricationYear *int    `json:"fabricationYear,omitempty" validate:"omitempty,gte=1900"`
	ModelYear       *int    `json:"modelYear,omitempty"`
	Chassis         *string `json:"chassis,omitempty"`
	VenalValue      *string `json:"venalValue,omitempty"`
}

// SimpleVehicleDTO is the record returned by a plate lookup.
type SimpleVehicleDTO struct {
	Plate   string `json:"plate" validate:"required"`
	Renavam string `json:"renavam" validate:"required,renavam"`
	State   string `json:"state" validate:"required"`
}

// WebhookPixDTO is the PIX charge attached to an async webhook report.
type WebhookPixDTO struct {
	QRCodeURL      string `json:"qrCodeUrl" validate:"required"`
	QRCodeData     string `json:"qrCodeData" validate:"required"`
	ExpirationDate string `json:"expirationDate" validate:"required"`
}

// WebhookReportDTO is a parsed async callback about a protocol.
type WebhookReportDTO struct {
	Protocol string         `json:"protocol" validate:"required"`
	Status   string         `json:"status" validate:"required,oneof=SEARCH SIMULATION CHECKOUT_SUCCESS VEHICLE_NOT_FOUND VEHICLE_WITHOUT_DEBTS SERVICE_UNAVAILABLE CHECKOUT_FAIL PAYMENT_INITIATED BARCODE_EMITTED"`
	Message  *string        `json:"message,omitempty"`
	Success  *bool          `json:"success,omitempty"`
	Pix      *WebhookPixDTO `json:"pix,omitempty"`
}
