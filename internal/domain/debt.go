package domain

import "time"

// ============================================================
// Debts (IPVA, licensing, tickets)
// ============================================================

// DebtType classifies a payable obligation tied to a vehicle.
type DebtType string

const (
	DebtTypeIPVA      DebtType = "ipva"
	DebtTypeLicensing DebtType = "licensing"
	DebtTypeTicket    DebtType = "ticket"
)

// Debt is a single payable obligation (tax, fine, fee) tied to a vehicle.
// Amounts are integer minor-currency units (centavos).
type Debt struct {
	ID            string
	AmountInCents int64
	Title         string
	Type          DebtType
	Description   string
	DueDate       time.Time
	Required      *bool
	DependsOn     []string
	Distinct      []string
}

// BillStatus is the settlement state of a bill inside an order.
type BillStatus string

const (
	BillAwaitingPayment BillStatus = "awaiting_payment"
	BillSettled         BillStatus = "settled"
)

// Bill is one payable line of a checked order.
type Bill struct {
	ID                string
	AmountInCents     int64
	Status            BillStatus
	AuthorizationCode *string
}

// Confirmation is the remote acknowledgment of a debt selected for payment.
type Confirmation struct {
	ID            string
	AmountInCents int64
	DebtYear      int
	DebtType      DebtType
}

// InstallmentType classifies an installment plan. Credit card is the only
// plan type the API offers today.
type InstallmentType string

const InstallmentCredit InstallmentType = "credit"

// InstallmentPlan is one payment option quoted for a set of debts.
// Fee fields are basis points (fee percent times 100).
type InstallmentPlan struct {
	Installments       int
	AmountInCents      int64
	TotalAmountInCents int64
	Type               InstallmentType
	FeePercent         int
	MayApplyCoupon     bool
	MonthlyFeePercent  int
}
