// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the client facade
// from concrete implementations.
package port

import (
	"context"

	"github.com/boddenberg/zapay-go/internal/domain"
)

// AuthService exchanges integration credentials for a JWT access token.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (domain.Token, error)
}

// TokenSource yields the current access token for outgoing requests.
type TokenSource interface {
	Token() (domain.Token, error)
}

// DebtsService searches vehicle debts, synchronously or via webhook delivery.
type DebtsService interface {
	Debts(ctx context.Context, token domain.Token, state domain.State, plate domain.Plate, renavam domain.Renavam) (*domain.DebtsLookup, error)
	AsyncDebts(ctx context.Context, token domain.Token, state domain.State, plate domain.Plate, renavam domain.Renavam) (*domain.AsyncDebtsLookup, error)
}

// OrderService confirms debt selections and tracks order progress.
type OrderService interface {
	Confirmation(ctx context.Context, token domain.Token, protocol string, state domain.State, debts []domain.Debt) ([]domain.Confirmation, error)
	CheckOrder(ctx context.Context, token domain.Token, protocol string) (*domain.OrderCheck, error)
}

// CheckoutService quotes installment plans and settles payments.
type CheckoutService interface {
	Installments(ctx context.Context, token domain.Token, protocol string, debts []domain.Debt, coupon string) ([]domain.InstallmentPlan, error)
	CardCheckout(ctx context.Context, token domain.Token, intent *domain.CardCheckoutIntent) (*domain.CheckoutResult, error)
	PixCheckout(ctx context.Context, token domain.Token, intent *domain.PixCheckoutIntent) (*domain.CheckoutResult, error)
}

// WebhookService registers the endpoint that receives async results.
type WebhookService interface {
	RegisterWebhook(ctx context.Context, token domain.Token, url string) (*domain.WebhookRegistration, error)
}

// VehicleService resolves a license plate into its registration data.
type VehicleService interface {
	Vehicle(ctx context.Context, token domain.Token, plate domain.Plate) (*domain.SimpleVehicle, error)
}

// API aggregates every remote operation. Implemented by the HTTP adapter.
type API interface {
	AuthService
	DebtsService
	OrderService
	CheckoutService
	WebhookService
	VehicleService
}
