// Package zapay is a Go client for the Zapay vehicle debts API. It
// searches a vehicle's outstanding debts (IPVA, licensing, tickets),
// confirms the ones to pay, quotes installment plans and settles through
// card or PIX checkout.
//
// Every caller input is validated before it touches the network and
// every 200 response is re-validated before it reaches the caller, so an
// error from this package is always one of the domain error types:
// validation, API, transport, integration or usage.
package zapay

import (
	"context"

	"go.uber.org/zap"

	"github.com/boddenberg/zapay-go/internal/config"
	"github.com/boddenberg/zapay-go/internal/domain"
	"github.com/boddenberg/zapay-go/internal/infra/auth"
	"github.com/boddenberg/zapay-go/internal/infra/observability"
	"github.com/boddenberg/zapay-go/internal/infra/resilience"
	"github.com/boddenberg/zapay-go/internal/infra/zapi"
	"github.com/boddenberg/zapay-go/internal/port"
	"github.com/boddenberg/zapay-go/internal/schema"
)

// Metrics re-exports the SDK metrics set so callers can pass one through
// WithMetrics or scrape its Registry.
type Metrics = observability.Metrics

// NewMetrics creates a Metrics set on its own Prometheus registry.
func NewMetrics() *Metrics {
	return observability.NewMetrics()
}

// InitTracer wires the global OTLP/gRPC trace exporter for the SDK's
// spans. Optional; without it spans are no-ops.
func InitTracer(endpoint, serviceName string) (func(context.Context) error, error) {
	return observability.InitTracer(endpoint, serviceName)
}

// Client talks to the Zapay API. Construct it with New; the zero value is
// not usable.
type Client struct {
	api    port.API
	tokens port.TokenSource
	auth   *auth.Authenticator
	logger *zap.Logger
}

// New builds a Client and performs the initial credential exchange. The
// returned client holds a fresh access token and, unless
// WithoutAutoRefresh is given, refreshes it in the background shortly
// before expiry. Call Close when done with the client.
func New(ctx context.Context, username, password string, opts ...Option) (*Client, error) {
	cfg := config.Load()
	s := defaultSettings(cfg)
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = observability.NewLogger(cfg.LogLevel)
	}
	if s.metrics == nil {
		s.metrics = observability.NewMetrics()
	}

	cb := resilience.NewCircuitBreaker("zapay-api")
	api := zapi.NewClient(s.httpClient, s.baseURL, cb, s.logger, s.metrics)

	authenticator := auth.New(api, username, password, s.refreshMargin, s.autoRefresh, s.logger, s.metrics)
	if err := authenticator.Authenticate(ctx); err != nil {
		return nil, err
	}

	return &Client{
		api:    api,
		tokens: authenticator,
		auth:   authenticator,
		logger: s.logger,
	}, nil
}

// Close stops the background token refresh. Idempotent.
func (c *Client) Close() {
	c.auth.Close()
}

// Debts searches every outstanding debt for a vehicle and opens a
// protocol for the follow-up operations.
func (c *Client) Debts(ctx context.Context, stateRaw, plateRaw, renavamRaw string) (*DebtsResponse, error) {
	token, state, plate, renavam, err := c.debtsInputs(stateRaw, plateRaw, renavamRaw)
	if err != nil {
		return nil, err
	}

	lookup, err := c.api.Debts(ctx, token, state, plate, renavam)
	if err != nil {
		return nil, err
	}

	debts := make([]DebtDTO, 0, len(lookup.Debts))
	for _, debt := range lookup.Debts {
		debts = append(debts, schema.SerializeDebt(debt))
	}
	return &DebtsResponse{
		Protocol: lookup.Protocol,
		Debts:    debts,
		Vehicle:  schema.SerializeCompleteVehicle(lookup.Vehicle),
	}, nil
}

// AsyncDebts starts a debts search delivered to the registered webhook.
func (c *Client) AsyncDebts(ctx context.Context, stateRaw, plateRaw, renavamRaw string) (*AsyncDebtsResponse, error) {
	token, state, plate, renavam, err := c.debtsInputs(stateRaw, plateRaw, renavamRaw)
	if err != nil {
		return nil, err
	}

	lookup, err := c.api.AsyncDebts(ctx, token, state, plate, renavam)
	if err != nil {
		return nil, err
	}
	return &AsyncDebtsResponse{Protocol: lookup.Protocol, Status: lookup.Status}, nil
}

// Confirmation confirms the given debts for payment under a protocol.
func (c *Client) Confirmation(ctx context.Context, protocol, stateRaw string, debtDTOs []DebtDTO) (*ConfirmationResponse, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}
	state, err := schema.ParseState(stateRaw)
	if err != nil {
		return nil, err
	}
	debts, err := parseDebts(debtDTOs)
	if err != nil {
		return nil, err
	}

	confirmations, err := c.api.Confirmation(ctx, token, protocol, state, debts)
	if err != nil {
		return nil, err
	}

	out := make([]ConfirmationDTO, 0, len(confirmations))
	for _, confirmation := range confirmations {
		out = append(out, schema.SerializeConfirmation(confirmation))
	}
	return &ConfirmationResponse{Confirmations: out}, nil
}

// CheckOrder queries the current status of a protocol's order.
func (c *Client) CheckOrder(ctx context.Context, protocol string) (*CheckOrderResponse, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}

	check, err := c.api.CheckOrder(ctx, token, protocol)
	if err != nil {
		return nil, err
	}

	bills := make([]BillDTO, 0, len(check.Bills))
	for _, bill := range check.Bills {
		bills = append(bills, schema.SerializeBill(bill))
	}
	return &CheckOrderResponse{Order: schema.SerializeOrder(check.Order), Bills: bills}, nil
}

// Installments quotes the payment plans for the given debts. Coupon is
// optional; pass "" for none.
func (c *Client) Installments(ctx context.Context, protocol string, debtDTOs []DebtDTO, coupon string) (*InstallmentsResponse, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}
	debts, err := parseDebts(debtDTOs)
	if err != nil {
		return nil, err
	}

	plans, err := c.api.Installments(ctx, token, protocol, debts, coupon)
	if err != nil {
		return nil, err
	}

	out := make([]InstallmentPlanDTO, 0, len(plans))
	for _, plan := range plans {
		out = append(out, schema.SerializeInstallmentPlan(plan))
	}
	return &InstallmentsResponse{InstallmentsPlans: out}, nil
}

// CardCheckout settles a confirmed protocol with a credit card.
func (c *Client) CardCheckout(ctx context.Context, req CardCheckoutRequest) (*CheckoutResponse, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}
	debts, err := parseDebts(req.Debts)
	if err != nil {
		return nil, err
	}
	card, err := schema.ParseCard(req.Card)
	if err != nil {
		return nil, err
	}
	details, customer, err := parseCheckoutExtras(req.ClientDetails, req.Customer)
	if err != nil {
		return nil, err
	}

	result, err := c.api.CardCheckout(ctx, token, &domain.CardCheckoutIntent{
		Protocol:        req.Protocol,
		Debts:           debts,
		InstallmentPlan: req.InstallmentPlan,
		Card:            card,
		Coupon:          req.Coupon,
		ClientDetails:   details,
		Customer:        customer,
	})
	if err != nil {
		return nil, err
	}
	return &CheckoutResponse{Success: result.Success, Status: result.Status}, nil
}

// PixCheckout settles a confirmed protocol through a PIX charge.
func (c *Client) PixCheckout(ctx context.Context, req PixCheckoutRequest) (*CheckoutResponse, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}
	debts, err := parseDebts(req.Debts)
	if err != nil {
		return nil, err
	}
	pix, err := schema.ParsePix(req.Pix)
	if err != nil {
		return nil, err
	}
	details, customer, err := parseCheckoutExtras(req.ClientDetails, req.Customer)
	if err != nil {
		return nil, err
	}

	result, err := c.api.PixCheckout(ctx, token, &domain.PixCheckoutIntent{
		Protocol:      req.Protocol,
		Debts:         debts,
		Pix:           pix,
		Coupon:        req.Coupon,
		ClientDetails: details,
		Customer:      customer,
	})
	if err != nil {
		return nil, err
	}
	return &CheckoutResponse{Success: result.Success, Status: result.Status}, nil
}

// RegisterWebhook registers the endpoint that receives async reports.
// The URL must be an absolute http or https URL.
func (c *Client) RegisterWebhook(ctx context.Context, rawURL string) (*WebhookRegisterResponse, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}
	url, err := schema.ParseWebhookURL(rawURL)
	if err != nil {
		return nil, err
	}

	registration, err := c.api.RegisterWebhook(ctx, token, url)
	if err != nil {
		return nil, err
	}
	return &WebhookRegisterResponse{Success: registration.Success}, nil
}

// WebhookReport validates a payload received on the registered webhook
// endpoint. Pure parse, no network.
func (c *Client) WebhookReport(payload WebhookPayload) (*WebhookReportResponse, error) {
	dto := WebhookReportDTO{
		Protocol: payload.Protocol,
		Status:   payload.Status,
		Message:  payload.Message,
		Success:  payload.Success,
	}
	if payload.Pix != nil {
		dto.Pix = &WebhookPixDTO{
			QRCodeURL:      payload.Pix.QRCodeURL,
			QRCodeData:     payload.Pix.QRCodeData,
			ExpirationDate: payload.Pix.ExpirationDate,
		}
	}

	report, err := schema.ParseWebhookReport(dto)
	if err != nil {
		return nil, err
	}
	return &WebhookReportResponse{WebhookReport: schema.SerializeWebhookReport(report)}, nil
}

// Vehicle resolves a license plate into its registration data.
func (c *Client) Vehicle(ctx context.Context, plateRaw string) (*VehicleResponse, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, err
	}
	plate, err := schema.ParsePlate(plateRaw)
	if err != nil {
		return nil, err
	}

	vehicle, err := c.api.Vehicle(ctx, token, plate)
	if err != nil {
		return nil, err
	}
	return &VehicleResponse{Vehicle: schema.SerializeSimpleVehicle(*vehicle)}, nil
}

// AvailableStates lists the federative units the API currently serves.
func AvailableStates() []StateDTO {
	available := domain.AvailableStates()
	out := make([]StateDTO, 0, len(available))
	for _, state := range available {
		out = append(out, schema.SerializeStateRecord(state))
	}
	return out
}

func (c *Client) debtsInputs(stateRaw, plateRaw, renavamRaw string) (domain.Token, domain.State, domain.Plate, domain.Renavam, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return "", domain.State{}, "", "", err
	}
	state, err := schema.ParseState(stateRaw)
	if err != nil {
		return "", domain.State{}, "", "", err
	}
	plate, err := schema.ParsePlate(plateRaw)
	if err != nil {
		return "", domain.State{}, "", "", err
	}
	renavam, err := schema.ParseRenavam(renavamRaw)
	if err != nil {
		return "", domain.State{}, "", "", err
	}
	return token, state, plate, renavam, nil
}

func parseDebts(dtos []DebtDTO) ([]domain.Debt, error) {
	debts := make([]domain.Debt, 0, len(dtos))
	for _, dto := range dtos {
		debt, err := schema.ParseDebt(dto)
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}
	return debts, nil
}

func parseCheckoutExtras(details *ClientDetailsDTO, customer *CustomerDTO) (*domain.ClientDetails, *domain.Customer, error) {
	var parsedDetails *domain.ClientDetails
	if details != nil {
		d, err := schema.ParseClientDetails(*details)
		if err != nil {
			return nil, nil, err
		}
		parsedDetails = &d
	}
	var parsedCustomer *domain.Customer
	if customer != nil {
		cu, err := schema.ParseCustomer(*customer)
		if err != nil {
			return nil, nil, err
		}
		parsedCustomer = &cu
	}
	return parsedDetails, parsedCustomer, nil
}
