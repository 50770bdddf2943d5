package zapay

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/boddenberg/zapay-go/internal/domain"
)

// --- Mocks ---

type staticTokens struct{}

func (staticTokens) Token() (domain.Token, error) {
	return "header.payload.signature", nil
}

type mockAPI struct {
	debts         *domain.DebtsLookup
	asyncDebts    *domain.AsyncDebtsLookup
	confirmations []domain.Confirmation
	orderCheck    *domain.OrderCheck
	plans         []domain.InstallmentPlan
	checkout      *domain.CheckoutResult
	registration  *domain.WebhookRegistration
	vehicle       *domain.SimpleVehicle
	err           error

	calls []string
}

func (m *mockAPI) record(op string) { m.calls = append(m.calls, op) }

func (m *mockAPI) Authenticate(_ context.Context, _, _ string) (domain.Token, error) {
	m.record("authenticate")
	return "header.payload.signature", m.err
}

func (m *mockAPI) Debts(_ context.Context, _ domain.Token, _ domain.State, _ domain.Plate, _ domain.Renavam) (*domain.DebtsLookup, error) {
	m.record("debts")
	return m.debts, m.err
}

func (m *mockAPI) AsyncDebts(_ context.Context, _ domain.Token, _ domain.State, _ domain.Plate, _ domain.Renavam) (*domain.AsyncDebtsLookup, error) {
	m.record("asyncDebts")
	return m.asyncDebts, m.err
}

func (m *mockAPI) Confirmation(_ context.Context, _ domain.Token, _ string, _ domain.State, _ []domain.Debt) ([]domain.Confirmation, error) {
	m.record("confirmation")
	return m.confirmations, m.err
}

func (m *mockAPI) CheckOrder(_ context.Context, _ domain.Token, _ string) (*domain.OrderCheck, error) {
	m.record("checkOrder")
	return m.orderCheck, m.err
}

func (m *mockAPI) Installments(_ context.Context, _ domain.Token, _ string, _ []domain.Debt, _ string) ([]domain.InstallmentPlan, error) {
	m.record("installments")
	return m.plans, m.err
}

func (m *mockAPI) CardCheckout(_ context.Context, _ domain.Token, _ *domain.CardCheckoutIntent) (*domain.CheckoutResult, error) {
	m.record("cardCheckout")
	return m.checkout, m.err
}

func (m *mockAPI) PixCheckout(_ context.Context, _ domain.Token, _ *domain.PixCheckoutIntent) (*domain.CheckoutResult, error) {
	m.record("pixCheckout")
	return m.checkout, m.err
}

func (m *mockAPI) RegisterWebhook(_ context.Context, _ domain.Token, _ string) (*domain.WebhookRegistration, error) {
	m.record("registerWebhook")
	return m.registration, m.err
}

func (m *mockAPI) Vehicle(_ context.Context, _ domain.Token, _ domain.Plate) (*domain.SimpleVehicle, error) {
	m.record("vehicle")
	return m.vehicle, m.err
}

func newTestFacade(api *mockAPI) *Client {
	return &Client{api: api, tokens: staticTokens{}}
}

// --- Tests ---

func TestDebts_MapsToDTOs(t *testing.T) {
	required := true
	api := &mockAPI{debts: &domain.DebtsLookup{
		Protocol: "proto-123",
		Debts: []domain.Debt{{
			ID:            "debt-001",
			AmountInCents: 14999,
			Title:         "IPVA 2023",
			Type:          domain.DebtTypeIPVA,
			Description:   "IPVA exercício 2023",
			DueDate:       time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC),
			Required:      &required,
		}},
		Vehicle: domain.CompleteVehicle{Renavam: "00194483649", Plate: "ABC1D23"},
	}}
	client := newTestFacade(api)

	resp, err := client.Debts(context.Background(), "SP", "abc1d23", "00194483649")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Protocol != "proto-123" {
		t.Errorf("unexpected protocol %q", resp.Protocol)
	}
	if len(resp.Debts) != 1 || resp.Debts[0].AmountInCents != 14999 {
		t.Errorf("unexpected debts: %+v", resp.Debts)
	}
	if resp.Debts[0].DueDate != "2023-04-15T00:00:00Z" {
		t.Errorf("unexpected due date %q", resp.Debts[0].DueDate)
	}
	if resp.Vehicle.Plate != "ABC1D23" {
		t.Errorf("unexpected vehicle: %+v", resp.Vehicle)
	}
}

func TestDebts_InvalidInputShortCircuits(t *testing.T) {
	api := &mockAPI{}
	client := newTestFacade(api)

	tests := []struct {
		name    string
		state   string
		plate   string
		renavam string
		field   string
	}{
		{"unknown state", "XX", "ABC1D23", "00194483649", "state"},
		{"unavailable state", "TO", "ABC1D23", "00194483649", "state"},
		{"bad plate", "SP", "1234567", "00194483649", "plate"},
		{"bad renavam", "SP", "ABC1D23", "00194483640", "renavam"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Debts(context.Background(), tt.state, tt.plate, tt.renavam)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *domain.ValidationError, got %T: %v", err, err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}
	if len(api.calls) != 0 {
		t.Errorf("expected no API calls after rejected input, got %v", api.calls)
	}
}

func TestConfirmation_ValidatesDebtsBeforeCall(t *testing.T) {
	api := &mockAPI{}
	client := newTestFacade(api)

	_, err := client.Confirmation(context.Background(), "proto-123", "SP", []DebtDTO{{ID: "x"}})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *domain.ValidationError, got %T: %v", err, err)
	}
	if len(api.calls) != 0 {
		t.Errorf("expected no API calls, got %v", api.calls)
	}
}

func TestCheckOrder(t *testing.T) {
	code := "AUTH-42"
	api := &mockAPI{orderCheck: &domain.OrderCheck{
		Order: domain.Order{Status: domain.StatusPaymentInitiated},
		Bills: []domain.Bill{{
			ID:                "bill-01",
			AmountInCents:     14999,
			Status:            domain.BillSettled,
			AuthorizationCode: &code,
		}},
	}}
	client := newTestFacade(api)

	resp, err := client.CheckOrder(context.Background(), "proto-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Order.Status != "PAYMENT_INITIATED" {
		t.Errorf("unexpected status %q", resp.Order.Status)
	}
	if len(resp.Bills) != 1 || resp.Bills[0].AuthorizationCode == nil || *resp.Bills[0].AuthorizationCode != code {
		t.Errorf("unexpected bills: %+v", resp.Bills)
	}
}

func TestCardCheckout_ValidatesCard(t *testing.T) {
	api := &mockAPI{checkout: &domain.CheckoutResult{Success: true}}
	client := newTestFacade(api)

	req := CardCheckoutRequest{
		Protocol:        "proto-123",
		InstallmentPlan: 3,
		Card: CardDTO{
			Document:       "123", // wrong shape
			Number:         "4111111111111111",
			Brand:          "visa",
			Holder:         "JOSE A SILVA",
			ExpirationDate: "1227",
			CVV:            "123",
		},
	}
	_, err := client.CardCheckout(context.Background(), req)
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *domain.ValidationError, got %T: %v", err, err)
	}
	if verr.Field != "card.document" {
		t.Errorf("expected card.document, got %q", verr.Field)
	}
	if len(api.calls) != 0 {
		t.Errorf("expected no API calls, got %v", api.calls)
	}

	req.Card.Document = "12345678901"
	resp, err := client.CardCheckout(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Error("expected success")
	}
}

func TestWebhookReport_PureParse(t *testing.T) {
	client := newTestFacade(&mockAPI{})

	message := "aguardando pagamento"
	resp, err := client.WebhookReport(WebhookPayload{
		Protocol: "proto-123",
		Status:   "PAYMENT_INITIATED",
		Message:  &message,
		Pix: &WebhookPayloadPix{
			QRCodeURL:      "https://example.com/qr.png",
			QRCodeData:     "00020126580014br.gov.bcb.pix",
			ExpirationDate: "2023-05-01T12:00:00Z",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report := resp.WebhookReport
	if report.Status != "PAYMENT_INITIATED" {
		t.Errorf("unexpected status %q", report.Status)
	}
	if report.Pix == nil || report.Pix.QRCodeData != "00020126580014br.gov.bcb.pix" {
		t.Errorf("unexpected pix: %+v", report.Pix)
	}
	if report.Message == nil || *report.Message != message {
		t.Errorf("unexpected message: %v", report.Message)
	}
}

func TestWebhookReport_RejectsUnknownStatus(t *testing.T) {
	client := newTestFacade(&mockAPI{})

	_, err := client.WebhookReport(WebhookPayload{Protocol: "proto-123", Status: "EXPLODED"})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *domain.ValidationError, got %T: %v", err, err)
	}
}

func TestRegisterWebhook_ValidatesURL(t *testing.T) {
	api := &mockAPI{registration: &domain.WebhookRegistration{Success: true}}
	client := newTestFacade(api)

	_, err := client.RegisterWebhook(context.Background(), "not a url")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *domain.ValidationError, got %T: %v", err, err)
	}

	resp, err := client.RegisterWebhook(context.Background(), "https://example.com/hook")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Error("expected success")
	}
}

func TestAvailableStates(t *testing.T) {
	states := AvailableStates()
	if len(states) != 17 {
		t.Fatalf("expected 17 available states, got %d", len(states))
	}
	for _, state := range states {
		if !state.IsAvailable {
			t.Errorf("expected only available states, got %+v", state)
		}
		if state.Abbreviation == "" || state.FullName == "" {
			t.Errorf("incomplete state record: %+v", state)
		}
	}
}

func TestAPIErrorPropagates(t *testing.T) {
	api := &mockAPI{err: &domain.APIError{Status: 401, Detail: "token expirado", Code: "Unauthorized"}}
	client := newTestFacade(api)

	_, err := client.CheckOrder(context.Background(), "proto-123")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *zapay.APIError, got %T: %v", err, err)
	}
	if apiErr.Status != 401 {
		t.Errorf("unexpected status %d", apiErr.Status)
	}
}
