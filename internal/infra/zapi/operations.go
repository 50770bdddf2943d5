package zapi

import (
	"context"
	"fmt"

	"github.com/boddenberg/zapay-go/internal/domain"
	"github.com/boddenberg/zapay-go/internal/schema"

	"go.opentelemetry.io/otel/attribute"
)

// Authenticate exchanges integration credentials for a JWT access token.
func (c *Client) Authenticate(ctx context.Context, username, password string) (domain.Token, error) {
	ctx, span := tracer.Start(ctx, "ZapayClient.Authenticate")
	defer span.End()

	var resp authResponse
	if err := c.postJSON(ctx, "authentication", "/authentication/", "", authRequest{Username: username, Password: password}, &resp); err != nil {
		return "", err
	}

	token, err := schema.ParseToken(resp.Token)
	if err != nil {
		return "", c.integration("authentication", err)
	}
	return token, nil
}

// Debts searches every outstanding debt for a vehicle.
func (c *Client) Debts(ctx context.Context, token domain.Token, state domain.State, plate domain.Plate, renavam domain.Renavam) (*domain.DebtsLookup, error) {
	ctx, span := tracer.Start(ctx, "ZapayClient.Debts")
	defer span.End()
	span.SetAttributes(attribute.String("zapay.state", schema.SerializeState(state)))

	req := debtsRequest{
		State:        schema.SerializeState(state),
		LicensePlate: schema.SerializePlate(plate),
		Renavam:      schema.SerializeRenavam(renavam),
	}
	var resp debtsResponse
	if err := c.postJSON(ctx, "debts", "/zapi/debts/", token, req, &resp); err != nil {
		return nil, err
	}

	debts := make([]domain.Debt, 0, len(resp.Debts))
	for _, wd := range resp.Debts {
		debt, err := schema.ParseDebt(debtFromWire(wd))
		if err != nil {
			return nil, c.integration("debts", err)
		}
		debts = append(debts, debt)
	}

	vehicle, err := schema.ParseCompleteVehicle(vehicleFromWire(resp.Vehicle))
	if err != nil {
		return nil, c.integration("debts", err)
	}

	return &domain.DebtsLookup{Protocol: resp.Protocol, Debts: debts, Vehicle: vehicle}, nil
}

// AsyncDebts starts a debts search whose result arrives on the registered
// webhook. The returned status is the remote's acknowledgment, normally
// "processing".
func (c *Client) AsyncDebts(ctx context.Context, token domain.Token, state domain.State, plate domain.Plate, renavam domain.Renavam) (*domain.AsyncDebtsLookup, error) {
	ctx, span := tracer.Start(ctx, "ZapayClient.AsyncDebts")
	defer span.End()
	span.SetAttributes(attribute.String("zapay.state", schema.SerializeState(state)))

	req := debtsRequest{
		State:        schema.SerializeState(state),
		LicensePlate: schema.SerializePlate(plate),
		Renavam:      schema.SerializeRenavam(renavam),
	}
	var resp asyncDebtsResponse
	if err := c.postJSON(ctx, "asyncDebts", "/zapi/debts/?async=true", token, req, &resp); err != nil {
		return nil, err
	}

	return &domain.AsyncDebtsLookup{Protocol: resp.Protocol, Status: resp.Status}, nil
}

// Confirmation confirms the debts selected for payment under a protocol.
func (c *Client) Confirmation(ctx context.Context, token domain.Token, protocol string, state domain.State, debts []domain.Debt) ([]domain.Confirmation, error) {
	ctx, span := tracer.Start(ctx, "ZapayClient.Confirmation")
	defer span.End()
	span.SetAttributes(attribute.String("zapay.protocol", protocol))

	req := confirmationRequest{
		Protocol: protocol,
		State:    schema.SerializeState(state),
		IDs:      debtIDs(debts),
	}
	var resp confirmationResponse
	if err := c.postJSON(ctx, "confirmation", "/zapi/confirmation/", token, req, &resp); err != nil {
		return nil, err
	}

	confirmations := make([]domain.Confirmation, 0, len(resp.Confirmation))
	for _, wc := range resp.Confirmation {
		confirmation, err := schema.ParseConfirmation(schema.ConfirmationDTO{
			ID:            wc.ID,
			AmountInCents: schema.ToCents(wc.Amount),
			DebtYear:      wc.Year,
			DebtType:      wc.Type,
		})
		if err != nil {
			return nil, c.integration("confirmation", err)
		}
		confirmations = append(confirmations, confirmation)
	}
	return confirmations, nil
}

// CheckOrder queries the current status of an order and its bills.
func (c *Client) CheckOrder(ctx context.Context, token domain.Token, protocol string) (*domain.OrderCheck, error) {
	ctx, span := tracer.Start(ctx, "ZapayClient.CheckOrder")
	defer span.End()
	span.SetAttributes(attribute.String("zapay.protocol", protocol))

	var resp orderResponse
	if err := c.postJSON(ctx, "checkOrder", "/zapi/order/", token, orderRequest{Protocol: protocol}, &resp); err != nil {
		return nil, err
	}

	order, err := schema.ParseOrder(schema.OrderDTO{Status: resp.Order.Status})
	if err != nil {
		return nil, c.integration("checkOrder", err)
	}

	bills := make([]domain.Bill, 0, len(resp.Bills))
	for _, wb := range resp.Bills {
		bill, err := schema.ParseBill(schema.BillDTO{
			ID:                wb.ID,
			AmountInCents:     schema.ToCents(wb.Amount),
			Status:            wb.Status,
			AuthorizationCode: wb.AuthorizationCode,
		})
		if err != nil {
			return nil, c.integration("checkOrder", err)
		}
		bills = append(bills, bill)
	}

	return &domain.OrderCheck{Order: order, Bills: bills}, nil
}

// Installments quotes the payment plans available for the given debts.
func (c *Client) Installments(ctx context.Context, token domain.Token, protocol string, debts []domain.Debt, coupon string) ([]domain.InstallmentPlan, error) {
	ctx, span := tracer.Start(ctx, "ZapayClient.Installments")
	defer span.End()
	span.SetAttributes(attribute.String("zapay.protocol", protocol))

	req := installmentsRequest{
		Protocol: protocol,
		Debts:    debtIDs(debts),
		Coupon:   coupon,
	}
	var resp installmentsResponse
	if err := c.postJSON(ctx, "installments", "/zapi/installments/", token, req, &resp); err != nil {
		return nil, err
	}

	plans := make([]domain.InstallmentPlan, 0, len(resp.InstallmentsPlans))
	for _, wp := range resp.InstallmentsPlans {
		// Fees arrive as percentages; ToCents doubles as the
		// percent-to-basis-points conversion.
		plan, err := schema.ParseInstallmentPlan(schema.InstallmentPlanDTO{
			Installments:       wp.Installments,
			AmountInCents:      schema.ToCents(wp.Amount),
			TotalAmountInCents: schema.ToCents(wp.TotalAmount),
			InstallmentType:    wp.Type,
			FeePercent:         int(schema.ToCents(wp.Fee)),
			MayApplyCoupon:     wp.Coupon,
			MonthlyFeePercent:  int(schema.ToCents(wp.MonthlyFee)),
		})
		if err != nil {
			return nil, c.integration("installments", err)
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// CardCheckout settles a confirmed protocol with a credit card.
func (c *Client) CardCheckout(ctx context.Context, token domain.Token, intent *domain.CardCheckoutIntent) (*domain.CheckoutResult, error) {
	ctx, span := tracer.Start(ctx, "ZapayClient.CardCheckout")
	defer span.End()
	span.SetAttributes(attribute.String("zapay.protocol", intent.Protocol))

	card := schema.SerializeCard(intent.Card)
	req := checkoutRequest{
		Protocol:        intent.Protocol,
		Card:            &card,
		InstallmentPlan: intent.InstallmentPlan,
		Debts:           debtIDs(intent.Debts),
		Coupon:          intent.Coupon,
	}
	attachCheckoutExtras(&req, intent.ClientDetails, intent.Customer)

	return c.checkout(ctx, "cardCheckout", token, req)
}

// PixCheckout settles a confirmed protocol through a PIX charge.
func (c *Client) PixCheckout(ctx context.Context, token domain.Token, intent *domain.PixCheckoutIntent) (*domain.CheckoutResult, error) {
	ctx, span := tracer.Start(ctx, "ZapayClient.PixCheckout")
	defer span.End()
	span.SetAttributes(attribute.String("zapay.protocol", intent.Protocol))

	pix := schema.SerializePix(intent.Pix)
	req := checkoutRequest{
		Protocol: intent.Protocol,
		Pix:      &pix,
		Debts:    debtIDs(intent.Debts),
		Coupon:   intent.Coupon,
	}
	attachCheckoutExtras(&req, intent.ClientDetails, intent.Customer)

	return c.checkout(ctx, "pixCheckout", token, req)
}

func (c *Client) checkout(ctx context.Context, operation string, token domain.Token, req checkoutRequest) (*domain.CheckoutResult, error) {
	var resp checkoutResponse
	if err := c.postJSON(ctx, operation, "/zapi/checkout/", token, req, &resp); err != nil {
		return nil, err
	}
	return &domain.CheckoutResult{Success: resp.Success, Status: resp.Status}, nil
}

// RegisterWebhook registers the endpoint that receives async reports.
func (c *Client) RegisterWebhook(ctx context.Context, token domain.Token, url string) (*domain.WebhookRegistration, error) {
	ctx, span := tracer.Start(ctx, "ZapayClient.RegisterWebhook")
	defer span.End()

	var resp webhookRegisterResponse
	if err := c.postJSON(ctx, "webhookRegister", "/zapi/endpoint-register/", token, webhookRegisterRequest{URL: url}, &resp); err != nil {
		return nil, err
	}
	return &domain.WebhookRegistration{Success: resp.Success}, nil
}

// Vehicle resolves a license plate into its registration data.
func (c *Client) Vehicle(ctx context.Context, token domain.Token, plate domain.Plate) (*domain.SimpleVehicle, error) {
	ctx, span := tracer.Start(ctx, "ZapayClient.Vehicle")
	defer span.End()
	span.SetAttributes(attribute.String("zapay.plate", schema.SerializePlate(plate)))

	path := fmt.Sprintf("/zapi/vehicle/%s", schema.SerializePlate(plate))
	var resp vehicleResponse
	if err := c.getJSON(ctx, "vehicle", path, token, &resp); err != nil {
		return nil, err
	}

	vehicle, err := schema.ParseSimpleVehicle(schema.SimpleVehicleDTO{
		Plate:   resp.LicensePlate,
		Renavam: resp.Renavam,
		State:   resp.UF,
	})
	if err != nil {
		return nil, c.integration("vehicle", err)
	}
	return &vehicle, nil
}

func debtIDs(debts []domain.Debt) []string {
	ids := make([]string, 0, len(debts))
	for _, debt := range debts {
		ids = append(ids, debt.ID)
	}
	return ids
}

func attachCheckoutExtras(req *checkoutRequest, details *domain.ClientDetails, customer *domain.Customer) {
	if details != nil {
		dto := schema.SerializeClientDetails(*details)
		req.ClientDetails = &dto
	}
	if customer != nil {
		dto := schema.SerializeCustomer(*customer)
		req.Customer = &dto
	}
}

func debtFromWire(w wireDebt) schema.DebtDTO {
	return schema.DebtDTO{
		ID:            w.ID,
		AmountInCents: schema.ToCents(w.Amount),
		Title:         w.Title,
		DebtType:      w.Type,
		Description:   w.Description,
		DueDate:       w.DueDate,
		Required:      w.Required,
		DependsOn:     w.DependsOn,
		Distinct:      w.Distinct,
	}
}

func vehicleFromWire(w wireVehicle) schema.CompleteVehicleDTO {
	return schema.CompleteVehicleDTO{
		Renavam:         w.Renavam,
		Plate:           w.LicensePlate,
		Document:        w.Document,
		Owner:           w.Owner,
		Model:           w.Model,
		Color:           w.Color,
		FabricationYear: w.FabricationYear,
		ModelYear:       w.ModelYear,
		Chassis:         w.Chassis,
		VenalValue:      w.VenalValue,
	}
}
