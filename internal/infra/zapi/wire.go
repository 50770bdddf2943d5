package zapi

// Wire shapes as Zapay sends and receives them: snake_case keys and
// monetary values in reais (floats). The checkout body is the one place
// the remote mixes conventions, keeping installmentPlan and the card and
// pix sub-objects in camelCase next to snake_case siblings.

import "github.com/boddenberg/zapay-go/internal/schema"

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

type debtsRequest struct {
	State        string `json:"state"`
	LicensePlate string `json:"license_plate"`
	Renavam      string `json:"renavam"`
}

type wireDebt struct {
	ID          string   `json:"id"`
	Amount      float64  `json:"amount"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	DueDate     string   `json:"due_date"`
	Required    *bool    `json:"required,omitempty"`
	DependsOn   []string `json:"depends_on,omitempty"`
	Distinct    []string `json:"distinct,omitempty"`
}

type wireVehicle struct {
	Renavam         string  `json:"renavam"`
	LicensePlate    string  `json:"license_plate"`
	Document        *string `json:"document,omitempty"`
	Owner           *string `json:"owner,omitempty"`
	Model           *string `json:"model,omitempty"`
	Color           *string `json:"color,omitempty"`
	FabricationYear *int    `json:"fabrication_year,omitempty"`
	ModelYear       *int    `json:"model_year,omitempty"`
	Chassis         *string `json:"chassi,omitempty"`
	VenalValue      *string `json:"venal_value,omitempty"`
}

type debtsResponse struct {
	Protocol string      `json:"protocol"`
	Debts    []wireDebt  `json:"debts"`
	Vehicle  wireVehicle `json:"vehicle"`
}

type asyncDebtsResponse struct {
	Protocol string `json:"protocol"`
	Status   string `json:"status"`
}

type confirmationRequest struct {
	Protocol string   `json:"protocol"`
	State    string   `json:"state"`
	IDs      []string `json:"ids"`
}

type wireConfirmation struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
	Year   int     `json:"year"`
	Type   string  `json:"type"`
}

type confirmationResponse struct {
	Confirmation []wireConfirmation `json:"confirmation"`
}

type orderRequest struct {
	Protocol string `json:"protocol"`
}

type wireBill struct {
	ID                string  `json:"id"`
	Amount            float64 `json:"amount"`
	Status            string  `json:"status"`
	AuthorizationCode *string `json:"authorization_code,omitempty"`
}

type orderResponse struct {
	Order struct {
		Status string `json:"status"`
	} `json:"order"`
	Bills []wireBill `json:"bills"`
}

type installmentsRequest struct {
	Protocol string   `json:"protocol"`
	Debts    []string `json:"debts"`
	Coupon   string   `json:"promotional_ticket,omitempty"`
}

type wireInstallmentPlan struct {
	Installments int     `json:"installments"`
	Amount       float64 `json:"amount"`
	TotalAmount  float64 `json:"total_amount"`
	Type         string  `json:"type"`
	Fee          float64 `json:"fee"`
	Coupon       bool    `json:"coupon"`
	MonthlyFee   float64 `json:"monthly_fee"`
}

type installmentsResponse struct {
	InstallmentsPlans []wireInstallmentPlan `json:"installmentsPlans"`
}

type checkoutRequest struct {
	Protocol        string                   `json:"protocol"`
	Card            *schema.CardDTO          `json:"card,omitempty"`
	Pix             *schema.PixDTO           `json:"pix,omitempty"`
	InstallmentPlan int                      `json:"installmentPlan,omitempty"`
	Debts           []string                 `json:"debts"`
	Coupon          string                   `json:"promotional_ticket,omitempty"`
	ClientDetails   *schema.ClientDetailsDTO `json:"client_details,omitempty"`
	Customer        *schema.CustomerDTO      `json:"customer,omitempty"`
}

type checkoutResponse struct {
	Success bool    `json:"success"`
	Status  *string `json:"status,omitempty"`
}

type webhookRegisterRequest struct {
	URL string `json:"url"`
}

type webhookRegisterResponse struct {
	Success bool `json:"success"`
}

type vehicleResponse struct {
	LicensePlate string `json:"license_plate"`
	Renavam      string `json:"renavam"`
	UF           string `json:"uf"`
}
