package schema

import (
	"strconv"
	"time"

	"github.com/boddenberg/zapay-go/internal/domain"
)

// ParseDebt validates a debt DTO and converts it into a domain debt.
func ParseDebt(dto DebtDTO) (domain.Debt, error) {
	if err := checkStruct("debt", dto); err != nil {
		return domain.Debt{}, err
	}
	dueDate, err := parseDate("debt.dueDate", dto.DueDate)
	if err != nil {
		return domain.Debt{}, err
	}
	return domain.Debt{
		ID:            dto.ID,
		AmountInCents: dto.AmountInCents,
		Title:         dto.Title,
		Type:          domain.DebtType(dto.DebtType),
		Description:   dto.Description,
		DueDate:       dueDate,
		Required:      dto.Required,
		DependsOn:     dto.DependsOn,
		Distinct:      dto.Distinct,
	}, nil
}

// SerializeDebt is the lossless inverse of ParseDebt.
func SerializeDebt(d domain.Debt) DebtDTO {
	return DebtDTO{
		ID:            d.ID,
		AmountInCents: d.AmountInCents,
		Title:         d.Title,
		DebtType:      string(d.Type),
		Description:   d.Description,
		DueDate:       serializeDate(d.DueDate),
		Required:      d.Required,
		DependsOn:     d.DependsOn,
		Distinct:      d.Distinct,
	}
}

// ParseBill validates a bill DTO.
func ParseBill(dto BillDTO) (domain.Bill, error) {
	if err := checkStruct("bill", dto); err != nil {
		return domain.Bill{}, err
	}
	return domain.Bill{
		ID:                dto.ID,
		AmountInCents:     dto.AmountInCents,
		Status:            domain.BillStatus(dto.Status),
		AuthorizationCode: dto.AuthorizationCode,
	}, nil
}

// SerializeBill is the inverse of ParseBill.
func SerializeBill(b domain.Bill) BillDTO {
	return BillDTO{
		ID:                b.ID,
		AmountInCents:     b.AmountInCents,
		Status:            string(b.Status),
		AuthorizationCode: b.AuthorizationCode,
	}
}

// ParseConfirmation validates a confirmation DTO. The debt year is bounded
// by the current calendar year, which a static tag cannot express.
func ParseConfirmation(dto ConfirmationDTO) (domain.Confirmation, error) {
	if err := checkStruct("confirmation", dto); err != nil {
		return domain.Confirmation{}, err
	}
	if currentYear := time.Now().Year(); dto.DebtYear > currentYear {
		return domain.Confirmation{}, failScalar("confirmation.debtYear", "lte", strconv.Itoa(dto.DebtYear))
	}
	return domain.Confirmation{
		ID:            dto.ID,
		AmountInCents: dto.AmountInCents,
		DebtYear:      dto.DebtYear,
		DebtType:      domain.DebtType(dto.DebtType),
	}, nil
}

// SerializeConfirmation is the inverse of ParseConfirmation.
func SerializeConfirmation(c domain.Confirmation) ConfirmationDTO {
	return ConfirmationDTO{
		ID:            c.ID,
		AmountInCents: c.AmountInCents,
		DebtYear:      c.DebtYear,
		DebtType:      string(c.DebtType),
	}
}

// ParseInstallmentPlan validates an installment plan DTO. The
// total-amount-covers-amount rule is a tag-level cross-field constraint.
func ParseInstallmentPlan(dto InstallmentPlanDTO) (domain.InstallmentPlan, error) {
	if err := checkStruct("installmentPlan", dto); err != nil {
		return domain.InstallmentPlan{}, err
	}
	return domain.InstallmentPlan{
		Installments:       dto.Installments,
		AmountInCents:      dto.AmountInCents,
		TotalAmountInCents: dto.TotalAmountInCents,
		Type:               domain.InstallmentType(dto.InstallmentType),
		FeePercent:         dto.FeePercent,
		MayApplyCoupon:     dto.MayApplyCoupon,
		MonthlyFeePercent:  dto.MonthlyFeePercent,
	}, nil
}

// SerializeInstallmentPlan is the inverse of ParseInstallmentPlan.
func SerializeInstallmentPlan(p domain.InstallmentPlan) InstallmentPlanDTO {
	return InstallmentPlanDTO{
		Installments:       p.Installments,
		AmountInCents:      p.AmountInCents,
		TotalAmountInCents: p.TotalAmountInCents,
		InstallmentType:    string(p.Type),
		FeePercent:         p.FeePercent,
		MayApplyCoupon:     p.MayApplyCoupon,
		MonthlyFeePercent:  p.MonthlyFeePercent,
	}
}
