package schema

import "github.com/boddenberg/zapay-go/internal/domain"

// ParseOrder validates an order DTO against the protocol status enum.
func ParseOrder(dto OrderDTO) (domain.Order, error) {
	if err := checkStruct("order", dto); err != nil {
		return domain.Order{}, err
	}
	return domain.Order{Status: domain.ProtocolStatus(dto.Status)}, nil
}

// SerializeOrder is the inverse of ParseOrder.
func SerializeOrder(o domain.Order) OrderDTO {
	return OrderDTO{Status: string(o.Status)}
}

// ParseWebhookReport validates an async callback. The PIX sub-object, when
// present, must carry an ISO-8601 expiration date.
func ParseWebhookReport(dto WebhookReportDTO) (domain.WebhookReport, error) {
	if err := checkStruct("webhookReport", dto); err != nil {
		return domain.WebhookReport{}, err
	}

	report := domain.WebhookReport{
		Protocol: dto.Protocol,
		Status:   domain.ProtocolStatus(dto.Status),
		Message:  dto.Message,
		Success:  dto.Success,
	}
	if dto.Pix != nil {
		expiration, err := parseDate("webhookReport.pix.expirationDate", dto.Pix.ExpirationDate)
		if err != nil {
			return domain.WebhookReport{}, err
		}
		report.Pix = &domain.WebhookPix{
			QRCodeURL:      dto.Pix.QRCodeURL,
			QRCodeData:     dto.Pix.QRCodeData,
			ExpirationDate: expiration,
		}
	}
	return report, nil
}

// SerializeWebhookReport is the lossless inverse of ParseWebhookReport.
func SerializeWebhookReport(r domain.WebhookReport) WebhookReportDTO {
	dto := WebhookReportDTO{
		Protocol: r.Protocol,
		Status:   string(r.Status),
		Message:  r.Message,
		Success:  r.Success,
	}
	if r.Pix != nil {
		dto.Pix = &WebhookPixDTO{
			QRCodeURL:      r.Pix.QRCodeURL,
			QRCodeData:     r.Pix.QRCodeData,
			ExpirationDate: serializeDate(r.Pix.ExpirationDate),
		}
	}
	return dto
}
