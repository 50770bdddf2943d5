package schema

import "github.com/boddenberg/zapay-go/internal/domain"

// ParseCard validates a card DTO, delegating the billing address to its own
// nested constraints.
func ParseCard(dto CardDTO) (domain.Card, error) {
	if err := checkStruct("card", dto); err != nil {
		return domain.Card{}, err
	}
	return domain.Card{
		Document:       dto.Document,
		Number:         dto.Number,
		Brand:          dto.Brand,
		Holder:         dto.Holder,
		ExpirationDate: dto.ExpirationDate,
		CVV:            dto.CVV,
		BillingAddress: billingAddressFromDTO(dto.BillingAddress),
	}, nil
}

// SerializeCard is the inverse of ParseCard.
func SerializeCard(c domain.Card) CardDTO {
	return CardDTO{
		Document:       c.Document,
		Number:         c.Number,
		Brand:          c.Brand,
		Holder:         c.Holder,
		ExpirationDate: c.ExpirationDate,
		CVV:            c.CVV,
		BillingAddress: billingAddressToDTO(c.BillingAddress),
	}
}

// ParseBillingAddress validates a standalone billing address DTO.
func ParseBillingAddress(dto BillingAddressDTO) (domain.BillingAddress, error) {
	if err := checkStruct("billingAddress", dto); err != nil {
		return domain.BillingAddress{}, err
	}
	return billingAddressFromDTO(dto), nil
}

// SerializeBillingAddress is the inverse of ParseBillingAddress.
func SerializeBillingAddress(a domain.BillingAddress) BillingAddressDTO {
	return billingAddressToDTO(a)
}

func billingAddressFromDTO(dto BillingAddressDTO) domain.BillingAddress {
	return domain.BillingAddress{
		ZipCode:      dto.ZipCode,
		Address:      dto.Address,
		Neighborhood: dto.Neighborhood,
		City:         dto.City,
		Number:       dto.Number,
	}
}

func billingAddressToDTO(a domain.BillingAddress) BillingAddressDTO {
	return BillingAddressDTO{
		ZipCode:      a.ZipCode,
		Address:      a.Address,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		Number:       a.Number,
	}
}

// ParseCustomer validates checkout contact data.
func ParseCustomer(dto CustomerDTO) (domain.Customer, error) {
	if err := checkStruct("customer", dto); err != nil {
		return domain.Customer{}, err
	}
	return domain.Customer{Email: dto.Email, Phone: dto.Phone}, nil
}

// SerializeCustomer is the inverse of ParseCustomer.
func SerializeCustomer(c domain.Customer) CustomerDTO {
	return CustomerDTO{Email: c.Email, Phone: c.Phone}
}

// ParseClientDetails validates the caller's cart token wrapper.
func ParseClientDetails(dto ClientDetailsDTO) (domain.ClientDetails, error) {
	if err := checkStruct("clientDetails", dto); err != nil {
		return domain.ClientDetails{}, err
	}
	return domain.ClientDetails{CartToken: dto.CartToken}, nil
}

// SerializeClientDetails is the inverse of ParseClientDetails.
func SerializeClientDetails(d domain.ClientDetails) ClientDetailsDTO {
	return ClientDetailsDTO{CartToken: d.CartToken}
}

// ParsePix validates the payer of a PIX checkout.
func ParsePix(dto PixDTO) (domain.Pix, error) {
	if err := checkStruct("pix", dto); err != nil {
		return domain.Pix{}, err
	}
	return domain.Pix{Document: dto.Document, Name: dto.Name}, nil
}

// SerializePix is the inverse of ParsePix.
func SerializePix(p domain.Pix) PixDTO {
	return PixDTO{Document: p.Document, Name: p.Name}
}
