package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	taxIDFormat   = regexp.MustCompile(`^(\d{11}|\d{14})$`) // CPF or CNPJ, digits only
	licenseFormat = regexp.MustCompile(`^\d{11}$`)
)

// Customer identity is the tax id; re-registering with the same tax id
// replaces the record.
type Customer struct {
	Name            string `json:"name"`
	TaxID           string `json:"tax_id"`
	DriverLicenseID string `json:"driver_license_id"`
	Email           string `json:"email"`
}

func NewCustomer(name, taxID, driverLicenseID, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, fmt.Errorf("%w: name is required", ErrInvalidCustomer)
	}
	if !taxIDFormat.MatchString(taxID) {
		return Customer{}, fmt.Errorf("%w: tax id must be a CPF (11 digits) or CNPJ (14 digits)", ErrInvalidCustomer)
	}
	if !licenseFormat.MatchString(driverLicenseID) {
		return Customer{}, fmt.Errorf("%w: driver license must have 11 digits", ErrInvalidCustomer)
	}
	if email == "" || !strings.Contains(email, "@") {
		return Customer{}, fmt.Errorf("%w: a valid email is required", ErrInvalidCustomer)
	}
	return Customer{Name: name, TaxID: taxID, DriverLicenseID: driverLicenseID, Email: email}, nil
}
