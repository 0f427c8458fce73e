package model

import "passat/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID             = "id"
	FieldFirstName      = "first_name"
	FieldLastName       = "last_name"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldStreet         = "street"
	FieldPostalCode     = "postal_code"
	FieldCity           = "city"
	FieldCountry        = "country"
	FieldPrivacyConsent = "privacy_consent"

	DefaultCountry = "Deutschland"
)

type Customer struct {
	ID             string `db:"id"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	Email          string `db:"email"`
	Phone          string `db:"phone"`
	Street         string `db:"street"`
	PostalCode     string `db:"postal_code"`
	City           string `db:"city"`
	Country        string `db:"country"`
	PrivacyConsent bool   `db:"privacy_consent"`
	model.Metadata
}

// FullName is the display name used in search results and invoices.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
