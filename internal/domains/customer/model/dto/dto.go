package dto

import (
	"passat/internal/domains/customer/model"
	"passat/shared"
	gDto "passat/shared/dto"
	gModel "passat/shared/model"
	"passat/shared/timezone"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	FirstName      string `json:"first_name"      validate:"required,max=100"`
	LastName       string `json:"last_name"       validate:"required,max=100"`
	Email          string `json:"email"           validate:"required,email,max=254"`
	Phone          string `json:"phone"           validate:"omitempty,max=50"`
	Street         string `json:"street"          validate:"required,max=200"`
	PostalCode     string `json:"postal_code"     validate:"required,max=10"`
	City           string `json:"city"            validate:"required,max=100"`
	Country        string `json:"country"         validate:"omitempty,max=100"`
	PrivacyConsent bool   `json:"privacy_consent"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	country := c.Country
	if country == "" {
		country = model.DefaultCountry
	}

	return model.Customer{
		ID:             uuid.NewString(),
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          c.Email,
		Phone:          c.Phone,
		Street:         c.Street,
		PostalCode:     c.PostalCode,
		City:           c.City,
		Country:        country,
		PrivacyConsent: c.PrivacyConsent,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	FirstName      string `db:"first_name"      json:"first_name"      validate:"omitempty,max=100"`
	LastName       string `db:"last_name"       json:"last_name"       validate:"omitempty,max=100"`
	Email          string `db:"email"           json:"email"           validate:"omitempty,email,max=254"`
	Phone          string `db:"phone"           json:"phone"           validate:"omitempty,max=50"`
	Street         string `db:"street"          json:"street"          validate:"omitempty,max=200"`
	PostalCode     string `db:"postal_code"     json:"postal_code"     validate:"omitempty,max=10"`
	City           string `db:"city"            json:"city"            validate:"omitempty,max=100"`
	Country        string `db:"country"         json:"country"         validate:"omitempty,max=100"`
	PrivacyConsent *bool  `db:"privacy_consent" json:"privacy_consent" validate:"omitempty"`
}

type CustomerResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Street         string `json:"street"`
	PostalCode     string `json:"postal_code"`
	City           string `json:"city"`
	Country        string `json:"country"`
	PrivacyConsent bool   `json:"privacy_consent"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Street = model.Street
	r.PostalCode = model.PostalCode
	r.City = model.City
	r.Country = model.Country
	r.PrivacyConsent = model.PrivacyConsent
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}

type CustomerSearchResult struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
}

type SearchCustomersResponse struct {
	Results []CustomerSearchResult `json:"results"`
}

func (r *SearchCustomersResponse) FromModels(models []model.Customer) {
	r.Results = make([]CustomerSearchResult, len(models))
	for i, mod := range models {
		r.Results[i] = CustomerSearchResult{
			ID:   mod.ID,
			Name: mod.FullName(),
			City: mod.City,
		}
	}
}
