package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	contactdomain "github.com/smallbiznis/sapbridge/internal/contact/domain"
)

// contactPayload is the nested contact_data object SAP sends. Every field
// is a pointer so an absent key can be told apart from a zero value, which
// is what makes partial updates possible.
type contactPayload struct {
	IDSecondary     *int64         `json:"id_secondary"`
	Name            *string        `json:"name"`
	Email           *string        `json:"email"`
	Phone           *string        `json:"phone"`
	Active          *bool          `json:"active"`
	CompanyType     *string        `json:"company_type"`
	ParentID        *int64         `json:"parent_id"`
	Street          *string        `json:"street"`
	Street2         *string        `json:"street2"`
	CityID          *int64         `json:"city_id"`
	City            *string        `json:"city"`
	StateID         *int64         `json:"state_id"`
	Zip             *string        `json:"zip"`
	CountryID       *int64         `json:"country_id"`
	VAT             *string        `json:"vat"`
	EdiUsage        *string        `json:"l10n_mx_edi_usage"`
	FiscalRegime    *string        `json:"l10n_mx_edi_fiscal_regime"`
	PaymentMethodID *int64         `json:"l10n_mx_edi_payment_method_id"`
	PaymentTermID   *int64         `json:"property_payment_term_id"`
	PricelistID     *int64         `json:"property_product_pricelist"`
	SalespersonID   *int64         `json:"user_id"`
	Lang            *string        `json:"lang"`
	Ref             *string        `json:"ref"`
	Metadata        map[string]any `json:"metadata"`
}

type contactEnvelope struct {
	ContactData *contactPayload `json:"contact_data"`
}

func (s *Server) CreateContact(c *gin.Context) {
	var req contactEnvelope
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError(msgInvalidJSON))
		return
	}

	data := req.ContactData
	if data == nil {
		AbortWithError(c, newValidationError(msgNoContactData))
		return
	}

	var missing []string
	if strValue(data.Name) == "" {
		missing = append(missing, "name")
	}
	if strValue(data.Email) == "" {
		missing = append(missing, "email")
	}
	if strValue(data.Phone) == "" {
		missing = append(missing, "phone")
	}
	if data.IDSecondary == nil || *data.IDSecondary == 0 {
		missing = append(missing, "id_secondary")
	}
	if len(missing) > 0 {
		AbortWithError(c, newValidationError("Missing required contact fields: "+strings.Join(missing, ", ")))
		return
	}

	contact, err := s.contactSvc.Create(c.Request.Context(), contactdomain.CreateContactRequest{
		IDSecondary:     *data.IDSecondary,
		Name:            strValue(data.Name),
		Email:           strValue(data.Email),
		Phone:           strValue(data.Phone),
		Active:          data.Active,
		CompanyType:     data.CompanyType,
		ParentID:        data.ParentID,
		Street:          data.Street,
		Street2:         data.Street2,
		CityID:          data.CityID,
		City:            data.City,
		StateID:         data.StateID,
		Zip:             data.Zip,
		CountryID:       data.CountryID,
		VAT:             data.VAT,
		EdiUsage:        data.EdiUsage,
		FiscalRegime:    data.FiscalRegime,
		PaymentMethodID: data.PaymentMethodID,
		PaymentTermID:   data.PaymentTermID,
		PricelistID:     data.PricelistID,
		SalespersonID:   data.SalespersonID,
		Lang:            data.Lang,
		Ref:             data.Ref,
		Metadata:        data.Metadata,
	})
	if err != nil {
		AbortWithError(c, wrapPersistence("Creation failed", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "contact_id": contact.ID})
}

func (s *Server) UpdateContact(c *gin.Context) {
	var req contactEnvelope
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError(msgInvalidJSON))
		return
	}

	data := req.ContactData
	if data == nil {
		AbortWithError(c, newValidationError(msgNoContactData))
		return
	}

	var missing []string
	if data.IDSecondary == nil || *data.IDSecondary == 0 {
		missing = append(missing, "id_secondary")
	}
	if strValue(data.Name) == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		AbortWithError(c, newValidationError("Missing required contact fields: "+strings.Join(missing, ", ")))
		return
	}

	contact, err := s.contactSvc.Update(c.Request.Context(), contactdomain.UpdateContactRequest{
		IDSecondary:     *data.IDSecondary,
		Name:            strValue(data.Name),
		Email:           data.Email,
		Phone:           data.Phone,
		Active:          data.Active,
		CompanyType:     data.CompanyType,
		ParentID:        data.ParentID,
		Street:          data.Street,
		Street2:         data.Street2,
		CityID:          data.CityID,
		City:            data.City,
		StateID:         data.StateID,
		Zip:             data.Zip,
		CountryID:       data.CountryID,
		VAT:             data.VAT,
		EdiUsage:        data.EdiUsage,
		FiscalRegime:    data.FiscalRegime,
		PaymentMethodID: data.PaymentMethodID,
		PaymentTermID:   data.PaymentTermID,
		PricelistID:     data.PricelistID,
		SalespersonID:   data.SalespersonID,
		Lang:            data.Lang,
		Ref:             data.Ref,
		Metadata:        data.Metadata,
	})
	if err != nil {
		AbortWithError(c, wrapPersistence("Update failed", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "contact_id": contact.ID})
}

func strValue(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
