package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	productdomain "github.com/smallbiznis/sapbridge/internal/product/domain"
)

// productPayload is the nested product_data object SAP sends. The SAT
// classification code arrives as either a number or a string depending on
// the SAP export version, so it is coerced after binding.
type productPayload struct {
	Name            *string          `json:"name"`
	IDSecundarioSAP *string          `json:"id_secundario_sap"`
	SaleOK          *bool            `json:"sale_ok"`
	PurchaseOK      *bool            `json:"purchase_ok"`
	Type            *string          `json:"type"`
	InvoicePolicy   *string          `json:"invoice_policy"`
	ListPrice       *decimal.Decimal `json:"list_price"`
	StandardPrice   *decimal.Decimal `json:"standard_price"`
	UomID           *int64           `json:"uom_id"`
	TaxIDs          []int64          `json:"taxes_id"`
	CategID         *int64           `json:"categ_id"`
	DefaultCode     *string          `json:"default_code"`
	UnspscCodeSAT   any              `json:"unspsc_code_sat_id"`
	IsStorable      *bool            `json:"is_storable"`
	QtyAvailable    *decimal.Decimal `json:"qty_available"`
	PronosticadoSAP *decimal.Decimal `json:"pronosticado_sap"`
	Metadata        map[string]any   `json:"metadata"`
}

type productEnvelope struct {
	ProductData *productPayload `json:"product_data"`
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req productEnvelope
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError(msgInvalidJSON))
		return
	}

	data := req.ProductData
	if data == nil {
		AbortWithError(c, newValidationError(msgNoProductData))
		return
	}

	var missing []string
	if strValue(data.Name) == "" {
		missing = append(missing, "name")
	}
	if strValue(data.IDSecundarioSAP) == "" {
		missing = append(missing, "id_secundario_sap")
	}
	if len(missing) > 0 {
		AbortWithError(c, newValidationError("Missing required fields: "+strings.Join(missing, ", ")))
		return
	}

	result, err := s.productSvc.Create(c.Request.Context(), productdomain.CreateProductRequest{
		Name:            strValue(data.Name),
		IDSecundarioSAP: strValue(data.IDSecundarioSAP),
		SaleOK:          data.SaleOK,
		PurchaseOK:      data.PurchaseOK,
		Type:            data.Type,
		InvoicePolicy:   data.InvoicePolicy,
		ListPrice:       data.ListPrice,
		StandardPrice:   data.StandardPrice,
		UomID:           data.UomID,
		TaxIDs:          data.TaxIDs,
		CategID:         data.CategID,
		DefaultCode:     data.DefaultCode,
		UnspscCodeSAT:   satCodeString(data.UnspscCodeSAT),
		IsStorable:      data.IsStorable,
		QtyAvailable:    data.QtyAvailable,
		PronosticadoSAP: data.PronosticadoSAP,
		Metadata:        data.Metadata,
	})
	if err != nil {
		AbortWithError(c, wrapPersistence("Creation failed", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "product_id": result.Product.ID})
}

// satCodeString coerces the SAT code to its string form. Numeric JSON
// values decode as float64; integral ones must not pick up a fraction.
func satCodeString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
