package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerbside/kerbside-api/internal/services"
	"github.com/kerbside/kerbside-api/internal/types/api/params"
	"github.com/kerbside/kerbside-api/internal/types/business"
)

// TaxHandler exposes the VAT, Corporation Tax and National Insurance
// calculators over HTTP
type TaxHandler struct {
	vatService *services.VatService
	ctService  *services.CorporationTaxService
	niService  *services.NationalInsuranceService
}

func NewTaxHandler(vatService *services.VatService, ctService *services.CorporationTaxService, niService *services.NationalInsuranceService) *TaxHandler {
	return &TaxHandler{
		vatService: vatService,
		ctService:  ctService,
		niService:  niService,
	}
}

// CalculateVat godoc
// @Summary Calculate VAT for a single amount
// @Description Computes net, VAT and gross for an amount under the given rate classification
// @Tags tax
// @Accept json
// @Produce json
// @Param request body params.VatCalculationParams true "Calculation input"
// @Success 200 {object} business.VatCalculation
// @Failure 400 {object} ErrorResponse
// @Router /tax/vat/calculate [post]
func (h *TaxHandler) CalculateVat(c *gin.Context) {
	var p params.VatCalculationParams
	if err := c.ShouldBindJSON(&p); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.vatService.Calculate(p)
	if err != nil {
		if errors.Is(err, business.ErrInvalidRate) {
			sendError(c, http.StatusBadRequest, "Unknown VAT rate classification", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to calculate VAT", err)
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// BuildVatReturn godoc
// @Summary Build a VAT return from transaction lines
// @Description Buckets lines by rate classification and totals VAT due on sales against reclaimable VAT on purchases
// @Tags tax
// @Accept json
// @Produce json
// @Param request body params.VatReturnParams true "Return lines"
// @Success 200 {object} responses.VatReturnSummary
// @Failure 400 {object} ErrorResponse
// @Router /tax/vat/return [post]
func (h *TaxHandler) BuildVatReturn(c *gin.Context) {
	var p params.VatReturnParams
	if err := c.ShouldBindJSON(&p); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	summary, err := h.vatService.BuildReturn(p)
	if err != nil {
		if errors.Is(err, business.ErrInvalidRate) {
			sendError(c, http.StatusBadRequest, "Return contains a line with an unknown rate classification", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to build VAT return", err)
		return
	}

	sendSuccess(c, http.StatusOK, summary)
}

// CalculateCorporationTax godoc
// @Summary Calculate Corporation Tax for an accounting period
// @Description Applies the small profits rate, main rate and marginal relief taper, pro-rated for short periods
// @Tags tax
// @Accept json
// @Produce json
// @Param request body params.CorporationTaxParams true "Accounting period and profit"
// @Success 200 {object} responses.CorporationTaxResult
// @Failure 400 {object} ErrorResponse
// @Router /tax/corporation-tax/calculate [post]
func (h *TaxHandler) CalculateCorporationTax(c *gin.Context) {
	var p params.CorporationTaxParams
	if err := c.ShouldBindJSON(&p); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.ctService.Calculate(p)
	if err != nil {
		if errors.Is(err, business.ErrInvalidPeriod) {
			sendError(c, http.StatusBadRequest, "Accounting period end must be after its start", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to calculate Corporation Tax", err)
		return
	}

	sendSuccess(c, http.StatusOK, result)
}

// CalculateNationalInsurance godoc
// @Summary Calculate National Insurance contributions for a salary
// @Description Computes the employee and employer contribution legs from gross annual salary
// @Tags tax
// @Accept json
// @Produce json
// @Param request body params.NationalInsuranceParams true "Salary input"
// @Success 200 {object} responses.NationalInsuranceResult
// @Failure 400 {object} ErrorResponse
// @Router /tax/national-insurance/calculate [post]
func (h *TaxHandler) CalculateNationalInsurance(c *gin.Context) {
	var p params.NationalInsuranceParams
	if err := c.ShouldBindJSON(&p); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	sendSuccess(c, http.StatusOK, h.niService.Calculate(p))
}
