package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerbside/kerbside-api/internal/helpers"
)

// ValidationHandler exposes reference number validation
type ValidationHandler struct{}

func NewValidationHandler() *ValidationHandler {
	return &ValidationHandler{}
}

type validateReferenceRequest struct {
	Value string `json:"value" binding:"required"`
}

// ValidateVatNumber godoc
// @Summary Validate a UK VAT registration number
// @Tags validation
// @Accept json
// @Produce json
// @Param request body validateReferenceRequest true "VAT number"
// @Success 200 {object} business.ValidationResult
// @Failure 400 {object} ErrorResponse
// @Router /validation/vat-number [post]
func (h *ValidationHandler) ValidateVatNumber(c *gin.Context) {
	var req validateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ValidateVatNumber(req.Value))
}

// ValidateUtr godoc
// @Summary Validate a Unique Taxpayer Reference
// @Tags validation
// @Accept json
// @Produce json
// @Param request body validateReferenceRequest true "UTR"
// @Success 200 {object} business.ValidationResult
// @Failure 400 {object} ErrorResponse
// @Router /validation/utr [post]
func (h *ValidationHandler) ValidateUtr(c *gin.Context) {
	var req validateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	sendSuccess(c, http.StatusOK, helpers.ValidateUtr(req.Value))
}
