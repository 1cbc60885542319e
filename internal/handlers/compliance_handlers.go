package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerbside/kerbside-api/internal/services"
	"github.com/kerbside/kerbside-api/internal/types/api/params"
)

// ComplianceHandler exposes the compliance check run
type ComplianceHandler struct {
	complianceService *services.ComplianceService
}

func NewComplianceHandler(complianceService *services.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{complianceService: complianceService}
}

// RunChecks godoc
// @Summary Run the compliance checks against an operator snapshot
// @Description Executes every compliance check and returns the aggregated report with issues and recommendations
// @Tags compliance
// @Accept json
// @Produce json
// @Param request body params.ComplianceContextParams true "Operator state snapshot"
// @Success 200 {object} responses.ComplianceReport
// @Failure 400 {object} ErrorResponse
// @Router /compliance/checks [post]
func (h *ComplianceHandler) RunChecks(c *gin.Context) {
	var p params.ComplianceContextParams
	if err := c.ShouldBindJSON(&p); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	sendSuccess(c, http.StatusOK, h.complianceService.RunChecks(p))
}
