package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kerbside/kerbside-api/internal/services"
	"github.com/kerbside/kerbside-api/internal/types/api/params"
	"github.com/kerbside/kerbside-api/internal/types/business"
)

// DeadlineHandler exposes the deadline registry and its lifecycle
// operations
type DeadlineHandler struct {
	deadlineService *services.DeadlineService
}

func NewDeadlineHandler(deadlineService *services.DeadlineService) *DeadlineHandler {
	return &DeadlineHandler{deadlineService: deadlineService}
}

// GenerateYear godoc
// @Summary Generate the statutory deadlines for a tax year
// @Description Creates the quarterly VAT, Corporation Tax and payroll deadlines for the given year and registers them
// @Tags deadlines
// @Produce json
// @Param year path int true "Tax year"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /deadlines/generate/{year} [post]
func (h *DeadlineHandler) GenerateYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2100 {
		sendError(c, http.StatusBadRequest, "Invalid tax year", err)
		return
	}

	deadlines := h.deadlineService.GenerateYearlyDeadlines(year)
	h.deadlineService.Register(deadlines...)

	c.JSON(http.StatusCreated, gin.H{
		"object": "list",
		"data":   deadlines,
	})
}

// ListDeadlines godoc
// @Summary List all registered deadlines
// @Tags deadlines
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /deadlines [get]
func (h *DeadlineHandler) ListDeadlines(c *gin.Context) {
	sendList(c, h.deadlineService.List())
}

// GetDeadline godoc
// @Summary Get a single deadline by id
// @Tags deadlines
// @Produce json
// @Param id path string true "Deadline ID"
// @Success 200 {object} business.TaxDeadline
// @Failure 404 {object} ErrorResponse
// @Router /deadlines/{id} [get]
func (h *DeadlineHandler) GetDeadline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid deadline id", err)
		return
	}

	deadline, err := h.deadlineService.Get(id)
	if err != nil {
		sendError(c, http.StatusNotFound, "Deadline not found", err)
		return
	}

	sendSuccess(c, http.StatusOK, deadline)
}

// AdvanceDeadlines godoc
// @Summary Run a status-advancement pass over the registry
// @Description Recomputes every deadline status against today and returns reminders that fired on this pass
// @Tags deadlines
// @Accept json
// @Produce json
// @Param request body params.AdvanceDeadlinesParams false "Reference date; defaults to now"
// @Success 200 {object} responses.AdvanceDeadlinesResult
// @Router /deadlines/advance [post]
func (h *DeadlineHandler) AdvanceDeadlines(c *gin.Context) {
	var p params.AdvanceDeadlinesParams
	if err := c.ShouldBindJSON(&p); err != nil && c.Request.ContentLength > 0 {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	today := p.Today
	if today.IsZero() {
		today = time.Now().UTC()
	}

	sendSuccess(c, http.StatusOK, h.deadlineService.AdvanceAll(today))
}

// CompleteDeadline godoc
// @Summary Mark a deadline as completed
// @Tags deadlines
// @Accept json
// @Produce json
// @Param id path string true "Deadline ID"
// @Param request body params.CompleteDeadlineParams false "Completion detail"
// @Success 200 {object} business.TaxDeadline
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /deadlines/{id}/complete [post]
func (h *DeadlineHandler) CompleteDeadline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid deadline id", err)
		return
	}

	var p params.CompleteDeadlineParams
	if err := c.ShouldBindJSON(&p); err != nil && c.Request.ContentLength > 0 {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	p.DeadlineID = id

	deadline, err := h.deadlineService.Complete(p)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrDeadlineNotFound):
			sendError(c, http.StatusNotFound, "Deadline not found", err)
		case errors.Is(err, business.ErrIllegalTransition):
			sendError(c, http.StatusConflict, "Deadline is already completed or cancelled", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to complete deadline", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, deadline)
}

// CancelDeadline godoc
// @Summary Cancel a deadline
// @Tags deadlines
// @Accept json
// @Produce json
// @Param id path string true "Deadline ID"
// @Success 200 {object} business.TaxDeadline
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /deadlines/{id}/cancel [post]
func (h *DeadlineHandler) CancelDeadline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid deadline id", err)
		return
	}

	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && c.Request.ContentLength > 0 {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	deadline, err := h.deadlineService.Cancel(id, body.Notes)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrDeadlineNotFound):
			sendError(c, http.StatusNotFound, "Deadline not found", err)
		case errors.Is(err, business.ErrIllegalTransition):
			sendError(c, http.StatusConflict, "Deadline is already completed or cancelled", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to cancel deadline", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, deadline)
}
