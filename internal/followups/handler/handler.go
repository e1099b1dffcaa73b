package handler

import (
	"net/http"

	"gym_backoffice_backend/internal/followups/service"
	"gym_backoffice_backend/internal/followups/transport"
	"gym_backoffice_backend/platform/httpkit"
	"gym_backoffice_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
	msgInvalidID        = "invalid follow-up id"
)

// Handler handles HTTP requests for follow-up tasks
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new follow-ups handler
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the follow-up routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.PATCH("/:id/schedule", h.Reschedule)
	rg.PATCH("/:id/call-status", h.UpdateCallStatus)
}

// Create handles POST /api/v1/followups
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateFollowUpRequest
	if !h.bindJSON(c, &req) {
		return
	}
	tenantID, ok := httpkit.MustGetTenant(c)
	if !ok {
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), tenantID, req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.JSON(c, http.StatusCreated, resp)
}

// GetByID handles GET /api/v1/followups/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	tenantID, ok := httpkit.MustGetTenant(c)
	if !ok {
		return
	}

	resp, err := h.svc.GetByID(c.Request.Context(), tenantID, id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// Reschedule handles PATCH /api/v1/followups/:id/schedule
func (h *Handler) Reschedule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req transport.RescheduleRequest
	if !h.bindJSON(c, &req) {
		return
	}
	tenantID, ok := httpkit.MustGetTenant(c)
	if !ok {
		return
	}

	resp, err := h.svc.Reschedule(c.Request.Context(), tenantID, id, req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

// UpdateCallStatus handles PATCH /api/v1/followups/:id/call-status
func (h *Handler) UpdateCallStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req transport.UpdateCallStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}
	tenantID, ok := httpkit.MustGetTenant(c)
	if !ok {
		return
	}

	resp, err := h.svc.UpdateCallStatus(c.Request.Context(), tenantID, id, req.CallStatus)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, resp)
}

func (h *Handler) bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Describe(err))
		return false
	}
	return true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID, nil)
		return uuid.UUID{}, false
	}
	return id, true
}
