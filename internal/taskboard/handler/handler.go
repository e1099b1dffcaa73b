package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"gym_backoffice_backend/internal/taskboard/domain"
	"gym_backoffice_backend/internal/taskboard/service"
	"gym_backoffice_backend/internal/taskboard/transport"
	"gym_backoffice_backend/platform/httpkit"
	"gym_backoffice_backend/platform/timeutil"
	"gym_backoffice_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for the call-task board
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new taskboard handler
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterRoutes registers the board routes. exportGuards run before the
// export handler only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, exportGuards ...gin.HandlerFunc) {
	rg.GET("/calls", h.List)
	rg.GET("/calls/stats", h.Stats)
	rg.GET("/calls/export", append(exportGuards, h.Export)...)
}

// List handles GET /api/v1/taskboard/calls
func (h *Handler) List(c *gin.Context) {
	req, ok := h.bindQuery(c)
	if !ok {
		return
	}
	tenantID, ok := httpkit.MustGetTenant(c)
	if !ok {
		return
	}

	result, err := h.svc.List(c.Request.Context(), tenantID, req.Params(), req.Page, req.PageSize)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToListCallsResponse(result.Tasks, result.Total))
}

// Stats handles GET /api/v1/taskboard/calls/stats
func (h *Handler) Stats(c *gin.Context) {
	req, ok := h.bindQuery(c)
	if !ok {
		return
	}
	tenantID, ok := httpkit.MustGetTenant(c)
	if !ok {
		return
	}

	stats, err := h.svc.Stats(c.Request.Context(), tenantID, req.Params())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ToStatsResponse(stats))
}

// Export handles GET /api/v1/taskboard/calls/export. The file is rendered
// in full before anything is written, so a failure never yields a partial
// download.
func (h *Handler) Export(c *gin.Context) {
	req, ok := h.bindQuery(c)
	if !ok {
		return
	}
	tenantID, ok := httpkit.MustGetTenant(c)
	if !ok {
		return
	}

	tasks, err := h.svc.Export(c.Request.Context(), tenantID, req.Params())
	if httpkit.HandleError(c, err) {
		return
	}

	var buf bytes.Buffer
	if err := domain.WriteCSV(&buf, tasks); httpkit.HandleError(c, err) {
		return
	}

	filename := fmt.Sprintf("call-tasks-%s.csv", h.svc.Now().Format(timeutil.FileStampLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *Handler) bindQuery(c *gin.Context) (transport.ListCallsRequest, bool) {
	var req transport.ListCallsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return req, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, validator.Describe(err))
		return req, false
	}
	return req, true
}
