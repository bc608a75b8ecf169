package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"visionguard-service/internal/model"
	"visionguard-service/internal/report"
	"visionguard-service/internal/service"
)

type Handler struct {
	reports    *service.ReportService
	violations *service.ViolationService
	workers    *service.WorkerService
	cameras    *service.CameraService
	users      *service.UserService
	auth       *service.AuthService
	log        zerolog.Logger
}

func NewHandler(
	reports *service.ReportService,
	violations *service.ViolationService,
	workers *service.WorkerService,
	cameras *service.CameraService,
	users *service.UserService,
	auth *service.AuthService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		reports:    reports,
		violations: violations,
		workers:    workers,
		cameras:    cameras,
		users:      users,
		auth:       auth,
		log:        log,
	}
}

func (h *Handler) getViolationsByWorker(c *gin.Context) {
	var filter model.ReportFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid report filter"))
		return
	}

	result, err := h.reports.ViolationsByWorker(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) getViolationsByType(c *gin.Context) {
	var filter model.ReportFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid report filter"))
		return
	}

	result, err := h.reports.ViolationsByType(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) getMonthlySummary(c *gin.Context) {
	year, errYear := strconv.Atoi(strings.TrimSpace(c.Query("year")))
	month, errMonth := strconv.Atoi(strings.TrimSpace(c.Query("month")))
	if errYear != nil || errMonth != nil {
		c.JSON(http.StatusBadRequest, errorResponse("year and month query parameters are required"))
		return
	}

	summary, err := h.reports.MonthlySummary(c.Request.Context(), year, month)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(summary))
}

func (h *Handler) exportExcel(c *gin.Context) {
	var filter model.ReportFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid report filter"))
		return
	}

	export, err := h.reports.ExportExcel(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.serveExport(c, export)
}

func (h *Handler) exportPDF(c *gin.Context) {
	var filter model.ReportFilter
	if err := c.ShouldBindJSON(&filter); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid report filter"))
		return
	}

	export, err := h.reports.ExportPDF(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	h.serveExport(c, export)
}

func (h *Handler) serveExport(c *gin.Context, export *report.Export) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, report.ErrInvalidPeriod),
		errors.Is(err, report.ErrUnrecognizedType),
		errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse(err.Error()))
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{"data": data}
}

func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}
