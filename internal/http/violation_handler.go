package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"visionguard-service/internal/model"
	"visionguard-service/internal/repository"
)

func (h *Handler) listViolations(c *gin.Context) {
	params := repository.ListParams{Zone: strings.TrimSpace(c.Query("zone"))}

	if statusStr := strings.TrimSpace(c.Query("status")); statusStr != "" {
		status, ok := model.ParseViolationStatus(statusStr)
		if !ok {
			c.JSON(http.StatusBadRequest, errorResponse("unknown status"))
			return
		}
		params.Status = &status
	}
	if typeStr := strings.TrimSpace(c.Query("type")); typeStr != "" {
		ppeType, ok := model.ParsePPEType(typeStr)
		if !ok {
			c.JSON(http.StatusBadRequest, errorResponse("unknown violation type"))
			return
		}
		params.Type = &ppeType
	}
	if fromStr := strings.TrimSpace(c.Query("from")); fromStr != "" {
		if parsed, err := time.Parse(time.RFC3339, fromStr); err == nil {
			params.From = &parsed
		}
	}
	if toStr := strings.TrimSpace(c.Query("to")); toStr != "" {
		if parsed, err := time.Parse(time.RFC3339, toStr); err == nil {
			params.To = &parsed
		}
	}
	if limitStr := strings.TrimSpace(c.Query("limit")); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			params.Limit = parsed
		}
	}
	if offsetStr := strings.TrimSpace(c.Query("offset")); offsetStr != "" {
		if parsed, err := strconv.Atoi(offsetStr); err == nil && parsed >= 0 {
			params.Offset = parsed
		}
	}

	violations, total, err := h.violations.List(c.Request.Context(), params)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{
		"violations": violations,
		"total":      total,
	}))
}

func (h *Handler) getViolation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	violation, err := h.violations.ByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(violation))
}

type reviewRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

func (h *Handler) reviewViolation(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("status is required"))
		return
	}

	status, parsed := model.ParseViolationStatus(req.Status)
	if !parsed {
		c.JSON(http.StatusBadRequest, errorResponse("unknown status"))
		return
	}

	violation, err := h.violations.Review(c.Request.Context(), id, status, req.Notes)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(violation))
}
