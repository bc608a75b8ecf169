package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"visionguard-service/internal/http/middleware"
	"visionguard-service/internal/model"
	"visionguard-service/internal/repository"
	"visionguard-service/internal/service"
)

func (h *Handler) listUsers(c *gin.Context) {
	var params repository.UserListParams

	if roleStr := strings.TrimSpace(c.Query("role")); roleStr != "" {
		role, ok := model.ParseRole(roleStr)
		if !ok {
			c.JSON(http.StatusBadRequest, errorResponse("unknown role"))
			return
		}
		params.Role = &role
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

	users, total, err := h.users.List(c.Request.Context(), params)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{
		"users": users,
		"total": total,
	}))
}

func (h *Handler) getUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.users.ByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(user))
}

type createUserRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Role       string `json:"role" binding:"required"`
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("username, password and role are required"))
		return
	}

	role, parsed := model.ParseRole(req.Role)
	if !parsed {
		c.JSON(http.StatusBadRequest, errorResponse("unknown role"))
		return
	}

	user, err := h.users.Create(c.Request.Context(), service.NewUserInput{
		Username:   req.Username,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
		Role:       role,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(user))
}

type updateUserRequest struct {
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	Role       *string `json:"role"`
	IsActive   *bool   `json:"is_active"`
}

func (h *Handler) updateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid user payload"))
		return
	}

	update := service.UserUpdate{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
		IsActive:   req.IsActive,
	}
	if req.Role != nil {
		role, parsed := model.ParseRole(*req.Role)
		if !parsed {
			c.JSON(http.StatusBadRequest, errorResponse("unknown role"))
			return
		}
		update.Role = &role
	}

	user, err := h.users.Update(c.Request.Context(), id, update)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(user))
}

func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	// Supervisors cannot remove their own account and lock everyone out.
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}
	if principal.UserID == id {
		c.JSON(http.StatusBadRequest, errorResponse("cannot delete your own account"))
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) resetUserPassword(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	password, err := h.users.ResetPassword(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"temporary_password": password}))
}
