package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"visionguard-service/internal/service"
)

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, errorResponse("invalid id"))
		return 0, false
	}
	return id, true
}

func (h *Handler) listWorkers(c *gin.Context) {
	workers, err := h.workers.All(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(workers))
}

func (h *Handler) getWorker(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	worker, err := h.workers.ByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(worker))
}

// workerInput reads the multipart form the frontend submits: text fields
// plus an optional photo file.
func (h *Handler) workerInput(c *gin.Context) (service.WorkerInput, bool) {
	input := service.WorkerInput{
		EmployeeID: c.PostForm("employee_id"),
		Name:       c.PostForm("name"),
	}

	file, err := c.FormFile("photo")
	if err == nil && file != nil {
		opened, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("unreadable photo upload"))
			return input, false
		}
		input.Photo = opened
		input.PhotoName = file.Filename
	}
	return input, true
}

func (h *Handler) createWorker(c *gin.Context) {
	input, ok := h.workerInput(c)
	if !ok {
		return
	}

	worker, err := h.workers.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(worker))
}

func (h *Handler) updateWorker(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	input, ok := h.workerInput(c)
	if !ok {
		return
	}

	worker, err := h.workers.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(worker))
}

func (h *Handler) deleteWorker(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.workers.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type cameraRequest struct {
	Name        string  `json:"name"`
	Zone        string  `json:"zone"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (h *Handler) listCameras(c *gin.Context) {
	cameras, err := h.cameras.All(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(cameras))
}

func (h *Handler) listZones(c *gin.Context) {
	zones, err := h.cameras.Zones(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(zones))
}

func (h *Handler) getCamera(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	camera, err := h.cameras.ByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(camera))
}

func (h *Handler) createCamera(c *gin.Context) {
	var req cameraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid camera payload"))
		return
	}

	camera, err := h.cameras.Create(c.Request.Context(), service.CameraInput{
		Name:        req.Name,
		Zone:        req.Zone,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, successResponse(camera))
}

func (h *Handler) updateCamera(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req cameraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid camera payload"))
		return
	}

	camera, err := h.cameras.Update(c.Request.Context(), id, service.CameraInput{
		Name:        req.Name,
		Zone:        req.Zone,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(camera))
}

func (h *Handler) deleteCamera(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cameras.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
