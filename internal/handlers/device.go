package handlers

import (
	"errors"
	"strconv"

	"github.com/ecosaver/energy-server/internal/models"
	"github.com/ecosaver/energy-server/internal/repository"
	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	store *repository.Store
}

func NewDeviceHandler(store *repository.Store) *DeviceHandler {
	return &DeviceHandler{store: store}
}

type CreateDeviceRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Location string `json:"location" binding:"required,min=1,max=100"`
}

type PatchDeviceRequest struct {
	Name     string `json:"name" binding:"omitempty,min=1,max=100"`
	Location string `json:"location" binding:"omitempty,min=1,max=100"`
}

// GET /devices
func (h *DeviceHandler) List(c *gin.Context) {
	devices, err := h.store.ListDevices()
	if err != nil {
		InternalError(c, "Failed to fetch devices")
		return
	}

	OK(c, devices)
}

// POST /devices
func (h *DeviceHandler) Create(c *gin.Context) {
	var req CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	device := models.Device{
		Name:     req.Name,
		Location: req.Location,
	}

	if err := h.store.CreateDevice(&device); err != nil {
		InternalError(c, "Failed to create device")
		return
	}

	Created(c, device)
}

// GET /devices/:id
func (h *DeviceHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		BadRequest(c, "Invalid device ID")
		return
	}

	device, err := h.store.GetDevice(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Device not found")
			return
		}
		InternalError(c, "Failed to fetch device")
		return
	}

	OK(c, device)
}

// PUT /devices/:id
func (h *DeviceHandler) Replace(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		BadRequest(c, "Invalid device ID")
		return
	}

	var req CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	device, err := h.store.GetDevice(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Device not found")
			return
		}
		InternalError(c, "Failed to fetch device")
		return
	}

	device.Name = req.Name
	device.Location = req.Location
	if err := h.store.SaveDevice(device); err != nil {
		InternalError(c, "Failed to update device")
		return
	}

	OK(c, device)
}

// PATCH /devices/:id
func (h *DeviceHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		BadRequest(c, "Invalid device ID")
		return
	}

	var req PatchDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	device, err := h.store.GetDevice(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Device not found")
			return
		}
		InternalError(c, "Failed to fetch device")
		return
	}

	if req.Name != "" {
		device.Name = req.Name
	}
	if req.Location != "" {
		device.Location = req.Location
	}

	if err := h.store.SaveDevice(device); err != nil {
		InternalError(c, "Failed to update device")
		return
	}

	OK(c, device)
}

// DELETE /devices/:id
func (h *DeviceHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		BadRequest(c, "Invalid device ID")
		return
	}

	if err := h.store.DeleteDevice(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Device not found")
			return
		}
		InternalError(c, "Failed to delete device")
		return
	}

	NoContent(c)
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
