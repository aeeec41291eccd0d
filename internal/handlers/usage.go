package handlers

import (
	"errors"

	"github.com/ecosaver/energy-server/internal/models"
	"github.com/ecosaver/energy-server/internal/repository"
	"github.com/gin-gonic/gin"
)

type UsageHandler struct {
	store *repository.Store
}

func NewUsageHandler(store *repository.Store) *UsageHandler {
	return &UsageHandler{store: store}
}

type CreateUsageRequest struct {
	DeviceID       uint     `json:"device_id" binding:"required"`
	EnergyConsumed *float64 `json:"energy_consumed" binding:"required"`
}

type PatchUsageRequest struct {
	DeviceID       uint     `json:"device_id" binding:"omitempty"`
	EnergyConsumed *float64 `json:"energy_consumed" binding:"omitempty"`
}

// GET /energy-usage
func (h *UsageHandler) List(c *gin.Context) {
	usages, err := h.store.ListUsages()
	if err != nil {
		InternalError(c, "Failed to fetch readings")
		return
	}

	OK(c, usages)
}

// POST /energy-usage
func (h *UsageHandler) Create(c *gin.Context) {
	var req CreateUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	if !h.deviceExists(c, req.DeviceID) {
		return
	}

	usage := models.EnergyUsage{
		DeviceID:       req.DeviceID,
		EnergyConsumed: *req.EnergyConsumed,
	}

	if err := h.store.CreateUsage(&usage); err != nil {
		InternalError(c, "Failed to create reading")
		return
	}

	Created(c, usage)
}

// GET /energy-usage/:id
func (h *UsageHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		BadRequest(c, "Invalid reading ID")
		return
	}

	usage, err := h.store.GetUsage(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Reading not found")
			return
		}
		InternalError(c, "Failed to fetch reading")
		return
	}

	OK(c, usage)
}

// PUT /energy-usage/:id
func (h *UsageHandler) Replace(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		BadRequest(c, "Invalid reading ID")
		return
	}

	var req CreateUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	usage, err := h.store.GetUsage(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Reading not found")
			return
		}
		InternalError(c, "Failed to fetch reading")
		return
	}

	if !h.deviceExists(c, req.DeviceID) {
		return
	}

	usage.DeviceID = req.DeviceID
	usage.EnergyConsumed = *req.EnergyConsumed
	if err := h.store.SaveUsage(usage); err != nil {
		InternalError(c, "Failed to update reading")
		return
	}

	OK(c, usage)
}

// PATCH /energy-usage/:id
func (h *UsageHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		BadRequest(c, "Invalid reading ID")
		return
	}

	var req PatchUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	usage, err := h.store.GetUsage(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Reading not found")
			return
		}
		InternalError(c, "Failed to fetch reading")
		return
	}

	if req.DeviceID != 0 {
		if !h.deviceExists(c, req.DeviceID) {
			return
		}
		usage.DeviceID = req.DeviceID
	}
	if req.EnergyConsumed != nil {
		usage.EnergyConsumed = *req.EnergyConsumed
	}

	if err := h.store.SaveUsage(usage); err != nil {
		InternalError(c, "Failed to update reading")
		return
	}

	OK(c, usage)
}

// DELETE /energy-usage/:id
func (h *UsageHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		BadRequest(c, "Invalid reading ID")
		return
	}

	if err := h.store.DeleteUsage(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "Reading not found")
			return
		}
		InternalError(c, "Failed to delete reading")
		return
	}

	NoContent(c)
}

// deviceExists writes the error response itself and reports whether the
// caller should continue.
func (h *UsageHandler) deviceExists(c *gin.Context, deviceID uint) bool {
	exists, err := h.store.DeviceExists(deviceID)
	if err != nil {
		InternalError(c, "Failed to verify device")
		return false
	}
	if !exists {
		BadRequest(c, "Unknown device_id")
		return false
	}
	return true
}
