package handlers

import (
	"errors"

	"github.com/ecosaver/energy-server/internal/models"
	"github.com/ecosaver/energy-server/internal/repository"
	"github.com/gin-gonic/gin"
)

// AdminHandler is a generic browser/editor over the registered record
// kinds, plus a consumption summary.
type AdminHandler struct {
	store *repository.Store
}

func NewAdminHandler(store *repository.Store) *AdminHandler {
	return &AdminHandler{store: store}
}

const (
	kindDevices = "devices"
	kindUsage   = "energy-usage"
)

// GET /admin/records/:kind
func (h *AdminHandler) ListRecords(c *gin.Context) {
	switch c.Param("kind") {
	case kindDevices:
		devices, err := h.store.ListDevices()
		if err != nil {
			InternalError(c, "Failed to fetch devices")
			return
		}
		OK(c, devices)
	case kindUsage:
		usages, err := h.store.ListUsages()
		if err != nil {
			InternalError(c, "Failed to fetch readings")
			return
		}
		OK(c, usages)
	default:
		NotFound(c, "Unknown record kind")
	}
}

// GET /admin/records/:kind/:id
func (h *AdminHandler) GetRecord(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		BadRequest(c, "Invalid record ID")
		return
	}

	switch c.Param("kind") {
	case kindDevices:
		device, err := h.store.GetDevice(id)
		if err != nil {
			h.recordError(c, err, "Device not found")
			return
		}
		OK(c, device)
	case kindUsage:
		usage, err := h.store.GetUsage(id)
		if err != nil {
			h.recordError(c, err, "Reading not found")
			return
		}
		OK(c, usage)
	default:
		NotFound(c, "Unknown record kind")
	}
}

type EditDeviceRecord struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Location string `json:"location" binding:"required,min=1,max=100"`
}

type EditUsageRecord struct {
	DeviceID       uint     `json:"device_id" binding:"required"`
	EnergyConsumed *float64 `json:"energy_consumed" binding:"required"`
}

// PUT /admin/records/:kind/:id
func (h *AdminHandler) EditRecord(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		BadRequest(c, "Invalid record ID")
		return
	}

	switch c.Param("kind") {
	case kindDevices:
		var req EditDeviceRecord
		if err := c.ShouldBindJSON(&req); err != nil {
			BadRequest(c, err.Error())
			return
		}
		device, err := h.store.GetDevice(id)
		if err != nil {
			h.recordError(c, err, "Device not found")
			return
		}
		device.Name = req.Name
		device.Location = req.Location
		if err := h.store.SaveDevice(device); err != nil {
			InternalError(c, "Failed to update device")
			return
		}
		OK(c, device)
	case kindUsage:
		var req EditUsageRecord
		if err := c.ShouldBindJSON(&req); err != nil {
			BadRequest(c, err.Error())
			return
		}
		usage, err := h.store.GetUsage(id)
		if err != nil {
			h.recordError(c, err, "Reading not found")
			return
		}
		if exists, err := h.store.DeviceExists(req.DeviceID); err != nil || !exists {
			BadRequest(c, "Unknown device_id")
			return
		}
		usage.DeviceID = req.DeviceID
		usage.EnergyConsumed = *req.EnergyConsumed
		if err := h.store.SaveUsage(usage); err != nil {
			InternalError(c, "Failed to update reading")
			return
		}
		OK(c, usage)
	default:
		NotFound(c, "Unknown record kind")
	}
}

// DELETE /admin/records/:kind/:id
func (h *AdminHandler) DeleteRecord(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		BadRequest(c, "Invalid record ID")
		return
	}

	switch c.Param("kind") {
	case kindDevices:
		if err := h.store.DeleteDevice(id); err != nil {
			h.recordError(c, err, "Device not found")
			return
		}
		NoContent(c)
	case kindUsage:
		if err := h.store.DeleteUsage(id); err != nil {
			h.recordError(c, err, "Reading not found")
			return
		}
		NoContent(c)
	default:
		NotFound(c, "Unknown record kind")
	}
}

type StatsResponse struct {
	TotalDevices  int64         `json:"total_devices"`
	TotalReadings int64         `json:"total_readings"`
	TotalConsumed float64       `json:"total_consumed"`
	DeviceUsage   []DeviceUsage `json:"device_usage"`
}

type DeviceUsage struct {
	DeviceID     uint    `json:"device_id"`
	DeviceName   string  `json:"device_name"`
	ReadingCount int64   `json:"reading_count"`
	Consumed     float64 `json:"consumed"`
}

// GET /admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	devices, err := h.store.ListDevices()
	if err != nil {
		InternalError(c, "Failed to fetch devices")
		return
	}

	var totalReadings int64
	var totalConsumed float64
	deviceUsage := make([]DeviceUsage, 0, len(devices))

	for _, device := range devices {
		var readings []models.EnergyUsage
		h.store.DB().Where("device_id = ?", device.ID).Find(&readings)

		var consumed float64
		for _, r := range readings {
			consumed += r.EnergyConsumed
		}
		totalReadings += int64(len(readings))
		totalConsumed += consumed

		deviceUsage = append(deviceUsage, DeviceUsage{
			DeviceID:     device.ID,
			DeviceName:   device.Name,
			ReadingCount: int64(len(readings)),
			Consumed:     consumed,
		})
	}

	OK(c, StatsResponse{
		TotalDevices:  int64(len(devices)),
		TotalReadings: totalReadings,
		TotalConsumed: totalConsumed,
		DeviceUsage:   deviceUsage,
	})
}

func (h *AdminHandler) recordError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, repository.ErrNotFound) {
		NotFound(c, notFoundMsg)
		return
	}
	InternalError(c, "Failed to access record")
}
