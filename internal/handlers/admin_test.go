package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ecosaver/energy-server/internal/config"
	"github.com/ecosaver/energy-server/internal/models"
	"github.com/ecosaver/energy-server/internal/repository"
	"github.com/gin-gonic/gin"
)

func loginAdmin(t *testing.T, r *gin.Engine, store *repository.Store) string {
	t.Helper()

	cfg := config.AdminConfig{Email: "admin@example.com", Password: "hunter22"}
	if err := repository.SeedAdmin(store.DB(), &cfg); err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/admin/login", map[string]string{
		"email":    cfg.Email,
		"password": cfg.Password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("POST /admin/login status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp LoginResponse
	decode(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("login returned empty token")
	}
	return resp.Token
}

func TestAdminLoginBadPassword(t *testing.T) {
	r, store := setupRouter(t)

	cfg := config.AdminConfig{Email: "admin@example.com", Password: "correct"}
	if err := repository.SeedAdmin(store.DB(), &cfg); err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/admin/login", map[string]string{
		"email":    cfg.Email,
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("login with bad password status = %d, want 401", w.Code)
	}
}

func TestAdminRecordsRequireToken(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/admin/records/devices", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("GET /admin/records/devices without token status = %d, want 401", w.Code)
	}
}

func TestAdminBrowseAndEdit(t *testing.T) {
	r, store := setupRouter(t)
	token := loginAdmin(t, r, store)
	auth := []string{"Authorization", "Bearer " + token}

	device := models.Device{Name: "Meter", Location: "Hall"}
	if err := store.CreateDevice(&device); err != nil {
		t.Fatalf("CreateDevice() error = %v", err)
	}
	usage := models.EnergyUsage{DeviceID: device.ID, EnergyConsumed: 2.5}
	if err := store.CreateUsage(&usage); err != nil {
		t.Fatalf("CreateUsage() error = %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/admin/records/devices", nil, auth...)
	if w.Code != http.StatusOK {
		t.Fatalf("list devices status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var devices []models.Device
	decode(t, w, &devices)
	if len(devices) != 1 {
		t.Errorf("len(devices) = %d, want 1", len(devices))
	}

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/admin/records/devices/%d", device.ID), map[string]string{
		"name":     "Main Meter",
		"location": "Hall",
	}, auth...)
	if w.Code != http.StatusOK {
		t.Fatalf("edit device status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var edited models.Device
	decode(t, w, &edited)
	if edited.Name != "Main Meter" {
		t.Errorf("edited name = %q, want %q", edited.Name, "Main Meter")
	}

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/admin/records/energy-usage/%d", usage.ID), nil, auth...)
	if w.Code != http.StatusNoContent {
		t.Errorf("delete reading status = %d, want 204", w.Code)
	}
}

func TestAdminUnknownKind(t *testing.T) {
	r, store := setupRouter(t)
	token := loginAdmin(t, r, store)

	w := doJSON(t, r, http.MethodGet, "/admin/records/payments", nil, "Authorization", "Bearer "+token)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown kind status = %d, want 404", w.Code)
	}
}

func TestAdminStats(t *testing.T) {
	r, store := setupRouter(t)
	token := loginAdmin(t, r, store)

	device := models.Device{Name: "Freezer", Location: "Garage"}
	if err := store.CreateDevice(&device); err != nil {
		t.Fatalf("CreateDevice() error = %v", err)
	}
	for _, v := range []float64{1.0, 2.5} {
		u := models.EnergyUsage{DeviceID: device.ID, EnergyConsumed: v}
		if err := store.CreateUsage(&u); err != nil {
			t.Fatalf("CreateUsage() error = %v", err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/admin/stats", nil, "Authorization", "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /admin/stats status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var stats StatsResponse
	decode(t, w, &stats)
	if stats.TotalDevices != 1 {
		t.Errorf("total_devices = %d, want 1", stats.TotalDevices)
	}
	if stats.TotalReadings != 2 {
		t.Errorf("total_readings = %d, want 2", stats.TotalReadings)
	}
	if stats.TotalConsumed != 3.5 {
		t.Errorf("total_consumed = %v, want 3.5", stats.TotalConsumed)
	}
}
