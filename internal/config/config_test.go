package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		DatabaseURL:    "postgres://localhost:5432/engine",
		TenantID:       "tenant-1",
		DaysAhead:      14,
		TopMatches:     5,
		AlertRecipient: "coordinator@example.com",
		GmailUserID:    "user@example.com",
		MinistrySlots: []MinistrySlot{
			{
				MinistryID: "ministry-1",
				RRule:      "FREQ=WEEKLY;BYDAY=SU",
				StartTime:  "09:00",
				EndTime:    "11:00",
			},
		},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MinimalConfig(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/engine",
		TenantID:    "tenant-1",
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/engine",
		// Missing TenantID
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/engine",
		TenantID:    "tenant-1",
		MinistrySlots: []MinistrySlot{
			{
				MinistryID: "ministry-1",
				RRule:      "INVALID_RRULE_SYNTAX",
				StartTime:  "09:00",
				EndTime:    "11:00",
			},
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestValidate_EmptyRRule(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/engine",
		TenantID:    "tenant-1",
		MinistrySlots: []MinistrySlot{
			{
				MinistryID: "ministry-1",
				RRule:      "",
				StartTime:  "09:00",
				EndTime:    "11:00",
			},
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_ComplexValidRRule(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/engine",
		TenantID:    "tenant-1",
		MinistrySlots: []MinistrySlot{
			{
				MinistryID: "ministry-1",
				RRule:      "FREQ=MONTHLY;BYDAY=1SU;BYMONTH=1,4,7,10",
				StartTime:  "09:00",
				EndTime:    "11:00",
			},
		},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_InvalidAlertRecipient(t *testing.T) {
	cfg := &Config{
		DatabaseURL:    "postgres://localhost:5432/engine",
		TenantID:       "tenant-1",
		AlertRecipient: "not-an-email",
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	validConfig := `
databaseURL: "postgres://localhost:5432/engine"
tenantID: "tenant-1"
daysAhead: 14
topMatches: 5
alertRecipient: "coordinator@example.com"
ministrySlots:
  - ministryID: "ministry-1"
    rrule: "FREQ=WEEKLY;BYDAY=SU"
    startTime: "09:00"
    endTime: "11:00"
`

	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/engine", cfg.DatabaseURL)
	assert.Equal(t, "tenant-1", cfg.TenantID)
	assert.Equal(t, 14, cfg.DaysAhead)
	assert.Equal(t, 5, cfg.TopMatches)
	assert.Equal(t, "coordinator@example.com", cfg.AlertRecipient)

	require.Len(t, cfg.MinistrySlots, 1)
	slot := cfg.MinistrySlots[0]
	assert.Equal(t, "ministry-1", slot.MinistryID)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=SU", slot.RRule)
	assert.Equal(t, "09:00", slot.StartTime)
	assert.Equal(t, "11:00", slot.EndTime)
}

func TestLoadFromPath_AppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minimal_config.yaml")

	minimalConfig := `
databaseURL: "postgres://localhost:5432/engine"
tenantID: "tenant-1"
`

	err := os.WriteFile(configPath, []byte(minimalConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.DaysAhead)
	assert.Equal(t, 3, cfg.TopMatches)
}

func TestLoadFromPath_InvalidRRule(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_rrule.yaml")

	invalidConfig := `
databaseURL: "postgres://localhost:5432/engine"
tenantID: "tenant-1"
ministrySlots:
  - ministryID: "ministry-1"
    rrule: "INVALID_RRULE_SYNTAX"
    startTime: "09:00"
    endTime: "11:00"
`

	err := os.WriteFile(configPath, []byte(invalidConfig), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "does_not_exist.yaml"))
	assert.Error(t, err)
}

func TestSlotFor(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/engine",
		TenantID:    "tenant-1",
		MinistrySlots: []MinistrySlot{
			{MinistryID: "ministry-1", RRule: "FREQ=WEEKLY;BYDAY=SU", StartTime: "09:00", EndTime: "11:00"},
			{MinistryID: "ministry-2", RRule: "FREQ=WEEKLY;BYDAY=WE", StartTime: "18:00", EndTime: "20:00"},
		},
	}

	slot := cfg.SlotFor("ministry-2")
	require.NotNil(t, slot)
	assert.Equal(t, "18:00", slot.StartTime)

	assert.Nil(t, cfg.SlotFor("ministry-3"))
}
