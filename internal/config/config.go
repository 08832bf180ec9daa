package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// MinistrySlot defines the recurring service slot of a standing ministry.
// The gap identifier uses the rrule to place ministry gaps on the next
// occurrence instead of a generic date.
type MinistrySlot struct {
	MinistryID string `yaml:"ministryID" validate:"required"`
	RRule      string `yaml:"rrule" validate:"required"`
	StartTime  string `yaml:"startTime" validate:"required"`
	EndTime    string `yaml:"endTime" validate:"required"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL    string         `yaml:"databaseURL" validate:"required"`
	TenantID       string         `yaml:"tenantID" validate:"required"`
	DaysAhead      int            `yaml:"daysAhead,omitempty" validate:"omitempty,min=1"`
	TopMatches     int            `yaml:"topMatches,omitempty" validate:"omitempty,min=1"`
	AlertRecipient string         `yaml:"alertRecipient,omitempty" validate:"omitempty,email"`
	GmailUserID    string         `yaml:"gmailUserID,omitempty" validate:"omitempty,email"`
	MinistrySlots  []MinistrySlot `yaml:"ministrySlots,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// LoadWithEnv loads and validates the configuration with an environment
// suffix. For example, env="test" looks for "volunteer_engine.test.yaml".
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(env)
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate rrule syntax for each ministry slot
	for i, slot := range cfg.MinistrySlots {
		if _, err := rrule.StrToRRule(slot.RRule); err != nil {
			return fmt.Errorf("invalid rrule in ministrySlots[%d]: %w", i, err)
		}
	}

	return nil
}

// SlotFor returns the configured slot for a ministry, or nil
func (c *Config) SlotFor(ministryID string) *MinistrySlot {
	for i := range c.MinistrySlots {
		if c.MinistrySlots[i].MinistryID == ministryID {
			return &c.MinistrySlots[i]
		}
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.DaysAhead == 0 {
		cfg.DaysAhead = 30
	}
	if cfg.TopMatches == 0 {
		cfg.TopMatches = 3
	}
}

// findConfigFile searches for the config file in current directory and home
// directory. If env is provided it is added as an extension.
func findConfigFile(env string) (string, error) {
	configFileName := "volunteer_engine.yaml"
	if env != "" {
		configFileName = "volunteer_engine." + env + ".yaml"
	}

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
