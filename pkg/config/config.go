package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/easeboard/config"
	ConfigFileName    = "easeboard.yml"
)

// Settings holds all EaseBoard configuration settings. Secrets such as
// DATABASE_URL, EASEBOARD_DATA_KEY and SUPABASE_JWT_SECRET are never read
// from the config file; they come from the environment only.
type Settings struct {
	// Port is the HTTP listen port
	Port int `yaml:"port" json:"port" validate:"min=1,max=65535"`

	// CORSAllowedOrigins is the list of origins allowed to call the API
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins" json:"cors_allowed_origins"`

	// SyncIntervalMinutes is how stale a connection may get before the
	// scheduler re-syncs it
	SyncIntervalMinutes int `yaml:"sync_interval_minutes" json:"sync_interval_minutes" validate:"min=1"`

	// SchedulerTickMinutes is how often the scheduler scans for stale
	// connections
	SchedulerTickMinutes int `yaml:"scheduler_tick_minutes" json:"scheduler_tick_minutes" validate:"min=1"`

	// MaxConcurrentRequests bounds parallel Canvas API calls per sync
	MaxConcurrentRequests int `yaml:"max_concurrent_requests" json:"max_concurrent_requests" validate:"min=1,max=100"`

	// RetryAttempts is the number of tries for a failing Canvas request
	RetryAttempts int `yaml:"retry_attempts" json:"retry_attempts" validate:"min=1,max=10"`

	// RequestTimeoutSeconds is the per-request timeout for Canvas calls
	RequestTimeoutSeconds int `yaml:"request_timeout_seconds" json:"request_timeout_seconds" validate:"min=1"`

	// CanvasRateLimit caps outbound Canvas requests per second
	CanvasRateLimit float64 `yaml:"canvas_rate_limit" json:"canvas_rate_limit" validate:"gt=0"`

	// DueSoonDays is the window used for the dashboard due-soon list
	DueSoonDays int `yaml:"due_soon_days" json:"due_soon_days" validate:"min=1"`

	// AuditEnabled enables audit logging to the database
	AuditEnabled bool `yaml:"audit_enabled" json:"audit_enabled"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Settings
	configMu     sync.RWMutex

	validate = validator.New()
)

// Get returns the global configuration, loading it if necessary
func Get() *Settings {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Settings {
	return &Settings{
		Port:                  8080,
		CORSAllowedOrigins:    []string{"http://localhost:3000"},
		SyncIntervalMinutes:   120,
		SchedulerTickMinutes:  5,
		MaxConcurrentRequests: 10,
		RetryAttempts:         3,
		RequestTimeoutSeconds: 30,
		CanvasRateLimit:       5,
		DueSoonDays:           7,
		AuditEnabled:          true,
		sources:               make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Settings, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("EASEBOARD_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Settings
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"port", "cors_allowed_origins", "sync_interval_minutes",
		"scheduler_tick_minutes", "max_concurrent_requests",
		"retry_attempts", "request_timeout_seconds", "canvas_rate_limit",
		"due_soon_days", "audit_enabled",
	}
}

func (c *Settings) applyFileConfig(file *Settings) {
	if file.Port != 0 {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if len(file.CORSAllowedOrigins) > 0 {
		c.CORSAllowedOrigins = file.CORSAllowedOrigins
		c.sources["cors_allowed_origins"] = "file"
	}
	if file.SyncIntervalMinutes != 0 {
		c.SyncIntervalMinutes = file.SyncIntervalMinutes
		c.sources["sync_interval_minutes"] = "file"
	}
	if file.SchedulerTickMinutes != 0 {
		c.SchedulerTickMinutes = file.SchedulerTickMinutes
		c.sources["scheduler_tick_minutes"] = "file"
	}
	if file.MaxConcurrentRequests != 0 {
		c.MaxConcurrentRequests = file.MaxConcurrentRequests
		c.sources["max_concurrent_requests"] = "file"
	}
	if file.RetryAttempts != 0 {
		c.RetryAttempts = file.RetryAttempts
		c.sources["retry_attempts"] = "file"
	}
	if file.RequestTimeoutSeconds != 0 {
		c.RequestTimeoutSeconds = file.RequestTimeoutSeconds
		c.sources["request_timeout_seconds"] = "file"
	}
	if file.CanvasRateLimit != 0 {
		c.CanvasRateLimit = file.CanvasRateLimit
		c.sources["canvas_rate_limit"] = "file"
	}
	if file.DueSoonDays != 0 {
		c.DueSoonDays = file.DueSoonDays
		c.sources["due_soon_days"] = "file"
	}
}

func (c *Settings) applyEnvConfig() {
	if val := os.Getenv("EASEBOARD_PORT"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.Port = i
			c.sources["port"] = "environment"
		}
	}
	if val := os.Getenv("EASEBOARD_CORS_ALLOWED_ORIGINS"); val != "" {
		c.CORSAllowedOrigins = splitAndTrim(val)
		c.sources["cors_allowed_origins"] = "environment"
	}
	if val := os.Getenv("EASEBOARD_SYNC_INTERVAL_MINUTES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SyncIntervalMinutes = i
			c.sources["sync_interval_minutes"] = "environment"
		}
	}
	if val := os.Getenv("EASEBOARD_SCHEDULER_TICK_MINUTES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SchedulerTickMinutes = i
			c.sources["scheduler_tick_minutes"] = "environment"
		}
	}
	if val := os.Getenv("EASEBOARD_MAX_CONCURRENT_REQUESTS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.MaxConcurrentRequests = i
			c.sources["max_concurrent_requests"] = "environment"
		}
	}
	if val := os.Getenv("EASEBOARD_RETRY_ATTEMPTS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.RetryAttempts = i
			c.sources["retry_attempts"] = "environment"
		}
	}
	if val := os.Getenv("EASEBOARD_REQUEST_TIMEOUT_SECONDS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.RequestTimeoutSeconds = i
			c.sources["request_timeout_seconds"] = "environment"
		}
	}
	if val := os.Getenv("EASEBOARD_CANVAS_RATE_LIMIT"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			c.CanvasRateLimit = f
			c.sources["canvas_rate_limit"] = "environment"
		}
	}
	if val := os.Getenv("EASEBOARD_DUE_SOON_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.DueSoonDays = i
			c.sources["due_soon_days"] = "environment"
		}
	}
	if val := os.Getenv("EASEBOARD_AUDIT_ENABLED"); val != "" {
		c.AuditEnabled = val == "true" || val == "1"
		c.sources["audit_enabled"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Settings) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Settings) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// SyncInterval returns the staleness threshold as a duration
func (c *Settings) SyncInterval() time.Duration {
	return time.Duration(c.SyncIntervalMinutes) * time.Minute
}

// SchedulerTick returns the scheduler scan interval as a duration
func (c *Settings) SchedulerTick() time.Duration {
	return time.Duration(c.SchedulerTickMinutes) * time.Minute
}

// RequestTimeout returns the Canvas per-request timeout as a duration
func (c *Settings) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// DueSoonWindow returns the dashboard due-soon window as a duration
func (c *Settings) DueSoonWindow() time.Duration {
	return time.Duration(c.DueSoonDays) * 24 * time.Hour
}

// Validate validates the configuration
func (c *Settings) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return fmt.Errorf("invalid configuration: field %s fails %q", errs[0].Field(), errs[0].Tag())
		}
		return err
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Settings) Attributes() []Attribute {
	return []Attribute{
		{Name: "port", Value: strconv.Itoa(c.Port), Source: c.Source("port")},
		{Name: "cors_allowed_origins", Value: strings.Join(c.CORSAllowedOrigins, ","), Source: c.Source("cors_allowed_origins")},
		{Name: "sync_interval_minutes", Value: strconv.Itoa(c.SyncIntervalMinutes), Source: c.Source("sync_interval_minutes")},
		{Name: "scheduler_tick_minutes", Value: strconv.Itoa(c.SchedulerTickMinutes), Source: c.Source("scheduler_tick_minutes")},
		{Name: "max_concurrent_requests", Value: strconv.Itoa(c.MaxConcurrentRequests), Source: c.Source("max_concurrent_requests")},
		{Name: "retry_attempts", Value: strconv.Itoa(c.RetryAttempts), Source: c.Source("retry_attempts")},
		{Name: "request_timeout_seconds", Value: strconv.Itoa(c.RequestTimeoutSeconds), Source: c.Source("request_timeout_seconds")},
		{Name: "canvas_rate_limit", Value: strconv.FormatFloat(c.CanvasRateLimit, 'f', -1, 64), Source: c.Source("canvas_rate_limit")},
		{Name: "due_soon_days", Value: strconv.Itoa(c.DueSoonDays), Source: c.Source("due_soon_days")},
		{Name: "audit_enabled", Value: strconv.FormatBool(c.AuditEnabled), Source: c.Source("audit_enabled")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Settings) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-30s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Settings) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
