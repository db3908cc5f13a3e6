// Package config provides configuration loading for gocable.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/gocable/internal/bs7671"
	"github.com/alexiusacademia/gocable/internal/circuit"
)

// Config represents the complete gocable configuration
type Config struct {
	Policy PolicyConfig `yaml:"policy"`

	// Cables overrides the simplified capacity table (empty = built-in table)
	Cables []bs7671.CableCandidate `yaml:"cables,omitempty"`
	// CableType sizes from the cable database by reference method instead
	// of the simplified table (empty = simplified table)
	CableType string `yaml:"cable_type,omitempty"`
	// Templates overrides or adds load category defaults
	Templates bs7671.TemplateTable `yaml:"templates,omitempty"`

	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// PolicyConfig holds the compliance limits
type PolicyConfig struct {
	VoltageDrop        bs7671.VoltageDropLimits `yaml:"voltage_drop"`
	MarginalBand       float64                  `yaml:"marginal_band"`
	Zs                 bs7671.ZsTable           `yaml:"zs"`
	DeviceMargin       float64                  `yaml:"device_margin"`
	LoadSplitThreshold float64                  `yaml:"load_split_threshold"`
	CurrentBasis       circuit.CurrentBasis     `yaml:"current_basis"`
	AmbientCorrection  bool                     `yaml:"ambient_correction"`
}

// ServerConfig configures the HTTP calculation service
type ServerConfig struct {
	// Addr is the listen address (default: :8080)
	Addr string `yaml:"addr"`
	// ReadTimeout bounds reading a request (default: 10s)
	ReadTimeout time.Duration `yaml:"read_timeout"`
	// WriteTimeout bounds writing a response (default: 30s)
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// LogConfig configures logging
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with the BS 7671 defaults
func DefaultConfig() *Config {
	policy := circuit.DefaultPolicy()
	return &Config{
		Policy: PolicyConfig{
			VoltageDrop:        policy.VoltageDrop,
			MarginalBand:       policy.MarginalBand,
			Zs:                 policy.Zs,
			DeviceMargin:       policy.DeviceMargin,
			LoadSplitThreshold: policy.LoadSplitThreshold,
			CurrentBasis:       circuit.RealPowerBasis,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	p := c.Policy
	if p.VoltageDrop.Default <= 0 {
		return fmt.Errorf("policy.voltage_drop.default must be positive")
	}
	for category, limit := range p.VoltageDrop.Categories {
		if limit <= 0 {
			return fmt.Errorf("policy.voltage_drop.categories.%s must be positive", category)
		}
	}
	if p.MarginalBand < 0 {
		return fmt.Errorf("policy.marginal_band must not be negative")
	}
	if p.Zs.FallbackOhms <= 0 {
		return fmt.Errorf("policy.zs.fallback_ohms must be positive")
	}
	for i, rule := range p.Zs.Rules {
		if rule.MaxZsOhms <= 0 {
			return fmt.Errorf("policy.zs.rules[%d].max_zs_ohms must be positive", i)
		}
		if rule.UpToVoltage != 0 && rule.UpToVoltage <= rule.AboveVoltage {
			return fmt.Errorf("policy.zs.rules[%d] has an empty voltage band", i)
		}
		for _, f := range rule.Families {
			if !f.Valid() {
				return fmt.Errorf("policy.zs.rules[%d]: unknown device family %q", i, f)
			}
		}
	}
	if p.DeviceMargin < 1 {
		return fmt.Errorf("policy.device_margin must be at least 1")
	}
	if p.LoadSplitThreshold <= 0 {
		return fmt.Errorf("policy.load_split_threshold must be positive")
	}
	if !p.CurrentBasis.Valid() {
		return fmt.Errorf("policy.current_basis must be real-power or apparent-power")
	}

	for i, cable := range c.Cables {
		if cable.CrossSectionMm2 == "" || cable.RatedCurrentAmps <= 0 || cable.MillivoltPerAmpMeter <= 0 || cable.ResistancePerKmOhms <= 0 {
			return fmt.Errorf("cables[%d] needs a label and positive rating, mV/A/m and resistance", i)
		}
	}
	if !bs7671.IsAscending(c.Cables) {
		return fmt.Errorf("cables must be ordered by ascending rated current")
	}
	if c.CableType != "" {
		if _, ok := bs7671.CableDatabase[c.CableType]; !ok {
			return fmt.Errorf("cable_type %q is not in the cable database", c.CableType)
		}
	}

	for category, tpl := range c.Templates {
		if err := validateTemplate(tpl); err != nil {
			return fmt.Errorf("templates.%s: %w", category, err)
		}
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func validateTemplate(tpl bs7671.LoadTemplate) error {
	if !tpl.Phase.Valid() {
		return fmt.Errorf("unknown phase %q", tpl.Phase)
	}
	if !(tpl.PowerFactor > 0 && tpl.PowerFactor <= 1) {
		return fmt.Errorf("power_factor must be in (0, 1]")
	}
	if !tpl.InstallationMethod.Valid() {
		return fmt.Errorf("unknown installation method %q", tpl.InstallationMethod)
	}
	if !tpl.ProtectiveDevice.Valid() {
		return fmt.Errorf("unknown protective device %q", tpl.ProtectiveDevice)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values).
// A zero or false field in other never overrides; file loading decodes onto
// the defaults instead.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Policy
	if other.Policy.VoltageDrop.Default != 0 {
		c.Policy.VoltageDrop.Default = other.Policy.VoltageDrop.Default
	}
	if len(other.Policy.VoltageDrop.Categories) > 0 {
		merged := make(map[bs7671.LoadCategory]float64, len(c.Policy.VoltageDrop.Categories))
		for k, v := range c.Policy.VoltageDrop.Categories {
			merged[k] = v
		}
		for k, v := range other.Policy.VoltageDrop.Categories {
			merged[k] = v
		}
		c.Policy.VoltageDrop.Categories = merged
	}
	if other.Policy.MarginalBand != 0 {
		c.Policy.MarginalBand = other.Policy.MarginalBand
	}
	if len(other.Policy.Zs.Rules) > 0 {
		c.Policy.Zs.Rules = other.Policy.Zs.Rules
	}
	if other.Policy.Zs.FallbackOhms != 0 {
		c.Policy.Zs.FallbackOhms = other.Policy.Zs.FallbackOhms
	}
	if other.Policy.DeviceMargin != 0 {
		c.Policy.DeviceMargin = other.Policy.DeviceMargin
	}
	if other.Policy.LoadSplitThreshold != 0 {
		c.Policy.LoadSplitThreshold = other.Policy.LoadSplitThreshold
	}
	if other.Policy.CurrentBasis != "" {
		c.Policy.CurrentBasis = other.Policy.CurrentBasis
	}
	if other.Policy.AmbientCorrection {
		c.Policy.AmbientCorrection = true
	}

	// Cables
	if len(other.Cables) > 0 {
		c.Cables = other.Cables
	}
	if other.CableType != "" {
		c.CableType = other.CableType
	}

	// Templates
	if len(other.Templates) > 0 {
		if c.Templates == nil {
			c.Templates = bs7671.TemplateTable{}
		}
		for k, v := range other.Templates {
			c.Templates[k] = v
		}
	}

	// Server
	if other.Server.Addr != "" {
		c.Server.Addr = other.Server.Addr
	}
	if other.Server.ReadTimeout != 0 {
		c.Server.ReadTimeout = other.Server.ReadTimeout
	}
	if other.Server.WriteTimeout != 0 {
		c.Server.WriteTimeout = other.Server.WriteTimeout
	}

	// Log
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}

// Calculator builds a sizing calculator from the configuration.
func (c *Config) Calculator() (*circuit.Calculator, error) {
	calc := circuit.NewCalculator()
	calc.Policy.VoltageDrop = c.Policy.VoltageDrop
	calc.Policy.MarginalBand = c.Policy.MarginalBand
	calc.Policy.Zs = c.Policy.Zs
	calc.Policy.DeviceMargin = c.Policy.DeviceMargin
	calc.Policy.LoadSplitThreshold = c.Policy.LoadSplitThreshold
	calc.Basis = c.Policy.CurrentBasis
	calc.Options.ApplyAmbientCorrection = c.Policy.AmbientCorrection

	if len(c.Cables) > 0 {
		calc.Table = append([]bs7671.CableCandidate(nil), c.Cables...)
	}
	for category, tpl := range c.Templates {
		calc.Templates[bs7671.ParseLoadCategory(string(category))] = tpl
	}

	if c.CableType != "" {
		return calc.WithReferenceMethodTable(c.CableType)
	}
	return calc, nil
}

// ParseLevel converts a level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// NewLogger returns a text logger on stderr at the configured level.
func (c *Config) NewLogger() *slog.Logger {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
