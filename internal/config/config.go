package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"time"

	"davisbacon/internal/model"
	"davisbacon/internal/scenario"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the on-disk configuration shape (YAML): server settings plus the
// defaults/citations artifact that seeds parameters and presets.
type Config struct {
	Server     ServerConfig               `yaml:"server"`
	Parameters map[string]ParameterConfig `yaml:"parameters"`
	// Optional: replaces the built-in presets when non-empty.
	Scenarios []scenario.Scenario `yaml:"scenarios"`
	Sources   []SourceConfig      `yaml:"sources"`
}

type ServerConfig struct {
	Port           string        `yaml:"port"`
	Env            string        `yaml:"env"`
	CacheTTL       time.Duration `yaml:"cache_ttl"`
	RateLimitRPS   float64       `yaml:"rate_limit_rps"`
	RateLimitBurst int           `yaml:"rate_limit_burst"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

// ParameterConfig is one input's default, UI slider range and citation.
// Min/Max may be narrower than the model's valid range, never wider.
type ParameterConfig struct {
	Default  float64 `yaml:"default" json:"default"`
	Min      float64 `yaml:"min" json:"min"`
	Max      float64 `yaml:"max" json:"max"`
	Step     float64 `yaml:"step" json:"step"`
	Citation string  `yaml:"citation,omitempty" json:"citation,omitempty"`
}

type SourceConfig struct {
	Key     string `yaml:"key" json:"key"`
	Title   string `yaml:"title" json:"title"`
	URL     string `yaml:"url" json:"url"`
	Finding string `yaml:"finding" json:"finding"`
}

// Default returns the embedded configuration, validated.
func Default() (*Config, error) {
	c, err := parse(defaultsYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded defaults: %w", err)
	}
	c.ApplyEnv()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("embedded defaults: %w", err)
	}
	return c, nil
}

// Load reads path over the embedded defaults, applies env overrides and validates.
// An empty path means defaults only.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.ApplyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	base, err := parse(defaultsYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded defaults: %w", err)
	}
	if path == "" {
		return base, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	override, err := parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return Merge(base, override), nil
}

func parse(raw []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Merge overlays override onto base. Server fields override when non-zero;
// each parameter entry replaces the base entry of the same name whole;
// scenarios and sources replace the base lists when non-empty.
func Merge(base, override *Config) *Config {
	out := *base
	out.Server = mergeServer(base.Server, override.Server)

	out.Parameters = make(map[string]ParameterConfig, len(base.Parameters))
	for k, v := range base.Parameters {
		out.Parameters[k] = v
	}
	for k, v := range override.Parameters {
		out.Parameters[k] = v
	}
	if len(override.Scenarios) > 0 {
		out.Scenarios = override.Scenarios
	}
	if len(override.Sources) > 0 {
		out.Sources = override.Sources
	}
	return &out
}

func mergeServer(base, override ServerConfig) ServerConfig {
	out := base
	if override.Port != "" {
		out.Port = override.Port
	}
	if override.Env != "" {
		out.Env = override.Env
	}
	if override.CacheTTL != 0 {
		out.CacheTTL = override.CacheTTL
	}
	if override.RateLimitRPS != 0 {
		out.RateLimitRPS = override.RateLimitRPS
	}
	if override.RateLimitBurst != 0 {
		out.RateLimitBurst = override.RateLimitBurst
	}
	if len(override.AllowedOrigins) > 0 {
		out.AllowedOrigins = override.AllowedOrigins
	}
	return out
}

// ApplyEnv lets API_PORT and API_ENV win over file values.
func (c *Config) ApplyEnv() {
	if port := os.Getenv("API_PORT"); port != "" {
		c.Server.Port = port
	}
	if env := os.Getenv("API_ENV"); env != "" {
		c.Server.Env = env
	}
}

func (c *Config) Production() bool {
	return c.Server.Env == "production"
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if c.Server.CacheTTL < 0 {
		return errors.New("server.cache_ttl must be >= 0")
	}
	if c.Server.RateLimitRPS < 0 || c.Server.RateLimitBurst < 0 {
		return errors.New("server.rate_limit_rps and server.rate_limit_burst must be >= 0")
	}

	sources := make(map[string]bool, len(c.Sources))
	for i, s := range c.Sources {
		if s.Key == "" {
			return fmt.Errorf("sources[%d].key is required", i)
		}
		sources[s.Key] = true
	}

	if _, ok := c.Parameters[string(model.FieldHomePrice)]; !ok {
		return fmt.Errorf("parameters.%s is required", model.FieldHomePrice)
	}
	for _, name := range c.ParameterNames() {
		if err := validateParameter(name, c.Parameters[name]); err != nil {
			return err
		}
		if cite := c.Parameters[name].Citation; cite != "" && !sources[cite] {
			return fmt.Errorf("parameters.%s.citation: unknown source %q", name, cite)
		}
	}

	if _, err := c.BaseParams(); err != nil {
		return fmt.Errorf("parameter defaults invalid: %w", err)
	}
	if _, err := c.Catalog(); err != nil {
		return fmt.Errorf("scenarios invalid: %w", err)
	}
	return nil
}

func validateParameter(name string, p ParameterConfig) error {
	f, ok := model.ParseField(name)
	if !ok {
		return fmt.Errorf("parameters.%s: unknown parameter", name)
	}
	valid := model.RangeOf(f)
	for _, v := range []struct {
		key string
		val float64
	}{{"min", p.Min}, {"max", p.Max}, {"default", p.Default}} {
		if math.IsNaN(v.val) || !valid.Contains(v.val) {
			return fmt.Errorf("parameters.%s.%s: %v outside valid range %s", name, v.key, v.val, valid)
		}
	}
	if p.Min >= p.Max {
		return fmt.Errorf("parameters.%s: min %v must be below max %v", name, p.Min, p.Max)
	}
	if p.Default < p.Min || p.Default > p.Max {
		return fmt.Errorf("parameters.%s.default: %v outside [%v, %v]", name, p.Default, p.Min, p.Max)
	}
	if p.Step < 0 {
		return fmt.Errorf("parameters.%s.step must be >= 0", name)
	}
	if f.Integer() && p.Default != math.Trunc(p.Default) {
		return fmt.Errorf("parameters.%s.default must be a whole number", name)
	}
	return nil
}

// ParameterNames returns the configured parameter keys in canonical field
// order, followed by any unknown keys sorted by name.
func (c *Config) ParameterNames() []string {
	out := make([]string, 0, len(c.Parameters))
	seen := make(map[string]bool, len(c.Parameters))
	for _, f := range model.Fields() {
		if _, ok := c.Parameters[string(f)]; ok {
			out = append(out, string(f))
			seen[string(f)] = true
		}
	}
	var rest []string
	for k := range c.Parameters {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// BaseParams builds the default ParameterSet. Inputs without a configured
// default keep the model defaults; a configured mortgage_rate switches the
// payment projection on.
func (c *Config) BaseParams() (model.ParameterSet, error) {
	hp, ok := c.Parameters[string(model.FieldHomePrice)]
	if !ok {
		return model.ParameterSet{}, fmt.Errorf("parameters.%s is required", model.FieldHomePrice)
	}
	var opts []model.Option
	if v, ok := c.Parameters[string(model.FieldConstructionCostShare)]; ok {
		opts = append(opts, model.WithConstructionCostShare(v.Default))
	}
	if v, ok := c.Parameters[string(model.FieldLaborShare)]; ok {
		opts = append(opts, model.WithLaborShare(v.Default))
	}
	if v, ok := c.Parameters[string(model.FieldWagePremium)]; ok {
		opts = append(opts, model.WithWagePremium(v.Default))
	}
	if v, ok := c.Parameters[string(model.FieldMortgageRate)]; ok {
		opts = append(opts, model.WithMortgage(v.Default))
	}
	if v, ok := c.Parameters[string(model.FieldMortgageTermYears)]; ok {
		opts = append(opts, model.WithMortgageTerm(int(v.Default)))
	}
	return model.NewParameterSet(hp.Default, opts...)
}

// Catalog builds the scenario catalog: the configured presets when present,
// otherwise the built-in ones.
func (c *Config) Catalog() (*scenario.Catalog, error) {
	if len(c.Scenarios) == 0 {
		return scenario.Default(), nil
	}
	return scenario.NewCatalog(c.Scenarios)
}
