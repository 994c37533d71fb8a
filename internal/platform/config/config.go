// Package config loads process configuration from defaults, an optional
// config.yaml and DECISION_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/akasenomm/intern-decision-engine-backend/internal/decision"
	platformstrings "github.com/akasenomm/intern-decision-engine-backend/pkg/platform/strings"
)

// EnvPrefix namespaces environment overrides, e.g. DECISION_SERVER_ADDR.
const EnvPrefix = "DECISION"

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
	Policy  PolicyConfig  `mapstructure:"policy"`
}

// ServerConfig captures HTTP server level configuration.
type ServerConfig struct {
	Addr               string        `mapstructure:"addr"`
	ReadHeaderTimeout  time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
}

// LoggingConfig selects the log level and encoder.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// PolicyConfig mirrors decision.Policy. Life expectancy keys are country names
// in any case.
type PolicyConfig struct {
	MinLoanAmount    int            `mapstructure:"min_loan_amount"`
	MaxLoanAmount    int            `mapstructure:"max_loan_amount"`
	MinLoanPeriod    int            `mapstructure:"min_loan_period"`
	MaxLoanPeriod    int            `mapstructure:"max_loan_period"`
	MinCustomerAge   int            `mapstructure:"min_customer_age"`
	Segment1Modifier int            `mapstructure:"segment_1_modifier"`
	Segment2Modifier int            `mapstructure:"segment_2_modifier"`
	Segment3Modifier int            `mapstructure:"segment_3_modifier"`
	LifeExpectancy   map[string]int `mapstructure:"life_expectancy"`
}

// Build validates the section and returns the immutable decision policy.
func (p PolicyConfig) Build() (decision.Policy, error) {
	table := make(map[decision.Country]int, len(p.LifeExpectancy))
	for name, years := range p.LifeExpectancy {
		table[decision.ParseCountry(name)] = years
	}
	return decision.NewPolicy(decision.Policy{
		MinLoanAmount:    p.MinLoanAmount,
		MaxLoanAmount:    p.MaxLoanAmount,
		MinLoanPeriod:    p.MinLoanPeriod,
		MaxLoanPeriod:    p.MaxLoanPeriod,
		MinCustomerAge:   p.MinCustomerAge,
		Segment1Modifier: p.Segment1Modifier,
		Segment2Modifier: p.Segment2Modifier,
		Segment3Modifier: p.Segment3Modifier,
	}, table)
}

// Load reads configuration. searchPaths default to ./configs and the working
// directory; a missing config file is not an error.
func Load(searchPaths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(searchPaths) == 0 {
		searchPaths = []string{"./configs", "."}
	}
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Server.CORSAllowedOrigins = platformstrings.DedupeAndTrim(cfg.Server.CORSAllowedOrigins)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the sections that have no constructor of their own.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q is not one of json, console", c.Logging.Format))
	}
	if _, err := c.Policy.Build(); err != nil {
		errs = append(errs, fmt.Errorf("policy: %w", err))
	}
	return errors.Join(errs...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_header_timeout", 5*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	p := decision.DefaultPolicy()
	v.SetDefault("policy.min_loan_amount", p.MinLoanAmount)
	v.SetDefault("policy.max_loan_amount", p.MaxLoanAmount)
	v.SetDefault("policy.min_loan_period", p.MinLoanPeriod)
	v.SetDefault("policy.max_loan_period", p.MaxLoanPeriod)
	v.SetDefault("policy.min_customer_age", p.MinCustomerAge)
	v.SetDefault("policy.segment_1_modifier", p.Segment1Modifier)
	v.SetDefault("policy.segment_2_modifier", p.Segment2Modifier)
	v.SetDefault("policy.segment_3_modifier", p.Segment3Modifier)
	for country, years := range p.Countries() {
		v.SetDefault("policy.life_expectancy."+strings.ToLower(country.String()), years)
	}
}
