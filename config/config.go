package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"depthflow/market"
)

type Config struct {
	App       AppConfig       `yaml:"app"`
	Logging   LoggingConfig   `yaml:"logging"`
	Channels  ChannelsConfig  `yaml:"channels"`
	Trading   TradingConfig   `yaml:"trading"`
	Feed      FeedConfig      `yaml:"feed"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Dashboard DashboardConfig `yaml:"dashboard"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
}

type LoggingConfig struct {
	Level          string        `yaml:"level"`
	Format         string        `yaml:"format"`
	Output         string        `yaml:"output"`
	MaxAgeDays     int           `yaml:"max_age_days"`
	ReportInterval time.Duration `yaml:"report_interval"`
}

type ChannelsConfig struct {
	RawBuffer int `yaml:"raw_buffer"`
	Workers   int `yaml:"workers"`
}

// TradingConfig mirrors market.TradingConfig in yaml form; zero values fall
// back to the engine defaults.
type TradingConfig struct {
	MinSignalQuantity      float64 `yaml:"min_signal_quantity"`
	MinImpactMultiple      float64 `yaml:"min_impact_multiple"`
	DefaultFeesPct         float64 `yaml:"default_fees_pct"`
	TakeProfitRatio        float64 `yaml:"take_profit_ratio"`
	MaxBookAgeMS           int64   `yaml:"max_book_age_ms"`
	MarginHoldHours        float64 `yaml:"margin_hold_hours"`
	OptionHoldHours        float64 `yaml:"option_hold_hours"`
	OptionDeltaFloor       float64 `yaml:"option_delta_floor"`
	InverseAmplification   float64 `yaml:"inverse_amplification"`
	InverseAmpThresholdPct float64 `yaml:"inverse_amp_threshold_pct"`
}

type FeedConfig struct {
	Timeout        time.Duration        `yaml:"timeout"`
	ConnectionPool ConnectionPoolConfig `yaml:"connection_pool"`
	RateLimit      RateLimitConfig      `yaml:"rate_limit"`
	UserAgent      string               `yaml:"user_agent"`
	LocalIP        string               `yaml:"local_ip"`
	Venues         []VenueFeedConfig    `yaml:"venues"`
}

type ConnectionPoolConfig struct {
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxConnsPerHost int           `yaml:"max_conns_per_host"`
	IdleConnTimeout time.Duration `yaml:"idle_conn_timeout"`
}

type RateLimitConfig struct {
	RequestsPerSecond int `yaml:"requests_per_second"`
	BurstSize         int `yaml:"burst_size"`
}

// VenueFeedConfig selects one venue to poll or stream. Symbols maps
// instrument name to a symbol override; venues default to the static table.
type VenueFeedConfig struct {
	Venue       string            `yaml:"venue"`
	Instruments []string          `yaml:"instruments"`
	Symbols     map[string]string `yaml:"symbols"`
	IntervalMs  int               `yaml:"interval_ms"`
	Levels      int               `yaml:"levels"`
	Stream      bool              `yaml:"stream"`
}

type MetricsConfig struct {
	Enabled    bool             `yaml:"enabled"`
	Features   []string         `yaml:"features"`
	Interval   time.Duration    `yaml:"interval"`
	CloudWatch CloudWatchConfig `yaml:"cloudwatch"`
}

type CloudWatchConfig struct {
	Region    string `yaml:"region"`
	Namespace string `yaml:"namespace"`
	Dashboard string `yaml:"dashboard"`
}

type DashboardConfig struct {
	Enabled         bool          `yaml:"enabled"`
	Address         string        `yaml:"address"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	LogHistory      int           `yaml:"log_history"`
	MetricsHistory  int           `yaml:"metrics_history"`
}

var defaultConfigPaths = map[string]string{
	EnvironmentProduction: "config.prod.yaml",
	EnvironmentStaging:    "config.stag.yaml",
}

func LoadConfig(path string) (*Config, error) {
	path = resolveEnvSpecificPath(path, "config.yaml", defaultConfigPaths)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Config{
		Logging: LoggingConfig{
			Level:          "info",
			Format:         "json",
			Output:         "stdout",
			ReportInterval: time.Minute,
		},
		Channels: ChannelsConfig{
			RawBuffer: 1024,
			Workers:   4,
		},
		Feed: FeedConfig{
			Timeout: 10 * time.Second,
			ConnectionPool: ConnectionPoolConfig{
				MaxIdleConns:    32,
				MaxConnsPerHost: 8,
				IdleConnTimeout: 90 * time.Second,
			},
			RateLimit: RateLimitConfig{
				RequestsPerSecond: 10,
				BurstSize:         20,
			},
		},
		Metrics: MetricsConfig{
			Interval: 5 * time.Second,
		},
		Dashboard: DashboardConfig{
			Address:         ":8080",
			RefreshInterval: 2 * time.Second,
			LogHistory:      200,
			MetricsHistory:  500,
		},
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.App.Environment == "" {
		config.App.Environment = AppEnvironment()
	}

	// Environment overrides applied after unmarshal.
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.Logging.Level = strings.TrimSpace(v)
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		config.Metrics.CloudWatch.Region = strings.TrimSpace(v)
	}
	if v := os.Getenv("DASHBOARD_ADDR"); v != "" {
		config.Dashboard.Address = strings.TrimSpace(v)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// TradingConfig maps the yaml section onto the engine's config, filling
// unset knobs with the defaults. Set values pass through untouched so
// validation can reject bad ones.
func (c *Config) TradingConfig() market.TradingConfig {
	out := market.DefaultTradingConfig()
	t := c.Trading
	if t.MinSignalQuantity != 0 {
		out.MinSignalQuantity = t.MinSignalQuantity
	}
	if t.MinImpactMultiple != 0 {
		out.MinImpactMultiple = t.MinImpactMultiple
	}
	if t.DefaultFeesPct != 0 {
		out.DefaultFeesPct = t.DefaultFeesPct
	}
	if t.TakeProfitRatio != 0 {
		out.TakeProfitRatio = t.TakeProfitRatio
	}
	if t.MaxBookAgeMS != 0 {
		out.MaxBookAgeMS = t.MaxBookAgeMS
	}
	if t.MarginHoldHours != 0 {
		out.MarginHoldHours = t.MarginHoldHours
	}
	if t.OptionHoldHours != 0 {
		out.OptionHoldHours = t.OptionHoldHours
	}
	if t.OptionDeltaFloor != 0 {
		out.OptionDeltaFloor = t.OptionDeltaFloor
	}
	if t.InverseAmplification != 0 {
		out.InverseAmplification = t.InverseAmplification
	}
	if t.InverseAmpThresholdPct != 0 {
		out.InverseAmpThresholdPct = t.InverseAmpThresholdPct
	}
	return out
}

func validateConfig(cfg *Config) error {
	if cfg.App.Name == "" {
		return fmt.Errorf("app.name is required")
	}
	if cfg.App.Version == "" {
		return fmt.Errorf("app.version is required")
	}

	if cfg.Channels.RawBuffer <= 0 {
		return fmt.Errorf("channels.raw_buffer must be greater than 0")
	}
	if cfg.Channels.Workers <= 0 {
		return fmt.Errorf("channels.workers must be greater than 0")
	}

	if cfg.Feed.Timeout <= 0 {
		return fmt.Errorf("feed.timeout must be greater than 0")
	}
	if cfg.Feed.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("feed.rate_limit.requests_per_second must be greater than 0")
	}
	if IsProductionLike(cfg.App.Environment) && len(cfg.Feed.Venues) == 0 {
		return fmt.Errorf("feed.venues must not be empty in %s", cfg.App.Environment)
	}

	for i, vf := range cfg.Feed.Venues {
		venue, ok := market.VenueFromName(strings.ToLower(strings.TrimSpace(vf.Venue)))
		if !ok {
			return fmt.Errorf("feed.venues[%d]: unknown venue '%s'", i, vf.Venue)
		}
		if len(vf.Instruments) == 0 {
			return fmt.Errorf("feed.venues[%d]: at least one instrument is required", i)
		}
		vcfg := market.VenueConfigFor(venue)
		for _, inst := range vf.Instruments {
			it, ok := market.InstrumentFromName(strings.ToLower(strings.TrimSpace(inst)))
			if !ok {
				return fmt.Errorf("feed.venues[%d]: unknown instrument '%s'", i, inst)
			}
			if !vcfg.Supported.Has(it) {
				return fmt.Errorf("feed.venues[%d]: %s does not list %s markets", i, venue.Name(), it.Name())
			}
		}
		if !vf.Stream && vf.IntervalMs <= 0 {
			return fmt.Errorf("feed.venues[%d]: interval_ms must be greater than 0 for polled venues", i)
		}
	}

	trading := cfg.TradingConfig()
	if err := trading.Validate(); err != nil {
		return err
	}

	if cfg.Dashboard.Enabled && strings.TrimSpace(cfg.Dashboard.Address) == "" {
		return fmt.Errorf("dashboard.address is required when the dashboard is enabled")
	}

	return nil
}

// FeedVenue resolves the venue name of one feed entry. Validation has
// already established it is known.
func (vf VenueFeedConfig) FeedVenue() market.Venue {
	v, _ := market.VenueFromName(strings.ToLower(strings.TrimSpace(vf.Venue)))
	return v
}

// FeedInstruments resolves the instrument list of one feed entry.
func (vf VenueFeedConfig) FeedInstruments() []market.InstrumentType {
	out := make([]market.InstrumentType, 0, len(vf.Instruments))
	for _, inst := range vf.Instruments {
		if it, ok := market.InstrumentFromName(strings.ToLower(strings.TrimSpace(inst))); ok {
			out = append(out, it)
		}
	}
	return out
}

// SymbolFor picks the symbol to request for an instrument: the per-entry
// override when present, otherwise the static venue table.
func (vf VenueFeedConfig) SymbolFor(it market.InstrumentType) string {
	if s, ok := vf.Symbols[it.Name()]; ok && s != "" {
		return s
	}
	return market.VenueConfigFor(vf.FeedVenue()).Symbols[it]
}
