package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

// writeTempConfig creates a configuration file with the given content and
// returns its path.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp("", "cfg-*.yml")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}

const minimalConfig = `app:
  name: "TestApp"
  version: "1.0"
channels:
  raw_buffer: 64
  workers: 2
feed:
  timeout: 5s
  venues:
  - venue: binance
    instruments: [spot, perpetual]
    interval_ms: 500
    levels: 50
`

func TestLoadConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEPTHFLOW_ENV", "")
	t.Setenv("APP_ENV", "")
	path := writeTempConfig(t, minimalConfig)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.App.Name != "TestApp" {
		t.Errorf("unexpected name: %s", cfg.App.Name)
	}
	if cfg.App.Environment != EnvironmentDevelopment {
		t.Errorf("unexpected environment: %s", cfg.App.Environment)
	}
	if cfg.Channels.Workers != 2 {
		t.Errorf("unexpected workers: %d", cfg.Channels.Workers)
	}
	// Unset sections keep their defaults.
	if cfg.Logging.Level != "info" || cfg.Logging.ReportInterval != time.Minute {
		t.Errorf("logging defaults not applied: %+v", cfg.Logging)
	}
	if cfg.Dashboard.Address != ":8080" {
		t.Errorf("dashboard default not applied: %s", cfg.Dashboard.Address)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DEPTHFLOW_ENV", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("DASHBOARD_ADDR", "127.0.0.1:9090")
	path := writeTempConfig(t, minimalConfig)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("LOG_LEVEL override not applied: %s", cfg.Logging.Level)
	}
	if cfg.Metrics.CloudWatch.Region != "eu-west-1" {
		t.Errorf("AWS_REGION override not applied: %s", cfg.Metrics.CloudWatch.Region)
	}
	if cfg.Dashboard.Address != "127.0.0.1:9090" {
		t.Errorf("DASHBOARD_ADDR override not applied: %s", cfg.Dashboard.Address)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"missing name",
			"app:\n  version: \"1.0\"\nchannels:\n  raw_buffer: 1\n  workers: 1\nfeed:\n  timeout: 1s\n",
			"app.name",
		},
		{
			"bad venue",
			strings.Replace(minimalConfig, "venue: binance", "venue: nasdaq", 1),
			"unknown venue",
		},
		{
			"bad instrument",
			strings.Replace(minimalConfig, "instruments: [spot, perpetual]", "instruments: [bond]", 1),
			"unknown instrument",
		},
		{
			"unsupported instrument",
			strings.Replace(minimalConfig, "venue: binance", "venue: bitstamp", 1),
			"does not list",
		},
		{
			"polled venue without interval",
			strings.Replace(minimalConfig, "interval_ms: 500", "interval_ms: 0", 1),
			"interval_ms",
		},
		{
			"bad trading knob",
			minimalConfig + "trading:\n  take_profit_ratio: -1\n",
			"must be positive",
		},
		{
			"production without venues",
			"app:\n  name: \"TestApp\"\n  version: \"1.0\"\n  environment: production\nchannels:\n  raw_buffer: 1\n  workers: 1\nfeed:\n  timeout: 1s\n",
			"feed.venues must not be empty",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DEPTHFLOW_ENV", "")
			t.Setenv("APP_ENV", "")
			path := writeTempConfig(t, tc.content)
			_, err := LoadConfig(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("err = %v, want substring %q", err, tc.wantErr)
			}
		})
	}
}

func TestTradingConfigMapping(t *testing.T) {
	cfg := &Config{Trading: TradingConfig{
		MinSignalQuantity: 12.5,
		MaxBookAgeMS:      1500,
	}}
	trading := cfg.TradingConfig()
	if trading.MinSignalQuantity != 12.5 {
		t.Errorf("MinSignalQuantity = %v", trading.MinSignalQuantity)
	}
	if trading.MaxBookAgeMS != 1500 {
		t.Errorf("MaxBookAgeMS = %v", trading.MaxBookAgeMS)
	}
	// Unset knobs keep the defaults.
	if trading.MinImpactMultiple != 2.0 || trading.TakeProfitRatio != 0.8 {
		t.Errorf("defaults not preserved: %+v", trading)
	}
}

func TestVenueFeedSymbolResolution(t *testing.T) {
	vf := VenueFeedConfig{
		Venue:       "binance",
		Instruments: []string{"spot", "perpetual"},
		Symbols:     map[string]string{"spot": "ETHUSDT"},
	}

	insts := vf.FeedInstruments()
	if len(insts) != 2 {
		t.Fatalf("instruments = %v", insts)
	}
	if got := vf.SymbolFor(insts[0]); got != "ETHUSDT" {
		t.Errorf("spot override = %s", got)
	}
	if got := vf.SymbolFor(insts[1]); got == "" || got == "ETHUSDT" {
		t.Errorf("perpetual symbol should come from the venue table, got %s", got)
	}
}

func TestAppEnvironmentAliases(t *testing.T) {
	t.Setenv("APP_ENV", "")

	cases := map[string]string{
		"dev":     EnvironmentDevelopment,
		"develop": EnvironmentDevelopment,
		"stag":    EnvironmentStaging,
		"stage":   EnvironmentStaging,
		"prod":    EnvironmentProduction,
		"PROD ":   EnvironmentProduction,
		"qa":      "qa",
	}
	for raw, want := range cases {
		t.Setenv("DEPTHFLOW_ENV", raw)
		if got := AppEnvironment(); got != want {
			t.Errorf("AppEnvironment(%q) = %s, want %s", raw, got, want)
		}
	}

	t.Setenv("DEPTHFLOW_ENV", "")
	if got := AppEnvironment(); got != EnvironmentDevelopment {
		t.Errorf("default environment = %s", got)
	}

	// APP_ENV is honored only when DEPTHFLOW_ENV is unset.
	t.Setenv("APP_ENV", "prod")
	if got := AppEnvironment(); got != EnvironmentProduction {
		t.Errorf("legacy fallback = %s", got)
	}
	t.Setenv("DEPTHFLOW_ENV", "stage")
	if got := AppEnvironment(); got != EnvironmentStaging {
		t.Errorf("DEPTHFLOW_ENV should win over APP_ENV, got %s", got)
	}
}

func TestIsProductionLike(t *testing.T) {
	for env, want := range map[string]bool{
		EnvironmentProduction:  true,
		EnvironmentStaging:     true,
		EnvironmentDevelopment: false,
		"qa":                   false,
	} {
		if got := IsProductionLike(env); got != want {
			t.Errorf("IsProductionLike(%s) = %v, want %v", env, got, want)
		}
	}
}
