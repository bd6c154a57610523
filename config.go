package ridership

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/mta-ridership/analytics"
)

type ServerConfig struct {
	Port int `yaml:"port" validate:"omitempty,gt=0"`
}

type DatasetConfig struct {
	Path string `yaml:"path" validate:"required"`
}

type RefreshConfig struct {
	// Watch rebuilds the snapshot when the CSV file changes on disk.
	Watch bool `yaml:"watch"`
	// Interval additionally rebuilds on a fixed schedule ("24h", "30m");
	// empty disables the scheduled rebuild.
	Interval string `yaml:"interval" validate:"omitempty"`
}

// WindowConfig is a half-open [from, to) date range in YYYY-MM-DD form.
type WindowConfig struct {
	From string `yaml:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `yaml:"to" validate:"omitempty,datetime=2006-01-02"`
}

// AnalyticsConfig overrides the KPI reference windows. Unset fields keep the
// dataset defaults.
type AnalyticsConfig struct {
	BaselineCutoff    string       `yaml:"baselineCutoff" validate:"omitempty,datetime=2006-01-02"`
	PandemicStart     string       `yaml:"pandemicStart" validate:"omitempty,datetime=2006-01-02"`
	Lockdown          WindowConfig `yaml:"lockdown"`
	Current           WindowConfig `yaml:"currentWindow"`
	FirstPostPandemic WindowConfig `yaml:"firstPostPandemicWindow"`
	PreviousOctober   WindowConfig `yaml:"previousOctober"`
	CurrentOctober    WindowConfig `yaml:"currentOctober"`
}

type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Dataset   DatasetConfig   `yaml:"dataset" validate:"required"`
	Refresh   RefreshConfig   `yaml:"refresh"`
	Analytics AnalyticsConfig `yaml:"analytics"`
}

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration. With an
// empty path the usual locations are tried.
func LoadAppConfig(path string) error {
	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml", "./configs/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	if cfg.Refresh.Interval != "" {
		if _, err := time.ParseDuration(cfg.Refresh.Interval); err != nil {
			return fmt.Errorf("invalid refresh interval: %w", err)
		}
	}
	Config = cfg
	if Config.Server.Port == 0 {
		Config.Server.Port = 8050
	}
	return nil
}

// Periods resolves the configured analytics windows over the defaults.
func (c AnalyticsConfig) Periods() analytics.Periods {
	p := analytics.DefaultPeriods()
	if d, ok := parseDay(c.BaselineCutoff); ok {
		p.Baseline.To = d
	}
	if d, ok := parseDay(c.PandemicStart); ok {
		p.PandemicStart = d
	}
	applyWindow(&p.Lockdown, c.Lockdown)
	if !p.Lockdown.To.IsZero() {
		p.PostLockdown = analytics.Window{From: p.Lockdown.To}
	}
	applyWindow(&p.Current, c.Current)
	applyWindow(&p.FirstPostPandemic, c.FirstPostPandemic)
	applyWindow(&p.PreviousOctober, c.PreviousOctober)
	applyWindow(&p.CurrentOctober, c.CurrentOctober)
	return p
}

func applyWindow(w *analytics.Window, c WindowConfig) {
	if d, ok := parseDay(c.From); ok {
		w.From = d
	}
	if d, ok := parseDay(c.To); ok {
		w.To = d
	}
}

func parseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return d.UTC(), true
}
