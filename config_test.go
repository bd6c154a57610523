package ridership

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadAppConfig(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
dataset:
  path: ./data/MTA_Daily_Ridership.csv
refresh:
  watch: true
  interval: 12h
`)

	require.NoError(t, LoadAppConfig(path))
	assert.Equal(t, 9000, Config.Server.Port)
	assert.Equal(t, "./data/MTA_Daily_Ridership.csv", Config.Dataset.Path)
	assert.True(t, Config.Refresh.Watch)
	assert.Equal(t, "12h", Config.Refresh.Interval)
}

func TestLoadAppConfigDefaultsPort(t *testing.T) {
	path := writeConfig(t, `
dataset:
  path: ./data/ridership.csv
`)

	require.NoError(t, LoadAppConfig(path))
	assert.Equal(t, 8050, Config.Server.Port)
}

func TestLoadAppConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing dataset path",
			body: "server:\n  port: 9000\n",
		},
		{
			name: "negative port",
			body: "server:\n  port: -1\ndataset:\n  path: ./x.csv\n",
		},
		{
			name: "bad refresh interval",
			body: "dataset:\n  path: ./x.csv\nrefresh:\n  interval: tomorrow\n",
		},
		{
			name: "bad analytics date",
			body: "dataset:\n  path: ./x.csv\nanalytics:\n  baselineCutoff: 03/11/2020\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, LoadAppConfig(writeConfig(t, tt.body)))
		})
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	assert.Error(t, LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml")))
}

func TestAnalyticsConfigPeriods(t *testing.T) {
	cfg := AnalyticsConfig{
		BaselineCutoff: "2020-03-15",
		Lockdown:       WindowConfig{From: "2020-03-15", To: "2020-07-01"},
	}

	p := cfg.Periods()

	assert.Equal(t, time.Date(2020, time.March, 15, 0, 0, 0, 0, time.UTC), p.Baseline.To)
	assert.Equal(t, time.Date(2020, time.July, 1, 0, 0, 0, 0, time.UTC), p.Lockdown.To)
	// post-lockdown follows the configured lockdown end
	assert.Equal(t, p.Lockdown.To, p.PostLockdown.From)
	// untouched windows keep their defaults
	assert.Equal(t, time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), p.Current.From)
}
