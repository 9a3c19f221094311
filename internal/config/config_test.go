package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
path = "test.db"

[logs]
file = "test.log"
level = "debug"

[metrics]
enabled = true
service_name = "agenda-test"

[schedule]
opening_time = "08:00"
closing_time = "18:00"
min_interval_minutes = 10
payment_methods = ["Efectivo", "Nequi"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "test.db", cfg.Database.Path)
	assert.Equal(t, "file:test.db?_foreign_keys=on", cfg.Database.DSN())
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, []string{"Efectivo", "Nequi"}, cfg.Schedule.PaymentMethods)

	hours, err := cfg.Schedule.BusinessHours()
	require.NoError(t, err)
	assert.Equal(t, 8*60, hours.OpeningMinute)
	assert.Equal(t, 18*60, hours.ClosingMinute)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
path = "barberia.db"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "09:30", cfg.Schedule.OpeningTime)
	assert.Equal(t, "20:00", cfg.Schedule.ClosingTime)
	assert.Equal(t, 15, cfg.Schedule.MinIntervalMinutes)
	assert.Equal(t, []string{"Efectivo", "Transferencia", "Tarjeta"}, cfg.Schedule.PaymentMethods)
}

func TestLoadInvalidSchedule(t *testing.T) {
	path := writeConfig(t, `
[database]
path = "barberia.db"

[schedule]
opening_time = "20:00"
closing_time = "09:30"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
