package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/jpinedac/BRB-AgendaService/internal/domain"
)

// Config configuración completa del servicio
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig parámetros del servidor HTTP
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig parámetros del almacenamiento local (sqlite)
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// DSN devuelve la cadena de conexión del driver sqlite3.
// foreign_keys se activa siempre: el esquema depende de ello.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("file:%s?_foreign_keys=on", d.Path)
}

// LogsConfig parámetros de logging
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig parámetros de métricas prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ScheduleConfig horario de la barbería y vocabulario de pagos
type ScheduleConfig struct {
	OpeningTime        string   `toml:"opening_time"`
	ClosingTime        string   `toml:"closing_time"`
	MinIntervalMinutes int      `toml:"min_interval_minutes"`
	PaymentMethods     []string `toml:"payment_methods"`
}

// BusinessHours construye el horario de atención validado
func (s ScheduleConfig) BusinessHours() (domain.BusinessHours, error) {
	return domain.ParseBusinessHours(s.OpeningTime, s.ClosingTime)
}

// Load lee y valida la configuración desde un archivo TOML
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("config: database.path is required")
	}
	if _, err := cfg.Schedule.BusinessHours(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Schedule.MinIntervalMinutes <= 0 {
		return nil, fmt.Errorf("config: schedule.min_interval_minutes must be positive")
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Path: "barberia.db",
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "brb-agenda-service",
		},
		Schedule: ScheduleConfig{
			OpeningTime:        domain.DefaultOpeningTime,
			ClosingTime:        domain.DefaultClosingTime,
			MinIntervalMinutes: domain.MinIntervalMinutes,
			PaymentMethods:     domain.DefaultPaymentMethods,
		},
	}
}
