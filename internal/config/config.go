package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Environment string          `toml:"environment"`
	Server      ServerConfig    `toml:"server"`
	Database    DatabaseConfig  `toml:"database"`
	Logs        LogsConfig      `toml:"logs"`
	Metrics     MetricsConfig   `toml:"metrics"`
	Auth        AuthConfig      `toml:"auth"`
	Telegram    TelegramConfig  `toml:"telegram"`
	Scheduler   SchedulerConfig `toml:"scheduler"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File       string `toml:"file"`
	Level      string `toml:"level"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

type TelegramConfig struct {
	Token         string `toml:"token"`
	AdminChatID   int64  `toml:"admin_chat_id"`
	NotifyTimeout int    `toml:"notify_timeout"` // секунды
}

type SchedulerConfig struct {
	Enabled                 bool `toml:"enabled"`
	SummaryHour             int  `toml:"summary_hour"` // час по МСК
	ReminderIntervalMinutes int  `toml:"reminder_interval_minutes"`
	ReminderLeadMinutes     int  `toml:"reminder_lead_minutes"`
}

// ReminderInterval период проверки напоминаний
func (s SchedulerConfig) ReminderInterval() time.Duration {
	return time.Duration(s.ReminderIntervalMinutes) * time.Minute
}

// ReminderLead за сколько до начала созвона отправляется напоминание
func (s SchedulerConfig) ReminderLead() time.Duration {
	return time.Duration(s.ReminderLeadMinutes) * time.Minute
}

// Load читает TOML файл, затем накладывает секреты из окружения (.env, если есть)
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	// Отсутствие .env не ошибка: переменные могут прийти из окружения
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		c.Auth.JWTSecret = v
	}
	if v, ok := os.LookupEnv("TELEGRAM_TOKEN"); ok {
		c.Telegram.Token = v
	}
	if v, ok := os.LookupEnv("ADMIN_TELEGRAM_CHAT_ID"); ok && v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ADMIN_TELEGRAM_CHAT_ID %q: %w", v, err)
		}
		c.Telegram.AdminChatID = id
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}

	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 10)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 15)

	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	setDefault(&c.Database.Port, 5432)
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	setDefault(&c.Database.MaxOpenConns, 25)
	setDefault(&c.Database.MaxIdleConns, 5)
	setDefault(&c.Database.ConnMaxLifetime, 300)

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	setDefault(&c.Logs.MaxSizeMB, 100)
	setDefault(&c.Logs.MaxBackups, 3)
	setDefault(&c.Logs.MaxAgeDays, 28)

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "scheduling_service"
	}

	setDefault(&c.Telegram.NotifyTimeout, 10)

	setDefault(&c.Scheduler.SummaryHour, 9)
	setDefault(&c.Scheduler.ReminderIntervalMinutes, 15)
	setDefault(&c.Scheduler.ReminderLeadMinutes, 60)
}

func setDefault(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var errs []error

	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret (JWT_SECRET) is required"))
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("database.dbname is required"))
	}
	if c.Scheduler.SummaryHour > 23 {
		errs = append(errs, fmt.Errorf("scheduler.summary_hour must be in 0..23, got %d", c.Scheduler.SummaryHour))
	}
	if c.Scheduler.ReminderLeadMinutes < c.Scheduler.ReminderIntervalMinutes {
		errs = append(errs, fmt.Errorf("scheduler.reminder_lead_minutes (%d) must not be less than reminder_interval_minutes (%d)",
			c.Scheduler.ReminderLeadMinutes, c.Scheduler.ReminderIntervalMinutes))
	}

	return errors.Join(errs...)
}

// IsProduction окружение production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
