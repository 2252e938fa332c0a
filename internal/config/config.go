package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// ErrReadConfig возвращается при ошибке чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Salon    SalonConfig    `toml:"salon"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SalonConfig бизнес-настройки салона.
// Все правила расписания (часовой пояс, часы работы, выходные, праздники)
// задаются конфигурацией и нигде не зашиты в коде.
type SalonConfig struct {
	// Timezone фиксированный часовой пояс салона (IANA, например "Europe/Madrid").
	// Все даты и времена интерпретируются в этом поясе, а не в поясе клиента.
	Timezone string `toml:"timezone"`

	// Часы работы: слоты генерируются от OpenHour до CloseHour
	OpenHour  int `toml:"open_hour"`
	CloseHour int `toml:"close_hour"`

	// SlotIntervalMinutes шаг сетки слотов
	SlotIntervalMinutes int `toml:"slot_interval_minutes"`

	// ClosedWeekdays нерабочие дни недели (0 = воскресенье ... 6 = суббота)
	ClosedWeekdays []int `toml:"closed_weekdays"`

	// Holidays праздничные дни в формате MM-DD (повторяются ежегодно)
	Holidays []string `toml:"holidays"`

	// CapacityStepMinutes шаг выборки при проверке вместимости
	CapacityStepMinutes int `toml:"capacity_step_minutes"`

	// DefaultServiceDurationMinutes длительность по умолчанию,
	// когда длительность услуги не распарсилась или услуга не найдена
	DefaultServiceDurationMinutes int `toml:"default_service_duration_minutes"`

	// FallbackToDayPool политика назначения мастера: при пустом валидном пуле
	// назначать из дневного пула (допуская теоретический double-booking)
	// вместо создания неназначенного бронирования
	FallbackToDayPool bool `toml:"fallback_to_day_pool"`

	// BusinessPhone телефон салона для ссылок подтверждения WhatsApp
	BusinessPhone string `toml:"business_phone"`

	// StaffPIN пин-код для доступа к служебным ручкам API
	StaffPIN string `toml:"staff_pin"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	cfg.applyDefaults(md)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults(md toml.MetaData) {
	// Нулевое значение bool неотличимо от явного false,
	// поэтому ключ проверяется по метаданным декодера
	if !md.IsDefined("salon", "fallback_to_day_pool") {
		c.Salon.FallbackToDayPool = true
	}
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "salon-booking-service"
	}
	if c.Salon.Timezone == "" {
		c.Salon.Timezone = "Europe/Madrid"
	}
	if c.Salon.OpenHour == 0 && c.Salon.CloseHour == 0 {
		c.Salon.OpenHour = 9
		c.Salon.CloseHour = 19
	}
	if c.Salon.SlotIntervalMinutes == 0 {
		c.Salon.SlotIntervalMinutes = 30
	}
	if c.Salon.CapacityStepMinutes == 0 {
		c.Salon.CapacityStepMinutes = 15
	}
	if c.Salon.DefaultServiceDurationMinutes == 0 {
		c.Salon.DefaultServiceDurationMinutes = 30
	}
}

func (c *Config) validate() error {
	if c.Salon.OpenHour < 0 || c.Salon.CloseHour > 24 || c.Salon.OpenHour >= c.Salon.CloseHour {
		return fmt.Errorf("%w: open_hour=%d close_hour=%d", ErrInvalidConfig, c.Salon.OpenHour, c.Salon.CloseHour)
	}
	if c.Salon.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("%w: slot_interval_minutes must be positive", ErrInvalidConfig)
	}
	if c.Salon.CapacityStepMinutes <= 0 {
		return fmt.Errorf("%w: capacity_step_minutes must be positive", ErrInvalidConfig)
	}
	for _, wd := range c.Salon.ClosedWeekdays {
		if wd < 0 || wd > 6 {
			return fmt.Errorf("%w: closed weekday index %d out of range [0..6]", ErrInvalidConfig, wd)
		}
	}
	return nil
}
