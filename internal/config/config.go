// Package config loads the journal settings from
// ~/.config/journal/config.yaml with JOURNAL_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultWindowDays = 30
	DefaultTopTags    = 5

	DefaultLogFileMaxSizeMB  = 10
	DefaultLogFileMaxBackups = 3
	DefaultLogFileMaxAgeDays = 28
)

type ReminderConfig struct {
	Enabled  bool     `mapstructure:"enabled"`
	Time     string   `mapstructure:"time"     validate:"required,clock"` // "20:00"
	Workdays []string `mapstructure:"workdays" validate:"dive,weekday"`   // ["Mon","Tue",...]
	Holidays []string `mapstructure:"holidays" validate:"dive,datetime=2006-01-02"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type ExportConfig struct {
	Dir         string `mapstructure:"dir"`
	DefaultName string `mapstructure:"default_name" validate:"required"`
	Font        string `mapstructure:"font"         validate:"omitempty,file"` // UTF-8 .ttf for non-Latin text
}

type AnalyticsConfig struct {
	WindowDays int `mapstructure:"window_days" validate:"min=1,max=3660"`
	TopTags    int `mapstructure:"top_tags"    validate:"min=1,max=100"`
}

type LogFileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"        validate:"required_if=Enabled true"`
	MaxSize    int    `mapstructure:"max_size"    validate:"min=1"`
	MaxBackups int    `mapstructure:"max_backups" validate:"min=0"`
	MaxAge     int    `mapstructure:"max_age"     validate:"min=0"`
	Compress   bool   `mapstructure:"compress"`
}

type LogConfig struct {
	Level  string        `mapstructure:"level"  validate:"oneof=trace debug info warn warning error"`
	Format string        `mapstructure:"format" validate:"oneof=pretty text json"`
	File   LogFileConfig `mapstructure:"file"`
}

type EncryptionConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Theme      string           `mapstructure:"theme"    validate:"oneof=default dark light"`
	Timezone   string           `mapstructure:"timezone" validate:"omitempty,timezone"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Export     ExportConfig     `mapstructure:"export"`
	Analytics  AnalyticsConfig  `mapstructure:"analytics"`
	Log        LogConfig        `mapstructure:"log"`
	Reminder   ReminderConfig   `mapstructure:"reminder"`
	Encryption EncryptionConfig `mapstructure:"encryption"`
}

func Default() Config {
	return Config{
		Theme: "default",
		Export: ExportConfig{
			DefaultName: "journal_export",
		},
		Analytics: AnalyticsConfig{
			WindowDays: DefaultWindowDays,
			TopTags:    DefaultTopTags,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "pretty",
			File: LogFileConfig{
				MaxSize:    DefaultLogFileMaxSizeMB,
				MaxBackups: DefaultLogFileMaxBackups,
				MaxAge:     DefaultLogFileMaxAgeDays,
			},
		},
		Reminder: ReminderConfig{
			Enabled:  false,
			Time:     "20:00",
			Workdays: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
			Holidays: []string{},
		},
	}
}

// Dir is ~/.config/journal, created on first use.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "journal")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Load reads the default config file. A missing file yields the defaults.
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(filepath.Join(dir, "config.yaml"))
}

// LoadFrom reads the YAML file at path, applies JOURNAL_* overrides and
// validates the result.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvPrefix("JOURNAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("timezone", cfg.Timezone)
	v.SetDefault("database.path", cfg.Database.Path)
	v.SetDefault("export.dir", cfg.Export.Dir)
	v.SetDefault("export.default_name", cfg.Export.DefaultName)
	v.SetDefault("export.font", cfg.Export.Font)
	v.SetDefault("analytics.window_days", cfg.Analytics.WindowDays)
	v.SetDefault("analytics.top_tags", cfg.Analytics.TopTags)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.file.enabled", cfg.Log.File.Enabled)
	v.SetDefault("log.file.path", cfg.Log.File.Path)
	v.SetDefault("log.file.max_size", cfg.Log.File.MaxSize)
	v.SetDefault("log.file.max_backups", cfg.Log.File.MaxBackups)
	v.SetDefault("log.file.max_age", cfg.Log.File.MaxAge)
	v.SetDefault("log.file.compress", cfg.Log.File.Compress)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.time", cfg.Reminder.Time)
	v.SetDefault("reminder.workdays", cfg.Reminder.Workdays)
	v.SetDefault("reminder.holidays", cfg.Reminder.Holidays)
	v.SetDefault("encryption.enabled", cfg.Encryption.Enabled)
}

func (c *Config) normalize() {
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	for i, d := range c.Reminder.Workdays {
		d = strings.ToLower(strings.TrimSpace(d))
		if len(d) > 3 {
			d = d[:3]
		}
		if d != "" {
			d = strings.ToUpper(d[:1]) + d[1:]
		}
		c.Reminder.Workdays[i] = d
	}
}

// Location is the configured timezone, or the local zone.
func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

// Now is the current time in Location. Its wall date is what the journal
// treats as "today".
func (c Config) Now() time.Time {
	return time.Now().In(c.Location())
}
