package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"plannerview/internal/domain"
)

type Config struct {
	PlanPath       string        `mapstructure:"plan_path"`
	ViewConfigPath string        `mapstructure:"view_config_path"`
	ScanPath       string        `mapstructure:"scan_path"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	DBPath         string        `mapstructure:"db_path"`
	ThemeName      string        `mapstructure:"theme_name"`
	LinkBase       string        `mapstructure:"link_base"`
	LogLevel       string        `mapstructure:"log_level"`
}

const (
	DefaultPlanPath       = "resources/plan.xlsx"
	DefaultViewConfigPath = "resources/config.toml"
	DefaultPollInterval   = 2 * time.Second
)

var (
	configDir  string
	configFile string
)

func init() {
	// get home dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".plannerview")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

// log file lives next to the settings
func LogFile() string {
	return filepath.Join(configDir, "plannerview.log")
}

// loads settings from file, falling back to defaults
func LoadConfig() (*Config, error) {
	if err := EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if !ConfigExists() {
		return GetDefaultConfig(), nil
	}

	v := newViper()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.fillDefaults()
	return cfg, nil
}

// saves settings to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper()
	v.Set("plan_path", cfg.PlanPath)
	v.Set("view_config_path", cfg.ViewConfigPath)
	v.Set("scan_path", cfg.ScanPath)
	v.Set("poll_interval", cfg.PollInterval.String())
	v.Set("db_path", cfg.DBPath)
	v.Set("theme_name", cfg.ThemeName)
	v.Set("link_base", cfg.LinkBase)
	v.Set("log_level", cfg.LogLevel)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// returns default config
func GetDefaultConfig() *Config {
	return &Config{
		PlanPath:       DefaultPlanPath,
		ViewConfigPath: DefaultViewConfigPath,
		PollInterval:   DefaultPollInterval,
		DBPath:         filepath.Join(configDir, "views.db"),
		LinkBase:       domain.DefaultLinkBase,
		LogLevel:       "info",
	}
}

// updates theme in config file
func UpdateTheme(themeName string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ThemeName = themeName
	return SaveConfig(cfg)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("plannerview")
	v.AutomaticEnv()
	return v
}

// blank keys in the file keep their defaults
func (c *Config) fillDefaults() {
	def := GetDefaultConfig()
	if c.PlanPath == "" {
		c.PlanPath = def.PlanPath
	}
	if c.ViewConfigPath == "" {
		c.ViewConfigPath = def.ViewConfigPath
	}
	if c.PollInterval <= 0 {
		c.PollInterval = def.PollInterval
	}
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.LinkBase == "" {
		c.LinkBase = def.LinkBase
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}
