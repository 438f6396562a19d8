package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// PasswordEnv overrides the stored database password when set. The config
// file never has to carry the real credential.
const PasswordEnv = "TPCDS_DB_PASSWORD"

type Config struct {
	Database     Database `yaml:"database" mapstructure:"database"`
	KitPath      string   `yaml:"kit_path" mapstructure:"kit_path"`
	OutputDir    string   `yaml:"output_dir" mapstructure:"output_dir"`
	DefaultScale int      `yaml:"default_scale" mapstructure:"default_scale"`
}

type Database struct {
	Provider string `yaml:"provider" mapstructure:"provider"`
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	Name     string `yaml:"name" mapstructure:"name"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	Schema   string `yaml:"schema" mapstructure:"schema"`
	SSLMode  string `yaml:"sslmode" mapstructure:"sslmode"`
}

// Path returns the config file location, ~/.tpcds-util/config.yaml.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".tpcds-util", "config.yaml"), nil
}

// Load reads the merged viper state (config file, environment, flags) into a
// Config and fills in defaults. A missing config file is not an error.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Database.Provider == "" {
		c.Database.Provider = "postgresql"
	}
	if c.Database.Host == "" {
		c.Database.Host = "localhost"
	}
	if c.Database.Port == 0 {
		c.Database.Port = defaultPort(c.Database.Provider)
	}
	if c.Database.Name == "" {
		c.Database.Name = "tpcds"
	}
	if c.Database.User == "" {
		c.Database.User = "tpcds"
	}
	if c.Database.Schema == "" {
		c.Database.Schema = "public"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.OutputDir == "" {
		c.OutputDir = "tpcds_data"
	}
	if c.DefaultScale == 0 {
		c.DefaultScale = 1
	}
}

func defaultPort(provider string) int {
	switch provider {
	case "mysql":
		return 3306
	default:
		return 5432
	}
}

// Save writes the config file, creating ~/.tpcds-util if needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Set updates one dotted key, as used by `config set`.
func (c *Config) Set(key, value string) error {
	switch key {
	case "database.provider":
		c.Database.Provider = value
	case "database.host":
		c.Database.Host = value
	case "database.port":
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid port %q: %w", value, err)
		}
		c.Database.Port = port
	case "database.name":
		c.Database.Name = value
	case "database.user":
		c.Database.User = value
	case "database.password":
		c.Database.Password = value
	case "database.schema":
		c.Database.Schema = value
	case "database.sslmode":
		c.Database.SSLMode = value
	case "kit_path":
		c.KitPath = value
	case "output_dir":
		c.OutputDir = value
	case "default_scale":
		scale, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid scale %q: %w", value, err)
		}
		c.DefaultScale = scale
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v",
			c.Database.Provider, supportedProviders)
	}
	if c.DefaultScale < 0 {
		return fmt.Errorf("default_scale cannot be negative")
	}
	return nil
}

// EffectivePassword prefers the environment over the stored value.
func (c *Config) EffectivePassword() string {
	if pw := os.Getenv(PasswordEnv); pw != "" {
		return pw
	}
	return c.Database.Password
}

// DriverName maps the configured provider onto a registered database/sql
// driver.
func (c *Config) DriverName() string {
	switch c.Database.Provider {
	case "mysql":
		return "mysql"
	case "sqlite", "sqlite3":
		return "sqlite3"
	default:
		return "pgx"
	}
}

// DSN builds the connection string for the configured provider.
func (c *Config) DSN() string {
	switch c.Database.Provider {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
			c.Database.User, c.EffectivePassword(),
			c.Database.Host, c.Database.Port, c.Database.Name)
	case "sqlite", "sqlite3":
		return c.Database.Name
	default:
		return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
			c.Database.User, c.EffectivePassword(),
			c.Database.Host, c.Database.Port, c.Database.Name,
			c.Database.SSLMode)
	}
}
