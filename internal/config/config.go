// Package config provides configuration for the opportunity-radar service.
// It uses an optional YAML file with environment variable overrides; .env
// files are loaded first via godotenv.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/opportunity-radar/internal/domain"
	"github.com/jonesrussell/opportunity-radar/internal/logger"
)

// Default configuration values.
const (
	defaultServiceName     = "opportunity-radar"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8090
	defaultReadTimeoutSec  = 30
	defaultWriteTimeoutSec = 60
	defaultIdleTimeoutSec  = 120
	defaultShutdownSec     = 30
	defaultMaxBatchSize    = 100
)

// Config holds all configuration for the opportunity-radar service.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Logging logger.Config `yaml:"logging"`
	Radar   RadarConfig   `yaml:"radar"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name            string        `yaml:"name"`
	Version         string        `yaml:"version"`
	Port            int           `env:"RADAR_PORT" yaml:"port"`
	Debug           bool          `env:"APP_DEBUG"  yaml:"debug"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// RadarConfig holds analyzer configuration.
type RadarConfig struct {
	// LexiconsFile points at an optional YAML file overriding the
	// compiled-in phrase tables. Empty means use defaults.
	LexiconsFile string `env:"RADAR_LEXICONS_FILE" yaml:"lexicons_file"`
	// MaxBatchSize bounds posts per batch analysis request.
	MaxBatchSize int `env:"RADAR_MAX_BATCH_SIZE" yaml:"max_batch_size"`
}

// SetDefaults applies default values to unset fields.
func (c *Config) SetDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = defaultServiceName
	}
	if c.Service.Version == "" {
		c.Service.Version = defaultServiceVersion
	}
	if c.Service.Port == 0 {
		c.Service.Port = defaultServicePort
	}
	if c.Service.ReadTimeout == 0 {
		c.Service.ReadTimeout = defaultReadTimeoutSec * time.Second
	}
	if c.Service.WriteTimeout == 0 {
		c.Service.WriteTimeout = defaultWriteTimeoutSec * time.Second
	}
	if c.Service.IdleTimeout == 0 {
		c.Service.IdleTimeout = defaultIdleTimeoutSec * time.Second
	}
	if c.Service.ShutdownTimeout == 0 {
		c.Service.ShutdownTimeout = defaultShutdownSec * time.Second
	}
	if c.Radar.MaxBatchSize == 0 {
		c.Radar.MaxBatchSize = defaultMaxBatchSize
	}
	c.Logging.SetDefaults()
}

// Load reads the YAML config file at path, applies defaults, then applies
// environment variable overrides (env always wins). An empty path or a
// missing file yields defaults plus env overrides.
func Load(path string) (*Config, error) {
	if err := loadEnvFiles(); err != nil {
		return nil, fmt.Errorf("load environment files: %w", err)
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Optional file; fall through to defaults.
		case err != nil:
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.SetDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadLexicons resolves the lexicon tables: the file named by the config if
// set, compiled-in defaults otherwise.
func (c *Config) LoadLexicons(defaults domain.Lexicons) (domain.Lexicons, error) {
	if c.Radar.LexiconsFile == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(c.Radar.LexiconsFile)
	if err != nil {
		return domain.Lexicons{}, fmt.Errorf("read lexicons file %s: %w", c.Radar.LexiconsFile, err)
	}

	var lex domain.Lexicons
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return domain.Lexicons{}, fmt.Errorf("parse lexicons: %w", err)
	}
	return lex, nil
}

// loadEnvFiles loads .env files in priority order: ENV_FILE if set,
// otherwise .env.local then .env. Missing files are not errors.
func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(".env.local"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env.local: %w", err)
	}
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// applyEnvOverrides uses `env:"VAR_NAME"` struct tags to apply environment
// variable values, recursing through nested structs.
func applyEnvOverrides(cfg any) {
	v := reflect.ValueOf(cfg)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	applyEnvToStruct(v)
}

func applyEnvToStruct(v reflect.Value) {
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			applyEnvToStruct(field)
			continue
		}

		envTag := t.Field(i).Tag.Get("env")
		if envTag == "" {
			continue
		}
		envVal := os.Getenv(envTag)
		if envVal == "" {
			continue
		}

		setFieldFromString(field, envVal)
	}
}

func setFieldFromString(field reflect.Value, val string) {
	switch field.Kind() {
	case reflect.String:
		field.SetString(val)

	case reflect.Int, reflect.Int64:
		if field.Type() == reflect.TypeOf(time.Duration(0)) {
			if d, err := time.ParseDuration(val); err == nil {
				field.SetInt(int64(d))
			}
			return
		}
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			field.SetInt(i)
		}

	case reflect.Float64:
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			field.SetFloat(f)
		}

	case reflect.Bool:
		field.SetBool(strings.EqualFold(val, "true") || val == "1")

	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.String {
			parts := strings.Split(val, ",")
			for i, p := range parts {
				parts[i] = strings.TrimSpace(p)
			}
			field.Set(reflect.ValueOf(parts))
		}
	}
}
