// Package config loads echoproc CLI settings with viper.
package config

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	KeyScanWorkers       = "scan.workers"
	KeyScanStrict        = "scan.strict"
	KeyReportFormat      = "report.format"
	KeyCatalogPath       = "catalog.path"
	KeyLoggingLevel      = "logging.level"
	KeyLoggingFile       = "logging.file"
	KeyLoggingMaxSizeMB  = "logging.max_size_mb"
	KeyLoggingMaxBackups = "logging.max_backups"

	// EnvPrefix is prepended to environment overrides, e.g. ECHOPROC_SCAN_WORKERS.
	EnvPrefix = "ECHOPROC"
	// FileName is the config file name searched in $HOME and the working directory.
	FileName = ".echoproc"
)

type Config struct {
	Scan    ScanConfig    `mapstructure:"scan" yaml:"scan"`
	Report  ReportConfig  `mapstructure:"report" yaml:"report"`
	Catalog CatalogConfig `mapstructure:"catalog" yaml:"catalog"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

type ScanConfig struct {
	Workers int  `mapstructure:"workers" yaml:"workers" validate:"gte=1"`
	Strict  bool `mapstructure:"strict" yaml:"strict"`
}

type ReportConfig struct {
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=csv excel xlsx"`
}

type CatalogConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" validate:"gte=1"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
}

// New returns a viper instance with defaults and environment overrides set.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults sets default values if not provided
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyScanWorkers, runtime.NumCPU())
	v.SetDefault(KeyScanStrict, false)
	v.SetDefault(KeyReportFormat, "csv")
	v.SetDefault(KeyCatalogPath, "")
	v.SetDefault(KeyLoggingLevel, "info")
	v.SetDefault(KeyLoggingFile, "")
	v.SetDefault(KeyLoggingMaxSizeMB, 10)
	v.SetDefault(KeyLoggingMaxBackups, 3)
}

// ReadFile points v at an explicit config file, or searches $HOME and the
// working directory for .echoproc.yaml. A missing searched file is not an
// error; a missing explicit file is.
func ReadFile(v *viper.Viper, path, home string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home != "" {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(FileName)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && path == "" {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Report.Format = strings.ToLower(strings.TrimSpace(cfg.Report.Format))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	SetDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return Load(local)
}

// YAML renders cfg as a YAML document.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return out, nil
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# echoproc configuration
scan:
  workers: 4
  strict: false

report:
  format: csv

catalog:
  path: ""

logging:
  level: info
  file: ""
  max_size_mb: 10
  max_backups: 3
`
}
