package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/fnkit/logger"
)

// DefaultEnvPrefix prefixes environment variables read by Load.
const DefaultEnvPrefix = "FNKIT"

// File is the on-disk representation of the library settings.
type File struct {
	Errors  ErrorsConfig  `yaml:"errors" mapstructure:"errors"`
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ErrorsConfig configures error construction and exception logging.
type ErrorsConfig struct {
	FallbackCode    string `yaml:"fallback_code" mapstructure:"fallback_code"`
	FallbackMessage string `yaml:"fallback_message" mapstructure:"fallback_message"`
	LogExceptions   bool   `yaml:"log_exceptions" mapstructure:"log_exceptions"`
}

// ApplyDefaults applies default values to the errors configuration.
func (c *ErrorsConfig) ApplyDefaults() {
	c.FallbackCode = strings.TrimSpace(c.FallbackCode)
	if c.FallbackCode == "" {
		c.FallbackCode = DefaultFallbackErrorCode
	}
	if strings.TrimSpace(c.FallbackMessage) == "" {
		c.FallbackMessage = DefaultFallbackErrorMessage
	}
}

// Validate validates the errors configuration.
func (c *ErrorsConfig) Validate() error {
	if strings.ContainsAny(c.FallbackCode, " \t\n") {
		return fmt.Errorf("errors.fallback_code must not contain whitespace (got: %q)", c.FallbackCode)
	}
	return nil
}

// ApplyDefaults applies default values to every section.
func (f *File) ApplyDefaults() {
	f.Errors.ApplyDefaults()
	f.Logging.ApplyDefaults()
}

// Validate validates every section.
func (f *File) Validate() error {
	if err := f.Errors.Validate(); err != nil {
		return err
	}
	if err := f.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// Apply copies the file settings into b. When exception logging is enabled
// a zerolog logger built from the logging section becomes the exception logger.
func (f *File) Apply(b *Builder) {
	b.SetFallbackErrorCode(f.Errors.FallbackCode).
		SetFallbackErrorMessage(f.Errors.FallbackMessage)
	if f.Errors.LogExceptions {
		l := logger.New(&f.Logging, "fnkit").WithComponent("result")
		b.SetExceptionLogger(l.LogException)
	}
}

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct env file path (optional)
	EnvPrefix  string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithEnvPrefix overrides DefaultEnvPrefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvPrefix = prefix }
}

// Load reads the settings for the named application. It searches for a
// config.yml and a .env file in standard locations unless explicit paths are
// given, lets environment variables override file values, then applies
// defaults and validates the result.
func Load(name string, opts ...LoaderOption) (*File, error) {
	lc := LoaderConfig{EnvPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = RealFileSystem{}
	}
	if lc.ConfigFile == "" {
		lc.ConfigFile = findFirst(lc.FileSystem, configSearchPaths(name))
	}
	if lc.EnvFile == "" {
		lc.EnvFile = findFirst(lc.FileSystem, []string{".env." + name, ".env"})
	}

	v := viper.New()
	setDefaults(v)

	if lc.ConfigFile != "" && lc.FileSystem.Exists(lc.ConfigFile) {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", lc.ConfigFile, err)
		}
	}

	if lc.EnvFile != "" && lc.FileSystem.Exists(lc.EnvFile) {
		if err := lc.FileSystem.LoadEnv(lc.EnvFile); err != nil {
			logger.Get(logger.ComponentConfig).Warn("failed to load .env file", logger.Fields("path", lc.EnvFile, logger.FieldError, err.Error()))
		}
	}

	v.SetEnvPrefix(lc.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	f.ApplyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// ConfigureFromFile loads the named application's settings and publishes
// them as the global settings.
func ConfigureFromFile(name string, opts ...LoaderOption) error {
	f, err := Load(name, opts...)
	if err != nil {
		return err
	}
	Configure(f.Apply)
	return nil
}

// setDefaults registers every key so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("errors.fallback_code", DefaultFallbackErrorCode)
	v.SetDefault("errors.fallback_message", DefaultFallbackErrorMessage)
	v.SetDefault("errors.log_exceptions", false)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stdout")
	v.SetDefault("logging.no_color", false)
	v.SetDefault("logging.timestamp", true)
	v.SetDefault("logging.caller", false)
}

func configSearchPaths(name string) []string {
	return []string{
		fmt.Sprintf("./cmd/%s/config.yml", name),
		"./config/config.yml",
		"./config.yml",
	}
}

func findFirst(fs FileSystem, paths []string) string {
	for _, p := range paths {
		if fs.Exists(p) {
			return p
		}
	}
	return ""
}
