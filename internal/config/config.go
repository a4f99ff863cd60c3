// Package config loads the tableview configuration file.
//
// Values are resolved in this order, later sources winning:
//  1. built-in defaults
//  2. the YAML file ($TABLEVIEW_CONFIG or ~/.tableview/config.yaml)
//  3. TABLEVIEW_* environment variables
//  4. command-line flags, applied by the caller
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/Alp4ka/tableview"
	"github.com/Alp4ka/tableview/internal/logging"
)

// Environment variables read by Load and ApplyEnv.
const (
	EnvConfig    = "TABLEVIEW_CONFIG"
	EnvPageSize  = "TABLEVIEW_PAGE_SIZE"
	EnvLogLevel  = "TABLEVIEW_LOG_LEVEL"
	EnvLogFormat = "TABLEVIEW_LOG_FORMAT"
	EnvLocale    = "TABLEVIEW_LOCALE"
)

const (
	dirName  = ".tableview"
	fileName = "config.yaml"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the on-disk configuration.
type Config struct {
	// PageSize overrides the page size of every dataset. Zero keeps the
	// dataset's own page size.
	PageSize    int    `yaml:"page_size"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	DatasetsDir string `yaml:"datasets_dir"`
	// Locale is a BCP 47 tag used for collation and number formatting.
	Locale string `yaml:"locale"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: logging.FormatConsole,
		Locale:    language.English.String(),
	}
}

// DefaultPath returns the config file location: $TABLEVIEW_CONFIG when set,
// ~/.tableview/config.yaml otherwise.
func DefaultPath(lookupEnv func(string) (string, bool)) (string, error) {
	if path, ok := lookupEnv(EnvConfig); ok && path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(home, dirName, fileName), nil
}

// Load reads the file at path on top of Default. An empty path resolves to
// DefaultPath, and a missing default file is not an error. A path given
// explicitly must exist.
//
// Load does not call Validate: callers apply their flag overrides first and
// validate the result.
func Load(path string, lookupEnv func(string) (string, bool)) (Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(lookupEnv); err != nil {
			return Config{}, err
		}
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%w: parsing %s: %w", ErrInvalidConfig, path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err = cfg.ApplyEnv(lookupEnv); err != nil {
		return Config{}, err
	}

	if cfg.DatasetsDir != "" && !filepath.IsAbs(cfg.DatasetsDir) {
		cfg.DatasetsDir = filepath.Join(filepath.Dir(path), cfg.DatasetsDir)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from TABLEVIEW_* environment variables.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvPageSize); ok && v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvPageSize, v)
		}
		c.PageSize = size
	}

	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}

	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.LogFormat = v
	}

	if v, ok := lookupEnv(EnvLocale); ok && v != "" {
		c.Locale = v
	}

	return nil
}

// Validate checks field ranges and names.
func (c Config) Validate() error {
	if _, ok := tableview.IsNormalizedPageSizeMax(c.PageSize, tableview.MaxPageSize); c.PageSize != 0 && !ok {
		return fmt.Errorf("%w: page_size must be between 0 and %d, got %d", ErrInvalidConfig, tableview.MaxPageSize, c.PageSize)
	}

	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	if !logging.ValidFormat(c.LogFormat) {
		return fmt.Errorf("%w: log_format must be %q or %q, got %q", ErrInvalidConfig, logging.FormatConsole, logging.FormatJSON, c.LogFormat)
	}

	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %w", ErrInvalidConfig, c.Locale, err)
	}

	return nil
}

// Language returns the parsed locale, English when it cannot be parsed.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}

	return tag
}

// Logging returns the logger settings.
func (c Config) Logging() logging.Config {
	return logging.Config{
		Level:  c.LogLevel,
		Format: c.LogFormat,
	}
}
