/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/zalando/go-keyring"
	"gopkg.in/yaml.v3"

	"crosshairengine/internal/domain"
	applog "crosshairengine/internal/log"
	"crosshairengine/internal/telemetry"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields are ignored on unmarshal.

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// RenderConfig holds the defaults used when a command does not name a value.
type RenderConfig struct {
	Shape     string  `yaml:"shape"` // name or numeric code
	Color     string  `yaml:"color"` // #RRGGBB, #AARRGGBB, 0xAARRGGBB or decimal
	Size      float64 `yaml:"size"`
	Thickness float64 `yaml:"thickness"`
	Opacity   float64 `yaml:"opacity"`
}

// PresetsConfig selects the preset library backend.
type PresetsConfig struct {
	Driver string `yaml:"driver"` // "sqlite" | "pgx"
	DSN    string `yaml:"dsn"`    // empty means <config dir>/presets.sqlite for sqlite
}

type TelemetryConfig struct {
	OptIn     bool   `yaml:"opt_in"`
	URL       string `yaml:"url"`
	CrashURL  string `yaml:"crash_url"`
	TimeoutMs int    `yaml:"timeout_ms"`
	// Token is not stored on disk; it lives in the OS keychain.
}

type AppConfig struct {
	ConfigVersion int             `yaml:"config_version"`
	Logging       LoggingConfig   `yaml:"logging"`
	Render        RenderConfig    `yaml:"render"`
	Presets       PresetsConfig   `yaml:"presets"`
	Telemetry     TelemetryConfig `yaml:"telemetry"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
		Render:        RenderConfig{Shape: "cross", Color: "#ffffffff", Size: 10, Thickness: 2, Opacity: 1},
		Presets:       PresetsConfig{Driver: "sqlite"},
		Telemetry:     TelemetryConfig{OptIn: false, TimeoutMs: 1500},
	}
}

// Env var names used as overrides.
const (
	EnvConfigFile     = "CHE_CONFIG"
	EnvTelemetryOptIn = "CHE_TELEMETRY_OPT_IN"
	EnvTelemetryURL   = "CHE_TELEMETRY_URL"
	EnvPresetsDriver  = "CHE_PRESETS_DRIVER"
	EnvPresetsDSN     = "CHE_PRESETS_DSN"
	EnvShape          = "CHE_SHAPE"
	EnvColor          = "CHE_COLOR"
	EnvSize           = "CHE_SIZE"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "CHE_LOG_LEVEL"
	EnvLogFormat = "CHE_LOG_FORMAT"
	EnvLogSource = "CHE_LOG_SOURCE"
	EnvLogFile   = "CHE_LOG_FILE"
)

// Service/keys for OS keyring.
const (
	keyringService = "CrosshairEngine"
	keyringToken   = "telemetry_token"
)

// tokenStore abstracts keyring, so we can stub in tests.
var tokenStore TokenStore = &osKeyring{}

type TokenStore interface {
	Get(service, key string) (string, error)
	Set(service, key, value string) error
	Delete(service, key string) error
}

// SetTokenStore replaces the keyring backend and returns the previous one.
func SetTokenStore(s TokenStore) TokenStore {
	prev := tokenStore
	tokenStore = s
	return prev
}

// osKeyring implements TokenStore using the OS keyring via github.com/zalando/go-keyring.
type osKeyring struct{}

func (k *osKeyring) Get(service, key string) (string, error) { return keyring.Get(service, key) }
func (k *osKeyring) Set(service, key, value string) error    { return keyring.Set(service, key, value) }
func (k *osKeyring) Delete(service, key string) error        { return keyring.Delete(service, key) }

// ConfigDir returns the per-user configuration directory.
func ConfigDir() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "CrosshairEngine")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "CrosshairEngine")
	default: // linux and others
		if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
			base = filepath.Join(x, "crosshair")
		} else {
			base = filepath.Join(os.Getenv("HOME"), ".config", "crosshair")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return base, nil
}

// ConfigPath returns the config file path; CHE_CONFIG overrides the per-user location.
func ConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfigFile)); p != "" {
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads user config file (if present), applies defaults, and merges environment overrides.
// It also loads the telemetry token from keyring (not kept inside the struct; returned separately).
// A malformed file is reported as an error together with the defaults-plus-env config.
func Load() (AppConfig, string, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, "", err
	}
	var parseErr error
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		} else {
			parseErr = fmt.Errorf("parse %s: %w", path, err)
		}
	}
	applyEnvOverrides(&cfg)
	tok, err := tokenStore.Get(keyringService, keyringToken)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		applog.WithComponent("config").Debug("keyring unavailable", "err", err)
	}
	return cfg, tok, parseErr
}

// Save writes the user config YAML and persists the token into OS keyring (if non-empty).
func Save(cfg AppConfig, token string) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return err
	}
	if token != "" {
		if err := tokenStore.Set(keyringService, keyringToken, token); err != nil {
			return err
		}
	}
	return nil
}

// ForgetToken removes the stored telemetry token.
func ForgetToken() error {
	if err := tokenStore.Delete(keyringService, keyringToken); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
	// render defaults; zero means "not set in file"
	if strings.TrimSpace(src.Render.Shape) != "" {
		dst.Render.Shape = strings.TrimSpace(src.Render.Shape)
	}
	if strings.TrimSpace(src.Render.Color) != "" {
		dst.Render.Color = strings.TrimSpace(src.Render.Color)
	}
	if src.Render.Size != 0 {
		dst.Render.Size = src.Render.Size
	}
	if src.Render.Thickness != 0 {
		dst.Render.Thickness = src.Render.Thickness
	}
	if src.Render.Opacity != 0 {
		dst.Render.Opacity = src.Render.Opacity
	}
	// presets
	if strings.TrimSpace(src.Presets.Driver) != "" {
		dst.Presets.Driver = strings.ToLower(strings.TrimSpace(src.Presets.Driver))
	}
	if strings.TrimSpace(src.Presets.DSN) != "" {
		dst.Presets.DSN = strings.TrimSpace(src.Presets.DSN)
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.Telemetry.OptIn = src.Telemetry.OptIn
	if strings.TrimSpace(src.Telemetry.URL) != "" {
		dst.Telemetry.URL = strings.TrimSpace(src.Telemetry.URL)
	}
	if strings.TrimSpace(src.Telemetry.CrashURL) != "" {
		dst.Telemetry.CrashURL = strings.TrimSpace(src.Telemetry.CrashURL)
	}
	if src.Telemetry.TimeoutMs != 0 {
		dst.Telemetry.TimeoutMs = src.Telemetry.TimeoutMs
	}
}

func parseBool(v string) bool {
	lv := strings.ToLower(strings.TrimSpace(v))
	return lv == "1" || lv == "true" || lv == "on" || lv == "yes"
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryOptIn)); v != "" {
		cfg.Telemetry.OptIn = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvTelemetryURL)); v != "" {
		cfg.Telemetry.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPresetsDriver)); v != "" {
		cfg.Presets.Driver = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvPresetsDSN)); v != "" {
		cfg.Presets.DSN = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvShape)); v != "" {
		cfg.Render.Shape = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvColor)); v != "" {
		cfg.Render.Color = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSize)); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Render.Size = n
		}
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	var env string
	switch key {
	case "telemetry.opt_in":
		env = EnvTelemetryOptIn
	case "telemetry.url":
		env = EnvTelemetryURL
	case "presets.driver":
		env = EnvPresetsDriver
	case "presets.dsn":
		env = EnvPresetsDSN
	case "render.shape":
		env = EnvShape
	case "render.color":
		env = EnvColor
	case "render.size":
		env = EnvSize
	case "logging.level":
		env = EnvLogLevel
	case "logging.format":
		env = EnvLogFormat
	case "logging.source":
		env = EnvLogSource
	case "logging.file":
		env = EnvLogFile
	default:
		return "", false
	}
	if os.Getenv(env) != "" {
		return env, true
	}
	return "", false
}

// Validation errors reported by Validate, in addition to the domain range errors.
var (
	ErrUnknownDriver = errors.New("presets.driver must be sqlite or pgx")
	ErrBadShape      = errors.New("render.shape is not a shape name or code")
	ErrBadColor      = errors.New("render.color is not a color")
)

// Validate checks that the render defaults and backend selection are usable.
func (c AppConfig) Validate() error {
	var errs []error
	p, err := c.RenderParams()
	if err != nil {
		errs = append(errs, err)
	} else if err := p.Validate(); err != nil {
		errs = append(errs, err)
	}
	switch c.Presets.Driver {
	case "sqlite", "pgx":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownDriver, c.Presets.Driver))
	}
	return errors.Join(errs...)
}

// RenderParams decodes the render section into engine parameters.
func (c AppConfig) RenderParams() (domain.RenderParams, error) {
	kind, err := domain.ParseShapeKind(c.Render.Shape)
	if err != nil {
		return domain.RenderParams{}, fmt.Errorf("%w: %v", ErrBadShape, err)
	}
	col, err := domain.ParseColor(c.Render.Color)
	if err != nil {
		return domain.RenderParams{}, fmt.Errorf("%w: %v", ErrBadColor, err)
	}
	return domain.RenderParams{
		Shape:     kind,
		Color:     col,
		Size:      c.Render.Size,
		Thickness: c.Render.Thickness,
		Opacity:   c.Render.Opacity,
	}, nil
}

// PresetsDSN returns the configured DSN, defaulting to presets.sqlite in the config dir.
func (c AppConfig) PresetsDSN() (string, error) {
	if c.Presets.DSN != "" || c.Presets.Driver != "sqlite" {
		return c.Presets.DSN, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets.sqlite"), nil
}

// TelemetrySettings builds the telemetry sender settings; token comes from the keyring.
func (c AppConfig) TelemetrySettings(token string) telemetry.Config {
	t := telemetry.FromEnv()
	t.OptIn = c.Telemetry.OptIn
	if c.Telemetry.URL != "" {
		t.EventsURL = c.Telemetry.URL
	}
	if c.Telemetry.CrashURL != "" {
		t.CrashURL = c.Telemetry.CrashURL
	}
	if c.Telemetry.TimeoutMs > 0 {
		t.Timeout = time.Duration(c.Telemetry.TimeoutMs) * time.Millisecond
	}
	if token != "" && t.Token == "" {
		t.Token = token
	}
	return t
}

// LogOptions converts the logging section into logger options.
func (c AppConfig) LogOptions() applog.Options {
	return applog.Options{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		AddSource: c.Logging.Source,
		File:      c.Logging.File,
	}
}
