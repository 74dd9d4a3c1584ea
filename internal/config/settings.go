package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Settings holds runtime configuration for the CLI, server, and advisor.
// Snapshot data never lives here.
type Settings struct {
	Advisor AdvisorSettings `mapstructure:"advisor"`
	Server  ServerSettings  `mapstructure:"server"`
	Log     LogSettings     `mapstructure:"log"`
}

// AdvisorSettings configures the chat-completions endpoint
type AdvisorSettings struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Model   string        `mapstructure:"model"`
	Referer string        `mapstructure:"referer"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ServerSettings configures the HTTP API
type ServerSettings struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogSettings configures process logging
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// Enabled reports whether an API key is available
func (a AdvisorSettings) Enabled() bool {
	return a.APIKey != ""
}

const envPrefix = "FINHEALTH"

// LoadSettings layers defaults, an optional settings file and FINHEALTH_*
// environment variables, in increasing order of precedence. An optional .env
// file is loaded into the environment first, so its values override the
// settings file. Variables already set in the process win over .env.
func LoadSettings(path string) (*Settings, error) {
	// A missing .env is normal outside development
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("advisor.api_key", envPrefix+"_ADVISOR_API_KEY", "OPENROUTER_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind advisor key: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// DefaultSettings returns the built-in defaults without reading the environment
func DefaultSettings() *Settings {
	v := viper.New()
	setDefaults(v)
	var s Settings
	// Defaults are static; decoding them cannot fail
	_ = v.Unmarshal(&s)
	return &s
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("advisor.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("advisor.api_key", "")
	v.SetDefault("advisor.model", "google/gemini-2.0-flash-lite-001")
	v.SetDefault("advisor.referer", "http://localhost")
	v.SetDefault("advisor.timeout", 30*time.Second)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Validate reports every problem at once
func (s *Settings) Validate() error {
	var problems []string

	if s.Advisor.BaseURL == "" {
		problems = append(problems, "advisor.base_url must not be empty")
	}
	if s.Advisor.Model == "" {
		problems = append(problems, "advisor.model must not be empty")
	}
	if s.Advisor.Timeout <= 0 {
		problems = append(problems, fmt.Sprintf("advisor.timeout must be positive, got %s", s.Advisor.Timeout))
	}
	if s.Server.Addr == "" {
		problems = append(problems, "server.addr must not be empty")
	}
	if s.Server.ShutdownTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("server.shutdown_timeout must be positive, got %s", s.Server.ShutdownTimeout))
	}

	switch strings.ToLower(s.Log.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		problems = append(problems, fmt.Sprintf("invalid log.level %q", s.Log.Level))
	}
	switch s.Log.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log.format %q: must be console or json", s.Log.Format))
	}

	if len(problems) > 0 {
		return errors.New("invalid settings: " + strings.Join(problems, "; "))
	}
	return nil
}
