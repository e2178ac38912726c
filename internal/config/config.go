package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. PINBOARD_LISTEN_ADDR.
	EnvPrefix = "PINBOARD"
	// DirEnv overrides the configuration directory.
	DirEnv = "PINBOARD_CONFIG_DIR"

	serverFile = "server.json"
	clientFile = "client.json"
)

var validate = validator.New()

// ServerConfig holds API server configuration
type ServerConfig struct {
	ListenAddr      string `json:"listen_addr" mapstructure:"listen_addr" validate:"required"`
	BasePath        string `json:"base_path" mapstructure:"base_path" validate:"required,startswith=/"`
	MetricsPort     int    `json:"metrics_port" mapstructure:"metrics_port" validate:"min=0,max=65535"`
	ShutdownSeconds int    `json:"shutdown_seconds" mapstructure:"shutdown_seconds" validate:"min=1"`
	// TLS marks the API as served over HTTPS by a terminating proxy.
	TLS             bool   `json:"tls" mapstructure:"tls"`
	TrustProxy      bool   `json:"trust_proxy" mapstructure:"trust_proxy"`

	LogLevel  string `json:"log_level" mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `json:"log_format" mapstructure:"log_format" validate:"oneof=json console"`
}

// ShutdownTimeout is the grace period for in-flight requests on shutdown.
func (c *ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownSeconds) * time.Second
}

// ClientConfig holds configuration for the pinboard CLI
type ClientConfig struct {
	ServerURL     string `json:"server_url" mapstructure:"server_url" validate:"required,url"`
	APIBase       string `json:"api_base" mapstructure:"api_base" validate:"required,startswith=/"`
	OutDir        string `json:"out_dir" mapstructure:"out_dir" validate:"required"`
	MountSelector string `json:"mount_selector" mapstructure:"mount_selector" validate:"required"`

	// S3 configuration for publishing the bundle
	S3Endpoint  string `json:"s3_endpoint" mapstructure:"s3_endpoint" validate:"omitempty,url"`
	S3Bucket    string `json:"s3_bucket" mapstructure:"s3_bucket"`
	S3AccessKey string `json:"s3_access_key" mapstructure:"s3_access_key"`
	S3SecretKey string `json:"s3_secret_key" mapstructure:"s3_secret_key"`
	S3Region    string `json:"s3_region" mapstructure:"s3_region"`
	S3Prefix    string `json:"s3_prefix" mapstructure:"s3_prefix"`

	LogLevel  string `json:"log_level" mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `json:"log_format" mapstructure:"log_format" validate:"oneof=json console"`
}

// CanPublish reports whether the S3 settings needed by publish are present.
func (c *ClientConfig) CanPublish() error {
	var missing []string
	if c.S3Bucket == "" {
		missing = append(missing, "s3_bucket")
	}
	if c.S3AccessKey == "" {
		missing = append(missing, "s3_access_key")
	}
	if c.S3SecretKey == "" {
		missing = append(missing, "s3_secret_key")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing publish settings: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Dir returns the configuration directory path, creating it if needed.
func Dir() (string, error) {
	dir := os.Getenv(DirEnv)
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(base, "pinboard")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr:      ":8080",
		BasePath:        "/api",
		MetricsPort:     9090,
		ShutdownSeconds: 10,
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

// DefaultClientConfig returns default client configuration
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerURL:     "http://localhost:8080",
		APIBase:       "/api",
		OutDir:        "dist",
		MountSelector: "#app",
		S3Region:      "us-east-1",
		LogLevel:      "info",
		LogFormat:     "console",
	}
}

// LoadServer loads the server configuration.
// Environment variables take precedence over the config file.
func LoadServer() (*ServerConfig, error) {
	cfg := DefaultServerConfig()
	if err := load(serverFile, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadClient loads the client configuration.
// Environment variables take precedence over the config file.
func LoadClient() (*ClientConfig, error) {
	cfg := DefaultClientConfig()
	if err := load(clientFile, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveServer saves the server configuration
func SaveServer(cfg *ServerConfig) error {
	return save(serverFile, cfg)
}

// SaveClient saves the client configuration
func SaveClient(cfg *ClientConfig) error {
	return save(clientFile, cfg)
}

// Validate checks a loaded or edited configuration.
func Validate(cfg any) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// load fills cfg from defaults (its current values), the JSON file and the
// environment, in increasing order of precedence.
func load(name string, cfg any) error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, name))
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := setDefaults(v, cfg); err != nil {
		return err
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read %s: %w", name, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return Validate(cfg)
}

// setDefaults registers every field of cfg with viper so AutomaticEnv can
// resolve it.
func setDefaults(v *viper.Viper, cfg any) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	for k, val := range fields {
		v.SetDefault(k, val)
	}
	return nil
}

func save(name string, cfg any) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	dir, err := Dir()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(dir, name)
	return os.WriteFile(path, data, 0600)
}
