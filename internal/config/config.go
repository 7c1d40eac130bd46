package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "WTTRLOC"

// Config is the typed view of the viper settings.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Inference InferenceConfig `mapstructure:"inference"`
	Server    ServerConfig    `mapstructure:"server"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// InferenceConfig selects and configures the model endpoint.
type InferenceConfig struct {
	// Provider is "ollama" or "openai".
	Provider string `mapstructure:"provider"`
	// BaseURL is the endpoint root, e.g. "http://localhost:11434".
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
	// Timeout bounds one HTTP call; 0 disables it.
	Timeout time.Duration `mapstructure:"timeout"`
	// TokenEnv names the env var holding the bearer token (openai only).
	TokenEnv string `mapstructure:"token_env"`
	// Options is merged into the Ollama "options" object.
	Options map[string]interface{} `mapstructure:"options"`
}

// ServerConfig is the listen address of the HTTP API.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Init loads .env and the config file into the global viper instance.
func Init(cfgFile string) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	v := viper.GetViper()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
	}
}

// SetDefaults registers every known key so env overrides reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("inference.provider", "ollama")
	v.SetDefault("inference.base_url", "http://ai.dfec.xyz:11434")
	v.SetDefault("inference.model", "gemma3:27b")
	v.SetDefault("inference.timeout", "120s")
	v.SetDefault("inference.token_env", "OPENAI_API_KEY")
	v.SetDefault("inference.options", map[string]interface{}{})

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
}

// Load unmarshals the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom unmarshals v into a Config and validates it.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Inference.Provider = strings.ToLower(strings.TrimSpace(cfg.Inference.Provider))
	cfg.Inference.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Inference.BaseURL), "/")
	cfg.Inference.Model = strings.TrimSpace(cfg.Inference.Model)

	if cfg.Inference.BaseURL == "" {
		return nil, fmt.Errorf("inference.base_url is required")
	}
	if cfg.Inference.Model == "" {
		return nil, fmt.Errorf("inference.model is required")
	}
	if cfg.Inference.Timeout < 0 {
		return nil, fmt.Errorf("inference.timeout must not be negative, got %s", cfg.Inference.Timeout)
	}
	return &cfg, nil
}
