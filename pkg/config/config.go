package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds everything the dashboard reads from the environment at
// startup. It is populated once and treated as immutable afterwards.
type Config struct {
	Port  int  `mapstructure:"port"`
	Debug bool `mapstructure:"debug"`

	RedisHost string `mapstructure:"redis_host"`
	RedisPort int    `mapstructure:"redis_port"`

	BlockchainRPCURL string `mapstructure:"blockchain_rpc_url"`
	AgentAPIURL      string `mapstructure:"agent_api_url"`
	MeshAPIURL       string `mapstructure:"mesh_api_url"`

	TreasuryContract  string `mapstructure:"treasury_contract"`
	XMRTTokenContract string `mapstructure:"xmrt_token_contract"`

	SecretKey string `mapstructure:"secret_key"`
}

// Load reads configuration from environment variables, with an optional yaml
// config file underneath them. A missing file is fine; a malformed one is not.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("port", 5000)
	v.SetDefault("debug", false)
	v.SetDefault("redis_host", "localhost")
	v.SetDefault("redis_port", 6379)
	v.SetDefault("blockchain_rpc_url", "http://localhost:8545")
	v.SetDefault("agent_api_url", "http://localhost:5001")
	v.SetDefault("mesh_api_url", "http://localhost:5002")
	v.SetDefault("treasury_contract", "0x...")
	v.SetDefault("xmrt_token_contract", "0x...")
	v.SetDefault("secret_key", "dev-secret-key-change-in-production")

	// Environment variable names match the original deployment manifests
	bindings := map[string]string{
		"port":                "PORT",
		"debug":               "DEBUG",
		"redis_host":          "REDIS_HOST",
		"redis_port":          "REDIS_PORT",
		"blockchain_rpc_url":  "BLOCKCHAIN_RPC_URL",
		"agent_api_url":       "AGENT_API_URL",
		"mesh_api_url":        "MESH_API_URL",
		"treasury_contract":   "TREASURY_CONTRACT",
		"xmrt_token_contract": "XMRT_TOKEN_CONTRACT",
		"secret_key":          "SECRET_KEY",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port out of range: %d", c.Port)
	}
	if c.RedisPort < 1 || c.RedisPort > 65535 {
		return fmt.Errorf("redis port out of range: %d", c.RedisPort)
	}
	if c.AgentAPIURL == "" {
		return errors.New("agent API URL is empty")
	}
	if c.MeshAPIURL == "" {
		return errors.New("mesh API URL is empty")
	}
	return nil
}

// RedisAddr returns the host:port address of the Redis backend.
func (c *Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, strconv.Itoa(c.RedisPort))
}

// ListenAddr returns the address the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.Port)
}
