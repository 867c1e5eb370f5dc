package main

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds the CLI configuration, read from environment variables and an
// optional YAML file.
type Config struct {
	// PrivateKey is the hex-encoded signing key, with or without the 0x
	// prefix. Commands that do not sign run without it.
	PrivateKey string `yaml:"private_key" env:"WALLETCORE_PRIVATE_KEY"`
	// Chain names the target network in the chains table. Use "legacy" for
	// pre-EIP-155 signatures without replay protection.
	Chain string `yaml:"chain" env:"WALLETCORE_CHAIN" env-default:"mainnet"`

	// RPCURL points at a JSON-RPC endpoint. When set, the chain id is
	// queried live instead of resolved from the static table.
	RPCURL      string `yaml:"rpc_url" env:"WALLETCORE_RPC_URL"`
	RPCUsername string `yaml:"rpc_username" env:"WALLETCORE_RPC_USERNAME"`
	RPCPassword string `yaml:"rpc_password" env:"WALLETCORE_RPC_PASSWORD"`
	RPCProxyURL string `yaml:"rpc_proxy_url" env:"WALLETCORE_RPC_PROXY_URL"`

	LogLevel  string `yaml:"log_level" env:"WALLETCORE_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"WALLETCORE_LOG_FORMAT" env-default:"logfmt"`
}

// LoadConfig reads the configuration. A .env file in the working directory is
// loaded first when present; path selects an optional YAML config file, with
// environment variables taking precedence over file values.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment config: %w", err)
	}
	return cfg, nil
}
