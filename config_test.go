package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "mainnet", cfg.Chain)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "logfmt", cfg.LogFormat)
	assert.Empty(t, cfg.PrivateKey)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("WALLETCORE_PRIVATE_KEY", "0xabc123")
	t.Setenv("WALLETCORE_CHAIN", "sepolia")
	t.Setenv("WALLETCORE_RPC_URL", "https://rpc.example.org")
	t.Setenv("WALLETCORE_RPC_USERNAME", "operator")
	t.Setenv("WALLETCORE_LOG_LEVEL", "debug")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "0xabc123", cfg.PrivateKey)
	assert.Equal(t, "sepolia", cfg.Chain)
	assert.Equal(t, "https://rpc.example.org", cfg.RPCURL)
	assert.Equal(t, "operator", cfg.RPCUsername)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walletcore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chain: polygon\nrpc_url: http://localhost:8545\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "polygon", cfg.Chain)
	assert.Equal(t, "http://localhost:8545", cfg.RPCURL)
	// Values absent from the file keep their defaults.
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
