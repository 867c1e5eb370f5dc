package log_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianwallet/walletcore/pkg/log"
)

// testWriteSyncer is a zapcore.WriteSyncer that captures the last written
// log entry for assertion.
type testWriteSyncer struct {
	lastEntry []byte
}

func (tws *testWriteSyncer) Write(p []byte) (n int, err error) {
	tws.lastEntry = p
	return len(p), nil
}

func (tws *testWriteSyncer) Sync() error { return nil }

func (tws *testWriteSyncer) entry(t *testing.T) map[string]any {
	t.Helper()
	entryMap := make(map[string]any)
	require.NoError(t, json.Unmarshal(tws.lastEntry, &entryMap), "log entry: %s", string(tws.lastEntry))
	return entryMap
}

func TestZapLoggerJSON(t *testing.T) {
	tws := &testWriteSyncer{}
	logger := log.NewZapLogger(log.Config{Format: "json", Level: log.LevelDebug}, tws).WithName("signer")

	logger.Info("message signed", "chain", "mainnet", "recovery_id", float64(1))
	entry := tws.entry(t)

	assert.Contains(t, entry, "ts")
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "signer", entry["logger"])
	assert.Equal(t, "message signed", entry["msg"])
	assert.Equal(t, "mainnet", entry["chain"])
	assert.Equal(t, float64(1), entry["recovery_id"])
	assert.True(t, strings.HasPrefix(entry["caller"].(string), "log/zap_logger_test.go:"), entry["caller"])
}

func TestZapLoggerLevels(t *testing.T) {
	tws := &testWriteSyncer{}
	logger := log.NewZapLogger(log.Config{Format: "json", Level: log.LevelWarn}, tws)

	logger.Debug("dropped")
	logger.Info("dropped")
	assert.Empty(t, tws.lastEntry)

	logger.Warn("kept")
	assert.Equal(t, "warn", tws.entry(t)["level"])

	logger.Error("kept too")
	assert.Equal(t, "error", tws.entry(t)["level"])
}

func TestZapLoggerNaming(t *testing.T) {
	tws := &testWriteSyncer{}
	logger := log.NewZapLogger(log.Config{Format: "json", Level: log.LevelDebug}, tws).
		WithName("wallet").WithName("rpc")
	assert.Equal(t, "wallet.rpc", logger.Name())

	logger.Info("dialed")
	assert.Equal(t, "wallet.rpc", tws.entry(t)["logger"])
}

func TestZapLoggerWithKV(t *testing.T) {
	tws := &testWriteSyncer{}
	logger := log.NewZapLogger(log.Config{Format: "json", Level: log.LevelDebug}, tws).
		WithKV("network", "sepolia").WithKV("attempt", float64(2))
	assert.Equal(t, []any{"network", "sepolia", "attempt", float64(2)}, logger.GetAllKV())

	logger.Debug("retrying")
	entry := tws.entry(t)
	assert.Equal(t, "sepolia", entry["network"])
	assert.Equal(t, float64(2), entry["attempt"])
}

func TestZapLoggerCallerSkip(t *testing.T) {
	tws := &testWriteSyncer{}
	logger := log.NewZapLogger(log.Config{Format: "json", Level: log.LevelDebug}, tws)

	wrapper := func(msg string) {
		logger.AddCallerSkip(1).Info(msg)
	}
	wrapper("wrapped")

	// The caller must resolve to this file, not to the wrapper closure's
	// invocation inside it.
	assert.True(t, strings.HasPrefix(tws.entry(t)["caller"].(string), "log/zap_logger_test.go:"))
}

func TestZapLoggerLogfmt(t *testing.T) {
	tws := &testWriteSyncer{}
	logger := log.NewZapLogger(log.Config{Format: "logfmt", Level: log.LevelInfo}, tws)

	logger.Info("signed", "chain", "mainnet")
	line := string(tws.lastEntry)
	assert.Contains(t, line, "level=info")
	assert.Contains(t, line, "msg=signed")
	assert.Contains(t, line, "chain=mainnet")
}

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"debug", "info", "warn", "error", "fatal", "INFO"} {
		level, err := log.ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(name), string(level))
	}

	_, err := log.ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNoopLogger(t *testing.T) {
	logger := log.NewNoopLogger()
	logger.Info("discarded", "key", "value")
	assert.Empty(t, logger.Name())
	assert.Nil(t, logger.GetAllKV())
	assert.Equal(t, logger, logger.WithName("x").WithKV("k", "v").AddCallerSkip(1))
}
