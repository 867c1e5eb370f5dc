package log

import (
	"os"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*ZapLogger)(nil)

// ZapLogger implements Logger on top of a zap sugared logger with caller
// annotation and either JSON or logfmt output.
type ZapLogger struct {
	lg   *zap.SugaredLogger
	name string
	kv   []any
}

// NewZapLogger builds a logger from the given config, writing to ws. A nil ws
// defaults to stderr.
func NewZapLogger(cfg Config, ws zapcore.WriteSyncer) *ZapLogger {
	if ws == nil {
		ws = zapcore.Lock(os.Stderr)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.NameKey = "logger"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder

	var enc zapcore.Encoder
	switch cfg.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		enc = zaplogfmt.NewEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, ws, zapLevel(cfg.Level))
	lg := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	return &ZapLogger{lg: lg.Sugar()}
}

func zapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.lg.Debugw(msg, keysAndValues...)
}

func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.lg.Infow(msg, keysAndValues...)
}

func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.lg.Warnw(msg, keysAndValues...)
}

func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.lg.Errorw(msg, keysAndValues...)
}

func (l *ZapLogger) Fatal(msg string, keysAndValues ...any) {
	l.lg.Fatalw(msg, keysAndValues...)
}

// Name returns the dot-separated logger name.
func (l *ZapLogger) Name() string {
	return l.name
}

// WithName appends a name segment, joined with a dot.
func (l *ZapLogger) WithName(name string) Logger {
	joined := name
	if l.name != "" {
		joined = l.name + "." + name
	}
	return &ZapLogger{lg: l.lg.Named(name), name: joined, kv: l.kv}
}

// WithKV attaches a key-value pair to every subsequent entry.
func (l *ZapLogger) WithKV(key string, value any) Logger {
	kv := make([]any, 0, len(l.kv)+2)
	kv = append(kv, l.kv...)
	kv = append(kv, key, value)
	return &ZapLogger{lg: l.lg.With(key, value), name: l.name, kv: kv}
}

// GetAllKV returns the pairs attached with WithKV, in insertion order.
func (l *ZapLogger) GetAllKV() []any {
	return l.kv
}

// AddCallerSkip skips additional call frames when resolving the caller,
// so wrapper functions report their own caller instead of themselves.
func (l *ZapLogger) AddCallerSkip(skip int) Logger {
	lg := l.lg.Desugar().WithOptions(zap.AddCallerSkip(skip)).Sugar()
	return &ZapLogger{lg: lg, name: l.name, kv: l.kv}
}
