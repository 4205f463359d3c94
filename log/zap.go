package log

import (
	"context"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

// Logger wraps a zap.Logger. All logging in this module goes through
// this type so that output format, level and per-logger filtering are
// configured in one place.
type Logger struct {
	l     *zap.Logger
	level Level
}

type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	FatalLevel = zapcore.FatalLevel
)

type Field = zap.Field

var (
	String     = zap.String
	Int        = zap.Int
	Uint       = zap.Uint
	Float      = zap.Float64
	Bool       = zap.Bool
	Time       = zap.Time
	Duration   = zap.Duration
	Any        = zap.Any
	ErrorField = zap.Error
)

type Option = zap.Option

func WithCaller(enabled bool) Option {
	return zap.WithCaller(enabled)
}

func AddCallerSkip(skip int) Option {
	return zap.AddCallerSkip(skip)
}

func ParseLevel(text string) (Level, error) {
	return zapcore.ParseLevel(text)
}

type config struct {
	filters string
}

type ConfigOption func(*config)

// WithFilterRules installs zapfilter rules (e.g. "debug:service.* info:*")
// limiting output of named loggers.
func WithFilterRules(rules string) ConfigOption {
	return func(c *config) {
		c.filters = rules
	}
}

// New creates a json logger writing to w.
func New(w io.Writer, level Level, opts ...Option) *Logger {
	return newLogger(w, level, zapcore.NewJSONEncoder(prodEncoderConfig()), nil, opts...)
}

// DevLogger creates a console logger writing to w.
func DevLogger(w io.Writer, level Level, opts ...Option) *Logger {
	return newLogger(w, level,
		zapcore.NewConsoleEncoder(devEncoderConfig()), nil, opts...)
}

// NewWithConfig creates a json logger honoring additional config options.
//
//nolint:whitespace // can't make both editor and linter happy
func NewWithConfig(
	w io.Writer,
	level Level,
	cfgOpts []ConfigOption,
	opts ...Option,
) *Logger {
	cfg := &config{}
	for _, o := range cfgOpts {
		o(cfg)
	}
	return newLogger(w, level, zapcore.NewJSONEncoder(prodEncoderConfig()), cfg, opts...)
}

//nolint:whitespace // can't make both editor and linter happy
func newLogger(
	w io.Writer,
	level Level,
	enc zapcore.Encoder,
	cfg *config,
	opts ...Option,
) *Logger {
	if w == nil {
		w = os.Stderr
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	if cfg != nil && cfg.filters != "" {
		core = zapfilter.NewFilteringCore(core, zapfilter.MustParseRules(cfg.filters))
	}
	return &Logger{l: zap.New(core, opts...), level: level}
}

func prodEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func devEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

func (l *Logger) Debug(msg string, fields ...Field) { l.l.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.l.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.l.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.l.Error(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...Field) { l.l.Fatal(msg, fields...) }

func (l *Logger) Named(name string) *Logger {
	return &Logger{l: l.l.Named(name), level: l.level}
}

func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) Sugar() *zap.SugaredLogger {
	return l.l.Sugar()
}

func (l *Logger) Sync() error {
	return l.l.Sync()
}

//nolint:gochecknoglobals // package level default logger
var (
	std = DevLogger(os.Stderr, InfoLevel)
	mu  sync.Mutex
)

type ctxKeyType struct{}

//nolint:gochecknoglobals // context key
var ctxKey = ctxKeyType{}

// Default returns the process-wide default logger.
func Default() *Logger {
	return std
}

// ResetDefault replaces the process-wide default logger.
func ResetDefault(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	std = l
}

// AddToContext stores a logger in the context.
func AddToContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey, l)
}

// GetFromContext returns the logger stored in the context, the default
// logger otherwise.
func GetFromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey).(*Logger); ok {
		return l
	}
	return Default()
}

func Debug(msg string, fields ...Field) { std.l.Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { std.l.Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { std.l.Warn(msg, fields...) }
func Error(msg string, fields ...Field) { std.l.Error(msg, fields...) }
func Fatal(msg string, fields ...Field) { std.l.Fatal(msg, fields...) }
