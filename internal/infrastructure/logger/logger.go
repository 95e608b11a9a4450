// Package logger wraps zap with the process-wide defaults used by every layer.
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects level and sink. Output is "stdout", "stderr" or "file".
type Options struct {
	Level      string
	Output     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

var (
	mu            sync.RWMutex
	defaultLogger *zap.Logger
)

func init() {
	l, err := New(Options{Level: "info", Output: "stdout"})
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defaultLogger = l
}

// New builds a JSON logger. File output rotates through lumberjack.
func New(opts Options) (*zap.Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format("2006-01-02 15:04:05.000"))
	}
	encCfg.CallerKey = "caller"
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	encCfg.LevelKey = "level"
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.MessageKey = "message"

	var sink zapcore.WriteSyncer
	switch strings.ToLower(strings.TrimSpace(opts.Output)) {
	case "", "stdout":
		sink = zapcore.Lock(os.Stdout)
	case "stderr":
		sink = zapcore.Lock(os.Stderr)
	case "file":
		if strings.TrimSpace(opts.File) == "" {
			return nil, fmt.Errorf("log output file requires a file path")
		}
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    defaultInt(opts.MaxSizeMB, 100),
			MaxBackups: defaultInt(opts.MaxBackups, 3),
			MaxAge:     defaultInt(opts.MaxAgeDays, 28),
			Compress:   opts.Compress,
		})
	default:
		return nil, fmt.Errorf("unknown log output %q", opts.Output)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), sink, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)), nil
}

// Init replaces the process logger.
func Init(opts Options) error {
	l, err := New(opts)
	if err != nil {
		return err
	}
	SetLogger(l)
	return nil
}

func SetLogger(l *zap.Logger) {
	mu.Lock()
	old := defaultLogger
	defaultLogger = l
	mu.Unlock()
	if old != nil {
		_ = old.Sync()
	}
}

// L returns the current process logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

func Debug(msg string, fields ...zap.Field) { L().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { L().Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { L().Fatal(msg, fields...) }

func Sync() {
	_ = L().Sync()
}

func parseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	case "fatal":
		return zapcore.FatalLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

func defaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
