// Package log is the structured logger the CLI and any embedding application use. The
// codec packages themselves never log — encode/decode is pure and stateless — this
// exists for cmd/lcodec and for callers that want visibility into what the facade did.
package log

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	logconfig "github.com/ledgerkit/binarycodec/internal/config/log"
)

// Logger wraps a zap logger with the small fixed interface the rest of this module
// uses: leveled messages, formatted variants, and With() for attaching fields.
type Logger struct {
	zap *zap.Logger
	sug *zap.SugaredLogger
}

// New builds a Logger from opts: console output, file output, or both, based on
// which sinks opts enables.
func New(opts logconfig.Options) *Logger {
	var cores []zapcore.Core

	if opts.ToConsole {
		cores = append(cores, zapcore.NewCore(opts.ConsoleEncoder(), zapcore.AddSync(os.Stdout), opts.ZapLevel()))
	}
	if opts.FilePath != "" {
		writer := &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		cores = append(cores, zapcore.NewCore(opts.FileEncoder(), zapcore.AddSync(writer), opts.ZapLevel()))
	}
	if len(cores) == 0 {
		cores = append(cores, zapcore.NewNopCore())
	}

	zapOpts := []zap.Option{}
	if opts.EnableCaller {
		zapOpts = append(zapOpts, zap.AddCaller())
	}
	if opts.EnableStacktrace {
		zapOpts = append(zapOpts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	base := zap.New(zapcore.NewTee(cores...), zapOpts...)
	return &Logger{zap: base, sug: base.Sugar()}
}

var (
	mu      sync.RWMutex
	current = New(logconfig.Default())
)

// SetDefault replaces the process-wide default logger used by the package-level
// Debug/Info/Warn/Error/Fatal functions.
func SetDefault(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	current = l
}

func get() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func (l *Logger) Debug(msg string) { l.sug.Debug(msg) }
func (l *Logger) Info(msg string)  { l.sug.Info(msg) }
func (l *Logger) Warn(msg string)  { l.sug.Warn(msg) }
func (l *Logger) Error(msg string) { l.sug.Error(msg) }
func (l *Logger) Fatal(msg string) { l.sug.Fatal(msg) }

func (l *Logger) Debugf(format string, args ...any) { l.sug.Debugf(format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.sug.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.sug.Warnf(format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.sug.Errorf(format, args...) }
func (l *Logger) Fatalf(format string, args ...any) { l.sug.Fatalf(format, args...) }

// With returns a Logger with the given key/value pairs attached to every subsequent
// message.
func (l *Logger) With(args ...any) *Logger {
	sug := l.sug.With(args...)
	return &Logger{zap: sug.Desugar(), sug: sug}
}

// Sync flushes any buffered log entries. Callers should defer this at process exit.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}

// GetZapLogger exposes the underlying zap logger for callers that need it directly.
func (l *Logger) GetZapLogger() *zap.Logger {
	return l.zap
}

func Debug(msg string)                    { get().Debug(msg) }
func Info(msg string)                     { get().Info(msg) }
func Warn(msg string)                     { get().Warn(msg) }
func Error(msg string)                    { get().Error(msg) }
func Fatal(msg string)                    { get().Fatal(msg) }
func Debugf(format string, args ...any)   { get().Debugf(format, args...) }
func Infof(format string, args ...any)    { get().Infof(format, args...) }
func Warnf(format string, args ...any)    { get().Warnf(format, args...) }
func Errorf(format string, args ...any)   { get().Errorf(format, args...) }
func Fatalf(format string, args ...any)   { get().Fatalf(format, args...) }
func With(args ...any) *Logger            { return get().With(args...) }
