// Package log holds the logging configuration surface: defaults plus the small set of
// options a caller of the CLI or an embedding application can override.
package log

import (
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Options controls how the telemetry logger writes: where, at what level, and with
// what rotation policy.
type Options struct {
	Level     string `json:"level" yaml:"level"`
	ToConsole bool   `json:"to_console" yaml:"to_console"`
	FilePath  string `json:"file_path" yaml:"file_path"`

	MaxSizeMB  int  `json:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int  `json:"max_backups" yaml:"max_backups"`
	MaxAgeDays int  `json:"max_age_days" yaml:"max_age_days"`
	Compress   bool `json:"compress" yaml:"compress"`

	EnableCaller     bool `json:"enable_caller" yaml:"enable_caller"`
	EnableStacktrace bool `json:"enable_stacktrace" yaml:"enable_stacktrace"`
}

var levelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"fatal": zapcore.FatalLevel,
}

// Default returns the configuration lcodec runs with when nothing is overridden:
// console-only, info level, no file rotation.
func Default() Options {
	return Options{
		Level:            "info",
		ToConsole:        true,
		FilePath:         "",
		MaxSizeMB:        50,
		MaxBackups:       5,
		MaxAgeDays:       14,
		Compress:         true,
		EnableCaller:     true,
		EnableStacktrace: false,
	}
}

// LoadFile reads a YAML logging configuration from path, starting from Default() so an
// omitted field keeps its default rather than zeroing out.
func LoadFile(path string) (Options, error) {
	opts := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// ZapLevel resolves the configured level name to a zapcore.Level, defaulting to Info
// for an unrecognized or empty name.
func (o Options) ZapLevel() zapcore.Level {
	if lvl, ok := levelMap[o.Level]; ok {
		return lvl
	}
	return zapcore.InfoLevel
}

// FileEncoder is the JSON encoder used for rotated log files. CallerKey/StacktraceKey are
// omitted from the encoded record when the matching Options flag is off, so disabling
// EnableCaller/EnableStacktrace actually shrinks each JSON line instead of just suppressing
// the fields zap would otherwise populate.
func (o Options) FileEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(o.encoderConfig(zapcore.ISO8601TimeEncoder))
}

// ConsoleEncoder is the human-readable encoder used for stderr/stdout output.
func (o Options) ConsoleEncoder() zapcore.Encoder {
	cfg := o.encoderConfig(zapcore.TimeEncoderOfLayout("15:04:05.000"))
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func (o Options) encoderConfig(encodeTime zapcore.TimeEncoder) zapcore.EncoderConfig {
	callerKey := zapcore.OmitKey
	if o.EnableCaller {
		callerKey = "caller"
	}
	stacktraceKey := zapcore.OmitKey
	if o.EnableStacktrace {
		stacktraceKey = "stacktrace"
	}
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      callerKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  stacktraceKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     encodeTime,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
	}
}
