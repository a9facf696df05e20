package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log обертка над zap с sugared API (Info, Infof, Errorf, Fatalf ...)
type Log struct {
	*zap.SugaredLogger
}

// NewLogger создает логгер: target = stdout | stderr | file, level = debug | info | warn | error
func NewLogger(target, level, filename string) (*Log, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch strings.ToLower(target) {
	case "", "stdout":
		cfg.Encoding = "console"
		cfg.OutputPaths = []string{"stdout"}
	case "stderr":
		cfg.Encoding = "console"
		cfg.OutputPaths = []string{"stderr"}
	case "file":
		if filename == "" {
			return nil, fmt.Errorf("logger target 'file' requires filename")
		}
		cfg.OutputPaths = []string{filename}
	default:
		return nil, fmt.Errorf("unknown logger target: %s", target)
	}
	cfg.ErrorOutputPaths = []string{"stderr"}

	base, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &Log{SugaredLogger: base.Sugar()}, nil
}

// NewNop логгер, который ничего не пишет (для тестов)
func NewNop() *Log {
	return &Log{SugaredLogger: zap.NewNop().Sugar()}
}

func (l *Log) Close() error {
	return l.SugaredLogger.Sync()
}

func parseLevel(level string) (zapcore.Level, error) {
	if level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}
