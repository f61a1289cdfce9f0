package config

import (
	"fmt"
	"log/slog"
	"strings"

	"go.uber.org/multierr"

	"github.com/dep2p/go-didkey/pkg/lib/log"
)

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别: debug / info / warn / error
	Level string `json:"level" yaml:"level"`

	// Format 输出格式: text / json
	Format string `json:"format" yaml:"format"`
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: log.FormatText,
	}
}

// Validate 验证日志配置
func (c LogConfig) Validate() error {
	var errs error
	if _, err := log.ParseLevel(c.Level); err != nil {
		errs = multierr.Append(errs, err)
	}
	switch strings.ToLower(c.Format) {
	case log.FormatText, log.FormatJSON:
	default:
		errs = multierr.Append(errs, fmt.Errorf("invalid log format %q: must be text or json", c.Format))
	}
	return errs
}

// SlogLevel 返回解析后的级别，无效时为 info
func (c LogConfig) SlogLevel() slog.Level {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return log.LevelInfo
	}
	return level
}

// WithLevel 设置日志级别
func (c LogConfig) WithLevel(level string) LogConfig {
	c.Level = level
	return c
}

// WithFormat 设置输出格式
func (c LogConfig) WithFormat(format string) LogConfig {
	c.Format = format
	return c
}
