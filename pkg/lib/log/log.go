// Package log 提供 go-didkey 的组件日志
//
// 基于 Go 标准库 log/slog 封装。组件通过 Logger(name) 获取 LazyLogger，
// 每次调用都使用当前的 slog.Default()，运行时切换输出无需重建组件。
//
// 日志中只出现密钥类型和截断后的指纹，私钥材料一律通过 Secret 输出为 [REDACTED]。
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// 日志级别常量（从 slog 导出，方便使用）
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// 日志输出格式
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Redacted 私钥材料在日志中的占位文本
const Redacted = "[REDACTED]"

// FingerprintLogLen 日志中保留的指纹字符数
const FingerprintLogLen = 16

// ============================================================================
//                              默认 logger
// ============================================================================

// New 创建 logger
//
// format 为 FormatJSON 时输出 JSON，否则输出文本。
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(format, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SetDefault 设置默认 logger
func SetDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// Setup 按级别和格式重建默认 logger
//
// w 为 nil 时输出到 stderr。
func Setup(w io.Writer, level slog.Level, format string) {
	if w == nil {
		w = os.Stderr
	}
	SetDefault(New(w, level, format))
}

// ParseLevel 解析级别名称（debug/info/warn/error，不区分大小写）
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return LevelInfo, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// ============================================================================
//                              LazyLogger
// ============================================================================

// LazyLogger 懒加载 logger
//
// 使用方式：
//
//	var logger = log.Logger("keys")
//	logger.Debug("key created", log.KeyType(kt))
type LazyLogger struct {
	component string
}

// Logger 返回带组件名的 LazyLogger
func Logger(component string) *LazyLogger {
	return &LazyLogger{component: component}
}

// Component 返回组件名
func (l *LazyLogger) Component() string {
	return l.component
}

func (l *LazyLogger) logger() *slog.Logger {
	return slog.Default().With("component", l.component)
}

// Debug 输出 Debug 级别日志
func (l *LazyLogger) Debug(msg string, args ...any) {
	l.logger().Debug(msg, args...)
}

// Info 输出 Info 级别日志
func (l *LazyLogger) Info(msg string, args ...any) {
	l.logger().Info(msg, args...)
}

// Warn 输出 Warn 级别日志
func (l *LazyLogger) Warn(msg string, args ...any) {
	l.logger().Warn(msg, args...)
}

// Error 输出 Error 级别日志
func (l *LazyLogger) Error(msg string, args ...any) {
	l.logger().Error(msg, args...)
}

// DebugContext 带 context 的 Debug 日志
func (l *LazyLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger().DebugContext(ctx, msg, args...)
}

// InfoContext 带 context 的 Info 日志
func (l *LazyLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger().InfoContext(ctx, msg, args...)
}

// With 添加额外的属性
func (l *LazyLogger) With(args ...any) *slog.Logger {
	return l.logger().With(args...)
}

// ============================================================================
//                              属性
// ============================================================================

// Secret 私钥材料属性，值固定为 [REDACTED]
func Secret(name string) slog.Attr {
	return slog.String(name, Redacted)
}

// Fingerprint 截断后的指纹属性
func Fingerprint(fp string) slog.Attr {
	return slog.String("fingerprint", Truncate(fp, FingerprintLogLen))
}

// KeyType 密钥类型属性
func KeyType(kt fmt.Stringer) slog.Attr {
	return slog.String("key_type", kt.String())
}

// Err 错误属性
func Err(err error) slog.Attr {
	return slog.Any("error", err)
}

// Truncate 安全截取字符串用于日志显示
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
