package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stringer string

func (s stringer) String() string { return string(s) }

// captureDefault 临时替换默认 logger
func captureDefault(t *testing.T, format string) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(&buf, LevelDebug, format)
	return &buf
}

// TestLazyLogger_Component 测试组件名输出
func TestLazyLogger_Component(t *testing.T) {
	buf := captureDefault(t, FormatText)

	logger := Logger("keys")
	assert.Equal(t, "keys", logger.Component())
	logger.Debug("key created", KeyType(stringer("Ed25519")))

	out := buf.String()
	assert.Contains(t, out, "component=keys")
	assert.Contains(t, out, "key_type=Ed25519")
}

// TestLazyLogger_FollowsDefault 测试切换默认 logger 后立即生效
func TestLazyLogger_FollowsDefault(t *testing.T) {
	logger := Logger("resolver")
	first := captureDefault(t, FormatText)
	logger.Info("one")

	var second bytes.Buffer
	SetDefault(New(&second, LevelInfo, FormatText))
	logger.Info("two")

	assert.Contains(t, first.String(), "one")
	assert.NotContains(t, first.String(), "two")
	assert.Contains(t, second.String(), "two")
}

// TestSecret 测试私钥占位
func TestSecret(t *testing.T) {
	buf := captureDefault(t, FormatJSON)
	Logger("keys").Warn("wipe", Secret("seed"), Err(errors.New("boom")))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, Redacted, rec["seed"])
	assert.Equal(t, "boom", rec["error"])
}

// TestFingerprint 测试指纹截断
func TestFingerprint(t *testing.T) {
	fp := "z6Mkk7yqnGF3YwTrLpqrW6PGsKci7dNqh1CjnvMbzrMerSeL"
	attr := Fingerprint(fp)
	assert.Equal(t, "fingerprint", attr.Key)
	assert.Equal(t, fp[:FingerprintLogLen], attr.Value.String())

	assert.Equal(t, "z6M", Truncate("z6M", 8))
}

// TestParseLevel 测试级别解析
func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warn", LevelWarn},
		{" error ", LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

// TestNew_Format 测试输出格式
func TestNew_Format(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, LevelInfo, "JSON").Info("hello")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))

	buf.Reset()
	New(&buf, LevelWarn, FormatText).Info("filtered")
	assert.Empty(t, buf.String())
}
