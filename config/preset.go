package config

import (
	"fmt"

	"github.com/dep2p/go-didkey/pkg/lib/crypto"
)

// 预设名称
const (
	PresetLegacy      = "legacy"
	PresetJOSE        = "jose"
	PresetDevelopment = "development"
)

// ApplyPreset 应用预设配置
//
// 支持的预设：
//   - "legacy": Ed25519 + publicKeyBase58 文档（默认）
//   - "jose": JsonWebKey2020 文档
//   - "development": debug 日志
func ApplyPreset(cfg *Config, presetName string) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	switch presetName {
	case PresetLegacy:
		cfg.Keys = cfg.Keys.WithDefaultKeyType(crypto.KeyTypeEd25519)
		cfg.Document = cfg.Document.WithJOSEFormat(false)
	case PresetJOSE:
		cfg.Document = cfg.Document.WithJOSEFormat(true)
	case PresetDevelopment:
		cfg.Log = cfg.Log.WithLevel("debug")
	default:
		return fmt.Errorf("unknown preset: %s", presetName)
	}
	return nil
}

// MustValidate 验证配置，如果失败则 panic
//
// 仅用于初始化阶段或测试代码。
func MustValidate(c *Config) {
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("config validation failed: %v", err))
	}
}
