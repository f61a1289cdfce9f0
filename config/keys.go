package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/dep2p/go-didkey/pkg/lib/crypto"
)

// KeysConfig 密钥配置
type KeysConfig struct {
	// DefaultKeyType 未指定类型时生成的密钥类型
	// 可选值: "Ed25519", "X25519", "P256", "Bls12381G1", "Bls12381G2"
	DefaultKeyType string `json:"default_key_type" yaml:"default_key_type"`

	// AllowedKeyTypes 允许生成和解析的密钥类型，空表示全部允许
	AllowedKeyTypes []string `json:"allowed_key_types,omitempty" yaml:"allowed_key_types,omitempty"`

	// ResolveCacheSize 解析缓存容量，0 表示不缓存
	ResolveCacheSize int `json:"resolve_cache_size" yaml:"resolve_cache_size"`
}

// DefaultKeysConfig 返回默认密钥配置
func DefaultKeysConfig() KeysConfig {
	return KeysConfig{
		DefaultKeyType:   crypto.KeyTypeEd25519.String(),
		ResolveCacheSize: 256,
	}
}

// Validate 验证密钥配置
func (c KeysConfig) Validate() error {
	var errs error
	kt, ok := crypto.ParseKeyType(c.DefaultKeyType)
	if !ok {
		errs = multierr.Append(errs, fmt.Errorf("invalid default key type %q", c.DefaultKeyType))
	}
	for _, name := range c.AllowedKeyTypes {
		if _, ok := crypto.ParseKeyType(name); !ok {
			errs = multierr.Append(errs, fmt.Errorf("invalid allowed key type %q", name))
		}
	}
	if c.ResolveCacheSize < 0 {
		errs = multierr.Append(errs, fmt.Errorf("resolve cache size must be >= 0, got %d", c.ResolveCacheSize))
	}
	if ok && !c.Allows(kt) {
		errs = multierr.Append(errs, fmt.Errorf("default key type %s is not in allowed key types", kt))
	}
	return errs
}

// DefaultType 返回解析后的默认密钥类型
func (c KeysConfig) DefaultType() crypto.KeyType {
	kt, ok := crypto.ParseKeyType(c.DefaultKeyType)
	if !ok {
		return crypto.KeyTypeEd25519
	}
	return kt
}

// Allows 是否允许该密钥类型
func (c KeysConfig) Allows(kt crypto.KeyType) bool {
	if len(c.AllowedKeyTypes) == 0 {
		return kt.Valid()
	}
	for _, name := range c.AllowedKeyTypes {
		if allowed, ok := crypto.ParseKeyType(name); ok && allowed == kt {
			return true
		}
	}
	return false
}

// WithDefaultKeyType 设置默认密钥类型
func (c KeysConfig) WithDefaultKeyType(kt crypto.KeyType) KeysConfig {
	c.DefaultKeyType = kt.String()
	return c
}

// WithAllowedKeyTypes 设置允许的密钥类型
func (c KeysConfig) WithAllowedKeyTypes(types ...crypto.KeyType) KeysConfig {
	c.AllowedKeyTypes = make([]string, 0, len(types))
	for _, kt := range types {
		c.AllowedKeyTypes = append(c.AllowedKeyTypes, kt.String())
	}
	return c
}

// WithResolveCacheSize 设置解析缓存容量
func (c KeysConfig) WithResolveCacheSize(size int) KeysConfig {
	c.ResolveCacheSize = size
	return c
}
