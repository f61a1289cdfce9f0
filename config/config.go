// Package config 提供 go-didkey 的配置管理
//
// 主 Config 结构体嵌入各子配置，每个子配置在独立文件中定义，
// 支持从 JSON / YAML 加载，并提供预设（legacy / jose / development）。
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Document.UseJOSEFormat = true
//
//	// 从文件加载
//	cfg, err := config.Load("didkey.yaml")
package config

import "go.uber.org/multierr"

// Config 是 go-didkey 的完整配置结构
//
// 配置按照功能模块组织：
//   - Keys: 密钥类型
//   - Document: DID 文档格式
//   - Log: 日志
type Config struct {
	// Keys 密钥配置
	Keys KeysConfig `json:"keys" yaml:"keys"`

	// Document DID 文档配置
	Document DocumentConfig `json:"document" yaml:"document"`

	// Log 日志配置
	Log LogConfig `json:"log" yaml:"log"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	return &Config{
		Keys:     DefaultKeysConfig(),
		Document: DefaultDocumentConfig(),
		Log:      DefaultLogConfig(),
	}
}

// Validate 验证配置的有效性
//
// 检查所有子配置，返回汇总后的全部错误（multierr）。
func (c *Config) Validate() error {
	return multierr.Combine(
		c.Keys.Validate(),
		c.Document.Validate(),
		c.Log.Validate(),
	)
}

// Clone 复制配置
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	cloned := *c
	cloned.Keys.AllowedKeyTypes = append([]string(nil), c.Keys.AllowedKeyTypes...)
	return &cloned
}
