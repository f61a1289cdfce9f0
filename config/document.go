package config

import (
	"github.com/dep2p/go-didkey/pkg/lib/diddoc"
)

// DocumentConfig DID 文档配置
type DocumentConfig struct {
	// UseJOSEFormat 使用 JsonWebKey2020（publicKeyJwk），否则使用 publicKeyBase58
	UseJOSEFormat bool `json:"use_jose_format" yaml:"use_jose_format"`

	// SerializeSecrets 在文档中输出私钥
	// 默认关闭，只应在导出场景显式开启
	SerializeSecrets bool `json:"serialize_secrets" yaml:"serialize_secrets"`
}

// DefaultDocumentConfig 返回默认文档配置
func DefaultDocumentConfig() DocumentConfig {
	return DocumentConfig{
		UseJOSEFormat:    false, // 默认旧格式：publicKeyBase58
		SerializeSecrets: false, // 默认不输出私钥
	}
}

// Validate 验证文档配置
func (c DocumentConfig) Validate() error {
	return nil
}

// BuilderConfig 转换为 diddoc.Config
func (c DocumentConfig) BuilderConfig() diddoc.Config {
	return diddoc.Config{
		UseJOSEFormat:    c.UseJOSEFormat,
		SerializeSecrets: c.SerializeSecrets,
	}
}

// WithJOSEFormat 设置是否使用 JOSE 格式
func (c DocumentConfig) WithJOSEFormat(enabled bool) DocumentConfig {
	c.UseJOSEFormat = enabled
	return c
}

// WithSerializeSecrets 设置是否输出私钥
func (c DocumentConfig) WithSerializeSecrets(enabled bool) DocumentConfig {
	c.SerializeSecrets = enabled
	return c
}
