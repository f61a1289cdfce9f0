package didkey

import (
	"fmt"
	"io"

	"go.uber.org/fx"

	"github.com/dep2p/go-didkey/config"
)

// Option 用户配置选项函数
type Option func(*options) error

// options 内部选项结构
type options struct {
	config *config.Config

	// 随机源（nil 表示 crypto/rand）
	random io.Reader

	// 日志输出（nil 表示不修改全局 logger）
	logOutput io.Writer

	// 用户扩展
	userFxOptions []fx.Option
}

func newOptions() *options {
	return &options{config: config.NewConfig()}
}

// WithConfig 使用完整配置
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return fmt.Errorf("配置不能为空")
		}
		o.config = cfg.Clone()
		return nil
	}
}

// WithConfigFile 从 JSON / YAML 文件加载配置
func WithConfigFile(path string) Option {
	return func(o *options) error {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		o.config = cfg
		return nil
	}
}

// WithPreset 应用预设（legacy / jose / development）
func WithPreset(name string) Option {
	return func(o *options) error {
		return config.ApplyPreset(o.config, name)
	}
}

// WithDefaultKeyType 设置 Generate 使用的密钥类型
func WithDefaultKeyType(kt KeyType) Option {
	return func(o *options) error {
		if !kt.Valid() {
			return fmt.Errorf("%w: %s", ErrUnsupportedKeyType, kt)
		}
		o.config.Keys = o.config.Keys.WithDefaultKeyType(kt)
		return nil
	}
}

// WithAllowedKeyTypes 限制可生成和解析的密钥类型
func WithAllowedKeyTypes(types ...KeyType) Option {
	return func(o *options) error {
		o.config.Keys = o.config.Keys.WithAllowedKeyTypes(types...)
		return nil
	}
}

// WithJOSEFormat 文档使用 JsonWebKey2020
func WithJOSEFormat(enabled bool) Option {
	return func(o *options) error {
		o.config.Document = o.config.Document.WithJOSEFormat(enabled)
		return nil
	}
}

// WithSerializeSecrets 文档中输出私钥
func WithSerializeSecrets(enabled bool) Option {
	return func(o *options) error {
		o.config.Document = o.config.Document.WithSerializeSecrets(enabled)
		return nil
	}
}

// WithRandom 注入随机源，测试时可用确定性 Reader
func WithRandom(r io.Reader) Option {
	return func(o *options) error {
		o.random = r
		return nil
	}
}

// WithLogOutput 按配置的级别与格式把日志输出到 w
func WithLogOutput(w io.Writer) Option {
	return func(o *options) error {
		if w == nil {
			return fmt.Errorf("日志输出不能为空")
		}
		o.logOutput = w
		return nil
	}
}

// WithFxOptions 追加 fx 选项
func WithFxOptions(opts ...fx.Option) Option {
	return func(o *options) error {
		o.userFxOptions = append(o.userFxOptions, opts...)
		return nil
	}
}
