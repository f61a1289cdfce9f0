// Package keyregistry 提供密钥注册模块的 fx 装配
//
// 模块负责：
// - 按配置创建 keys.Registry（可注入随机源，可选解析缓存）
// - 按配置创建 diddoc.Builder
// - 生命周期日志
package keyregistry

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/fx"

	"github.com/dep2p/go-didkey/config"
	"github.com/dep2p/go-didkey/pkg/lib/diddoc"
	"github.com/dep2p/go-didkey/pkg/lib/keys"
	"github.com/dep2p/go-didkey/pkg/lib/log"
)

var logger = log.Logger("core/keyregistry")

// ============================================================================
//                              模块输入依赖
// ============================================================================

// ModuleInput 定义模块输入依赖
type ModuleInput struct {
	fx.In

	// 配置（可选，使用默认配置）
	Config *config.Config `optional:"true"`

	// 随机源（可选，默认 crypto/rand）
	Random io.Reader `name:"random_source" optional:"true"`
}

// ============================================================================
//                              模块输出服务
// ============================================================================

// ModuleOutput 定义模块输出服务
type ModuleOutput struct {
	fx.Out

	Registry *keys.Registry    `name:"key_registry"`
	Builder  *diddoc.Builder   `name:"document_builder"`
	Keys     config.KeysConfig `name:"keys_config"`
}

// ============================================================================
//                              服务提供
// ============================================================================

// ProvideServices 提供模块服务
func ProvideServices(input ModuleInput) (ModuleOutput, error) {
	cfg := config.NewConfig()
	if input.Config != nil {
		cfg = input.Config
	}
	if err := cfg.Validate(); err != nil {
		return ModuleOutput{}, fmt.Errorf("配置无效: %w", err)
	}

	opts := []keys.Option{keys.WithResolveCache(cfg.Keys.ResolveCacheSize)}
	if input.Random != nil {
		opts = append(opts, keys.WithRandom(input.Random))
	}

	return ModuleOutput{
		Registry: keys.NewRegistry(opts...),
		Builder:  diddoc.NewBuilder(cfg.Document.BuilderConfig()),
		Keys:     cfg.Keys,
	}, nil
}

// ============================================================================
//                              模块定义
// ============================================================================

// Module 返回 fx 模块配置
func Module() fx.Option {
	return fx.Module(Name,
		fx.Provide(ProvideServices),
		fx.Invoke(registerLifecycle),
	)
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In
	LC      fx.Lifecycle
	Builder *diddoc.Builder   `name:"document_builder"`
	Keys    config.KeysConfig `name:"keys_config"`
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("密钥模块已启动",
				"default_key_type", input.Keys.DefaultType().String(),
				"jose", input.Builder.Config().UseJOSEFormat,
				"serialize_secrets", input.Builder.Config().SerializeSecrets)
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("密钥模块已停止")
			return nil
		},
	})
}

// ============================================================================
//                              模块元信息
// ============================================================================

// 模块元信息常量
const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "keyregistry"
)
