package didkey

import (
	"io"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/dep2p/go-didkey/config"
	"github.com/dep2p/go-didkey/internal/core/keyregistry"
	"github.com/dep2p/go-didkey/pkg/lib/diddoc"
	"github.com/dep2p/go-didkey/pkg/lib/keys"
)

// buildFxApp 构建 Fx 应用
func buildFxApp(o *options, svc *Service) *fx.App {
	modules := []fx.Option{
		fx.Supply(o.config),
	}

	// 随机源（可选）
	if o.random != nil {
		rnd := o.random
		modules = append(modules, fx.Provide(
			fx.Annotate(
				func() io.Reader { return rnd },
				fx.ResultTags(`name:"random_source"`),
			),
		))
	}

	modules = append(modules, keyregistry.Module())

	// 用户扩展
	if len(o.userFxOptions) > 0 {
		modules = append(modules, o.userFxOptions...)
	}

	modules = append(modules,
		fx.Invoke(injectServiceComponents(svc)),
		// 禁用 Fx 日志输出（避免干扰用户日志）
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
	)

	return fx.New(modules...)
}

// serviceInjectParams Service 组件注入参数
type serviceInjectParams struct {
	fx.In

	Config   *config.Config
	Registry *keys.Registry    `name:"key_registry"`
	Builder  *diddoc.Builder   `name:"document_builder"`
	Keys     config.KeysConfig `name:"keys_config"`
}

// injectServiceComponents 创建 Service 组件注入函数
func injectServiceComponents(svc *Service) interface{} {
	return func(params serviceInjectParams) {
		svc.config = params.Config
		svc.registry = params.Registry
		svc.builder = params.Builder
		svc.keys = params.Keys
	}
}
