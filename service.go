package didkey

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/fx"

	"github.com/dep2p/go-didkey/config"
	"github.com/dep2p/go-didkey/pkg/lib/diddoc"
	"github.com/dep2p/go-didkey/pkg/lib/keys"
	"github.com/dep2p/go-didkey/pkg/lib/log"
)

var logger = log.Logger("didkey")

// ════════════════════════════════════════════════════════════════════════════
//                              Service
// ════════════════════════════════════════════════════════════════════════════

// Service did:key 服务
//
// 由 fx 装配 Registry 与 Builder，并按配置限制可用的密钥类型。
// 所有密钥操作无需 Start 即可使用；Start/Stop 只驱动模块生命周期。
type Service struct {
	app *fx.App

	config   *config.Config
	registry *keys.Registry
	builder  *diddoc.Builder
	keys     config.KeysConfig

	mu      sync.Mutex
	started bool
	closed  bool
}

// New 创建服务
//
// 示例：
//
//	svc, err := didkey.New(
//	    didkey.WithPreset(config.PresetJOSE),
//	    didkey.WithDefaultKeyType(didkey.P256),
//	)
func New(opts ...Option) (*Service, error) {
	o := newOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	if o.logOutput != nil {
		log.Setup(o.logOutput, o.config.Log.SlogLevel(), o.config.Log.Format)
	}

	svc := &Service{}
	svc.app = buildFxApp(o, svc)
	if err := svc.app.Err(); err != nil {
		return nil, fmt.Errorf("build fx app: %w", err)
	}
	return svc, nil
}

// Start 启动模块生命周期
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrServiceClosed
	}
	if s.started {
		return nil
	}
	if err := s.app.Start(ctx); err != nil {
		return fmt.Errorf("start service: %w", err)
	}
	s.started = true
	return nil
}

// Stop 停止服务，之后不能再次启动
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if !s.started {
		return nil
	}
	if err := s.app.Stop(ctx); err != nil {
		return fmt.Errorf("stop service: %w", err)
	}
	return nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              访问器
// ════════════════════════════════════════════════════════════════════════════

// Config 返回配置副本
func (s *Service) Config() *config.Config {
	return s.config.Clone()
}

// Registry 返回密钥 Registry
func (s *Service) Registry() *keys.Registry {
	return s.registry
}

// Builder 返回文档 Builder
func (s *Service) Builder() *diddoc.Builder {
	return s.builder
}

// ════════════════════════════════════════════════════════════════════════════
//                              密钥
// ════════════════════════════════════════════════════════════════════════════

// Generate 生成配置中默认类型的密钥
func (s *Service) Generate() (*Key, error) {
	return s.GenerateNew(s.keys.DefaultType())
}

// GenerateNew 生成指定类型的密钥
func (s *Service) GenerateNew(kt KeyType) (*Key, error) {
	if err := s.checkAllowed(kt); err != nil {
		return nil, err
	}
	return s.registry.GenerateNew(kt)
}

// FromSeed 从 32 字节种子派生密钥
func (s *Service) FromSeed(kt KeyType, seed []byte) (*Key, error) {
	if err := s.checkAllowed(kt); err != nil {
		return nil, err
	}
	return s.registry.FromSeed(kt, seed)
}

// FromPublicKey 从公钥字节创建只含公钥的密钥
func (s *Service) FromPublicKey(kt KeyType, pub []byte) (*Key, error) {
	if err := s.checkAllowed(kt); err != nil {
		return nil, err
	}
	return s.registry.FromPublicKey(kt, pub)
}

// Resolve 解析 did:key URI
func (s *Service) Resolve(uri string) (*Key, error) {
	k, err := s.registry.Resolve(uri)
	if err != nil {
		return nil, err
	}
	if err := s.checkAllowed(k.Type()); err != nil {
		return nil, err
	}
	return k, nil
}

// ResolveFingerprint 解析指纹
func (s *Service) ResolveFingerprint(fp string) (*Key, error) {
	k, err := s.registry.ResolveFingerprint(fp)
	if err != nil {
		return nil, err
	}
	if err := s.checkAllowed(k.Type()); err != nil {
		return nil, err
	}
	return k, nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              文档
// ════════════════════════════════════════════════════════════════════════════

// Document 为密钥生成 DID 文档
func (s *Service) Document(k *Key) (*Document, error) {
	return s.builder.Build(k)
}

// ResolveDocument 解析 did:key URI 并生成 DID 文档
func (s *Service) ResolveDocument(uri string) (*Document, error) {
	k, err := s.Resolve(uri)
	if err != nil {
		return nil, err
	}
	return s.builder.Build(k)
}

// checkAllowed 按配置检查密钥类型
func (s *Service) checkAllowed(kt KeyType) error {
	if s.keys.Allows(kt) {
		return nil
	}
	logger.Debug("密钥类型不在允许列表中", log.KeyType(kt))
	return fmt.Errorf("%w: %s is not allowed by configuration", ErrUnsupportedKeyType, kt)
}
