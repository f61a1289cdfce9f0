package keys

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dep2p/go-didkey/pkg/lib/crypto"
	"github.com/dep2p/go-didkey/pkg/lib/fingerprint"
	"github.com/dep2p/go-didkey/pkg/lib/log"
)

var logger = log.Logger("lib/keys")

// ============================================================================
//                              Registry
// ============================================================================

// Option Registry 配置选项
type Option func(*Registry)

// WithRandom 设置随机源（nil 表示 crypto/rand）
func WithRandom(rnd io.Reader) Option {
	return func(r *Registry) {
		r.rnd = rnd
	}
}

// WithResolveCache 缓存最近解析的指纹，size <= 0 表示不缓存
//
// 缓存中只有公钥，命中时返回同一个 *Key。
func WithResolveCache(size int) Option {
	return func(r *Registry) {
		if size <= 0 {
			r.cache = nil
			return
		}
		cache, err := lru.New[string, *Key](size)
		if err != nil {
			return
		}
		r.cache = cache
	}
}

// Registry 密钥构造与解析入口
//
// 按 KeyType 分派到 crypto 层，并为结果计算指纹。可并发使用。
type Registry struct {
	rnd   io.Reader
	cache *lru.Cache[string, *Key]
}

// NewRegistry 创建 Registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GenerateNew 使用随机种子生成新密钥
func (r *Registry) GenerateNew(kt crypto.KeyType) (*Key, error) {
	return r.FromSeed(kt, nil)
}

// FromSeed 从种子派生密钥
//
// seed 为 32 字节时结果确定；为空时从随机源读取；其他长度返回 ErrInvalidSeed。
func (r *Registry) FromSeed(kt crypto.KeyType, seed []byte) (*Key, error) {
	kp, err := crypto.NewKeyPairFromSeed(kt, seed, r.rnd)
	if err != nil {
		logger.Debug("创建密钥失败", log.KeyType(kt), log.Err(err))
		return nil, err
	}
	return r.FromKeyPair(kp)
}

// FromPublicKey 从公钥字节创建只含公钥的密钥
func (r *Registry) FromPublicKey(kt crypto.KeyType, pub []byte) (*Key, error) {
	kp, err := crypto.NewKeyPairFromPublicKey(kt, pub)
	if err != nil {
		logger.Debug("解析公钥失败", log.KeyType(kt), log.Err(err))
		return nil, err
	}
	return r.FromKeyPair(kp)
}

// FromKeyPair 包装已有密钥对
func (r *Registry) FromKeyPair(kp *crypto.KeyPair) (*Key, error) {
	if kp == nil {
		return nil, crypto.ErrNilPublicKey
	}
	k, err := newKey(kp)
	if err != nil {
		return nil, err
	}
	logger.Debug("密钥已创建", "key", k)
	return k, nil
}

// ============================================================================
//                              解析
// ============================================================================

// Resolve 解析 did:key URI
//
// 有片段时使用片段，否则去掉 "did:key:" 前缀；自引用片段与无片段形式结果一致。
func (r *Registry) Resolve(uri string) (*Key, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", crypto.ErrInvalidDIDURI, err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("%w: missing scheme", crypto.ErrInvalidDIDURI)
	}

	fp := u.Fragment
	if fp == "" {
		fp = strings.TrimPrefix(uri, DIDPrefix)
	}
	return r.ResolveFingerprint(fp)
}

// ResolveFingerprint 解析指纹
func (r *Registry) ResolveFingerprint(fp string) (*Key, error) {
	if r.cache != nil {
		if k, ok := r.cache.Get(fp); ok {
			return k, nil
		}
	}

	kt, pub, err := fingerprint.Decode(fp)
	if err != nil {
		logger.Debug("解析指纹失败", log.Fingerprint(fp), log.Err(err))
		return nil, err
	}
	k, err := r.FromPublicKey(kt, pub)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		r.cache.Add(fp, k)
	}
	return k, nil
}

// CachedKeys 返回解析缓存中的条目数，未启用缓存时为 0
func (r *Registry) CachedKeys() int {
	if r.cache == nil {
		return 0
	}
	return r.cache.Len()
}

// ============================================================================
//                              默认 Registry
// ============================================================================

var defaultRegistry = NewRegistry()

// Default 返回使用 crypto/rand 的默认 Registry
func Default() *Registry {
	return defaultRegistry
}

// GenerateNew 使用默认 Registry 生成密钥
func GenerateNew(kt crypto.KeyType) (*Key, error) {
	return defaultRegistry.GenerateNew(kt)
}

// FromSeed 使用默认 Registry 从种子派生密钥
func FromSeed(kt crypto.KeyType, seed []byte) (*Key, error) {
	return defaultRegistry.FromSeed(kt, seed)
}

// FromPublicKey 使用默认 Registry 从公钥创建密钥
func FromPublicKey(kt crypto.KeyType, pub []byte) (*Key, error) {
	return defaultRegistry.FromPublicKey(kt, pub)
}

// Resolve 使用默认 Registry 解析 did:key URI
func Resolve(uri string) (*Key, error) {
	return defaultRegistry.Resolve(uri)
}

// ResolveFingerprint 使用默认 Registry 解析指纹
func ResolveFingerprint(fp string) (*Key, error) {
	return defaultRegistry.ResolveFingerprint(fp)
}
