package diddoc

import (
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/dep2p/go-didkey/pkg/lib/crypto"
	"github.com/dep2p/go-didkey/pkg/lib/keys"
	"github.com/dep2p/go-didkey/pkg/lib/log"
)

var logger = log.Logger("lib/diddoc")

// ============================================================================
//                              配置
// ============================================================================

// Config 文档生成配置
type Config struct {
	// UseJOSEFormat 使用 JsonWebKey2020 + publicKeyJwk，否则使用 publicKeyBase58
	UseJOSEFormat bool

	// SerializeSecrets 是否输出私钥（默认不输出）
	SerializeSecrets bool
}

// ============================================================================
//                              Builder
// ============================================================================

// Builder 从 did:key 密钥生成 DID 文档
type Builder struct {
	cfg Config
}

// NewBuilder 创建 Builder
func NewBuilder(cfg Config) *Builder {
	return &Builder{cfg: cfg}
}

// Config 返回当前配置
func (b *Builder) Config() Config {
	return b.cfg
}

// Build 生成 DID 文档
//
// Ed25519 文档额外包含派生的 X25519 密钥（keyAgreement）；
// X25519 文档只有 keyAgreement；BLS12-381 返回 ErrNotImplemented。
func (b *Builder) Build(k *keys.Key) (*Document, error) {
	if k == nil {
		return nil, crypto.ErrNilPublicKey
	}
	did := k.DID()

	methods, err := b.VerificationMethods(k, did)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Context:            b.contexts(k.Type()),
		ID:                 did,
		VerificationMethod: methods,
	}

	primary := methods[0].ID
	if k.Type() == crypto.KeyTypeX25519 {
		doc.KeyAgreement = []string{primary}
	} else {
		ref := []string{primary}
		doc.Authentication = ref
		doc.AssertionMethod = ref
		doc.CapabilityDelegation = ref
		doc.CapabilityInvocation = ref
	}
	if len(methods) > 1 {
		doc.KeyAgreement = []string{methods[1].ID}
	}

	logger.Debug("DID 文档已生成", "key", k, "methods", len(methods), "jose", b.cfg.UseJOSEFormat)
	return doc, nil
}

// VerificationMethods 生成密钥对应的验证方法
//
// Ed25519 返回两项：签名密钥和派生的 X25519 密钥。
func (b *Builder) VerificationMethods(k *keys.Key, controller string) ([]VerificationMethod, error) {
	if k == nil {
		return nil, crypto.ErrNilPublicKey
	}

	vm, err := b.method(k, controller)
	if err != nil {
		return nil, err
	}
	methods := []VerificationMethod{vm}

	if k.Type() == crypto.KeyTypeEd25519 {
		x, err := k.ToX25519()
		if err != nil {
			return nil, err
		}
		xvm, err := b.method(x, controller)
		if err != nil {
			return nil, err
		}
		methods = append(methods, xvm)
	}
	return methods, nil
}

// method 生成单个验证方法
func (b *Builder) method(k *keys.Key, controller string) (VerificationMethod, error) {
	if k.Type().IsBLS() {
		return VerificationMethod{}, fmt.Errorf("%w: document for %s keys", crypto.ErrNotImplemented, k.Type())
	}
	vm := VerificationMethod{
		ID:         controller + "#" + k.Fingerprint(),
		Controller: controller,
	}

	if b.cfg.UseJOSEFormat {
		vm.Type = TypeJSONWebKey2020
		jwk, err := publicJWK(k)
		if err != nil {
			return VerificationMethod{}, err
		}
		vm.PublicKeyJwk = jwk
		if b.cfg.SerializeSecrets && k.HasSecretKey() {
			sk, err := privateJWK(k)
			if err != nil {
				return VerificationMethod{}, err
			}
			vm.PrivateKeyJwk = sk
		}
		return vm, nil
	}

	typ, err := legacyType(k.Type())
	if err != nil {
		return VerificationMethod{}, err
	}
	vm.Type = typ
	vm.PublicKeyBase58 = k.PublicKeyBase58()
	if b.cfg.SerializeSecrets {
		if secret, ok := k.SecretKey(); ok {
			vm.PrivateKeyBase58 = base58.Encode(secret)
			crypto.Wipe(secret)
		}
	}
	return vm, nil
}

// legacyType 旧格式的验证方法类型
func legacyType(kt crypto.KeyType) (string, error) {
	switch kt {
	case crypto.KeyTypeEd25519:
		return TypeEd25519VerificationKey2018, nil
	case crypto.KeyTypeX25519:
		return TypeX25519KeyAgreementKey2019, nil
	case crypto.KeyTypeP256:
		return TypeUnsupportedVerificationMethod, nil
	default:
		return "", fmt.Errorf("%w: %s", crypto.ErrUnsupportedKeyType, kt)
	}
}

// contexts 文档的 @context
func (b *Builder) contexts(kt crypto.KeyType) []string {
	if b.cfg.UseJOSEFormat {
		return []string{ContextDIDv1, ContextJWS2020}
	}
	switch kt {
	case crypto.KeyTypeEd25519:
		return []string{ContextDIDv1, ContextEd255192018, ContextX255192019}
	case crypto.KeyTypeX25519:
		return []string{ContextDIDv1, ContextX255192019}
	default:
		return []string{ContextDIDv1}
	}
}
