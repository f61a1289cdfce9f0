package keys

import (
	stdcrypto "crypto"
	"crypto/ecdh"
	"fmt"
	"log/slog"

	"github.com/mr-tron/base58"

	"github.com/dep2p/go-didkey/pkg/lib/crypto"
	"github.com/dep2p/go-didkey/pkg/lib/fingerprint"
	"github.com/dep2p/go-didkey/pkg/lib/log"
)

// DIDPrefix did:key URI 前缀
const DIDPrefix = "did:key:"

// ============================================================================
//                              Key
// ============================================================================

// Key did:key 密钥句柄
//
// 持有一种算法的 KeyPair，指纹在构造时计算并缓存。
// 构造后只读（Wipe 除外），可在多个 goroutine 间共享。
type Key struct {
	kp          *crypto.KeyPair
	fingerprint string
}

// 确保实现接口
var _ slog.LogValuer = (*Key)(nil)

// newKey 从密钥对创建 Key 并计算指纹
func newKey(kp *crypto.KeyPair) (*Key, error) {
	fp, err := fingerprint.Encode(kp.Type(), kp.PublicKeyBytes())
	if err != nil {
		return nil, err
	}
	return &Key{kp: kp, fingerprint: fp}, nil
}

// Type 返回密钥类型
func (k *Key) Type() crypto.KeyType {
	return k.kp.Type()
}

// KeyPair 返回底层密钥对
func (k *Key) KeyPair() *crypto.KeyPair {
	return k.kp
}

// ============================================================================
//                              标识
// ============================================================================

// Fingerprint 返回公钥指纹（"z" 开头）
func (k *Key) Fingerprint() string {
	return k.fingerprint
}

// DID 返回 did:key URI
func (k *Key) DID() string {
	return DIDPrefix + k.fingerprint
}

// KeyID 返回自引用的验证方法 ID：did:key:<fp>#<fp>
func (k *Key) KeyID() string {
	return k.DID() + "#" + k.fingerprint
}

// ============================================================================
//                              密钥材料
// ============================================================================

// PublicKey 返回公钥字节副本
func (k *Key) PublicKey() []byte {
	return k.kp.PublicKeyBytes()
}

// PublicKeyBase58 返回公钥的 base58-btc 编码（不含 multicodec 前缀）
func (k *Key) PublicKeyBase58() string {
	return base58.Encode(k.kp.PublicKeyBytes())
}

// SecretKey 返回私钥字节副本
func (k *Key) SecretKey() ([]byte, bool) {
	return k.kp.SecretKeyBytes()
}

// HasSecretKey 是否持有私钥
func (k *Key) HasSecretKey() bool {
	return k.kp.HasSecretKey()
}

// CryptoPublicKey 返回标准库公钥
//
// Ed25519 返回 ed25519.PublicKey，P256 返回 *ecdsa.PublicKey，X25519 返回 *ecdh.PublicKey。
func (k *Key) CryptoPublicKey() (stdcrypto.PublicKey, error) {
	switch pub := k.kp.PublicKey().(type) {
	case *crypto.Ed25519PublicKey:
		return pub.CryptoKey(), nil
	case *crypto.P256PublicKey:
		return pub.CryptoKey(), nil
	case *crypto.X25519PublicKey:
		raw, _ := pub.Raw()
		out, err := ecdh.X25519().NewPublicKey(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", crypto.ErrInvalidPublicKey, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", crypto.ErrUnsupportedKeyType, k.Type())
	}
}

// CryptoPrivateKey 返回标准库私钥
//
// Ed25519 返回 ed25519.PrivateKey，P256 返回 *ecdsa.PrivateKey，X25519 返回 *ecdh.PrivateKey。
func (k *Key) CryptoPrivateKey() (stdcrypto.PrivateKey, error) {
	priv, ok := k.kp.PrivateKey()
	if !ok {
		return nil, crypto.ErrSecretKeyAbsent
	}
	switch sk := priv.(type) {
	case *crypto.Ed25519PrivateKey:
		return sk.CryptoKey(), nil
	case *crypto.P256PrivateKey:
		return sk.CryptoKey(), nil
	case *crypto.X25519PrivateKey:
		raw, _ := sk.Raw()
		defer crypto.Wipe(raw)
		out, err := ecdh.X25519().NewPrivateKey(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", crypto.ErrInvalidPrivateKey, err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", crypto.ErrUnsupportedKeyType, k.Type())
	}
}

// ============================================================================
//                              操作
// ============================================================================

// Sign 签名
func (k *Key) Sign(payload crypto.Payload) ([]byte, error) {
	return k.kp.Sign(payload)
}

// Verify 验证签名，成功返回 nil
func (k *Key) Verify(payload crypto.Payload, sig []byte) error {
	return k.kp.Verify(payload, sig)
}

// KeyExchange 与另一个密钥计算共享密钥
func (k *Key) KeyExchange(other *Key) ([]byte, error) {
	if other == nil {
		return nil, crypto.ErrNilPublicKey
	}
	return k.kp.KeyExchange(other.kp)
}

// ToX25519 将 Ed25519 密钥转换为 X25519 密钥
func (k *Key) ToX25519() (*Key, error) {
	xkp, err := k.kp.ToX25519()
	if err != nil {
		return nil, err
	}
	if xkp == k.kp {
		return k, nil
	}
	return newKey(xkp)
}

// Equal 公钥是否相同
func (k *Key) Equal(other *Key) bool {
	if other == nil {
		return false
	}
	return k.kp.PublicKey().Equals(other.kp.PublicKey())
}

// Wipe 清零私钥，之后 Key 只含公钥
func (k *Key) Wipe() {
	k.kp.Wipe()
}

// ============================================================================
//                              输出
// ============================================================================

// String 返回 "类型(指纹)"，不含私钥
func (k *Key) String() string {
	return fmt.Sprintf("%s(%s)", k.Type(), k.fingerprint)
}

// LogValue 日志输出，只包含类型和截断指纹
func (k *Key) LogValue() slog.Value {
	return slog.GroupValue(
		log.KeyType(k.Type()),
		log.Fingerprint(k.fingerprint),
		slog.Bool("has_secret", k.HasSecretKey()),
	)
}
