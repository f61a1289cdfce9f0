package crypto

import (
	"crypto/ed25519"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"

	"filippo.io/edwards25519"
)

// Ed25519 密钥常量
const (
	// Ed25519PublicKeySize Ed25519 公钥大小（32 字节）
	Ed25519PublicKeySize = ed25519.PublicKeySize
	// Ed25519SignatureSize Ed25519 签名大小（64 字节）
	Ed25519SignatureSize = ed25519.SignatureSize
	// Ed25519SeedSize Ed25519 种子大小（32 字节）
	Ed25519SeedSize = ed25519.SeedSize
)

// ============================================================================
//                              Ed25519PublicKey
// ============================================================================

// Ed25519PublicKey Ed25519 公钥实现
type Ed25519PublicKey struct {
	k ed25519.PublicKey
}

// Raw 返回原始公钥字节（32 字节）
func (k *Ed25519PublicKey) Raw() ([]byte, error) {
	buf := make([]byte, len(k.k))
	copy(buf, k.k)
	return buf, nil
}

// Type 返回密钥类型
func (k *Ed25519PublicKey) Type() KeyType {
	return KeyTypeEd25519
}

// Equals 比较两个公钥是否相等
func (k *Ed25519PublicKey) Equals(other Key) bool {
	ek, ok := other.(*Ed25519PublicKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return subtle.ConstantTimeCompare(k.k, ek.k) == 1
}

// Verify 使用此公钥验证签名
//
// 签名长度不是 64 字节时返回 ErrMalformedSignature。
func (k *Ed25519PublicKey) Verify(data, sig []byte) (bool, error) {
	if len(sig) != Ed25519SignatureSize {
		return false, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedSignature, Ed25519SignatureSize, len(sig))
	}
	return ed25519.Verify(k.k, data, sig), nil
}

// CryptoKey 返回标准库公钥（副本）
func (k *Ed25519PublicKey) CryptoKey() ed25519.PublicKey {
	buf := make(ed25519.PublicKey, len(k.k))
	copy(buf, k.k)
	return buf
}

// ToX25519 通过双有理映射转换为 X25519 公钥
func (k *Ed25519PublicKey) ToX25519() (*X25519PublicKey, error) {
	p, err := new(edwards25519.Point).SetBytes(k.k)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	out := &X25519PublicKey{}
	copy(out.k[:], p.BytesMontgomery())
	return out, nil
}

// ============================================================================
//                              Ed25519PrivateKey
// ============================================================================

// Ed25519PrivateKey Ed25519 私钥实现
type Ed25519PrivateKey struct {
	k ed25519.PrivateKey
}

// Raw 返回私钥种子（32 字节）
//
// did:key 中 Ed25519 私钥以种子形式表示，完整 64 字节私钥可由种子派生。
func (k *Ed25519PrivateKey) Raw() ([]byte, error) {
	return k.k.Seed(), nil
}

// Type 返回密钥类型
func (k *Ed25519PrivateKey) Type() KeyType {
	return KeyTypeEd25519
}

// Equals 比较两个私钥是否相等
func (k *Ed25519PrivateKey) Equals(other Key) bool {
	ek, ok := other.(*Ed25519PrivateKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return subtle.ConstantTimeCompare(k.k, ek.k) == 1
}

// GetPublic 返回对应的公钥
func (k *Ed25519PrivateKey) GetPublic() PublicKey {
	pub := make(ed25519.PublicKey, Ed25519PublicKeySize)
	copy(pub, k.k[Ed25519SeedSize:])
	return &Ed25519PublicKey{k: pub}
}

// Sign 使用此私钥签名数据
func (k *Ed25519PrivateKey) Sign(data []byte) ([]byte, error) {
	return ed25519.Sign(k.k, data), nil
}

// Wipe 清零私钥
func (k *Ed25519PrivateKey) Wipe() {
	Wipe(k.k)
}

// CryptoKey 返回标准库私钥（副本）
func (k *Ed25519PrivateKey) CryptoKey() ed25519.PrivateKey {
	buf := make(ed25519.PrivateKey, len(k.k))
	copy(buf, k.k)
	return buf
}

// ToX25519 派生对应的 X25519 私钥
//
// 标量为 SHA-512(seed) 的前 32 字节并按 RFC 7748 钳位，
// 与 ToX25519 转换后的公钥一致。
func (k *Ed25519PrivateKey) ToX25519() *X25519PrivateKey {
	h := sha512.Sum512(k.k.Seed())
	defer Wipe(h[:])
	return newX25519PrivateKey(h[:32])
}

// ============================================================================
//                              工厂函数
// ============================================================================

// NewEd25519PrivateKeyFromSeed 从 32 字节种子确定性派生 Ed25519 私钥
func NewEd25519PrivateKeyFromSeed(seed []byte) (PrivateKey, error) {
	if len(seed) != Ed25519SeedSize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSeed, Ed25519SeedSize, len(seed))
	}
	return &Ed25519PrivateKey{k: ed25519.NewKeyFromSeed(seed)}, nil
}

// UnmarshalEd25519PublicKey 从字节反序列化 Ed25519 公钥
//
// 参数：
//   - data: 原始公钥字节（32 字节，必须是有效的压缩 Edwards 点）
func UnmarshalEd25519PublicKey(data []byte) (PublicKey, error) {
	if len(data) != Ed25519PublicKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeySize, Ed25519PublicKeySize, len(data))
	}
	if _, err := new(edwards25519.Point).SetBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}

	k := make([]byte, Ed25519PublicKeySize)
	copy(k, data)
	return &Ed25519PublicKey{k: k}, nil
}
