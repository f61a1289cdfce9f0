package crypto

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/curve25519"
)

// X25519 密钥常量
const (
	// X25519KeySize X25519 公钥/私钥大小（32 字节）
	X25519KeySize = curve25519.ScalarSize
	// X25519SharedSecretSize 共享密钥大小（32 字节）
	X25519SharedSecretSize = curve25519.PointSize
)

// ============================================================================
//                              X25519PublicKey
// ============================================================================

// X25519PublicKey X25519 公钥实现
type X25519PublicKey struct {
	k [X25519KeySize]byte
}

// Raw 返回原始公钥字节（32 字节）
func (k *X25519PublicKey) Raw() ([]byte, error) {
	buf := make([]byte, X25519KeySize)
	copy(buf, k.k[:])
	return buf, nil
}

// Type 返回密钥类型
func (k *X25519PublicKey) Type() KeyType {
	return KeyTypeX25519
}

// Equals 比较两个公钥是否相等
func (k *X25519PublicKey) Equals(other Key) bool {
	xk, ok := other.(*X25519PublicKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return subtle.ConstantTimeCompare(k.k[:], xk.k[:]) == 1
}

// Verify X25519 只用于密钥交换，不能验证签名
func (k *X25519PublicKey) Verify(_, _ []byte) (bool, error) {
	return false, fmt.Errorf("%w: X25519 keys cannot verify signatures", ErrUnsupportedOperation)
}

// ============================================================================
//                              X25519PrivateKey
// ============================================================================

// X25519PrivateKey X25519 私钥实现
//
// 私钥在构造时按 RFC 7748 钳位。
type X25519PrivateKey struct {
	k   [X25519KeySize]byte
	pub [X25519KeySize]byte
}

// 确保实现接口
var _ KeyAgreement = (*X25519PrivateKey)(nil)

// Raw 返回钳位后的私钥标量（32 字节）
func (k *X25519PrivateKey) Raw() ([]byte, error) {
	buf := make([]byte, X25519KeySize)
	copy(buf, k.k[:])
	return buf, nil
}

// Type 返回密钥类型
func (k *X25519PrivateKey) Type() KeyType {
	return KeyTypeX25519
}

// Equals 比较两个私钥是否相等
func (k *X25519PrivateKey) Equals(other Key) bool {
	xk, ok := other.(*X25519PrivateKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return subtle.ConstantTimeCompare(k.k[:], xk.k[:]) == 1
}

// GetPublic 返回对应的公钥
func (k *X25519PrivateKey) GetPublic() PublicKey {
	return &X25519PublicKey{k: k.pub}
}

// Sign X25519 不能签名
func (k *X25519PrivateKey) Sign(_ []byte) ([]byte, error) {
	return nil, fmt.Errorf("%w: X25519 keys cannot sign", ErrUnsupportedOperation)
}

// ECDH 计算 X25519 共享密钥
//
// 对方公钥必须同为 X25519；低阶点导致全零输出时返回 ErrInvalidPublicKey。
func (k *X25519PrivateKey) ECDH(their PublicKey) ([]byte, error) {
	if their == nil {
		return nil, ErrNilPublicKey
	}
	xp, ok := their.(*X25519PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: cannot exchange X25519 with %s", ErrKeyTypeMismatch, their.Type())
	}
	shared, err := curve25519.X25519(k.k[:], xp.k[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return shared, nil
}

// Wipe 清零私钥
func (k *X25519PrivateKey) Wipe() {
	Wipe(k.k[:])
}

// ============================================================================
//                              工厂函数
// ============================================================================

// NewX25519PrivateKeyFromSeed 从 32 字节种子派生 X25519 私钥
func NewX25519PrivateKeyFromSeed(seed []byte) (PrivateKey, error) {
	if len(seed) != X25519KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSeed, X25519KeySize, len(seed))
	}
	return newX25519PrivateKey(seed), nil
}

// newX25519PrivateKey 钳位标量并计算公钥
func newX25519PrivateKey(scalar []byte) *X25519PrivateKey {
	k := &X25519PrivateKey{}
	copy(k.k[:], scalar)
	clamp(&k.k)
	curve25519.ScalarBaseMult(&k.pub, &k.k)
	return k
}

// UnmarshalX25519PublicKey 从字节反序列化 X25519 公钥（32 字节）
func UnmarshalX25519PublicKey(data []byte) (PublicKey, error) {
	if len(data) != X25519KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidKeySize, X25519KeySize, len(data))
	}
	k := &X25519PublicKey{}
	copy(k.k[:], data)
	return k, nil
}

// clamp RFC 7748 标量钳位
func clamp(k *[X25519KeySize]byte) {
	k[0] &= 248
	k[31] &= 127
	k[31] |= 64
}
