package crypto

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"math/big"
)

// P-256 密钥常量
const (
	// P256PrivateKeySize P-256 私钥标量大小（32 字节）
	P256PrivateKeySize = 32
	// P256RawPublicKeySize 不带前缀的 X||Y 坐标（64 字节）
	P256RawPublicKeySize = 64
	// P256PublicKeySize 未压缩公钥大小（65 字节，0x04 前缀）
	P256PublicKeySize = 65
	// P256SignatureSize 签名大小（64 字节，R||S）
	P256SignatureSize = 64

	p256UncompressedPrefix = 0x04
)

// ============================================================================
//                              P256PublicKey
// ============================================================================

// P256PublicKey NIST P-256 公钥实现
type P256PublicKey struct {
	k *ecdsa.PublicKey
}

// Raw 返回未压缩格式的公钥字节（65 字节）
func (k *P256PublicKey) Raw() ([]byte, error) {
	return marshalP256Uncompressed(k.k), nil
}

// Type 返回密钥类型
func (k *P256PublicKey) Type() KeyType {
	return KeyTypeP256
}

// Equals 比较两个公钥是否相等
func (k *P256PublicKey) Equals(other Key) bool {
	pk, ok := other.(*P256PublicKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return k.k.X.Cmp(pk.k.X) == 0 && k.k.Y.Cmp(pk.k.Y) == 0
}

// Verify 使用此公钥验证签名
//
// 签名格式为 64 字节：R (32 字节) + S (32 字节)，摘要为 SHA-256。
// 长度不符时返回 ErrMalformedSignature。
func (k *P256PublicKey) Verify(data, sig []byte) (bool, error) {
	if len(sig) != P256SignatureSize {
		return false, fmt.Errorf("%w: expected %d bytes, got %d", ErrMalformedSignature, P256SignatureSize, len(sig))
	}

	hash := sha256.Sum256(data)
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])

	return ecdsa.Verify(k.k, hash[:], r, s), nil
}

// CryptoKey 返回标准库公钥
func (k *P256PublicKey) CryptoKey() *ecdsa.PublicKey {
	return &ecdsa.PublicKey{
		Curve: k.k.Curve,
		X:     new(big.Int).Set(k.k.X),
		Y:     new(big.Int).Set(k.k.Y),
	}
}

// ============================================================================
//                              P256PrivateKey
// ============================================================================

// P256PrivateKey NIST P-256 私钥实现
type P256PrivateKey struct {
	k *ecdsa.PrivateKey
}

// Raw 返回原始私钥标量（32 字节）
func (k *P256PrivateKey) Raw() ([]byte, error) {
	return p256PaddedBytes(k.k.D, P256PrivateKeySize), nil
}

// Type 返回密钥类型
func (k *P256PrivateKey) Type() KeyType {
	return KeyTypeP256
}

// Equals 比较两个私钥是否相等
func (k *P256PrivateKey) Equals(other Key) bool {
	pk, ok := other.(*P256PrivateKey)
	if !ok {
		return KeyEqual(k, other)
	}

	b1 := p256PaddedBytes(k.k.D, P256PrivateKeySize)
	b2 := p256PaddedBytes(pk.k.D, P256PrivateKeySize)
	return subtle.ConstantTimeCompare(b1, b2) == 1
}

// GetPublic 返回对应的公钥
func (k *P256PrivateKey) GetPublic() PublicKey {
	return &P256PublicKey{k: &k.k.PublicKey}
}

// Sign 使用此私钥签名数据
//
// 返回 64 字节签名：R (32 字节) + S (32 字节)
func (k *P256PrivateKey) Sign(data []byte) ([]byte, error) {
	hash := sha256.Sum256(data)
	r, s, err := ecdsa.Sign(rand.Reader, k.k, hash[:])
	if err != nil {
		return nil, err
	}

	sig := make([]byte, P256SignatureSize)
	copy(sig[:32], p256PaddedBytes(r, 32))
	copy(sig[32:], p256PaddedBytes(s, 32))
	return sig, nil
}

// Wipe 清零私钥标量
func (k *P256PrivateKey) Wipe() {
	words := k.k.D.Bits()
	for i := range words {
		words[i] = 0
	}
	k.k.D.SetInt64(0)
}

// CryptoKey 返回标准库私钥
func (k *P256PrivateKey) CryptoKey() *ecdsa.PrivateKey {
	pub := (&P256PublicKey{k: &k.k.PublicKey}).CryptoKey()
	return &ecdsa.PrivateKey{PublicKey: *pub, D: new(big.Int).Set(k.k.D)}
}

// ============================================================================
//                              工厂函数
// ============================================================================

// NewP256PrivateKeyFromSeed 以 32 字节种子作为标量构造 P-256 私钥
//
// 种子为零或不小于曲线阶时返回 ErrInvalidPrivateKey。
func NewP256PrivateKeyFromSeed(seed []byte) (PrivateKey, error) {
	if len(seed) != P256PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSeed, P256PrivateKeySize, len(seed))
	}

	ek, err := ecdh.P256().NewPrivateKey(seed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	pub, err := parseP256Point(ek.PublicKey().Bytes())
	if err != nil {
		return nil, err
	}

	return &P256PrivateKey{k: &ecdsa.PrivateKey{
		PublicKey: *pub,
		D:         new(big.Int).SetBytes(seed),
	}}, nil
}

// UnmarshalP256PublicKey 从字节反序列化 P-256 公钥
//
// 支持两种格式：
//   - 64 字节：X||Y 原始坐标，补 0x04 前缀
//   - 65 字节：0x04 前缀的未压缩点
func UnmarshalP256PublicKey(data []byte) (PublicKey, error) {
	var point []byte
	switch len(data) {
	case P256RawPublicKeySize:
		point = make([]byte, P256PublicKeySize)
		point[0] = p256UncompressedPrefix
		copy(point[1:], data)
	case P256PublicKeySize:
		if data[0] != p256UncompressedPrefix {
			return nil, fmt.Errorf("%w: expected uncompressed point prefix 0x04, got 0x%02x", ErrInvalidPublicKey, data[0])
		}
		point = data
	default:
		return nil, fmt.Errorf("%w: expected %d or %d bytes, got %d",
			ErrInvalidKeySize, P256RawPublicKeySize, P256PublicKeySize, len(data))
	}

	pub, err := parseP256Point(point)
	if err != nil {
		return nil, err
	}
	return &P256PublicKey{k: pub}, nil
}

// ============================================================================
//                              辅助函数
// ============================================================================

// parseP256Point 解析并校验 65 字节未压缩点
func parseP256Point(point []byte) (*ecdsa.PublicKey, error) {
	if _, err := ecdh.P256().NewPublicKey(point); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return &ecdsa.PublicKey{
		Curve: elliptic.P256(),
		X:     new(big.Int).SetBytes(point[1:33]),
		Y:     new(big.Int).SetBytes(point[33:65]),
	}, nil
}

// marshalP256Uncompressed 编码为 0x04||X||Y
func marshalP256Uncompressed(pub *ecdsa.PublicKey) []byte {
	out := make([]byte, P256PublicKeySize)
	out[0] = p256UncompressedPrefix
	copy(out[1:33], p256PaddedBytes(pub.X, 32))
	copy(out[33:], p256PaddedBytes(pub.Y, 32))
	return out
}

// p256PaddedBytes 返回固定长度的字节切片
func p256PaddedBytes(n *big.Int, length int) []byte {
	b := n.Bytes()
	if len(b) >= length {
		return b[len(b)-length:]
	}
	padded := make([]byte, length)
	copy(padded[length-len(b):], b)
	return padded
}
