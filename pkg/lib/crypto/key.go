package crypto

import (
	"crypto/subtle"
	"strings"
)

// ============================================================================
//                              密钥类型定义
// ============================================================================

// KeyType 密钥算法类型
//
// 封闭集合，密钥一经创建其类型不可变。
type KeyType int

const (
	// KeyTypeUnspecified 未指定密钥类型
	KeyTypeUnspecified KeyType = 0
	// KeyTypeEd25519 Ed25519 签名密钥
	KeyTypeEd25519 KeyType = 1
	// KeyTypeX25519 X25519 密钥交换密钥
	KeyTypeX25519 KeyType = 2
	// KeyTypeP256 NIST P-256 签名密钥
	KeyTypeP256 KeyType = 3
	// KeyTypeBls12381G1 BLS12-381 G1 密钥
	KeyTypeBls12381G1 KeyType = 4
	// KeyTypeBls12381G2 BLS12-381 G2 密钥
	KeyTypeBls12381G2 KeyType = 5
)

// String 返回密钥类型名称
func (kt KeyType) String() string {
	switch kt {
	case KeyTypeUnspecified:
		return "Unspecified"
	case KeyTypeEd25519:
		return "Ed25519"
	case KeyTypeX25519:
		return "X25519"
	case KeyTypeP256:
		return "P256"
	case KeyTypeBls12381G1:
		return "Bls12381G1"
	case KeyTypeBls12381G2:
		return "Bls12381G2"
	default:
		return "Unknown"
	}
}

// Valid 是否为受支持集合中的类型
func (kt KeyType) Valid() bool {
	return kt >= KeyTypeEd25519 && kt <= KeyTypeBls12381G2
}

// IsBLS 是否为 BLS12-381 类型
func (kt KeyType) IsBLS() bool {
	return kt == KeyTypeBls12381G1 || kt == KeyTypeBls12381G2
}

// KeyTypes 支持的密钥类型列表
var KeyTypes = []KeyType{
	KeyTypeEd25519,
	KeyTypeX25519,
	KeyTypeP256,
	KeyTypeBls12381G1,
	KeyTypeBls12381G2,
}

// ParseKeyType 从名称解析密钥类型（不区分大小写）
//
// 同时接受 "P-256" 与 "Bls12381-G1" 这类带连字符的写法。
func ParseKeyType(name string) (KeyType, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "-", ""))
	for _, kt := range KeyTypes {
		if strings.ToLower(kt.String()) == normalized {
			return kt, true
		}
	}
	return KeyTypeUnspecified, false
}

// ============================================================================
//                              密钥接口定义
// ============================================================================

// Key 基础密钥接口
type Key interface {
	// Raw 返回原始密钥字节（副本）
	Raw() ([]byte, error)

	// Type 返回密钥类型
	Type() KeyType

	// Equals 比较两个密钥是否相等
	Equals(Key) bool
}

// PublicKey 公钥接口
type PublicKey interface {
	Key

	// Verify 使用此公钥验证签名
	//
	// 返回：
	//   - (true, nil): 签名有效
	//   - (false, nil): 签名与数据不匹配
	//   - (false, err): 签名无法解析或算法不支持验证
	Verify(data, sig []byte) (bool, error)
}

// PrivateKey 私钥接口
type PrivateKey interface {
	Key

	// Sign 使用此私钥签名数据
	Sign(data []byte) ([]byte, error)

	// GetPublic 返回对应的公钥
	GetPublic() PublicKey

	// Wipe 清零私钥材料
	Wipe()
}

// KeyAgreement 支持 Diffie-Hellman 密钥交换的私钥
type KeyAgreement interface {
	// ECDH 与对方公钥计算共享密钥
	ECDH(their PublicKey) ([]byte, error)
}

// ============================================================================
//                              辅助函数
// ============================================================================

// KeyEqual 使用常量时间比较两个密钥是否相等
func KeyEqual(k1, k2 Key) bool {
	if k1 == nil || k2 == nil {
		return false
	}
	if k1.Type() != k2.Type() {
		return false
	}

	b1, err1 := k1.Raw()
	b2, err2 := k2.Raw()

	if err1 != nil || err2 != nil {
		return false
	}

	return subtle.ConstantTimeCompare(b1, b2) == 1
}
