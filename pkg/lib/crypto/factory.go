package crypto

import (
	"fmt"
	"io"
)

// ============================================================================
//                              构造函数映射
// ============================================================================

// SeedKeyFunc 从 32 字节种子派生私钥的函数类型
type SeedKeyFunc func(seed []byte) (PrivateKey, error)

// PubKeyUnmarshaller 公钥反序列化函数类型
type PubKeyUnmarshaller func(data []byte) (PublicKey, error)

// SeedKeyFuncs 各算法的种子派生函数
var SeedKeyFuncs = map[KeyType]SeedKeyFunc{
	KeyTypeEd25519:    NewEd25519PrivateKeyFromSeed,
	KeyTypeX25519:     NewX25519PrivateKeyFromSeed,
	KeyTypeP256:       NewP256PrivateKeyFromSeed,
	KeyTypeBls12381G1: newBls12381PrivateKeyFromSeed(KeyTypeBls12381G1),
	KeyTypeBls12381G2: newBls12381PrivateKeyFromSeed(KeyTypeBls12381G2),
}

// PubKeyUnmarshallers 各算法的公钥反序列化函数
var PubKeyUnmarshallers = map[KeyType]PubKeyUnmarshaller{
	KeyTypeEd25519:    UnmarshalEd25519PublicKey,
	KeyTypeX25519:     UnmarshalX25519PublicKey,
	KeyTypeP256:       UnmarshalP256PublicKey,
	KeyTypeBls12381G1: unmarshalBls12381PublicKey(KeyTypeBls12381G1),
	KeyTypeBls12381G2: unmarshalBls12381PublicKey(KeyTypeBls12381G2),
}

// ============================================================================
//                              密钥对工厂
// ============================================================================

// NewKeyPairFromSeed 从种子创建密钥对
//
// 参数：
//   - keyType: 密钥类型
//   - seed: 32 字节种子；为空时从 rnd 读取
//   - rnd: 随机源（nil 表示 crypto/rand，测试时可注入确定性随机源）
func NewKeyPairFromSeed(keyType KeyType, seed []byte, rnd io.Reader) (*KeyPair, error) {
	gen, ok := SeedKeyFuncs[keyType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKeyType, keyType)
	}
	if keyType.IsBLS() {
		// 不消耗随机源，直接报告未实现
		_, err := gen(nil)
		return nil, err
	}

	secret, err := ResolveSeed(seed, rnd)
	if err != nil {
		return nil, err
	}
	defer Wipe(secret)

	priv, err := gen(secret)
	if err != nil {
		return nil, err
	}
	return NewKeyPair(priv), nil
}

// GenerateKeyPair 使用随机种子生成密钥对
func GenerateKeyPair(keyType KeyType, rnd io.Reader) (*KeyPair, error) {
	return NewKeyPairFromSeed(keyType, nil, rnd)
}

// NewKeyPairFromPublicKey 从公钥字节创建只含公钥的密钥对
func NewKeyPairFromPublicKey(keyType KeyType, data []byte) (*KeyPair, error) {
	um, ok := PubKeyUnmarshallers[keyType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKeyType, keyType)
	}
	pub, err := um(data)
	if err != nil {
		return nil, err
	}
	return NewPublicKeyPair(pub), nil
}
