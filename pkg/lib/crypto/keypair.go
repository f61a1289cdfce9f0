package crypto

import "fmt"

// ============================================================================
//                              KeyPair
// ============================================================================

// KeyPair 单一算法的公钥 + 可选私钥
//
// 所有算法共用同一结构，算法差异由 PublicKey/PrivateKey 实现承担。
// 私钥存在时，公钥由它在构造时派生，之后不再重新计算。
// 构造完成后只读（Wipe 除外），可并发调用 Verify 和公钥访问。
type KeyPair struct {
	pub  PublicKey
	priv PrivateKey
}

// NewKeyPair 从私钥创建密钥对
func NewKeyPair(priv PrivateKey) *KeyPair {
	return &KeyPair{pub: priv.GetPublic(), priv: priv}
}

// NewPublicKeyPair 创建只含公钥的密钥对
func NewPublicKeyPair(pub PublicKey) *KeyPair {
	return &KeyPair{pub: pub}
}

// Type 返回密钥类型
func (kp *KeyPair) Type() KeyType {
	return kp.pub.Type()
}

// PublicKey 返回公钥
func (kp *KeyPair) PublicKey() PublicKey {
	return kp.pub
}

// PrivateKey 返回私钥，不存在时第二个返回值为 false
func (kp *KeyPair) PrivateKey() (PrivateKey, bool) {
	return kp.priv, kp.priv != nil
}

// HasSecretKey 是否持有私钥
func (kp *KeyPair) HasSecretKey() bool {
	return kp.priv != nil
}

// PublicKeyBytes 返回公钥字节副本
func (kp *KeyPair) PublicKeyBytes() []byte {
	raw, err := kp.pub.Raw()
	if err != nil {
		return nil
	}
	return raw
}

// SecretKeyBytes 返回私钥字节副本
func (kp *KeyPair) SecretKeyBytes() ([]byte, bool) {
	if kp.priv == nil {
		return nil, false
	}
	raw, err := kp.priv.Raw()
	if err != nil {
		return nil, false
	}
	return raw, true
}

// ============================================================================
//                              操作分派
// ============================================================================

// Sign 签名 Payload
//
// X25519 不能签名；缺少私钥返回 ErrSecretKeyAbsent；
// 多缓冲区 Payload 返回 ErrUnsupportedPayload。
func (kp *KeyPair) Sign(payload Payload) ([]byte, error) {
	if kp.Type() == KeyTypeX25519 {
		return nil, fmt.Errorf("%w: X25519 keys cannot sign", ErrUnsupportedOperation)
	}
	if kp.priv == nil {
		return nil, ErrSecretKeyAbsent
	}
	msg, err := payload.Single()
	if err != nil {
		return nil, err
	}
	return kp.priv.Sign(msg)
}

// Verify 验证签名
//
// 返回 nil 表示签名有效；签名不匹配返回 ErrInvalidSignature；
// 签名无法解析返回 ErrMalformedSignature。只使用公钥。
func (kp *KeyPair) Verify(payload Payload, sig []byte) error {
	msg, err := payload.Single()
	if err != nil {
		return err
	}
	ok, err := kp.pub.Verify(msg, sig)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidSignature
	}
	return nil
}

// KeyExchange 与对方公钥进行 Diffie-Hellman 密钥交换
//
// 只支持同为 X25519 的两个密钥；P-256 交换尚未实现。
func (kp *KeyPair) KeyExchange(other *KeyPair) ([]byte, error) {
	if other == nil {
		return nil, ErrNilPublicKey
	}
	if kp.Type() != other.Type() {
		return nil, fmt.Errorf("%w: cannot exchange %s with %s", ErrKeyTypeMismatch, kp.Type(), other.Type())
	}

	switch kp.Type() {
	case KeyTypeX25519:
	case KeyTypeP256:
		return nil, notImplemented(kp.Type(), "key exchange")
	default:
		return nil, fmt.Errorf("%w: %s keys cannot exchange", ErrUnsupportedOperation, kp.Type())
	}

	if kp.priv == nil {
		return nil, ErrSecretKeyAbsent
	}
	ka, ok := kp.priv.(KeyAgreement)
	if !ok {
		return nil, fmt.Errorf("%w: %s keys cannot exchange", ErrUnsupportedOperation, kp.Type())
	}
	return ka.ECDH(other.pub)
}

// ToX25519 将 Ed25519 密钥对转换为 X25519 密钥对
//
// 有私钥时一并转换，否则只转换公钥。
func (kp *KeyPair) ToX25519() (*KeyPair, error) {
	if kp.Type() == KeyTypeX25519 {
		return kp, nil
	}
	ep, ok := kp.pub.(*Ed25519PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: cannot convert %s to X25519", ErrUnsupportedOperation, kp.Type())
	}

	if priv, ok := kp.priv.(*Ed25519PrivateKey); ok {
		return NewKeyPair(priv.ToX25519()), nil
	}

	xpub, err := ep.ToX25519()
	if err != nil {
		return nil, err
	}
	return NewPublicKeyPair(xpub), nil
}

// Wipe 清零并丢弃私钥
//
// 调用后密钥对退化为只含公钥，签名与交换返回 ErrSecretKeyAbsent。
// 不可与其他操作并发调用。
func (kp *KeyPair) Wipe() {
	if kp.priv == nil {
		return
	}
	kp.priv.Wipe()
	kp.priv = nil
}
