package crypto

import (
	"errors"
	"fmt"
)

// ============================================================================
//                              错误分类
// ============================================================================

// 错误类别（使用 errors.Is 判断具体错误所属类别）
var (
	// ErrInvalidFormat 输入格式错误：URI、multibase、种子长度、公钥字节等
	ErrInvalidFormat = errors.New("invalid input format")

	// ErrCapability 能力错误：缺少私钥、算法不匹配等误用
	ErrCapability = errors.New("capability error")

	// ErrInvalidSignature 签名校验失败
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrNotImplemented 尚未实现的能力（BLS12-381、P-256 密钥交换）
	ErrNotImplemented = errors.New("not implemented")
)

// ============================================================================
//                              格式错误
// ============================================================================

var (
	// ErrInvalidSeed 种子长度无效（只接受 32 字节或空）
	ErrInvalidSeed = fmt.Errorf("%w: invalid seed size", ErrInvalidFormat)

	// ErrInvalidKeySize 密钥长度无效
	ErrInvalidKeySize = fmt.Errorf("%w: invalid key size", ErrInvalidFormat)

	// ErrInvalidPublicKey 公钥无效
	ErrInvalidPublicKey = fmt.Errorf("%w: invalid public key", ErrInvalidFormat)

	// ErrInvalidPrivateKey 私钥无效
	ErrInvalidPrivateKey = fmt.Errorf("%w: invalid private key", ErrInvalidFormat)

	// ErrInvalidDIDURI DID URI 无法解析
	ErrInvalidDIDURI = fmt.Errorf("%w: couldn't parse DID URI", ErrInvalidFormat)

	// ErrMissingMultibase 缺少 multibase 前缀 'z'
	ErrMissingMultibase = fmt.Errorf("%w: invalid URI data", ErrInvalidFormat)

	// ErrInvalidBase58 base58 数据无效
	ErrInvalidBase58 = fmt.Errorf("%w: invalid base58 encoded data in DID URI", ErrInvalidFormat)

	// ErrUnsupportedKeyType 不支持的密钥类型或 multicodec 前缀
	ErrUnsupportedKeyType = fmt.Errorf("%w: unsupported key type", ErrInvalidFormat)

	// ErrMalformedSignature 签名字节无法解析
	ErrMalformedSignature = fmt.Errorf("%w: malformed signature", ErrInvalidFormat)
)

// ============================================================================
//                              能力错误
// ============================================================================

var (
	// ErrSecretKeyAbsent 操作需要私钥，但密钥对只有公钥
	ErrSecretKeyAbsent = fmt.Errorf("%w: secret key absent", ErrCapability)

	// ErrKeyTypeMismatch 两个密钥的算法不一致
	ErrKeyTypeMismatch = fmt.Errorf("%w: key type mismatch", ErrCapability)

	// ErrUnsupportedPayload 当前算法不支持该 Payload 形式
	ErrUnsupportedPayload = fmt.Errorf("%w: payload type not supported for this key", ErrCapability)

	// ErrUnsupportedOperation 当前算法不具备该操作（如 X25519 签名）
	ErrUnsupportedOperation = fmt.Errorf("%w: operation not supported for this key", ErrCapability)

	// ErrNilPublicKey 公钥为空
	ErrNilPublicKey = fmt.Errorf("%w: nil public key", ErrCapability)
)

// IsFormatError 判断是否为输入格式错误
func IsFormatError(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsCapabilityError 判断是否为能力错误
func IsCapabilityError(err error) bool {
	return errors.Is(err, ErrCapability)
}

// notImplemented 构造带密钥类型的未实现错误
func notImplemented(kt KeyType, op string) error {
	return fmt.Errorf("%w: %s for %s keys", ErrNotImplemented, op, kt)
}
