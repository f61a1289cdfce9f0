package didkey

import (
	"errors"

	"github.com/dep2p/go-didkey/pkg/lib/crypto"
)

// 公共错误定义（与 pkg/lib/crypto 为同一实例，可用 errors.Is 判断）
var (
	// ────────────────────────────────────────────────────────────────────────
	// 错误类别
	// ────────────────────────────────────────────────────────────────────────

	// ErrInvalidFormat 输入格式错误
	ErrInvalidFormat = crypto.ErrInvalidFormat

	// ErrCapability 能力错误
	ErrCapability = crypto.ErrCapability

	// ErrInvalidSignature 签名校验失败
	ErrInvalidSignature = crypto.ErrInvalidSignature

	// ErrNotImplemented 尚未实现
	ErrNotImplemented = crypto.ErrNotImplemented

	// ────────────────────────────────────────────────────────────────────────
	// 格式错误
	// ────────────────────────────────────────────────────────────────────────

	ErrInvalidSeed        = crypto.ErrInvalidSeed
	ErrInvalidKeySize     = crypto.ErrInvalidKeySize
	ErrInvalidPublicKey   = crypto.ErrInvalidPublicKey
	ErrInvalidPrivateKey  = crypto.ErrInvalidPrivateKey
	ErrInvalidDIDURI      = crypto.ErrInvalidDIDURI
	ErrMissingMultibase   = crypto.ErrMissingMultibase
	ErrInvalidBase58      = crypto.ErrInvalidBase58
	ErrUnsupportedKeyType = crypto.ErrUnsupportedKeyType
	ErrMalformedSignature = crypto.ErrMalformedSignature

	// ────────────────────────────────────────────────────────────────────────
	// 能力错误
	// ────────────────────────────────────────────────────────────────────────

	ErrSecretKeyAbsent      = crypto.ErrSecretKeyAbsent
	ErrKeyTypeMismatch      = crypto.ErrKeyTypeMismatch
	ErrUnsupportedPayload   = crypto.ErrUnsupportedPayload
	ErrUnsupportedOperation = crypto.ErrUnsupportedOperation
	ErrNilPublicKey         = crypto.ErrNilPublicKey
)

// ErrServiceClosed 服务已停止
var ErrServiceClosed = errors.New("service closed")
