package fingerprint

import (
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/dep2p/go-didkey/pkg/lib/crypto"
)

// MultibaseBase58BTC multibase 中 base58-btc 的前缀字符
const MultibaseBase58BTC = 'z'

// ============================================================================
//                              编码
// ============================================================================

// Prefix 返回密钥类型对应的 multicodec 前缀（副本）
func Prefix(kt crypto.KeyType) ([]byte, error) {
	c, ok := CodecWithType(kt)
	if !ok {
		return nil, fmt.Errorf("%w: %s", crypto.ErrUnsupportedKeyType, kt)
	}
	return append([]byte(nil), c.Prefix...), nil
}

// EncodeMulticodec 返回 prefix ++ pub
func EncodeMulticodec(kt crypto.KeyType, pub []byte) ([]byte, error) {
	prefix, err := Prefix(kt)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(prefix)+len(pub))
	out = append(out, prefix...)
	return append(out, pub...), nil
}

// Encode 计算公钥指纹："z" + base58btc(prefix ++ pub)
func Encode(kt crypto.KeyType, pub []byte) (string, error) {
	data, err := EncodeMulticodec(kt, pub)
	if err != nil {
		return "", err
	}
	return string(MultibaseBase58BTC) + base58.Encode(data), nil
}

// ============================================================================
//                              解码
// ============================================================================

// Decode 解析指纹为 (密钥类型, 公钥字节)
//
// 缺少 'z' 前缀返回 ErrMissingMultibase；base58 无效返回 ErrInvalidBase58；
// 前缀未登记返回 ErrUnsupportedKeyType。
func Decode(fp string) (crypto.KeyType, []byte, error) {
	if len(fp) == 0 || fp[0] != MultibaseBase58BTC {
		return crypto.KeyTypeUnspecified, nil, crypto.ErrMissingMultibase
	}
	data, err := base58.Decode(fp[1:])
	if err != nil {
		return crypto.KeyTypeUnspecified, nil, fmt.Errorf("%w: %v", crypto.ErrInvalidBase58, err)
	}
	return DecodeMulticodec(data)
}

// DecodeMulticodec 按固定顺序匹配前缀并拆出公钥字节
//
// 顺序为 Ed25519、X25519、Bls12381G1、Bls12381G2、P256。返回的公钥字节是副本。
func DecodeMulticodec(data []byte) (crypto.KeyType, []byte, error) {
	for _, c := range codecs {
		if c.match(data) {
			pub := make([]byte, len(data)-len(c.Prefix))
			copy(pub, data[len(c.Prefix):])
			return c.Type, pub, nil
		}
	}
	return crypto.KeyTypeUnspecified, nil, fmt.Errorf("%w: unknown multicodec prefix", crypto.ErrUnsupportedKeyType)
}
