package fingerprint

import (
	"bytes"

	"github.com/multiformats/go-varint"

	"github.com/dep2p/go-didkey/pkg/lib/crypto"
)

// multicodec 代码（与 multiformats/multicodec 表对齐）
// 参考：https://github.com/multiformats/multicodec/blob/master/table.csv
const (
	CodeEd25519Pub    = 0xed
	CodeX25519Pub     = 0xec
	CodeBls12381G1Pub = 0xea
	CodeBls12381G2Pub = 0xeb
	CodeP256Pub       = 0x1200
)

// Codec 描述一种密钥类型的 multicodec 前缀
type Codec struct {
	// Type 密钥类型
	Type crypto.KeyType

	// Code multicodec 代码
	Code uint64

	// Prefix 写入指纹的前缀字节
	Prefix []byte
}

// p256Prefix P-256 沿用 did:key 生态中的三字节前缀，不是 uvarint(0x1200)
var p256Prefix = []byte{0x12, 0x00, 0x01}

// codecs 解码时按此顺序尝试前缀
var codecs = []Codec{
	{Type: crypto.KeyTypeEd25519, Code: CodeEd25519Pub, Prefix: varint.ToUvarint(CodeEd25519Pub)},
	{Type: crypto.KeyTypeX25519, Code: CodeX25519Pub, Prefix: varint.ToUvarint(CodeX25519Pub)},
	{Type: crypto.KeyTypeBls12381G1, Code: CodeBls12381G1Pub, Prefix: varint.ToUvarint(CodeBls12381G1Pub)},
	{Type: crypto.KeyTypeBls12381G2, Code: CodeBls12381G2Pub, Prefix: varint.ToUvarint(CodeBls12381G2Pub)},
	{Type: crypto.KeyTypeP256, Code: CodeP256Pub, Prefix: p256Prefix},
}

// Codecs 返回编解码表副本（解码顺序）
func Codecs() []Codec {
	out := make([]Codec, len(codecs))
	for i, c := range codecs {
		out[i] = Codec{Type: c.Type, Code: c.Code, Prefix: append([]byte(nil), c.Prefix...)}
	}
	return out
}

// CodecWithType 按密钥类型查找编解码项
func CodecWithType(kt crypto.KeyType) (Codec, bool) {
	for _, c := range codecs {
		if c.Type == kt {
			return c, true
		}
	}
	return Codec{}, false
}

// match 前缀匹配
func (c Codec) match(data []byte) bool {
	return bytes.HasPrefix(data, c.Prefix)
}
