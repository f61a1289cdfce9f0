package didkey

import (
	"github.com/dep2p/go-didkey/pkg/lib/crypto"
	"github.com/dep2p/go-didkey/pkg/lib/diddoc"
	"github.com/dep2p/go-didkey/pkg/lib/keys"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0"

// BuildInfo 构建信息（通过 ldflags 注入）
var (
	// GitCommit Git 提交哈希
	GitCommit string

	// BuildDate 构建日期
	BuildDate string
)

// VersionInfo 返回完整版本信息字符串
func VersionInfo() string {
	info := "go-didkey " + Version
	if GitCommit != "" {
		info += " (" + GitCommit[:min(8, len(GitCommit))] + ")"
	}
	if BuildDate != "" {
		info += " built " + BuildDate
	}
	return info
}

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

// KeyType 密钥算法类型
type KeyType = crypto.KeyType

// Key did:key 密钥句柄
type Key = keys.Key

// Payload 待签名数据
type Payload = crypto.Payload

// Document DID 文档
type Document = diddoc.Document

// 密钥类型
const (
	Ed25519    = crypto.KeyTypeEd25519
	X25519     = crypto.KeyTypeX25519
	P256       = crypto.KeyTypeP256
	Bls12381G1 = crypto.KeyTypeBls12381G1
	Bls12381G2 = crypto.KeyTypeBls12381G2
)

// Buffer 构造单缓冲区 Payload
func Buffer(data []byte) Payload {
	return crypto.Buffer(data)
}

// BufferArray 构造多缓冲区 Payload
func BufferArray(data ...[]byte) Payload {
	return crypto.BufferArray(data...)
}

// ParseKeyType 从名称解析密钥类型
func ParseKeyType(name string) (KeyType, bool) {
	return crypto.ParseKeyType(name)
}
