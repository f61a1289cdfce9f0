// Package lib 包含 go-didkey 的基础库
//
// 本目录按依赖顺序包含：
//
//   - crypto: 各算法的密钥对、签名、密钥交换
//   - fingerprint: multicodec 前缀与 base58btc 指纹编解码
//   - log: 日志封装
//   - keys: did:key 密钥句柄与 Registry
//   - diddoc: DID 文档生成（publicKeyBase58 / JsonWebKey2020）
//
// # 使用示例
//
//	import (
//	    "github.com/dep2p/go-didkey/pkg/lib/keys"
//	    "github.com/dep2p/go-didkey/pkg/lib/diddoc"
//	)
//
//	k, err := keys.Resolve("did:key:z6Mk...")
//	doc, err := diddoc.NewBuilder(diddoc.Config{}).Build(k)
package lib
