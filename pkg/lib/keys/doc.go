// Package keys 提供 did:key 密钥句柄与解析
//
// Key 是对外的密钥类型：一种算法的密钥对加上缓存的指纹。
// Registry 负责构造（随机生成、种子派生、公钥导入）和 did:key URI 解析，
// 随机源可通过 WithRandom 注入，WithResolveCache 开启指纹解析的 LRU 缓存。
//
// # 快速开始
//
//	k, err := keys.GenerateNew(crypto.KeyTypeEd25519)
//	fmt.Println(k.DID())
//
//	k2, err := keys.Resolve("did:key:z6Mkk7yqnGF3YwTrLpqrW6PGsKci7dNqh1CjnvMbzrMerSeL")
//	err = k2.Verify(crypto.Buffer(msg), sig)
//
// # 操作矩阵
//
//	            Sign   Verify  KeyExchange  ToX25519
//	Ed25519     ✓      ✓       能力错误      ✓
//	X25519      能力错误 能力错误  ✓            原样返回
//	P256        ✓      ✓       未实现        能力错误
//	Bls12381*   无法构造，构造函数返回 ErrNotImplemented
package keys
