// Package didkey 提供 did:key 密钥的统一入口
//
// did:key 把公钥直接编码进 DID：
//
//	did:key:z<base58btc(multicodec 前缀 ++ 公钥)>
//
// 本包把密钥生成、指纹解析、签名验证、密钥交换和 DID 文档生成装配为一个 Service。
//
// # 快速开始
//
//	svc, err := didkey.New()
//	if err != nil {
//	    return err
//	}
//
//	k, err := svc.Generate()
//	fmt.Println(k.DID())
//
//	sig, err := k.Sign(didkey.Buffer(msg))
//
//	peer, err := svc.Resolve("did:key:z6Mkk7yqnGF3YwTrLpqrW6PGsKci7dNqh1CjnvMbzrMerSeL")
//	err = peer.Verify(didkey.Buffer(msg), sig)
//
// # 支持的密钥类型
//
//   - Ed25519：签名；文档中附带派生的 X25519 密钥
//   - X25519：密钥交换
//   - P256：签名
//   - Bls12381G1 / Bls12381G2：编码已登记，运算返回 ErrNotImplemented
//
// # 架构层
//
//   - pkg/lib/crypto：算法适配与 KeyPair
//   - pkg/lib/fingerprint：multicodec + multibase 指纹
//   - pkg/lib/keys：Key 句柄、Registry、URI 解析
//   - pkg/lib/diddoc：DID 文档
//   - internal/core/keyregistry：fx 装配
package didkey
