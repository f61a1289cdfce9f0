// Package diddoc 从 did:key 密钥生成 DID 文档
//
// 支持两种表示：
//
//   - 旧格式：Ed25519VerificationKey2018 / X25519KeyAgreementKey2019，公钥为 publicKeyBase58
//   - JOSE 格式：JsonWebKey2020，公钥为 publicKeyJwk
//
// 私钥只在 Config.SerializeSecrets 为 true 时写入文档。
package diddoc
