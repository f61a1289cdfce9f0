// Package fingerprint 实现 did:key 指纹编解码
//
// 指纹格式：
//
//	"z" + base58btc(multicodec 前缀 ++ 公钥字节)
//
// # 前缀表
//
//	Ed25519     0xed 0x01
//	X25519      0xec 0x01
//	Bls12381G1  0xea 0x01
//	Bls12381G2  0xeb 0x01
//	P256        0x12 0x00 0x01
//
// 解码按上表顺序匹配，前缀不校验公钥长度，长度由 crypto 层在构造密钥时检查。
package fingerprint
