// Package crypto 提供 did:key 密钥算法适配层
//
// 本包把每种算法的生成、签名、验证和密钥交换统一到 KeyPair 上，
// 上层（keys、diddoc）只通过 KeyType 分派，不直接接触算法细节。
//
// # 支持的密钥类型
//
//   - Ed25519：签名，可转换为 X25519
//   - X25519：仅密钥交换
//   - P256：NIST P-256 ECDSA 签名
//   - Bls12381G1 / Bls12381G2：类型与编码已登记，运算返回 ErrNotImplemented
//
// # 快速开始
//
// 从种子生成密钥对：
//
//	kp, err := crypto.NewKeyPairFromSeed(crypto.KeyTypeEd25519, seed, nil)
//
// 签名和验证：
//
//	sig, err := kp.Sign(crypto.Buffer(data))
//	err = kp.Verify(crypto.Buffer(data), sig)
//
// 密钥交换（双方均为 X25519）：
//
//	shared, err := alice.KeyExchange(bob)
//
// # 错误分类
//
//   - ErrInvalidFormat：种子长度、公钥字节、签名格式等输入问题
//   - ErrCapability：缺少私钥、算法不匹配、算法不具备该操作
//   - ErrInvalidSignature：签名校验失败
//   - ErrNotImplemented：BLS12-381 与 P-256 密钥交换
//
// # 安全特性
//
//   - 常量时间比较
//   - Wipe 清零私钥材料
//   - 随机源可注入，测试时可确定性生成
package crypto
