package crypto

// BLS12-381 的密钥生成、公钥解析、签名与验证均未接入配对运算实现，
// 所有入口统一返回 ErrNotImplemented，而不是构造出错误的密钥。

// newBls12381PrivateKeyFromSeed 未实现
func newBls12381PrivateKeyFromSeed(kt KeyType) SeedKeyFunc {
	return func([]byte) (PrivateKey, error) {
		return nil, notImplemented(kt, "key generation")
	}
}

// unmarshalBls12381PublicKey 未实现
func unmarshalBls12381PublicKey(kt KeyType) PubKeyUnmarshaller {
	return func([]byte) (PublicKey, error) {
		return nil, notImplemented(kt, "public key decoding")
	}
}
