package crypto

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// 已知向量
// ============================================================================

const (
	ed25519VectorSeed   = "6Lx39RyWn3syuozAe2WiPdAYn1ctMx17t8yrBMGFBmZy"
	ed25519VectorPublic = "6fioC1zcDPyPEL19pXRS2E4iJ46zH7xP6uSgAaPdwDrx"
)

// TestEd25519_KnownVector 测试种子到公钥的确定性派生
func TestEd25519_KnownVector(t *testing.T) {
	seed, err := base58.Decode(ed25519VectorSeed)
	require.NoError(t, err)
	require.Len(t, seed, SeedSize)

	kp, err := NewKeyPairFromSeed(KeyTypeEd25519, seed, nil)
	require.NoError(t, err)

	assert.Equal(t, ed25519VectorPublic, base58.Encode(kp.PublicKeyBytes()))

	secret, ok := kp.SecretKeyBytes()
	require.True(t, ok)
	assert.Equal(t, seed, secret)

	msg := Buffer([]byte("super secret message"))
	sig, err := kp.Sign(msg)
	require.NoError(t, err)
	assert.Len(t, sig, Ed25519SignatureSize)
	assert.NoError(t, kp.Verify(msg, sig))

	// 只含公钥的密钥对同样能验证
	pubOnly, err := NewKeyPairFromPublicKey(KeyTypeEd25519, kp.PublicKeyBytes())
	require.NoError(t, err)
	assert.NoError(t, pubOnly.Verify(msg, sig))
}

// ============================================================================
// 签名与验证
// ============================================================================

// TestEd25519_SignVerify 测试签名验证及错误分类
func TestEd25519_SignVerify(t *testing.T) {
	kp := mustKeyPair(t, KeyTypeEd25519, seedOf(3))
	data := Buffer([]byte("test message"))

	sig, err := kp.Sign(data)
	require.NoError(t, err)

	// 确定性签名
	sig2, err := kp.Sign(data)
	require.NoError(t, err)
	assert.Equal(t, sig, sig2)

	assert.NoError(t, kp.Verify(data, sig))

	// 错误数据
	err = kp.Verify(Buffer([]byte("wrong message")), sig)
	assert.ErrorIs(t, err, ErrInvalidSignature)

	// 篡改签名
	bad := append([]byte(nil), sig...)
	bad[0] ^= 0xff
	assert.ErrorIs(t, kp.Verify(data, bad), ErrInvalidSignature)

	// 长度错误
	err = kp.Verify(data, []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrMalformedSignature)
	assert.NotErrorIs(t, err, ErrInvalidSignature)

	// 其他密钥
	other := mustKeyPair(t, KeyTypeEd25519, seedOf(4))
	assert.ErrorIs(t, other.Verify(data, sig), ErrInvalidSignature)
}

// TestEd25519_Unmarshal 测试公钥解析
func TestEd25519_Unmarshal(t *testing.T) {
	_, err := UnmarshalEd25519PublicKey(make([]byte, 31))
	assert.ErrorIs(t, err, ErrInvalidKeySize)

	kp := mustKeyPair(t, KeyTypeEd25519, seedOf(5))
	pub, err := UnmarshalEd25519PublicKey(kp.PublicKeyBytes())
	require.NoError(t, err)
	assert.True(t, pub.Equals(kp.PublicKey()))

	// 返回的字节是副本
	raw, _ := pub.Raw()
	raw[0] ^= 0xff
	raw2, _ := pub.Raw()
	assert.NotEqual(t, raw, raw2)
}

// TestEd25519_CryptoKey 测试标准库互通
func TestEd25519_CryptoKey(t *testing.T) {
	kp := mustKeyPair(t, KeyTypeEd25519, seedOf(6))
	priv, ok := kp.PrivateKey()
	require.True(t, ok)

	std := priv.(*Ed25519PrivateKey).CryptoKey()
	stdPub := kp.PublicKey().(*Ed25519PublicKey).CryptoKey()

	sig := ed25519.Sign(std, []byte("x"))
	assert.True(t, ed25519.Verify(stdPub, []byte("x"), sig))
	assert.NoError(t, kp.Verify(Buffer([]byte("x")), sig))
}
