package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestX25519_KeyExchange 测试共享密钥对称性
func TestX25519_KeyExchange(t *testing.T) {
	alice := mustKeyPair(t, KeyTypeX25519, seedOf(1))
	bob := mustKeyPair(t, KeyTypeX25519, seedOf(2))

	ab, err := alice.KeyExchange(bob)
	require.NoError(t, err)
	ba, err := bob.KeyExchange(alice)
	require.NoError(t, err)

	assert.Len(t, ab, X25519SharedSecretSize)
	assert.Equal(t, ab, ba)

	// 对方只有公钥也可以
	bobPub, err := NewKeyPairFromPublicKey(KeyTypeX25519, bob.PublicKeyBytes())
	require.NoError(t, err)
	ab2, err := alice.KeyExchange(bobPub)
	require.NoError(t, err)
	assert.Equal(t, ab, ab2)
}

// TestX25519_Capabilities 测试 X25519 不具备的能力
func TestX25519_Capabilities(t *testing.T) {
	kp := mustKeyPair(t, KeyTypeX25519, seedOf(1))

	_, err := kp.Sign(Buffer([]byte("m")))
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	err = kp.Verify(Buffer([]byte("m")), make([]byte, 64))
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
	assert.True(t, IsCapabilityError(err))

	// 只有公钥时交换
	pubOnly, err := NewKeyPairFromPublicKey(KeyTypeX25519, kp.PublicKeyBytes())
	require.NoError(t, err)
	_, err = pubOnly.KeyExchange(kp)
	assert.ErrorIs(t, err, ErrSecretKeyAbsent)

	// 与其他算法交换
	ed := mustKeyPair(t, KeyTypeEd25519, seedOf(1))
	_, err = kp.KeyExchange(ed)
	assert.ErrorIs(t, err, ErrKeyTypeMismatch)

	_, err = kp.KeyExchange(nil)
	assert.ErrorIs(t, err, ErrNilPublicKey)
}

// TestX25519_Clamped 测试私钥钳位
func TestX25519_Clamped(t *testing.T) {
	kp := mustKeyPair(t, KeyTypeX25519, seedOf(0xff))
	secret, ok := kp.SecretKeyBytes()
	require.True(t, ok)
	assert.Equal(t, byte(0), secret[0]&7)
	assert.Equal(t, byte(0x40), secret[31]&0xc0)
}

// TestX25519_LowOrderPoint 测试低阶点
func TestX25519_LowOrderPoint(t *testing.T) {
	kp := mustKeyPair(t, KeyTypeX25519, seedOf(1))
	zero, err := NewKeyPairFromPublicKey(KeyTypeX25519, make([]byte, X25519KeySize))
	require.NoError(t, err)

	_, err = kp.KeyExchange(zero)
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}

// TestEd25519ToX25519 测试 Ed25519 到 X25519 的转换
func TestEd25519ToX25519(t *testing.T) {
	alice := mustKeyPair(t, KeyTypeEd25519, seedOf(10))
	bob := mustKeyPair(t, KeyTypeEd25519, seedOf(11))

	aliceX, err := alice.ToX25519()
	require.NoError(t, err)
	bobX, err := bob.ToX25519()
	require.NoError(t, err)
	assert.Equal(t, KeyTypeX25519, aliceX.Type())
	assert.True(t, aliceX.HasSecretKey())

	// 私钥派生的公钥与直接转换公钥一致
	alicePub, err := NewKeyPairFromPublicKey(KeyTypeEd25519, alice.PublicKeyBytes())
	require.NoError(t, err)
	alicePubX, err := alicePub.ToX25519()
	require.NoError(t, err)
	assert.False(t, alicePubX.HasSecretKey())
	assert.Equal(t, aliceX.PublicKeyBytes(), alicePubX.PublicKeyBytes())

	bobPub, err := NewKeyPairFromPublicKey(KeyTypeEd25519, bob.PublicKeyBytes())
	require.NoError(t, err)
	bobPubX, err := bobPub.ToX25519()
	require.NoError(t, err)

	ab, err := aliceX.KeyExchange(bobPubX)
	require.NoError(t, err)
	ba, err := bobX.KeyExchange(alicePubX)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)

	// X25519 自身转换返回原值
	same, err := aliceX.ToX25519()
	require.NoError(t, err)
	assert.Same(t, aliceX, same)

	// P-256 不能转换
	p := mustKeyPair(t, KeyTypeP256, seedOf(1))
	_, err = p.ToX25519()
	assert.ErrorIs(t, err, ErrUnsupportedOperation)
}
