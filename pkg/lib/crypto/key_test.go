package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestKeyType_String 测试密钥类型名称
func TestKeyType_String(t *testing.T) {
	tests := []struct {
		kt   KeyType
		want string
	}{
		{KeyTypeEd25519, "Ed25519"},
		{KeyTypeX25519, "X25519"},
		{KeyTypeP256, "P256"},
		{KeyTypeBls12381G1, "Bls12381G1"},
		{KeyTypeBls12381G2, "Bls12381G2"},
		{KeyTypeUnspecified, "Unspecified"},
		{KeyType(42), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kt.String())
	}
}

// TestKeyType_Valid 测试类型集合边界
func TestKeyType_Valid(t *testing.T) {
	for _, kt := range KeyTypes {
		assert.True(t, kt.Valid(), kt.String())
	}
	assert.False(t, KeyTypeUnspecified.Valid())
	assert.False(t, KeyType(6).Valid())

	assert.True(t, KeyTypeBls12381G1.IsBLS())
	assert.True(t, KeyTypeBls12381G2.IsBLS())
	assert.False(t, KeyTypeEd25519.IsBLS())
}

// TestParseKeyType 测试名称解析
func TestParseKeyType(t *testing.T) {
	tests := []struct {
		name string
		want KeyType
		ok   bool
	}{
		{"Ed25519", KeyTypeEd25519, true},
		{"ed25519", KeyTypeEd25519, true},
		{"X25519", KeyTypeX25519, true},
		{"P-256", KeyTypeP256, true},
		{"p256", KeyTypeP256, true},
		{"Bls12381-G1", KeyTypeBls12381G1, true},
		{" bls12381g2 ", KeyTypeBls12381G2, true},
		{"RSA", KeyTypeUnspecified, false},
		{"", KeyTypeUnspecified, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseKeyType(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestKeyEqual 测试常量时间比较
func TestKeyEqual(t *testing.T) {
	a := mustKeyPair(t, KeyTypeEd25519, seedOf(1))
	b := mustKeyPair(t, KeyTypeEd25519, seedOf(1))
	c := mustKeyPair(t, KeyTypeEd25519, seedOf(2))
	x := mustKeyPair(t, KeyTypeX25519, seedOf(1))

	assert.True(t, KeyEqual(a.PublicKey(), b.PublicKey()))
	assert.False(t, KeyEqual(a.PublicKey(), c.PublicKey()))
	assert.False(t, KeyEqual(a.PublicKey(), x.PublicKey()))
	assert.False(t, KeyEqual(nil, a.PublicKey()))
	assert.False(t, KeyEqual(a.PublicKey(), nil))

	assert.True(t, a.PublicKey().Equals(b.PublicKey()))
	assert.False(t, a.PublicKey().Equals(x.PublicKey()))
}
