package diddoc

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/go-jose/go-jose/v3"
	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-didkey/pkg/lib/crypto"
	"github.com/dep2p/go-didkey/pkg/lib/keys"
)

func mustKey(t *testing.T, kt crypto.KeyType, b byte) *keys.Key {
	t.Helper()
	k, err := keys.FromSeed(kt, bytes.Repeat([]byte{b}, crypto.SeedSize))
	require.NoError(t, err)
	return k
}

// TestBuild_Ed25519Legacy 测试 Ed25519 旧格式文档
func TestBuild_Ed25519Legacy(t *testing.T) {
	k := mustKey(t, crypto.KeyTypeEd25519, 1)
	doc, err := NewBuilder(Config{}).Build(k)
	require.NoError(t, err)

	assert.Equal(t, k.DID(), doc.ID)
	assert.Equal(t, []string{ContextDIDv1, ContextEd255192018, ContextX255192019}, doc.Context)
	require.Len(t, doc.VerificationMethod, 2)

	vm := doc.VerificationMethod[0]
	assert.Equal(t, k.KeyID(), vm.ID)
	assert.Equal(t, TypeEd25519VerificationKey2018, vm.Type)
	assert.Equal(t, k.DID(), vm.Controller)
	assert.Equal(t, k.PublicKeyBase58(), vm.PublicKeyBase58)
	assert.Empty(t, vm.PrivateKeyBase58)

	x, err := k.ToX25519()
	require.NoError(t, err)
	xvm := doc.VerificationMethod[1]
	assert.Equal(t, k.DID()+"#"+x.Fingerprint(), xvm.ID)
	assert.Equal(t, TypeX25519KeyAgreementKey2019, xvm.Type)
	assert.Equal(t, x.PublicKeyBase58(), xvm.PublicKeyBase58)

	assert.Equal(t, []string{vm.ID}, doc.Authentication)
	assert.Equal(t, []string{vm.ID}, doc.AssertionMethod)
	assert.Equal(t, []string{vm.ID}, doc.CapabilityDelegation)
	assert.Equal(t, []string{vm.ID}, doc.CapabilityInvocation)
	assert.Equal(t, []string{xvm.ID}, doc.KeyAgreement)

	got, ok := doc.MethodByID(xvm.ID)
	assert.True(t, ok)
	assert.Equal(t, xvm, got)
	_, ok = doc.MethodByID("missing")
	assert.False(t, ok)
}

// TestBuild_X25519 测试 X25519 文档只有 keyAgreement
func TestBuild_X25519(t *testing.T) {
	k := mustKey(t, crypto.KeyTypeX25519, 2)
	doc, err := NewBuilder(Config{}).Build(k)
	require.NoError(t, err)

	require.Len(t, doc.VerificationMethod, 1)
	assert.Equal(t, TypeX25519KeyAgreementKey2019, doc.VerificationMethod[0].Type)
	assert.Equal(t, []string{k.KeyID()}, doc.KeyAgreement)
	assert.Empty(t, doc.Authentication)
	assert.Empty(t, doc.AssertionMethod)
}

// TestBuild_P256Legacy 测试 P-256 旧格式
func TestBuild_P256Legacy(t *testing.T) {
	k := mustKey(t, crypto.KeyTypeP256, 3)
	doc, err := NewBuilder(Config{}).Build(k)
	require.NoError(t, err)

	require.Len(t, doc.VerificationMethod, 1)
	vm := doc.VerificationMethod[0]
	assert.Equal(t, TypeUnsupportedVerificationMethod, vm.Type)

	raw, err := base58.Decode(vm.PublicKeyBase58)
	require.NoError(t, err)
	assert.Len(t, raw, crypto.P256PublicKeySize)
	assert.Empty(t, doc.KeyAgreement)
}

// TestBuild_JOSE 测试 JsonWebKey2020
func TestBuild_JOSE(t *testing.T) {
	b := NewBuilder(Config{UseJOSEFormat: true})

	t.Run("Ed25519", func(t *testing.T) {
		k := mustKey(t, crypto.KeyTypeEd25519, 4)
		doc, err := b.Build(k)
		require.NoError(t, err)
		assert.Equal(t, []string{ContextDIDv1, ContextJWS2020}, doc.Context)

		vm := doc.VerificationMethod[0]
		assert.Equal(t, TypeJSONWebKey2020, vm.Type)
		assert.Empty(t, vm.PublicKeyBase58)
		assert.Nil(t, vm.PrivateKeyJwk)

		var jwk jose.JSONWebKey
		require.NoError(t, jwk.UnmarshalJSON(vm.PublicKeyJwk))
		assert.True(t, jwk.IsPublic())
		pub, err := k.CryptoPublicKey()
		require.NoError(t, err)
		assert.Equal(t, pub, jwk.Key)

		var fields map[string]string
		require.NoError(t, json.Unmarshal(doc.VerificationMethod[1].PublicKeyJwk, &fields))
		assert.Equal(t, "OKP", fields["kty"])
		assert.Equal(t, "X25519", fields["crv"])
		assert.Empty(t, fields["d"])
	})

	t.Run("P256", func(t *testing.T) {
		k := mustKey(t, crypto.KeyTypeP256, 5)
		doc, err := b.Build(k)
		require.NoError(t, err)

		var fields map[string]string
		require.NoError(t, json.Unmarshal(doc.VerificationMethod[0].PublicKeyJwk, &fields))
		assert.Equal(t, "EC", fields["kty"])
		assert.Equal(t, "P-256", fields["crv"])
		assert.NotEmpty(t, fields["x"])
		assert.NotEmpty(t, fields["y"])
	})

	t.Run("X25519", func(t *testing.T) {
		k := mustKey(t, crypto.KeyTypeX25519, 6)
		doc, err := b.Build(k)
		require.NoError(t, err)

		var fields map[string]string
		require.NoError(t, json.Unmarshal(doc.VerificationMethod[0].PublicKeyJwk, &fields))
		x, err := base64.RawURLEncoding.DecodeString(fields["x"])
		require.NoError(t, err)
		assert.Equal(t, k.PublicKey(), x)
	})
}

// TestBuild_Secrets 测试私钥输出需要显式开启
func TestBuild_Secrets(t *testing.T) {
	k := mustKey(t, crypto.KeyTypeEd25519, 7)
	secret, _ := k.SecretKey()

	legacy, err := NewBuilder(Config{SerializeSecrets: true}).Build(k)
	require.NoError(t, err)
	assert.Equal(t, base58.Encode(secret), legacy.VerificationMethod[0].PrivateKeyBase58)
	assert.NotEmpty(t, legacy.VerificationMethod[1].PrivateKeyBase58)

	joseDoc, err := NewBuilder(Config{UseJOSEFormat: true, SerializeSecrets: true}).Build(k)
	require.NoError(t, err)
	var fields map[string]string
	require.NoError(t, json.Unmarshal(joseDoc.VerificationMethod[0].PrivateKeyJwk, &fields))
	assert.NotEmpty(t, fields["d"])
	require.NoError(t, json.Unmarshal(joseDoc.VerificationMethod[1].PrivateKeyJwk, &fields))
	assert.NotEmpty(t, fields["d"])

	// 只有公钥时不输出私钥字段
	pub, err := keys.Resolve(k.DID())
	require.NoError(t, err)
	doc, err := NewBuilder(Config{UseJOSEFormat: true, SerializeSecrets: true}).Build(pub)
	require.NoError(t, err)
	assert.Nil(t, doc.VerificationMethod[0].PrivateKeyJwk)
}

// TestDocument_JSON 测试 JSON 输出
func TestDocument_JSON(t *testing.T) {
	k := mustKey(t, crypto.KeyTypeEd25519, 8)
	doc, err := NewBuilder(Config{}).Build(k)
	require.NoError(t, err)

	data, err := doc.MarshalIndent()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, k.DID(), decoded["id"])
	assert.Contains(t, decoded, "@context")
	assert.NotContains(t, string(data), "privateKey")
}

// TestBuild_Nil 测试空密钥
func TestBuild_Nil(t *testing.T) {
	_, err := NewBuilder(Config{}).Build(nil)
	assert.ErrorIs(t, err, crypto.ErrNilPublicKey)
}
