package diddoc

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/go-jose/go-jose/v3"

	"github.com/dep2p/go-didkey/pkg/lib/crypto"
	"github.com/dep2p/go-didkey/pkg/lib/keys"
)

// okpJWK X25519 的 OKP 形式 JWK（RFC 8037）
type okpJWK struct {
	Kty string `json:"kty"`
	Crv string `json:"crv"`
	X   string `json:"x"`
	D   string `json:"d,omitempty"`
}

// publicJWK 编码公钥 JWK
func publicJWK(k *keys.Key) (json.RawMessage, error) {
	if k.Type() == crypto.KeyTypeX25519 {
		return marshalOKP(k.PublicKey(), nil)
	}
	pub, err := k.CryptoPublicKey()
	if err != nil {
		return nil, err
	}
	return marshalJOSE(jose.JSONWebKey{Key: pub})
}

// privateJWK 编码私钥 JWK（包含公钥部分）
func privateJWK(k *keys.Key) (json.RawMessage, error) {
	if k.Type() == crypto.KeyTypeX25519 {
		secret, ok := k.SecretKey()
		if !ok {
			return nil, crypto.ErrSecretKeyAbsent
		}
		defer crypto.Wipe(secret)
		return marshalOKP(k.PublicKey(), secret)
	}
	priv, err := k.CryptoPrivateKey()
	if err != nil {
		return nil, err
	}
	return marshalJOSE(jose.JSONWebKey{Key: priv})
}

func marshalJOSE(jwk jose.JSONWebKey) (json.RawMessage, error) {
	data, err := jwk.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshal jwk: %w", err)
	}
	return data, nil
}

func marshalOKP(pub, secret []byte) (json.RawMessage, error) {
	jwk := okpJWK{
		Kty: "OKP",
		Crv: "X25519",
		X:   base64.RawURLEncoding.EncodeToString(pub),
	}
	if secret != nil {
		jwk.D = base64.RawURLEncoding.EncodeToString(secret)
	}
	data, err := json.Marshal(jwk)
	if err != nil {
		return nil, fmt.Errorf("marshal jwk: %w", err)
	}
	return data, nil
}
