package diddoc

import "encoding/json"

// JSON-LD 上下文
const (
	ContextDIDv1       = "https://www.w3.org/ns/did/v1"
	ContextEd255192018 = "https://w3id.org/security/suites/ed25519-2018/v1"
	ContextX255192019  = "https://w3id.org/security/suites/x25519-2019/v1"
	ContextJWS2020     = "https://w3id.org/security/suites/jws-2020/v1"
)

// 验证方法类型
const (
	TypeEd25519VerificationKey2018    = "Ed25519VerificationKey2018"
	TypeX25519KeyAgreementKey2019     = "X25519KeyAgreementKey2019"
	TypeUnsupportedVerificationMethod = "UnsupportedVerificationMethod2020"
	TypeJSONWebKey2020                = "JsonWebKey2020"
)

// Document DID 文档
type Document struct {
	Context              []string             `json:"@context"`
	ID                   string               `json:"id"`
	VerificationMethod   []VerificationMethod `json:"verificationMethod"`
	Authentication       []string             `json:"authentication,omitempty"`
	AssertionMethod      []string             `json:"assertionMethod,omitempty"`
	CapabilityDelegation []string             `json:"capabilityDelegation,omitempty"`
	CapabilityInvocation []string             `json:"capabilityInvocation,omitempty"`
	KeyAgreement         []string             `json:"keyAgreement,omitempty"`
}

// VerificationMethod 验证方法
//
// 旧格式使用 publicKeyBase58，JOSE 格式使用 publicKeyJwk。
// 私钥字段只在显式开启 SerializeSecrets 时填充。
type VerificationMethod struct {
	ID               string          `json:"id"`
	Type             string          `json:"type"`
	Controller       string          `json:"controller"`
	PublicKeyBase58  string          `json:"publicKeyBase58,omitempty"`
	PrivateKeyBase58 string          `json:"privateKeyBase58,omitempty"`
	PublicKeyJwk     json.RawMessage `json:"publicKeyJwk,omitempty"`
	PrivateKeyJwk    json.RawMessage `json:"privateKeyJwk,omitempty"`
}

// MethodByID 按 ID 查找验证方法
func (d *Document) MethodByID(id string) (VerificationMethod, bool) {
	for _, vm := range d.VerificationMethod {
		if vm.ID == id {
			return vm, true
		}
	}
	return VerificationMethod{}, false
}

// MarshalIndent 输出缩进的 JSON
func (d *Document) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}
