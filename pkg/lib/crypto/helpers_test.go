package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// seedOf 返回由单一字节填充的 32 字节种子
func seedOf(b byte) []byte {
	return bytes.Repeat([]byte{b}, SeedSize)
}

// countingReader 记录被读取字节数的确定性随机源
type countingReader struct {
	fill byte
	n    int
}

func (r *countingReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.fill
	}
	r.n += len(p)
	return len(p), nil
}

// mustKeyPair 从种子创建密钥对，失败时终止测试
func mustKeyPair(t *testing.T, kt KeyType, seed []byte) *KeyPair {
	t.Helper()
	kp, err := NewKeyPairFromSeed(kt, seed, nil)
	require.NoError(t, err)
	return kp
}
