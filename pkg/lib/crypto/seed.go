package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"runtime"
)

// SeedSize 种子长度（32 字节）
const SeedSize = 32

// ============================================================================
//                              种子处理
// ============================================================================

// ResolveSeed 校验或生成 32 字节种子
//
// 规则：
//   - 32 字节：原样复制，相同种子派生相同密钥
//   - 空：从 rnd 读取 32 字节（rnd 为 nil 时使用 crypto/rand）
//   - 其他长度：返回 ErrInvalidSeed
//
// 返回的切片归调用方所有，用完后应调用 Wipe。
func ResolveSeed(seed []byte, rnd io.Reader) ([]byte, error) {
	switch len(seed) {
	case SeedSize:
		out := make([]byte, SeedSize)
		copy(out, seed)
		return out, nil
	case 0:
		return RandomBytesFrom(rnd, SeedSize)
	default:
		return nil, fmt.Errorf("%w: expected %d bytes or empty, got %d", ErrInvalidSeed, SeedSize, len(seed))
	}
}

// RandomBytesFrom 从指定随机源读取 n 字节
//
// rnd 为 nil 时使用系统的加密安全随机源。
func RandomBytesFrom(rnd io.Reader, n int) ([]byte, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(rnd, b); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return b, nil
}

// RandomBytes 生成指定长度的加密安全随机字节
func RandomBytes(n int) ([]byte, error) {
	return RandomBytesFrom(rand.Reader, n)
}

// ============================================================================
//                              敏感数据清零
// ============================================================================

// Wipe 清零字节切片
//
//go:noinline
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	runtime.KeepAlive(&b)
}
