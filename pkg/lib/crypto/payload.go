package crypto

import "fmt"

// Payload 待签名/验证的数据
//
// 单缓冲区形式适用于所有签名算法；多缓冲区形式保留给一次处理多条消息的
// 配对类算法，单缓冲区算法会以 ErrUnsupportedPayload 拒绝它。
type Payload struct {
	buffers [][]byte
	multi   bool
}

// Buffer 构造单缓冲区 Payload
func Buffer(data []byte) Payload {
	return Payload{buffers: [][]byte{data}}
}

// BufferArray 构造多缓冲区 Payload（保持顺序）
func BufferArray(data ...[]byte) Payload {
	return Payload{buffers: data, multi: true}
}

// IsMulti 是否为多缓冲区形式
func (p Payload) IsMulti() bool {
	return p.multi
}

// Len 返回缓冲区个数
func (p Payload) Len() int {
	return len(p.buffers)
}

// Buffers 返回全部缓冲区
func (p Payload) Buffers() [][]byte {
	return p.buffers
}

// Single 返回单缓冲区数据
//
// 多缓冲区形式返回 ErrUnsupportedPayload。
func (p Payload) Single() ([]byte, error) {
	if p.multi {
		return nil, fmt.Errorf("%w: got %d buffers", ErrUnsupportedPayload, len(p.buffers))
	}
	if len(p.buffers) == 0 {
		return nil, nil
	}
	return p.buffers[0], nil
}
