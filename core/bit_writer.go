package core

import (
	"bytes"
	"encoding/binary"

	"github.com/vuuvv/errors"
	"github.com/vuuvv/vcrc/utils"
)

type BitWriter struct {
	Buffer bytes.Buffer
}

func NewBitWriter() *BitWriter {
	return &BitWriter{}
}

// WriteBits 简化实现，只支持按字节对齐的宽度
func (w *BitWriter) WriteBits(value uint64, n int, byteOrder binary.ByteOrder) error {
	if n%8 != 0 || n <= 0 || n > 64 {
		return errors.Errorf("bit field size %d is not byte-aligned for encoding", n)
	}
	_, err := w.Buffer.Write(utils.Uint64ToBytes(value, n/8, byteOrder))
	return err
}

// WriteBytes 写入完整的字节
func (w *BitWriter) WriteBytes(data []byte) error {
	_, err := w.Buffer.Write(data)
	return err
}

// WritePlaceholder 写入n个0字节, 之后通过Set回填
func (w *BitWriter) WritePlaceholder(n int) error {
	return w.WriteBytes(make([]byte, n))
}

func (w *BitWriter) Set(data []byte, offset int) error {
	if offset < 0 || offset+len(data) > w.Buffer.Len() {
		return errors.New("invalid set offset or length")
	}
	copy(w.Buffer.Bytes()[offset:offset+len(data)], data)
	return nil
}

func (w *BitWriter) Bytes() []byte {
	return w.Buffer.Bytes()
}
