package core

import (
	"encoding/binary"
	"fmt"

	"github.com/vuuvv/errors"
	"github.com/vuuvv/vcrc/crc16"
)

// FrameRule 描述报文中校验字段的位置: 校验范围为 [start, end), 校验值紧跟在 end 之后
type FrameRule struct {
	Name      string `yaml:"name"`
	Algorithm string `yaml:"algorithm"` // 如 crc16_modbus
	Start     string `yaml:"start"`     // 起始偏移 CEL 表达式, 默认 0
	End       string `yaml:"end"`       // 结束偏移 CEL 表达式, 默认 vars.packet_len - 2
	Endian    string `yaml:"endian"`    // 校验值的字节序

	fn    Func
	start *CelEvaluator
	end   *CelEvaluator
}

func (this *FrameRule) Setup(fn Func) error {
	if this.Name == "" {
		return errors.New("frame name should not be empty")
	}
	if fn == nil {
		return errors.Errorf("frame %s: no checksum algorithm", this.Name)
	}
	this.fn = fn

	if this.Start != "" {
		expr, err := CompileExpression(this.Start)
		if err != nil {
			return errors.Wrapf(err, "Compile 'start' of frame %s", this.Name)
		}
		this.start = expr
	}
	if this.End != "" {
		expr, err := CompileExpression(this.End)
		if err != nil {
			return errors.Wrapf(err, "Compile 'end' of frame %s", this.Name)
		}
		this.end = expr
	}
	return nil
}

func (this *FrameRule) GetByteOrder() binary.ByteOrder {
	return ByteOrder(this.Endian)
}

// scope 计算校验范围的起始和结束字节偏移量
func (this *FrameRule) scope(ctx *Context) (start int, end int, err error) {
	if this.start != nil {
		start, err = this.start.ExecuteInt(ctx)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "frame %s: start expression execute failed", this.Name)
		}
	}

	end = len(ctx.Data) - crc16.Size
	if this.end != nil {
		end, err = this.end.ExecuteInt(ctx)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "frame %s: end expression execute failed", this.Name)
		}
	}

	if start < 0 || end+crc16.Size > len(ctx.Data) || start > end {
		return 0, 0, errors.Errorf("invalid dynamic CRC scope: start=%d, end=%d, total_len=%d", start, end, len(ctx.Data))
	}
	ctx.SetField(FieldStart, start)
	ctx.SetField(FieldEnd, end)
	return start, end, nil
}

// Verify recomputes the checksum of packet and compares it with the one it carries.
func (this *FrameRule) Verify(packet []byte) (*Context, error) {
	ctx := NewContext(packet)
	start, end, err := this.scope(ctx)
	if err != nil {
		return ctx, err
	}

	expected := this.fn(packet[start:end])
	ctx.SetField(FieldExpected, expected)

	if err = ctx.Seek(end); err != nil {
		return ctx, err
	}
	field, err := ctx.ReadBytes(crc16.Size)
	if err != nil {
		return ctx, errors.WithStack(err)
	}
	actual, err := ConvertBytesToInt(field, this.GetByteOrder())
	if err != nil {
		return ctx, errors.WithStack(err)
	}
	ctx.SetField(FieldChecksum, uint16(actual))

	if uint16(actual) != expected {
		return ctx, errors.Errorf("frame %s: CRC check failed, expect '%04X', actual '%04X'", this.Name, expected, actual)
	}
	return ctx, nil
}

// Seal appends a checksum placeholder to payload, evaluates the scope on the
// resulting packet and fills the placeholder in.
func (this *FrameRule) Seal(payload []byte) ([]byte, error) {
	w := NewBitWriter()
	if err := w.WriteBytes(payload); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := w.WritePlaceholder(crc16.Size); err != nil {
		return nil, errors.WithStack(err)
	}

	packet := w.Bytes()
	ctx := NewContext(packet)
	start, end, err := this.scope(ctx)
	if err != nil {
		return nil, err
	}

	sum := this.fn(packet[start:end])
	field := NewBitWriter()
	if err = field.WriteBits(uint64(sum), crc16.Size*8, this.GetByteOrder()); err != nil {
		return nil, errors.WithStack(err)
	}
	if err = w.Set(field.Bytes(), end); err != nil {
		return nil, errors.Wrapf(err, "frame %s: write checksum at %d", this.Name, end)
	}
	return w.Bytes(), nil
}

func (this *FrameRule) String() string {
	return fmt.Sprintf("%s(%s, %s)", this.Name, this.Algorithm, this.GetByteOrder())
}
