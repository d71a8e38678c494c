package core

import "github.com/vuuvv/errors"

const (
	VarPacketLen = "packet_len"

	FieldChecksum = "checksum" // 报文中携带的校验值
	FieldExpected = "expected" // 重新计算得到的校验值
	FieldStart    = "start"
	FieldEnd      = "end"
)

type Context struct {
	Data    []byte
	BytePos int
	Fields  map[string]any // 字段值
	Vars    map[string]any // 变量值
}

func NewContext(data []byte) *Context {
	ctx := &Context{
		Data:   data,
		Vars:   make(map[string]any),
		Fields: make(map[string]any),
	}
	ctx.Vars[VarPacketLen] = len(data)
	return ctx
}

func (c *Context) SetField(name string, val any) {
	c.Fields[name] = val
}

func (c *Context) GetField(name string) (any, bool) {
	val, ok := c.Fields[name]
	return val, ok
}

func (c *Context) Seek(offset int) error {
	if offset < 0 || offset > len(c.Data) {
		return errors.Errorf("seek out of range: %d, total_len=%d", offset, len(c.Data))
	}
	c.BytePos = offset
	return nil
}

func (c *Context) ReadBytes(n int) ([]byte, error) {
	if c.BytePos+n > len(c.Data) {
		return nil, errors.Errorf("EOF reading bytes, need %d, have %d", n, len(c.Data)-c.BytePos)
	}
	ret := c.Data[c.BytePos : c.BytePos+n]
	c.BytePos += n
	return ret, nil
}
