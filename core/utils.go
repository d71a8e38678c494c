package core

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/vuuvv/errors"
)

const (
	EndianBig    = "big"
	EndianLittle = "little"
)

// ByteOrder 字节序, big: 大端, little: 小端, 默认大端
func ByteOrder(endian string) binary.ByteOrder {
	if strings.ToLower(endian) == EndianLittle {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func ToString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case error:
		return fmt.Sprintf("%+v", v)
	default:
		return cast.ToString(val)
	}
}

func ConvertBytesToInt(data []byte, byteOrder binary.ByteOrder) (uint64, error) {
	if byteOrder == binary.LittleEndian {
		return ConvertBytesToIntLE(data)
	}
	return ConvertBytesToIntBE(data)
}

func ConvertBytesToIntBE(data []byte) (uint64, error) {
	byteLen := len(data)
	if byteLen < 1 || byteLen > 8 {
		return 0, errors.New("字节长度必须在1-8之间")
	}

	var result uint64
	for i := 0; i < byteLen; i++ {
		result = (result << 8) | uint64(data[i])
	}
	return result, nil
}

func ConvertBytesToIntLE(data []byte) (uint64, error) {
	byteLen := len(data)
	if byteLen < 1 || byteLen > 8 {
		return 0, errors.New("字节长度必须在1-8之间")
	}

	var result uint64
	for i := 0; i < byteLen; i++ {
		result |= uint64(data[i]) << (i * 8)
	}
	return result, nil
}
