package utils

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
	"strconv"
	"strings"

	"github.com/vuuvv/errors"
	"golang.org/x/exp/constraints"
)

const (
	PaddingLeft  string = "left"  // 在前面填充
	PaddingRight string = "right" // 在后面填充
)

func Uint64ToBytes[T constraints.Integer](u T, size int, order binary.ByteOrder) []byte {
	data := make([]byte, 8)
	order.PutUint64(data, uint64(u))

	switch order {
	case binary.LittleEndian:
		return data[:size]
	default: // 默认情况是大端的
		return data[8-size:]
	}
}

// minSize 表示数值所需的最少字节数
func minSize(u uint64) int {
	n := (bits.Len64(u) + 7) / 8
	if n == 0 {
		return 1
	}
	return n
}

func ResizeBytes(data []byte, size int, padByte byte, position string) []byte {
	if position == "" {
		position = PaddingRight
	}
	if size < 0 {
		return nil
	}

	currentLen := len(data)
	if currentLen == size {
		return data
	}
	if currentLen > size {
		return data[:size]
	}

	needPad := size - currentLen
	result := make([]byte, size)
	switch position {
	case PaddingLeft:
		for i := 0; i < needPad; i++ {
			result[i] = padByte
		}
		copy(result[needPad:], data)
	default:
		copy(result, data)
		for i := currentLen; i < size; i++ {
			result[i] = padByte
		}
	}
	return result
}

// ParseTValue 核心解析函数：将输入字符串解析为 []byte
//
// 支持 T'xxx' 格式, T 为 b(二进制) o(八进制) d(十进制) x/h(十六进制) s(字符串),
// 其他输入按十六进制处理. size < 0 时不调整长度, 数值类型使用最少字节数.
func ParseTValue(inputString string, size int, byteOrder binary.ByteOrder) ([]byte, error) {
	var typeID string
	var dataStr string

	if len(inputString) >= 3 && inputString[1] == '\'' && inputString[len(inputString)-1] == '\'' {
		typeID = strings.ToLower(string(inputString[0]))
		dataStr = inputString[2 : len(inputString)-1]
	} else {
		typeID = "h"
		dataStr = inputString
	}

	var value []byte
	var err error

	switch typeID {
	case "b": // 二进制 (Binary)
		binStr := strings.TrimPrefix(dataStr, "0b")
		u, e := strconv.ParseUint(binStr, 2, 64)
		if e != nil {
			return nil, errors.Wrapf(e, "invalid binary number b'%s'", dataStr)
		}
		value = numberBytes(u, size, byteOrder)

	case "o": // 八进制 (Octal)
		octStr := strings.TrimPrefix(dataStr, "0o")
		u, e := strconv.ParseUint(octStr, 8, 64)
		if e != nil {
			return nil, errors.Wrapf(e, "invalid octal number o'%s'", dataStr)
		}
		value = numberBytes(u, size, byteOrder)

	case "d": // 十进制 (Decimal)
		u, e := strconv.ParseUint(dataStr, 10, 64)
		if e != nil {
			return nil, errors.Wrapf(e, "invalid decimal number d'%s'", dataStr)
		}
		value = numberBytes(u, size, byteOrder)

	case "x", "h": // 十六进制 (Hex)
		hexStr := strings.TrimPrefix(dataStr, "0x")
		hexStr = strings.NewReplacer(" ", "", ":", "", "-", "").Replace(hexStr)

		// 确保长度是偶数，如果不是，则补零以保证字节对齐
		if len(hexStr)%2 != 0 {
			hexStr = "0" + hexStr
		}

		value, err = hex.DecodeString(hexStr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid hex string %s'%s'", typeID, dataStr)
		}
		if size < 0 {
			return value, nil
		}
		value = ResizeBytes(value, size, 0, PaddingRight)

	case "s": // 字符串 (String)
		value = []byte(dataStr)
		if size < 0 {
			return value, nil
		}
		value = ResizeBytes(value, size, 0, PaddingRight)

	default:
		return nil, errors.Errorf("unrecognized type identifier: %s. Expected b, o, d, x, h, or s.", typeID)
	}

	return value, nil
}

func numberBytes(u uint64, size int, byteOrder binary.ByteOrder) []byte {
	if size < 0 || size > 8 {
		size = minSize(u)
	}
	return Uint64ToBytes(u, size, byteOrder)
}
