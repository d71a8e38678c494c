package core

import (
	"sort"
	"strings"

	"github.com/vuuvv/errors"
	"github.com/vuuvv/vcrc/checksum"
	"github.com/vuuvv/vcrc/crc16"
)

const (
	KEY_CRC16    = "crc16"
	KEY_CHECKSUM = "checksum"

	KEY_INTERNET   = "internet"
	KEY_UDP        = "udp"
	KEY_TCP        = "tcp"
	KEY_FLETCHER16 = "fletcher16"
)

// Func computes a 16-bit checksum over a complete buffer.
type Func func(data []byte) uint16

var Crc16Map = func() map[string]Func {
	m := make(map[string]Func)
	for _, v := range crc16.Variants() {
		m[v.Name] = v.Checksum
	}
	return m
}()

var ChecksumMap = map[string]Func{
	KEY_INTERNET:   checksum.Internet,
	KEY_UDP:        checksum.UDP,
	KEY_TCP:        checksum.TCP,
	KEY_FLETCHER16: checksum.Fletcher16,
}

// Crc 计算校验值, name的格式 xxx_xxx, 如crc16_modbus, checksum_udp
func Crc(data []byte, name string) (uint64, error) {
	sum, err := Checksum16(data, name)
	return uint64(sum), err
}

// Checksum16 looks up name among the builtin algorithms and runs it.
func Checksum16(data []byte, name string) (uint16, error) {
	fn, err := lookupBuiltin(name)
	if err != nil {
		return 0, err
	}
	return fn(data), nil
}

func Crc16(data []byte, key string) (uint64, error) {
	fn, ok := Crc16Map[key]
	if !ok {
		return 0, errors.Errorf("crc16: unsupport crc type '%s'", key)
	}
	return uint64(fn(data)), nil
}

func lookupBuiltin(name string) (Func, error) {
	parts := strings.SplitN(name, "_", 2)
	if len(parts) < 2 {
		return nil, errors.Errorf("invalid crc name: %s", name)
	}
	kind, key := parts[0], parts[1]
	var table map[string]Func
	switch kind {
	case KEY_CRC16:
		table = Crc16Map
	case KEY_CHECKSUM:
		table = ChecksumMap
	default:
		return nil, errors.Errorf("unsupport crc bits: %s", kind)
	}
	fn, ok := table[key]
	if !ok {
		return nil, errors.Errorf("%s: unsupport crc type '%s'", kind, key)
	}
	return fn, nil
}

// BuiltinNames lists every name accepted by Crc, sorted.
func BuiltinNames() []string {
	var names []string
	for key := range Crc16Map {
		names = append(names, KEY_CRC16+"_"+key)
	}
	for key := range ChecksumMap {
		names = append(names, KEY_CHECKSUM+"_"+key)
	}
	sort.Strings(names)
	return names
}
