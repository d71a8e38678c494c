package core

import (
	"github.com/spf13/cast"
	"github.com/vuuvv/errors"
	"github.com/vuuvv/vcrc/crc16"
)

// AlgorithmConfig 自定义的校验算法, 数值可以是整数(支持0x前缀)或者字符串
type AlgorithmConfig struct {
	Name    string `yaml:"name"`
	Poly    any    `yaml:"poly"`
	Init    any    `yaml:"init"`
	XorOut  any    `yaml:"xorout"`
	Reflect any    `yaml:"reflect"`
}

// Params 转换为 crc16.Params, 未设置的字段使用 crc16.HackerDefaults
func (this *AlgorithmConfig) Params() (p crc16.Params, err error) {
	p = crc16.HackerDefaults()
	p.Name = this.Name

	if p.Poly, err = ToUint16(this.Poly, p.Poly); err != nil {
		return p, errors.Wrapf(err, "algorithm %s: invalid poly", this.Name)
	}
	if p.Init, err = ToUint16(this.Init, p.Init); err != nil {
		return p, errors.Wrapf(err, "algorithm %s: invalid init", this.Name)
	}
	if p.XorOut, err = ToUint16(this.XorOut, p.XorOut); err != nil {
		return p, errors.Wrapf(err, "algorithm %s: invalid xorout", this.Name)
	}
	if this.Reflect != nil {
		reflect, err := cast.ToBoolE(this.Reflect)
		if err != nil {
			return p, errors.Wrapf(err, "algorithm %s: invalid reflect", this.Name)
		}
		p.RefIn = reflect
		p.RefOut = reflect
	}
	return p, nil
}

// Compile 返回使用 bitwise 引擎的计算函数
func (this *AlgorithmConfig) Compile() (Func, error) {
	p, err := this.Params()
	if err != nil {
		return nil, err
	}
	return func(data []byte) uint16 {
		return crc16.Generic(data, p)
	}, nil
}

// ToUint16 converts a yaml scalar or a flag value to 16 bits. Strings may
// carry a 0x, 0o or 0b prefix. A nil val yields def.
func ToUint16(val any, def uint16) (uint16, error) {
	if val == nil {
		return def, nil
	}
	v, err := cast.ToUint64E(val)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	if v > 0xFFFF {
		return 0, errors.Errorf("value %s overflows 16 bits", ToString(val))
	}
	return uint16(v), nil
}

type Config struct {
	Algorithms []*AlgorithmConfig `yaml:"algorithms"`
	Frames     []*FrameRule       `yaml:"frames"`
}
