package crc16

// Reflect16 reverses the bit order of x: bit i becomes bit 15-i.
func Reflect16(x uint16) uint16 {
	x = (x&0x5555)<<1 | (x>>1)&0x5555
	x = (x&0x3333)<<2 | (x>>2)&0x3333
	x = (x&0x0F0F)<<4 | (x>>4)&0x0F0F
	return x<<8 | x>>8
}
