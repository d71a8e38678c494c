package crc16

// sick runs the SICK sensor checksum. Each step folds the current and the
// previous input byte into the register; the result goes out low byte first.
func sick(data []byte, crc uint16) uint16 {
	var prev uint16
	for _, b := range data {
		cur := uint16(b)
		if crc&0x8000 != 0 {
			crc = crc<<1 ^ Poly8005
		} else {
			crc <<= 1
		}
		crc ^= cur | prev
		prev = cur << 8
	}
	return crc<<8 | crc>>8
}
