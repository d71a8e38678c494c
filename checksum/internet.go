// Package checksum implements the non-CRC 16-bit checksums: the RFC 1071
// ones' complement sum used by IP, UDP and TCP, and Fletcher-16.
package checksum

import "encoding/binary"

// Internet returns the ones' complement of the ones' complement sum of data
// taken as big-endian 16-bit words. An odd trailing byte is the high byte of
// a zero padded word. Pseudo headers are the caller's business.
func Internet(data []byte) uint16 {
	var sum uint64
	n := len(data)
	i := 0

	for n-i >= 8 {
		sum += uint64(binary.BigEndian.Uint16(data[i:]))
		sum += uint64(binary.BigEndian.Uint16(data[i+2:]))
		sum += uint64(binary.BigEndian.Uint16(data[i+4:]))
		sum += uint64(binary.BigEndian.Uint16(data[i+6:]))
		i += 8
	}
	for n-i >= 2 {
		sum += uint64(binary.BigEndian.Uint16(data[i:]))
		i += 2
	}
	if i < n {
		sum += uint64(data[i]) << 8
	}

	for sum>>16 != 0 {
		sum = sum&0xFFFF + sum>>16
	}
	return ^uint16(sum)
}

// UDP is the payload checksum of a UDP datagram.
func UDP(data []byte) uint16 {
	return Internet(data)
}

// TCP is the payload checksum of a TCP segment.
func TCP(data []byte) uint16 {
	return Internet(data)
}
