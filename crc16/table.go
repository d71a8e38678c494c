// Package crc16 implements the 16-bit cyclic redundancy check family used by
// Modbus, USB, XMODEM, X.25, Kermit, DNP and friends.
//
// Presets are table driven. Arbitrary parameter sets go through the bitwise
// engine (see Hacker16). All package level tables are built once at init and
// are never written afterwards, so every function is safe for concurrent use.
package crc16

// Size is the size of a CRC-16 checksum in bytes.
const Size = 2

// Orientation tells the table builder and the table driven engine which end
// of the register the input enters.
type Orientation int

const (
	// High processes the most significant bit first, the table is built from
	// the normal polynomial (0x1021 for XMODEM).
	High Orientation = iota
	// Low processes the least significant bit first, the table is built from
	// the reflected polynomial (0xA001 for Modbus).
	Low
)

func (o Orientation) String() string {
	switch o {
	case High:
		return "high"
	case Low:
		return "low"
	}
	return "unknown"
}

// OrientationOf picks the orientation for a polynomial written in its table
// form. Reflected polynomials carry the x^0 term in bit 15.
func OrientationOf(poly uint16) Orientation {
	if poly&0x8000 != 0 {
		return Low
	}
	return High
}

// Table is a 256-word table representing the polynomial for efficient processing.
// A Table is read-only once built.
type Table struct {
	poly        uint16
	orientation Orientation
	entries     [256]uint16
}

// MakeTable returns the Table constructed from the specified polynomial and orientation.
func MakeTable(poly uint16, orientation Orientation) *Table {
	t := &Table{poly: poly, orientation: orientation}
	if orientation == High {
		makeTableHigh(poly, &t.entries)
	} else {
		makeTableLow(poly, &t.entries)
	}
	return t
}

// MakeTableFor builds the table for poly using OrientationOf.
func MakeTableFor(poly uint16) *Table {
	return MakeTable(poly, OrientationOf(poly))
}

// Table16 returns the raw 256 entries for poly.
func Table16(poly uint16) [256]uint16 {
	return MakeTableFor(poly).entries
}

// Poly returns the polynomial the table was built from.
func (t *Table) Poly() uint16 {
	return t.poly
}

func (t *Table) Orientation() Orientation {
	return t.orientation
}

// Entries returns a copy of the table entries.
func (t *Table) Entries() [256]uint16 {
	return t.entries
}

// At returns the entry for byte b.
func (t *Table) At(b byte) uint16 {
	return t.entries[b]
}

func makeTableHigh(poly uint16, entries *[256]uint16) {
	for i := 0; i < 256; i++ {
		crc := uint16(i) << 8
		for j := 0; j < 8; j++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		entries[i] = crc
	}
}

func makeTableLow(poly uint16, entries *[256]uint16) {
	for i := 0; i < 256; i++ {
		crc := uint16(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = crc>>1 ^ poly
			} else {
				crc >>= 1
			}
		}
		entries[i] = crc
	}
}
