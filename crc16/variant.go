package crc16

const (
	KEY_MODBUS      = "modbus"
	KEY_USB16       = "usb16"
	KEY_IBM         = "ibm"
	KEY_XMODEM      = "xmodem"
	KEY_CCITT       = "ccitt"
	KEY_CCITT_FALSE = "ccitt_false"
	KEY_KERMIT      = "kermit"
	KEY_MCRF4XX     = "mcrf4xx"
	KEY_SICK        = "sick"
	KEY_DNP         = "dnp"
	KEY_X25         = "x25"
	KEY_MAXIM16     = "maxim16"
	KEY_DECT        = "dect"
)

// Polynomials in the form the tables are built from.
const (
	PolyA001 = 0xA001 // reflected 0x8005
	Poly8005 = 0x8005
	Poly1021 = 0x1021
	Poly8408 = 0x8408 // reflected 0x1021
	PolyA6BC = 0xA6BC // reflected 0x3D65
	Poly91A0 = 0x91A0 // reflected 0x0589
)

// CCITTAugmentedInit is the alternative CCITT-FALSE register seed (AUG-CCITT).
const CCITTAugmentedInit = 0x1D0F

// Params fully describes one CRC-16 variant. Poly is the normal
// (non-reflected) polynomial.
type Params struct {
	Poly   uint16
	Init   uint16
	XorOut uint16
	RefIn  bool
	RefOut bool
	Name   string
}

// Variant is a named preset bound to its precomputed table. Variants are
// handed out by value; the catalog itself is never written after init.
type Variant struct {
	Params
	table   *Table
	compute func(data []byte, init uint16) uint16
}

// Checksum returns the checksum of data starting from the preset init value.
func (v Variant) Checksum(data []byte) uint16 {
	return v.ChecksumWithInit(data, v.Init)
}

// ChecksumWithInit returns the checksum of data with the register seeded by init.
func (v Variant) ChecksumWithInit(data []byte, init uint16) uint16 {
	if v.compute != nil {
		return v.compute(data, init) ^ v.XorOut
	}
	return Update(init, v.table, data) ^ v.XorOut
}

// Table returns the lookup table the variant runs on, nil for SICK.
func (v Variant) Table() *Table {
	return v.table
}

func (v Variant) checksum(data []byte, init []uint16) uint16 {
	if len(init) > 0 {
		return v.ChecksumWithInit(data, init[0])
	}
	return v.Checksum(data)
}

var (
	tableA001 = MakeTable(PolyA001, Low)
	table8005 = MakeTable(Poly8005, High)
	table1021 = MakeTable(Poly1021, High)
	table8408 = MakeTable(Poly8408, Low)
	tableA6BC = MakeTable(PolyA6BC, Low)
	table91A0 = MakeTable(Poly91A0, Low)
)

var (
	crc16Modbus     = Variant{Params: Params{Poly: 0x8005, Init: 0xFFFF, XorOut: 0x0000, RefIn: true, RefOut: true, Name: KEY_MODBUS}, table: tableA001}
	crc16USB        = Variant{Params: Params{Poly: 0x8005, Init: 0xFFFF, XorOut: 0xFFFF, RefIn: true, RefOut: true, Name: KEY_USB16}, table: tableA001}
	crc16IBM        = Variant{Params: Params{Poly: 0x8005, Init: 0x0000, XorOut: 0x0000, RefIn: true, RefOut: true, Name: KEY_IBM}, table: tableA001}
	crc16XModem     = Variant{Params: Params{Poly: 0x1021, Init: 0x0000, XorOut: 0x0000, Name: KEY_XMODEM}, table: table1021}
	crc16CCITTFalse = Variant{Params: Params{Poly: 0x1021, Init: 0xFFFF, XorOut: 0x0000, Name: KEY_CCITT_FALSE}, table: table1021}
	crc16Kermit     = Variant{Params: Params{Poly: 0x1021, Init: 0x0000, XorOut: 0x0000, RefIn: true, RefOut: true, Name: KEY_KERMIT}, table: table8408}
	crc16CCITT      = Variant{Params: Params{Poly: 0x1021, Init: 0x0000, XorOut: 0x0000, RefIn: true, RefOut: true, Name: KEY_CCITT}, table: table8408}
	crc16MCRF4XX    = Variant{Params: Params{Poly: 0x1021, Init: 0xFFFF, XorOut: 0x0000, RefIn: true, RefOut: true, Name: KEY_MCRF4XX}, table: table8408}
	crc16X25        = Variant{Params: Params{Poly: 0x1021, Init: 0xFFFF, XorOut: 0xFFFF, RefIn: true, RefOut: true, Name: KEY_X25}, table: table8408}
	crc16Sick       = Variant{Params: Params{Poly: 0x8005, Init: 0x0000, XorOut: 0x0000, Name: KEY_SICK}, compute: sick}
	crc16DNP        = Variant{Params: Params{Poly: 0x3D65, Init: 0x0000, XorOut: 0xFFFF, RefIn: true, RefOut: true, Name: KEY_DNP}, table: tableA6BC}
	crc16Maxim      = Variant{Params: Params{Poly: 0x8005, Init: 0x0000, XorOut: 0xFFFF, RefIn: true, RefOut: true, Name: KEY_MAXIM16}, table: tableA001}
	crc16DECT       = Variant{Params: Params{Poly: 0x0589, Init: 0x0000, XorOut: 0x0000, RefIn: true, RefOut: true, Name: KEY_DECT}, table: table91A0}

	// reached through IBMWithPoly only
	crc16IBM8005 = Variant{Params: Params{Poly: 0x8005, Init: 0x0000, XorOut: 0x0000, Name: KEY_IBM}, table: table8005}
)

var variants = []*Variant{
	&crc16Modbus,
	&crc16USB,
	&crc16IBM,
	&crc16XModem,
	&crc16CCITT,
	&crc16CCITTFalse,
	&crc16Kermit,
	&crc16MCRF4XX,
	&crc16Sick,
	&crc16DNP,
	&crc16X25,
	&crc16Maxim,
	&crc16DECT,
}

var variantsByName = func() map[string]*Variant {
	m := make(map[string]*Variant, len(variants))
	for _, v := range variants {
		m[v.Name] = v
	}
	return m
}()

// Lookup returns a copy of the preset registered under name.
func Lookup(name string) (Variant, bool) {
	v, ok := variantsByName[name]
	if !ok {
		return Variant{}, false
	}
	return *v, true
}

// Variants returns copies of the presets in catalog order.
func Variants() []Variant {
	ret := make([]Variant, len(variants))
	for i, v := range variants {
		ret[i] = *v
	}
	return ret
}

// Modbus computes CRC-16/MODBUS. An optional init overrides the 0xFFFF seed.
func Modbus(data []byte, init ...uint16) uint16 {
	return crc16Modbus.checksum(data, init)
}

// USB16 computes CRC-16/USB.
func USB16(data []byte, init ...uint16) uint16 {
	return crc16USB.checksum(data, init)
}

// IBM computes CRC-16/ARC (IBM, LHA).
func IBM(data []byte, init ...uint16) uint16 {
	return crc16IBM.checksum(data, init)
}

// IBMWithPoly computes the IBM checksum with the table selected by poly:
// 0x8005 runs the MSB-first table, anything else the reflected 0xA001 one.
func IBMWithPoly(data []byte, poly uint16, init ...uint16) uint16 {
	if poly == Poly8005 {
		return crc16IBM8005.checksum(data, init)
	}
	return crc16IBM.checksum(data, init)
}

// XModem computes CRC-16/XMODEM.
func XModem(data []byte, init ...uint16) uint16 {
	return crc16XModem.checksum(data, init)
}

// CCITT computes CRC-16/CCITT-TRUE, an alias of Kermit.
func CCITT(data []byte, init ...uint16) uint16 {
	return crc16CCITT.checksum(data, init)
}

// CCITTFalse computes CRC-16/CCITT-FALSE. Pass CCITTAugmentedInit for AUG-CCITT.
func CCITTFalse(data []byte, init ...uint16) uint16 {
	return crc16CCITTFalse.checksum(data, init)
}

// Kermit computes CRC-16/KERMIT.
func Kermit(data []byte, init ...uint16) uint16 {
	return crc16Kermit.checksum(data, init)
}

// MCRF4XX computes the checksum used by Microchip MCRF4XX RFID tags.
func MCRF4XX(data []byte, init ...uint16) uint16 {
	return crc16MCRF4XX.checksum(data, init)
}

// Sick computes CRC-16/SICK.
func Sick(data []byte, init ...uint16) uint16 {
	return crc16Sick.checksum(data, init)
}

// DNP computes CRC-16/DNP (also M-Bus, IEC 870).
func DNP(data []byte, init ...uint16) uint16 {
	return crc16DNP.checksum(data, init)
}

// X25 computes CRC-16/X-25.
func X25(data []byte, init ...uint16) uint16 {
	return crc16X25.checksum(data, init)
}

// Maxim16 computes CRC-16/MAXIM.
func Maxim16(data []byte, init ...uint16) uint16 {
	return crc16Maxim.checksum(data, init)
}

// DECT computes the DECT checksum over the reflected 0x0589 polynomial.
func DECT(data []byte, init ...uint16) uint16 {
	return crc16DECT.checksum(data, init)
}
