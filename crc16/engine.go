package crc16

// Update returns the result of adding the bytes in data to the crc register.
// The register is returned as is, callers apply any final xor themselves.
func Update(crc uint16, tab *Table, data []byte) uint16 {
	if tab.orientation == Low {
		for _, b := range data {
			crc = tab.entries[byte(crc)^b] ^ crc>>8
		}
		return crc
	}
	for _, b := range data {
		crc = crc<<8 ^ tab.entries[byte(crc>>8)^b]
	}
	return crc
}

// Bitwise computes the register without a table, eight shift/xor steps per
// byte, most significant bit first. When reflect is set the polynomial is
// reflected before use; the register itself is never reflected.
func Bitwise(data []byte, poly, init uint16, reflect bool) uint16 {
	if reflect {
		poly = Reflect16(poly)
	}
	crc := init
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// HackerOption overrides one of the Hacker16 defaults.
type HackerOption func(p *Params)

func WithPoly(poly uint16) HackerOption {
	return func(p *Params) { p.Poly = poly }
}

func WithInit(init uint16) HackerOption {
	return func(p *Params) { p.Init = init }
}

func WithXorOut(xorout uint16) HackerOption {
	return func(p *Params) { p.XorOut = xorout }
}

// WithReflect sets the combined refin/refout flag.
func WithReflect(reflect bool) HackerOption {
	return func(p *Params) {
		p.RefIn = reflect
		p.RefOut = reflect
	}
}

// HackerDefaults returns the parameters Hacker16 starts from.
func HackerDefaults() Params {
	return Params{Poly: 0x1021, Init: 0xFFFF, XorOut: 0x0000}
}

// Hacker16 is the fully parameterised entry point. It starts from
// HackerDefaults(), applies opts and runs the bitwise engine.
//
// A single flag drives both reflections: only the polynomial is reflected and
// the output is xored, never bit reversed. Results therefore differ from the
// textbook refin/refout algorithms for reflected parameter sets.
func Hacker16(data []byte, opts ...HackerOption) uint16 {
	p := HackerDefaults()
	for _, opt := range opts {
		opt(&p)
	}
	return Generic(data, p)
}

// Generic runs the bitwise engine with the given parameters. RefOut is
// ignored, RefIn drives the combined reflection.
func Generic(data []byte, p Params) uint16 {
	return Bitwise(data, p.Poly, p.Init, p.RefIn) ^ p.XorOut
}
