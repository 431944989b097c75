package logic

import "math/bits"

// ═══════════════════════════════════════════════════════════════════════════
// GATE MODE
// ═══════════════════════════════════════════════════════════════════════════
//
// Mode is a 3-bit encoding shared by all seven gate kinds the synthesizer
// can place:
//
//	bits [1:0] select the family: 01=AND-like, 10=OR-like, 11=XOR-like
//	bit  [2]   inverts the family's result: 0=positive, 1=negated
//
// IN (0b000) is reserved for input-layer placeholders; no computed layer
// ever uses it, and IsComputable reports false for it.
//
// The encoding lets activation dispatch all six compute modes with a
// single 2-bit switch plus an XOR, instead of six separate branches.
type Mode uint8

const (
	ModeIn Mode = 0b000

	ModeAnd Mode = 0b001
	ModeOr  Mode = 0b010
	ModeXor Mode = 0b011

	ModeNand Mode = 0b101
	ModeNor  Mode = 0b110
	ModeXnor Mode = 0b111
)

// family isolates the low two family-selection bits.
func (m Mode) family() uint8 { return uint8(m) & 0b011 }

// inverted reports whether the mode negates its family's result.
func (m Mode) inverted() bool { return uint8(m)&0b100 != 0 }

// IsComputable reports whether m is one of the six gate kinds that read an
// input mask, as opposed to the input-layer placeholder ModeIn.
func (m Mode) IsComputable() bool { return m != ModeIn }

// String renders the fixed-width 4-character mode name used by circuit
// serialization: "IN  ", "AND ", "OR  ", "XOR ", "NAND", "NOR ", "XNOR".
func (m Mode) String() string {
	switch m {
	case ModeIn:
		return "IN  "
	case ModeAnd:
		return "AND "
	case ModeOr:
		return "OR  "
	case ModeXor:
		return "XOR "
	case ModeNand:
		return "NAND"
	case ModeNor:
		return "NOR "
	case ModeXnor:
		return "XNOR"
	default:
		return "????"
	}
}

// activation evaluates this gate's 0/1 output given the row's full
// activation vector, masked down to this gate's feeders: family bits
// select AND/OR/XOR on the masked value, and the invert bit XORs the
// family result.
func (m Mode) activation(masked, inputMask uint64) uint64 {
	var result uint64
	switch m.family() {
	case uint8(ModeAnd):
		result = b2u(masked == inputMask)
	case uint8(ModeOr):
		result = b2u(masked != 0)
	case uint8(ModeXor):
		result = uint64(bits.OnesCount64(masked) & 1)
	}
	if m.inverted() {
		result ^= 1
	}
	return result
}

func b2u(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
