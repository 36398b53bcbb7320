package x64

// extensionBits returns (x, b): the hcode of rm's index and base/register,
// the two bits every prefix family extracts from the r/m operand the same
// way. A nil operand (vex2's bare-opcode callers) contributes zero to both.
func extensionBits(rm Operand) (x, b byte) {
	switch v := rm.(type) {
	case nil:
		return 0, 0
	case Register:
		return 0, v.HCode()
	case MemoryAddress:
		if v.BaseSet {
			b = v.Base.HCode()
		}
		if v.IndexSet {
			x = v.Index.HCode()
		}
		return x, b
	default:
		violate("rm must be a Register, a MemoryAddress, or nil, got %T", rm)
		return 0, 0
	}
}

func checkBit(name string, v byte) {
	if v & ^byte(1) != 0 {
		violate("%s must be 0 or 1, got %d", name, v)
	}
}

// OptionalREX emits a one-byte REX prefix only when needed: if R, X, and B
// are all zero and forceREX is false, no prefix is required and the
// returned slice is empty. W is always 0 on this path; use REX for REX.W.
func OptionalREX(r byte, rm Operand, forceREX bool) []byte {
	checkBit("REX.R", r)
	if rm == nil {
		violate("rm is expected to be a register or a memory address")
	}
	x, b := extensionBits(rm)
	if (r|x|b) == 0 && !forceREX {
		return []byte{}
	}
	return []byte{0x40 | (r << 2) | (x << 1) | b}
}

// REX emits a one-byte REX prefix unconditionally, carrying W. Callers
// invoke this only when REX.W=1 is actually required by the instruction.
func REX(w, r byte, rm MemoryAddress) []byte {
	checkBit("REX.W", w)
	checkBit("REX.R", r)
	x, b := extensionBits(rm)
	return []byte{0x40 | (w << 3) | (r << 2) | (x << 1) | b}
}

// VEX2 emits the 2-byte VEX prefix when legal (x==0, b==0, and forceVEX3 is
// false), otherwise falls back to the 3-byte form — the same bytes VEX3
// would produce with mmmmm=0b00001, escape=0xC4.
func VEX2(lpp, r byte, rm Operand, vvvv byte, forceVEX3 bool) []byte {
	if lpp & ^byte(0b111) != 0 {
		violate("VEX.Lpp must be a 3-bit mask, got %#x", lpp)
	}
	checkBit("VEX.R", r)
	if vvvv & ^byte(0b1111) != 0 {
		violate("VEX.vvvv must be a 4-bit mask, got %#x", vvvv)
	}
	x, b := extensionBits(rm)
	if (x|b) == 0 && !forceVEX3 {
		return []byte{0xC5, 0xF8 ^ (r << 7) ^ (vvvv << 3) ^ lpp}
	}
	return []byte{0xC4, 0xE1 ^ (r << 7) ^ (x << 6) ^ (b << 5), 0x78 ^ (vvvv << 3) ^ lpp}
}

// VEX3 emits the 3-byte VEX or XOP prefix. escape selects the family
// (0xC4=VEX, 0x8F=XOP); wLpp packs W in bit 7 and Lpp in bits 0-2. rm must
// be a MemoryAddress, making the "rm is memory" contract a compile-time
// guarantee rather than a runtime assertion.
func VEX3(escape, mmmmm, wLpp, r byte, rm MemoryAddress, vvvv byte) []byte {
	if escape != 0xC4 && escape != 0x8F {
		violate("escape must be 0xC4 (VEX) or 0x8F (XOP), got %#x", escape)
	}
	if wLpp & ^byte(0b10000111) != 0 {
		violate("W____Lpp must have no bits set except 0, 1, 2, and 7, got %#x", wLpp)
	}
	if mmmmm & ^byte(0b11111) != 0 {
		violate("mmmmm must be a 5-bit mask, got %#x", mmmmm)
	}
	checkBit("VEX.R", r)
	if vvvv & ^byte(0b1111) != 0 {
		violate("VEX.vvvv must be a 4-bit mask, got %#x", vvvv)
	}
	x, b := extensionBits(rm)
	return []byte{escape, 0xE0 ^ (r << 7) ^ (x << 6) ^ (b << 5) ^ mmmmm, 0x78 ^ (vvvv << 3) ^ wLpp}
}
