package x64

func isSint8(v int32) bool {
	return v >= -128 && v <= 127
}

func le32(v int32) [4]byte {
	u := uint32(v)
	return [4]byte{byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24)}
}

// ModRMSIBDisp emits the ModR/M byte, and the SIB and displacement bytes
// when the addressing form requires them. reg is the ModR/M.reg field (its
// upper bit travels separately, via REX.R/VEX.R); rm must be a
// MemoryAddress. Register-direct operands never reach this function — the
// outer assembler encodes those by putting the register's lcode straight
// into ModR/M.rm with mode 11, which this function does not model.
func ModRMSIBDisp(reg byte, rm MemoryAddress, forceSIB bool, minDisp MinDisp) []byte {
	if reg & ^byte(0b111) != 0 {
		violate("reg must be in [0,7], got %d", reg)
	}
	if !rm.BaseSet && !rm.IndexSet {
		violate("memory address needs a base or an index (global addressing is not supported)")
	}

	if !forceSIB && !rm.IndexSet && rm.Base.LCode() != 0b100 {
		// No-SIB path: base is neither RSP nor R12.
		base := rm.Base
		isRBPOrR13 := base.LCode() == 0b101
		switch {
		case rm.Displacement == 0 && !isRBPOrR13 && minDisp <= ShortestDisp:
			return []byte{(reg << 3) | base.LCode()}
		case isSint8(rm.Displacement) && minDisp <= AtLeastDisp8:
			return []byte{0x40 | (reg << 3) | base.LCode(), byte(rm.Displacement)}
		default:
			d := le32(rm.Displacement)
			return []byte{0x80 | (reg << 3) | base.LCode(), d[0], d[1], d[2], d[3]}
		}
	}

	// SIB path: ModR/M.rm = 0b100 signals "SIB follows".
	if rm.IndexSet && rm.Index.LCode() == RSP.LCode() && rm.Index.HCode() == RSP.HCode() {
		violate("rsp is not encodable as an index register (interpreted as no index)")
	}
	index := byte(0x4)
	var scale byte
	if rm.IndexSet {
		index = rm.Index.LCode()
		scale = scaleLog2(rm.Scale)
	}

	if !rm.BaseSet {
		// No base: SIB.base=5, ModR/M.mode=00 always means disp32-with-no-base.
		d := le32(rm.Displacement)
		return []byte{(reg << 3) | 0x4, (scale << 6) | (index << 3) | 0x5, d[0], d[1], d[2], d[3]}
	}

	base := rm.Base
	isRBPOrR13 := base.LCode() == 0b101
	switch {
	case rm.Displacement == 0 && !isRBPOrR13 && minDisp <= ShortestDisp:
		return []byte{(reg << 3) | 0x4, (scale << 6) | (index << 3) | base.LCode()}
	case isSint8(rm.Displacement) && minDisp <= AtLeastDisp8:
		// base.lcode == 0b101 (rbp/r13) cannot use mode 00 (it would decode as
		// "disp32, no base"), so it always falls through to mode 01 here even
		// with a zero displacement.
		return []byte{(reg << 3) | 0x44, (scale << 6) | (index << 3) | base.LCode(), byte(rm.Displacement)}
	default:
		d := le32(rm.Displacement)
		return []byte{(reg << 3) | 0x84, (scale << 6) | (index << 3) | base.LCode(),
			d[0], d[1], d[2], d[3]}
	}
}
