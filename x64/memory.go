package x64

// MemoryAddress describes a `[base + index*scale + displacement]` operand.
// Global and RIP-relative addressing (both base and index absent) is out of
// scope: every address needs a base, an index, or both.
type MemoryAddress struct {
	// Base is the base register, or the zero Register with BaseSet false
	// when there is no base (SIB no-base encoding, disp32 only).
	Base    Register
	BaseSet bool

	// Index is the index register, or zero/IndexSet false when there is no
	// index. RSP can never be used as an index (see ModRMSIBDisp).
	Index    Register
	IndexSet bool

	// Scale is 1, 2, 4, or 8. Only meaningful when IndexSet is true.
	Scale byte

	// Displacement is the signed 32-bit displacement added to the
	// effective address. Zero value is a valid "no displacement" request;
	// whether it is actually omitted from the encoding depends on the
	// addressing mode (see ModRMSIBDisp).
	Displacement int32
}

func (MemoryAddress) isOperand() {}

// NewMemoryAddress constructs a MemoryAddress, enforcing that at least one
// of base/index is present and that a scale accompanies an index. It
// panics on violation: these are contract violations, not recoverable
// conditions a caller is expected to check for at runtime.
func NewMemoryAddress(base *Register, index *Register, scale byte, displacement int32) MemoryAddress {
	if base == nil && index == nil {
		violate("memory address needs a base or an index (global/RIP-relative addressing is not supported)")
	}
	if index != nil {
		switch scale {
		case 1, 2, 4, 8:
		default:
			violate("scale must be 1, 2, 4, or 8 when an index is present, got %d", scale)
		}
		if index.LCode() == RSP.LCode() && index.HCode() == RSP.HCode() {
			violate("rsp is not encodable as an index register (interpreted as no-index)")
		}
	}

	m := MemoryAddress{Displacement: displacement}
	if base != nil {
		m.Base = *base
		m.BaseSet = true
	}
	if index != nil {
		m.Index = *index
		m.IndexSet = true
		m.Scale = scale
	}
	return m
}

// scaleLog2 returns log2(scale) for the SIB byte's scale field.
func scaleLog2(scale byte) byte {
	switch scale {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	case 8:
		return 3
	default:
		violate("scale must be 1, 2, 4, or 8, got %d", scale)
		return 0
	}
}
