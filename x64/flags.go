package x64

// Flags is the per-instruction-form template bitmask: it tells the outer
// assembler which prefix family and operand-encoding shape a form uses.
// Mirrors PeachPy's Flags class bit-for-bit.
type Flags uint8

const (
	FlagAccumulatorOp0 Flags = 0x01
	FlagAccumulatorOp1 Flags = 0x02
	FlagRel8Label      Flags = 0x04
	FlagRel32Label     Flags = 0x08
	FlagModRMSIBDisp   Flags = 0x10
	FlagOptionalREX    Flags = 0x20
	FlagVEX2           Flags = 0x40
)

// Options is the per-call bitmask a caller uses to coerce the encoder into
// an alternative but legal encoding (forced disp8/disp32, forced SIB, forced
// REX, forced 3-byte VEX). Mirrors PeachPy's Options class bit-for-bit.
type Options uint8

const (
	OptionDisp8  Options = 0x01
	OptionDisp32 Options = 0x02
	OptionSIB    Options = 0x04
	OptionREX    Options = 0x08
	OptionVEX3   Options = 0x10
)

// MinDisp is the minimum-displacement request ModRMSIBDisp honors: a closed
// enum rather than a bare int compared against ad hoc thresholds.
type MinDisp int

const (
	// ShortestDisp allows mode 00 (no displacement) when the address permits it.
	ShortestDisp MinDisp = iota
	// AtLeastDisp8 rules out mode 00, forcing at least a one-byte displacement.
	AtLeastDisp8
	// ForceDisp32 rules out both mode 00 and mode 01, forcing a four-byte displacement.
	ForceDisp32
)

// PrefixRequest describes the prefix an instruction form wants, in the
// packed shape the instruction database stores it in: `R` is kept as a
// logical 0/1 bit, `Lpp`/`WLpp` stay packed rather than split into W/L/pp
// fields, and `Escape`/`MMMMM`/`VVVV` are populated only for the prefix
// families that use them.
type PrefixRequest struct {
	// R is the logical value of REX.R / VEX.R (upper bit of the reg field).
	R byte
	// W is REX.W (ignored outside the REX.W path).
	W byte
	// Lpp is VEX2's packed L|pp field (bits 0-2; bit 2 = L, bits 0-1 = pp).
	Lpp byte
	// WLpp is VEX3/XOP's packed W|000|Lpp byte (bit 7 = W, bits 0-2 = Lpp).
	WLpp byte
	// MMMMM is VEX3/XOP's 5-bit opcode-map selector.
	MMMMM byte
	// Escape selects VEX3 (0xC4) vs XOP (0x8F); meaningless outside VEX3/XOP.
	Escape byte
	// VVVV is the non-destructive source register encoding (4 bits).
	VVVV byte
}
