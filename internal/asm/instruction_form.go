package asm

import "github.com/wyvernasm/x64encoder/x64"

// InstructionEncoding names which prefix family an instruction form uses.
type InstructionEncoding int

// PrefixTemplate is the per-form description of how to drive the x64 prefix
// builders. A single REXPrefix byte cannot express a VEX2/VEX3/XOP request,
// so the catalog carries the packed x64.PrefixRequest fields directly,
// alongside the Flags bits that say which builder applies.
//
// MandatoryREX marks forms whose REX byte is never optional (REX.W-bearing
// 64-bit GPR forms): these call x64.REX instead of x64.OptionalREX. Legacy
// forms with no REX.W requirement leave both Flags and MandatoryREX zero.
type PrefixTemplate struct {
	Flags        x64.Flags
	MandatoryREX bool
	Request      x64.PrefixRequest
}

// InstructionForm represents a specific form/variant of an instruction
type InstructionForm struct {
	Operands []OperandType       // Operand types
	Opcode   []byte              // Opcode bytes
	ModRM    bool                // Whether ModR/M byte is required
	Imm      int                 // Width in bytes of the trailing immediate (0 if none)
	Encoding InstructionEncoding // Encoding type
	Prefix   PrefixTemplate      // Prefix request template
	// RegDigit is the ModR/M.reg opcode-extension digit (0-7) this form
	// uses when Reg does not come from a register operand.
	RegDigit byte
	// RegFromOperand selects which of two register/memory operands fills
	// ModR/M.reg: the first (true, load direction) or the last (false, store
	// direction). Forms with a single register/memory operand use RegDigit.
	RegFromOperand bool
}
