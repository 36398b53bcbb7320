package x86_64

import (
	"fmt"

	"github.com/wyvernasm/x64encoder/internal/asm"
	"github.com/wyvernasm/x64encoder/internal/assembler_context"
	"github.com/wyvernasm/x64encoder/internal/debugcontext"
	"github.com/wyvernasm/x64encoder/x64"
)

// Operand is whatever Encode accepts in place of a register/memory/immediate
// argument. The concrete values are Register, MemoryAddress, and Immediate
// (below); unlike x64.Operand this sum also covers immediates, since the
// catalog's forms describe full instruction operands, not just r/m.
type Operand interface {
	matches(asm.OperandType) bool
}

func (r Register) matches(t asm.OperandType) bool {
	if t.Type != "register" && t.Type != "register/memory" {
		return false
	}
	return int(r.Bits()) == t.Size
}

// Bits reports the operand width in bits, derived from the register family.
func (r Register) Bits() int {
	switch r.Type {
	case Register8:
		return 8
	case Register16:
		return 16
	case Register32:
		return 32
	case Register64, RegisterMMX:
		return 64
	case RegisterXMM:
		return 128
	case RegisterYMM:
		return 256
	case RegisterZMM:
		return 512
	case RegisterMask:
		return 8
	default:
		return 0
	}
}

// MemoryAddress is the architecture-level mirror of x64.MemoryAddress,
// expressed in terms of this package's own Register type so catalog authors
// never import x64 directly.
type MemoryAddress struct {
	Base        Register
	BaseSet     bool
	Index       Register
	IndexSet    bool
	Scale       byte
	Displacement int32
}

func (MemoryAddress) matches(t asm.OperandType) bool {
	return t.Type == "memory" || t.Type == "register/memory"
}

func (m MemoryAddress) core() x64.MemoryAddress {
	core := x64.MemoryAddress{Displacement: m.Displacement}
	if m.BaseSet {
		core.Base = m.Base.Core()
		core.BaseSet = true
	}
	if m.IndexSet {
		core.Index = m.Index.Core()
		core.IndexSet = true
		core.Scale = m.Scale
	}
	return core
}

// Immediate is a constant value operand: imm8/16/32/64, or a branch rel8/
// rel32 displacement — both are just the trailing bytes appended after the
// opcode and ModR/M, so both ride on the same type.
type Immediate int64

func (Immediate) matches(t asm.OperandType) bool {
	return t.Type == "immediate" || t.Type == "relative"
}

// rmOperand extracts the x64 package's Operand (Register or MemoryAddress)
// from a catalog Operand, for feeding the prefix builders. A bare register
// used in ModR/M.mod=11 direct addressing contributes the same hcode/lcode
// bits a memory base would, so wrapping it costs nothing semantically.
func rmOperand(op Operand) x64.Operand {
	switch v := op.(type) {
	case Register:
		return v.Core()
	case MemoryAddress:
		return v.core()
	default:
		return nil
	}
}

// asMemoryAddress coerces any r/m-capable operand into an x64.MemoryAddress,
// the shape x64.REX and x64.VEX3 require. A register-direct operand becomes
// a base-only address with no displacement; REX/VEX only read its hcode.
func asMemoryAddress(op Operand) x64.MemoryAddress {
	switch v := op.(type) {
	case Register:
		return x64.MemoryAddress{Base: v.Core(), BaseSet: true}
	case MemoryAddress:
		return v.core()
	default:
		return x64.MemoryAddress{}
	}
}

// Encode resolves mnemonic against the catalog in InstructionsByMnemonic,
// picks the first form whose operand-type signature matches, and drives the
// x64 core to produce the final byte sequence: prefix, opcode, ModR/M+SIB+
// disp, then any trailing immediate.
//
// dbg may be nil; when present, Encode traces the resolved form and, for the
// mandatory-REX, VEX2 and VEX3/XOP prefix paths, which of them was taken.
// The optional-REX and no-prefix paths and the ModR/M addressing mode are
// not traced.
func Encode(ctx *assembler_context.AssemblerContext, dbg *debugcontext.DebugContext, mnemonic string, operands ...Operand) ([]byte, error) {
	instr, ok := InstructionsByMnemonic[mnemonic]
	if !ok {
		return nil, fmt.Errorf("x86_64: unknown mnemonic %q", mnemonic)
	}

	form, err := resolveForm(instr, operands)
	if err != nil {
		return nil, err
	}

	if dbg != nil {
		dbg.SetPhase("encode")
		dbg.Trace(dbg.Loc(0, 0), fmt.Sprintf("%s: resolved form with %d operand(s)", mnemonic, len(operands)))
	}

	var out []byte
	out = append(out, encodePrefix(form, operands, dbg)...)
	out = append(out, form.Opcode...)

	regOp, rmOp := regAndRMOperands(form, operands)

	switch {
	case form.ModRM:
		reg := form.RegDigit
		if r, ok := regOp.(Register); ok {
			reg = r.Core().LCode()
		}
		mem, isMem := rmOp.(MemoryAddress)
		if !isMem {
			// register-direct ModR/M.mod=11: reg field in the high 3 bits,
			// rm field is the register's own lcode. Direct operands never
			// go through ModRMSIBDisp, which models memory addressing only.
			var rmCode byte
			if r, ok := rmOp.(Register); ok {
				rmCode = r.Core().LCode()
			}
			out = append(out, 0xC0|(reg<<3)|rmCode)
		} else {
			out = append(out, x64.ModRMSIBDisp(reg, mem.core(), false, x64.ShortestDisp)...)
		}

	case regOp == nil && form.Prefix.Flags&x64.FlagAccumulatorOp0 == 0:
		// No ModR/M byte and a single register operand (PUSH r64, POP r64,
		// MOV r8/r32/r64, imm) means the register rides in the opcode's own
		// low 3 bits instead: the classic "opcode+rd" short form. REX.B
		// already carries its 4th bit, computed from this same operand in
		// encodePrefix. The accumulator forms (ADD AL, imm8; TEST EAX,
		// imm32) are excluded: their opcode is fixed and the register is
		// implied, not encoded.
		if r, ok := rmOp.(Register); ok {
			out[len(out)-1] |= r.Core().LCode()
		}
	}

	if form.Imm > 0 {
		imm := lastImmediate(operands)
		out = append(out, immediateBytes(imm, form.Imm)...)
	}

	return out, nil
}

func resolveForm(instr asm.Instruction, operands []Operand) (asm.InstructionForm, error) {
	for _, form := range instr.Forms {
		types := form.Operands
		if len(types) == 1 && types[0].Identifier == OperandNone.Identifier {
			// A lone OperandNone slot (RET) means the form takes no operands.
			types = nil
		}
		if len(types) != len(operands) {
			continue
		}
		matched := true
		for i, t := range types {
			if t.Identifier == OperandNone.Identifier {
				continue
			}
			if !operands[i].matches(t) {
				matched = false
				break
			}
		}
		if matched {
			return form, nil
		}
	}
	return asm.InstructionForm{}, fmt.Errorf("x86_64: %s: no matching form for %d operand(s)", instr.Mnemonic, len(operands))
}

// regAndRMOperands splits a form's register/memory operands into the one
// that fills ModR/M.reg and the one that fills ModR/M.rm. Immediates never
// occupy either role and are skipped.
//
// A form with two such operands is either load-direction (RegFromOperand:
// the catalog's first operand is the destination and supplies reg, e.g.
// "MOV r64, r/m64") or store-direction (the catalog's last operand supplies
// reg and the first is the addressed destination, e.g. "MOV r/m64, r64").
// A form with only one such operand (INC, PUSH, an immediate-group opcode)
// has no reg-field operand at all; the caller falls back to the form's
// fixed opcode-extension digit.
func regAndRMOperands(form asm.InstructionForm, operands []Operand) (reg Operand, rm Operand) {
	var regMem []Operand
	for _, op := range operands {
		switch op.(type) {
		case Register, MemoryAddress:
			regMem = append(regMem, op)
		}
	}

	switch len(regMem) {
	case 0:
		return nil, nil
	case 1:
		return nil, regMem[0]
	default:
		if form.RegFromOperand {
			return regMem[0], regMem[len(regMem)-1]
		}
		return regMem[len(regMem)-1], regMem[0]
	}
}

func lastImmediate(operands []Operand) Immediate {
	for i := len(operands) - 1; i >= 0; i-- {
		if imm, ok := operands[i].(Immediate); ok {
			return imm
		}
	}
	return 0
}

func immediateBytes(v Immediate, width int) []byte {
	out := make([]byte, width)
	u := uint64(v)
	for i := 0; i < width; i++ {
		out[i] = byte(u >> (8 * i))
	}
	return out
}

func encodePrefix(form asm.InstructionForm, operands []Operand, dbg *debugcontext.DebugContext) []byte {
	regOp, rmOp := regAndRMOperands(form, operands)
	r := regHCode(regOp)
	req := form.Prefix.Request

	switch {
	case form.Prefix.MandatoryREX:
		if dbg != nil {
			dbg.Trace(dbg.Loc(0, 0), "prefix: mandatory REX.W")
		}
		return x64.REX(req.W, r, asMemoryAddress(rmOp))

	case form.Prefix.Flags&x64.FlagVEX2 != 0:
		// x64.VEX2 decides for itself whether the short 2-byte form still
		// fits rm's hcode bits; force_vex3 is only for an explicit caller
		// override, which this catalog never needs.
		if dbg != nil {
			dbg.Trace(dbg.Loc(0, 0), fmt.Sprintf("prefix: vex2 lpp=%#x", req.Lpp))
		}
		return x64.VEX2(req.Lpp, r, rmOperand(rmOp), vvvvOf(operands), false)

	case req.Escape != 0:
		if dbg != nil {
			dbg.Trace(dbg.Loc(0, 0), fmt.Sprintf("prefix: vex3/xop escape=%#x mmmmm=%#x", req.Escape, req.MMMMM))
		}
		return x64.VEX3(req.Escape, req.MMMMM, req.WLpp, r, asMemoryAddress(rmOp), vvvvOf(operands))

	case form.Prefix.Flags&x64.FlagAccumulatorOp0 != 0:
		return nil

	case rmOp == nil:
		// No register/memory operand at all: RET, and the rel8/rel32
		// branch forms, need no prefix.
		return nil

	default:
		return x64.OptionalREX(r, rmOperand(rmOp), false)
	}
}

// regHCode returns the 4th encoding bit of op's register (0 if op is absent
// or not a register), the value REX.R/VEX.R carry for the ModR/M.reg-field
// operand.
func regHCode(op Operand) byte {
	r, ok := op.(Register)
	if !ok {
		return 0
	}
	return r.Core().HCode()
}

// vvvvOf returns the middle operand's encoding for 3-operand VEX/XOP forms
// (the second source register, carried in VEX.vvvv rather than ModR/M), or 0
// for forms that don't use it.
func vvvvOf(operands []Operand) byte {
	if len(operands) < 3 {
		return 0
	}
	if r, ok := operands[1].(Register); ok {
		return r.Core().Encoding & 0x0F
	}
	return 0
}
