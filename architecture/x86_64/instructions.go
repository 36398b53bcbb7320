package x86_64

import (
	"github.com/wyvernasm/x64encoder/internal/asm"
	"github.com/wyvernasm/x64encoder/x64"
)

// rexW is the template every 64-bit GPR form shares: REX is never optional
// once W=1 is required, so Encode must reach for x64.REX rather than
// x64.OptionalREX for these forms.
var rexW = asm.PrefixTemplate{MandatoryREX: true, Request: x64.PrefixRequest{W: 1}}

// vex2PS is the template for the VMOVAPS xmm form: 2-byte VEX, pp=00b
// (no mandatory prefix), L=0 (xmm width). x64.VEX2 falls back to the 3-byte
// form on its own whenever an operand's extension bit demands it.
var vex2PS = asm.PrefixTemplate{Flags: x64.FlagVEX2, Request: x64.PrefixRequest{Lpp: 0b000}}

// vex3FMA is VFMADD231PS's 3-byte VEX template: mmmmm=0x02 (the 0F 38 opcode
// map), W=0, L=1 (ymm width), pp=01 (66 mandatory prefix).
var vex3FMA = asm.PrefixTemplate{Request: x64.PrefixRequest{Escape: 0xC4, MMMMM: 0x02, WLpp: 0b101}}

// xopPCMOV is VPCMOV's XOP template: escape 0x8F, map 0x08, W=0, L=0, pp=00.
var xopPCMOV = asm.PrefixTemplate{Request: x64.PrefixRequest{Escape: 0x8F, MMMMM: 0x08, WLpp: 0b000}}

// accumulatorOp0 marks a form that trades ModR/M for the AL/EAX/RAX short
// encoding: the opcode itself implies the AL/EAX destination, so the
// register is encoded neither in ModR/M nor in the opcode's low bits.
var accumulatorOp0 = asm.PrefixTemplate{Flags: x64.FlagAccumulatorOp0}

var (
	//
	// Data Movement Instructions
	//
	MOV = asm.Instruction{
		Mnemonic: "MOV",
		Forms: []asm.InstructionForm{
			// MOV r8, r8
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x88}, ModRM: true, Encoding: EncodingLegacy},
			// MOV r16, r16
			{Operands: []asm.OperandType{OperandReg16, OperandReg16}, Opcode: []byte{0x89}, ModRM: true, Encoding: EncodingLegacy},
			// MOV r32, r32
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x89}, ModRM: true, Encoding: EncodingLegacy},
			// MOV r64, r64
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x89}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW},
			// MOV r64, m64
			{Operands: []asm.OperandType{OperandReg64, OperandMem64}, Opcode: []byte{0x8B}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW, RegFromOperand: true},
			// MOV m64, r64
			{Operands: []asm.OperandType{OperandMem64, OperandReg64}, Opcode: []byte{0x89}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW},
			// MOV r8, imm8
			{Operands: []asm.OperandType{OperandReg8, OperandImm8}, Opcode: []byte{0xB0}, Imm: 1, Encoding: EncodingLegacy},
			// MOV r32, imm32
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0xB8}, Imm: 4, Encoding: EncodingLegacy},
			// MOV r64, imm64
			{Operands: []asm.OperandType{OperandReg64, OperandImm64}, Opcode: []byte{0xB8}, Imm: 8, Encoding: EncodingLegacy, Prefix: rexW},
		},
	}

	MOVZX = asm.Instruction{
		Mnemonic: "MOVZX",
		Forms: []asm.InstructionForm{
			// MOVZX r32, r8
			{Operands: []asm.OperandType{OperandReg32, OperandReg8}, Opcode: []byte{0x0F, 0xB6}, ModRM: true, Encoding: EncodingLegacy, RegFromOperand: true},
			// MOVZX r32, r16
			{Operands: []asm.OperandType{OperandReg32, OperandReg16}, Opcode: []byte{0x0F, 0xB7}, ModRM: true, Encoding: EncodingLegacy, RegFromOperand: true},
		},
	}

	MOVSX = asm.Instruction{
		Mnemonic: "MOVSX",
		Forms: []asm.InstructionForm{
			// MOVSX r32, r8
			{Operands: []asm.OperandType{OperandReg32, OperandReg8}, Opcode: []byte{0x0F, 0xBE}, ModRM: true, Encoding: EncodingLegacy, RegFromOperand: true},
			// MOVSX r32, r16
			{Operands: []asm.OperandType{OperandReg32, OperandReg16}, Opcode: []byte{0x0F, 0xBF}, ModRM: true, Encoding: EncodingLegacy, RegFromOperand: true},
		},
	}

	LEA = asm.Instruction{
		Mnemonic: "LEA",
		Forms: []asm.InstructionForm{
			// LEA r32, m
			{Operands: []asm.OperandType{OperandReg32, OperandMem}, Opcode: []byte{0x8D}, ModRM: true, Encoding: EncodingLegacy, RegFromOperand: true},
			// LEA r64, m
			{Operands: []asm.OperandType{OperandReg64, OperandMem}, Opcode: []byte{0x8D}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW, RegFromOperand: true},
		},
	}

	PUSH = asm.Instruction{
		Mnemonic: "PUSH",
		Forms: []asm.InstructionForm{
			// PUSH r64
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0x50}, Encoding: EncodingLegacy},
			// PUSH imm8
			{Operands: []asm.OperandType{OperandImm8}, Opcode: []byte{0x6A}, Imm: 1, Encoding: EncodingLegacy},
			// PUSH imm32
			{Operands: []asm.OperandType{OperandImm32}, Opcode: []byte{0x68}, Imm: 4, Encoding: EncodingLegacy},
			// PUSH r/m64
			{Operands: []asm.OperandType{OperandMem}, Opcode: []byte{0xFF}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW, RegDigit: 6},
		},
	}

	POP = asm.Instruction{
		Mnemonic: "POP",
		Forms: []asm.InstructionForm{
			// POP r64
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0x58}, Encoding: EncodingLegacy},
		},
	}

	XCHG = asm.Instruction{
		Mnemonic: "XCHG",
		Forms: []asm.InstructionForm{
			// XCHG r8, r8
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x86}, ModRM: true, Encoding: EncodingLegacy},
			// XCHG r32, r32
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x87}, ModRM: true, Encoding: EncodingLegacy},
			// XCHG r64, r64
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x87}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW},
		},
	}

	//
	// Arithmetic Instructions
	//

	ADD = asm.Instruction{
		Mnemonic: "ADD",
		Forms: []asm.InstructionForm{
			// ADD AL, imm8 (accumulator short form)
			{Operands: []asm.OperandType{OperandReg8, OperandImm8}, Opcode: []byte{0x04}, Imm: 1, Encoding: EncodingLegacy, Prefix: accumulatorOp0},
			// ADD r8, r8
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x00}, ModRM: true, Encoding: EncodingLegacy},
			// ADD r32, r32
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x01}, ModRM: true, Encoding: EncodingLegacy},
			// ADD r64, r64
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x01}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW},
			// ADD r32, imm32
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: 4, Encoding: EncodingLegacy},
			// ADD r64, imm32
			{Operands: []asm.OperandType{OperandReg64, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: 4, Encoding: EncodingLegacy, Prefix: rexW},
		},
	}

	SUB = asm.Instruction{
		Mnemonic: "SUB",
		Forms: []asm.InstructionForm{
			// SUB r8, r8
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x28}, ModRM: true, Encoding: EncodingLegacy},
			// SUB r32, r32
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x29}, ModRM: true, Encoding: EncodingLegacy},
			// SUB r64, r64
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x29}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW},
			// SUB r32, imm32
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: 4, Encoding: EncodingLegacy, RegDigit: 5},
			// SUB r64, imm32
			{Operands: []asm.OperandType{OperandReg64, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: 4, Encoding: EncodingLegacy, Prefix: rexW, RegDigit: 5},
		},
	}

	INC = asm.Instruction{
		Mnemonic: "INC",
		Forms: []asm.InstructionForm{
			// INC r/m32
			{Operands: []asm.OperandType{OperandReg32}, Opcode: []byte{0xFF}, ModRM: true, Encoding: EncodingLegacy, RegDigit: 0},
			// INC r/m64
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0xFF}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW, RegDigit: 0},
		},
	}

	DEC = asm.Instruction{
		Mnemonic: "DEC",
		Forms: []asm.InstructionForm{
			// DEC r/m32
			{Operands: []asm.OperandType{OperandReg32}, Opcode: []byte{0xFF}, ModRM: true, Encoding: EncodingLegacy, RegDigit: 1},
			// DEC r/m64
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0xFF}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW, RegDigit: 1},
		},
	}

	NEG = asm.Instruction{
		Mnemonic: "NEG",
		Forms: []asm.InstructionForm{
			// NEG r/m32
			{Operands: []asm.OperandType{OperandReg32}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy, RegDigit: 3},
			// NEG r/m64
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW, RegDigit: 3},
		},
	}

	CMP = asm.Instruction{
		Mnemonic: "CMP",
		Forms: []asm.InstructionForm{
			// CMP r8, r8
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x38}, ModRM: true, Encoding: EncodingLegacy},
			// CMP r32, r32
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x39}, ModRM: true, Encoding: EncodingLegacy},
			// CMP r64, r64
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x39}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW},
			// CMP r32, imm32
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: 4, Encoding: EncodingLegacy, RegDigit: 7},
		},
	}

	//
	// Logical Instructions
	//

	AND = asm.Instruction{
		Mnemonic: "AND",
		Forms: []asm.InstructionForm{
			// AND r8, r8
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x20}, ModRM: true, Encoding: EncodingLegacy},
			// AND r32, r32
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x21}, ModRM: true, Encoding: EncodingLegacy},
			// AND r64, r64
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x21}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW},
			// AND r32, imm32
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: 4, Encoding: EncodingLegacy, RegDigit: 4},
		},
	}

	OR = asm.Instruction{
		Mnemonic: "OR",
		Forms: []asm.InstructionForm{
			// OR r8, r8
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x08}, ModRM: true, Encoding: EncodingLegacy},
			// OR r32, r32
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x09}, ModRM: true, Encoding: EncodingLegacy},
			// OR r64, r64
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x09}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW},
			// OR r32, imm32
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: 4, Encoding: EncodingLegacy, RegDigit: 1},
		},
	}

	XOR = asm.Instruction{
		Mnemonic: "XOR",
		Forms: []asm.InstructionForm{
			// XOR r8, r8
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x30}, ModRM: true, Encoding: EncodingLegacy},
			// XOR r32, r32
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x31}, ModRM: true, Encoding: EncodingLegacy},
			// XOR r64, r64
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x31}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW},
			// XOR r32, imm32
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0x81}, ModRM: true, Imm: 4, Encoding: EncodingLegacy, RegDigit: 6},
		},
	}

	NOT = asm.Instruction{
		Mnemonic: "NOT",
		Forms: []asm.InstructionForm{
			// NOT r/m32
			{Operands: []asm.OperandType{OperandReg32}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy, RegDigit: 2},
			// NOT r/m64
			{Operands: []asm.OperandType{OperandReg64}, Opcode: []byte{0xF7}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW, RegDigit: 2},
		},
	}

	TEST = asm.Instruction{
		Mnemonic: "TEST",
		Forms: []asm.InstructionForm{
			// TEST EAX, imm32 (accumulator short form)
			{Operands: []asm.OperandType{OperandReg32, OperandImm32}, Opcode: []byte{0xA9}, Imm: 4, Encoding: EncodingLegacy, Prefix: accumulatorOp0},
			// TEST r8, r8
			{Operands: []asm.OperandType{OperandReg8, OperandReg8}, Opcode: []byte{0x84}, ModRM: true, Encoding: EncodingLegacy},
			// TEST r32, r32
			{Operands: []asm.OperandType{OperandReg32, OperandReg32}, Opcode: []byte{0x85}, ModRM: true, Encoding: EncodingLegacy},
			// TEST r64, r64
			{Operands: []asm.OperandType{OperandReg64, OperandReg64}, Opcode: []byte{0x85}, ModRM: true, Encoding: EncodingLegacy, Prefix: rexW},
		},
	}

	//
	// Control Flow Instructions
	//

	JMP = asm.Instruction{
		Mnemonic: "JMP",
		Forms: []asm.InstructionForm{
			// JMP rel8
			{Operands: []asm.OperandType{OperandRel8}, Opcode: []byte{0xEB}, Imm: 1, Encoding: EncodingLegacy, Prefix: asm.PrefixTemplate{Flags: x64.FlagRel8Label}},
			// JMP rel32
			{Operands: []asm.OperandType{OperandRel32}, Opcode: []byte{0xE9}, Imm: 4, Encoding: EncodingLegacy, Prefix: asm.PrefixTemplate{Flags: x64.FlagRel32Label}},
		},
	}

	CALL = asm.Instruction{
		Mnemonic: "CALL",
		Forms: []asm.InstructionForm{
			// CALL rel32
			{Operands: []asm.OperandType{OperandRel32}, Opcode: []byte{0xE8}, Imm: 4, Encoding: EncodingLegacy, Prefix: asm.PrefixTemplate{Flags: x64.FlagRel32Label}},
		},
	}

	RET = asm.Instruction{
		Mnemonic: "RET",
		Forms: []asm.InstructionForm{
			// RET
			{Operands: []asm.OperandType{OperandNone}, Opcode: []byte{0xC3}, Encoding: EncodingLegacy},
		},
	}

	//
	// Vector Instructions (SSE/AVX/AVX2/XOP)
	//

	// VMOVAPS exercises the VEX2 short form and its force_vex3 fallback: an
	// r/m operand with an extension bit set (xmm8-xmm15) makes the 3-byte
	// form mandatory; an extended reg operand alone still fits the 2-byte
	// form through VEX.R.
	VMOVAPS = asm.Instruction{
		Mnemonic: "VMOVAPS",
		Forms: []asm.InstructionForm{
			// VMOVAPS xmm, xmm/m128
			{Operands: []asm.OperandType{OperandXmm, OperandXmmMem128}, Opcode: []byte{0x28}, ModRM: true, Encoding: EncodingVEX, Prefix: vex2PS, RegFromOperand: true},
		},
	}

	// VFMADD231PS exercises vex3's map/vvvv fields directly (3-byte VEX is
	// mandatory here: VEX2 cannot express any map other than 0F, nor a W bit).
	VFMADD231PS = asm.Instruction{
		Mnemonic: "VFMADD231PS",
		Forms: []asm.InstructionForm{
			// VFMADD231PS ymm, ymm, ymm/m256
			{Operands: []asm.OperandType{OperandYmm, OperandYmm, OperandYmmMem256}, Opcode: []byte{0xB8}, ModRM: true, Encoding: EncodingVEX, Prefix: vex3FMA, RegFromOperand: true},
		},
	}

	// VPCMOV exercises the XOP (AMD) path of vex3 (escape 0x8F).
	VPCMOV = asm.Instruction{
		Mnemonic: "VPCMOV",
		Forms: []asm.InstructionForm{
			// VPCMOV xmm, xmm, xmm, xmm/m128
			{Operands: []asm.OperandType{OperandXmm, OperandXmm, OperandXmm, OperandXmmMem128}, Opcode: []byte{0xA2}, ModRM: true, Encoding: EncodingXOP, Prefix: xopPCMOV, RegFromOperand: true},
		},
	}
)

// InstructionsByMnemonic is a map for looking up instructions by their mnemonic
var InstructionsByMnemonic = map[string]asm.Instruction{
	// Data Movement
	"MOV":   MOV,
	"MOVZX": MOVZX,
	"MOVSX": MOVSX,
	"LEA":   LEA,
	"PUSH":  PUSH,
	"POP":   POP,
	"XCHG":  XCHG,

	// Arithmetic
	"ADD": ADD,
	"SUB": SUB,
	"INC": INC,
	"DEC": DEC,
	"NEG": NEG,
	"CMP": CMP,

	// Logical
	"AND":  AND,
	"OR":   OR,
	"XOR":  XOR,
	"NOT":  NOT,
	"TEST": TEST,

	// Control Flow
	"JMP":  JMP,
	"CALL": CALL,
	"RET":  RET,

	// Vector
	"VMOVAPS":     VMOVAPS,
	"VFMADD231PS": VFMADD231PS,
	"VPCMOV":      VPCMOV,
}
