package x86_64_test

import (
	"bytes"
	"testing"

	"github.com/wyvernasm/x64encoder/architecture/x86_64"
	"github.com/wyvernasm/x64encoder/internal/assembler_context"
)

func encode(t *testing.T, mnemonic string, operands ...x86_64.Operand) []byte {
	t.Helper()
	assembler := x86_64.New("")
	ctx := assembler_context.New(assembler, "<test>")
	out, err := x86_64.Encode(ctx, ctx.Debug, mnemonic, operands...)
	if err != nil {
		t.Fatalf("Encode(%s) error: %v", mnemonic, err)
	}
	return out
}

func TestEncodeByteSequences(t *testing.T) {
	scenarios := []struct {
		name     string
		mnemonic string
		operands []x86_64.Operand
		want     []byte
	}{
		// Store-direction register-register form: reg field carries the
		// source (RCX), rm field the destination (RAX).
		{"MOV rax, rcx", "MOV", []x86_64.Operand{x86_64.RAX, x86_64.RCX}, []byte{0x48, 0x89, 0xC8}},

		// Same store-direction form with an extended destination: REX.B
		// comes from the rm operand (r9), REX.R stays 0 since the source
		// (rax) isn't extended.
		{"MOV r9, rax", "MOV", []x86_64.Operand{x86_64.R9, x86_64.RAX}, []byte{0x49, 0x89, 0xC1}},

		// Load-direction form: reg carries the destination, SIB addresses
		// the memory source.
		{
			"MOV rax, [rbx+rcx*8+16]", "MOV",
			[]x86_64.Operand{x86_64.RAX, x86_64.MemoryAddress{
				Base: x86_64.RBX, BaseSet: true,
				Index: x86_64.RCX, IndexSet: true, Scale: 8,
				Displacement: 16,
			}},
			[]byte{0x48, 0x8B, 0x44, 0xCB, 0x10},
		},

		// Opcode+rd short forms: the register's lcode is folded into the
		// opcode byte itself, not a ModR/M byte.
		{"PUSH rbp", "PUSH", []x86_64.Operand{x86_64.RBP}, []byte{0x55}},
		{"PUSH r12", "PUSH", []x86_64.Operand{x86_64.R12}, []byte{0x41, 0x54}},
		{"POP rbx", "POP", []x86_64.Operand{x86_64.RBX}, []byte{0x5B}},

		// Accumulator short form: fixed opcode, no ModR/M, no REX.
		{"ADD al, 5", "ADD", []x86_64.Operand{x86_64.AL, x86_64.Immediate(5)}, []byte{0x04, 0x05}},

		// Opcode-extension-digit forms: RegDigit supplies ModR/M.reg, the
		// sole operand supplies rm.
		{"INC ecx", "INC", []x86_64.Operand{x86_64.ECX}, []byte{0xFF, 0xC1}},
		{"NOT r8", "NOT", []x86_64.Operand{x86_64.R8}, []byte{0x49, 0xF7, 0xD0}},

		// VEX2 short form: neither xmm0 nor xmm1 is extended.
		{"VMOVAPS xmm0, xmm1", "VMOVAPS", []x86_64.Operand{x86_64.XMM0, x86_64.XMM1}, []byte{0xC5, 0xF8, 0x28, 0xC1}},

		// VEX2 forced to the 3-byte form: xmm8/xmm9 are both extended.
		{"VMOVAPS xmm8, xmm9", "VMOVAPS", []x86_64.Operand{x86_64.XMM8, x86_64.XMM9}, []byte{0xC4, 0x41, 0x78, 0x28, 0xC1}},

		{"RET", "RET", nil, []byte{0xC3}},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			got := encode(t, scenario.mnemonic, scenario.operands...)
			if !bytes.Equal(got, scenario.want) {
				t.Errorf("%s = % X, want % X", scenario.name, got, scenario.want)
			}
		})
	}
}

func TestEncodeUnknownMnemonic(t *testing.T) {
	assembler := x86_64.New("")
	ctx := assembler_context.New(assembler, "<test>")
	if _, err := x86_64.Encode(ctx, ctx.Debug, "NOTANINSTRUCTION"); err == nil {
		t.Error("expected error for unknown mnemonic")
	}
}

func TestEncodeNoMatchingForm(t *testing.T) {
	assembler := x86_64.New("")
	ctx := assembler_context.New(assembler, "<test>")
	if _, err := x86_64.Encode(ctx, ctx.Debug, "MOV", x86_64.RAX); err == nil {
		t.Error("expected error when no form matches the given operand count")
	}
}
