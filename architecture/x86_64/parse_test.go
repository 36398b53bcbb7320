package x86_64_test

import (
	"testing"

	"github.com/wyvernasm/x64encoder/architecture/x86_64"
)

func TestParseOperandRegister(t *testing.T) {
	op, err := x86_64.ParseOperand("rax")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reg, ok := op.(x86_64.Register)
	if !ok || reg != x86_64.RAX {
		t.Errorf("ParseOperand(%q) = %#v, want RAX", "rax", op)
	}
}

func TestParseOperandImmediate(t *testing.T) {
	tests := []struct {
		text string
		want x86_64.Immediate
	}{
		{"42", 42},
		{"-7", -7},
		{"0x2a", 42},
	}
	for _, tt := range tests {
		op, err := x86_64.ParseOperand(tt.text)
		if err != nil {
			t.Fatalf("ParseOperand(%q) error: %v", tt.text, err)
		}
		imm, ok := op.(x86_64.Immediate)
		if !ok || imm != tt.want {
			t.Errorf("ParseOperand(%q) = %#v, want %v", tt.text, op, tt.want)
		}
	}
}

func TestParseOperandMemoryBaseOnly(t *testing.T) {
	op, err := x86_64.ParseOperand("[rbp-8]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mem, ok := op.(x86_64.MemoryAddress)
	if !ok {
		t.Fatalf("ParseOperand(%q) = %#v, want MemoryAddress", "[rbp-8]", op)
	}
	if !mem.BaseSet || mem.Base != x86_64.RBP || mem.Displacement != -8 {
		t.Errorf("parsed memory operand = %+v, want base=rbp disp=-8", mem)
	}
}

func TestParseOperandMemoryBaseIndexScaleDisp(t *testing.T) {
	op, err := x86_64.ParseOperand("[rbx+rcx*8+16]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	mem := op.(x86_64.MemoryAddress)
	if mem.Base != x86_64.RBX || mem.Index != x86_64.RCX || mem.Scale != 8 || mem.Displacement != 16 {
		t.Errorf("parsed memory operand = %+v, want rbx+rcx*8+16", mem)
	}
}

func TestParseOperandMemoryRequiresBaseOrIndex(t *testing.T) {
	if _, err := x86_64.ParseOperand("[0x400000]"); err == nil {
		t.Error("expected error for memory operand with no base/index register")
	}
}

func TestParseOperandRejectsGarbage(t *testing.T) {
	if _, err := x86_64.ParseOperand("not_an_operand"); err == nil {
		t.Error("expected error for unparseable operand")
	}
}
