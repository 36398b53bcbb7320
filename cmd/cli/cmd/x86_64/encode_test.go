package x86_64

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunEncodeMovRegReg(t *testing.T) {
	var out bytes.Buffer
	EncodeCmd.SetOut(&out)
	EncodeCmd.SetErr(&out)
	EncodeCmd.SetArgs([]string{"mov", "rax", "rcx"})

	if err := EncodeCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "48") {
		t.Errorf("expected REX.W byte in output, got %q", out.String())
	}
}

func TestRunEncodeUnknownMnemonic(t *testing.T) {
	if err := runEncode(EncodeCmd, []string{"NOTANINSTRUCTION"}); err == nil {
		t.Error("expected error for unknown mnemonic")
	}
}

func TestRunEncodeBadOperand(t *testing.T) {
	if err := runEncode(EncodeCmd, []string{"mov", "not_an_operand"}); err == nil {
		t.Error("expected error for unparseable operand")
	}
}

func TestFormatBytes(t *testing.T) {
	got := formatBytes([]byte{0x0F, 0x1F, 0x00})
	want := "0f 1f 00"
	if got != want {
		t.Errorf("formatBytes() = %q, want %q", got, want)
	}
}
