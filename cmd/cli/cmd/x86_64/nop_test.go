package x86_64

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunNop(t *testing.T) {
	var out bytes.Buffer
	NopCmd.SetOut(&out)
	NopCmd.SetErr(&out)
	NopCmd.SetArgs([]string{"5"})

	if err := NopCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), "0f 1f 44 00 00") {
		t.Errorf("unexpected nop(5) output: %q", out.String())
	}
}

func TestRunNopRejectsNonInteger(t *testing.T) {
	if err := runNop(NopCmd, []string{"five"}); err == nil {
		t.Error("expected error for non-integer length")
	}
}

func TestRunNopRejectsOutOfRangeLength(t *testing.T) {
	if err := runNop(NopCmd, []string{"16"}); err == nil {
		t.Error("expected error for length outside the canonical table")
	}
}
