package x64_test

import (
	"bytes"
	"testing"

	"github.com/wyvernasm/x64encoder/x64"
)

func TestModRMSIBDispScenarios(t *testing.T) {
	tests := []struct {
		name string
		reg  byte
		rm   x64.MemoryAddress
		want []byte
	}{
		{
			"rsp base forces SIB",
			0,
			x64.NewMemoryAddress(&x64.RSP, nil, 0, 0),
			[]byte{0x04, 0x24},
		},
		{
			"rbp base forces explicit zero disp8",
			0,
			x64.NewMemoryAddress(&x64.RBP, nil, 0, 0),
			[]byte{0x45, 0x00},
		},
		{
			"r15 base, rsi index, scale 8, negative disp8",
			3,
			x64.NewMemoryAddress(&x64.R15, &x64.RSI, 8, -128),
			[]byte{0x5C, 0xF7, 0x80},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := x64.ModRMSIBDisp(tt.reg, tt.rm, false, x64.ShortestDisp)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("ModRMSIBDisp() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestModRMSIBDispNoSIBModes(t *testing.T) {
	rax := x64.NewMemoryAddress(&x64.RAX, nil, 0, 0)
	if got := x64.ModRMSIBDisp(1, rax, false, x64.ShortestDisp); !bytes.Equal(got, []byte{0x08}) {
		t.Errorf("mode 00 = %#v, want [0x08]", got)
	}

	small := x64.NewMemoryAddress(&x64.RAX, nil, 0, 5)
	if got := x64.ModRMSIBDisp(0, small, false, x64.ShortestDisp); !bytes.Equal(got, []byte{0x40, 0x05}) {
		t.Errorf("mode 01 = %#v, want [0x40 0x05]", got)
	}

	big := x64.NewMemoryAddress(&x64.RAX, nil, 0, 1000)
	got := x64.ModRMSIBDisp(0, big, false, x64.ShortestDisp)
	if len(got) != 5 || got[0] != 0x80 {
		t.Errorf("mode 10 = %#v, want 5 bytes starting 0x80", got)
	}
}

func TestModRMSIBDispMinDispForcesDisp32(t *testing.T) {
	rax := x64.NewMemoryAddress(&x64.RAX, nil, 0, 0)
	got := x64.ModRMSIBDisp(0, rax, false, x64.ForceDisp32)
	if len(got) != 5 || got[0] != 0x80 {
		t.Errorf("ForceDisp32 = %#v, want 5 bytes starting 0x80", got)
	}
}

func TestModRMSIBDispRSPAsIndexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("rsp as index did not panic")
		}
	}()
	// NewMemoryAddress already rejects rsp-as-index; this exercises the
	// defense-in-depth check inside ModRMSIBDisp directly via force_sib.
	mem := x64.MemoryAddress{Base: x64.RAX, BaseSet: true, Index: x64.RSP, IndexSet: true, Scale: 1}
	x64.ModRMSIBDisp(0, mem, true, x64.ShortestDisp)
}

func TestModRMSIBDispNoBaseNoIndexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("empty memory address did not panic")
		}
	}()
	x64.ModRMSIBDisp(0, x64.MemoryAddress{}, false, x64.ShortestDisp)
}

func TestModRMSIBDispLengthBounds(t *testing.T) {
	cases := []x64.MemoryAddress{
		x64.NewMemoryAddress(&x64.RAX, nil, 0, 0),
		x64.NewMemoryAddress(&x64.RBP, nil, 0, 0),
		x64.NewMemoryAddress(nil, &x64.RBX, 4, 123),
		x64.NewMemoryAddress(&x64.R13, &x64.R14, 2, 99999),
	}
	for _, mem := range cases {
		got := x64.ModRMSIBDisp(0, mem, false, x64.ShortestDisp)
		if len(got) < 1 || len(got) > 7 {
			t.Errorf("ModRMSIBDisp(%+v) returned %d bytes, want 1-7", mem, len(got))
		}
	}
}
