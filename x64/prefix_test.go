package x64_test

import (
	"bytes"
	"testing"

	"github.com/wyvernasm/x64encoder/x64"
)

func TestOptionalREX(t *testing.T) {
	tests := []struct {
		name     string
		r        byte
		rm       x64.Operand
		forceREX bool
		want     []byte
	}{
		{"all zero omits prefix", 0, x64.RAX, false, []byte{}},
		{"extended base forces B bit", 0, x64.R9, false, []byte{0x41}},
		{"forced even when empty", 0, x64.RAX, true, []byte{0x40}},
		{"R bit set", 1, x64.RAX, false, []byte{0x44}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := x64.OptionalREX(tt.r, tt.rm, tt.forceREX)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("OptionalREX() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestREX(t *testing.T) {
	mem := x64.NewMemoryAddress(&x64.R11, &x64.RDX, 8, -88)
	// W=1, R=0, X=0 (rdx is not extended), B=1 (r11 is): 0x40|0x08|0x01 = 0x49.
	got := x64.REX(1, 0, mem)
	want := []byte{0x49}
	if !bytes.Equal(got, want) {
		t.Errorf("REX() = %#v, want %#v", got, want)
	}
}

func TestREXLengthIsAlwaysOne(t *testing.T) {
	mem := x64.NewMemoryAddress(&x64.RAX, nil, 0, 0)
	for w := byte(0); w <= 1; w++ {
		for r := byte(0); r <= 1; r++ {
			got := x64.REX(w, r, mem)
			if len(got) != 1 {
				t.Errorf("REX(%d,%d) returned %d bytes, want 1", w, r, len(got))
			}
		}
	}
}

func TestVEX2ShortForm(t *testing.T) {
	// 0xF8 ^ (0<<7) ^ (0b1100<<3) ^ 0b001 = 0x99.
	got := x64.VEX2(0b001, 0, x64.XMM1, 0b1100, false)
	want := []byte{0xC5, 0x99}
	if !bytes.Equal(got, want) {
		t.Errorf("VEX2() = %#v, want %#v", got, want)
	}
}

func TestVEX2ForcesLongFormWhenExtended(t *testing.T) {
	// xmm9's hcode is 1, so the 2-byte form is unavailable even without force_vex3.
	got := x64.VEX2(0, 0, x64.XMM9, 0, false)
	if len(got) != 3 || got[0] != 0xC4 {
		t.Errorf("VEX2(xmm9) = %#v, want a 3-byte form starting 0xC4", got)
	}
}

func TestVEX2EquivalesToVEX3(t *testing.T) {
	// for x=b=0, vex2(force_vex3=true) must equal vex3(0xC4, 0b00001, lpp, r, rm, vvvv).
	lpp, r, vvvv := byte(0b010), byte(1), byte(0b0101)
	forced := x64.VEX2(lpp, r, x64.XMM0, vvvv, true)
	mem := x64.NewMemoryAddress(&x64.RAX, nil, 0, 0)
	direct := x64.VEX3(0xC4, 0b00001, lpp, r, mem, vvvv)
	if !bytes.Equal(forced, direct) {
		t.Errorf("VEX2(force_vex3=true) = %#v, want VEX3 equivalent %#v", forced, direct)
	}
}

func TestVEX3(t *testing.T) {
	mem := x64.NewMemoryAddress(&x64.RAX, nil, 0, 0)
	got := x64.VEX3(0xC4, 0b00010, 0b1, 1, mem, 0b1010)
	want := []byte{0xC4, 0x62, 0x29}
	if !bytes.Equal(got, want) {
		t.Errorf("VEX3() = %#v, want %#v", got, want)
	}
}

func TestVEX3LengthIsAlwaysThree(t *testing.T) {
	mem := x64.NewMemoryAddress(&x64.RAX, nil, 0, 0)
	got := x64.VEX3(0x8F, 0b01000, 0, 0, mem, 0)
	if len(got) != 3 {
		t.Errorf("VEX3() returned %d bytes, want 3", len(got))
	}
}

func TestVEX2LengthIsTwoOrThree(t *testing.T) {
	for _, rm := range []x64.Operand{x64.RAX, x64.R9} {
		got := x64.VEX2(0, 0, rm, 0, false)
		if len(got) != 2 && len(got) != 3 {
			t.Errorf("VEX2(%v) returned %d bytes, want 2 or 3", rm, len(got))
		}
	}
}

func TestOptionalREXOutOfRangeRPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("OptionalREX with r=2 did not panic")
		}
	}()
	x64.OptionalREX(2, x64.RAX, false)
}
