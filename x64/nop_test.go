package x64_test

import (
	"bytes"
	"testing"

	"github.com/wyvernasm/x64encoder/x64"
)

func TestNOPLength5(t *testing.T) {
	got := x64.NOP(5)
	want := []byte{0x0F, 0x1F, 0x44, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Errorf("NOP(5) = %#v, want %#v", got, want)
	}
}

func TestNOPLengthMatchesArgument(t *testing.T) {
	for n := 1; n <= 15; n++ {
		got := x64.NOP(n)
		if len(got) != n {
			t.Errorf("NOP(%d) returned %d bytes, want %d", n, len(got), n)
		}
	}
}

func TestNOPSingleByteIsCanonical(t *testing.T) {
	got := x64.NOP(1)
	if !bytes.Equal(got, []byte{0x90}) {
		t.Errorf("NOP(1) = %#v, want [0x90]", got)
	}
}

func TestNOPOutOfRangePanics(t *testing.T) {
	for _, n := range []int{0, 16, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NOP(%d) did not panic", n)
				}
			}()
			x64.NOP(n)
		}()
	}
}

func TestNOPReturnsFreshSlice(t *testing.T) {
	a := x64.NOP(3)
	b := x64.NOP(3)
	a[0] = 0xFF
	if b[0] == 0xFF {
		t.Errorf("NOP() shares backing storage across calls")
	}
}
