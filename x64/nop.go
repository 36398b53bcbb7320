package x64

// nopTable holds the canonical multi-byte NOP sequences, indexed by length.
// These are fixed by the NaCl validator's accepted long-NOP encodings (see
// https://developer.chromium.org/native-client — general_purpose_instructions.def
// and nops.def); they are an external contract, not something to re-derive.
var nopTable = map[int][]byte{
	1:  {0x90},
	2:  {0x40, 0x90},
	3:  {0x0F, 0x1F, 0x00},
	4:  {0x0F, 0x1F, 0x40, 0x00},
	5:  {0x0F, 0x1F, 0x44, 0x00, 0x00},
	6:  {0x66, 0x0F, 0x1F, 0x44, 0x00, 0x00},
	7:  {0x0F, 0x1F, 0x80, 0x00, 0x00, 0x00, 0x00},
	8:  {0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	9:  {0x66, 0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	10: {0x66, 0x2E, 0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	11: {0x66, 0x66, 0x2E, 0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	12: {0x66, 0x66, 0x66, 0x2E, 0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	13: {0x66, 0x66, 0x66, 0x66, 0x2E, 0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	14: {0x66, 0x66, 0x66, 0x66, 0x66, 0x2E, 0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
	15: {0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x2E, 0x0F, 0x1F, 0x84, 0x00, 0x00, 0x00, 0x00, 0x00},
}

// NOP returns the canonical multi-byte NOP padding sequence of the given
// length, 1 through 15 bytes inclusive.
func NOP(length int) []byte {
	seq, ok := nopTable[length]
	if !ok {
		violate("nop length must be in [1,15], got %d", length)
	}
	out := make([]byte, len(seq))
	copy(out, seq)
	return out
}
