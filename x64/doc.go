// Package x64 implements the x86-64 machine-code encoder core: REX/VEX/XOP
// prefix construction, ModR/M+SIB+displacement construction, and multi-byte
// NOP synthesis. Every function is pure — value in, freshly allocated byte
// slice out — and safe for unsynchronized concurrent use.
//
// The package models registers and memory addresses but not the rest of an
// instruction (mnemonic, opcode bytes, immediates); callers assemble those
// around the prefix and ModR/M bytes this package returns.
package x64
