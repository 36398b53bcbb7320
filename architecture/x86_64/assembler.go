package x86_64

import (
	"regexp"
	"strings"

	"github.com/wyvernasm/x64encoder/internal/asm"
)

// Assembler implements asm.Architecture for x86_64, backed by the
// instruction-form catalog in instructions.go and the register table in
// registers.go.
type Assembler struct {
	rawSource string
}

var _ asm.Architecture = (*Assembler)(nil)

// New returns a new x86_64 Assembler over the given raw source text.
func New(rawSource string) *Assembler {
	return &Assembler{rawSource: rawSource}
}

// ArchitectureName - returns the name of the architecture
func (a *Assembler) ArchitectureName() string {
	return "x86_64"
}

// Directives - returns the assembler directives this architecture recognizes.
func (a *Assembler) Directives() []string {
	return []string{".text", ".data", ".bss", ".globl", ".align"}
}

// IsDirective - checks if a given line of assembly code is a directive.
func (a *Assembler) IsDirective(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, d := range a.Directives() {
		if strings.HasPrefix(trimmed, d) {
			return true
		}
	}
	return false
}

// Instructions - returns the instruction catalog for the architecture
func (a *Assembler) Instructions() map[string]asm.Instruction {
	return InstructionsByMnemonic
}

// IsInstruction - checks if a given mnemonic is present in the catalog
func (a *Assembler) IsInstruction(line string) bool {
	_, ok := InstructionsByMnemonic[strings.TrimSpace(line)]
	return ok
}

// RegisterSet - returns a list of supported registers for the architecture
func (a *Assembler) RegisterSet() []string {
	names := make([]string, 0, len(RegistersByName))
	for name := range RegistersByName {
		names = append(names, name)
	}
	return names
}

// IsRegister - checks if a given string is a valid register for the architecture
func (a *Assembler) IsRegister(name string) bool {
	_, ok := RegistersByName[strings.ToLower(name)]
	return ok
}

var (
	memoryOperandRe    = regexp.MustCompile(`^\[[^\[\]]+\]$`)
	immediateOperandRe = regexp.MustCompile(`^-?(0[xX][0-9a-fA-F]+|[0-9]+)$`)
)

// IsOperand reports whether text parses as some operand this architecture
// understands: a register name, a bracketed memory expression, or a
// (decimal or 0x-prefixed hex) immediate.
func (a *Assembler) IsOperand(text string) bool {
	if a.IsRegister(text) {
		return true
	}
	if memoryOperandRe.MatchString(text) {
		return true
	}
	return immediateOperandRe.MatchString(text)
}

// OperandTypes - returns a list of supported operand types for the architecture
func (a *Assembler) OperandTypes() []asm.OperandType {
	return []asm.OperandType{
		OperandNone,
		OperandReg8,
		OperandReg16,
		OperandReg32,
		OperandReg64,
		OperandImm8,
		OperandImm16,
		OperandImm32,
		OperandImm64,
		OperandMem,
		OperandMem8,
		OperandMem16,
		OperandMem32,
		OperandMem64,
		OperandRel8,
		OperandRel32,
		OperandRegMem8,
		OperandRegMem16,
		OperandRegMem32,
		OperandRegMem64,
		OperandXmm,
		OperandXmmMem128,
		OperandYmm,
		OperandYmmMem256,
		OperandMask,
	}
}

// OperandCounts - returns a list of valid operand counts for the architecture
func (a *Assembler) OperandCounts() []int {
	return []int{OperandCountOne, OperandCountTwo, OperandCountThree}
}

// IsValidOperandCount - checks if a given operand count is valid for the architecture
func (a *Assembler) IsValidOperandCount(count int) bool {
	return count >= OperandCountOne && count <= OperandCountThree
}

// SourceOperandSupportsDestination - checks if a source operand type can
// feed a destination operand type of the same width class. Memory operands
// never act as a source for a register destination of mismatched width.
func (a *Assembler) SourceOperandSupportsDestination(sourceType, destType asm.OperandType) bool {
	if destType.Type == "immediate" {
		return false
	}
	return sourceType.Size == destType.Size || sourceType.Size == 0 || destType.Size == 0
}

// Is8BitInstruction - checks if a given instruction has any 8-bit operand form
func (a *Assembler) Is8BitInstruction(instr asm.Instruction) bool {
	for _, form := range instr.Forms {
		for _, op := range form.Operands {
			if op.Size == 8 {
				return true
			}
		}
	}
	return false
}

// RawSource - returns the raw assembly source code
func (a *Assembler) RawSource() string {
	return a.rawSource
}
