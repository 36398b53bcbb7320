package asm

// Instruction - represents a singular assembly instruction, including its mnemonic and operands.
type Instruction struct {
	Mnemonic string            // Instruction mnemonic (e.g., "MOV", "ADD")
	Forms    []InstructionForm // Different forms of the instruction
}
