package x64

// Operand is implemented by the two value types the encoder accepts as an
// r/m operand: Register and MemoryAddress. It is a closed sum type (the
// isOperand method is unexported) rather than duck-typed: callers that need
// "rm must be a memory address" get that checked at compile time by taking
// MemoryAddress directly instead of Operand.
type Operand interface {
	isOperand()
}
