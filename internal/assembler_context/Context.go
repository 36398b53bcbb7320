package assembler_context

import (
	"github.com/wyvernasm/x64encoder/internal/asm"
	"github.com/wyvernasm/x64encoder/internal/debugcontext"
)

type AssemblerContext struct {
	// Architecture - the assembly architecture being used (e.g., 64, ...). This field allows the assembler
	// to perform architecture-specific operations, such as validating instructions, registers, addressing modes,
	// and generating machine code according to the rules of the specified architecture.
	Architecture asm.Architecture

	// Debug - the diagnostic trail for this assembler run. New always
	// creates one.
	Debug *debugcontext.DebugContext
}

// New returns an AssemblerContext for the given architecture, with a fresh
// DebugContext scoped to sourcePath.
func New(architecture asm.Architecture, sourcePath string) *AssemblerContext {
	return &AssemblerContext{
		Architecture: architecture,
		Debug:        debugcontext.NewDebugContext(sourcePath),
	}
}
