package x86_64

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var memoryOperandExpr = regexp.MustCompile(`^\[(.+)\]$`)

// ParseOperand parses a single assembly-syntax operand — a register name,
// a decimal/hex immediate, or a bracketed memory expression like
// "[rbx+rcx*4+16]" — into the Operand Encode accepts.
func ParseOperand(text string) (Operand, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("x86_64: empty operand")
	}
	if reg, ok := RegistersByName[strings.ToLower(text)]; ok {
		return reg, nil
	}
	if m := memoryOperandExpr.FindStringSubmatch(text); m != nil {
		return parseMemoryExpr(m[1])
	}
	return parseImmediate(text)
}

func parseImmediate(text string) (Operand, error) {
	v, err := strconv.ParseInt(text, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("x86_64: %q is not a register, memory operand, or immediate", text)
	}
	return Immediate(v), nil
}

// parseMemoryExpr parses the inside of a "[...]" memory operand: some
// combination of a base register, an "index*scale" term, and a signed
// displacement, joined by "+". A bare displacement with no base or index is
// rejected — global/direct addressing is not supported.
func parseMemoryExpr(expr string) (Operand, error) {
	expr = strings.ReplaceAll(expr, " ", "")
	// Normalize "-" to "+-" so a trailing negative term still splits cleanly
	// on "+" without mistaking the sign for a subtraction operator.
	expr = strings.ReplaceAll(expr, "-", "+-")
	expr = strings.TrimPrefix(expr, "+")

	var mem MemoryAddress
	for _, part := range strings.Split(expr, "+") {
		if part == "" {
			continue
		}
		if err := parseMemoryTerm(part, &mem); err != nil {
			return nil, err
		}
	}
	if !mem.BaseSet && !mem.IndexSet {
		return nil, fmt.Errorf("x86_64: memory operand %q needs a base or index register", expr)
	}
	return mem, nil
}

func parseMemoryTerm(part string, mem *MemoryAddress) error {
	if i := strings.IndexByte(part, '*'); i >= 0 {
		regName, scaleText := part[:i], part[i+1:]
		reg, ok := RegistersByName[strings.ToLower(regName)]
		if !ok {
			return fmt.Errorf("x86_64: %q is not a register", regName)
		}
		scale, err := strconv.ParseInt(scaleText, 0, 8)
		if err != nil {
			return fmt.Errorf("x86_64: invalid scale %q: %w", scaleText, err)
		}
		mem.Index, mem.IndexSet, mem.Scale = reg, true, byte(scale)
		return nil
	}

	if reg, ok := RegistersByName[strings.ToLower(part)]; ok {
		if mem.BaseSet {
			mem.Index, mem.IndexSet, mem.Scale = reg, true, 1
		} else {
			mem.Base, mem.BaseSet = reg, true
		}
		return nil
	}

	disp, err := strconv.ParseInt(part, 0, 32)
	if err != nil {
		return fmt.Errorf("x86_64: invalid memory operand term %q: %w", part, err)
	}
	mem.Displacement += int32(disp)
	return nil
}
