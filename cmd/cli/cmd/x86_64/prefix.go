package x86_64

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wyvernasm/x64encoder/x64"
)

var (
	prefixFamily string
	prefixR      uint8
	prefixX      uint8
	prefixB      uint8
	prefixW      uint8
	prefixVVVV   uint8
	prefixLpp    uint8
	prefixWLpp   uint8
	prefixMMMMM  uint8
	prefixXOP    bool
	prefixForce  bool
)

// PrefixCmd is a low-level debugging command: it builds a raw REX/VEX/XOP
// prefix directly from explicit R/X/B/W/vvvv/Lpp bit fields, bypassing
// operand resolution entirely, for inspecting the x64 prefix builders in
// isolation.
var PrefixCmd = &cobra.Command{
	Use:     "prefix",
	GroupID: "encode",
	Short:   "Build a raw REX/VEX/XOP prefix from explicit bit fields",
	Long: `Build a prefix byte sequence directly from its R/X/B/W/vvvv/Lpp bit
fields without resolving a mnemonic or operands, for inspecting the x64
prefix builders in isolation (--family selects rex, optional-rex, vex2, or
vex3; --xop switches the vex3 family to the XOP escape byte).`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPrefix(cmd); err != nil {
			cmd.PrintErrln("Error:", err)
		}
	},
}

func init() {
	PrefixCmd.Flags().StringVar(&prefixFamily, "family", "", "rex | optional-rex | vex2 | vex3 (required)")
	PrefixCmd.Flags().Uint8Var(&prefixR, "r", 0, "R bit (0 or 1)")
	PrefixCmd.Flags().Uint8Var(&prefixX, "x", 0, "X bit (0 or 1)")
	PrefixCmd.Flags().Uint8Var(&prefixB, "b", 0, "B bit (0 or 1)")
	PrefixCmd.Flags().Uint8Var(&prefixW, "w", 0, "W bit (0 or 1; rex only, vex3 takes W in --wlpp)")
	PrefixCmd.Flags().Uint8Var(&prefixVVVV, "vvvv", 0, "vvvv field (0-15; vex2/vex3 only)")
	PrefixCmd.Flags().Uint8Var(&prefixLpp, "lpp", 0, "packed L|pp field (vex2 only)")
	PrefixCmd.Flags().Uint8Var(&prefixWLpp, "wlpp", 0, "packed W|000|Lpp field (vex3 only)")
	PrefixCmd.Flags().Uint8Var(&prefixMMMMM, "mmmmm", 1, "opcode-map selector (vex3 only)")
	PrefixCmd.Flags().BoolVar(&prefixXOP, "xop", false, "use the 0x8F XOP escape instead of 0xC4 VEX (vex3 only)")
	PrefixCmd.Flags().BoolVar(&prefixForce, "force", false, "force-rex for the optional-rex family, force-vex3 for the vex2 family")
	_ = PrefixCmd.MarkFlagRequired("family")
}

func runPrefix(cmd *cobra.Command) error {
	out, err := safePrefix()
	if err != nil {
		return err
	}
	cmd.Println(formatBytes(out))
	return nil
}

// safePrefix builds the synthetic rm operand whose hcode bits carry the
// requested X/B values, dispatches to the requested prefix builder, and
// turns any contract-violation panic (bad bit width, wrong escape byte)
// into an error — the same CLI-boundary translation safeNOP performs.
func safePrefix() (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("x86_64: %v", r)
		}
	}()

	mem := x64.MemoryAddress{
		Base:     x64.Register{Name: "b", Encoding: prefixB << 3},
		BaseSet:  true,
		Index:    x64.Register{Name: "x", Encoding: prefixX << 3},
		IndexSet: true,
		Scale:    1,
	}

	switch prefixFamily {
	case "rex":
		out = x64.REX(prefixW, prefixR, mem)
	case "optional-rex":
		out = x64.OptionalREX(prefixR, mem, prefixForce)
	case "vex2":
		out = x64.VEX2(prefixLpp, prefixR, mem, prefixVVVV, prefixForce)
	case "vex3":
		escape := byte(0xC4)
		if prefixXOP {
			escape = 0x8F
		}
		out = x64.VEX3(escape, prefixMMMMM, prefixWLpp, prefixR, mem, prefixVVVV)
	default:
		return nil, fmt.Errorf("x86_64: unknown prefix family %q (want rex, optional-rex, vex2, or vex3)", prefixFamily)
	}
	return out, nil
}
