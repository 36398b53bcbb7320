package x86_64

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/wyvernasm/x64encoder/x64"
)

// NopCmd emits the canonical multi-byte NOP padding sequence for a given
// length, straight from the x64 core.
var NopCmd = &cobra.Command{
	Use:     "nop <length>",
	GroupID: "encode",
	Short:   "Emit a canonical multi-byte NOP padding sequence",
	Long:    `Print the canonical NOP byte sequence of the given length, 1 through 15.`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runNop(cmd, args); err != nil {
			cmd.PrintErrln("Error:", err)
		}
	},
}

func runNop(cmd *cobra.Command, args []string) error {
	length, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("x86_64: %q is not a valid nop length: %w", args[0], err)
	}

	out, err := safeNOP(length)
	if err != nil {
		return err
	}

	cmd.Println(formatBytes(out))
	return nil
}

// safeNOP converts x64.NOP's panic-on-contract-violation into an ordinary
// error: CLI arguments are user input, not an internal caller's
// already-checked invariant, so this boundary is exactly where a panic
// should turn back into a recoverable result.
func safeNOP(length int) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("x86_64: %v", r)
		}
	}()
	out = x64.NOP(length)
	return out, nil
}
