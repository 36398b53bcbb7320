package x86_64

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	arch "github.com/wyvernasm/x64encoder/architecture/x86_64"
	"github.com/wyvernasm/x64encoder/internal/assembler_context"
)

var encodeVerbose bool

// EncodeCmd resolves a mnemonic and its operands against the instruction
// catalog and prints the resulting machine code, exercising the full
// architecture glue pipeline from a single CLI invocation.
var EncodeCmd = &cobra.Command{
	Use:     "encode <mnemonic> [operands...]",
	GroupID: "encode",
	Short:   "Resolve and encode a single x86-64 instruction",
	Long: `Resolve <mnemonic> against the instruction-form catalog, encode it
against the given operands (register names, "[base+index*scale+disp]"
memory expressions, or decimal/hex immediates), and print the resulting
machine code bytes as hex.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runEncode(cmd, args); err != nil {
			cmd.PrintErrln("Error:", err)
		}
	},
}

func init() {
	EncodeCmd.Flags().BoolVarP(&encodeVerbose, "verbose", "v", false,
		"print the diagnostic trace alongside the encoded bytes")
}

func runEncode(cmd *cobra.Command, args []string) error {
	mnemonic := strings.ToUpper(args[0])

	operands := make([]arch.Operand, 0, len(args)-1)
	for _, text := range args[1:] {
		op, err := arch.ParseOperand(text)
		if err != nil {
			return err
		}
		operands = append(operands, op)
	}

	assembler := arch.New("")
	ctx := assembler_context.New(assembler, "<cli>")

	out, err := arch.Encode(ctx, ctx.Debug, mnemonic, operands...)
	if err != nil {
		return err
	}

	cmd.Println(formatBytes(out))

	if encodeVerbose {
		for _, entry := range ctx.Debug.Entries() {
			cmd.Println(entry.String())
		}
	}
	return nil
}

// formatBytes renders a byte sequence as lowercase space-separated hex, the
// same shape every subcommand in this package prints its output as.
func formatBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(parts, " ")
}
