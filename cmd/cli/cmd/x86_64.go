package cmd

import (
	"github.com/spf13/cobra"

	x86_64cmd "github.com/wyvernasm/x64encoder/cmd/cli/cmd/x86_64"
)

var x8664Cmd = &cobra.Command{
	Use:     "x86_64",
	GroupID: "arch",
	Short:   "x86_64 architecture",
	Long:    `Functions related to the x86_64 architecture.`,
}

func init() {
	x8664Cmd.AddGroup(&cobra.Group{
		ID:    "encode",
		Title: "Encoding",
	})

	x8664Cmd.AddCommand(x86_64cmd.EncodeCmd)
	x8664Cmd.AddCommand(x86_64cmd.NopCmd)
	x8664Cmd.AddCommand(x86_64cmd.PrefixCmd)
}
