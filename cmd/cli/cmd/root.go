package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "x64asm",
	Short: "An x86-64 machine code encoder",
	Long:  `x64asm resolves instruction mnemonics and operands to machine code bytes.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {

	rootCmd.AddGroup(&cobra.Group{
		ID:    "arch",
		Title: "Architectures",
	})

	rootCmd.AddCommand(x8664Cmd)

	rootCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
}
