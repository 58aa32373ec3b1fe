package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wuintgen",
		Short: "Generates wuint's fixed-width menu types and validates literal-suffix tokens",
	}
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newCheckLiteralsCmd())
	return root
}
