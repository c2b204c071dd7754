package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "envelog",
		Short:        "Emit enveloped log events through the process logger",
		SilenceUsage: true,
	}
	root.AddCommand(newEmitCommand())
	return root
}
