package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/fang"
	"github.com/dendrascience/mdfiles/version"
	"github.com/spf13/cobra"
)

// Execute runs rootCmd through fang. Fatal errors are reported as a single
// "Error: ..." line on the command's error stream.
func Execute(ctx context.Context, rootCmd *cobra.Command) error {
	return fang.Execute(ctx, rootCmd,
		fang.WithVersion(version.GetFullVersion()),
		fang.WithErrorHandler(printError),
	)
}

func printError(w io.Writer, _ fang.Styles, err error) {
	fmt.Fprintf(w, "Error: %s\n", err)
}
