package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-afp/pkg/app"
	"github.com/deploymenttheory/go-afp/pkg/app/rsrc"
)

var rsrcCmd = &cobra.Command{
	Use:   "rsrc",
	Short: "Read, replace, size or truncate a resource fork",
	Long: `Work with the resource fork of a file as a plain byte stream.

Examples:
  # Save a resource fork
  afp rsrc cat Application > Application.rsrc

  # Restore it
  afp rsrc put Application Application.rsrc

  # Drop it
  afp rsrc truncate Application 0`,
}

var rsrcCatCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Copy the resource fork to standard output",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := newAppContext(cmd)
		_, err := rsrc.Handle(ctx, &rsrc.Request{Op: rsrc.OpCat, Path: args[0], Output: ctx.Stdout})
		return err
	},
}

var rsrcPutCmd = &cobra.Command{
	Use:   "put <path> [file]",
	Short: "Replace the resource fork with a file or standard input",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := cmd.InOrStdin()
		if len(args) == 2 && args[1] != "-" {
			f, err := os.Open(args[1])
			if err != nil {
				return app.NewError(app.ErrCodeNotFound, "opening input", err)
			}
			defer f.Close()
			input = f
		}
		return runRsrc(cmd, &rsrc.Request{Op: rsrc.OpPut, Path: args[0], Input: input})
	},
}

var rsrcSizeCmd = &cobra.Command{
	Use:   "size <path>",
	Short: "Print the resource fork length",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRsrc(cmd, &rsrc.Request{Op: rsrc.OpSize, Path: args[0]})
	},
}

var rsrcTruncateCmd = &cobra.Command{
	Use:   "truncate <path> <size>",
	Short: "Set the resource fork length; 0 removes it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRsrc(cmd, &rsrc.Request{Op: rsrc.OpTruncate, Path: args[0], Size: args[1]})
	},
}

func init() {
	rootCmd.AddCommand(rsrcCmd)
	rsrcCmd.AddCommand(rsrcCatCmd, rsrcPutCmd, rsrcSizeCmd, rsrcTruncateCmd)
}

func runRsrc(cmd *cobra.Command, request *rsrc.Request) error {
	ctx := newAppContext(cmd)

	response, err := rsrc.Handle(ctx, request)
	if err != nil {
		return err
	}
	if ctx.Quiet && request.Op != rsrc.OpSize {
		return nil
	}

	return rsrc.FormatOutput(ctx.Stdout, response, ctx.OutputFormat)
}
