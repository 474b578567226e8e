package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-afp/pkg/app/filetype"
)

var clearCmd = &cobra.Command{
	Use:   "clear <path>...",
	Short: "Reset the Finder info of files",
	Long: `Replace the Finder info of each file with an empty record. The resource
fork is not touched.`,

	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClear(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, paths []string) error {
	ctx := newAppContext(cmd)

	for _, path := range paths {
		response, err := filetype.Handle(ctx, &filetype.Request{Path: path, Clear: true})
		if err != nil {
			return err
		}
		if ctx.Quiet {
			continue
		}
		if err := filetype.FormatOutput(ctx.Stdout, response, ctx.OutputFormat); err != nil {
			return err
		}
	}
	return nil
}
