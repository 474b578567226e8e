package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-afp/pkg/app/info"
)

var infoRecursive bool

var infoCmd = &cobra.Command{
	Use:   "info <path>...",
	Short: "Show Finder info, ProDOS type and resource fork size",
	Long: `Show the Finder type/creator, ProDOS file type and aux type, text/binary
classification and resource fork size of each file.

Examples:
  # Inspect one file
  afp info GAME.SYSTEM

  # Inspect a whole tree as JSON
  afp info -r -o json ./disk-contents`,

	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfo(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().BoolVarP(&infoRecursive, "recursive", "r", false, "descend into directories")
}

func runInfo(cmd *cobra.Command, paths []string) error {
	ctx := newAppContext(cmd)

	request := &info.Request{
		Paths:     paths,
		Recursive: infoRecursive,
	}

	response, err := info.Handle(ctx, request)
	if err != nil {
		return err
	}

	return info.FormatOutput(ctx.Stdout, response, ctx.OutputFormat)
}
