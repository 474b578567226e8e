package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-afp/pkg/app/filetype"
)

var (
	settypeProDOS  string
	settypeType    string
	settypeCreator string
)

var settypeCmd = &cobra.Command{
	Use:   "settype <path>",
	Short: "Set the ProDOS type or Finder type/creator of a file",
	Long: `Set the ProDOS file type and aux type, or the raw Finder type and creator
codes, of a file. The other representation is kept in step automatically.
Finder flags already stored for the file are preserved.

Examples:
  # Mark a file as a ProDOS system program
  afp settype PRODOS --prodos SYS

  # ProDOS binary with a load address
  afp settype LOADER --prodos 'BIN/$2000'

  # Classic Mac text file owned by SimpleText
  afp settype notes.txt --type TEXT --creator ttxt`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSettype(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(settypeCmd)

	settypeCmd.Flags().StringVarP(&settypeProDOS, "prodos", "p", "", "ProDOS TYPE or TYPE/AUX (TXT, $FF, BIN/$2000)")
	settypeCmd.Flags().StringVarP(&settypeType, "type", "t", "", "four-character Finder type code")
	settypeCmd.Flags().StringVarP(&settypeCreator, "creator", "c", "", "four-character Finder creator code")

	settypeCmd.MarkFlagsMutuallyExclusive("prodos", "type")
	settypeCmd.MarkFlagsMutuallyExclusive("prodos", "creator")
	settypeCmd.MarkFlagsOneRequired("prodos", "type", "creator")
}

func runSettype(cmd *cobra.Command, path string) error {
	ctx := newAppContext(cmd)

	request := &filetype.Request{
		Path:     path,
		ProDOS:   settypeProDOS,
		FileType: settypeType,
		Creator:  settypeCreator,
	}

	response, err := filetype.Handle(ctx, request)
	if err != nil {
		return err
	}
	if ctx.Quiet {
		return nil
	}

	return filetype.FormatOutput(ctx.Stdout, response, ctx.OutputFormat)
}
