package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-afp/internal/config"
	"github.com/deploymenttheory/go-afp/pkg/app"
	"github.com/deploymenttheory/go-afp/pkg/services"
)

var (
	// Global output flags
	verbose      bool
	quiet        bool
	outputFormat string

	// Storage flags, also settable from afp-config.yaml
	configFile       string
	forkBackend      string
	finderInfoFormat string

	settings = viper.New()
	cfg      *config.Config
	logger   = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "afp",
	Short: "Read and write classic Mac OS Finder info and resource forks",
	Long: `afp reads and writes the legacy Macintosh metadata that modern filesystems
keep beside a file: the Finder type/creator record, with its ProDOS
file type and aux type equivalents, and the resource fork.

Metadata is stored where native Finder, AFP and SMB tooling expect it:
extended attributes on Linux and BSD, com.apple.* attributes and
..namedfork/rsrc on macOS, and AFP_AfpInfo/AFP_Resource streams on Windows.

Commands:
  info        Show Finder info, ProDOS type and resource fork size
  settype     Set the ProDOS type or Finder type/creator of a file
  clear       Reset the Finder info of a file
  rsrc        Read, replace, size or truncate a resource fork`,
	Version:           "0.1.0-dev",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default afp-config.yaml in ., ./config, $HOME/.afp, /etc/afp)")
	rootCmd.PersistentFlags().StringVar(&forkBackend, "fork-backend", "auto", "resource fork backend (auto, native, blob)")
	rootCmd.PersistentFlags().StringVar(&finderInfoFormat, "finder-info-format", "auto", "finder info layout (auto, plain, envelope)")

	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	_ = settings.BindPFlag("output_format", rootCmd.PersistentFlags().Lookup("output"))
	_ = settings.BindPFlag("fork_backend", rootCmd.PersistentFlags().Lookup("fork-backend"))
	_ = settings.BindPFlag("finder_info_format", rootCmd.PersistentFlags().Lookup("finder-info-format"))
}

// initConfig loads the configuration and sets up logging before any command runs
func initConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(settings, configFile)
	if err != nil {
		return err
	}
	cfg = loaded

	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	switch {
	case verbose:
		logger.SetLevel(logrus.DebugLevel)
	case quiet:
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(cfg.Level())
	}

	if used := settings.ConfigFileUsed(); used != "" {
		logger.WithField("file", used).Debug("loaded config")
	}
	return nil
}

// newAppContext builds the application context for one command run
func newAppContext(cmd *cobra.Command) *app.Context {
	ctx := app.NewContext()
	ctx.Context = cmd.Context()
	ctx.OutputFormat = cfg.OutputFormat
	ctx.Verbose = verbose
	ctx.Quiet = quiet
	ctx.Stdout = cmd.OutOrStdout()
	ctx.Stderr = cmd.ErrOrStderr()
	ctx.Logger = logger
	ctx.Services = services.NewServiceFactory(services.ConfigFrom(cfg, logger))
	return ctx
}
