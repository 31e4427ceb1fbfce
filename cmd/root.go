package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkarray/mkarray/internal/config"
	"github.com/mkarray/mkarray/internal/packer"
	"github.com/mkarray/mkarray/internal/ui"
	"github.com/mkarray/mkarray/pkg/log"
	"github.com/mkarray/mkarray/version"
)

// packFlags holds the flags of the root (pack) command.
type packFlags struct {
	deflate  bool
	manifest string
	logLevel string
	logFile  string
}

var rootFlags packFlags

// rootCmd packs its SOURCE files into <DESTINATION>.zip.
var rootCmd = &cobra.Command{
	Use:   "mkarray [--deflate] <DESTINATION> <LABEL> <AS_PROLOG> <SECTION> [SOURCE ...]",
	Short: "Pack binary files into an embeddable assembly data section",
	Long: `mkarray embeds arbitrary files into a program. It writes <DESTINATION>.zip
holding an assembly data section (<DESTINATION>.s) that .incbin's every
source, a header declaring one symbol per source (<DESTINATION>.h), and a
descriptor table (<DESTINATION>_desc.c). With --deflate every source is
stored as a raw DEFLATE stream (<source>.deflate) inside the archive.

Flags must precede the positional arguments. The archive is byte-identical
for identical inputs.`,
	Args:    cobra.ArbitraryArgs,
	Version: version.Version,
	Run: func(cmd *cobra.Command, args []string) {
		err := runPack(rootFlags, args)
		if errors.Is(err, packer.ErrUsage) {
			cmd.Usage()
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		ui.Color = false
	}

	// Prolog and section strings may start with '-', so everything after the
	// first positional argument is positional.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.Flags().BoolVar(&rootFlags.deflate, "deflate", false, "Store every source as a raw DEFLATE stream")
	rootCmd.Flags().StringVar(&rootFlags.manifest, "manifest", "", "Read the run description from a YAML manifest; positional arguments become extra sources")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logFile, "log-file", "", "Append logs to this file instead of stderr")
}

// runPack resolves the run description, configures logging and packs the
// archive. It returns packer.ErrUsage, before touching the filesystem, when
// the arguments are insufficient.
func runPack(f packFlags, args []string) error {
	opts, logging, err := resolveOptions(f, args)
	if err != nil {
		return err
	}

	if err := log.Init(logging.Path, logging.Level); err != nil {
		return err
	}
	defer log.Close()

	res, err := packer.Pack(opts)
	if err != nil {
		return err
	}

	slog.Debug("pack finished", "archive", res.Archive, "members", res.Members)
	return nil
}

// resolveOptions builds the run description from either the manifest or
// the positional arguments. Logging flags override the manifest's settings.
func resolveOptions(f packFlags, args []string) (packer.Options, config.LoggingConfig, error) {
	var (
		opts    packer.Options
		logging config.LoggingConfig
	)

	if f.manifest != "" {
		m, err := config.Load(f.manifest)
		if err != nil {
			return opts, logging, err
		}
		config.ApplyDefaults(m)
		if err := config.Validate(m); err != nil {
			return opts, logging, fmt.Errorf("invalid manifest %s: %w", f.manifest, err)
		}
		opts = packer.FromManifest(m, args)
		if f.deflate {
			opts.Deflate = true
		}
		logging = m.Logging
	} else {
		var err error
		opts, err = packer.NewOptions(f.deflate, args)
		if err != nil {
			return opts, logging, err
		}
	}

	if f.logLevel != "" {
		logging.Level = f.logLevel
	}
	if f.logFile != "" {
		logging.Path = f.logFile
	}
	if !log.ValidLevel(logging.Level) {
		return opts, logging, fmt.Errorf("invalid logging level: %s", logging.Level)
	}
	return opts, logging, nil
}
