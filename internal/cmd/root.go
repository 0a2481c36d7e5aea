package cmd

import (
	"io"
	"log/slog"

	"github.com/dendrascience/mdfiles/finder"
	"github.com/dendrascience/mdfiles/internal/config"
	"github.com/dendrascience/mdfiles/version"
	"github.com/spf13/cobra"
)

// rootOptions holds the raw flag values of the root command.
type rootOptions struct {
	date           string
	suffix         string
	root           string
	followSymlinks bool
	configPath     string
	verbose        bool
}

// NewRootCmd creates and returns the root cobra command for the mdfiles CLI.
// It lists files modified on a given date as markdown links.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "mdfiles",
		Short: "List files modified on a given date as markdown links",
		Long: `mdfiles walks a directory tree and prints every regular file whose name
ends with the given suffix and whose modification date (in local time)
equals the target date.

Each match is printed as a markdown list item:

  - [name](path)

Output is sorted by path. No output and exit status 0 means nothing matched.`,
		Version:      version.GetFullVersion(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.date, "date", "d", "", "Date in YYYY-MM-DD format (default today)")
	rootCmd.Flags().StringVarP(&opts.suffix, "suffix", "s", finder.DefaultSuffix, "File name suffix to match (case-sensitive)")
	rootCmd.Flags().StringVarP(&opts.root, "root", "r", finder.DefaultRoot, "Directory to search")
	rootCmd.Flags().BoolVar(&opts.followSymlinks, "follow-symlinks", false, "Follow symlinks, visiting each directory once")
	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "Load defaults from a YAML file")
	rootCmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Log skipped entries to stderr")
	rootCmd.Flags().BoolP("version", "V", false, "Print version information and exit")

	return rootCmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger.Debug("searching",
		slog.String("root", cfg.Root),
		slog.String("date", cfg.Date.String()),
		slog.String("suffix", cfg.Suffix),
		slog.Bool("follow_symlinks", cfg.FollowSymlinks))

	return finder.Run(cmd.OutOrStdout(), cfg, logger)
}

// resolveConfig applies, in increasing precedence, the built-in defaults,
// the optional config file and any flag set on the command line.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (finder.Config, error) {
	cfg := finder.DefaultConfig()
	dateText := ""

	if opts.configPath != "" {
		file, err := config.Load(opts.configPath)
		if err != nil {
			return finder.Config{}, err
		}
		if file.Date != nil {
			dateText = *file.Date
		}
		if file.Suffix != nil {
			cfg.Suffix = *file.Suffix
		}
		if file.Root != nil {
			cfg.Root = *file.Root
		}
		if file.FollowSymlinks != nil {
			cfg.FollowSymlinks = *file.FollowSymlinks
		}
	}

	flags := cmd.Flags()
	if flags.Changed("date") {
		dateText = opts.date
	}
	if flags.Changed("suffix") {
		cfg.Suffix = opts.suffix
	}
	if flags.Changed("root") {
		cfg.Root = opts.root
	}
	if flags.Changed("follow-symlinks") {
		cfg.FollowSymlinks = opts.followSymlinks
	}

	if dateText == "" && !flags.Changed("date") {
		return cfg, nil
	}
	date, err := finder.ParseDate(dateText)
	if err != nil {
		return finder.Config{}, err
	}
	cfg.Date = date
	return cfg, nil
}

// newLogger returns a text logger on w. Skipped entries are logged at debug
// level, so they only show up with --verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
