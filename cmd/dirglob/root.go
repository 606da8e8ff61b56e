package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/DrJosh9000/dirglob"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	base           string
	dotmatch       bool
	noescape       bool
	casefold       bool
	unique         bool
	followSymlinks bool
	sort           bool
	null           bool
	exclude        []string
	jobs           int
	logLevel       string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "dirglob [flags] PATTERN...",
		Short: "Print paths matching glob patterns",
		Long: `Print the paths matching one or more glob patterns.

Patterns:
  *        - matches any sequence of characters (not including /)
  ?        - matches any single character
  [abc]    - matches one of the characters; [^abc] or [!abc] negates
  {a,b}    - expands to the alternatives a and b
  **/      - matches zero or more directories
  \x       - matches x literally

Wildcards do not match a leading dot unless --dotmatch is given.
Results from several patterns are printed in the order the patterns
were given.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), &opts, args)
		},
	}
	bindFlags(cmd.Flags(), &opts)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, opts *options) {
	fs.StringVarP(&opts.base, "base", "C", ".", "Directory that relative patterns are matched from.")
	fs.BoolVar(&opts.dotmatch, "dotmatch", false, "Let wildcards match a leading dot.")
	fs.BoolVar(&opts.noescape, "noescape", false, `Treat \ as a literal character rather than an escape.`)
	fs.BoolVar(&opts.casefold, "casefold", false, "Match case-insensitively.")
	fs.BoolVar(&opts.unique, "unique", false, "Print each path at most once.")
	fs.BoolVar(&opts.followSymlinks, "follow-symlinks", false, "Descend into symlinked directories when expanding **.")
	fs.BoolVar(&opts.sort, "sort", false, "Sort the output.")
	fs.BoolVarP(&opts.null, "null", "0", false, "Separate paths with NUL instead of newline.")
	fs.StringArrayVar(&opts.exclude, "exclude", nil, "Doublestar pattern of paths to leave out. Can be repeated.")
	fs.IntVarP(&opts.jobs, "jobs", "j", 0, "Maximum number of patterns to glob in parallel. Default to one per pattern.")
	fs.StringVar(&opts.logLevel, "log-level", "warning", "Log level. Supported values: trace, debug, info, warning, error, fatal, panic.")
}

func run(ctx context.Context, stdout, stderr io.Writer, opts *options, args []string) error {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", opts.logLevel, err)
	}
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetLevel(level)

	logger.WithField("patterns", args).Trace("Parsing patterns")
	patterns, err := dirglob.ParseAll(args,
		dirglob.MatchDotfiles(opts.dotmatch),
		dirglob.AllowEscaping(!opts.noescape),
		dirglob.CaseFold(opts.casefold),
	)
	if err != nil {
		logger.WithError(err).Error("Failed to parse patterns")
		return err
	}

	paths, err := dirglob.MultiGlob(ctx, opts.base, patterns,
		dirglob.WithLogger(logger),
		dirglob.Unique(opts.unique),
		dirglob.Exclude(opts.exclude...),
		dirglob.TraverseSymlinks(opts.followSymlinks),
		dirglob.GoroutineLimit(opts.jobs),
	)
	if err != nil {
		logger.WithError(err).Error("Failed to glob")
		return err
	}
	logger.WithField("count", len(paths)).Debug("Glob finished")

	if opts.sort {
		slices.Sort(paths)
	}
	sep := "\n"
	if opts.null {
		sep = "\x00"
	}
	for _, p := range paths {
		if _, err := fmt.Fprintf(stdout, "%s%s", p, sep); err != nil {
			return err
		}
	}
	return nil
}
