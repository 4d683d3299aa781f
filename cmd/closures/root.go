package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hasbyte1/go-closures/collections"
)

type app struct {
	logLevel   string
	jsonOutput bool
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	root := &cobra.Command{
		Use:   "closures",
		Short: "Sort, map, filter, reduce and validate from the command line",
		Long: `closures runs the classic higher-order collection examples
(sorted(by:), map, filter, reduce) and the password strength check.

Examples:
  closures tracks
  closures beatles --suffix " Beatle"
  closures filter --below 20 4 8 10 33 50 0 1 3
  closures total 8 6 7 5 3 0 9
  closures password '12345KNKJNJkjnbjn@' --hash`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.jsonOutput)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
	}

	addLoggingFlags(root.PersistentFlags(), a)

	root.AddCommand(
		newTracksCmd(a),
		newBeatlesCmd(a),
		newFilterCmd(a),
		newTotalCmd(a),
		newPasswordCmd(a),
	)
	return root
}

func addLoggingFlags(fs *pflag.FlagSet, a *app) {
	fs.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	fs.BoolVar(&a.jsonOutput, "json", false, "emit logs as JSON")
}

func newLogger(w io.Writer, level string, jsonOutput bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if jsonOutput {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// parseInts converts command arguments to integers, failing on the first
// argument that is not a number.
func parseInts(args []string) (*collections.Collection[int], error) {
	nums, err := collections.TryMap(collections.From(args), func(s string, _ int) (int, error) {
		return strconv.Atoi(s)
	})
	if err != nil {
		return nil, fmt.Errorf("parse numbers: %w", err)
	}
	return nums, nil
}
