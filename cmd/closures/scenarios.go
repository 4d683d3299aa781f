package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-closures/collections"
)

// Track is ordered by an explicit comparator.
type Track struct {
	Number int
}

// RatedTrack carries its own ordering.
type RatedTrack struct {
	Rate int
}

// Less orders tracks by ascending rate.
func (t RatedTrack) Less(o RatedTrack) bool { return t.Rate < o.Rate }

var (
	defaultTracks      = []Track{{3}, {2}, {1}, {4}}
	defaultRatedTracks = []RatedTrack{{4}, {2}, {5}, {1}, {3}}
	defaultNames       = []string{"John", "Paul", "Ringo", "George"}
	defaultFilterInput = []string{"4", "8", "10", "33", "50", "0", "1", "3"}
	defaultTotalInput  = []string{"8", "6", "7", "5", "3", "0", "9"}
)

func newTracksCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tracks",
		Short: "Sort tracks by number, then rated tracks by their own ordering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			byNumber := collections.From(defaultTracks).
				Sort(func(x, y Track) bool { return x.Number < y.Number })
			byRate := collections.SortOrdered(collections.From(defaultRatedTracks))

			a.logger.Debug("sorted tracks",
				slog.Int("tracks", byNumber.Count()),
				slog.Int("rated", byRate.Count()))

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, byNumber.Implode(" ", func(t Track) string { return strconv.Itoa(t.Number) }))
			_, _ = fmt.Fprintln(out, byRate.Implode(" ", func(t RatedTrack) string { return strconv.Itoa(t.Rate) }))
			return nil
		},
	}
}

func newBeatlesCmd(a *app) *cobra.Command {
	var suffix string
	cmd := &cobra.Command{
		Use:   "beatles [names...]",
		Short: "Append a surname to every name",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := defaultNames
			if len(args) > 0 {
				names = args
			}
			full := collections.Map(collections.From(names), func(n string, _ int) string { return n + suffix })
			a.logger.Debug("mapped names", slog.Int("count", full.Count()), slog.String("suffix", suffix))

			full.Each(func(n string, _ int) { _, _ = fmt.Fprintln(cmd.OutOrStdout(), n) })
			return nil
		},
	}
	cmd.Flags().StringVar(&suffix, "suffix", " Beatle", "text appended to every name")
	return cmd
}

func newFilterCmd(a *app) *cobra.Command {
	var below int
	cmd := &cobra.Command{
		Use:   "filter [numbers...]",
		Short: "Keep the numbers below a limit, in their original order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = defaultFilterInput
			}
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			kept := nums.Filter(func(n, _ int) bool { return n < below })
			a.logger.Info("filtered numbers",
				slog.Int("in", nums.Count()),
				slog.Int("kept", kept.Count()),
				slog.Int("below", below))

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), kept.Implode(" ", strconv.Itoa))
			return nil
		},
	}
	cmd.Flags().IntVar(&below, "below", 20, "exclusive upper bound")
	return cmd
}

func newTotalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "total [numbers...]",
		Short: "Add the numbers up with a left fold",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = defaultTotalInput
			}
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			total := collections.Reduce(nums, func(acc, n, _ int) int { return acc + n }, 0)
			a.logger.Info("reduced numbers", slog.Int("count", nums.Count()), slog.Int("total", total))

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), total)
			return nil
		},
	}
}
