package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-closures/password"
)

func newPasswordCmd(a *app) *cobra.Command {
	var (
		hash bool
		cost int
	)
	cmd := &cobra.Command{
		Use:   "password <candidate>",
		Short: "Check that a password has upper, lower, digit and punctuation characters",
		Long: `Check that a password contains at least one uppercase letter, one
lowercase letter, one decimal digit and one ASCII punctuation character.

With --hash the accepted password is also hashed with bcrypt.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if !hash {
				pw, err := password.Validate(args[0])
				if err != nil {
					logRejection(a.logger, err)
					return err
				}
				_, _ = fmt.Fprintln(out, pw)
				return nil
			}

			h, err := password.NewHasher(password.Options{Cost: cost})
			if err != nil {
				return err
			}
			encoded, err := h.Make(args[0])
			if err != nil {
				logRejection(a.logger, err)
				return err
			}
			a.logger.Debug("password hashed", slog.Int("cost", h.Cost()))
			_, _ = fmt.Fprintln(out, encoded)
			return nil
		},
	}
	cmd.Flags().BoolVar(&hash, "hash", false, "print the bcrypt hash instead of the password")
	cmd.Flags().IntVar(&cost, "cost", password.DefaultCost, "bcrypt work factor")
	return cmd
}

func logRejection(logger *slog.Logger, err error) {
	var verr *password.ValidationError
	if errors.As(err, &verr) {
		logger.Warn("password rejected", slog.Any("failed", verr.Failed))
	}
}
