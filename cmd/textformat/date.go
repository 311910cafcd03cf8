package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-textformat/calendar"
)

type dateOptions struct {
	layout string
	locale string
}

func newDateCommand(root *rootOptions) *cobra.Command {
	opts := &dateOptions{}

	cmd := &cobra.Command{
		Use:   "date",
		Short: "Format or parse date-times with a layout",
		Long: `Layouts combine tokens such as yyyy, MM, dd, HH, mm, ss, MMMM and iiii.
Text between single quotes is copied verbatim.`,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.layout, "layout", "yyyy-MM-dd'T'HH:mm:ss", "Date-time layout")
	flags.StringVar(&opts.locale, "locale", "", "Locale of month, weekday and day period names")

	cmd.AddCommand(&cobra.Command{
		Use:   "format RFC3339",
		Short: "Write an RFC 3339 date-time with the layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := time.Parse(time.RFC3339Nano, args[0])
			if err != nil {
				return fmt.Errorf("invalid date-time %q: %w", args[0], err)
			}
			cfg, err := root.config(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			format, err := cfg.DateTimeFormat(opts.locale, opts.layout)
			if err != nil {
				return err
			}
			out, err := format.Format(calendar.New(value))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "parse TEXT",
		Short: "Read a date-time written with the layout and print it as RFC 3339",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.config(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			format, err := cfg.DateTimeFormat(opts.locale, opts.layout)
			if err != nil {
				return err
			}
			dt, err := format.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dt.Time().Format(time.RFC3339Nano))
			return nil
		},
	})

	return cmd
}
