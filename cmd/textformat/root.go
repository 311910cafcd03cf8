package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-textformat"
)

type rootOptions struct {
	verbose       bool
	namesFiles    []string
	defaultLocale string
	platform      bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "textformat",
		Short: "Format and parse numbers and date-times",
		Long: `textformat renders values through number styles and date-time layouts,
and reads them back. Every command works in both directions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log locale resolution to stderr")
	cmd.PersistentFlags().StringSliceVar(&opts.namesFiles, "names", nil, "JSON or YAML file with locale names")
	cmd.PersistentFlags().StringVar(&opts.defaultLocale, "default-locale", "en", "Locale used when resolution fails")
	cmd.PersistentFlags().BoolVar(&opts.platform, "platform-locales", true, "Derive names for locales without tables")

	cmd.AddCommand(newNumberCommand())
	cmd.AddCommand(newDateCommand(opts))
	cmd.AddCommand(newStylesCommand())

	return cmd
}

func (o *rootOptions) config(stderr io.Writer) (*textformat.Config, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if o.verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	options := []textformat.Option{
		textformat.WithDefaultLocale(o.defaultLocale),
		textformat.WithPlatformLocales(o.platform),
		textformat.WithLogger(logger),
	}
	for _, path := range o.namesFiles {
		options = append(options, textformat.WithNamesFile(path))
	}
	return textformat.NewConfig(options...)
}
