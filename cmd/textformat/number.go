package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-textformat"
)

type numberOptions struct {
	style       string
	locale      string
	decimals    int
	minDecimals int
	maxDecimals int
	sign        string
	notation    string
	rounding    string
	currency    string
}

func newNumberCommand() *cobra.Command {
	opts := &numberOptions{}

	cmd := &cobra.Command{
		Use:   "number",
		Short: "Format or parse numbers",
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.style, "style", "plain", "Number style ("+strings.Join(textformat.PresetNames(), ", ")+")")
	flags.StringVar(&opts.locale, "locale", "", "Derive separators from a locale instead of --style")
	flags.IntVar(&opts.decimals, "decimals", -1, "Exact number of fractional digits")
	flags.IntVar(&opts.minDecimals, "min-decimals", -1, "Minimum number of fractional digits")
	flags.IntVar(&opts.maxDecimals, "max-decimals", -1, "Maximum number of fractional digits")
	flags.StringVar(&opts.sign, "sign", "", "Sign display (auto, always, except-zero, negative, never)")
	flags.StringVar(&opts.notation, "notation", "", "Scientific notation (none, standard, normalized, engineering)")
	flags.StringVar(&opts.rounding, "rounding", "", "Rounding mode, e.g. half-even")
	flags.StringVar(&opts.currency, "currency", "", "Use the fractional digits of an ISO 4217 currency")

	cmd.AddCommand(&cobra.Command{
		Use:   "format VALUE",
		Short: "Write a decimal value in the selected style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.numberFormat()
			if err != nil {
				return err
			}
			value, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			out, err := format.Format(value)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "parse TEXT",
		Short: "Read a number written in the selected style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.numberFormat()
			if err != nil {
				return err
			}
			value, err := format.Parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value.String())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "describe",
		Short: "Describe the selected style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.numberFormat()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.Description())
			return nil
		},
	})

	return cmd
}

func (o *numberOptions) numberFormat() (textformat.NumberFormat, error) {
	var (
		format textformat.NumberFormat
		ok     bool
	)
	if o.locale != "" {
		format, ok = textformat.NumberFormatFromLocale(o.locale)
		if !ok {
			return format, fmt.Errorf("no number separators for locale %q", o.locale)
		}
	} else {
		format, ok = textformat.Preset(o.style)
		if !ok {
			return format, fmt.Errorf("unknown style %q", o.style)
		}
	}

	if o.currency != "" {
		var err error
		if format, err = format.WithCurrencyDecimals(o.currency); err != nil {
			return format, err
		}
	}
	if o.decimals >= 0 {
		format = format.WithNDecimals(o.decimals)
	}
	if o.minDecimals >= 0 {
		format = format.WithMinNDecimals(o.minDecimals)
	}
	if o.maxDecimals >= 0 {
		format = format.WithMaxNDecimals(o.maxDecimals)
	}
	if o.sign != "" {
		display, err := textformat.ParseSignDisplay(o.sign)
		if err != nil {
			return format, err
		}
		format = format.WithSignDisplay(display)
	}
	if o.notation != "" {
		notation, err := textformat.ParseScientificNotation(o.notation)
		if err != nil {
			return format, err
		}
		format = format.WithScientificNotation(notation)
	}
	if o.rounding != "" {
		mode, err := textformat.ParseRoundingMode(o.rounding)
		if err != nil {
			return format, err
		}
		format = format.WithRounding(mode)
	}

	return format, format.Validate()
}

func newStylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the built-in number styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range textformat.PresetNames() {
				format, _ := textformat.Preset(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", name, format.Description())
			}
			return nil
		},
	}
}
