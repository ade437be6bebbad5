package cmd

import (
	"github.com/Cmiroslaf/BEFA-Library/cmd/flags"
	"github.com/Cmiroslaf/BEFA-Library/component/report"
	"github.com/Cmiroslaf/BEFA-Library/hub"
	"github.com/Cmiroslaf/BEFA-Library/hub/executor"

	"github.com/spf13/cobra"
)

var commandScan = &cobra.Command{
	Use:   "scan",
	Short: "Emit every match of a pattern and report the selected ones",
	RunE:  cmdScan,
	Args:  cobra.NoArgs,
}

func init() {
	commandScan.Flags().StringVarP(&flags.Pattern, "pattern", "p", "", "regular expression, the first group is reported")
	commandScan.Flags().StringVarP(&flags.Input, "input", "i", "", "text to scan")
	commandScan.Flags().StringVar(&flags.InputFile, "input-file", "", "file to scan")
	commandScan.Flags().IntVar(&flags.MinLength, "min-length", 0, "drop matches shorter than this")
	commandScan.Flags().BoolVarP(&flags.UpperCase, "upper", "u", false, "upper-case the selected matches")
	commandScan.MarkFlagsMutuallyExclusive("input", "input-file")
	RootCmd.AddCommand(commandScan)
}

func cmdScan(cmd *cobra.Command, args []string) error {
	options, err := commonOptions(cmd)
	if err != nil {
		return err
	}
	if flags.Pattern != "" {
		options = append(options, hub.WithPattern(flags.Pattern))
	}
	if cmd.Flags().Changed("input") {
		options = append(options, hub.WithInput(flags.Input))
	}
	if flags.InputFile != "" {
		options = append(options, hub.WithInputFile(flags.InputFile))
	}
	if cmd.Flags().Changed("min-length") {
		options = append(options, hub.WithMinLength(flags.MinLength))
	}
	if cmd.Flags().Changed("upper") {
		options = append(options, hub.WithUpperCase(flags.UpperCase))
	}

	cfg, err := hub.Parse(flags.ConfigFile, options...)
	if err != nil {
		return err
	}

	r, err := executor.Scan(cfg.Scan)
	if err != nil {
		return err
	}
	return report.Encode(cmd.OutOrStdout(), cfg.Scan.Format, r)
}
