package cmd

import (
	"io"
	"strings"

	"github.com/Cmiroslaf/BEFA-Library/cmd/flags"
	"github.com/Cmiroslaf/BEFA-Library/component/report"
	"github.com/Cmiroslaf/BEFA-Library/hub"
	"github.com/Cmiroslaf/BEFA-Library/hub/executor"

	"github.com/spf13/cobra"
)

var commandTokenize = &cobra.Command{
	Use:   "tokenize [instruction...]",
	Short: "Split instructions into mnemonic and operands, reads stdin without arguments",
	RunE:  cmdTokenize,
}

func init() {
	RootCmd.AddCommand(commandTokenize)
}

func cmdTokenize(cmd *cobra.Command, args []string) error {
	options, err := commonOptions(cmd)
	if err != nil {
		return err
	}
	cfg, err := hub.Parse(flags.ConfigFile, options...)
	if err != nil {
		return err
	}

	text := strings.Join(args, "\n")
	if len(args) == 0 {
		buf, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		text = string(buf)
	}

	r, err := executor.Tokenize(text, cfg.Scan.Top)
	if err != nil {
		return err
	}
	return report.Encode(cmd.OutOrStdout(), cfg.Scan.Format, r)
}
