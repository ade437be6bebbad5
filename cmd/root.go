package cmd

import (
	"fmt"
	"os"

	"github.com/Cmiroslaf/BEFA-Library/cmd/flags"
	C "github.com/Cmiroslaf/BEFA-Library/constant"
	"github.com/Cmiroslaf/BEFA-Library/hub"
	"github.com/Cmiroslaf/BEFA-Library/log"

	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:           "befa",
	Short:         "Scan text and instruction listings through a reactive pipeline.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "f", os.Getenv("BEFA_CONFIG_FILE"), "specify configuration file")
	RootCmd.PersistentFlags().StringVarP(&flags.LogLevel, "log-level", "l", os.Getenv("BEFA_LOG_LEVEL"), "override log level")
	RootCmd.PersistentFlags().StringVarP(&flags.Format, "format", "o", "", "output format: text, json, yaml or msgpack")
	RootCmd.PersistentFlags().IntVarP(&flags.Top, "top", "n", -1, "number of counts to report, -1 for all")
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Errorln("%s", err)
		os.Exit(1)
	}
}

// commonOptions turns the persistent flags into hub options.
func commonOptions(cmd *cobra.Command) ([]hub.Option, error) {
	var options []hub.Option
	if flags.LogLevel != "" {
		level, err := log.ParseLevel(flags.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, flags.LogLevel)
		}
		options = append(options, hub.WithLogLevel(level))
	}
	if flags.Format != "" {
		format, err := C.ParseOutputFormat(flags.Format)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", err, flags.Format)
		}
		options = append(options, hub.WithFormat(format))
	}
	if cmd.Flags().Changed("top") {
		options = append(options, hub.WithTop(flags.Top))
	}
	return options, nil
}
