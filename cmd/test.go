package cmd

import (
	"fmt"

	"github.com/Cmiroslaf/BEFA-Library/cmd/flags"
	"github.com/Cmiroslaf/BEFA-Library/config"
	"github.com/Cmiroslaf/BEFA-Library/hub/executor"

	"github.com/spf13/cobra"
)

var commandTest = &cobra.Command{
	Use:   "test",
	Short: "Test configuration and exit",
	RunE:  cmdTestConfig,
	Args:  cobra.NoArgs,
}

func init() {
	RootCmd.AddCommand(commandTest)
}

func cmdTestConfig(cmd *cobra.Command, args []string) error {
	if err := testConfig(flags.ConfigFile); err != nil {
		return fmt.Errorf("configuration file %s test failed: %w", flags.ConfigFile, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "configuration file %s test is successful\n", flags.ConfigFile)
	return nil
}

// testConfig checks the file at path, or the defaults when no path is given.
func testConfig(path string) error {
	if path == "" {
		_, err := config.ParseRawConfig(config.DefaultRawConfig())
		return err
	}
	_, err := executor.ParseWithPath(path)
	return err
}
