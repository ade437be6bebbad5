package cmd

import (
	"fmt"
	"runtime"

	C "github.com/Cmiroslaf/BEFA-Library/constant"

	"github.com/spf13/cobra"
)

var commandVersion = &cobra.Command{
	Use:   "version",
	Short: "Show current version of befa",
	Run:   cmdPrintVersion,
	Args:  cobra.NoArgs,
}

var nameOnly bool

func init() {
	commandVersion.Flags().BoolVarP(&nameOnly, "name", "", false, "print version name only")
	RootCmd.AddCommand(commandVersion)
}

func cmdPrintVersion(cmd *cobra.Command, args []string) {
	printVersion()
}

func printVersion() {
	if nameOnly {
		fmt.Printf("Version: %s\n", C.Version)
		return
	}
	versionString := "BEFA version " + C.Version + "\n\n"
	versionString += "OS: " + runtime.GOOS + "\n" + "Architecture: " + runtime.GOARCH + "\n" + "Go Version: " + runtime.Version() + "\n" + "Build Time: " + C.BuildTime + "\n"

	fmt.Println(versionString)
}
