package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"ripple/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "ripple",
	Short: "Ripple language compiler and toolchain",
	Long:  `Ripple is a programming language compiler with diagnostic tools`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show (0 = project default)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the --color tri-state against whether f is a
// terminal.
func useColor(cmd *cobra.Command, f *os.File) bool {
	flag, _ := cmd.Root().PersistentFlags().GetString("color")
	return flag == "on" || (flag == "auto" && isTerminal(f))
}
