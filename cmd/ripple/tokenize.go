package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ripple/internal/compiler"
	"ripple/internal/diagfmt"
	"ripple/internal/driver"
	"ripple/internal/project"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.rpl...",
	Short: "Tokenize ripple source files",
	Long:  `Tokenize breaks down ripple source files into their constituent tokens`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().Bool("cache", false, "reuse cached token streams for unchanged files")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	opts := driver.Options{MaxDiagnostics: resolveMaxDiagnostics(cmd)}

	if cached, _ := cmd.Flags().GetBool("cache"); cached {
		cache, err := driver.OpenDiskCache("ripple")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		opts.Cache = cache
	}

	results, err := driver.TokenizeAll(args, opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	prettyOpts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: !quiet,
	}
	for _, res := range results {
		if res.Bag.HasErrors() || res.Bag.HasWarnings() {
			res.Bag.Sort()
			diagfmt.Pretty(os.Stderr, res.Bag, res.File, prettyOpts)
		}
	}

	for _, res := range results {
		if len(results) > 1 {
			fmt.Fprintf(os.Stdout, "== %s\n", res.File.Path)
		}
		switch format {
		case "pretty":
			err = diagfmt.TokensPretty(os.Stdout, res.Tokens, res.File)
		case "json":
			err = diagfmt.TokensJSON(os.Stdout, res.Tokens)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// resolveMaxDiagnostics prefers the flag, then the manifest, then the
// built-in default.
func resolveMaxDiagnostics(cmd *cobra.Command) int {
	if n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err == nil && n > 0 {
		return n
	}
	if m, ok, err := project.Discover("."); err == nil && ok && m.Config.Compiler.MaxDiagnostics > 0 {
		return m.Config.Compiler.MaxDiagnostics
	}
	return compiler.DefaultMaxDiagnostics
}
