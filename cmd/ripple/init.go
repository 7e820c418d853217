package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"ripple/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new ripple project",
	Long: `Initialize a new ripple project by creating a project manifest (ripple.toml)
and a hello-world entry point (src/main.rpl). If [path|name] is omitted,
initializes the current directory. If a non-existing name is provided, a
directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "ripple-project"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	cfg := project.Config{
		Package: project.PackageConfig{
			Name:   name,
			Target: "src/main.rpl",
		},
	}
	if err := project.Write(manifestPath, cfg); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	mainPath := filepath.Join(target, "src", "main.rpl")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(mainPath), 0o755); err != nil {
			return fmt.Errorf("failed to create src directory: %w", err)
		}
		if err := os.WriteFile(mainPath, []byte(defaultMainRPL()), 0o600); err != nil {
			return fmt.Errorf("failed to write main.rpl: %w", err)
		}
		createdMain = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized ripple project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", project.ManifestName)
	if createdMain {
		fmt.Fprintf(os.Stdout, "  - src/main.rpl\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - src/main.rpl (existing)\n")
	}
	return nil
}

func defaultMainRPL() string {
	return `fn main() void {
    val greeting = "hello, ripple";
    return;
}
`
}
