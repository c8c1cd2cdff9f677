package cli

import (
	"fmt"
	"os"

	"github.com/inkwell-tools/scrawl/internal/config"
	"github.com/inkwell-tools/scrawl/internal/scene"
	"github.com/inkwell-tools/scrawl/internal/tui"
)

const Version = "0.3.0"

type UsageError struct {
	Message string
}

func (e UsageError) Error() string { return e.Message }

func Usage() string {
	return `scrawl: terminal diagram editor

Usage:
  scrawl            start with an empty canvas
  scrawl demo       start with a sample scene
  scrawl version    print the version
`
}

func Run(args []string) error {
	if len(args) == 0 {
		return runEditor(nil)
	}

	switch args[0] {
	case "help", "-h", "--help":
		fmt.Fprintln(os.Stdout, Usage())
		return nil
	case "version", "--version":
		fmt.Fprintln(os.Stdout, "scrawl "+Version)
		return nil
	case "demo":
		if len(args) != 1 {
			return UsageError{Message: "demo takes no arguments"}
		}
		return runEditor(DemoScene())
	default:
		return UsageError{Message: fmt.Sprintf("unknown command: %q", args[0])}
	}
}

func runEditor(elements []*scene.Element) error {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return tui.Start(cfg, elements)
}
