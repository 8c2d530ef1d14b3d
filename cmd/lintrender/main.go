package main

import (
	"errors"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"lintrender/internal/output"
	"lintrender/internal/render"
	"lintrender/internal/version"
)

// errFindings makes the process exit with status 1 without printing anything:
// the report itself already told the user what failed.
var errFindings = errors.New("error-level findings reported")

// newRootCmd builds the command tree with its global flags.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lintrender",
		Short: "Render lint findings for the terminal",
		Long: `lintrender reads lint findings (JSON, NDJSON or msgpack) and prints them
grouped by file, with a diff for suggested fixes or the surrounding source lines.`,
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(newRenderCmd())
	root.AddCommand(newVersionCmd())

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().String("config", "", "path to a TOML config file (default ./"+defaultConfigFile+" if present)")
	root.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	root.PersistentFlags().String("trace-level", "off", "trace level (off|command|file|debug)")
	root.PersistentFlags().Bool("timings", false, "print phase timings to stderr")
	root.PersistentFlags().String("cpuprofile", "", "write a CPU profile to this file")
	root.PersistentFlags().String("memprofile", "", "write a heap profile to this file")
	return root
}

func main() {
	root := newRootCmd()
	err := root.Execute()
	if err == nil {
		return
	}
	if !errors.Is(err, errFindings) {
		printFatal(root, err)
	}
	os.Exit(1)
}

// printFatal renders err and its causes on stderr.
func printFatal(root *cobra.Command, err error) {
	mode := output.ColorAuto
	if value, ferr := root.PersistentFlags().GetString("color"); ferr == nil {
		if m, perr := output.ParseColorMode(value); perr == nil {
			mode = m
		}
	}
	stderr := output.NewTerminal(colorable.NewColorable(os.Stderr), output.ShouldColor(mode, os.Stderr))
	// nothing left to report a stderr failure to
	_ = render.PrintError(stderr, err)
}
