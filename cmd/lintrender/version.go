package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"lintrender/internal/output"
	"lintrender/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show lintrender build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return err
			}
			full, err := cmd.Flags().GetBool("full")
			if err != nil {
				return err
			}

			switch strings.ToLower(format) {
			case "json":
				return renderVersionJSON(cmd.OutOrStdout(), full)
			case "pretty":
				s, err := resolveSettings(cmd)
				if err != nil {
					return err
				}
				out := newTerminal(cmd.OutOrStdout(), s.Color)
				return renderVersionPretty(out, out.ColorEnabled(), full)
			default:
				return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
			}
		},
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("full", false, "include git commit and build date")
	return cmd
}

func renderVersionPretty(w output.Writer, color, full bool) error {
	ew := output.NewSticky(w)
	ew.WriteLine("lintrender " + version.Colored(color))
	if full {
		ew.WriteLine("commit: " + valueOrUnknown(version.GitCommit))
		ew.WriteLine("built:  " + valueOrUnknown(version.BuildDate))
	}
	return ew.Err
}

func renderVersionJSON(out io.Writer, full bool) error {
	payload := versionPayload{Tool: "lintrender", Version: version.String()}
	if full {
		payload.GitCommit = valueOrUnknown(version.GitCommit)
		payload.BuildDate = valueOrUnknown(version.BuildDate)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func valueOrUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
