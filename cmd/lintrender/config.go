package main

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"lintrender/internal/lint"
	"lintrender/internal/output"
	"lintrender/internal/render"
	"lintrender/internal/trace"
)

const defaultConfigFile = ".lintrender.toml"

// fileConfig mirrors .lintrender.toml. Empty values mean "not set".
type fileConfig struct {
	Output struct {
		Color  string `toml:"color"`
		Format string `toml:"format"`
	} `toml:"output"`
	Input struct {
		Format string `toml:"format"`
		Jobs   int    `toml:"jobs"`
	} `toml:"input"`
	Trace struct {
		Level  string `toml:"level"`
		Output string `toml:"output"`
	} `toml:"trace"`
}

// settings is the effective configuration after flags override the file.
type settings struct {
	Color       output.ColorMode
	Format      render.Format
	InputFormat lint.Format
	Jobs        int
	TraceLevel  trace.Level
	TraceOutput string
}

// loadConfigFile decodes path. A missing file is only an error when the
// user named it explicitly.
func loadConfigFile(path string, explicit bool) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return fileConfig{}, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// resolveSettings reads the config file and applies explicitly set flags on
// top of it.
func resolveSettings(cmd *cobra.Command) (settings, error) {
	path := flagString(cmd, "config")
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	cfg, err := loadConfigFile(path, explicit)
	if err != nil {
		return settings{}, err
	}

	var s settings
	if s.Color, err = output.ParseColorMode(pick(cmd, "color", cfg.Output.Color)); err != nil {
		return settings{}, err
	}
	if s.Format, err = render.ParseFormat(pick(cmd, "format", cfg.Output.Format)); err != nil {
		return settings{}, err
	}
	if s.InputFormat, err = lint.ParseFormat(pick(cmd, "input-format", cfg.Input.Format)); err != nil {
		return settings{}, err
	}
	if s.TraceLevel, err = trace.ParseLevel(pick(cmd, "trace-level", cfg.Trace.Level)); err != nil {
		return settings{}, err
	}
	s.TraceOutput = pick(cmd, "trace", cfg.Trace.Output)

	s.Jobs = cfg.Input.Jobs
	if f := cmd.Flags().Lookup("jobs"); f != nil && (f.Changed || s.Jobs == 0) {
		if s.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return settings{}, err
		}
	}
	if s.Jobs < 0 {
		return settings{}, fmt.Errorf("invalid jobs value %d (must be >= 0)", s.Jobs)
	}
	return s, nil
}

// pick returns the flag value when the flag was set on the command line or
// the file left the key empty, and the file value otherwise.
func pick(cmd *cobra.Command, name, fileValue string) string {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		return fileValue
	}
	if f.Changed || fileValue == "" {
		return f.Value.String()
	}
	return fileValue
}

func flagString(cmd *cobra.Command, name string) string {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f.Value.String()
	}
	return ""
}
