package lint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"

	"lintrender/internal/trace"
)

// StdinPath is the input name that reads findings from LoadOptions.Stdin.
const StdinPath = "-"

// LoadOptions configures Load.
type LoadOptions struct {
	Format  Format    // FormatAuto resolves per input by extension
	BaseDir string    // relative message paths are joined onto it
	Stdin   io.Reader // used for StdinPath
	Jobs    int       // max parallel decoders (0=auto)
}

// Load decodes every input and merges the messages into one ByPath.
// Inputs are decoded concurrently; the merge keeps argument order, so the
// per-path sequence is input order then in-file order.
func Load(ctx context.Context, inputs []string, opts LoadOptions) (ByPath, error) {
	if opts.BaseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		opts.BaseDir = wd
	}
	stdinSeen := false
	for _, in := range inputs {
		if in != StdinPath {
			continue
		}
		if stdinSeen {
			return nil, errors.New("stdin can only be read once")
		}
		if opts.Stdin == nil {
			return nil, errors.New("stdin input requested but no reader configured")
		}
		stdinSeen = true
	}

	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([][]Message, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(inputs))))

	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			span := trace.Begin(tracer, trace.ScopeFile, "load:"+in, parent)
			msgs, err := loadOne(in, opts)
			if err != nil {
				span.Fail(err)
				return err
			}
			span.Set("messages", strconv.Itoa(len(msgs))).End("")
			results[i] = msgs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(ByPath)
	for _, msgs := range results {
		for _, m := range msgs {
			// the key merges spellings; Path keeps the one that opens the file
			m.Path = AbsPath(m.Path, opts.BaseDir)
			out.Add(norm.NFC.String(m.Path), m)
		}
	}
	return out, nil
}

func loadOne(input string, opts LoadOptions) ([]Message, error) {
	if input == StdinPath {
		msgs, err := Decode(opts.Stdin, FormatForPath(input, opts.Format))
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return msgs, nil
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("failed to open findings file: %w", err)
	}
	defer f.Close()

	msgs, err := Decode(f, FormatForPath(input, opts.Format))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	return msgs, nil
}

// AbsPath makes p absolute against baseDir and cleans it. The byte
// spelling of p is otherwise kept, so the result still names the file on
// disk.
func AbsPath(p, baseDir string) string {
	if !filepath.IsAbs(p) {
		p = filepath.Join(baseDir, p)
	}
	return filepath.Clean(p)
}

// NormalizePath is AbsPath converted to Unicode NFC: the ByPath key under
// which NFC and NFD spellings of one file merge.
func NormalizePath(p, baseDir string) string {
	return norm.NFC.String(AbsPath(p, baseDir))
}
