// Package prof wires runtime/pprof profiles to command-line flags.
package prof

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Options names the profile outputs; empty paths disable that profile.
type Options struct {
	CPUPath string
	MemPath string
}

// Session is an active profiling run.
type Session struct {
	opts Options
	cpu  *os.File
}

// Start begins CPU profiling when requested. Stop must be called to finish
// the CPU profile and write the heap profile.
func Start(opts Options) (*Session, error) {
	s := &Session{opts: opts}
	if opts.CPUPath == "" {
		return s, nil
	}
	f, err := os.Create(opts.CPUPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to start cpu profile: %w", err)
	}
	s.cpu = f
	return s, nil
}

// Stop ends the CPU profile and writes the heap profile. Safe to call on
// a nil Session and more than once.
func (s *Session) Stop() error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.cpu != nil {
		pprof.StopCPUProfile()
		errs = append(errs, s.cpu.Close())
		s.cpu = nil
	}
	if s.opts.MemPath != "" {
		errs = append(errs, writeHeap(s.opts.MemPath))
		s.opts.MemPath = ""
	}
	return errors.Join(errs...)
}

func writeHeap(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create heap profile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("failed to write heap profile: %w", err)
	}
	return nil
}
