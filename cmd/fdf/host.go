package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// host is everything the tool touches outside the process: the
// filesystem and the standard streams.
type host struct {
	fs     afero.Fs
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	isTerminal func() bool
}

func newHost() *host {
	return &host{
		fs:     afero.NewOsFs(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		isTerminal: func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

func (h *host) readFile(name string) ([]byte, error) {
	d, err := afero.ReadFile(h.fs, name)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %q", name)
	}
	return d, nil
}

func (h *host) readStdin() ([]byte, error) {
	d, err := io.ReadAll(h.stdin)
	if err != nil {
		return nil, errors.Wrap(err, "could not read stdin")
	}
	return d, nil
}
