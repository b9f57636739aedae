// Package log routes narrowway diagnostics through go-logging.
package log

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/op/go-logging.v1"
)

const (
	fileFormat   = "%{time:2006-01-02 15:04:05.000} %{level:.4s} %{module}: %{message}"
	streamFormat = "%{level:.4s} %{module}: %{message}"
)

// Backend hands out module loggers sharing one output and level.
type Backend struct {
	leveled logging.LeveledBackend
	out     io.Closer
}

// New returns a backend writing to the file f, or to stderr when f is empty.
// With disable set everything is dropped.
func New(f, level string, disable bool) (*Backend, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	switch {
	case disable:
		return newBackend(io.Discard, nil, streamFormat, lvl), nil
	case f == "":
		return newBackend(os.Stderr, nil, streamFormat, lvl), nil
	}

	fd, err := os.OpenFile(f, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("log: open %s: %w", f, err)
	}
	return newBackend(fd, fd, fileFormat, lvl), nil
}

// NewWriter returns a backend writing to w.
func NewWriter(w io.Writer, level string) (*Backend, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return newBackend(w, nil, streamFormat, lvl), nil
}

func newBackend(w io.Writer, out io.Closer, format string, lvl logging.Level) *Backend {
	formatted := logging.NewBackendFormatter(
		logging.NewLogBackend(w, "", 0),
		logging.MustStringFormatter(format),
	)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, "")
	return &Backend{leveled: leveled, out: out}
}

// GetLogger returns the logger for module, bound to b.
func (b *Backend) GetLogger(module string) *logging.Logger {
	l := logging.MustGetLogger(module)
	l.SetBackend(b.leveled)
	return l
}

// Close releases the log file, if the backend opened one.
func (b *Backend) Close() error {
	if b.out == nil {
		return nil
	}
	return b.out.Close()
}

// ParseLevel maps a level name such as "NOTICE" to its go-logging level.
// Names are matched without regard to case.
func ParseLevel(s string) (logging.Level, error) {
	lvl, err := logging.LogLevel(s)
	if err != nil {
		return 0, fmt.Errorf("log: invalid level %q", s)
	}
	return lvl, nil
}

// IsValidLevel reports whether s names a log level.
func IsValidLevel(s string) bool {
	_, err := ParseLevel(s)
	return err == nil
}
