// Package logging writes leveled log lines to stderr and, optionally, to a
// rotating set of files.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"

	"github.com/jtejido/elft/config"
)

// Level orders log messages by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelPrefix = map[Level]string{
	LevelDebug: "DEBUG: ",
	LevelInfo:  "INFO: ",
	LevelWarn:  "WARNING: ",
	LevelError: "ERROR: ",
}

// ParseLevel maps "debug", "info", "warn" and "error" to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger is implemented by everything that logs in this module.
type Logger interface {
	Debugf(format string, a ...interface{})
	Infof(format string, a ...interface{})
	Warnf(format string, a ...interface{})
	Errorf(format string, a ...interface{})
}

// StdLogger is a Logger on top of the standard library log package.
type StdLogger struct {
	mu     sync.Mutex
	out    *log.Logger
	level  Level
	closer io.Closer
}

// New returns a logger writing messages at level or above to w.
func New(w io.Writer, level Level) *StdLogger {
	return &StdLogger{
		out:   log.New(w, "", log.LstdFlags),
		level: level,
	}
}

// NewFromSettings returns a logger writing to stderr and, when cfg.Dir is
// set, to hourly or daily rotated files in cfg.Dir.
func NewFromSettings(cfg config.LogSettings) (*StdLogger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if cfg.Dir == "" {
		return New(os.Stderr, level), nil
	}

	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	opts := []rotatelogs.Option{
		rotatelogs.WithLinkName(filepath.Join(cfg.Dir, "elftvalidate.log")),
	}
	if cfg.RotationTime > 0 {
		opts = append(opts, rotatelogs.WithRotationTime(cfg.RotationTime))
	}
	if cfg.MaxAge > 0 {
		opts = append(opts, rotatelogs.WithMaxAge(cfg.MaxAge))
	}
	rl, err := rotatelogs.New(filepath.Join(cfg.Dir, "elftvalidate.%Y%m%d%H%M.log"), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open rotating log: %w", err)
	}

	l := New(io.MultiWriter(os.Stderr, rl), level)
	l.closer = rl
	return l, nil
}

// Printf logs at the given level.
func (l *StdLogger) Printf(level Level, format string, a ...interface{}) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Print(levelPrefix[level] + fmt.Sprintf(format, a...))
}

func (l *StdLogger) Debugf(format string, a ...interface{}) { l.Printf(LevelDebug, format, a...) }
func (l *StdLogger) Infof(format string, a ...interface{})  { l.Printf(LevelInfo, format, a...) }
func (l *StdLogger) Warnf(format string, a ...interface{})  { l.Printf(LevelWarn, format, a...) }
func (l *StdLogger) Errorf(format string, a ...interface{}) { l.Printf(LevelError, format, a...) }

// Close releases the rotating log file, if any.
func (l *StdLogger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }
