package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Provides a simple logger interface for the application

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

const defaultLevel = logrus.WarnLevel

// LogrusLogger adapts a logrus.Logger to Logger using printf-style messages.
type LogrusLogger struct {
	l *logrus.Logger
}

// New returns a logger writing to w. An empty or unknown level falls back to warn,
// which keeps the console menus free of routine messages.
func New(level string, w io.Writer) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(defaultLevel)

	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			l.Warnf("unknown log level %q, using %s", level, defaultLevel)
		} else {
			l.SetLevel(lvl)
		}
	}
	return &LogrusLogger{l: l}
}

func (g *LogrusLogger) Debug(msg string, args ...any) { g.l.Debugf(msg, args...) }
func (g *LogrusLogger) Info(msg string, args ...any)  { g.l.Infof(msg, args...) }
func (g *LogrusLogger) Warn(msg string, args ...any)  { g.l.Warnf(msg, args...) }
func (g *LogrusLogger) Error(msg string, args ...any) { g.l.Errorf(msg, args...) }

// Nop discards everything.
type Nop struct{}

func (Nop) Debug(string, ...any) {}
func (Nop) Info(string, ...any)  {}
func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}
