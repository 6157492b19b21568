package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/getpup/pupsourcing/es"
)

var _ es.Logger = (*Logger)(nil)

// Logger implements es.Logger on top of the standard library logger.
// Debug and Info are only emitted when verbose; Error is always emitted.
type Logger struct {
	l       *log.Logger
	verbose bool
}

// NewLogger returns a Logger writing to w.
func NewLogger(w io.Writer, verbose bool) *Logger {
	return &Logger{
		l:       log.New(w, "", log.LstdFlags),
		verbose: verbose,
	}
}

// Debug implements es.Logger.
func (l *Logger) Debug(_ context.Context, msg string, keyvals ...interface{}) {
	if l.verbose {
		l.log("DEBUG", msg, keyvals...)
	}
}

// Info implements es.Logger.
func (l *Logger) Info(_ context.Context, msg string, keyvals ...interface{}) {
	if l.verbose {
		l.log("INFO", msg, keyvals...)
	}
}

// Error implements es.Logger.
func (l *Logger) Error(_ context.Context, msg string, keyvals ...interface{}) {
	l.log("ERROR", msg, keyvals...)
}

func (l *Logger) log(level, msg string, keyvals ...interface{}) {
	var kv strings.Builder
	for i := 0; i+1 < len(keyvals); i += 2 {
		fmt.Fprintf(&kv, " %v=%v", keyvals[i], keyvals[i+1])
	}
	l.l.Printf("[%s] %s%s", level, msg, kv.String())
}
