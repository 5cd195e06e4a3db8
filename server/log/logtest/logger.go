// Package logtest provides Loggers for tests.
package logtest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jacobpatterson1549/cathedral/server/log"
)

// DiscardLogger drops every message.
var DiscardLogger log.Logger = discardLogger{}

type discardLogger struct{}

// Printf implements the log.Logger interface.
func (discardLogger) Printf(format string, v ...interface{}) {
	// NOOP
}

// Logger records messages so tests can inspect them.
// The zero value is ready to use.
type Logger struct {
	mu  sync.Mutex
	sb  strings.Builder
	num int
}

var _ log.Logger = new(Logger)

// Printf implements the log.Logger interface.
// Each message is recorded on its own line.
func (l *Logger) Printf(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(&l.sb, format, v...)
	l.sb.WriteByte('\n')
	l.num++
}

// String returns everything that has been logged.
func (l *Logger) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sb.String()
}

// Count is the number of messages that have been logged.
func (l *Logger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.num
}

// Empty reports whether nothing has been logged.
func (l *Logger) Empty() bool {
	return l.Count() == 0
}

// Reset discards everything that has been logged.
func (l *Logger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sb.Reset()
	l.num = 0
}
