package logging

import (
	"sync"
)

// Logger is a type that is responsible for storing and logging output from the
// compiler as necessary
type Logger struct {
	errorCount int // Total encountered errors
	LogLevel   int

	// messages is every message handled by the logger in the order it was
	// received, regardless of whether or not it was displayed
	messages []LogMessage

	// warnings is a list of all warnings to be logged at the end of processing
	warnings []LogMessage

	// m is the mutex used to synchonize the printing of error messages
	m *sync.Mutex
}

// Enumeration of the different log levels
const (
	LogLevelSilent  = iota // no output at all
	LogLevelError          // only errors
	LogLevelWarning        // errors and warnings
	LogLevelVerbose        // errors, warnings, and informational messages (DEFAULT)
)

// newLogger creates a new logger struct
func newLogger(loglevel int) *Logger {
	return &Logger{
		LogLevel: loglevel,
		m:        &sync.Mutex{},
	}
}

// handleMsg prompts to logger to process a message -- this message could be
// coming in concurrently and so we need to make sure we are not printing multiple
// things at the same time so we there is a mutex in place for this function
func (l *Logger) handleMsg(lm LogMessage) {
	l.m.Lock()
	defer l.m.Unlock()

	l.messages = append(l.messages, lm)

	if lm.isError() {
		l.errorCount++

		if l.LogLevel > LogLevelSilent {
			lm.display()
		}
	} else {
		l.warnings = append(l.warnings, lm)
	}
}

// flushWarnings displays all the warnings collected so far and clears them
func (l *Logger) flushWarnings() {
	l.m.Lock()
	defer l.m.Unlock()

	if l.LogLevel >= LogLevelWarning {
		for _, warning := range l.warnings {
			warning.display()
		}
	}

	l.warnings = nil
}
